package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repository interface {
	// Load returns the stored settings merged over the defaults. A missing
	// or unreadable record is not an error: the defaults are returned so
	// callers always see a usable settings snapshot.
	Load(ctx context.Context) Settings
	Store(ctx context.Context, settings Settings) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

// The settings record is stored as a single JSON document. Unmarshalling the
// document over a copy of the defaults gives field-by-field fallback for any
// field absent from the stored record.
func (r *RepositoryImpl) Load(ctx context.Context) Settings {
	settings := Default()

	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM settings WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return settings
	}
	if err != nil {
		log.Errorf("could not read settings, falling back to defaults: %v", err)
		return Default()
	}

	if err := json.Unmarshal([]byte(data), &settings); err != nil {
		log.Errorf("could not parse stored settings, falling back to defaults: %v", err)
		return Default()
	}
	return settings
}

func (r *RepositoryImpl) Store(ctx context.Context, settings Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("could not serialize settings: %w", err)
	}

	query := `INSERT INTO settings (id, data) VALUES (1, ?)
              ON CONFLICT (id) DO UPDATE SET data = excluded.data`
	if _, err := r.db.ExecContext(ctx, query, string(data)); err != nil {
		err := fmt.Errorf("could not store settings: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
