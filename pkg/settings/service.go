package settings

import (
	"context"
	"fmt"

	"github.com/tidbok/tidbok/internal/event_bus"
)

type Service interface {
	Get(ctx context.Context) Settings
	// Save validates and replaces the settings record wholesale.
	Save(ctx context.Context, settings Settings) error
	// Reset restores the defaults.
	Reset(ctx context.Context) (Settings, error)
}

type ServiceImpl struct {
	repo Repository
	bus  *event_bus.EventBus
}

func NewService(repo Repository, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus}
}

func (s *ServiceImpl) Get(ctx context.Context) Settings {
	return s.repo.Load(ctx)
}

func (s *ServiceImpl) Save(ctx context.Context, settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.repo.Store(ctx, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	s.publishUpdated(ctx, settings)
	return nil
}

func (s *ServiceImpl) Reset(ctx context.Context) (Settings, error) {
	defaults := Default()
	if err := s.repo.Store(ctx, defaults); err != nil {
		return Settings{}, fmt.Errorf("failed to reset settings: %w", err)
	}
	s.publishUpdated(ctx, defaults)
	return defaults, nil
}

// publishUpdated notifies subscribers (theme observer, notifier) that the
// settings record changed. Publish errors are already logged by the bus and
// must not fail the save.
func (s *ServiceImpl) publishUpdated(ctx context.Context, settings Settings) {
	_ = s.bus.Publish(event_bus.NewEvent(ctx, event_bus.SettingsUpdatedEvent, event_bus.SettingsUpdated{
		Theme:              string(settings.Theme),
		CalendarView:       string(settings.CalendarView),
		EmailNotifications: settings.EmailNotifications,
	}))
}
