package settings

import (
	"context"
	"sync"
)

type RepositoryStub struct {
	mu       sync.RWMutex
	stored   *Settings
	storeErr error
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{}
}

func (r *RepositoryStub) Load(ctx context.Context) Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.stored == nil {
		return Default()
	}
	return *r.stored
}

func (r *RepositoryStub) Store(ctx context.Context, settings Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.storeErr != nil {
		return r.storeErr
	}
	s := settings
	r.stored = &s
	return nil
}

func (r *RepositoryStub) FailStoreWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storeErr = err
}
