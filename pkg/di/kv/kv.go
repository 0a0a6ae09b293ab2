package kv_di

import (
	"context"

	"github.com/dlevanto/contextspell/pkg/config"
	"github.com/dlevanto/contextspell/pkg/store"

	bolt "go.etcd.io/bbolt"
)

func New(ctx context.Context, cfg *config.Config) (*store.ModelStore, error) {
	db, err := bolt.Open(cfg.ModelDBPath, 0600, nil)
	if err != nil {
		return nil, err
	}

	modelStore, err := store.NewModelStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	cleanup := func() {
		_ = db.Close()
	}

	// Graceful shutdown
	go func() {
		<-ctx.Done()
		cleanup()
	}()

	return modelStore, nil
}
