package repository

import (
	"context"
	"sync"
)

// SchemaRegistry declares the record schemas once per process. Later calls
// to Register return the outcome of the first one.
type SchemaRegistry struct {
	migrator Migrator
	once     sync.Once
	err      error
}

func NewSchemaRegistry(m Migrator) *SchemaRegistry {
	return &SchemaRegistry{migrator: m}
}

func (r *SchemaRegistry) Register(ctx context.Context) error {
	r.once.Do(func() {
		r.err = r.migrator.Migrate(ctx)
	})
	return r.err
}
