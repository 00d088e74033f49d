package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrNotConnected        = errors.New("database not connected")
	ErrNotFound            = errors.New("record not found")
	ErrUnsupportedDatabase = errors.New("unsupported database url")
)

// Store persists the seeded record sets. Implementations are safe for
// concurrent use and enforce required and unique fields themselves.
type Store interface {
	Migrator

	Ping(ctx context.Context) error
	Close(ctx context.Context) error

	CreateUser(ctx context.Context, u *models.User) error
	CreateCustomer(ctx context.Context, c *models.Customer) error
	CreateInvoice(ctx context.Context, inv *models.Invoice) error
	CreateRevenue(ctx context.Context, r *models.Revenue) error
	Count(ctx context.Context, kind models.Kind) (int64, error)

	SaveSeedRun(ctx context.Context, run *models.SeedRun) error
	GetSeedRun(ctx context.Context, id uuid.UUID) (*models.SeedRun, error)
}

// Migrator declares the record schemas in the backing database.
type Migrator interface {
	Migrate(ctx context.Context) error
}

// Options tunes Open.
type Options struct {
	// MongoDatabase overrides the database named in a mongodb:// URL path.
	MongoDatabase string
	Logger        *zap.Logger
}

// Open connects to the database named by url and verifies the connection.
// The scheme picks the backend: mongodb, postgres or sqlite.
func Open(ctx context.Context, url string, opts Options) (Store, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	scheme, _, found := strings.Cut(url, ":")
	if !found {
		return nil, fmt.Errorf("%w: missing scheme", ErrUnsupportedDatabase)
	}

	var (
		store Store
		err   error
	)
	switch strings.ToLower(scheme) {
	case "mongodb", "mongodb+srv":
		store, err = OpenMongo(ctx, url, opts.MongoDatabase, opts.Logger)
	case "postgres", "postgresql":
		store, err = OpenPostgres(ctx, url, opts.Logger)
	case "sqlite":
		path := strings.TrimPrefix(strings.TrimPrefix(url, scheme+":"), "//")
		store, err = OpenSQLite(ctx, path, opts.Logger)
	default:
		return nil, fmt.Errorf("%w: scheme %q", ErrUnsupportedDatabase, scheme)
	}
	if err != nil {
		return nil, err
	}
	return store, nil
}

// IsDuplicateKey reports whether err is a unique constraint violation from
// either backend.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) || mongo.IsDuplicateKeyError(err)
}
