package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"invoice-dashboard-backend/internal/logger"
	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// GormStore keeps the record sets in a relational database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// OpenPostgres connects through pgx. Open only routes postgres:// and
// postgresql:// URLs here; call it directly for a key=value DSN.
func OpenPostgres(ctx context.Context, dsn string, l *zap.Logger) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig(l))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotConnected, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotConnected, err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return verified(ctx, NewGormStore(db), l, "postgres")
}

// OpenSQLite opens a local database file, or ":memory:".
func OpenSQLite(ctx context.Context, path string, l *zap.Logger) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), gormConfig(l))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotConnected, err)
	}

	// Every pooled connection to ":memory:" would be a separate database.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotConnected, err)
	}
	sqlDB.SetMaxOpenConns(1)

	return verified(ctx, NewGormStore(db), l, "sqlite")
}

func gormConfig(l *zap.Logger) *gorm.Config {
	return &gorm.Config{
		Logger:         logger.NewGormLogger(l),
		TranslateError: true,
	}
}

func verified(ctx context.Context, s *GormStore, l *zap.Logger, backend string) (*GormStore, error) {
	if err := s.Ping(ctx); err != nil {
		_ = s.Close(ctx)
		l.Error("failed to connect to database", zap.String("backend", backend), zap.Error(err))
		return nil, err
	}
	l.Info("database connected", zap.String("backend", backend))
	return s, nil
}

// DB exposes the underlying handle.
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotConnected, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrNotConnected, err)
	}
	return nil
}

func (s *GormStore) Close(_ context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates the tables, unique indexes and NOT NULL columns.
func (s *GormStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(models.PersistentModels()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (s *GormStore) CreateUser(ctx context.Context, u *models.User) error {
	return s.db.WithContext(ctx).Create(u).Error
}

func (s *GormStore) CreateCustomer(ctx context.Context, c *models.Customer) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *GormStore) CreateInvoice(ctx context.Context, inv *models.Invoice) error {
	return s.db.WithContext(ctx).Create(inv).Error
}

func (s *GormStore) CreateRevenue(ctx context.Context, r *models.Revenue) error {
	return s.db.WithContext(ctx).Create(r).Error
}

// Count returns the number of rows stored for kind.
func (s *GormStore) Count(ctx context.Context, kind models.Kind) (int64, error) {
	model, err := modelFor(kind)
	if err != nil {
		return 0, err
	}
	var n int64
	err = s.db.WithContext(ctx).Model(model).Count(&n).Error
	return n, err
}

// SaveSeedRun inserts the run or overwrites it by ID.
func (s *GormStore) SaveSeedRun(ctx context.Context, run *models.SeedRun) error {
	return s.db.WithContext(ctx).Save(run).Error
}

func (s *GormStore) GetSeedRun(ctx context.Context, id uuid.UUID) (*models.SeedRun, error) {
	var run models.SeedRun
	err := s.db.WithContext(ctx).First(&run, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func modelFor(kind models.Kind) (interface{}, error) {
	switch kind {
	case models.KindUser:
		return &models.User{}, nil
	case models.KindCustomer:
		return &models.Customer{}, nil
	case models.KindInvoice:
		return &models.Invoice{}, nil
	case models.KindRevenue:
		return &models.Revenue{}, nil
	default:
		return nil, fmt.Errorf("unknown record kind %q", kind)
	}
}
