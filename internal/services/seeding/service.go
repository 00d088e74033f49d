// Package seeding writes the placeholder dataset into a store.
package seeding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/placeholder"
	"invoice-dashboard-backend/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// PasswordCost is the bcrypt cost used for seeded user passwords.
const PasswordCost = 10

// ErrSeedFailed wraps every failure after the connection check.
var ErrSeedFailed = errors.New("seeding failed")

type SeedService struct {
	store       repository.Store
	data        placeholder.Dataset
	logger      *zap.Logger
	maxParallel int
	now         func() time.Time
}

type Option func(*SeedService)

func WithLogger(l *zap.Logger) Option {
	return func(s *SeedService) { s.logger = l }
}

// WithMaxParallel caps concurrent inserts per record set. n <= 0 means no cap.
func WithMaxParallel(n int) Option {
	return func(s *SeedService) {
		if n <= 0 {
			n = -1
		}
		s.maxParallel = n
	}
}

func NewSeedService(store repository.Store, data placeholder.Dataset, opts ...Option) *SeedService {
	s := &SeedService{
		store:       store,
		data:        data,
		logger:      zap.NewNop(),
		maxParallel: -1,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed inserts users, customers, invoices and revenue, in that order. The
// first record set with a failed insert stops the run; records already
// written stay. The returned report is non-nil once a run was recorded.
func (s *SeedService) Seed(ctx context.Context) (*Report, error) {
	if err := s.store.Ping(ctx); err != nil {
		if !errors.Is(err, repository.ErrNotConnected) {
			err = fmt.Errorf("%w: %w", repository.ErrNotConnected, err)
		}
		s.logger.Error("refusing to seed without a verified connection", zap.Error(err))
		return nil, err
	}

	run := &models.SeedRun{
		ID:        uuid.New(),
		Status:    models.SeedRunRunning,
		StartedAt: s.now(),
	}
	if err := s.store.SaveSeedRun(ctx, run); err != nil {
		return nil, fmt.Errorf("%w: recording run: %w", ErrSeedFailed, err)
	}

	log := s.logger.With(zap.String("run_id", run.ID.String()))
	log.Info("seeding database")

	report := &Report{RunID: run.ID}
	seedErr := s.seedAll(ctx, log, report)
	s.finish(ctx, log, run, report, seedErr)

	if seedErr != nil {
		log.Error("error seeding database", zap.Error(seedErr))
		return report, fmt.Errorf("%w: %w", ErrSeedFailed, seedErr)
	}
	log.Info("database seeded", zap.Int("inserted", report.Inserted()))
	return report, nil
}

// GetRun returns a recorded run.
func (s *SeedService) GetRun(ctx context.Context, id uuid.UUID) (*models.SeedRun, error) {
	return s.store.GetSeedRun(ctx, id)
}

// Ping reports whether the store is reachable.
func (s *SeedService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *SeedService) seedAll(ctx context.Context, log *zap.Logger, report *Report) error {
	steps := []func(context.Context) (KindReport, error){
		s.seedUsers,
		s.seedCustomers,
		s.seedInvoices,
		s.seedRevenue,
	}

	for _, step := range steps {
		kr, err := step(ctx)
		report.Kinds = append(report.Kinds, kr)

		fields := []zap.Field{
			zap.String("kind", string(kr.Kind)),
			zap.Int("attempted", kr.Attempted),
			zap.Int("inserted", kr.Inserted),
			zap.Int("failed", kr.Failed),
		}
		if err != nil {
			log.Warn("record set partially seeded", append(fields, zap.Int("duplicates", kr.Duplicates))...)
			return err
		}
		log.Info("record set seeded", fields...)
	}
	return nil
}

// finish stores the final state of run. A failure here is logged only.
func (s *SeedService) finish(ctx context.Context, log *zap.Logger, run *models.SeedRun, report *Report, seedErr error) {
	done := s.now()
	run.CompletedAt = &done
	run.Status = models.SeedRunCompleted
	if seedErr != nil {
		run.Status = models.SeedRunFailed
	}

	raw, err := json.Marshal(report)
	if err != nil {
		log.Error("failed to encode seed report", zap.Error(err))
	} else {
		run.Report = datatypes.JSON(raw)
	}

	if err := s.store.SaveSeedRun(ctx, run); err != nil {
		log.Error("failed to record seed run", zap.Error(err))
	}
}

func (s *SeedService) seedUsers(ctx context.Context) (KindReport, error) {
	return insertAll(ctx, models.KindUser, s.data.Users, s.maxParallel, func(ctx context.Context, u placeholder.User) error {
		id, err := parseID(u.ID)
		if err != nil {
			return err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), PasswordCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		return s.store.CreateUser(ctx, &models.User{
			ID:       id,
			Name:     u.Name,
			Email:    u.Email,
			Password: string(hashed),
		})
	})
}

func (s *SeedService) seedCustomers(ctx context.Context) (KindReport, error) {
	return insertAll(ctx, models.KindCustomer, s.data.Customers, s.maxParallel, func(ctx context.Context, c placeholder.Customer) error {
		id, err := parseID(c.ID)
		if err != nil {
			return err
		}
		return s.store.CreateCustomer(ctx, &models.Customer{
			ID:       id,
			Name:     c.Name,
			Email:    c.Email,
			ImageURL: c.ImageURL,
		})
	})
}

func (s *SeedService) seedInvoices(ctx context.Context) (KindReport, error) {
	return insertAll(ctx, models.KindInvoice, s.data.Invoices, s.maxParallel, func(ctx context.Context, inv placeholder.Invoice) error {
		customerID, err := uuid.Parse(inv.CustomerID)
		if err != nil {
			return fmt.Errorf("invalid customer id %q: %w", inv.CustomerID, err)
		}
		date, err := time.Parse(time.DateOnly, inv.Date)
		if err != nil {
			return fmt.Errorf("invalid invoice date %q: %w", inv.Date, err)
		}
		return s.store.CreateInvoice(ctx, &models.Invoice{
			ID:         uuid.New(),
			CustomerID: customerID,
			Amount:     inv.Amount,
			Status:     inv.Status,
			Date:       date,
		})
	})
}

func (s *SeedService) seedRevenue(ctx context.Context) (KindReport, error) {
	return insertAll(ctx, models.KindRevenue, s.data.Revenue, s.maxParallel, func(ctx context.Context, r placeholder.Revenue) error {
		amount := r.Revenue
		return s.store.CreateRevenue(ctx, &models.Revenue{
			ID:      uuid.New(),
			Month:   r.Month,
			Revenue: &amount,
		})
	})
}

func parseID(raw string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.New(), nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q: %w", raw, err)
	}
	return id, nil
}
