package seeding

import (
	"context"
	"errors"
	"fmt"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"

	"golang.org/x/sync/errgroup"
)

// insertAll runs insert for every record concurrently and returns after all
// of them have settled. A failing insert never cancels its siblings and
// nothing already written is rolled back. limit caps the number of
// goroutines in flight; -1 means no cap.
func insertAll[T any](ctx context.Context, kind models.Kind, records []T, limit int, insert func(context.Context, T) error) (KindReport, error) {
	errs := make([]error, len(records))

	var g errgroup.Group
	g.SetLimit(limit)
	for i, rec := range records {
		g.Go(func() error {
			errs[i] = insert(ctx, rec)
			return nil
		})
	}
	_ = g.Wait()

	report := KindReport{Kind: kind, Attempted: len(records)}
	var failed []error
	for i, err := range errs {
		if err == nil {
			report.Inserted++
			continue
		}
		report.Failed++
		if repository.IsDuplicateKey(err) {
			report.Duplicates++
		}
		report.Errors = append(report.Errors, fmt.Sprintf("record %d: %v", i, err))
		failed = append(failed, fmt.Errorf("%s record %d: %w", kind, i, err))
	}
	return report, errors.Join(failed...)
}
