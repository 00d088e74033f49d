package seeding

import (
	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
)

// KindReport summarizes the inserts attempted for one record set.
type KindReport struct {
	Kind       models.Kind `json:"kind"`
	Attempted  int         `json:"attempted"`
	Inserted   int         `json:"inserted"`
	Failed     int         `json:"failed"`
	Duplicates int         `json:"duplicates"`
	Errors     []string    `json:"errors,omitempty"`
}

// Report is the outcome of one seeding run. Kinds that were never reached
// because an earlier kind failed are absent.
type Report struct {
	RunID uuid.UUID    `json:"run_id"`
	Kinds []KindReport `json:"kinds"`
}

// Kind returns the report for kind, if that kind was attempted.
func (r *Report) Kind(kind models.Kind) (KindReport, bool) {
	for _, k := range r.Kinds {
		if k.Kind == kind {
			return k, true
		}
	}
	return KindReport{}, false
}

// Inserted is the total number of records written across all kinds.
func (r *Report) Inserted() int {
	total := 0
	for _, k := range r.Kinds {
		total += k.Inserted
	}
	return total
}
