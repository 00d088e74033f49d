package placeholder

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_InvoicesReferenceCustomers(t *testing.T) {
	d := Default()
	known := map[uuid.UUID]bool{}
	for _, c := range d.Customers {
		id, err := uuid.Parse(c.ID)
		require.NoError(t, err, c.Name)
		known[id] = true
	}

	for i, inv := range d.Invoices {
		id, err := uuid.Parse(inv.CustomerID)
		require.NoError(t, err)
		assert.True(t, known[id], "invoice %d refers to an unknown customer", i)
		require.NotNil(t, inv.Amount, "invoice %d", i)

		_, err = time.Parse(time.DateOnly, inv.Date)
		assert.NoError(t, err, "invoice %d", i)
	}
}

func TestDefault_UniqueKeys(t *testing.T) {
	d := Default()

	emails := map[string]bool{}
	for _, u := range d.Users {
		key := strings.ToLower(u.Email)
		assert.False(t, emails[key], "duplicate email %s", u.Email)
		emails[key] = true
	}

	months := map[string]bool{}
	for _, r := range d.Revenue {
		assert.False(t, months[r.Month], "duplicate month %s", r.Month)
		months[r.Month] = true
	}
	assert.Len(t, months, 12)
}
