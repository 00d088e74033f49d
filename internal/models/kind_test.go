package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersistentModels_IncludesSeedRun(t *testing.T) {
	found := false
	for _, model := range PersistentModels() {
		if _, ok := model.(*SeedRun); ok {
			found = true
			break
		}
	}
	require.True(t, found, "PersistentModels should include SeedRun")
}

func TestKinds_Order(t *testing.T) {
	assert.Equal(t, []Kind{KindUser, KindCustomer, KindInvoice, KindRevenue}, Kinds())
}
