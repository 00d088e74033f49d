package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	handler "invoice-dashboard-backend/internal/handlers"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/placeholder"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/services/seeding"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSeedEndpoint_EndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	store, err := repository.Open(ctx, "sqlite::memory:", repository.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(ctx) })
	require.NoError(t, repository.NewSchemaRegistry(store).Register(ctx))

	data := placeholder.Default()
	svc := seeding.NewSeedService(store, data)
	r := gin.New()
	RegisterRoutes(r, handler.NewSeedHandler(svc, zap.NewNop()))

	call := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/seed", nil))
		return w
	}

	first := call()
	require.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, `{"message":"Database seeded successfully"}`, first.Body.String())

	n, err := store.Count(ctx, models.KindInvoice)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data.Invoices)), n)

	second := call()
	assert.Equal(t, http.StatusInternalServerError, second.Code)
	assert.JSONEq(t, `{"error":"Failed to seed database"}`, second.Body.String())

	n, err = store.Count(ctx, models.KindUser)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data.Users)), n)

	runID := second.Header().Get(handler.RunIDHeader)
	require.NotEmpty(t, runID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/seed/runs/"+runID, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"failed"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
