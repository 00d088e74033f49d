package repository

import (
	"testing"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/datatypes"
)

func TestDatabaseFromURI(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"mongodb://localhost:27017/dashboard", "dashboard"},
		{"mongodb+srv://u:p@cluster0.example.net/acme?retryWrites=true", "acme"},
		{"mongodb://localhost:27017", DefaultMongoDatabase},
		{"mongodb://localhost:27017/", DefaultMongoDatabase},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			assert.Equal(t, tt.want, databaseFromURI(tt.uri, zap.NewNop()))
		})
	}
}

func TestDatabaseFromURI_LogsFallback(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	assert.Equal(t, DefaultMongoDatabase, databaseFromURI("mongodb://%zz/acme", zap.New(core)))
	assert.Equal(t, 1, logs.Len())
}

func TestInvoiceDocument_OmitsMissingAmount(t *testing.T) {
	raw, err := bson.Marshal(newInvoiceDocument(&models.Invoice{ID: uuid.New(), Status: "paid"}))
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	_, has := m["amount"]
	assert.False(t, has)
	assert.Equal(t, "paid", m["status"])
}

func TestSeedRunDocument_RoundTrip(t *testing.T) {
	run := &models.SeedRun{
		ID:     uuid.New(),
		Status: models.SeedRunFailed,
		Report: datatypes.JSON(`{"kinds":[{"kind":"users","attempted":2,"inserted":1}]}`),
	}

	doc, err := newSeedRunDocument(run)
	require.NoError(t, err)
	assert.Equal(t, run.ID.String(), doc.ID)

	back, err := doc.model()
	require.NoError(t, err)
	assert.Equal(t, run.ID, back.ID)
	assert.JSONEq(t, string(run.Report), string(back.Report))
}

func TestCollectionSchemas_UniqueFields(t *testing.T) {
	unique := map[string][]string{}
	for _, c := range collectionSchemas() {
		unique[c.name] = c.unique
	}
	assert.Equal(t, []string{"email"}, unique["users"])
	assert.Equal(t, []string{"month"}, unique["revenues"])
	assert.Empty(t, unique["customers"])
	assert.Empty(t, unique["invoices"])
}

func TestCollectionSchemas_RequireNonEmptyText(t *testing.T) {
	for _, c := range collectionSchemas() {
		props := c.schema["properties"].(bson.M)
		for _, field := range c.schema["required"].([]string) {
			prop := props[field].(bson.M)
			if prop["bsonType"] != "string" {
				continue
			}
			assert.Equal(t, 1, prop["minLength"], "%s.%s", c.name, field)
		}
	}
}
