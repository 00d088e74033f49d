package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017/dashboard")

	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, "development", c.Env)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, -1, c.SeedMaxParallel)
	assert.Equal(t, []string{"http://localhost:3000"}, c.Origins())
	assert.False(t, c.IsProduction())
}

func TestLoadConfig_MongoURIAlias(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MONGODB_URI", "mongodb://db.internal:27017")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://db.internal:27017", c.DatabaseURL)
}

func TestLoadConfig_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MONGODB_URI", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingDatabaseURL)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		maxParallel int
		expectError bool
	}{
		{"unlimited", -1, false},
		{"capped", 8, false},
		{"zero", 0, true},
		{"negative", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				Port:            "8080",
				DatabaseURL:     "sqlite::memory:",
				AllowedOrigins:  "http://localhost:3000",
				SeedMaxParallel: tt.maxParallel,
			}
			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_OriginsAndEnv(t *testing.T) {
	c := &Config{AllowedOrigins: " http://a.test , ,http://b.test", Env: "prod"}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.Origins())
	assert.True(t, c.IsProduction())
}

func TestConfig_ValidateOrigins(t *testing.T) {
	c := &Config{Port: "8080", DatabaseURL: "sqlite::memory:", AllowedOrigins: " , ", SeedMaxParallel: -1}
	assert.Error(t, c.Validate())
}
