package database

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/outcome-stats-api/pkg/config"
)

func TestDSNEscapesCredentials(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "stats",
		Password: "p@ss word/1",
		Name:     "outcome_stats",
		SSLMode:  "require",
	})

	parsed, err := url.Parse(dsn)
	require.NoError(t, err)
	assert.Equal(t, "db.internal:5433", parsed.Host)
	assert.Equal(t, "/outcome_stats", parsed.Path)
	password, _ := parsed.User.Password()
	assert.Equal(t, "p@ss word/1", password)
	assert.Equal(t, "require", parsed.Query().Get("sslmode"))
	assert.Equal(t, "outcome-stats-api", parsed.Query().Get("application_name"))
}
