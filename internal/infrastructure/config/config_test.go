package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ESTATELY_SERVICE_DOMAIN", "estately.app")
	t.Setenv("ESTATELY_DATABASE_DRIVER", "postgres")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "estately.app", cfg.Service.Domain)
	assert.True(t, cfg.Database.IsPostgres())
	assert.Equal(t, int64(300), cfg.DNS.TTL)
	assert.Equal(t, 5, cfg.RateLimit.AuthRequestsPerHour)
	assert.Same(t, cfg, Get())
}

func TestLoad_ModeOverride(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("release")
	require.NoError(t, err)
	assert.Equal(t, "release", cfg.Server.Mode)
}
