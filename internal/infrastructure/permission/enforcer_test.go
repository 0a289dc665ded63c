package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estately/estately/internal/infrastructure/persistence/testdb"
	"github.com/estately/estately/internal/shared/logger"
)

func TestEnforcer_DefaultPolicies(t *testing.T) {
	db := testdb.New(t)
	e, err := NewEnforcer(db, logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, e.SeedDefaultPolicies())
	// seeding twice keeps a single row
	require.NoError(t, e.SeedDefaultPolicies())

	var count int64
	require.NoError(t, db.Table("casbin_rule").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	tests := []struct {
		role, path, method string
		want               bool
	}{
		{"admin", "/api/v1/admin/users", "GET", true},
		{"admin", "/api/v1/admin/stores/12", "PATCH", true},
		{"user", "/api/v1/admin/users", "GET", false},
		{"", "/api/v1/admin/users", "GET", false},
	}
	for _, tt := range tests {
		got, err := e.Enforce(tt.role, tt.path, tt.method)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s %s %s", tt.role, tt.method, tt.path)
	}
}

func TestEnforcer_AddRemovePolicy(t *testing.T) {
	e, err := NewEnforcer(testdb.New(t), logger.NewNopLogger())
	require.NoError(t, err)

	require.NoError(t, e.AddPolicy("user", "/api/v1/admin/locations/import", "POST"))
	ok, err := e.Enforce("user", "/api/v1/admin/locations/import", "POST")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, e.RemovePolicy("user", "/api/v1/admin/locations/import", "POST"))
	require.NoError(t, e.LoadPolicy())
	ok, err = e.Enforce("user", "/api/v1/admin/locations/import", "POST")
	require.NoError(t, err)
	assert.False(t, ok)
}
