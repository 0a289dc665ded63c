package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostnameFor(t *testing.T) {
	assert.Equal(t, "0b5c-uuid.estately.app", HostnameFor("0B5C-uuid", ".estately.app"))
}

func TestNewStore(t *testing.T) {
	s, err := NewStore(1, " Demo.Estately.App ", "")
	require.NoError(t, err)
	assert.Equal(t, "demo.estately.app", s.Hostname())
	assert.Equal(t, StatusInactive, s.Status())
	assert.Equal(t, "My Store", s.Branding().Name)

	_, err = NewStore(0, "a.b", "x")
	assert.Error(t, err)
	_, err = NewStore(1, "", "x")
	assert.ErrorIs(t, err, ErrInvalidHostname)
}

func TestStore_CheckAccess(t *testing.T) {
	tests := []struct {
		name      string
		active    bool
		protected bool
		owner     Owner
		wantErr   error
	}{
		{"active store normal owner", true, false, Owner{ID: 1}, nil},
		{"blocked owner", true, false, Owner{ID: 1, Blocked: true}, ErrOwnerBlocked},
		{"blocked owner protected store", true, true, Owner{ID: 1, Blocked: true}, nil},
		{"inactive store normal owner", false, false, Owner{ID: 1}, ErrStoreInactive},
		{"inactive store admin owner", false, false, Owner{ID: 1, Admin: true}, nil},
		{"blocked wins over inactive", false, false, Owner{ID: 1, Blocked: true}, ErrOwnerBlocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStore(1, "a.example.com", "A")
			require.NoError(t, err)
			if tt.active {
				_, err = s.SetStatus(StatusActive)
				require.NoError(t, err)
			}
			s.SetProtected(tt.protected)

			err = s.CheckAccess(tt.owner)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestStore_UpdateBranding(t *testing.T) {
	s, _ := NewStore(1, "a.example.com", "A")
	v := s.Version()

	require.NoError(t, s.UpdateBranding(Branding{Name: "Seaside Homes", PrimaryColor: "#1a2b3c"}))
	assert.Equal(t, "Seaside Homes", s.Branding().Name)
	assert.Greater(t, s.Version(), v)

	assert.Error(t, s.UpdateBranding(Branding{Name: ""}))
	assert.Error(t, s.UpdateBranding(Branding{Name: "x", PrimaryColor: "red"}))
}

func TestStore_SetStatus(t *testing.T) {
	s, _ := NewStore(1, "a.example.com", "A")
	changed, err := s.SetStatus(StatusActive)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = s.SetStatus(StatusActive)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = s.SetStatus("archived")
	assert.Error(t, err)
}
