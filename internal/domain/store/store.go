package store

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/estately/estately/internal/shared/biztime"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

func (s Status) String() string { return string(s) }

var colorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Store is a tenant: one branded storefront owned by exactly one user.
type Store struct {
	id           uint
	hostname     string
	ownerID      uint
	name         string
	description  string
	contactEmail string
	contactPhone string
	address      string
	logoFileID   *uint
	coverFileID  *uint
	primaryColor string
	status       Status
	protected    bool
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

// Branding groups the owner-editable presentation fields.
type Branding struct {
	Name         string
	Description  string
	ContactEmail string
	ContactPhone string
	Address      string
	LogoFileID   *uint
	CoverFileID  *uint
	PrimaryColor string
}

// HostnameFor builds the platform subdomain issued at signup.
func HostnameFor(userUUID, serviceDomain string) string {
	return strings.ToLower(userUUID + "." + strings.TrimPrefix(serviceDomain, "."))
}

// NewStore creates an inactive store; activation follows the owner's
// subscription.
func NewStore(ownerID uint, hostname, name string) (*Store, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner is required")
	}
	hostname = strings.ToLower(strings.TrimSpace(hostname))
	if hostname == "" || len(hostname) > 253 {
		return nil, ErrInvalidHostname
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "My Store"
	}

	now := biztime.NowUTC()
	return &Store{
		hostname:  hostname,
		ownerID:   ownerID,
		name:      name,
		status:    StatusInactive,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructStore(
	id uint,
	hostname string,
	ownerID uint,
	branding Branding,
	status Status,
	protected bool,
	version int,
	createdAt, updatedAt time.Time,
) *Store {
	return &Store{
		id:           id,
		hostname:     hostname,
		ownerID:      ownerID,
		name:         branding.Name,
		description:  branding.Description,
		contactEmail: branding.ContactEmail,
		contactPhone: branding.ContactPhone,
		address:      branding.Address,
		logoFileID:   branding.LogoFileID,
		coverFileID:  branding.CoverFileID,
		primaryColor: branding.PrimaryColor,
		status:       status,
		protected:    protected,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (s *Store) ID() uint             { return s.id }
func (s *Store) Hostname() string     { return s.hostname }
func (s *Store) OwnerID() uint        { return s.ownerID }
func (s *Store) Status() Status       { return s.status }
func (s *Store) IsActive() bool       { return s.status == StatusActive }
func (s *Store) IsProtected() bool    { return s.protected }
func (s *Store) Version() int         { return s.version }
func (s *Store) CreatedAt() time.Time { return s.createdAt }
func (s *Store) UpdatedAt() time.Time { return s.updatedAt }

func (s *Store) Branding() Branding {
	return Branding{
		Name:         s.name,
		Description:  s.description,
		ContactEmail: s.contactEmail,
		ContactPhone: s.contactPhone,
		Address:      s.address,
		LogoFileID:   s.logoFileID,
		CoverFileID:  s.coverFileID,
		PrimaryColor: s.primaryColor,
	}
}

func (s *Store) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("store ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("store ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Store) touch() {
	s.updatedAt = biztime.NowUTC()
	s.version++
}

func (s *Store) UpdateBranding(b Branding) error {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" || len(b.Name) > 120 {
		return fmt.Errorf("store name must be 1-120 characters")
	}
	if b.PrimaryColor != "" && !colorRegex.MatchString(b.PrimaryColor) {
		return fmt.Errorf("primary color must be a #rrggbb value")
	}
	s.name = b.Name
	s.description = b.Description
	s.contactEmail = b.ContactEmail
	s.contactPhone = b.ContactPhone
	s.address = b.Address
	s.logoFileID = b.LogoFileID
	s.coverFileID = b.CoverFileID
	s.primaryColor = b.PrimaryColor
	s.touch()
	return nil
}

// SetStatus returns true when the status actually changed.
func (s *Store) SetStatus(status Status) (bool, error) {
	if !status.IsValid() {
		return false, fmt.Errorf("invalid store status: %s", status)
	}
	if s.status == status {
		return false, nil
	}
	s.status = status
	s.touch()
	return true, nil
}

func (s *Store) SetProtected(protected bool) {
	if s.protected == protected {
		return
	}
	s.protected = protected
	s.touch()
}

// Owner is the subset of the owning user needed to decide access.
type Owner struct {
	ID      uint
	Blocked bool
	Admin   bool
}

// CheckAccess applies the tenant gate: a blocked owner closes the store unless
// it is protected, and an inactive store is only reachable by admins.
func (s *Store) CheckAccess(owner Owner) error {
	if owner.Blocked && !s.protected {
		return ErrOwnerBlocked
	}
	if s.status == StatusInactive && !owner.Admin {
		return ErrStoreInactive
	}
	return nil
}
