package listing

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

type Amenity struct {
	Record
	StoreID uint
	Name    string
	Icon    string
}

func (a *Amenity) Validate() error {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" || len(a.Name) > 100 {
		return fmt.Errorf("amenity name must be 1-100 characters")
	}
	return nil
}

// CheckAmenityOwnership verifies every requested amenity was found and
// belongs to the store.
func CheckAmenityOwnership(storeID uint, requested []uint, found []*Amenity) error {
	byID := make(map[uint]*Amenity, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}
	for _, id := range requested {
		a, ok := byID[id]
		if !ok || a.IsDeleted {
			return ErrAmenityNotFound
		}
		if a.StoreID != storeID {
			return ErrForeignAmenity
		}
	}
	return nil
}

// Member is a realtor presented on the store's listings.
type Member struct {
	Record
	StoreID     uint
	Name        string
	Email       string
	Phone       string
	Title       string
	PhotoFileID *uint
}

func (m *Member) Validate() error {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return fmt.Errorf("member name is required")
	}
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return fmt.Errorf("invalid member email")
	}
	return nil
}

type Link struct {
	Record
	ItemID uint
	Title  string
	URL    string
	Kind   string
}

func (l *Link) Validate() error {
	l.Title = strings.TrimSpace(l.Title)
	if l.Title == "" {
		return fmt.Errorf("link title is required")
	}
	u, err := url.Parse(l.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("link url must be an absolute http(s) url")
	}
	if l.Kind == "" {
		l.Kind = "other"
	}
	return nil
}

var metadataKeyRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]{1,100}$`)

// Metadata is a free-form JSON value stored under a key of the store.
type Metadata struct {
	Record
	StoreID uint
	Key     string
	Value   json.RawMessage
}

func (m *Metadata) Validate() error {
	if !metadataKeyRegex.MatchString(m.Key) {
		return fmt.Errorf("metadata key must match [a-zA-Z0-9_.-]{1,100}")
	}
	if len(m.Value) == 0 {
		m.Value = json.RawMessage("null")
	}
	if !json.Valid(m.Value) {
		return fmt.Errorf("metadata value must be valid JSON")
	}
	return nil
}
