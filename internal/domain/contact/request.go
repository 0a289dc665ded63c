package contact

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/estately/estately/internal/shared/biztime"
)

// Inquiry is the sender-supplied part of a contact request.
type Inquiry struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

func (q *Inquiry) normalize() error {
	q.Name = strings.TrimSpace(q.Name)
	if q.Name == "" || len(q.Name) > 120 {
		return fmt.Errorf("name must be 1-120 characters")
	}
	q.Email = strings.ToLower(strings.TrimSpace(q.Email))
	if _, err := mail.ParseAddress(q.Email); err != nil {
		return fmt.Errorf("invalid email address")
	}
	q.Message = strings.TrimSpace(q.Message)
	if len(q.Message) > 5000 {
		return fmt.Errorf("message is too long")
	}
	return nil
}

// Request is a visitor's inquiry sent to a store, optionally about one item.
type Request struct {
	id        uint
	storeID   uint
	itemID    *uint
	inquiry   Inquiry
	status    Status
	deleted   bool
	createdAt time.Time
	updatedAt time.Time
}

func NewRequest(storeID uint, itemID *uint, inquiry Inquiry) (*Request, error) {
	if storeID == 0 {
		return nil, fmt.Errorf("store is required")
	}
	if err := inquiry.normalize(); err != nil {
		return nil, err
	}
	now := biztime.NowUTC()
	return &Request{
		storeID:   storeID,
		itemID:    itemID,
		inquiry:   inquiry,
		status:    StatusCreated,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructRequest(id, storeID uint, itemID *uint, inquiry Inquiry, status Status, deleted bool, createdAt, updatedAt time.Time) *Request {
	return &Request{
		id:        id,
		storeID:   storeID,
		itemID:    itemID,
		inquiry:   inquiry,
		status:    status,
		deleted:   deleted,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Request) ID() uint             { return r.id }
func (r *Request) StoreID() uint        { return r.storeID }
func (r *Request) ItemID() *uint        { return r.itemID }
func (r *Request) Inquiry() Inquiry     { return r.inquiry }
func (r *Request) Status() Status       { return r.status }
func (r *Request) IsDeleted() bool      { return r.deleted }
func (r *Request) CreatedAt() time.Time { return r.createdAt }
func (r *Request) UpdatedAt() time.Time { return r.updatedAt }

func (r *Request) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("contact request ID is already set")
	}
	r.id = id
	return nil
}

func (r *Request) ChangeStatus(status Status) error {
	if err := checkTransition(r.status, status); err != nil {
		return err
	}
	r.status = status
	r.updatedAt = biztime.NowUTC()
	return nil
}

func (r *Request) MarkDeleted() {
	r.deleted = true
	r.updatedAt = biztime.NowUTC()
}

// AdminRequest is a platform-level inquiry from a prospective customer.
type AdminRequest struct {
	id        uint
	inquiry   Inquiry
	company   string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewAdminRequest(inquiry Inquiry, company string) (*AdminRequest, error) {
	if err := inquiry.normalize(); err != nil {
		return nil, err
	}
	now := biztime.NowUTC()
	return &AdminRequest{
		inquiry:   inquiry,
		company:   strings.TrimSpace(company),
		status:    StatusCreated,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAdminRequest(id uint, inquiry Inquiry, company string, status Status, createdAt, updatedAt time.Time) *AdminRequest {
	return &AdminRequest{
		id:        id,
		inquiry:   inquiry,
		company:   company,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *AdminRequest) ID() uint             { return r.id }
func (r *AdminRequest) Inquiry() Inquiry     { return r.inquiry }
func (r *AdminRequest) Company() string      { return r.company }
func (r *AdminRequest) Status() Status       { return r.status }
func (r *AdminRequest) CreatedAt() time.Time { return r.createdAt }
func (r *AdminRequest) UpdatedAt() time.Time { return r.updatedAt }

func (r *AdminRequest) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("admin contact request ID is already set")
	}
	r.id = id
	return nil
}

func (r *AdminRequest) ChangeStatus(status Status) error {
	if err := checkTransition(r.status, status); err != nil {
		return err
	}
	r.status = status
	r.updatedAt = biztime.NowUTC()
	return nil
}
