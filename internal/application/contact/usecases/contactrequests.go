package usecases

import (
	"context"
	"fmt"

	"github.com/estately/estately/internal/domain/contact"
	"github.com/estately/estately/internal/domain/listing"
	"github.com/estately/estately/internal/domain/store"
	"github.com/estately/estately/internal/domain/user"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
	"github.com/estately/estately/internal/shared/services/markdown"
	"github.com/estately/estately/internal/shared/utils"
)

type CreateContactRequestCommand struct {
	Store   *store.Store
	ItemID  *uint
	Inquiry contact.Inquiry
}

// CreateContactRequestUseCase records a visitor inquiry against a resolved
// store and notifies the owner. A failed notification is only logged.
type CreateContactRequestUseCase struct {
	repo     contact.Repository
	items    listing.ItemRepository
	userRepo user.Repository
	notifier Notifier
	markdown markdown.Service
	logger   logger.Interface
}

func NewCreateContactRequestUseCase(
	repo contact.Repository,
	items listing.ItemRepository,
	userRepo user.Repository,
	notifier Notifier,
	md markdown.Service,
	logger logger.Interface,
) *CreateContactRequestUseCase {
	return &CreateContactRequestUseCase{
		repo:     repo,
		items:    items,
		userRepo: userRepo,
		notifier: notifier,
		markdown: md,
		logger:   logger,
	}
}

func (uc *CreateContactRequestUseCase) Execute(ctx context.Context, cmd CreateContactRequestCommand) (*contact.Request, error) {
	var itemTitle string
	if cmd.ItemID != nil {
		item, err := uc.items.GetByID(ctx, *cmd.ItemID)
		if err != nil {
			return nil, fmt.Errorf("failed to get item: %w", err)
		}
		if item == nil || !item.IsPublic() || !item.BelongsTo(cmd.Store.ID()) {
			return nil, listing.ErrItemNotFound
		}
		itemTitle = item.Details().Title
	}

	inquiry := cmd.Inquiry
	inquiry.Name = uc.markdown.StripTags(inquiry.Name)
	inquiry.Phone = uc.markdown.StripTags(inquiry.Phone)
	inquiry.Message = uc.markdown.StripTags(inquiry.Message)

	req, err := contact.NewRequest(cmd.Store.ID(), cmd.ItemID, inquiry)
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}
	if err := uc.repo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create contact request: %w", err)
	}

	uc.notifyOwner(ctx, cmd.Store, itemTitle, req)
	return req, nil
}

func (uc *CreateContactRequestUseCase) notifyOwner(ctx context.Context, s *store.Store, itemTitle string, req *contact.Request) {
	owner, err := uc.userRepo.GetByID(ctx, s.OwnerID())
	if err != nil || owner == nil {
		uc.logger.Warnw("contact request owner lookup failed", "store_id", s.ID(), "error", err)
		return
	}
	in := req.Inquiry()
	err = uc.notifier.NotifyStoreOwner(owner.Email(), StoreNotification{
		StoreName: s.Branding().Name,
		ItemTitle: itemTitle,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
	})
	if err != nil {
		uc.logger.Errorw("failed to notify store owner", "store_id", s.ID(), "request_id", req.ID(), "error", err)
	}
}

type ListContactRequestsQuery struct {
	StoreID  uint
	Status   string
	Page     int
	PageSize int
}

// ContactRequestsUseCase serves the owner's inbox.
type ContactRequestsUseCase struct {
	repo   contact.Repository
	logger logger.Interface
}

func NewContactRequestsUseCase(repo contact.Repository, logger logger.Interface) *ContactRequestsUseCase {
	return &ContactRequestsUseCase{repo: repo, logger: logger}
}

func parseStatus(s string) (*contact.Status, error) {
	if s == "" {
		return nil, nil
	}
	status := contact.Status(s)
	if !status.IsValid() {
		return nil, contact.ErrInvalidStatus
	}
	return &status, nil
}

func (uc *ContactRequestsUseCase) List(ctx context.Context, q ListContactRequestsQuery) ([]*contact.Request, int64, error) {
	status, err := parseStatus(q.Status)
	if err != nil {
		return nil, 0, err
	}
	p := utils.ValidatePagination(q.Page, q.PageSize)
	reqs, total, err := uc.repo.List(ctx, contact.ListFilter{
		StoreID:  q.StoreID,
		Status:   status,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contact requests: %w", err)
	}
	return reqs, total, nil
}

func (uc *ContactRequestsUseCase) load(ctx context.Context, storeID, id uint) (*contact.Request, error) {
	req, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact request: %w", err)
	}
	if req == nil || req.IsDeleted() {
		return nil, contact.ErrContactRequestNotFound
	}
	if req.StoreID() != storeID {
		return nil, store.ErrForeignResource
	}
	return req, nil
}

func (uc *ContactRequestsUseCase) Get(ctx context.Context, storeID, id uint) (*contact.Request, error) {
	return uc.load(ctx, storeID, id)
}

func (uc *ContactRequestsUseCase) UpdateStatus(ctx context.Context, storeID, id uint, status string) (*contact.Request, error) {
	req, err := uc.load(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if err := req.ChangeStatus(contact.Status(status)); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to update contact request: %w", err)
	}
	return req, nil
}

func (uc *ContactRequestsUseCase) Delete(ctx context.Context, storeID, id uint) error {
	req, err := uc.load(ctx, storeID, id)
	if err != nil {
		return err
	}
	req.MarkDeleted()
	if err := uc.repo.Update(ctx, req); err != nil {
		return fmt.Errorf("failed to delete contact request: %w", err)
	}
	uc.logger.Infow("contact request deleted", "id", id, "store_id", storeID)
	return nil
}
