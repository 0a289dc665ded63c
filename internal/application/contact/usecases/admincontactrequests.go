package usecases

import (
	"context"
	"fmt"

	"github.com/estately/estately/internal/domain/contact"
	"github.com/estately/estately/internal/shared/db"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
	"github.com/estately/estately/internal/shared/services/markdown"
	"github.com/estately/estately/internal/shared/utils"
)

// AdminContactRequestsUseCase handles inquiries addressed to the platform
// itself.
type AdminContactRequestsUseCase struct {
	repo      contact.AdminRepository
	notifier  Notifier
	markdown  markdown.Service
	txManager db.Transactor
	logger    logger.Interface
}

func NewAdminContactRequestsUseCase(
	repo contact.AdminRepository,
	notifier Notifier,
	md markdown.Service,
	txManager db.Transactor,
	logger logger.Interface,
) *AdminContactRequestsUseCase {
	return &AdminContactRequestsUseCase{
		repo:      repo,
		notifier:  notifier,
		markdown:  md,
		txManager: txManager,
		logger:    logger,
	}
}

// Create stores the request only if the admin notification goes out.
func (uc *AdminContactRequestsUseCase) Create(ctx context.Context, inquiry contact.Inquiry, company string) (*contact.AdminRequest, error) {
	inquiry.Name = uc.markdown.StripTags(inquiry.Name)
	inquiry.Phone = uc.markdown.StripTags(inquiry.Phone)
	inquiry.Message = uc.markdown.StripTags(inquiry.Message)

	req, err := contact.NewAdminRequest(inquiry, uc.markdown.StripTags(company))
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.repo.Create(txCtx, req); err != nil {
			return fmt.Errorf("failed to create admin contact request: %w", err)
		}
		in := req.Inquiry()
		if err := uc.notifier.NotifyAdmin(AdminNotification{
			Name:    in.Name,
			Email:   in.Email,
			Phone:   in.Phone,
			Company: req.Company(),
			Message: in.Message,
		}); err != nil {
			uc.logger.Errorw("failed to notify admin", "error", err)
			return errors.NewConflictError(contact.ErrAdminNotifyFailed.Message, err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (uc *AdminContactRequestsUseCase) List(ctx context.Context, status string, page, pageSize int) ([]*contact.AdminRequest, int64, error) {
	st, err := parseStatus(status)
	if err != nil {
		return nil, 0, err
	}
	p := utils.ValidatePagination(page, pageSize)
	reqs, total, err := uc.repo.List(ctx, st, p.Page, p.PageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list admin contact requests: %w", err)
	}
	return reqs, total, nil
}

func (uc *AdminContactRequestsUseCase) UpdateStatus(ctx context.Context, id uint, status string) (*contact.AdminRequest, error) {
	req, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin contact request: %w", err)
	}
	if req == nil {
		return nil, contact.ErrContactRequestNotFound
	}
	if err := req.ChangeStatus(contact.Status(status)); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to update admin contact request: %w", err)
	}
	return req, nil
}
