package usecases

import (
	"context"
	"fmt"

	"github.com/estately/estately/internal/domain/store"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
)

type DNSRecords interface {
	CreateRecord(ctx context.Context, host string) error
	RecordExists(ctx context.Context, host string) (bool, error)
}

type CheckStoreDNSResult struct {
	Hostname string
	Exists   bool
	Repaired bool
}

type CheckStoreDNSUseCase struct {
	storeRepo store.Repository
	dns       DNSRecords
	logger    logger.Interface
}

func NewCheckStoreDNSUseCase(storeRepo store.Repository, dns DNSRecords, logger logger.Interface) *CheckStoreDNSUseCase {
	return &CheckStoreDNSUseCase{storeRepo: storeRepo, dns: dns, logger: logger}
}

// Execute reports whether the store's A record exists and, with repair,
// recreates a missing one.
func (uc *CheckStoreDNSUseCase) Execute(ctx context.Context, storeID uint, repair bool) (*CheckStoreDNSResult, error) {
	s, err := uc.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	if s == nil {
		return nil, store.ErrStoreNotFound
	}

	res := &CheckStoreDNSResult{Hostname: s.Hostname()}
	res.Exists, err = uc.dns.RecordExists(ctx, s.Hostname())
	if err != nil {
		return nil, errors.NewConflictError("failed to query DNS record", err.Error())
	}
	if res.Exists || !repair {
		return res, nil
	}

	if err := uc.dns.CreateRecord(ctx, s.Hostname()); err != nil {
		return nil, errors.NewConflictError("failed to recreate DNS record", err.Error())
	}
	uc.logger.Infow("store DNS record recreated", "store_id", s.ID(), "hostname", s.Hostname())
	res.Exists, res.Repaired = true, true
	return res, nil
}
