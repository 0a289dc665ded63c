package usecases

import (
	"context"
	"fmt"

	"github.com/estately/estately/internal/domain/listing"
	"github.com/estately/estately/internal/shared/db"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
)

type (
	RatesUseCase       = ResourceUseCase[listing.Rate, *listing.Rate]
	FeesUseCase        = ResourceUseCase[listing.Fee, *listing.Fee]
	FloorPlansUseCase  = ResourceUseCase[listing.FloorPlan, *listing.FloorPlan]
	PlanMarkersUseCase = ResourceUseCase[listing.PlanMarker, *listing.PlanMarker]
	BookedDatesUseCase = ResourceUseCase[listing.BookedDate, *listing.BookedDate]
	LinksUseCase       = ResourceUseCase[listing.Link, *listing.Link]
	AmenitiesUseCase   = ResourceUseCase[listing.Amenity, *listing.Amenity]
	MembersUseCase     = ResourceUseCase[listing.Member, *listing.Member]
	MetadataUseCase    = ResourceUseCase[listing.Metadata, *listing.Metadata]
)

// Repositories groups the storage ports of the listing module.
type Repositories struct {
	Items       listing.ItemRepository
	Rates       listing.RateRepository
	Fees        listing.FeeRepository
	FloorPlans  listing.FloorPlanRepository
	PlanMarkers listing.PlanMarkerRepository
	BookedDates listing.BookedDateRepository
	Links       listing.LinkRepository
	Amenities   listing.AmenityRepository
	Members     listing.MemberRepository
	Metadata    listing.MetadataRepository
}

// Catalog bundles the sub-resource use cases of a store's listings.
type Catalog struct {
	Rates       *RatesUseCase
	Fees        *FeesUseCase
	FloorPlans  *FloorPlansUseCase
	PlanMarkers *PlanMarkersUseCase
	BookedDates *BookedDatesUseCase
	Links       *LinksUseCase
	Amenities   *AmenitiesUseCase
	Members     *MembersUseCase
	Metadata    *MetadataUseCase

	metadataRepo listing.MetadataRepository
	txManager    db.Transactor
}

func NewCatalog(repos Repositories, guard *Guard, txManager db.Transactor, log logger.Interface) *Catalog {
	itemParent := func(ctx context.Context, storeID, itemID uint) error {
		_, err := guard.Item(ctx, storeID, itemID)
		return err
	}
	floorPlanParent := func(ctx context.Context, storeID, floorPlanID uint) error {
		_, err := guard.FloorPlan(ctx, storeID, floorPlanID)
		return err
	}

	return &Catalog{
		Rates: &RatesUseCase{repo: repos.Rates, txManager: txManager, logger: log, rules: resourceRules[listing.Rate]{
			name:        "rate",
			notFound:    listing.ErrRateNotFound,
			parentID:    func(r *listing.Rate) uint { return r.ItemID },
			setParent:   func(r *listing.Rate, id uint) { r.ItemID = id },
			checkParent: itemParent,
		}},
		Fees: &FeesUseCase{repo: repos.Fees, txManager: txManager, logger: log, rules: resourceRules[listing.Fee]{
			name:        "fee",
			notFound:    listing.ErrFeeNotFound,
			parentID:    func(f *listing.Fee) uint { return f.ItemID },
			setParent:   func(f *listing.Fee, id uint) { f.ItemID = id },
			checkParent: itemParent,
		}},
		FloorPlans: &FloorPlansUseCase{repo: repos.FloorPlans, txManager: txManager, logger: log, rules: resourceRules[listing.FloorPlan]{
			name:        "floor plan",
			notFound:    listing.ErrFloorPlanNotFound,
			parentID:    func(f *listing.FloorPlan) uint { return f.ItemID },
			setParent:   func(f *listing.FloorPlan, id uint) { f.ItemID = id },
			checkParent: itemParent,
			checkRefs: func(ctx context.Context, storeID uint, f *listing.FloorPlan) error {
				return guard.OptionalFile(ctx, storeID, f.ImageFileID)
			},
		}},
		PlanMarkers: &PlanMarkersUseCase{repo: repos.PlanMarkers, txManager: txManager, logger: log, rules: resourceRules[listing.PlanMarker]{
			name:        "plan marker",
			notFound:    listing.ErrPlanMarkerNotFound,
			parentID:    func(m *listing.PlanMarker) uint { return m.FloorPlanID },
			setParent:   func(m *listing.PlanMarker, id uint) { m.FloorPlanID = id },
			checkParent: floorPlanParent,
			checkRefs: func(ctx context.Context, storeID uint, m *listing.PlanMarker) error {
				return guard.OptionalFile(ctx, storeID, m.FileID)
			},
		}},
		BookedDates: &BookedDatesUseCase{repo: repos.BookedDates, txManager: txManager, logger: log, rules: resourceRules[listing.BookedDate]{
			name:        "booked date",
			notFound:    listing.ErrBookedDateNotFound,
			parentID:    func(b *listing.BookedDate) uint { return b.ItemID },
			setParent:   func(b *listing.BookedDate, id uint) { b.ItemID = id },
			checkParent: itemParent,
			checkSiblings: func(_ context.Context, b *listing.BookedDate, siblings []*listing.BookedDate) error {
				return listing.CheckOverlap(b, siblings)
			},
		}},
		Links: &LinksUseCase{repo: repos.Links, txManager: txManager, logger: log, rules: resourceRules[listing.Link]{
			name:        "link",
			notFound:    listing.ErrLinkNotFound,
			parentID:    func(l *listing.Link) uint { return l.ItemID },
			setParent:   func(l *listing.Link, id uint) { l.ItemID = id },
			checkParent: itemParent,
		}},
		Amenities: &AmenitiesUseCase{repo: repos.Amenities, txManager: txManager, logger: log, rules: resourceRules[listing.Amenity]{
			name:        "amenity",
			notFound:    listing.ErrAmenityNotFound,
			parentID:    func(a *listing.Amenity) uint { return a.StoreID },
			setParent:   func(a *listing.Amenity, id uint) { a.StoreID = id },
			checkParent: ownStore,
			checkRefs: func(ctx context.Context, storeID uint, a *listing.Amenity) error {
				exists, err := repos.Amenities.ExistsByName(ctx, storeID, a.Name, a.ID)
				if err != nil {
					return err
				}
				if exists {
					return listing.ErrAmenityExists
				}
				return nil
			},
			duplicate: listing.ErrAmenityExists,
		}},
		Members: &MembersUseCase{repo: repos.Members, txManager: txManager, logger: log, rules: resourceRules[listing.Member]{
			name:        "member",
			notFound:    listing.ErrMemberNotFound,
			parentID:    func(m *listing.Member) uint { return m.StoreID },
			setParent:   func(m *listing.Member, id uint) { m.StoreID = id },
			checkParent: ownStore,
			checkRefs: func(ctx context.Context, storeID uint, m *listing.Member) error {
				return guard.OptionalFile(ctx, storeID, m.PhotoFileID)
			},
			duplicate: listing.ErrMemberEmailUsed,
		}},
		Metadata: &MetadataUseCase{repo: repos.Metadata, txManager: txManager, logger: log, rules: resourceRules[listing.Metadata]{
			name:        "metadata",
			notFound:    listing.ErrMetadataNotFound,
			parentID:    func(m *listing.Metadata) uint { return m.StoreID },
			setParent:   func(m *listing.Metadata, id uint) { m.StoreID = id },
			checkParent: ownStore,
			duplicate:   errors.NewConflictError("metadata key already exists"),
		}},
		metadataRepo: repos.Metadata,
		txManager:    txManager,
	}
}

// UpsertMetadata writes value under key, reviving a deleted row with the
// same key.
func (c *Catalog) UpsertMetadata(ctx context.Context, storeID uint, m *listing.Metadata) (*listing.Metadata, error) {
	m.StoreID = storeID
	if err := m.Validate(); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	err := c.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := c.metadataRepo.GetByKey(txCtx, storeID, m.Key)
		if err != nil {
			return err
		}
		if existing == nil {
			m.ID, m.IsDeleted = 0, false
			if err := c.metadataRepo.Create(txCtx, m); err != nil {
				return fmt.Errorf("failed to create metadata: %w", err)
			}
			return nil
		}
		m.Record = existing.Record
		m.IsDeleted = false
		if err := c.metadataRepo.Update(txCtx, m); err != nil {
			return fmt.Errorf("failed to update metadata: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}
