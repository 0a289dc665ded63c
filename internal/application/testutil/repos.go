// Package testutil wires sqlite-backed repositories and testify mocks for
// application use case tests.
package testutil

import (
	"testing"

	"gorm.io/gorm"

	"github.com/estately/estately/internal/domain/contact"
	"github.com/estately/estately/internal/domain/listing"
	"github.com/estately/estately/internal/domain/location"
	"github.com/estately/estately/internal/domain/media"
	"github.com/estately/estately/internal/domain/store"
	"github.com/estately/estately/internal/domain/subscription"
	"github.com/estately/estately/internal/domain/user"
	"github.com/estately/estately/internal/infrastructure/persistence/testdb"
	"github.com/estately/estately/internal/infrastructure/repository"
	"github.com/estately/estately/internal/shared/db"
	"github.com/estately/estately/internal/shared/logger"
)

// Repos holds one of every repository over a fresh in-memory database.
type Repos struct {
	DB            *gorm.DB
	Tx            *db.TransactionManager
	Users         user.Repository
	Stores        store.Repository
	Subscriptions subscription.Repository
	Products      subscription.ProductRepository
	Items         listing.ItemRepository
	Rates         listing.RateRepository
	Fees          listing.FeeRepository
	FloorPlans    listing.FloorPlanRepository
	PlanMarkers   listing.PlanMarkerRepository
	BookedDates   listing.BookedDateRepository
	Links         listing.LinkRepository
	Members       listing.MemberRepository
	Amenities     listing.AmenityRepository
	Metadata      listing.MetadataRepository
	Contacts      contact.Repository
	AdminContacts contact.AdminRepository
	Files         media.Repository
	Locations     location.Repository
}

func NewRepos(t testing.TB) *Repos {
	t.Helper()
	gdb := testdb.New(t)
	log := logger.NewNopLogger()

	return &Repos{
		DB:            gdb,
		Tx:            db.NewTransactionManager(gdb),
		Users:         repository.NewUserRepository(gdb, log),
		Stores:        repository.NewStoreRepository(gdb, log),
		Subscriptions: repository.NewSubscriptionRepository(gdb, log),
		Products:      repository.NewProductRepository(gdb, log),
		Items:         repository.NewItemRepository(gdb, log),
		Rates:         repository.NewRateRepository(gdb, log),
		Fees:          repository.NewFeeRepository(gdb, log),
		FloorPlans:    repository.NewFloorPlanRepository(gdb, log),
		PlanMarkers:   repository.NewPlanMarkerRepository(gdb, log),
		BookedDates:   repository.NewBookedDateRepository(gdb, log),
		Links:         repository.NewLinkRepository(gdb, log),
		Members:       repository.NewMemberRepository(gdb, log),
		Amenities:     repository.NewAmenityRepository(gdb, log),
		Metadata:      repository.NewMetadataRepository(gdb, log),
		Contacts:      repository.NewContactRequestRepository(gdb, log),
		AdminContacts: repository.NewAdminContactRequestRepository(gdb, log),
		Files:         repository.NewFileRepository(gdb, log),
		Locations:     repository.NewLocationRepository(gdb, log),
	}
}
