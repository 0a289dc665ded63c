package http

import (
	"gorm.io/gorm"

	listingUsecases "github.com/estately/estately/internal/application/listing/usecases"
	"github.com/estately/estately/internal/domain/contact"
	"github.com/estately/estately/internal/domain/location"
	"github.com/estately/estately/internal/domain/media"
	"github.com/estately/estately/internal/domain/store"
	"github.com/estately/estately/internal/domain/subscription"
	"github.com/estately/estately/internal/domain/user"
	"github.com/estately/estately/internal/infrastructure/cache"
	"github.com/estately/estately/internal/infrastructure/repository"
	"github.com/estately/estately/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo         user.Repository
	storeRepo        store.Repository
	subscriptionRepo subscription.Repository
	productRepo      subscription.ProductRepository
	productCache     *cache.CachedProductRepository
	contactRepo      contact.Repository
	adminContactRepo contact.AdminRepository
	fileRepo         media.Repository
	locationRepo     location.Repository
	listing          listingUsecases.Repositories
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	productCache := cache.NewCachedProductRepository(repository.NewProductRepository(db, log), log)

	return &repositories{
		userRepo:         repository.NewUserRepository(db, log),
		storeRepo:        repository.NewStoreRepository(db, log),
		subscriptionRepo: repository.NewSubscriptionRepository(db, log),
		productRepo:      productCache,
		productCache:     productCache,
		contactRepo:      repository.NewContactRequestRepository(db, log),
		adminContactRepo: repository.NewAdminContactRequestRepository(db, log),
		fileRepo:         repository.NewFileRepository(db, log),
		locationRepo:     repository.NewLocationRepository(db, log),
		listing: listingUsecases.Repositories{
			Items:       repository.NewItemRepository(db, log),
			Rates:       repository.NewRateRepository(db, log),
			Fees:        repository.NewFeeRepository(db, log),
			FloorPlans:  repository.NewFloorPlanRepository(db, log),
			PlanMarkers: repository.NewPlanMarkerRepository(db, log),
			BookedDates: repository.NewBookedDateRepository(db, log),
			Links:       repository.NewLinkRepository(db, log),
			Amenities:   repository.NewAmenityRepository(db, log),
			Members:     repository.NewMemberRepository(db, log),
			Metadata:    repository.NewMetadataRepository(db, log),
		},
	}
}
