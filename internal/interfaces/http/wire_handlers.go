package http

import (
	"github.com/estately/estately/internal/interfaces/http/handlers"
	adminHandlers "github.com/estately/estately/internal/interfaces/http/handlers/admin"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler   *handlers.HealthHandler
	authHandler     *handlers.AuthHandler
	storeHandler    *handlers.StoreHandler
	itemHandler     *handlers.ItemHandler
	resourceHandler *handlers.ResourceHandler
	contactHandler  *handlers.ContactHandler
	fileHandler     *handlers.FileHandler
	billingHandler  *handlers.BillingHandler
	locationHandler *handlers.LocationHandler

	// Admin
	adminUserHandler  *adminHandlers.UserHandler
	adminStoreHandler *adminHandlers.StoreHandler
}

func (c *Container) initHandlers() {
	uc, log := c.ucs, c.log

	c.hdlrs = &allHandlers{
		healthHandler: handlers.NewHealthHandler(c.db, c.ext.Redis, log),
		authHandler: handlers.NewAuthHandler(
			uc.registerUC, uc.verifyEmailUC, uc.resendVerifyUC, uc.loginUC, uc.refreshTokenUC,
			uc.requestResetUC, uc.resetPasswordUC, uc.changePasswordUC, uc.getUserUC, log,
		),
		storeHandler:    handlers.NewStoreHandler(uc.getMyStoreUC, uc.updateMyStoreUC, uc.getPublicStoreUC),
		itemHandler:     handlers.NewItemHandler(uc.itemsUC, uc.publicUC),
		resourceHandler: handlers.NewResourceHandler(uc.catalog),
		contactHandler:  handlers.NewContactHandler(uc.createContactUC, uc.contactsUC, uc.adminContactsUC),
		fileHandler:     handlers.NewFileHandler(uc.mediaUC),
		billingHandler: handlers.NewBillingHandler(
			uc.webhookUC, uc.checkoutUC, uc.portalUC, uc.changePlanUC,
			uc.listProductsUC, uc.createProductUC, uc.setProductUC, uc.mySubscriptionUC, log,
		),
		locationHandler:   handlers.NewLocationHandler(uc.locationQueries, uc.importUC),
		adminUserHandler:  adminHandlers.NewUserHandler(uc.listUsersUC, uc.setUserBlockedUC, log),
		adminStoreHandler: adminHandlers.NewStoreHandler(uc.listStoresUC, uc.adminUpdateUC, uc.checkDNSUC),
	}
}
