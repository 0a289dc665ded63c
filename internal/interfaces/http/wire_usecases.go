package http

import (
	billingUsecases "github.com/estately/estately/internal/application/billing/usecases"
	contactUsecases "github.com/estately/estately/internal/application/contact/usecases"
	listingUsecases "github.com/estately/estately/internal/application/listing/usecases"
	locationUsecases "github.com/estately/estately/internal/application/location/usecases"
	mediaUsecases "github.com/estately/estately/internal/application/media/usecases"
	storeUsecases "github.com/estately/estately/internal/application/store/usecases"
	userUsecases "github.com/estately/estately/internal/application/user/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// User & Auth
	registerUC       *userUsecases.RegisterWithPasswordUseCase
	verifyEmailUC    *userUsecases.VerifyEmailUseCase
	resendVerifyUC   *userUsecases.ResendVerificationUseCase
	loginUC          *userUsecases.LoginWithPasswordUseCase
	refreshTokenUC   *userUsecases.RefreshTokenUseCase
	requestResetUC   *userUsecases.RequestPasswordResetUseCase
	resetPasswordUC  *userUsecases.ResetPasswordUseCase
	changePasswordUC *userUsecases.ChangePasswordUseCase
	getUserUC        *userUsecases.GetUserUseCase
	listUsersUC      *userUsecases.ListUsersUseCase
	setUserBlockedUC *userUsecases.SetUserBlockedUseCase

	// Store
	resolver         *storeUsecases.Resolver
	statusSyncer     *storeUsecases.StatusSyncer
	syncStatusesUC   *storeUsecases.SyncStoreStatusesUseCase
	getMyStoreUC     *storeUsecases.GetMyStoreUseCase
	updateMyStoreUC  *storeUsecases.UpdateMyStoreUseCase
	getPublicStoreUC *storeUsecases.GetPublicStoreUseCase
	listStoresUC     *storeUsecases.ListStoresUseCase
	adminUpdateUC    *storeUsecases.AdminUpdateStoreUseCase
	checkDNSUC       *storeUsecases.CheckStoreDNSUseCase

	// Billing
	webhookUC        *billingUsecases.HandleWebhookUseCase
	checkoutUC       *billingUsecases.CreateCheckoutSessionUseCase
	portalUC         *billingUsecases.CreatePortalSessionUseCase
	changePlanUC     *billingUsecases.ChangePlanUseCase
	listProductsUC   *billingUsecases.ListProductsUseCase
	createProductUC  *billingUsecases.CreateProductUseCase
	setProductUC     *billingUsecases.SetProductActiveUseCase
	mySubscriptionUC *billingUsecases.GetMySubscriptionUseCase

	// Listing
	itemsUC  *listingUsecases.ItemsUseCase
	catalog  *listingUsecases.Catalog
	publicUC *listingUsecases.PublicListingUseCase

	// Contact
	createContactUC *contactUsecases.CreateContactRequestUseCase
	contactsUC      *contactUsecases.ContactRequestsUseCase
	adminContactsUC *contactUsecases.AdminContactRequestsUseCase

	// Media & locations
	mediaUC         *mediaUsecases.MediaUseCase
	locationQueries *locationUsecases.LocationQueries
	importUC        *locationUsecases.ImportLocationsUseCase
}

func (c *Container) initUseCases() {
	cfg, log, r, s, ext := c.cfg, c.log, c.repos, c.svcs, c.ext

	uc := &allUseCases{}

	uc.registerUC = userUsecases.NewRegisterWithPasswordUseCase(
		r.userRepo, r.storeRepo, s.txManager, s.hasher, ext.DNS, ext.Mailer, cfg.Service.Domain, log,
	)
	uc.verifyEmailUC = userUsecases.NewVerifyEmailUseCase(r.userRepo, log)
	uc.resendVerifyUC = userUsecases.NewResendVerificationUseCase(r.userRepo, ext.Mailer, log)
	uc.loginUC = userUsecases.NewLoginWithPasswordUseCase(r.userRepo, s.hasher, s.jwtService, log)
	uc.refreshTokenUC = userUsecases.NewRefreshTokenUseCase(r.userRepo, s.jwtService, log)
	uc.requestResetUC = userUsecases.NewRequestPasswordResetUseCase(r.userRepo, s.resetThrottle, ext.Mailer, log)
	uc.resetPasswordUC = userUsecases.NewResetPasswordUseCase(r.userRepo, s.hasher, ext.Mailer, log)
	uc.changePasswordUC = userUsecases.NewChangePasswordUseCase(r.userRepo, s.hasher, ext.Mailer, log)
	uc.getUserUC = userUsecases.NewGetUserUseCase(r.userRepo, log)
	uc.listUsersUC = userUsecases.NewListUsersUseCase(r.userRepo, log)
	uc.setUserBlockedUC = userUsecases.NewSetUserBlockedUseCase(r.userRepo, log)

	uc.resolver = storeUsecases.NewResolver(r.storeRepo, r.userRepo, log)
	uc.statusSyncer = storeUsecases.NewStatusSyncer(r.storeRepo, r.subscriptionRepo, log)
	uc.syncStatusesUC = storeUsecases.NewSyncStoreStatusesUseCase(r.storeRepo, uc.statusSyncer, log)
	uc.getMyStoreUC = storeUsecases.NewGetMyStoreUseCase(r.storeRepo, log)
	uc.updateMyStoreUC = storeUsecases.NewUpdateMyStoreUseCase(r.storeRepo, r.fileRepo, s.txManager, log)
	uc.getPublicStoreUC = storeUsecases.NewGetPublicStoreUseCase(uc.resolver)
	uc.listStoresUC = storeUsecases.NewListStoresUseCase(r.storeRepo, log)
	uc.adminUpdateUC = storeUsecases.NewAdminUpdateStoreUseCase(r.storeRepo, log)
	uc.checkDNSUC = storeUsecases.NewCheckStoreDNSUseCase(r.storeRepo, ext.DNS, log)

	uc.webhookUC = billingUsecases.NewHandleWebhookUseCase(
		r.subscriptionRepo, r.productRepo, ext.Gateway, uc.statusSyncer, s.txManager, log,
	)
	uc.checkoutUC = billingUsecases.NewCreateCheckoutSessionUseCase(
		r.userRepo, r.subscriptionRepo, r.productRepo, ext.Gateway, s.txManager, log,
	)
	uc.portalUC = billingUsecases.NewCreatePortalSessionUseCase(r.subscriptionRepo, ext.Gateway, log)
	uc.changePlanUC = billingUsecases.NewChangePlanUseCase(r.subscriptionRepo, r.productRepo, ext.Gateway, s.txManager, log)
	uc.listProductsUC = billingUsecases.NewListProductsUseCase(r.productRepo, log)
	uc.createProductUC = billingUsecases.NewCreateProductUseCase(r.productRepo, ext.Gateway, log)
	uc.setProductUC = billingUsecases.NewSetProductActiveUseCase(r.productRepo, log)
	uc.mySubscriptionUC = billingUsecases.NewGetMySubscriptionUseCase(r.subscriptionRepo, log)

	lr := r.listing
	guard := listingUsecases.NewGuard(lr.Items, lr.FloorPlans, lr.Members, lr.Amenities, r.fileRepo)
	uc.itemsUC = listingUsecases.NewItemsUseCase(lr.Items, r.locationRepo, guard, s.markdown, s.txManager, log)
	uc.catalog = listingUsecases.NewCatalog(lr, guard, s.txManager, log)
	uc.publicUC = listingUsecases.NewPublicListingUseCase(lr, guard)

	uc.createContactUC = contactUsecases.NewCreateContactRequestUseCase(
		r.contactRepo, lr.Items, r.userRepo, s.notifier, s.markdown, log,
	)
	uc.contactsUC = contactUsecases.NewContactRequestsUseCase(r.contactRepo, log)
	uc.adminContactsUC = contactUsecases.NewAdminContactRequestsUseCase(r.adminContactRepo, s.notifier, s.markdown, s.txManager, log)

	uc.mediaUC = mediaUsecases.NewMediaUseCase(r.fileRepo, lr.Items, ext.Storage, s.txManager, int64(cfg.Storage.MaxUploadMB)<<20, log)
	uc.locationQueries = locationUsecases.NewLocationQueries(r.locationRepo)
	uc.importUC = locationUsecases.NewImportLocationsUseCase(r.locationRepo, s.txManager, log)

	c.ucs = uc
}
