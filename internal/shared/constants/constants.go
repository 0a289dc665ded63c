package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	APIVersionPrefix = "/api/v1"

	HeaderAuthorization = "Authorization"
	HeaderStoreHostname = "X-Store-Hostname"
	HeaderStripeSig     = "Stripe-Signature"

	QueryHostname = "hostname"

	// gin context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserUUID  = "user_uuid"
	ContextKeyUserRole  = "user_role"
	ContextKeyStore     = "store"
	ContextKeyRequestID = "request_id"

	TableUsers                = "users"
	TableStores               = "stores"
	TableSubscriptions        = "subscriptions"
	TableProducts             = "products"
	TableItems                = "items"
	TableItemAmenities        = "item_amenities"
	TableItemFiles            = "item_files"
	TableRates                = "rates"
	TableFees                 = "fees"
	TableFloorPlans           = "floor_plans"
	TablePlanMarkers          = "plan_markers"
	TableBookedDates          = "booked_dates"
	TableAmenities            = "amenities"
	TableMembers              = "members"
	TableLinks                = "links"
	TableMetadatas            = "metadatas"
	TableContactRequests      = "contact_requests"
	TableAdminContactRequests = "admin_contact_requests"
	TableFiles                = "files"
	TableStates               = "states"
	TableCounties             = "counties"
	TableCities               = "cities"

	ErrMsgInternalServerError = "Internal server error occurred"
)
