package models

// All lists every persistence model, in dependency order, for schema
// bootstrapping in tests.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&StoreModel{},
		&ProductModel{},
		&SubscriptionModel{},
		&FileModel{},
		&StateModel{},
		&CountyModel{},
		&CityModel{},
		&AmenityModel{},
		&MemberModel{},
		&MetadataModel{},
		&ItemModel{},
		&ItemAmenityModel{},
		&ItemFileModel{},
		&RateModel{},
		&FeeModel{},
		&FloorPlanModel{},
		&PlanMarkerModel{},
		&BookedDateModel{},
		&LinkModel{},
		&ContactRequestModel{},
		&AdminContactRequestModel{},
	}
}
