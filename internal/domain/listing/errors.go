package listing

import "github.com/estately/estately/internal/shared/errors"

var (
	ErrItemNotFound       = errors.NewNotFoundError("item not found")
	ErrRateNotFound       = errors.NewNotFoundError("rate not found")
	ErrFeeNotFound        = errors.NewNotFoundError("fee not found")
	ErrFloorPlanNotFound  = errors.NewNotFoundError("floor plan not found")
	ErrPlanMarkerNotFound = errors.NewNotFoundError("plan marker not found")
	ErrBookedDateNotFound = errors.NewNotFoundError("booked date not found")
	ErrAmenityNotFound    = errors.NewNotFoundError("amenity not found")
	ErrMemberNotFound     = errors.NewNotFoundError("member not found")
	ErrLinkNotFound       = errors.NewNotFoundError("link not found")
	ErrMetadataNotFound   = errors.NewNotFoundError("metadata not found")

	ErrBookingOverlap  = errors.NewConflictError("booked dates overlap an existing booking")
	ErrAmenityExists   = errors.NewConflictError("an amenity with this name already exists")
	ErrMemberEmailUsed = errors.NewBadRequestError("a member with this email already exists")
	ErrForeignAmenity  = errors.NewForbiddenError("amenity belongs to another store")
)
