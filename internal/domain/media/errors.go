package media

import "github.com/estately/estately/internal/shared/errors"

var (
	ErrFileNotFound       = errors.NewNotFoundError("file not found")
	ErrUnsupportedType    = errors.NewBadRequestError("unsupported file type")
	ErrFileTooLarge       = errors.NewBadRequestError("file is too large")
	ErrStorageUnavailable = errors.NewConflictError("file storage request failed")
)
