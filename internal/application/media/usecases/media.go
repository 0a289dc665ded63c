package usecases

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"

	"github.com/estately/estately/internal/domain/listing"
	"github.com/estately/estately/internal/domain/media"
	"github.com/estately/estately/internal/domain/store"
	"github.com/estately/estately/internal/shared/db"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
	"github.com/estately/estately/internal/shared/utils"
)

// sniffLen matches the read limit mimetype applies by default.
const sniffLen = 3072

// ObjectStorage stores public media objects.
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, key string) error
}

type UploadCommand struct {
	Store      *store.Store
	UploaderID uint
	Filename   string
	Size       int64
	Body       io.Reader
	ItemID     *uint
}

type MediaUseCase struct {
	files     media.Repository
	items     listing.ItemRepository
	storage   ObjectStorage
	txManager db.Transactor
	maxBytes  int64
	logger    logger.Interface
}

func NewMediaUseCase(
	files media.Repository,
	items listing.ItemRepository,
	storage ObjectStorage,
	txManager db.Transactor,
	maxBytes int64,
	logger logger.Interface,
) *MediaUseCase {
	return &MediaUseCase{
		files:     files,
		items:     items,
		storage:   storage,
		txManager: txManager,
		maxBytes:  maxBytes,
		logger:    logger,
	}
}

// detectKind classifies an upload by its leading bytes only. The client
// supplied content type is never consulted.
func detectKind(head []byte) (string, media.Kind, error) {
	detected := mimetype.Detect(head).String()
	kind, ok := media.KindOf(detected)
	if !ok {
		return "", "", errors.NewBadRequestError(media.ErrUnsupportedType.Message, detected)
	}
	return detected, kind, nil
}

// Upload stores the object first and only then inserts the row. A storage
// failure leaves nothing behind.
func (uc *MediaUseCase) Upload(ctx context.Context, cmd UploadCommand) (*media.File, error) {
	if uc.maxBytes > 0 && cmd.Size > uc.maxBytes {
		return nil, media.ErrFileTooLarge
	}

	if cmd.ItemID != nil {
		item, err := uc.items.GetByID(ctx, *cmd.ItemID)
		if err != nil {
			return nil, fmt.Errorf("failed to get item: %w", err)
		}
		if item == nil || item.IsDeleted() {
			return nil, listing.ErrItemNotFound
		}
		if !item.BelongsTo(cmd.Store.ID()) {
			return nil, store.ErrForeignResource
		}
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(cmd.Body, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, errors.NewBadRequestError("failed to read upload", err.Error())
	}
	head = head[:n]
	contentType, kind, err := detectKind(head)
	if err != nil {
		return nil, err
	}

	key, err := media.ObjectKey(cmd.Store.Hostname(), cmd.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to generate object key: %w", err)
	}

	url, err := uc.storage.Put(ctx, key, contentType, io.MultiReader(bytes.NewReader(head), cmd.Body), cmd.Size)
	if err != nil {
		uc.logger.Errorw("failed to upload object", "key", key, "error", err)
		return nil, errors.NewConflictError(media.ErrStorageUnavailable.Message, err.Error())
	}

	file, err := media.NewFile(cmd.Store.ID(), cmd.UploaderID, key, url, cmd.Filename, contentType, kind, cmd.Size)
	if err != nil {
		return nil, err
	}
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.files.Create(txCtx, file); err != nil {
			return fmt.Errorf("failed to create file: %w", err)
		}
		if cmd.ItemID != nil {
			return uc.files.AttachToItem(txCtx, *cmd.ItemID, file.ID())
		}
		return nil
	})
	if err != nil {
		if derr := uc.storage.Delete(ctx, key); derr != nil {
			uc.logger.Warnw("orphaned object after failed insert", "key", key, "error", derr)
		}
		return nil, err
	}

	uc.logger.Infow("file uploaded", "file_id", file.ID(), "store_id", cmd.Store.ID(), "kind", kind)
	return file, nil
}

func (uc *MediaUseCase) load(ctx context.Context, storeID, id uint) (*media.File, error) {
	f, err := uc.files.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get file: %w", err)
	}
	if f == nil {
		return nil, media.ErrFileNotFound
	}
	if f.StoreID() != storeID {
		return nil, store.ErrForeignResource
	}
	return f, nil
}

// Delete removes the row and every reference to it, then the object, in one
// transaction. When storage refuses, the transaction rolls back and both the
// row and the object stay.
func (uc *MediaUseCase) Delete(ctx context.Context, storeID, id uint) error {
	f, err := uc.load(ctx, storeID, id)
	if err != nil {
		return err
	}
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.files.Delete(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete file: %w", err)
		}
		if err := uc.storage.Delete(txCtx, f.Key()); err != nil {
			uc.logger.Errorw("failed to delete object", "file_id", id, "key", f.Key(), "error", err)
			return errors.NewConflictError(media.ErrStorageUnavailable.Message, err.Error())
		}
		return nil
	})
	if err != nil {
		return err
	}
	uc.logger.Infow("file deleted", "file_id", id, "store_id", storeID)
	return nil
}

type ListFilesQuery struct {
	StoreID  uint
	Kind     string
	Page     int
	PageSize int
}

func (uc *MediaUseCase) List(ctx context.Context, q ListFilesQuery) ([]*media.File, int64, error) {
	var kind *media.Kind
	if q.Kind != "" {
		k := media.Kind(q.Kind)
		if !k.IsValid() {
			return nil, 0, errors.NewBadRequestError("invalid file kind", q.Kind)
		}
		kind = &k
	}
	p := utils.ValidatePagination(q.Page, q.PageSize)
	files, total, err := uc.files.List(ctx, q.StoreID, kind, p.Page, p.PageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list files: %w", err)
	}
	return files, total, nil
}
