package usecases

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"hash/crc32"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/estately/estately/internal/application/testutil"
	"github.com/estately/estately/internal/domain/listing"
	"github.com/estately/estately/internal/domain/media"
	apperrors "github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/logger"
)

// 1x1 transparent PNG
var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89,
}

func newMedia(r *testutil.Repos, storage ObjectStorage) *MediaUseCase {
	return NewMediaUseCase(r.Files, r.Items, storage, r.Tx, 1<<20, logger.NewNopLogger())
}

func TestUpload_StoresObjectThenRow(t *testing.T) {
	r := testutil.NewRepos(t)
	tenant := r.NewTenant(t, "jane@example.com")
	item, err := listing.NewItem(tenant.Store.ID(), listing.ItemDetails{Title: "Loft"})
	require.NoError(t, err)
	require.NoError(t, r.Items.Create(context.Background(), item))
	itemID := item.ID()

	storage := new(testutil.MockObjectStorage)
	var body []byte
	storage.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
		return len(key) > 0 && bytes.HasPrefix([]byte(key), []byte("stores/"))
	}), "image/png", mock.Anything, int64(len(pngBytes))).
		Run(func(args mock.Arguments) { body, _ = io.ReadAll(args.Get(3).(io.Reader)) }).
		Return("https://cdn.example.com/obj", nil)

	f, err := newMedia(r, storage).Upload(context.Background(), UploadCommand{
		Store:      tenant.Store,
		UploaderID: tenant.User.ID(),
		Filename:   "Front View.PNG",
		Size:       int64(len(pngBytes)),
		Body:       bytes.NewReader(pngBytes),
		ItemID:     &itemID,
	})
	require.NoError(t, err)
	assert.Equal(t, pngBytes, body)
	assert.Equal(t, "image", string(f.Kind()))
	assert.Equal(t, "https://cdn.example.com/obj", f.URL())

	stored, err := r.Items.GetByID(context.Background(), itemID)
	require.NoError(t, err)
	assert.Equal(t, []uint{f.ID()}, stored.FileIDs())
}

func TestUpload_StorageFailureLeavesNoRow(t *testing.T) {
	r := testutil.NewRepos(t)
	tenant := r.NewTenant(t, "jane@example.com")
	storage := new(testutil.MockObjectStorage)
	storage.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("access denied"))
	uc := newMedia(r, storage)

	_, err := uc.Upload(context.Background(), UploadCommand{
		Store: tenant.Store, UploaderID: tenant.User.ID(), Filename: "a.png",
		Size: int64(len(pngBytes)), Body: bytes.NewReader(pngBytes),
	})
	assert.True(t, apperrors.IsConflictError(err))

	_, total, err := uc.List(context.Background(), ListFilesQuery{StoreID: tenant.Store.ID()})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestUpload_RejectsUnsupportedType(t *testing.T) {
	elf := []byte{0x7f, 'E', 'L', 'F', 0x02, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	tests := []struct {
		name     string
		filename string
		payload  []byte
	}{
		{"executable named as image", "photo.png", elf},
		{"plain zip archive", "listing.docx", zipArchive(t, "notes/readme.txt")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testutil.NewRepos(t)
			tenant := r.NewTenant(t, "jane@example.com")
			storage := new(testutil.MockObjectStorage)

			_, err := newMedia(r, storage).Upload(context.Background(), UploadCommand{
				Store: tenant.Store, Filename: tt.filename,
				Size: int64(len(tt.payload)), Body: bytes.NewReader(tt.payload),
			})
			assert.True(t, apperrors.IsBadRequestError(err))
			storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUpload_DetectsOfficeDocuments(t *testing.T) {
	r := testutil.NewRepos(t)
	tenant := r.NewTenant(t, "jane@example.com")
	docx := zipArchive(t, "[Content_Types].xml", "_rels/.rels", "word/document.xml")

	storage := new(testutil.MockObjectStorage)
	storage.On("Put", mock.Anything, mock.Anything,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		mock.Anything, int64(len(docx))).
		Return("https://cdn.example.com/doc", nil)

	f, err := newMedia(r, storage).Upload(context.Background(), UploadCommand{
		Store: tenant.Store, UploaderID: tenant.User.ID(), Filename: "brochure.docx",
		Size: int64(len(docx)), Body: bytes.NewReader(docx),
	})
	require.NoError(t, err)
	assert.Equal(t, media.KindDocument, f.Kind())
	storage.AssertExpectations(t)
}

// zipArchive writes stored (uncompressed) entries with sizes in the local
// headers, the layout office suites produce.
func zipArchive(t *testing.T, names ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		content := []byte("<x/>")
		w, err := zw.CreateRaw(&zip.FileHeader{
			Name:               name,
			Method:             zip.Store,
			CRC32:              crc32.ChecksumIEEE(content),
			CompressedSize64:   uint64(len(content)),
			UncompressedSize64: uint64(len(content)),
		})
		require.NoError(t, err)
		_, err = w.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestUpload_TooLarge(t *testing.T) {
	r := testutil.NewRepos(t)
	tenant := r.NewTenant(t, "jane@example.com")
	_, err := newMedia(r, new(testutil.MockObjectStorage)).Upload(context.Background(), UploadCommand{
		Store: tenant.Store, Filename: "big.png", Size: 2 << 20, Body: bytes.NewReader(pngBytes),
	})
	assert.True(t, apperrors.IsBadRequestError(err))
}

func TestDelete_StorageFailureKeepsRow(t *testing.T) {
	r := testutil.NewRepos(t)
	tenant := r.NewTenant(t, "jane@example.com")
	other := r.NewTenant(t, "bob@example.com")
	storage := new(testutil.MockObjectStorage)
	storage.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("https://cdn/x", nil)
	uc := newMedia(r, storage)

	f, err := uc.Upload(context.Background(), UploadCommand{
		Store: tenant.Store, Filename: "a.png", Size: int64(len(pngBytes)), Body: bytes.NewReader(pngBytes),
	})
	require.NoError(t, err)

	assert.True(t, apperrors.IsForbiddenError(uc.Delete(context.Background(), other.Store.ID(), f.ID())))

	storage.On("Delete", mock.Anything, f.Key()).Return(errors.New("timeout")).Once()
	err = uc.Delete(context.Background(), tenant.Store.ID(), f.ID())
	assert.True(t, apperrors.IsConflictError(err))
	kept, err := r.Files.GetByID(context.Background(), f.ID())
	require.NoError(t, err)
	assert.NotNil(t, kept)

	storage.On("Delete", mock.Anything, f.Key()).Return(nil)
	require.NoError(t, uc.Delete(context.Background(), tenant.Store.ID(), f.ID()))
	gone, err := r.Files.GetByID(context.Background(), f.ID())
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestDelete_ClearsReferencesAtomically(t *testing.T) {
	ctx := context.Background()
	r := testutil.NewRepos(t)
	tenant := r.NewTenant(t, "jane@example.com")
	storage := new(testutil.MockObjectStorage)
	storage.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("https://cdn/x", nil)
	uc := newMedia(r, storage)

	f, err := uc.Upload(ctx, UploadCommand{
		Store: tenant.Store, Filename: "logo.png", Size: int64(len(pngBytes)), Body: bytes.NewReader(pngBytes),
	})
	require.NoError(t, err)
	fileID := f.ID()

	branding := tenant.Store.Branding()
	branding.LogoFileID = &fileID
	branding.CoverFileID = &fileID
	require.NoError(t, tenant.Store.UpdateBranding(branding))
	require.NoError(t, r.Stores.Update(ctx, tenant.Store))

	member := &listing.Member{StoreID: tenant.Store.ID(), Name: "Ana", Email: "ana@example.com", PhotoFileID: &fileID}
	require.NoError(t, r.Members.Create(ctx, member))

	logoOf := func() *uint {
		s, err := r.Stores.GetByID(ctx, tenant.Store.ID())
		require.NoError(t, err)
		return s.Branding().LogoFileID
	}

	storage.On("Delete", mock.Anything, f.Key()).Return(errors.New("timeout")).Once()
	assert.True(t, apperrors.IsConflictError(uc.Delete(ctx, tenant.Store.ID(), fileID)))
	require.NotNil(t, logoOf())
	assert.Equal(t, fileID, *logoOf())

	storage.On("Delete", mock.Anything, f.Key()).Return(nil)
	require.NoError(t, uc.Delete(ctx, tenant.Store.ID(), fileID))

	assert.Nil(t, logoOf())
	s, err := r.Stores.GetByID(ctx, tenant.Store.ID())
	require.NoError(t, err)
	assert.Nil(t, s.Branding().CoverFileID)
	m, err := r.Members.GetByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Nil(t, m.PhotoFileID)
}
