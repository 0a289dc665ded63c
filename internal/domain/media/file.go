package media

import (
	"fmt"
	"strings"
	"time"

	"github.com/estately/estately/internal/shared/biztime"
	"github.com/estately/estately/internal/shared/id"
	"github.com/estately/estately/internal/shared/sanitize"
)

type Kind string

const (
	KindImage    Kind = "image"
	KindVideo    Kind = "video"
	KindDocument Kind = "document"
)

func (k Kind) IsValid() bool {
	return k == KindImage || k == KindVideo || k == KindDocument
}

// acceptedTypes maps the sniffed MIME type of an upload to its kind.
// Anything missing here is rejected.
var acceptedTypes = map[string]Kind{
	"image/jpeg": KindImage,
	"image/png":  KindImage,
	"image/gif":  KindImage,
	"image/webp": KindImage,
	"image/avif": KindImage,
	"image/heic": KindImage,
	"image/tiff": KindImage,
	"image/bmp":  KindImage,

	"video/mp4":        KindVideo,
	"video/quicktime":  KindVideo,
	"video/webm":       KindVideo,
	"video/mpeg":       KindVideo,
	"video/x-msvideo":  KindVideo,
	"video/x-matroska": KindVideo,
	"video/3gpp":       KindVideo,

	"application/pdf":          KindDocument,
	"application/msword":       KindDocument,
	"application/vnd.ms-excel": KindDocument,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": KindDocument,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":       KindDocument,
	"application/vnd.oasis.opendocument.text":                                 KindDocument,
	"application/vnd.oasis.opendocument.spreadsheet":                          KindDocument,

	"text/plain": KindDocument,
	"text/csv":   KindDocument,
	"text/rtf":   KindDocument,
}

// KindOf classifies a sniffed content type, returning false when it is not
// accepted. Parameters such as charset are ignored.
func KindOf(contentType string) (Kind, bool) {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	kind, ok := acceptedTypes[ct]
	return kind, ok
}

// ObjectKey builds the storage key
// stores/{hostname}/files/{generated_id}_{filename}.{ext}.
func ObjectKey(hostname, originalName string) (string, error) {
	generated, err := id.Generate(id.FileKeyLength)
	if err != nil {
		return "", err
	}
	base, ext := sanitize.SplitExt(originalName)
	key := fmt.Sprintf("stores/%s/files/%s_%s", sanitize.Hostname(hostname), generated, sanitize.Filename(base))
	if ext != "" {
		key += "." + ext
	}
	return key, nil
}

// File is an uploaded media object owned by a store.
type File struct {
	id          uint
	storeID     uint
	uploaderID  uint
	key         string
	url         string
	name        string
	contentType string
	kind        Kind
	size        int64
	deleted     bool
	createdAt   time.Time
}

func NewFile(storeID, uploaderID uint, key, url, name, contentType string, kind Kind, size int64) (*File, error) {
	if storeID == 0 {
		return nil, fmt.Errorf("store is required")
	}
	if key == "" || url == "" {
		return nil, fmt.Errorf("storage key and url are required")
	}
	if !kind.IsValid() {
		return nil, ErrUnsupportedType
	}
	return &File{
		storeID:     storeID,
		uploaderID:  uploaderID,
		key:         key,
		url:         url,
		name:        name,
		contentType: contentType,
		kind:        kind,
		size:        size,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructFile(id, storeID, uploaderID uint, key, url, name, contentType string, kind Kind, size int64, deleted bool, createdAt time.Time) *File {
	return &File{
		id:          id,
		storeID:     storeID,
		uploaderID:  uploaderID,
		key:         key,
		url:         url,
		name:        name,
		contentType: contentType,
		kind:        kind,
		size:        size,
		deleted:     deleted,
		createdAt:   createdAt,
	}
}

func (f *File) ID() uint             { return f.id }
func (f *File) StoreID() uint        { return f.storeID }
func (f *File) UploaderID() uint     { return f.uploaderID }
func (f *File) Key() string          { return f.key }
func (f *File) URL() string          { return f.url }
func (f *File) Name() string         { return f.name }
func (f *File) ContentType() string  { return f.contentType }
func (f *File) Kind() Kind           { return f.kind }
func (f *File) Size() int64          { return f.size }
func (f *File) IsDeleted() bool      { return f.deleted }
func (f *File) CreatedAt() time.Time { return f.createdAt }

func (f *File) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("file ID is already set")
	}
	f.id = id
	return nil
}
