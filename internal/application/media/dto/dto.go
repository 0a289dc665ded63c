package dto

import (
	"time"

	"github.com/estately/estately/internal/domain/media"
)

type FileDTO struct {
	ID          uint      `json:"id"`
	URL         string    `json:"url"`
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	Kind        string    `json:"kind"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToFileDTO(f *media.File) *FileDTO {
	return &FileDTO{
		ID:          f.ID(),
		URL:         f.URL(),
		Name:        f.Name(),
		ContentType: f.ContentType(),
		Kind:        string(f.Kind()),
		Size:        f.Size(),
		CreatedAt:   f.CreatedAt(),
	}
}
