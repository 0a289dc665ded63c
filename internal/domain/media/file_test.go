package media

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		contentType string
		want        Kind
		ok          bool
	}{
		{"image/png", KindImage, true},
		{"image/jpeg", KindImage, true},
		{"video/mp4", KindVideo, true},
		{"application/pdf", KindDocument, true},
		{"text/plain; charset=utf-8", KindDocument, true},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", KindDocument, true},
		{"video/quicktime", KindVideo, true},
		{"application/zip", "", false},
		{"image/svg+xml", "", false},
		{"application/x-msdownload", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			got, ok := KindOf(tt.contentType)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestObjectKey(t *testing.T) {
	key, err := ObjectKey("Demo.Estately.app", "Floor Plan (Final).PNG")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^stores/demo-estately-app/files/[0-9A-Za-z]{16}_floor-plan-final\.png$`), key)

	other, err := ObjectKey("Demo.Estately.app", "Floor Plan (Final).PNG")
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}

func TestObjectKey_NoExtension(t *testing.T) {
	key, err := ObjectKey("a.b", "README")
	require.NoError(t, err)
	assert.Regexp(t, `^stores/a-b/files/[0-9A-Za-z]{16}_readme$`, key)
}

func TestNewFile(t *testing.T) {
	f, err := NewFile(1, 2, "k", "https://cdn/k", "a.png", "image/png", KindImage, 10)
	require.NoError(t, err)
	assert.False(t, f.IsDeleted())

	_, err = NewFile(1, 2, "k", "u", "a", "x", "archive", 1)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
