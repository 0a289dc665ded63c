package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostname(t *testing.T) {
	assert.Equal(t, "3f2a-demo-estately-app", Hostname("3f2a.Demo.estately.app"))
	assert.Equal(t, "my-store-com", Hostname(" my_store.com "))
}

func TestFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Façade Été", "facade-ete"},
		{"floor plan (v2)", "floor-plan-v2"},
		{"___", "file"},
		{"", "file"},
		{"ÜBER_cool--pic", "uber_cool-pic"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.in))
		})
	}

	long := Filename(strings.Repeat("a", 200))
	assert.Len(t, long, 64)
}

func TestSplitExt(t *testing.T) {
	base, ext := SplitExt("../../etc/House Photo.JPG")
	assert.Equal(t, "House Photo", base)
	assert.Equal(t, "jpg", ext)

	base, ext = SplitExt(`C:\docs\brochure`)
	assert.Equal(t, "brochure", base)
	assert.Equal(t, "", ext)
}
