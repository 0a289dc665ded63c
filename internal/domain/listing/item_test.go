package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem_Defaults(t *testing.T) {
	item, err := NewItem(3, ItemDetails{Title: "  Beach House "})
	require.NoError(t, err)
	assert.Equal(t, "Beach House", item.Details().Title)
	assert.Equal(t, StageDraft, item.Stage())
	assert.Equal(t, ListingSale, item.Details().ListingType)
	assert.False(t, item.IsPublic())
}

func TestNewItem_Validation(t *testing.T) {
	lat := 120.0
	tests := []struct {
		name    string
		storeID uint
		details ItemDetails
	}{
		{"no store", 0, ItemDetails{Title: "x"}},
		{"empty title", 1, ItemDetails{Title: " "}},
		{"bad stage", 1, ItemDetails{Title: "x", Stage: "sold"}},
		{"bad listing type", 1, ItemDetails{Title: "x", ListingType: "lease"}},
		{"negative bedrooms", 1, ItemDetails{Title: "x", Bedrooms: -1}},
		{"latitude", 1, ItemDetails{Title: "x", Latitude: &lat}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewItem(tt.storeID, tt.details)
			assert.Error(t, err)
		})
	}
}

func TestItem_FilesKeepOrderWithoutDuplicates(t *testing.T) {
	item, _ := NewItem(1, ItemDetails{Title: "x"})
	item.SetFiles([]uint{5, 3, 5, 0, 9})
	assert.Equal(t, []uint{5, 3, 9}, item.FileIDs())

	item.AddFile(3)
	item.AddFile(11)
	assert.Equal(t, []uint{5, 3, 9, 11}, item.FileIDs())
}

func TestItem_MarkDeleted(t *testing.T) {
	item, _ := NewItem(1, ItemDetails{Title: "x", Stage: StageActive})
	assert.True(t, item.IsPublic())
	item.MarkDeleted()
	assert.True(t, item.IsDeleted())
	assert.False(t, item.IsPublic())
}

func TestCheckOverlap(t *testing.T) {
	existing := []*BookedDate{
		{Record: Record{ID: 1}, StartDate: date(t, "2026-05-01"), EndDate: date(t, "2026-05-05")},
		{Record: Record{ID: 2, IsDeleted: true}, StartDate: date(t, "2026-06-01"), EndDate: date(t, "2026-06-10")},
	}

	tests := []struct {
		name    string
		booking *BookedDate
		wantErr bool
	}{
		{"touching end day", &BookedDate{StartDate: date(t, "2026-05-05"), EndDate: date(t, "2026-05-07")}, true},
		{"inside", &BookedDate{StartDate: date(t, "2026-05-02"), EndDate: date(t, "2026-05-03")}, true},
		{"after", &BookedDate{StartDate: date(t, "2026-05-06"), EndDate: date(t, "2026-05-08")}, false},
		{"overlaps deleted only", &BookedDate{StartDate: date(t, "2026-06-02"), EndDate: date(t, "2026-06-03")}, false},
		{"updating itself", &BookedDate{Record: Record{ID: 1}, StartDate: date(t, "2026-05-01"), EndDate: date(t, "2026-05-04")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckOverlap(tt.booking, existing)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBookingOverlap)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
