package listing

import (
	"fmt"
	"strings"
)

type FloorPlan struct {
	Record
	ItemID      uint
	Name        string
	ImageFileID *uint
	Bedrooms    int
	Bathrooms   int
	Area        float64
	Position    int
}

func (f *FloorPlan) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		return fmt.Errorf("floor plan name is required")
	}
	if f.Bedrooms < 0 || f.Bathrooms < 0 || f.Area < 0 || f.Position < 0 {
		return fmt.Errorf("floor plan counts cannot be negative")
	}
	return nil
}

// PlanMarker pins a point of interest on a floor plan image. X and Y are
// percentages of the image size.
type PlanMarker struct {
	Record
	FloorPlanID uint
	Label       string
	X           float64
	Y           float64
	FileID      *uint
}

func (m *PlanMarker) Validate() error {
	m.Label = strings.TrimSpace(m.Label)
	if m.Label == "" {
		return fmt.Errorf("marker label is required")
	}
	if m.X < 0 || m.X > 100 || m.Y < 0 || m.Y > 100 {
		return fmt.Errorf("marker position must be within 0-100")
	}
	return nil
}
