package farm

import "github.com/rishik7575/3d-farm-visualizer/internal/geom"

// CropSection is one crop's strip of the land plot.
type CropSection struct {
	Type       CropType
	Percentage float64
	// Width is the strip's extent along X in world units.
	Width float64
	// XOffset is the strip's left edge; the first section starts at
	// -sizeUnits/2 and each following section starts where the previous
	// one ended.
	XOffset float64
	Tint    geom.Color3
}

// LayoutSections partitions the plot width among the allocations, walking
// them in input order. Zero-percentage entries produce no section.
//
// Percentages are deliberately not renormalized: an allocation list summing
// to more or less than 100 tiles to more or less than the plot width.
func LayoutSections(allocs []CropAllocation, sizeUnits float64) []CropSection {
	sections := make([]CropSection, 0, len(allocs))
	cursor := -sizeUnits / 2

	for _, alloc := range allocs {
		if alloc.Percentage <= 0 {
			continue
		}
		width := sizeUnits * alloc.Percentage / 100
		def := Definition(alloc.Type)
		sections = append(sections, CropSection{
			Type:       alloc.Type,
			Percentage: alloc.Percentage,
			Width:      width,
			XOffset:    cursor,
			Tint:       geom.RGB(def.Color[0], def.Color[1], def.Color[2]),
		})
		cursor += width
	}
	return sections
}
