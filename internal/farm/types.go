package farm

// CropType identifies one of the supported crops.
type CropType string

const (
	CropWheat   CropType = "wheat"
	CropCorn    CropType = "corn"
	CropSoybean CropType = "soybean"
	CropCotton  CropType = "cotton"
)

// AllCropTypes lists the supported crops in their conventional display order.
var AllCropTypes = []CropType{CropWheat, CropCorn, CropSoybean, CropCotton}

// CropAllocation is one entry of the allocation list handed to the scene by
// the recommendation engine. Percentages are accepted as-is; the layout
// tiles whatever it receives, even when the list does not sum to 100.
type CropAllocation struct {
	Type       CropType
	Percentage float64
	Acres      float64
}
