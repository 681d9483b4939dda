package farm

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CropDefinition holds the procedural-model parameters for one crop type.
type CropDefinition struct {
	Name string `yaml:"name"`

	// Spacing is the candidate planting grid pitch in world units.
	Spacing float64 `yaml:"spacing"`
	// SkipChance is the fraction of grid cells left empty for natural sparsity.
	SkipChance float64 `yaml:"skip_chance"`

	Color [3]int `yaml:"color"`

	HeightMin float64 `yaml:"height_min"`
	HeightMax float64 `yaml:"height_max"`
	GirthMin  float64 `yaml:"girth_min"`
	GirthMax  float64 `yaml:"girth_max"`
	ScaleMin  float64 `yaml:"scale_min"`
	ScaleMax  float64 `yaml:"scale_max"`

	Sway SwayRange `yaml:"sway"`
}

// SwayRange bounds the idle wind-sway parameters drawn per instance.
type SwayRange struct {
	SpeedMin     float64 `yaml:"speed_min"`
	SpeedMax     float64 `yaml:"speed_max"`
	AmplitudeMin float64 `yaml:"amplitude_min"`
	AmplitudeMax float64 `yaml:"amplitude_max"`
}

type cropFile struct {
	Crops map[string]*CropDefinition `yaml:"crops"`
}

var definitions = defaultDefinitions()

// LoadCropConfig replaces the built-in crop definitions with the contents
// of a YAML file. Crops missing from the file keep their defaults.
func LoadCropConfig(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	var file cropFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing crop config: %w", err)
	}
	for key, def := range file.Crops {
		definitions[CropType(key)] = def
	}
	return nil
}

// MustLoadCropConfig loads crop definitions and panics on error.
func MustLoadCropConfig(filename string) {
	if err := LoadCropConfig(filename); err != nil {
		panic("Failed to load crop config: " + err.Error())
	}
}

// Definition returns the parameters for a crop type. Unknown types fall
// back to wheat so a bad allocation entry degrades instead of crashing.
func Definition(t CropType) *CropDefinition {
	if def, ok := definitions[t]; ok {
		return def
	}
	return definitions[CropWheat]
}

func defaultDefinitions() map[CropType]*CropDefinition {
	return map[CropType]*CropDefinition{
		CropWheat: {
			Name:       "Wheat",
			Spacing:    2.0,
			SkipChance: 0.15,
			Color:      [3]int{212, 180, 84},
			HeightMin:  2.0, HeightMax: 3.0,
			GirthMin: 0.05, GirthMax: 0.08,
			ScaleMin: 0.85, ScaleMax: 1.15,
			Sway: SwayRange{
				SpeedMin: 1.2, SpeedMax: 2.2,
				AmplitudeMin: 0.05, AmplitudeMax: 0.12,
			},
		},
		CropCorn: {
			Name:       "Corn",
			Spacing:    2.6,
			SkipChance: 0.10,
			Color:      [3]int{72, 132, 48},
			HeightMin:  3.4, HeightMax: 4.8,
			GirthMin: 0.09, GirthMax: 0.14,
			ScaleMin: 0.85, ScaleMax: 1.2,
			Sway: SwayRange{
				SpeedMin: 0.8, SpeedMax: 1.6,
				AmplitudeMin: 0.03, AmplitudeMax: 0.08,
			},
		},
		CropSoybean: {
			Name:       "Soybean",
			Spacing:    1.8,
			SkipChance: 0.12,
			Color:      [3]int{88, 148, 62},
			HeightMin:  0.9, HeightMax: 1.4,
			GirthMin: 0.45, GirthMax: 0.7,
			ScaleMin: 0.8, ScaleMax: 1.2,
			Sway: SwayRange{
				SpeedMin: 1.4, SpeedMax: 2.4,
				AmplitudeMin: 0.04, AmplitudeMax: 0.1,
			},
		},
		CropCotton: {
			Name:       "Cotton",
			Spacing:    2.2,
			SkipChance: 0.18,
			Color:      [3]int{96, 126, 70},
			HeightMin:  1.2, HeightMax: 1.8,
			GirthMin: 0.4, GirthMax: 0.6,
			ScaleMin: 0.8, ScaleMax: 1.15,
			Sway: SwayRange{
				SpeedMin: 1.0, SpeedMax: 2.0,
				AmplitudeMin: 0.04, AmplitudeMax: 0.09,
			},
		},
	}
}
