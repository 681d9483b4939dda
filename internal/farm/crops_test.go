package farm

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefinition(t *testing.T) {
	t.Run("Known Crops Have Sane Parameters", func(t *testing.T) {
		for _, crop := range AllCropTypes {
			def := Definition(crop)
			if def == nil {
				t.Fatalf("no definition for %s", crop)
			}
			if def.Spacing <= 0 {
				t.Errorf("%s spacing = %v, want > 0", crop, def.Spacing)
			}
			if def.HeightMin > def.HeightMax {
				t.Errorf("%s height range inverted: [%v, %v]", crop, def.HeightMin, def.HeightMax)
			}
			if def.SkipChance < 0 || def.SkipChance >= 1 {
				t.Errorf("%s skip chance = %v, want [0, 1)", crop, def.SkipChance)
			}
		}
	})

	t.Run("Unknown Crop Falls Back To Wheat", func(t *testing.T) {
		got := Definition(CropType("kale"))
		if got != Definition(CropWheat) {
			t.Error("unknown crop should degrade to the wheat definition")
		}
	})
}

func TestLoadCropConfig(t *testing.T) {
	// definitions is package state; restore it after the override below.
	defer func() { definitions = defaultDefinitions() }()

	t.Run("Overrides Listed Crops Only", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "crops.yaml")
		data := []byte(`
crops:
  wheat:
    name: "Tall Wheat"
    spacing: 3.5
    skip_chance: 0.2
    color: [200, 170, 80]
    height_min: 4.0
    height_max: 5.0
    girth_min: 0.05
    girth_max: 0.08
    scale_min: 0.9
    scale_max: 1.1
`)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}
		if err := LoadCropConfig(path); err != nil {
			t.Fatalf("LoadCropConfig: %v", err)
		}

		wheat := Definition(CropWheat)
		if wheat.Spacing != 3.5 || wheat.Name != "Tall Wheat" {
			t.Errorf("wheat override not applied: %+v", wheat)
		}
		// Corn was absent from the file and keeps its default.
		if corn := Definition(CropCorn); corn.Name != "Corn" {
			t.Errorf("corn definition disturbed: %+v", corn)
		}
	})

	t.Run("Missing File Errors", func(t *testing.T) {
		if err := LoadCropConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})
}
