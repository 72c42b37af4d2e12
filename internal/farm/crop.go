package farm

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

type CropCategory string

const (
	CategoryNormal CropCategory = "normal"
	// CategoryMoon unlocks the moon-only mutation pool.
	CategoryMoon CropCategory = "moon"
)

func AllCropCategories() []CropCategory {
	return []CropCategory{CategoryNormal, CategoryMoon}
}

func (c CropCategory) IsValid() bool {
	switch c {
	case CategoryNormal, CategoryMoon:
		return true
	default:
		return false
	}
}

type Crop struct {
	Name               string
	Label              string
	PriceCoefficient   float64
	MaxWeight          float64
	GrowthSpeed        float64
	Category           CropCategory
	ExclusiveMutations []string
}

// NewCrop validates the scalar fields of a crop. Exclusive mutation names are
// checked against the mutation catalog by the catalog loader.
func NewCrop(c Crop) (Crop, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Label = strings.TrimSpace(c.Label)
	if err := c.Validate(); err != nil {
		return Crop{}, err
	}
	if len(c.ExclusiveMutations) > 0 {
		c.ExclusiveMutations = slices.Clone(c.ExclusiveMutations)
	}
	return c, nil
}

func (c Crop) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("crop name is required")
	}
	if math.IsNaN(c.PriceCoefficient) || c.PriceCoefficient < 0 {
		return fmt.Errorf("crop %q: price coefficient must be non-negative, got %v", c.Name, c.PriceCoefficient)
	}
	if math.IsNaN(c.MaxWeight) || math.IsInf(c.MaxWeight, 0) || c.MaxWeight <= 0 {
		return fmt.Errorf("crop %q: max weight must be positive, got %v", c.Name, c.MaxWeight)
	}
	if math.IsNaN(c.GrowthSpeed) || c.GrowthSpeed < 0 {
		return fmt.Errorf("crop %q: growth speed must be non-negative, got %v", c.Name, c.GrowthSpeed)
	}
	if !c.Category.IsValid() {
		return fmt.Errorf("crop %q: invalid category %q", c.Name, c.Category)
	}
	seen := make(map[string]bool, len(c.ExclusiveMutations))
	for _, name := range c.ExclusiveMutations {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("crop %q: empty exclusive mutation name", c.Name)
		}
		if seen[name] {
			return fmt.Errorf("crop %q: duplicate exclusive mutation %q", c.Name, name)
		}
		seen[name] = true
	}
	return nil
}

func (c Crop) DisplayName() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Name
}

func (c Crop) HasExclusive(name string) bool {
	return slices.Contains(c.ExclusiveMutations, name)
}

func (c Crop) UnlocksGated() bool {
	return c.Category == CategoryMoon
}

// GrowthKnown reports whether the crop has a measured growth speed.
func (c Crop) GrowthKnown() bool {
	return c.GrowthSpeed > 0
}
