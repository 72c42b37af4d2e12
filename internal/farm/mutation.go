package farm

import (
	"fmt"
	"math"
	"strings"
)

type ColorTier string

const (
	ColorGray    ColorTier = "gray"
	ColorGreen   ColorTier = "green"
	ColorBlue    ColorTier = "blue"
	ColorGold    ColorTier = "gold"
	ColorRainbow ColorTier = "rainbow"
	ColorPurple  ColorTier = "purple"
)

func AllColorTiers() []ColorTier {
	return []ColorTier{ColorGray, ColorGreen, ColorBlue, ColorGold, ColorRainbow, ColorPurple}
}

func (c ColorTier) IsValid() bool {
	switch c {
	case ColorGray, ColorGreen, ColorBlue, ColorGold, ColorRainbow, ColorPurple:
		return true
	default:
		return false
	}
}

type Mutation struct {
	Name       string
	Label      string
	Color      ColorTier
	Multiplier float64
}

func NewMutation(m Mutation) (Mutation, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Label = strings.TrimSpace(m.Label)
	if err := m.Validate(); err != nil {
		return Mutation{}, err
	}
	return m, nil
}

func (m Mutation) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("mutation name is required")
	}
	if !m.Color.IsValid() {
		return fmt.Errorf("mutation %q: invalid color %q", m.Name, m.Color)
	}
	if math.IsNaN(m.Multiplier) || math.IsInf(m.Multiplier, 0) || m.Multiplier < 0 {
		return fmt.Errorf("mutation %q: multiplier must be non-negative, got %v", m.Name, m.Multiplier)
	}
	return nil
}

func (m Mutation) DisplayName() string {
	if m.Label != "" {
		return m.Label
	}
	return m.Name
}

// MutationKind is the pricing category of a mutation for a given crop.
type MutationKind int

const (
	KindRegular MutationKind = iota
	KindBase
	KindExclusive
)

func (k MutationKind) String() string {
	switch k {
	case KindBase:
		return "base"
	case KindExclusive:
		return "exclusive"
	default:
		return "regular"
	}
}

// Classify puts a mutation name into exactly one pricing category. Base
// membership is global and wins over the crop's exclusive list.
func Classify(crop Crop, name string) MutationKind {
	if IsBaseMutation(name) {
		return KindBase
	}
	if crop.HasExclusive(name) {
		return KindExclusive
	}
	return KindRegular
}
