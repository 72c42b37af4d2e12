package farm

import (
	"fmt"
	"math"
)

// MinWeightRatio is the smallest harvest, as a fraction of max weight, the
// game produces.
const MinWeightRatio = 0.03

type PriceResult struct {
	BaseFactor    float64
	SpecialFactor float64
	WeightFactor  float64
	// MutateFactor is the sum of regular multipliers without the implicit 1.
	MutateFactor float64
	TotalPrice   float64
}

// MidFactor is the product of every factor except the regular mutation term.
func (p PriceResult) MidFactor() float64 {
	return p.WeightFactor * p.BaseFactor * p.SpecialFactor
}

type factorFold struct {
	base    float64
	special float64
	mutate  float64
}

func foldMutations(crop Crop, mutations []Mutation) factorFold {
	f := factorFold{base: 1, special: 1}
	for _, m := range mutations {
		switch Classify(crop, m.Name) {
		case KindBase:
			f.base = math.Max(f.base, m.Multiplier)
		case KindExclusive:
			f.special = math.Max(f.special, m.Multiplier)
		default:
			f.mutate += m.Multiplier
		}
	}
	return f
}

// CalcPrice prices a harvested crop:
//
//	round(coef, 4) * weight^1.5 * base * special * (1 + sum(regular))
//
// Base and exclusive mutations take the strongest multiplier, regular ones
// stack. The mutation list is assumed to be compatible already.
func CalcPrice(crop Crop, weight float64, mutations []Mutation) (PriceResult, error) {
	if err := CheckWeight(crop, weight); err != nil {
		return PriceResult{}, err
	}

	f := foldMutations(crop, mutations)
	weightFactor := math.Pow(weight, 1.5)
	total := roundTo(crop.PriceCoefficient, 4) * weightFactor * f.base * f.special * (1 + f.mutate)

	return PriceResult{
		BaseFactor:    f.base,
		SpecialFactor: f.special,
		WeightFactor:  weightFactor,
		MutateFactor:  f.mutate,
		TotalPrice:    total,
	}, nil
}

func CheckWeight(crop Crop, weight float64) error {
	lo, hi := WeightRange(crop)
	if math.IsNaN(weight) || weight < lo || weight > hi {
		return fmt.Errorf("%w: weight %.4g kg outside %.4g-%.4g kg for %s", ErrInvalidInput, weight, lo, hi, crop.Name)
	}
	return nil
}

func roundTo(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.RoundToEven(v*p) / p
}
