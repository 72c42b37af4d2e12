package farm

import (
	"fmt"
	"math"
	"time"
)

func MinWeight(crop Crop) float64 {
	return MinWeightRatio * crop.MaxWeight
}

func WeightRange(crop Crop) (float64, float64) {
	return MinWeight(crop), crop.MaxWeight
}

func WeightPercent(crop Crop, weight float64) float64 {
	return weight / crop.MaxWeight * 100
}

// WeightFromPercent converts a size percentage into kilograms, rounded to
// 10 g like the in-game scale.
func WeightFromPercent(crop Crop, percent float64) (float64, error) {
	if math.IsNaN(percent) || percent < MinWeightRatio*100 || percent > 100 {
		return 0, fmt.Errorf("%w: percent %.4g outside %.0f-100", ErrInvalidInput, percent, MinWeightRatio*100)
	}
	return scaleWeight(crop, math.Round(percent*crop.MaxWeight)/100), nil
}

// MaxGrowthRate is the seconds it takes a fully grown crop to gain one
// percent. Zero when growth speed is unknown.
func MaxGrowthRate(crop Crop) float64 {
	return crop.GrowthSpeed * crop.MaxWeight / 100
}

// WeightFromGrowthRate derives weight from the observed seconds per percent
// of growth, which scales linearly with weight.
func WeightFromGrowthRate(crop Crop, secondsPerPercent float64) (float64, error) {
	if !crop.GrowthKnown() {
		return 0, fmt.Errorf("%w: growth speed of %s is unknown", ErrInvalidInput, crop.Name)
	}
	maxRate := MaxGrowthRate(crop)
	lo := maxRate * MinWeightRatio
	if math.IsNaN(secondsPerPercent) || secondsPerPercent < lo || secondsPerPercent > maxRate {
		return 0, fmt.Errorf("%w: growth rate %.4g s/%% outside %.4g-%.4g", ErrInvalidInput, secondsPerPercent, lo, maxRate)
	}
	return scaleWeight(crop, math.Round(crop.MaxWeight*secondsPerPercent/maxRate*100)/100), nil
}

// scaleWeight keeps a rounded scale reading inside the crop's weight range.
// Rounding to 10 g can otherwise step below the minimum for small crops.
func scaleWeight(crop Crop, w float64) float64 {
	lo, hi := WeightRange(crop)
	return math.Min(hi, math.Max(lo, w))
}

// GrowthTime is the full growth time of a crop harvested at weight. The bool
// is false when the crop's growth speed is unknown.
func GrowthTime(crop Crop, weight float64) (time.Duration, bool) {
	if !crop.GrowthKnown() {
		return 0, false
	}
	secsPerPercent := crop.GrowthSpeed / 100 * weight
	total := math.Round(secsPerPercent * 100)
	return time.Duration(total) * time.Second, true
}
