package farm

import (
	"fmt"
	"slices"
)

type MutationSource interface {
	Mutation(name string) (Mutation, bool)
}

type CropSource interface {
	Crop(name string) (Crop, bool)
}

// Source resolves catalog names. The catalog package provides the production
// implementation.
type Source interface {
	MutationSource
	CropSource
}

// IsMutationAllowed reports whether candidate may be added to selected for
// crop. Checks run in a fixed order and the first one that applies decides:
// the always-free Moist, moon gating, the Scorched and Dust special cases,
// then the recipe lockout.
func IsMutationAllowed(selected Selection, crop Crop, candidate string) bool {
	if candidate == MutationMoist {
		return true
	}

	if !crop.UnlocksGated() && IsMoonOnly(candidate) {
		return false
	}

	// Scorched can only be re-applied while one of its products is missing.
	if candidate == MutationScorched {
		return !(selected.Has(MutationFlux) && selected.Has(MutationPorcelain))
	}

	if candidate == MutationDust && selected.Has(MutationMoist) {
		return !selected.Has(MutationClay) && !selected.Has(MutationPorcelain)
	}

	// A product locks out all of its precursors. Moist never locks.
	for _, r := range recipeTable {
		if !selected.Has(r.Result) {
			continue
		}
		for _, ing := range IngredientClosure(r.Result) {
			if ing == MutationMoist {
				continue
			}
			if ing == candidate {
				return false
			}
		}
	}
	return true
}

// Rules applies the compatibility and pricing rules against a catalog, turning
// unknown names into ErrPreconditionViolation.
type Rules struct {
	src Source
}

func NewRules(src Source) *Rules {
	return &Rules{src: src}
}

func (r *Rules) Allowed(selected Selection, crop Crop, candidate string) (bool, error) {
	if err := r.checkCrop(crop); err != nil {
		return false, err
	}
	if _, ok := r.src.Mutation(candidate); !ok {
		return false, fmt.Errorf("%w: unknown mutation %q", ErrPreconditionViolation, candidate)
	}
	return IsMutationAllowed(selected, crop, candidate), nil
}

// checkCrop rejects crops the catalog does not know and exclusive lists that
// name unknown mutations.
func (r *Rules) checkCrop(crop Crop) error {
	if _, ok := r.src.Crop(crop.Name); !ok {
		return fmt.Errorf("%w: unknown crop %q", ErrPreconditionViolation, crop.Name)
	}
	for _, name := range crop.ExclusiveMutations {
		if _, ok := r.src.Mutation(name); !ok {
			return fmt.Errorf("%w: crop %q lists unknown exclusive mutation %q", ErrPreconditionViolation, crop.Name, name)
		}
	}
	return nil
}

// AllowedMutations keeps the candidates that may be added to selected, in
// input order.
func (r *Rules) AllowedMutations(selected Selection, crop Crop, candidates []string) ([]string, error) {
	out := make([]string, 0, len(candidates))
	for _, name := range candidates {
		ok, err := r.Allowed(selected, crop, name)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, name)
		}
	}
	return out, nil
}

// Resolve maps names to catalog mutations, preserving order.
func (r *Rules) Resolve(names []string) ([]Mutation, error) {
	out := make([]Mutation, 0, len(names))
	for _, name := range names {
		m, ok := r.src.Mutation(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown mutation %q", ErrPreconditionViolation, name)
		}
		out = append(out, m)
	}
	return out, nil
}

// Price resolves the selected names and prices the crop. Compatibility is not
// re-checked.
func (r *Rules) Price(crop Crop, weight float64, selected Selection) (PriceResult, error) {
	if err := r.checkCrop(crop); err != nil {
		return PriceResult{}, err
	}
	muts, err := r.Resolve(selected.Names())
	if err != nil {
		return PriceResult{}, err
	}
	return CalcPrice(crop, weight, muts)
}

// Blockers names the selected products whose precursor chain contains
// candidate. Useful when explaining why a mutation is disabled.
func Blockers(selected Selection, candidate string) []string {
	var out []string
	for _, r := range recipeTable {
		if !selected.Has(r.Result) || slices.Contains(out, r.Result) {
			continue
		}
		closure := IngredientClosure(r.Result)
		if candidate != MutationMoist && slices.Contains(closure, candidate) {
			out = append(out, r.Result)
		}
	}
	return out
}
