package farm

import (
	"errors"
	"reflect"
	"testing"
)

func TestMoistAlwaysAllowed(t *testing.T) {
	fullChain := NewSelection(MutationMoist, MutationFrost, MutationFrozen, MutationDust, MutationClay, MutationScorched, MutationPorcelain, MutationFlux, MutationSolarFlare)
	selections := []Selection{nil, NewSelection(), NewSelection(MutationFrozen), NewSelection(MutationClay, MutationPorcelain), fullChain}
	for _, crop := range []Crop{testPotato(), testMoonMelon(), testRedEnvelope()} {
		for _, sel := range selections {
			if !IsMutationAllowed(sel, crop, MutationMoist) {
				t.Fatalf("Moist blocked for crop=%s selection=%v", crop.Name, sel.Names())
			}
		}
	}
}

func TestProductLocksOutPrecursors(t *testing.T) {
	crop := testPotato()
	sel := NewSelection(MutationFrozen)

	if IsMutationAllowed(sel, crop, MutationFrost) {
		t.Fatalf("expected Frost blocked once Frozen is selected")
	}
	if !IsMutationAllowed(sel, crop, MutationMoist) {
		t.Fatalf("expected Moist to stay free")
	}
	if !IsMutationAllowed(sel, crop, MutationFrozen) {
		t.Fatalf("expected Frozen itself to stay allowed")
	}
	if !IsMutationAllowed(sel, crop, "Thunder") {
		t.Fatalf("expected unrelated mutation allowed")
	}
}

func TestPrecursorsCoexistBeforeProduct(t *testing.T) {
	crop := testPotato()
	sel := NewSelection(MutationFrost, MutationDust)
	for _, name := range []string{MutationFrozen, MutationClay, MutationMoist, MutationSolarFlare} {
		if !IsMutationAllowed(sel, crop, name) {
			t.Fatalf("expected %s allowed with only precursors selected", name)
		}
	}
}

func TestMultiLevelChainLocksIndirectIngredients(t *testing.T) {
	crop := testPotato()
	sel := NewSelection(MutationPorcelain)
	if IsMutationAllowed(sel, crop, MutationClay) {
		t.Fatalf("expected Clay blocked by Porcelain")
	}
	// Dust without Moist falls through to the recipe lockout.
	if IsMutationAllowed(sel, crop, MutationDust) {
		t.Fatalf("expected Dust blocked by Porcelain through Clay")
	}
	if !IsMutationAllowed(sel, crop, MutationFrost) {
		t.Fatalf("expected Frost unaffected by Porcelain")
	}
}

func TestMoonGating(t *testing.T) {
	for _, name := range MoonOnlyMutations() {
		if IsMutationAllowed(NewSelection(), testPotato(), name) {
			t.Fatalf("expected %s gated for normal crop", name)
		}
		if IsMutationAllowed(NewSelection(MutationMoist, "Thunder"), testRedEnvelope(), name) {
			t.Fatalf("expected %s gated regardless of selection", name)
		}
		if !IsMutationAllowed(NewSelection(), testMoonMelon(), name) {
			t.Fatalf("expected %s allowed for moon crop", name)
		}
	}
}

func TestScorchedSpecialCase(t *testing.T) {
	crop := testMoonMelon()
	tests := []struct {
		name     string
		selected Selection
		want     bool
	}{
		{name: "empty", selected: NewSelection(), want: true},
		{name: "flux only", selected: NewSelection(MutationFlux), want: true},
		{name: "porcelain only", selected: NewSelection(MutationPorcelain), want: true},
		{name: "flux and porcelain", selected: NewSelection(MutationFlux, MutationPorcelain), want: false},
	}
	for _, tc := range tests {
		if got := IsMutationAllowed(tc.selected, crop, MutationScorched); got != tc.want {
			t.Fatalf("%s: Scorched allowed=%v want=%v", tc.name, got, tc.want)
		}
	}
}

func TestDustSpecialCase(t *testing.T) {
	crop := testPotato()
	tests := []struct {
		name     string
		selected Selection
		want     bool
	}{
		{name: "moist only", selected: NewSelection(MutationMoist), want: true},
		{name: "moist and clay", selected: NewSelection(MutationMoist, MutationClay), want: false},
		{name: "moist and porcelain", selected: NewSelection(MutationMoist, MutationPorcelain), want: false},
		{name: "clay without moist", selected: NewSelection(MutationClay), want: false},
		{name: "frozen without moist", selected: NewSelection(MutationFrozen), want: true},
		{name: "moist and frozen", selected: NewSelection(MutationMoist, MutationFrozen), want: true},
	}
	for _, tc := range tests {
		if got := IsMutationAllowed(tc.selected, crop, MutationDust); got != tc.want {
			t.Fatalf("%s: Dust allowed=%v want=%v", tc.name, got, tc.want)
		}
	}
}

func TestGatingPrecedesScorchedCase(t *testing.T) {
	if IsMutationAllowed(NewSelection(), testPotato(), MutationFlux) {
		t.Fatalf("expected Flux gated on normal crop")
	}
}

func TestRulesAllowedUnknownCandidate(t *testing.T) {
	rules := testRules()
	_, err := rules.Allowed(NewSelection(), testPotato(), "Glitter")
	if !errors.Is(err, ErrPreconditionViolation) {
		t.Fatalf("expected ErrPreconditionViolation, got %v", err)
	}

	crop := testPotato()
	crop.ExclusiveMutations = []string{"Missing"}
	_, err = rules.Allowed(NewSelection(), crop, MutationFrost)
	if !errors.Is(err, ErrPreconditionViolation) {
		t.Fatalf("expected ErrPreconditionViolation for bad exclusive list, got %v", err)
	}
}

func TestRulesUnknownCrop(t *testing.T) {
	rules := testRules()
	crop := Crop{Name: "Glass Pumpkin", PriceCoefficient: 10, MaxWeight: 5, Category: CategoryNormal}
	if _, err := rules.Allowed(NewSelection(), crop, MutationFrost); !errors.Is(err, ErrPreconditionViolation) {
		t.Fatalf("Allowed: expected ErrPreconditionViolation, got %v", err)
	}
	if _, err := rules.Price(crop, 2, NewSelection(MutationFrost)); !errors.Is(err, ErrPreconditionViolation) {
		t.Fatalf("Price: expected ErrPreconditionViolation, got %v", err)
	}
}

func TestRulesAllowedMutationsFilters(t *testing.T) {
	rules := testRules()
	got, err := rules.AllowedMutations(NewSelection(MutationFrozen), testPotato(), []string{MutationFrost, MutationMoist, MutationEclipse, "Thunder"})
	if err != nil {
		t.Fatalf("allowed mutations: %v", err)
	}
	want := []string{MutationMoist, "Thunder"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
}

func TestAllowedSelectionRoundTripPrices(t *testing.T) {
	rules := testRules()
	order := []string{
		MutationMoist, MutationFrost, MutationFrozen, MutationScorched, MutationSolarFlare,
		MutationFlux, MutationDust, MutationClay, MutationPorcelain, MutationEclipse,
		MutationGold, MutationSilver, "Thunder", "Lucky Red",
	}
	for _, crop := range []Crop{testPotato(), testMoonMelon(), testRedEnvelope()} {
		sel := NewSelection()
		for _, name := range order {
			ok, err := rules.Allowed(sel, crop, name)
			if err != nil {
				t.Fatalf("%s: allowed %s: %v", crop.Name, name, err)
			}
			if ok {
				sel.Add(name)
			}
		}
		if _, err := rules.Price(crop, crop.MaxWeight, sel); err != nil {
			t.Fatalf("%s: price of %v: %v", crop.Name, sel.Names(), err)
		}
	}
}

func TestRulesPriceUnknownName(t *testing.T) {
	rules := testRules()
	_, err := rules.Price(testPotato(), 2, NewSelection("Nope"))
	if !errors.Is(err, ErrPreconditionViolation) {
		t.Fatalf("expected ErrPreconditionViolation, got %v", err)
	}
}

func TestBlockers(t *testing.T) {
	sel := NewSelection(MutationFrozen, MutationPorcelain)
	if got := Blockers(sel, MutationScorched); !reflect.DeepEqual(got, []string{MutationPorcelain}) {
		t.Fatalf("Scorched blockers=%v", got)
	}
	if got := Blockers(sel, MutationMoist); len(got) != 0 {
		t.Fatalf("Moist should never be blocked, got %v", got)
	}
	if got := Blockers(sel, MutationFrost); !reflect.DeepEqual(got, []string{MutationFrozen}) {
		t.Fatalf("Frost blockers=%v", got)
	}
}
