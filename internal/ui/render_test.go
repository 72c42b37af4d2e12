package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/appengine-ltd/harvest-calc/internal/farm"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0"},
		{in: 999.4, want: "999"},
		{in: 1234567.5, want: "1,234,568"},
	}
	for _, tc := range tests {
		if got := FormatPrice(tc.in); got != tc.want {
			t.Fatalf("FormatPrice(%v)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestMutationLabel(t *testing.T) {
	crop := farm.Crop{Name: "Red Envelope Fruit", ExclusiveMutations: []string{"Lucky Red"}}
	tests := []struct {
		m    farm.Mutation
		want string
	}{
		{m: farm.Mutation{Name: farm.MutationGold, Multiplier: 3.5}, want: "x3.5 Gold"},
		{m: farm.Mutation{Name: "Lucky Red", Label: "鸿运", Multiplier: 8}, want: "x8 鸿运"},
		{m: farm.Mutation{Name: farm.MutationFrost, Multiplier: 1}, want: "+1 Frost"},
	}
	for _, tc := range tests {
		if got := MutationLabel(crop, tc.m); got != tc.want {
			t.Fatalf("MutationLabel(%s)=%q want=%q", tc.m.Name, got, tc.want)
		}
	}
}

func TestWritePrice(t *testing.T) {
	crop := farm.Crop{Name: "Potato", PriceCoefficient: 100, MaxWeight: 8, GrowthSpeed: 120, Category: farm.CategoryNormal}
	muts := []farm.Mutation{{Name: farm.MutationGold, Color: farm.ColorGold, Multiplier: 3.5}, {Name: farm.MutationFrost, Color: farm.ColorGray, Multiplier: 1}}
	res, err := farm.CalcPrice(crop, 4, muts)
	if err != nil {
		t.Fatalf("calc: %v", err)
	}
	var buf bytes.Buffer
	err = WritePrice(&buf, Price{Crop: crop, Weight: 4, Selected: muts, Result: res, Growth: 8 * time.Minute, GrowthSet: true})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Potato", "4.00 kg (50.0%)", "8m0s", "x3.5 Gold", "+1 Frost", "x2 (1 + 1)", "5,600"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteOptionsMarksBlocked(t *testing.T) {
	crop := farm.Crop{Name: "Potato"}
	var buf bytes.Buffer
	err := WriteOptions(&buf, crop, []Option{
		{Mutation: farm.Mutation{Name: farm.MutationFrozen, Multiplier: 4}, Selected: true, Allowed: true},
		{Mutation: farm.Mutation{Name: farm.MutationFrost, Multiplier: 1}, Blockers: []string{farm.MutationFrozen}},
	})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "[x] +4 Frozen") || !strings.Contains(out, "+1 Frost (blocked by Frozen)") {
		t.Fatalf("unexpected options output:\n%s", out)
	}
}

func TestWriteRecipesListsLockouts(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecipes(&buf, farm.Recipes()); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Clay, Scorched, Dust") {
		t.Fatalf("expected Porcelain lockout chain:\n%s", out)
	}
}
