package farm

type mutationTable map[string]Mutation

func (t mutationTable) Mutation(name string) (Mutation, bool) {
	m, ok := t[name]
	return m, ok
}

type testCatalog struct {
	mutationTable
	crops map[string]Crop
}

func (c testCatalog) Crop(name string) (Crop, bool) {
	cr, ok := c.crops[name]
	return cr, ok
}

func testRules() *Rules {
	crops := map[string]Crop{}
	for _, cr := range []Crop{testPotato(), testMoonMelon(), testRedEnvelope()} {
		crops[cr.Name] = cr
	}
	return NewRules(testCatalog{mutationTable: testMutations(), crops: crops})
}

func testMutations() mutationTable {
	list := []Mutation{
		{Name: MutationSilver, Color: ColorGray, Multiplier: 2},
		{Name: MutationGold, Color: ColorGold, Multiplier: 3.5},
		{Name: MutationCrystal, Color: ColorBlue, Multiplier: 6},
		{Name: MutationPrismatic, Color: ColorRainbow, Multiplier: 10},
		{Name: MutationStarry, Color: ColorPurple, Multiplier: 12},
		{Name: MutationMoist, Color: ColorGray, Multiplier: 0.5},
		{Name: MutationFrost, Color: ColorGray, Multiplier: 1},
		{Name: MutationFrozen, Color: ColorBlue, Multiplier: 4},
		{Name: MutationSolarFlare, Color: ColorGold, Multiplier: 3},
		{Name: MutationScorched, Color: ColorGreen, Multiplier: 1.2},
		{Name: MutationFlux, Color: ColorPurple, Multiplier: 9},
		{Name: MutationDust, Color: ColorGray, Multiplier: 0.8},
		{Name: MutationClay, Color: ColorGreen, Multiplier: 2.5},
		{Name: MutationPorcelain, Color: ColorGold, Multiplier: 7},
		{Name: MutationEclipse, Color: ColorPurple, Multiplier: 5},
		{Name: MutationGloom, Color: ColorPurple, Multiplier: 4.5},
		{Name: MutationMeteor, Color: ColorPurple, Multiplier: 6.5},
		{Name: "Thunder", Color: ColorBlue, Multiplier: 1.5},
		{Name: "Lucky Red", Color: ColorRainbow, Multiplier: 8},
		{Name: "Double Lucky", Color: ColorRainbow, Multiplier: 15},
	}
	t := make(mutationTable, len(list))
	for _, m := range list {
		t[m.Name] = m
	}
	return t
}

func testPotato() Crop {
	return Crop{Name: "Potato", PriceCoefficient: 152.0123, MaxWeight: 8, GrowthSpeed: 120, Category: CategoryNormal}
}

func testMoonMelon() Crop {
	return Crop{Name: "Moon Melon", PriceCoefficient: 310.5, MaxWeight: 20, GrowthSpeed: 0, Category: CategoryMoon}
}

func testRedEnvelope() Crop {
	return Crop{
		Name:               "Red Envelope Fruit",
		PriceCoefficient:   8320.7714,
		MaxWeight:          0.6,
		GrowthSpeed:        300,
		Category:           CategoryNormal,
		ExclusiveMutations: []string{"Lucky Red", "Double Lucky"},
	}
}
