package farm

import "slices"

const (
	MutationSilver    = "Silver"
	MutationGold      = "Gold"
	MutationCrystal   = "Crystal"
	MutationPrismatic = "Prismatic"
	MutationStarry    = "Starry"

	MutationMoist      = "Moist"
	MutationFrost      = "Frost"
	MutationFrozen     = "Frozen"
	MutationSolarFlare = "Solar Flare"
	MutationScorched   = "Scorched"
	MutationFlux       = "Flux"
	MutationDust       = "Dust"
	MutationClay       = "Clay"
	MutationPorcelain  = "Porcelain"
	MutationEclipse    = "Eclipse"
	MutationGloom      = "Gloom"
	MutationMeteor     = "Meteor"
)

// Recipe records that Result only appears when every ingredient is present.
type Recipe struct {
	Ingredients []string
	Result      string
}

var baseMutations = []string{
	MutationSilver,
	MutationGold,
	MutationCrystal,
	MutationPrismatic,
	MutationStarry, // moon crops only
}

// Table order is dependency order: a result is listed after every recipe
// producing one of its ingredients.
var recipeTable = []Recipe{
	{Ingredients: []string{MutationMoist, MutationFrost}, Result: MutationFrozen},
	{Ingredients: []string{MutationSolarFlare, MutationScorched}, Result: MutationFlux},
	{Ingredients: []string{MutationDust, MutationMoist}, Result: MutationClay},
	{Ingredients: []string{MutationClay, MutationScorched}, Result: MutationPorcelain},
}

var moonOnlyMutations = []string{
	MutationFlux,
	MutationEclipse,
	MutationGloom,
	MutationMeteor,
}

// result -> direct ingredients, merged across recipes sharing a result.
var recipeIngredients = buildIngredientIndex(recipeTable)

func buildIngredientIndex(recipes []Recipe) map[string][]string {
	idx := make(map[string][]string, len(recipes))
	for _, r := range recipes {
		idx[r.Result] = append(idx[r.Result], r.Ingredients...)
	}
	return idx
}

func BaseMutations() []string {
	return slices.Clone(baseMutations)
}

func IsBaseMutation(name string) bool {
	return slices.Contains(baseMutations, name)
}

func MoonOnlyMutations() []string {
	return slices.Clone(moonOnlyMutations)
}

func IsMoonOnly(name string) bool {
	return slices.Contains(moonOnlyMutations, name)
}

func Recipes() []Recipe {
	out := make([]Recipe, len(recipeTable))
	for i, r := range recipeTable {
		out[i] = Recipe{Ingredients: slices.Clone(r.Ingredients), Result: r.Result}
	}
	return out
}

func IsRecipeResult(name string) bool {
	_, ok := recipeIngredients[name]
	return ok
}

// RecipeNames lists every name the recipe and gating tables mention, in table
// order without duplicates.
func RecipeNames() []string {
	var out []string
	add := func(name string) {
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	for _, r := range recipeTable {
		for _, ing := range r.Ingredients {
			add(ing)
		}
		add(r.Result)
	}
	for _, name := range moonOnlyMutations {
		add(name)
	}
	add(MutationMoist)
	return out
}

// IngredientClosure returns every direct and indirect ingredient of result,
// first-seen order. A name that is not a recipe result has an empty closure.
// Each name is expanded at most once, so an accidental cycle terminates.
func IngredientClosure(result string) []string {
	var out []string
	seen := map[string]bool{}
	visited := map[string]bool{result: true}
	queue := []string{result}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		for _, ing := range recipeIngredients[name] {
			if !seen[ing] {
				seen[ing] = true
				out = append(out, ing)
			}
			if visited[ing] {
				continue
			}
			visited[ing] = true
			queue = append(queue, ing)
		}
	}
	return out
}
