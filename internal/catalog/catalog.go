// Package catalog loads and indexes the crop and mutation catalogs and checks
// them against the compiled-in recipe tables.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/appengine-ltd/harvest-calc/internal/farm"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is read-only after construction and safe for concurrent readers.
type Catalog struct {
	crops     []farm.Crop
	mutations []farm.Mutation
	cropIdx   map[string]int
	mutIdx    map[string]int
	labels    map[string]string
}

var _ farm.Source = (*Catalog)(nil)

// New validates crops and mutations and builds the lookup indexes.
func New(crops []farm.Crop, mutations []farm.Mutation) (*Catalog, error) {
	c := &Catalog{
		cropIdx: make(map[string]int, len(crops)),
		mutIdx:  make(map[string]int, len(mutations)),
		labels:  make(map[string]string, len(crops)+len(mutations)),
	}
	for i, raw := range mutations {
		m, err := farm.NewMutation(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: mutation[%d]: %w", ErrInvalidCatalog, i, err)
		}
		if _, dup := c.mutIdx[m.Name]; dup {
			return nil, fmt.Errorf("%w: mutation[%d]: duplicate name %q", ErrInvalidCatalog, i, m.Name)
		}
		c.mutIdx[m.Name] = len(c.mutations)
		c.mutations = append(c.mutations, m)
	}
	for i, raw := range crops {
		cr, err := farm.NewCrop(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: crop[%d]: %w", ErrInvalidCatalog, i, err)
		}
		if _, dup := c.cropIdx[cr.Name]; dup {
			return nil, fmt.Errorf("%w: crop[%d]: duplicate name %q", ErrInvalidCatalog, i, cr.Name)
		}
		c.cropIdx[cr.Name] = len(c.crops)
		c.crops = append(c.crops, cr)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	for _, m := range c.mutations {
		if m.Label != "" {
			c.labels[m.Label] = m.Name
		}
	}
	for _, cr := range c.crops {
		if cr.Label != "" {
			c.labels[cr.Label] = cr.Name
		}
	}
	return c, nil
}

// Validate checks the cross references: every exclusive mutation exists and
// every name the base, moon-only and recipe tables use is in the catalog.
func (c *Catalog) Validate() error {
	for _, cr := range c.crops {
		for _, name := range cr.ExclusiveMutations {
			if _, ok := c.mutIdx[name]; !ok {
				return fmt.Errorf("%w: crop %q: unknown exclusive mutation %q", ErrInvalidCatalog, cr.Name, name)
			}
		}
	}
	for _, name := range append(farm.BaseMutations(), farm.RecipeNames()...) {
		if _, ok := c.mutIdx[name]; !ok {
			return fmt.Errorf("%w: mutation %q required by the rule tables is missing", ErrInvalidCatalog, name)
		}
	}
	return nil
}

func (c *Catalog) Crops() []farm.Crop {
	return slices.Clone(c.crops)
}

func (c *Catalog) Mutations() []farm.Mutation {
	return slices.Clone(c.mutations)
}

func (c *Catalog) Crop(name string) (farm.Crop, bool) {
	i, ok := c.cropIdx[name]
	if !ok {
		return farm.Crop{}, false
	}
	return c.crops[i], true
}

func (c *Catalog) Mutation(name string) (farm.Mutation, bool) {
	i, ok := c.mutIdx[name]
	if !ok {
		return farm.Mutation{}, false
	}
	return c.mutations[i], true
}

// NameForLabel maps a display label back to the crop or mutation name.
func (c *Catalog) NameForLabel(label string) (string, bool) {
	name, ok := c.labels[label]
	return name, ok
}

// Resolve maps names to mutations in order, failing on the first unknown one.
func (c *Catalog) Resolve(names []string) ([]farm.Mutation, error) {
	return farm.NewRules(c).Resolve(names)
}

func (c *Catalog) CropNames() []string {
	return lo.Map(c.crops, func(cr farm.Crop, _ int) string { return cr.Name })
}

func (c *Catalog) MutationNames() []string {
	return lo.Map(c.mutations, func(m farm.Mutation, _ int) string { return m.Name })
}

// AllExclusive is the union of every crop's exclusive mutations.
func (c *Catalog) AllExclusive() []string {
	all := lo.FlatMap(c.crops, func(cr farm.Crop, _ int) []string { return cr.ExclusiveMutations })
	return lo.Uniq(all)
}

// SortedCrops returns crops of category ordered by display name using
// Chinese collation, which orders Han labels by pinyin. An empty category
// returns every crop.
func (c *Catalog) SortedCrops(category farm.CropCategory) []farm.Crop {
	out := lo.Filter(c.crops, func(cr farm.Crop, _ int) bool {
		return category == "" || cr.Category == category
	})
	col := collate.New(language.Chinese)
	sort.SliceStable(out, func(i, j int) bool {
		return col.CompareString(out[i].DisplayName(), out[j].DisplayName()) < 0
	})
	return out
}

// Selectable lists the non-base mutations offered for crop, in the order a
// picker shows them: the crop's exclusives, then recipe products with the
// highest tier first, then the remaining regular mutations in reverse catalog
// order. Moon-only names are dropped for crops that cannot receive them.
func (c *Catalog) Selectable(crop farm.Crop) []string {
	exclusive := c.AllExclusive()
	out := slices.Clone(crop.ExclusiveMutations)

	recipes := farm.Recipes()
	for i := len(recipes) - 1; i >= 0; i-- {
		name := recipes[i].Result
		if !crop.UnlocksGated() && farm.IsMoonOnly(name) {
			continue
		}
		if _, ok := c.mutIdx[name]; ok && !slices.Contains(out, name) {
			out = append(out, name)
		}
	}

	for i := len(c.mutations) - 1; i >= 0; i-- {
		name := c.mutations[i].Name
		switch {
		case farm.IsBaseMutation(name):
		case slices.Contains(exclusive, name):
		case !crop.UnlocksGated() && farm.IsMoonOnly(name):
		case slices.Contains(out, name):
		default:
			out = append(out, name)
		}
	}
	return out
}
