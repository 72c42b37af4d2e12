package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/appengine-ltd/harvest-calc/internal/farm"
	"github.com/appengine-ltd/harvest-calc/internal/logging"
)

//go:embed data/crops.toml data/mutations.toml
var builtin embed.FS

// Paths names external catalog files. The format follows the extension:
// .toml for the native layout, .json for the game export layout.
type Paths struct {
	Crops     string
	Mutations string
}

func (p Paths) IsZero() bool {
	return strings.TrimSpace(p.Crops) == "" && strings.TrimSpace(p.Mutations) == ""
}

type cropRecord struct {
	Name               string   `toml:"name"`
	Label              string   `toml:"label"`
	PriceCoefficient   float64  `toml:"price_coefficient"`
	MaxWeight          float64  `toml:"max_weight"`
	GrowthSpeed        float64  `toml:"growth_speed"`
	Category           string   `toml:"category"`
	ExclusiveMutations []string `toml:"exclusive_mutations"`
}

type mutationRecord struct {
	Name       string  `toml:"name"`
	Label      string  `toml:"label"`
	Color      string  `toml:"color"`
	Multiplier float64 `toml:"multiplier"`
}

type cropFile struct {
	Crops []cropRecord `toml:"crop"`
}

type mutationFile struct {
	Mutations []mutationRecord `toml:"mutation"`
}

// exportedPlant is one entry of the game's plants.json export.
type exportedPlant struct {
	Name             string   `json:"name"`
	PriceCoefficient float64  `json:"priceCoefficient"`
	MaxWeight        float64  `json:"maxWeight"`
	GrowthSpeed      float64  `json:"growthSpeed"`
	Type             string   `json:"type"`
	SpecialMutations []string `json:"specialMutations"`
}

type exportedMutation struct {
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Multiplier float64 `json:"multiplier"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	cropData, err := builtin.ReadFile("data/crops.toml")
	if err != nil {
		return nil, err
	}
	mutData, err := builtin.ReadFile("data/mutations.toml")
	if err != nil {
		return nil, err
	}
	crops, err := decodeCropsTOML(cropData)
	if err != nil {
		return nil, fmt.Errorf("builtin crops: %w", err)
	}
	muts, err := decodeMutationsTOML(mutData)
	if err != nil {
		return nil, fmt.Errorf("builtin mutations: %w", err)
	}
	return build("builtin", crops, muts)
}

// Load reads the catalog from p, or the embedded catalog when p is empty.
func Load(p Paths) (*Catalog, error) {
	if p.IsZero() {
		return Default()
	}
	if strings.TrimSpace(p.Crops) == "" || strings.TrimSpace(p.Mutations) == "" {
		return nil, fmt.Errorf("%w: both crop and mutation files are required", ErrInvalidCatalog)
	}
	crops, err := readCrops(p.Crops)
	if err != nil {
		return nil, err
	}
	muts, err := readMutations(p.Mutations)
	if err != nil {
		return nil, err
	}
	return build(p.Crops, crops, muts)
}

func build(source string, crops []farm.Crop, muts []farm.Mutation) (*Catalog, error) {
	log := logging.Logger("catalog")
	c, err := New(crops, muts)
	if err != nil {
		log.Error().Err(err).Str("source", source).Msg("catalog rejected")
		return nil, err
	}
	log.Debug().Str("source", source).Int("crops", len(c.crops)).Int("mutations", len(c.mutations)).Msg("catalog loaded")
	return c, nil
}

func readCrops(path string) ([]farm.Crop, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog load failed (%s): %w", path, err)
	}
	var crops []farm.Crop
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		crops, err = decodeCropsJSON(data)
	case ".toml":
		crops, err = decodeCropsTOML(data)
	default:
		return nil, fmt.Errorf("catalog load failed (%s): unsupported extension", path)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog parse failed (%s): %w", path, err)
	}
	return crops, nil
}

func readMutations(path string) ([]farm.Mutation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog load failed (%s): %w", path, err)
	}
	var muts []farm.Mutation
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		muts, err = decodeMutationsJSON(data)
	case ".toml":
		muts, err = decodeMutationsTOML(data)
	default:
		return nil, fmt.Errorf("catalog load failed (%s): unsupported extension", path)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog parse failed (%s): %w", path, err)
	}
	return muts, nil
}

func decodeCropsTOML(data []byte) ([]farm.Crop, error) {
	var f cropFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown crop field %q", undecoded[0].String())
	}
	out := make([]farm.Crop, 0, len(f.Crops))
	for _, r := range f.Crops {
		out = append(out, farm.Crop{
			Name:               r.Name,
			Label:              r.Label,
			PriceCoefficient:   r.PriceCoefficient,
			MaxWeight:          r.MaxWeight,
			GrowthSpeed:        r.GrowthSpeed,
			Category:           parseCategory(r.Category),
			ExclusiveMutations: r.ExclusiveMutations,
		})
	}
	return out, nil
}

func decodeMutationsTOML(data []byte) ([]farm.Mutation, error) {
	var f mutationFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown mutation field %q", undecoded[0].String())
	}
	out := make([]farm.Mutation, 0, len(f.Mutations))
	for _, r := range f.Mutations {
		out = append(out, farm.Mutation{
			Name:       r.Name,
			Label:      r.Label,
			Color:      parseColor(r.Color),
			Multiplier: r.Multiplier,
		})
	}
	return out, nil
}

func decodeCropsJSON(data []byte) ([]farm.Crop, error) {
	var raw []exportedPlant
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make([]farm.Crop, 0, len(raw))
	for _, p := range raw {
		exclusive := make([]string, 0, len(p.SpecialMutations))
		for _, name := range p.SpecialMutations {
			n, _ := canonicalName(name)
			exclusive = append(exclusive, n)
		}
		out = append(out, farm.Crop{
			Name:               p.Name,
			PriceCoefficient:   p.PriceCoefficient,
			MaxWeight:          p.MaxWeight,
			GrowthSpeed:        p.GrowthSpeed,
			Category:           parseCategory(p.Type),
			ExclusiveMutations: exclusive,
		})
	}
	return out, nil
}

func decodeMutationsJSON(data []byte) ([]farm.Mutation, error) {
	var raw []exportedMutation
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make([]farm.Mutation, 0, len(raw))
	for _, m := range raw {
		name, label := canonicalName(m.Name)
		out = append(out, farm.Mutation{
			Name:       name,
			Label:      label,
			Color:      parseColor(m.Color),
			Multiplier: m.Multiplier,
		})
	}
	return out, nil
}
