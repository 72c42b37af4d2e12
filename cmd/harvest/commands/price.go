package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/harvest-calc/internal/farm"
	"github.com/appengine-ltd/harvest-calc/internal/logging"
	"github.com/appengine-ltd/harvest-calc/internal/ui"
)

type priceOptions struct {
	crop      string
	weight    float64
	percent   float64
	rate      float64
	base      string
	mutations []string
}

func priceCmd(a *app) *cobra.Command {
	opts := &priceOptions{}
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price a harvest",
		Long: "Price a harvest. Give its size as --weight in kg, --percent of max weight,\n" +
			"or --rate in seconds per percent of growth. Without any, the configured\n" +
			"default percent is used. Mutations are added in order and rejected when\n" +
			"an earlier one locks them out.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.price(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.crop, "crop", "", "crop name or label")
	f.Float64Var(&opts.weight, "weight", 0, "harvest weight in kg")
	f.Float64Var(&opts.percent, "percent", 0, "harvest size as percent of max weight")
	f.Float64Var(&opts.rate, "rate", 0, "observed growth in seconds per percent")
	f.StringVar(&opts.base, "base", "", "base mutation (Silver, Gold, Crystal, Prismatic, Starry)")
	f.StringArrayVarP(&opts.mutations, "mutation", "m", nil, "mutation to apply (repeatable)")
	_ = cmd.MarkFlagRequired("crop")
	cmd.MarkFlagsMutuallyExclusive("weight", "percent", "rate")
	return cmd
}

func (a *app) price(cmd *cobra.Command, opts *priceOptions) error {
	log := logging.Logger("price")

	crop, err := a.crop(opts.crop)
	if err != nil {
		return err
	}
	weight, err := a.weight(cmd, crop, opts)
	if err != nil {
		return err
	}

	sel := farm.NewSelection()
	if opts.base != "" {
		name, err := a.mutationName(opts.base)
		if err != nil {
			return err
		}
		if !slices.Contains(farm.BaseOptions(crop), name) {
			return fmt.Errorf("%w: %s is not a base mutation for %s", farm.ErrInvalidInput, name, crop.DisplayName())
		}
		sel.Add(name)
	}

	offered := a.catalog.Selectable(crop)
	for _, raw := range opts.mutations {
		name, err := a.mutationName(raw)
		if err != nil {
			return err
		}
		if farm.IsBaseMutation(name) {
			return fmt.Errorf("%w: %s is a base mutation, use --base", farm.ErrInvalidInput, name)
		}
		if !slices.Contains(offered, name) {
			return fmt.Errorf("%w: %s is not offered for %s", farm.ErrInvalidInput, name, crop.DisplayName())
		}
		ok, err := a.rules.Allowed(sel, crop, name)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s is locked out by the current selection %v", farm.ErrInvalidInput, name, sel.Names())
		}
		sel.Add(name)
	}

	res, err := a.rules.Price(crop, weight, sel)
	if err != nil {
		return err
	}
	muts, err := a.rules.Resolve(sel.Names())
	if err != nil {
		return err
	}
	growth, known := farm.GrowthTime(crop, weight)
	log.Debug().Str("crop", crop.Name).Float64("weight", weight).Strs("mutations", sel.Names()).Float64("total", res.TotalPrice).Msg("priced")

	return ui.WritePrice(cmd.OutOrStdout(), ui.Price{
		Crop:      crop,
		Weight:    weight,
		Selected:  muts,
		Result:    res,
		Growth:    growth,
		GrowthSet: known,
	})
}

func (a *app) weight(cmd *cobra.Command, crop farm.Crop, opts *priceOptions) (float64, error) {
	f := cmd.Flags()
	switch {
	case f.Changed("weight"):
		return opts.weight, farm.CheckWeight(crop, opts.weight)
	case f.Changed("percent"):
		return farm.WeightFromPercent(crop, opts.percent)
	case f.Changed("rate"):
		return farm.WeightFromGrowthRate(crop, opts.rate)
	default:
		return farm.WeightFromPercent(crop, a.cfg.Price.DefaultPercent)
	}
}
