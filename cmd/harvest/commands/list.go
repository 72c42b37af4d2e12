package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/harvest-calc/internal/farm"
	"github.com/appengine-ltd/harvest-calc/internal/ui"
)

func cropsCmd(a *app) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "crops",
		Short: "List crops sorted by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := farm.CropCategory(category)
			if category != "" && !cat.IsValid() {
				return fmt.Errorf("%w: unknown category %q (want one of %v)", farm.ErrInvalidInput, category, farm.AllCropCategories())
			}
			return ui.WriteCrops(cmd.OutOrStdout(), a.catalog.SortedCrops(cat))
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list crops of this category (normal, moon)")
	return cmd
}

func mutationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mutations",
		Short: "List mutations and how they price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ui.WriteMutations(cmd.OutOrStdout(), a.catalog.Mutations(), a.catalog.AllExclusive())
		},
	}
}

func recipesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "recipes",
		Short: "List recipes and the precursors each product locks out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ui.WriteRecipes(cmd.OutOrStdout(), farm.Recipes())
		},
	}
}
