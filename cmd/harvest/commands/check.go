package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/harvest-calc/internal/farm"
	"github.com/appengine-ltd/harvest-calc/internal/ui"
)

func checkCmd(a *app) *cobra.Command {
	var (
		cropName string
		selected []string
	)
	cmd := &cobra.Command{
		Use:   "check <mutation>",
		Short: "Report whether a mutation may join the selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			crop, err := a.crop(cropName)
			if err != nil {
				return err
			}
			sel, err := a.selection(selected)
			if err != nil {
				return err
			}
			candidate, err := a.mutationName(args[0])
			if err != nil {
				return err
			}
			ok, err := a.rules.Allowed(sel, crop, candidate)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if ok {
				_, err = fmt.Fprintf(out, "%s: allowed\n", candidate)
				return err
			}
			reason := "not available for " + crop.DisplayName()
			if b := farm.Blockers(sel, candidate); len(b) > 0 {
				reason = "locked by " + strings.Join(b, ", ")
			}
			_, err = fmt.Fprintf(out, "%s: blocked (%s)\n", candidate, reason)
			return err
		},
	}
	cmd.Flags().StringVar(&cropName, "crop", "", "crop name or label")
	cmd.Flags().StringSliceVar(&selected, "selected", nil, "mutations already selected")
	_ = cmd.MarkFlagRequired("crop")
	return cmd
}

func optionsCmd(a *app) *cobra.Command {
	var (
		cropName string
		selected []string
	)
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Show the mutations offered for a crop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			crop, err := a.crop(cropName)
			if err != nil {
				return err
			}
			sel, err := a.selection(selected)
			if err != nil {
				return err
			}

			names := a.catalog.Selectable(crop)
			allowed, err := a.rules.AllowedMutations(sel, crop, names)
			if err != nil {
				return err
			}
			muts, err := a.rules.Resolve(names)
			if err != nil {
				return err
			}
			opts := make([]ui.Option, 0, len(muts))
			for _, m := range muts {
				opts = append(opts, ui.Option{
					Mutation: m,
					Selected: sel.Has(m.Name),
					Allowed:  slices.Contains(allowed, m.Name),
					Blockers: farm.Blockers(sel, m.Name),
				})
			}
			return ui.WriteOptions(cmd.OutOrStdout(), crop, opts)
		},
	}
	cmd.Flags().StringVar(&cropName, "crop", "", "crop name or label")
	cmd.Flags().StringSliceVar(&selected, "selected", nil, "mutations already selected")
	_ = cmd.MarkFlagRequired("crop")
	return cmd
}
