package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/harvest-calc/internal/catalog"
	"github.com/appengine-ltd/harvest-calc/internal/config"
	"github.com/appengine-ltd/harvest-calc/internal/farm"
	"github.com/appengine-ltd/harvest-calc/internal/logging"
	"github.com/appengine-ltd/harvest-calc/internal/lookup"
)

type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

type rootOptions struct {
	configPath    string
	cropsPath     string
	mutationsPath string
	logLevel      string
}

// app is the dependency graph shared by subcommands. It is filled in by the
// root PersistentPreRunE.
type app struct {
	cfg       config.Config
	catalog   *catalog.Catalog
	rules     *farm.Rules
	crops     *lookup.Index
	mutations *lookup.Index
}

func NewRootCmd(info BuildInfo) *cobra.Command {
	opts := &rootOptions{}
	a := &app{}

	root := &cobra.Command{
		Use:           "harvest",
		Short:         "Crop price and mutation calculator",
		Version:       fmt.Sprintf("%s (%s) %s", info.Version, info.Commit, info.BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ./"+config.DefaultFile+" when present)")
	root.PersistentFlags().StringVar(&opts.cropsPath, "catalog-crops", "", "crop catalog file (.toml or .json)")
	root.PersistentFlags().StringVar(&opts.mutationsPath, "catalog-mutations", "", "mutation catalog file (.toml or .json)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")

	root.AddCommand(
		cropsCmd(a),
		mutationsCmd(a),
		recipesCmd(a),
		checkCmd(a),
		optionsCmd(a),
		priceCmd(a),
	)
	return root
}

func (a *app) init(opts *rootOptions) error {
	logging.ConfigureRuntime()
	log := logging.Logger("cli")

	path, optional := opts.configPath, false
	if path == "" {
		path, optional = config.DefaultFile, true
	}
	cfg, err := config.Load(path, optional)
	if err != nil {
		return err
	}
	if opts.cropsPath != "" || opts.mutationsPath != "" {
		cfg.Catalog.Crops = opts.cropsPath
		cfg.Catalog.Mutations = opts.mutationsPath
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	switch {
	case opts.logLevel != "":
		logging.SetLevel(opts.logLevel)
	case os.Getenv(logging.EnvLogLevel) == "" && cfg.Log.Level != "":
		logging.SetLevel(cfg.Log.Level)
	}

	cat, err := catalog.Load(catalog.Paths{Crops: cfg.Catalog.Crops, Mutations: cfg.Catalog.Mutations})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.catalog = cat
	a.rules = farm.NewRules(cat)
	a.crops = lookup.Crops(cat)
	a.mutations = lookup.Mutations(cat)
	log.Debug().Str("config", path).Int("crops", len(cat.Crops())).Msg("ready")
	return nil
}

func (a *app) crop(raw string) (farm.Crop, error) {
	name, err := a.crops.Resolve(raw)
	if err != nil {
		return farm.Crop{}, withSuggestion(err, a.crops, raw)
	}
	c, _ := a.catalog.Crop(name)
	return c, nil
}

func (a *app) mutationName(raw string) (string, error) {
	name, err := a.mutations.Resolve(raw)
	if err != nil {
		return "", withSuggestion(err, a.mutations, raw)
	}
	return name, nil
}

func (a *app) selection(raw []string) (farm.Selection, error) {
	sel := farm.NewSelection()
	for _, r := range raw {
		name, err := a.mutationName(r)
		if err != nil {
			return nil, err
		}
		sel.Add(name)
	}
	return sel, nil
}

func withSuggestion(err error, idx *lookup.Index, raw string) error {
	if !errors.Is(err, lookup.ErrNoMatch) {
		return err
	}
	if s := idx.Suggest(raw); s != "" {
		return fmt.Errorf("%w (did you mean %q?)", err, s)
	}
	return err
}
