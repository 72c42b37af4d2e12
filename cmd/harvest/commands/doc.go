// Package commands defines the harvest CLI and wires the catalog, rules and
// lookup indexes before any subcommand runs.
//
// Commands
//
//   - crops      List crops sorted by display name
//   - mutations  List mutations with their pricing kind
//   - recipes    List recipes and the precursors each one locks out
//   - check      Report whether one mutation may join a selection
//   - options    Show every mutation offered for a crop and whether it is allowed
//   - price      Price a harvest
//
// # Configuration
//
// The root command reads harvest.toml from the working directory when present
// (or the file named by --config). Catalog flags override the file, and both
// catalog files must be given together.
package commands
