// Package cmd implements the command-line interface of typeconv. The commands
// load the palette of a protocol version and run single conversions, which is
// mostly useful to inspect palettes and debug client data.
//
// The package is organized into several subpackages:
//
//   - stack: Commands for item stacks (encode, decode)
//   - ingredient: Commands for recipe ingredients (encode, decode)
//   - gamemode: Commands for game modes (to-wire, from-wire)
//   - metrics: Prints the converter metrics
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// Every flag can also be set with an environment variable of the form
// TYPECONV_<FLAG> (e.g. TYPECONV_DATA_DIR=palettes), also read from .env files.
//
// See typeconv -help for a list of all commands.
package cmd
