// Package cli provides the command-line interface.
package cli

import "luhi_tools/internal/config"

var Version = "dev"

type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	TuiCommand     TuiCommand     `command:"tui" description:"Run the time calculator (default)"`
	SummaryCommand SummaryCommand `command:"summary" description:"Print totals of an exported JSON file"`
	VersionCommand VersionCommand `command:"version" description:"Show the program version"`
}

var Opts CommandLineOpts

// TuiCommand runs the TUI. Without any command the TUI starts with
// config.Defaults().
type TuiCommand struct {
	config.Options
}
