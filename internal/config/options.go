package config

// Theme choices accepted on the command line.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Store backends. Both keep everything in memory.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Options are the settings the TUI starts with.
type Options struct {
	Theme         string `short:"t" long:"theme" choice:"auto" choice:"dark" choice:"light" default:"auto" description:"Color theme; 'auto' follows the terminal background"`
	PaletteFile   string `long:"palette" value-name:"<file>" description:"YAML file overriding palette colors"`
	Store         string `long:"store" choice:"memory" choice:"sqlite" default:"sqlite" description:"In-memory backend holding the months"`
	ImportFile    string `short:"i" long:"import" value-name:"<file>" description:"JSON file to import on start"`
	ExportDir     string `short:"o" long:"export-dir" value-name:"<dir>" default:"." description:"Directory exports are written to"`
	Empty         bool   `long:"empty" description:"Start without the sample months"`
	LogOutputFile string `short:"l" long:"log-output-file" value-name:"<file>" description:"Log output file (otherwise logs are dropped)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"Prettify logs to file"`
}

// Defaults mirrors the struct tag defaults for callers that skip flag
// parsing.
func Defaults() Options {
	return Options{
		Theme:     ThemeAuto,
		Store:     StoreSQLite,
		ExportDir: ".",
	}
}
