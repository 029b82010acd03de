package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"luhi_tools/internal"
	"luhi_tools/internal/config"
)

func (command *TuiCommand) Execute(args []string) error {
	opts := command.Options
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// the TUI owns the terminal, so logs go to a file or nowhere
	var logWriter io.Writer = io.Discard
	if opts.LogOutputFile != "" {
		file, err := os.OpenFile(opts.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			stderrLogger.Error().Err(err).Str("file", opts.LogOutputFile).Msg("could not open file for logging")
			return err
		}
		defer file.Close()
		if opts.LogPretty {
			logWriter = zerolog.ConsoleWriter{Out: file, NoColor: true}
		} else {
			logWriter = file
		}
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	palettes := config.DefaultPalettes()
	if opts.PaletteFile != "" {
		yamlData, err := os.ReadFile(opts.PaletteFile)
		if err != nil {
			return fmt.Errorf("can't read palette file: %w", err)
		}
		if palettes, err = config.ParsePalettesAugmentDefaults(yamlData); err != nil {
			return err
		}
	}

	var darkMode bool
	switch opts.Theme {
	case config.ThemeDark:
		darkMode = true
	case config.ThemeLight:
		darkMode = false
	default:
		darkMode = termenv.HasDarkBackground()
	}

	m, err := internal.NewModel(opts, palettes, darkMode)
	if err != nil {
		return err
	}
	defer m.Close()

	log.Logger = tuiLogger
	log.Info().Str("store", opts.Store).Bool("dark", darkMode).Msg("starting")

	p := tea.NewProgram(m, tea.WithAltScreen())

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			select {
			case <-ticker.C:
				p.Send(internal.MsgTick{})
			case <-done:
				return
			}
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	log.Info().Msg("exiting")
	return nil
}
