// jokey is a terminal joke browser backed by JokeAPI.
//
// Categories load on start. Expanding a category fetches a couple of jokes
// for it, a joke opens in a modal, and a refresh starts over from an empty
// list. Diagnostics go to a JSON log file so they never touch the screen.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/jokey/internal/application/settings"
	"github.com/tesso57/jokey/internal/application/usecase"
	"github.com/tesso57/jokey/internal/infrastructure/config"
	"github.com/tesso57/jokey/internal/infrastructure/jokeapi"
	"github.com/tesso57/jokey/internal/infrastructure/logging"
	"github.com/tesso57/jokey/internal/presentation/tui"
)

var version = "dev"

type cli struct {
	Config      string           `help:"Config file path (default ~/.config/jokey/config.yaml)." type:"path" placeholder:"PATH"`
	LogFile     string           `help:"Write diagnostics to this file instead of the configured one." type:"path" placeholder:"PATH"`
	LogLevel    string           `help:"Diagnostic log level (debug, info, warn, error)." placeholder:"LEVEL"`
	NoAltScreen bool             `help:"Draw inline instead of on the alternate screen."`
	Version     kong.VersionFlag `help:"Print version and exit."`
}

func main() {
	var flags cli
	kong.Parse(&flags,
		kong.Name("jokey"),
		kong.Description("Browse jokes by category in the terminal."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)

	if err := run(flags); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(flags cli) error {
	store, err := config.Load(flags.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := applyOverrides(store.Settings, flags)

	logger, closeLog, err := logging.OpenFile(cfg.LogFile, logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("starting jokey",
		"version", version,
		"config", store.Path(),
		"base_url", cfg.API.BaseURL,
		"amount", cfg.API.Amount,
		"max_jokes", cfg.API.MaxJokes,
	)

	client := jokeapi.NewClient(cfg.API.BaseURL, jokeapi.WithTimeout(cfg.API.Timeout()))
	jokes := usecase.NewJokeService(client, cfg.API.Amount, cfg.API.Timeout(), logger)
	model := tui.NewModel(cfg, jokes, logger)

	if _, err := tea.NewProgram(model, programOptions(flags)...).Run(); err != nil {
		logger.Error("program exited with error", "error", err)
		return err
	}
	logger.Info("exiting jokey")
	return nil
}

func applyOverrides(cfg settings.Settings, flags cli) settings.Settings {
	if flags.LogFile != "" {
		cfg.LogFile = flags.LogFile
	}
	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}
	return cfg
}

func programOptions(flags cli) []tea.ProgramOption {
	if flags.NoAltScreen {
		return nil
	}
	return []tea.ProgramOption{tea.WithAltScreen()}
}
