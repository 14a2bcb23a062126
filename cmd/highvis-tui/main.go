package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"highvis/internal/core/model"
	"highvis/internal/core/stopwatch"
	"highvis/internal/logger"
	"highvis/internal/tui"
	"highvis/internal/ui/display"
)

const appName = "HighVis"

var version = "dev"

func main() {
	var configPath string
	var seconds string
	var logFile string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is <user config dir>/HighVis/settings.yaml)")
	flag.StringVar(&seconds, "seconds", "", "initial countdown in seconds, overrides the config")
	flag.StringVar(&logFile, "log-file", "", "override the log file path")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("HighVis Stopwatch (terminal) %s\n", version)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if seconds != "" {
		parsed, err := display.ParseSeconds(seconds)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -seconds %v\n", err)
			os.Exit(1)
		}
		cfg.InitialSeconds = parsed
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg cliConfig) error {
	level, levelErr := logger.ParseLevel(cfg.LogLevel)
	log, closer, err := logger.OpenFile(cfg.LogFile, level)
	if err != nil {
		return err
	}
	defer closer.Close()
	if levelErr != nil {
		log.Warn().Err(levelErr).Msg("falling back to info logging")
	}

	controller := stopwatch.New(model.TimerConfig{InitialTime: cfg.InitialSeconds}, stopwatch.Config{Logger: &log})
	defer controller.Close()

	log.Info().Stringer("state", controller.State()).Msg("terminal stopwatch ready")

	p := tea.NewProgram(tui.New(controller, controller.Subscribe(4)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("terminal UI requires a real terminal")
		}
		return fmt.Errorf("error running terminal UI: %w", err)
	}

	return nil
}
