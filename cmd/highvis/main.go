package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"highvis/internal/core/model"
	"highvis/internal/core/stopwatch"
	"highvis/internal/logger"
	"highvis/internal/platform"
	"highvis/internal/storage"
	"highvis/internal/ui/preferences"
	"highvis/internal/ui/tray"
	"highvis/internal/ui/window"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/rs/zerolog"
)

const appName = "HighVis"

func main() {
	log := logger.New(os.Stderr, zerolog.TraceLevel)

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Warn().Err(err).Msg("another stopwatch is already open")
			return
		}
		fmt.Fprintf(os.Stderr, "single instance: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Warn().Err(err).Msg("using default settings")
	}
	applyLogLevel(log, settings.LogLevel)

	controller := stopwatch.New(settings.TimerConfig(), stopwatch.Config{
		TickInterval: time.Second,
		Logger:       &log,
	})
	defer controller.Close()

	fyneApp := app.NewWithID("com.highvis.stopwatch")
	fyneApp.SetIcon(theme.HistoryIcon())

	mainWindow := window.New(fyneApp, window.Config{Fullscreen: settings.Fullscreen}, window.Callbacks{
		OnStart:          controller.StartTimer,
		OnPause:          controller.PauseTimer,
		OnStop:           controller.StopTimer,
		OnSetInitialTime: controller.SetInitialTime,
	})
	mainWindow.SetOnClosed(controller.Close)

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if err := storage.SaveSettings(appName, updated); err != nil {
			log.Error().Err(err).Msg("save settings")
		}
		applyLogLevel(log, updated.LogLevel)
		mainWindow.UpdateConfig(window.Config{Fullscreen: updated.Fullscreen})
		// Only takes effect while the timer is idle.
		controller.SetInitialTime(updated.InitialTime)
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnStart:       controller.StartTimer,
			OnPause:       controller.PauseTimer,
			OnStop:        controller.StopTimer,
			OnPreferences: prefsWindow.Show,
			OnQuit: func() {
				controller.Close()
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(theme.HistoryIcon())
	} else {
		log.Info().Msg("system tray unsupported on this platform")
	}

	events := controller.Subscribe(4)
	go func() {
		for event := range events {
			state := event.State
			fyne.Do(func() {
				render(state, mainWindow, trayManager)
			})
		}
	}()

	log.Info().Stringer("state", controller.State()).Msg("stopwatch ready")
	mainWindow.ShowAndRun()
}

func render(state model.State, mainWindow *window.Window, trayManager *tray.Manager) {
	mainWindow.Render(state)
	if trayManager != nil {
		trayManager.Render(state)
	}
}

func applyLogLevel(log zerolog.Logger, value string) {
	level, err := logger.ParseLevel(value)
	if err != nil {
		log.Warn().Err(err).Msg("falling back to info logging")
	}
	zerolog.SetGlobalLevel(level)
}
