package tray

import (
	"fmt"

	"highvis/internal/core/model"
	"highvis/internal/ui/display"

	"fyne.io/fyne/v2"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnStart       func()
	OnPause       func()
	OnStop        func()
	OnPreferences func()
	OnQuit        func()
}

// MenuSetter is the part of desktop.App the tray needs.
type MenuSetter interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Manager handles system tray state.
type Manager struct {
	app         MenuSetter
	statusItem  *fyne.MenuItem
	primaryItem *fyne.MenuItem
	stopItem    *fyne.MenuItem
	callbacks   Callbacks
	state       model.State
	menu        *fyne.Menu
}

// New creates a tray manager with the provided callbacks.
func New(app MenuSetter, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.primaryItem = fyne.NewMenuItem(string(display.ActionStart), manager.handlePrimary)
	manager.stopItem = fyne.NewMenuItem("Stop", func() {
		if manager.callbacks.OnStop != nil {
			manager.callbacks.OnStop()
		}
	})

	preferences := fyne.NewMenuItem("Preferences", func() {
		if manager.callbacks.OnPreferences != nil {
			manager.callbacks.OnPreferences()
		}
	})
	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	quit.IsQuit = true

	manager.menu = fyne.NewMenu("HighVis", manager.statusItem, manager.primaryItem, manager.stopItem,
		fyne.NewMenuItemSeparator(), preferences, quit)

	manager.Render(model.NewInitial(0))
	return manager
}

// Render updates labels and enabled items for state.
func (manager *Manager) Render(state model.State) {
	manager.state = state
	controls := display.ControlsFor(state)

	manager.statusItem.Label = fmt.Sprintf("Status: %s", display.Status(state))
	manager.primaryItem.Label = string(controls.Primary)
	manager.stopItem.Disabled = !controls.StopEnabled
	manager.refreshMenu()
}

// Menu returns the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.menu
}

func (manager *Manager) handlePrimary() {
	if display.ControlsFor(manager.state).Primary == display.ActionPause {
		if manager.callbacks.OnPause != nil {
			manager.callbacks.OnPause()
		}
		return
	}
	if manager.callbacks.OnStart != nil {
		manager.callbacks.OnStart()
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(manager.menu)
}
