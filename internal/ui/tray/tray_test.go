package tray

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"highvis/internal/core/model"
)

type fakeTray struct {
	menus []*fyne.Menu
}

func (tray *fakeTray) SetSystemTrayMenu(menu *fyne.Menu) {
	tray.menus = append(tray.menus, menu)
}

func TestRenderUpdatesMenu(t *testing.T) {
	app := &fakeTray{}
	manager := New(app, Callbacks{})

	require.NotEmpty(t, app.menus)
	assert.Equal(t, "Status: initial 00:40", manager.statusItem.Label)
	assert.Equal(t, "Start", manager.primaryItem.Label)
	assert.True(t, manager.stopItem.Disabled)

	manager.Render(model.Running{TimeRemaining: 39, InitialTime: 40})
	assert.Equal(t, "Status: running 00:39", manager.statusItem.Label)
	assert.Equal(t, "Pause", manager.primaryItem.Label)
	assert.False(t, manager.stopItem.Disabled)
	assert.Same(t, manager.Menu(), app.menus[len(app.menus)-1])
}

func TestPrimaryItemDispatchesByState(t *testing.T) {
	var starts, pauses, stops int
	manager := New(nil, Callbacks{
		OnStart: func() { starts++ },
		OnPause: func() { pauses++ },
		OnStop:  func() { stops++ },
	})

	manager.primaryItem.Action()
	manager.Render(model.Running{TimeRemaining: 10, InitialTime: 10})
	manager.primaryItem.Action()
	manager.Render(model.Paused{TimeRemaining: 10, InitialTime: 10})
	manager.primaryItem.Action()
	manager.stopItem.Action()

	assert.Equal(t, 2, starts)
	assert.Equal(t, 1, pauses)
	assert.Equal(t, 1, stops)
}
