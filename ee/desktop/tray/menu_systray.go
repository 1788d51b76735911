package tray

import (
	"context"
	"log/slog"

	"fyne.io/systray"
)

// Run reads the stored preference, creates the tray icon & menu, and pumps the
// native message loop. It must be called on the main thread, and blocks until
// Shutdown() is called.
func (a *App) Run() error {
	checked, err := a.initialCheckState()
	if err != nil {
		return err
	}

	m := newSystrayMenu(a.slogger, a.Post, a.Send)

	// Before the loop exits, cleanup the goroutines
	systray.Run(func() {
		a.attach(m, checked)
		a.slogger.Log(context.TODO(), slog.LevelInfo,
			"tray ready",
			"mirror_to_system", checked,
		)
	}, m.cleanup)

	return nil
}

// Shutdown quits the tray loop. It unblocks the Run() call.
func (a *App) Shutdown() {
	systray.Quit()
}

// systrayMenu builds the menu with systray and forwards clicks as events.
// post must not block, it runs on the UI thread. send is used by the per-item
// goroutines and may wait for the worker.
type systrayMenu struct {
	slogger   *slog.Logger
	post      func(Event)
	send      func(Event)
	doneChans []chan<- struct{}
}

func newSystrayMenu(slogger *slog.Logger, post, send func(Event)) *systrayMenu {
	return &systrayMenu{
		slogger: slogger,
		post:    post,
		send:    send,
	}
}

func (m *systrayMenu) setIcon(icon []byte) {
	systray.SetTemplateIcon(icon, icon)
}

func (m *systrayMenu) setTooltip(tooltip string) {
	systray.SetTooltip(tooltip)
}

func (m *systrayMenu) addCheckbox(label, tooltip string, checked bool, ev Event) menuView {
	item := systray.AddMenuItemCheckbox(label, tooltip, checked)
	m.makeEventHandler(item, ev)
	return &checkboxView{item: item}
}

func (m *systrayMenu) addMenuItem(label, tooltip string, disabled bool, ev Event) {
	item := systray.AddMenuItem(label, tooltip)
	if disabled {
		item.Disable()
	}
	m.makeEventHandler(item, ev)
}

func (m *systrayMenu) addSeparator() {
	systray.AddSeparator()
}

func (m *systrayMenu) onIconClicked(ev Event) {
	// Called on the UI thread; post never blocks
	systray.SetOnTapped(func() {
		m.post(ev)
	})
}

// makeEventHandler sends ev whenever the menu item is clicked
func (m *systrayMenu) makeEventHandler(item *systray.MenuItem, ev Event) {
	if ev == None {
		// No event to post
		return
	}

	// Create and hold on to a done channel for each item, so we don't leak goroutines
	done := make(chan struct{})
	m.doneChans = append(m.doneChans, done)

	go func() {
		for {
			select {
			case <-item.ClickedCh:
				m.send(ev)
			case <-done:
				// Menu item is going away
				return
			}
		}
	}()
}

// Cleans up goroutines associated with menu items
func (m *systrayMenu) cleanup() {
	for _, done := range m.doneChans {
		close(done)
	}
	m.doneChans = nil
}

// checkboxView adapts a checkable systray item. Check and Uncheck update the
// native menu from the calling goroutine, under systray's menu lock, so the
// worker mutates the menu off the UI thread.
type checkboxView struct {
	item *systray.MenuItem
}

func (c *checkboxView) Checked() bool {
	return c.item.Checked()
}

func (c *checkboxView) SetChecked(checked bool) {
	if checked {
		c.item.Check()
		return
	}
	c.item.Uncheck()
}
