package tray

import (
	"fmt"

	"github.com/itstyrion/yinyang/ee/desktop/assets"
	"github.com/kolide/kit/version"
)

const (
	Tooltip          = "Light/Dark mode toggle"
	SystemThemeLabel = "System Theme"
	ExitLabel        = "Exit"
)

// menuBuilder is the interface the app uses to lay out the tray menu
type menuBuilder interface {
	// setIcon sets the tray icon
	setIcon(icon []byte)
	// setTooltip sets the tray icon tooltip
	setTooltip(tooltip string)
	// addCheckbox adds a checkable item that emits ev when clicked, and returns
	// the view used to read and update its state
	addCheckbox(label, tooltip string, checked bool, ev Event) menuView
	// addMenuItem adds a plain item that emits ev when clicked
	addMenuItem(label, tooltip string, disabled bool, ev Event)
	// addSeparator adds a separator to the menu
	addSeparator()
	// onIconClicked registers ev to be emitted when the tray icon itself is clicked
	onIconClicked(ev Event)
}

// menuView exposes the "System Theme" checkbox to the worker.
type menuView interface {
	Checked() bool
	SetChecked(checked bool)
}

// build lays out the menu in its fixed order.
func (a *App) build(b menuBuilder, checked bool) menuView {
	b.setIcon(assets.TrayIcon)
	b.setTooltip(Tooltip)

	view := b.addCheckbox(SystemThemeLabel, "Also toggle the taskbar and system theme", checked, CheckboxClicked)
	b.addSeparator()
	b.addMenuItem(a.label, "", true, None)
	b.addSeparator()
	b.addMenuItem(ExitLabel, "", false, ExitRequested)

	b.onIconClicked(IconClicked)

	return view
}

func defaultLabel() string {
	return fmt.Sprintf("itsTyrion - version %s", version.Version().Version)
}
