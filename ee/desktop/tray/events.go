package tray

// Event is a discrete user interaction forwarded from the UI thread to the worker.
type Event int

const (
	// None is attached to menu items that do nothing when clicked
	None Event = iota
	IconClicked
	CheckboxClicked
	ExitRequested
)

func (e Event) String() string {
	switch e {
	case None:
		return "none"
	case IconClicked:
		return "icon_clicked"
	case CheckboxClicked:
		return "checkbox_clicked"
	case ExitRequested:
		return "exit_requested"
	default:
		return "unknown"
	}
}
