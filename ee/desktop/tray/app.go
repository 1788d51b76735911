// Package tray owns the tray icon and its menu, and the single worker that
// turns clicks into theme toggles and preference writes.
package tray

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/itstyrion/yinyang/pkg/log/multislogger"
)

const defaultQueueSize = 32

// Toggler flips the appearance flags.
type Toggler interface {
	Toggle(mirrorToSystem bool) error
}

// Preferences stores the mirror-to-system preference.
type Preferences interface {
	ReadPreference() (bool, error)
	WritePreference(value bool) error
}

// App is the process-wide application context: it is built once at startup
// and owns the event queue and the menu view.
type App struct {
	slogger *slog.Logger
	toggler Toggler
	prefs   Preferences
	label   string
	exit    func()

	events      chan Event
	interrupt   chan struct{}
	interrupted atomic.Bool
	exited      atomic.Bool

	viewLock sync.Mutex
	view     menuView
}

// AppOption configures an App in New.
type AppOption func(*App)

// WithExitFunc replaces what happens when Exit is clicked. By default the
// tray loop is quit, which unblocks Run.
func WithExitFunc(exit func()) AppOption {
	return func(a *App) {
		a.exit = exit
	}
}

// WithQueueSize sets how many events may be pending before senders wait.
func WithQueueSize(size int) AppOption {
	return func(a *App) {
		if size > 0 {
			a.events = make(chan Event, size)
		}
	}
}

// WithLabel sets the disabled informational menu item's text.
func WithLabel(label string) AppOption {
	return func(a *App) {
		a.label = label
	}
}

// New creates the tray application. The event queue exists from here on, so
// the worker may be started before Run.
func New(slogger *slog.Logger, toggler Toggler, prefs Preferences, opts ...AppOption) *App {
	a := &App{
		slogger:   slogger.With("component", "tray"),
		toggler:   toggler,
		prefs:     prefs,
		label:     defaultLabel(),
		events:    make(chan Event, defaultQueueSize),
		interrupt: make(chan struct{}),
	}
	a.exit = a.Shutdown

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Post hands an event to the worker without blocking, for callers on the UI
// thread. If the queue is full an ExitRequested exits right away and any
// other event is dropped.
func (a *App) Post(ev Event) {
	if a.exited.Load() {
		return
	}

	select {
	case a.events <- ev:
	default:
		if ev == ExitRequested {
			a.slogger.Log(context.TODO(), slog.LevelWarn,
				"event queue full, exiting without waiting for worker",
			)
			a.requestExit()
			return
		}
		a.slogger.Log(context.TODO(), slog.LevelWarn,
			"event queue full, dropping event",
			"event", ev,
		)
	}
}

// Send hands an event to the worker, waiting for room in the queue. It gives
// up once the worker has stopped. Must not be called on the UI thread.
func (a *App) Send(ev Event) {
	if a.exited.Load() {
		return
	}

	select {
	case a.events <- ev:
	case <-a.interrupt:
	}
}

// Execute drains the event queue in order until interrupted or until Exit is
// clicked. All registry and file I/O happens here.
func (a *App) Execute() error {
	for {
		select {
		case <-a.interrupt:
			return nil
		case ev := <-a.events:
			if stop := a.handle(ev); stop {
				return nil
			}
		}
	}
}

// Interrupt stops the worker. Events still queued are not handled.
func (a *App) Interrupt(_ error) {
	// Only perform shutdown tasks on first call to interrupt -- no need to repeat on potential extra calls.
	if a.interrupted.Swap(true) {
		return
	}

	close(a.interrupt)
}

// handle performs a single event and reports whether the worker should stop.
func (a *App) handle(ev Event) bool {
	ctx := multislogger.WithEvent(context.TODO(), ev.String())

	if (ev == IconClicked || ev == CheckboxClicked) && a.currentView() == nil {
		// Only the menu posts these, so this means a caller posted before Run
		a.slogger.Log(ctx, slog.LevelWarn,
			"menu not ready, ignoring event",
		)
		return false
	}

	switch ev {
	case IconClicked:
		mirror := a.currentView().Checked()
		if err := a.toggler.Toggle(mirror); err != nil {
			a.slogger.Log(ctx, slog.LevelError,
				"could not toggle theme",
				"mirror_to_system", mirror,
				"err", err,
			)
		}
	case CheckboxClicked:
		view := a.currentView()
		newState := !view.Checked()
		view.SetChecked(newState)
		if err := a.prefs.WritePreference(newState); err != nil {
			a.slogger.Log(ctx, slog.LevelError,
				"could not persist preference",
				"mirror_to_system", newState,
				"err", err,
			)
		}
	case ExitRequested:
		a.slogger.Log(ctx, slog.LevelInfo,
			"exit requested",
		)
		a.requestExit()
		return true
	default:
		a.slogger.Log(ctx, slog.LevelDebug,
			"ignoring unhandled event",
		)
	}

	return false
}

// requestExit runs the exit func once and stops the worker.
func (a *App) requestExit() {
	if a.exited.Swap(true) {
		return
	}
	a.exit()
	a.Interrupt(nil)
}

// initialCheckState returns the stored preference the checkbox starts with.
func (a *App) initialCheckState() (bool, error) {
	checked, err := a.prefs.ReadPreference()
	if err != nil {
		return false, fmt.Errorf("reading preference: %w", err)
	}
	return checked, nil
}

// attach builds the menu and keeps its view for the worker.
func (a *App) attach(b menuBuilder, checked bool) {
	view := a.build(b, checked)

	a.viewLock.Lock()
	defer a.viewLock.Unlock()
	a.view = view
}

func (a *App) currentView() menuView {
	a.viewLock.Lock()
	defer a.viewLock.Unlock()
	return a.view
}
