package rungroup

// rungroup expands on oklog/run, adding logs to indicate which actor caused
// the interrupt, and turning a panicking actor into an ordinary error so the
// rest of the group still shuts down.

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oklog/run"
)

type Group struct {
	slogger *slog.Logger
	group   run.Group
	names   []string
}

// actorError remembers which actor stopped the group
type actorError struct {
	errorSourceName string
	err             error
}

func (a actorError) Error() string {
	return fmt.Sprintf("%s returned error: %+v", a.errorSourceName, a.err)
}

func (a actorError) Unwrap() error {
	return a.err
}

func NewRunGroup(slogger *slog.Logger) *Group {
	return &Group{
		slogger: slogger.With("component", "run_group"),
		names:   make([]string, 0),
	}
}

// Add registers an actor. execute should block until the actor is done;
// interrupt should make execute return.
func (g *Group) Add(name string, execute func() error, interrupt func(error)) {
	g.names = append(g.names, name)

	g.group.Add(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				g.slogger.Log(context.TODO(), slog.LevelError,
					"actor panicked, shutting down",
					"actor", name,
					"panic", fmt.Sprintf("%+v", r),
				)
				err = fmt.Errorf("executing rungroup actor %s panicked: %+v", name, r)
			}
			if err != nil {
				err = actorError{errorSourceName: name, err: err}
			}
		}()

		g.slogger.Log(context.TODO(), slog.LevelDebug,
			"starting actor",
			"actor", name,
		)

		return execute()
	}, func(err error) {
		g.slogger.Log(context.TODO(), slog.LevelDebug,
			"interrupting actor",
			"actor", name,
			"err", err,
		)
		interrupt(err)
	})
}

// Run starts every actor and blocks until the first one returns and all the
// others have been interrupted and returned. It returns the first actor's error.
func (g *Group) Run() error {
	if len(g.names) == 0 {
		return nil
	}

	g.slogger.Log(context.TODO(), slog.LevelDebug,
		"starting all actors",
		"actor_count", len(g.names),
	)

	err := g.group.Run()

	g.slogger.Log(context.TODO(), slog.LevelInfo,
		"done shutting down actors",
		"actor_count", len(g.names),
		"err", err,
	)

	return err
}
