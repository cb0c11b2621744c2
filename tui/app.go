package tui

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shapeboard/event"
	"github.com/lixenwraith/shapeboard/workspace"
)

const refreshInterval = 500 * time.Millisecond

// App drives a workspace from a tcell screen
// The input goroutine translates and queues events; Run consumes them in order
type App struct {
	screen tcell.Screen
	ws     *workspace.Workspace
	status *Status
	log    *slog.Logger

	queue  *event.Queue
	wake   chan struct{}
	layout atomic.Pointer[Layout]

	width, height int
}

// NewApp binds an initialized screen to ws
// status should already be registered as an observer of ws
func NewApp(screen tcell.Screen, ws *workspace.Workspace, status *Status, log *slog.Logger) *App {
	a := &App{
		screen: screen,
		ws:     ws,
		status: status,
		log:    log,
		queue:  event.NewQueue(),
		wake:   make(chan struct{}, 1),
	}
	a.width, a.height = screen.Size()
	a.layout.Store(NewLayout(ws.Config(), ws.Palette(), a.width, a.height))
	return a
}

// Run processes input until Quit or ctx is done
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse(tcell.MouseMotionEvents)
	defer a.screen.DisableMouse()

	go a.pollInput()

	// Redraw periodically so status messages expire without input
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-a.wake:
		case <-ticker.C:
		}

		for _, ev := range a.queue.Consume() {
			if ev.Type == event.EventQuit {
				return nil
			}
			if err := a.ws.Dispatch(ev); err != nil {
				a.log.Debug("event rejected", "event", ev.String(), "error", err)
			}
		}

		a.draw()
	}
}

// pollInput runs until the screen is finalized
func (a *App) pollInput() {
	var tr Translator
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}

		if _, ok := ev.(*tcell.EventResize); !ok {
			for _, out := range tr.Translate(ev, a.layout.Load()) {
				a.queue.Push(out)
			}
		}
		a.signal()
	}
}

func (a *App) signal() {
	select {
	case a.wake <- struct{}{}:
	default:
	}
}

// draw renders a frame and publishes its layout for hit-testing
func (a *App) draw() {
	w, h := a.screen.Size()
	if w != a.width || h != a.height {
		a.width, a.height = w, h
		a.screen.Sync()
	}

	l := NewLayout(a.ws.Config(), a.ws.Palette(), w, h)
	Draw(a.screen, a.ws, l, a.status)
	a.layout.Store(l)
}
