package tui

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shapeboard/config"
	"github.com/lixenwraith/shapeboard/event"
	"github.com/lixenwraith/shapeboard/grid"
	"github.com/lixenwraith/shapeboard/palette"
	"github.com/lixenwraith/shapeboard/shape"
	"github.com/lixenwraith/shapeboard/workspace"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.EditHeight, cfg.EditWidth = 5, 5
	cfg.BoardHeight, cfg.BoardWidth = 6, 10
	return cfg
}

func testPalette(t *testing.T) palette.Palette {
	t.Helper()
	var p palette.Palette
	for _, text := range []string{"##\n#.", "###"} {
		s, err := shape.FromGrid(text)
		if err != nil {
			t.Fatal(err)
		}
		p = p.Append(s)
	}
	return p
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Expected simulation screen to init, got %v", err)
	}
	screen.SetSize(80, 24)
	return screen
}

// center returns the screen position of the left column of a grid cell
func center(area Rect, row, col int) (int, int) {
	return area.X + col*CellWidth, area.Y + row
}

func mouse(x, y int, down bool) *tcell.EventMouse {
	btn := tcell.ButtonNone
	if down {
		btn = tcell.Button1
	}
	return tcell.NewEventMouse(x, y, btn, tcell.ModNone)
}

func TestLayoutHitTesting(t *testing.T) {
	l := NewLayout(testConfig(), testPalette(t), 80, 24)

	x, y := center(l.Edit, 2, 3)
	if p, ok := l.EditCell(x+1, y); !ok || p != (grid.Point{Row: 2, Col: 3}) {
		t.Errorf("Expected edit cell (2,3), got %v (%v)", p, ok)
	}

	x, y = center(l.Board, 5, 9)
	if p, ok := l.BoardCell(x, y); !ok || p != (grid.Point{Row: 5, Col: 9}) {
		t.Errorf("Expected board cell (5,9), got %v (%v)", p, ok)
	}
	if _, ok := l.BoardCell(l.Board.X+l.Board.W, l.Board.Y); ok {
		t.Error("Expected position right of the board to miss")
	}

	if len(l.Entries) != 2 || l.Hidden != 0 {
		t.Fatalf("Expected 2 visible entries, got %d (hidden %d)", len(l.Entries), l.Hidden)
	}
	if i, ok := l.Entry(l.Entries[1].X, l.Entries[1].Y); !ok || i != 1 {
		t.Errorf("Expected entry 1, got %d (%v)", i, ok)
	}
	if !l.OnCommit(l.Commit.X, l.Commit.Y) {
		t.Error("Expected commit button hit")
	}

	if l.Board.X < l.EditBox.X+l.EditBox.W {
		t.Error("Expected board panel right of the edit column")
	}
}

func TestLayoutHidesOverflow(t *testing.T) {
	var p palette.Palette
	tall, _ := shape.FromGrid("#\n#\n#\n#\n#")
	for i := 0; i < 6; i++ {
		p = p.Append(tall)
	}

	l := NewLayout(testConfig(), p, 80, 24)
	if l.Hidden == 0 || len(l.Entries)+l.Hidden != 6 {
		t.Errorf("Expected overflowing entries to be hidden, got visible=%d hidden=%d", len(l.Entries), l.Hidden)
	}
}

func TestTranslatorDragGesture(t *testing.T) {
	l := NewLayout(testConfig(), testPalette(t), 80, 24)
	var tr Translator

	var got []event.Event
	feed := func(ev tcell.Event) {
		got = append(got, tr.Translate(ev, l)...)
	}

	e := l.Entries[0]
	feed(mouse(e.X, e.Y, true))

	bx, by := center(l.Board, 1, 2)
	feed(mouse(bx, by, true))
	feed(mouse(bx+1, by, true)) // same cell, second column
	feed(mouse(0, 0, true))     // off board
	feed(mouse(bx, by, true))
	feed(mouse(bx, by, false))

	want := []event.Event{
		event.DragStart(0),
		event.DragHover(1, 2),
		event.DragHover(1, 2),
		event.DragLeave(),
		event.DragHover(1, 2),
		event.Drop(1, 2),
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d events, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Event %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if tr.Dragging() {
		t.Error("Expected gesture to end on release")
	}
}

func TestTranslatorReleaseOffBoard(t *testing.T) {
	l := NewLayout(testConfig(), testPalette(t), 80, 24)
	var tr Translator

	e := l.Entries[1]
	tr.Translate(mouse(e.X, e.Y, true), l)
	out := tr.Translate(mouse(0, l.StatusY, false), l)

	if len(out) != 1 || out[0] != event.DragEnd() {
		t.Errorf("Expected DragEnd on release off board, got %v", out)
	}
}

func TestTranslatorPaintAndKeys(t *testing.T) {
	l := NewLayout(testConfig(), palette.Palette{}, 80, 24)
	var tr Translator

	x, y := center(l.Edit, 0, 4)
	out := tr.Translate(mouse(x, y, true), l)
	if len(out) != 1 || out[0] != event.Paint(0, 4) {
		t.Errorf("Expected Paint(0,4), got %v", out)
	}
	if out := tr.Translate(mouse(x, y, true), l); out != nil {
		t.Errorf("Expected held button without drag to be ignored, got %v", out)
	}
	tr.Translate(mouse(x, y, false), l)

	keys := []struct {
		ev   *tcell.EventKey
		want event.Type
	}{
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), event.EventCommit},
		{tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), event.EventCommit},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), event.EventQuit},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), event.EventQuit},
	}
	for _, k := range keys {
		out := tr.Translate(k.ev, l)
		if len(out) != 1 || out[0].Type != k.want {
			t.Errorf("Expected %s for key %v, got %v", k.want, k.ev.Name(), out)
		}
	}
}

func TestDrawBoardStates(t *testing.T) {
	screen := newScreen(t)
	defer screen.Fini()

	ws, err := workspace.New(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	ws.Paint(0, 0)
	ws.Paint(0, 1)
	ws.Commit()
	ws.DragStart(0)
	ws.Drop(0, 0)
	ws.DragStart(0)
	ws.DragHover(0, 1)

	st := NewStatus()
	l := NewLayout(ws.Config(), ws.Palette(), 80, 24)
	Draw(screen, ws, l, st)

	check := func(row, col int, wantBg tcell.Color) {
		t.Helper()
		x, y := center(l.Board, row, col)
		_, _, style, _ := screen.GetContent(x, y)
		_, bg, _ := style.Decompose()
		if bg != wantBg {
			t.Errorf("Expected board cell (%d,%d) background %v, got %v", row, col, wantBg, bg)
		}
	}

	check(0, 0, ColorPlaced)
	check(0, 1, ColorConflict)
	check(0, 2, ColorPreview)
	check(1, 0, ColorGridBg)

	ch, _, _, _ := screen.GetContent(l.Commit.X+2, l.Commit.Y)
	if ch != 'C' {
		t.Errorf("Expected commit label, got %q", ch)
	}
}

func TestStatusExpires(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	st := NewStatus()
	st.now = func() time.Time { return now }

	st.Observe(workspace.Notice{Kind: workspace.NoticeRejected})
	if msg, kind := st.Message(); msg == "" || kind != StatusError {
		t.Errorf("Expected error message, got %q (%v)", msg, kind)
	}

	now = now.Add(StatusTTL + time.Millisecond)
	if msg, _ := st.Message(); msg != "" {
		t.Errorf("Expected message to expire, got %q", msg)
	}
}

// TestAppRunsGesture drives the full loop through injected simulation input
func TestAppRunsGesture(t *testing.T) {
	screen := newScreen(t)
	defer screen.Fini()

	st := NewStatus()
	ws, err := workspace.New(testConfig(), workspace.WithObserver(st.Observe))
	if err != nil {
		t.Fatal(err)
	}
	app := NewApp(screen, ws, st, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	l := NewLayout(ws.Config(), palette.Palette{}, 80, 24)
	x, y := center(l.Edit, 1, 1)
	screen.InjectMouse(x, y, tcell.Button1, tcell.ModNone)
	screen.InjectMouse(x, y, tcell.ButtonNone, tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	// Wait for the commit to publish a layout with the new entry
	deadline := time.Now().Add(3 * time.Second)
	for len(app.layout.Load().Entries) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("Expected palette entry to appear")
		}
		time.Sleep(10 * time.Millisecond)
	}

	e := app.layout.Load().Entries[0]
	bx, by := center(l.Board, 2, 3)
	screen.InjectMouse(e.X, e.Y, tcell.Button1, tcell.ModNone)
	screen.InjectMouse(bx, by, tcell.Button1, tcell.ModNone)
	screen.InjectMouse(bx, by, tcell.ButtonNone, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Expected clean exit, got %v", err)
		}
	case <-ctx.Done():
		t.Fatal("Expected app to quit")
	}

	if !ws.Board().At(2, 3) || ws.Board().Count() != 1 {
		t.Errorf("Expected single cell placed at (2,3), got\n%s", ws.Board())
	}
	if ws.Palette().Len() != 1 {
		t.Errorf("Expected 1 palette shape, got %d", ws.Palette().Len())
	}
}
