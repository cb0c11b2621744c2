package fsm

import (
	"strings"
	"testing"

	"github.com/lixenwraith/shapeboard/event"
)

type recorder struct {
	log   []string
	allow bool
}

func (r *recorder) add(s string) { r.log = append(r.log, s) }

const lampGraph = `
initial = "Off"

[states.Off]
on_enter = ["EnterOff"]
on_exit = ["ExitOff"]

  [[states.Off.transitions]]
  trigger = "DragStart"
  target = "On"
  guard = "Allowed"
  actions = ["Note"]

[states.On]
on_enter = ["EnterOn"]

  [[states.On.transitions]]
  trigger = "DragHover"
  target = "On"
  actions = ["Note"]

  [[states.On.transitions]]
  trigger = "Drop"
  target = "Off"
  actions = ["Note"]
`

func newLamp(t *testing.T) (*Machine[*recorder], *recorder) {
	t.Helper()
	m := NewMachine[*recorder]()
	m.RegisterGuard("Allowed", func(r *recorder, _ event.Event) bool { return r.allow })
	m.RegisterAction("EnterOff", func(r *recorder, _ event.Event) { r.add("enter:off") })
	m.RegisterAction("ExitOff", func(r *recorder, _ event.Event) { r.add("exit:off") })
	m.RegisterAction("EnterOn", func(r *recorder, _ event.Event) { r.add("enter:on") })
	m.RegisterAction("Note", func(r *recorder, ev event.Event) { r.add(ev.String()) })

	if err := m.LoadConfig([]byte(lampGraph)); err != nil {
		t.Fatalf("Expected graph to load, got %v", err)
	}
	r := &recorder{allow: true}
	if err := m.Init(r); err != nil {
		t.Fatalf("Expected Init to succeed, got %v", err)
	}
	return m, r
}

func TestMachineLifecycle(t *testing.T) {
	m, r := newLamp(t)

	if m.State() != "Off" {
		t.Fatalf("Expected initial state Off, got %s", m.State())
	}

	if !m.Fire(r, event.DragStart(2)) {
		t.Fatal("Expected DragStart to transition")
	}
	if !m.Fire(r, event.DragHover(1, 1)) {
		t.Error("Expected self transition to report handled")
	}
	if !m.Fire(r, event.Drop(1, 1)) {
		t.Error("Expected Drop to transition")
	}

	want := "enter:off,DragStart[2],exit:off,enter:on,DragHover(1,1),Drop(1,1),enter:off"
	if got := strings.Join(r.log, ","); got != want {
		t.Errorf("Expected sequence %s, got %s", want, got)
	}
}

func TestMachineIgnoresUnmatched(t *testing.T) {
	m, r := newLamp(t)

	if m.Fire(r, event.Drop(0, 0)) {
		t.Error("Expected Drop in Off to be ignored")
	}
	if m.Fire(r, event.DragHover(0, 0)) {
		t.Error("Expected DragHover in Off to be ignored")
	}
	if m.State() != "Off" {
		t.Errorf("Expected state Off, got %s", m.State())
	}
	if len(r.log) != 1 {
		t.Errorf("Expected only the initial enter action, got %v", r.log)
	}
}

func TestMachineGuardBlocks(t *testing.T) {
	m, r := newLamp(t)
	r.allow = false

	if m.Fire(r, event.DragStart(0)) {
		t.Error("Expected guarded transition to be blocked")
	}
	if m.State() != "Off" {
		t.Errorf("Expected state Off, got %s", m.State())
	}
}

func TestAccepts(t *testing.T) {
	m, r := newLamp(t)

	if !m.Accepts(event.EventDragStart) || m.Accepts(event.EventDrop) {
		t.Error("Expected Off to accept only DragStart")
	}
	m.Fire(r, event.DragStart(0))
	if !m.Accepts(event.EventDrop) || m.Accepts(event.EventDragStart) {
		t.Error("Expected On to accept Drop but not DragStart")
	}
}

func TestLoadConfigRejectsBadReferences(t *testing.T) {
	cases := map[string]string{
		"unknown target": `
initial = "A"
[states.A]
  [[states.A.transitions]]
  trigger = "Drop"
  target = "B"
`,
		"unknown trigger": `
initial = "A"
[states.A]
  [[states.A.transitions]]
  trigger = "Explode"
  target = "A"
`,
		"unknown action": `
initial = "A"
[states.A]
on_enter = ["Missing"]
`,
		"unknown guard": `
initial = "A"
[states.A]
  [[states.A.transitions]]
  trigger = "Drop"
  target = "A"
  guard = "Missing"
`,
		"unknown initial": `
initial = "Z"
[states.A]
`,
		"no states": `initial = "A"`,
	}

	for name, doc := range cases {
		m := NewMachine[*recorder]()
		if err := m.LoadConfig([]byte(doc)); err == nil {
			t.Errorf("%s: expected load to fail", name)
		}
	}
}
