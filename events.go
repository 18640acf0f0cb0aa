package guigrid

import (
	"errors"
	"fmt"
)

var (
	// ErrNotCallable is returned when an event table holds something else than a callback or a marker.
	ErrNotCallable = errors.New("element is not a callable")
	// ErrNoSignal is returned when a callback is attached to a widget without a default signal.
	ErrNoSignal = errors.New("widget has no default signal")
)

// Signal is the default event source of a widget. It is fired by polling
// the underlying Gio widget state, once per frame, from Gui.Layout.
type Signal struct {
	name  string
	poll  func() bool
	slots []func()
}

func newSignal(name string, poll func() bool) *Signal {
	return &Signal{name: name, poll: poll}
}

// Name returns the signal name, like "clicked" or "submitted".
func (s *Signal) Name() string { return s.name }

// Connect registers fn to be called each time the signal fires.
func (s *Signal) Connect(fn func()) {
	s.slots = append(s.slots, fn)
}

// emit drains the pending occurrences of the signal and calls the slots once per occurrence.
// It returns the number of occurrences.
func (s *Signal) emit() int {
	n := 0
	for s.poll() {
		n++
		for _, fn := range s.slots {
			fn()
		}
	}
	return n
}

// Events wires callbacks to the default signal of the widgets placed at the same positions.
// Every cell is a func(), a func(*Gui) or one of Blank, Left and Up, which are skipped.
// A callback placed on a cell covered by a spanning widget is attached to that widget.
// On error no callback is connected.
func (g *Gui) Events(rows ...[]any) error {
	type conn struct {
		sig *Signal
		fn  func()
	}
	var conns []conn

	err := g.walk(rows, func(row, col int, v any, w Widget) error {
		var fn func()
		switch v := v.(type) {
		case Marker:
			return nil
		case func():
			fn = v
		case func(*Gui):
			fn = func() { v(g) }
		default:
			return fmt.Errorf("%w: %T at (%d, %d)", ErrNotCallable, v, row, col)
		}
		s, ok := w.(Signaler)
		if !ok {
			return fmt.Errorf("%w: %v %q at (%d, %d)", ErrNoSignal, w.Kind(), g.Name(w), row, col)
		}
		conns = append(conns, conn{sig: s.Signal(), fn: fn})
		return nil
	})
	if err != nil {
		return err
	}
	for _, c := range conns {
		c.sig.Connect(c.fn)
	}
	return nil
}

// Connect attaches fn to the default signal of w.
func (g *Gui) Connect(w Widget, fn func(*Gui)) error {
	s, ok := w.(Signaler)
	if !ok {
		return fmt.Errorf("%w: %v %q", ErrNoSignal, w.Kind(), g.Name(w))
	}
	s.Signal().Connect(func() { fn(g) })
	return nil
}

// dispatch fires the pending signals of all widgets, in placement order,
// and returns the number of fired occurrences.
func (g *Gui) dispatch() int {
	n := 0
	for _, w := range g.order {
		if s, ok := w.(Signaler); ok {
			n += s.Signal().emit()
		}
	}
	return n
}
