package guigrid

import (
	"errors"
	"image"
	"testing"

	"github.com/esimov/guigrid/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGui_ShouldPlaceSpanningWidgets(t *testing.T) {
	assert := assert.New(t)

	name := E("name")
	greet, quit := B("Greet"), B("Quit")
	g, err := New(
		[]any{"Name:", name, Left},
		[]any{greet, Left, quit},
		[]any{Up, Up, Blank},
	)
	require.NoError(t, err)

	rows, cols := g.Size()
	assert.Equal(3, rows)
	assert.Equal(3, cols)

	assert.Same(name, g.At(0, 1))
	assert.Same(name, g.At(0, 2))
	assert.Same(greet, g.At(2, 1))
	assert.Same(quit, g.At(1, 2))
	assert.Nil(g.At(3, 0))
	assert.Nil(g.At(0, 3))

	ws := g.Widgets()
	require.Len(t, ws, 5)
	assert.Equal("Name:", ws[0].Text())
	assert.Same(name, ws[1])
	assert.Same(greet, ws[2])
	assert.Same(quit, ws[3])
	assert.Equal(KindLabel, ws[4].Kind())

	for _, it := range g.layout.items {
		if it.Item == greet {
			assert.Equal(2, it.RowSpan)
			assert.Equal(2, it.ColSpan)
		}
	}
}

func TestGui_DefaultNames(t *testing.T) {
	assert := assert.New(t)

	g, err := New(
		[]any{"Hello, world!", "Hello world", Blank},
		[]any{E("first name"), B("OK"), Blank},
	)
	require.NoError(t, err)

	for name, text := range map[string]string{
		"Helloworld":  "Hello, world!",
		"Helloworld_": "Hello world",
		"OK":          "OK",
	} {
		w, ok := g.Get(name)
		if assert.True(ok, name) {
			assert.Equal(text, w.Text())
		}
	}

	w, ok := g.Get("firstname")
	assert.True(ok)
	assert.Equal(KindEdit, w.Kind())

	// Blank labels are named "" then "_".
	assert.Equal("", g.Name(g.At(0, 2)))
	assert.Equal("_", g.Name(g.At(1, 2)))

	_, ok = g.Get("missing")
	assert.False(ok)
	assert.Equal("", g.Name(B("detached")))
}

func TestGui_SameTextDistinctWidgets(t *testing.T) {
	g, err := New([]any{"x", "x"})
	require.NoError(t, err)

	assert.Len(t, g.Widgets(), 2)
	assert.NotSame(t, g.At(0, 0), g.At(0, 1))
}

func TestGui_NewErrors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]any
		want error
	}{
		{"no rows", nil, grid.ErrMalformedTable},
		{"unequal rows", [][]any{{"a", "b"}, {"c"}}, grid.ErrMalformedTable},
		{"left in first column", [][]any{{Left, "a"}}, grid.ErrInvalidMarker},
		{"up in first row", [][]any{{"a", Up}}, grid.ErrInvalidMarker},
		{"not a widget", [][]any{{"a", 42}}, ErrNotWidget},
		{"nil", [][]any{{nil}}, ErrNotWidget},
		{"nil button", [][]any{{(*Button)(nil)}}, ErrNotWidget},
		{"nil image", [][]any{{"a", (*Image)(nil)}}, ErrNotWidget},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.rows...)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestGui_Aliases(t *testing.T) {
	assert := assert.New(t)

	ok := B("OK")
	g, err := New(
		[]any{"Result", ok},
		[]any{Blank, Up},
	)
	require.NoError(t, err)

	require.NoError(t, g.Names(
		[]any{"result", "okButton"},
		[]any{Blank, Up},
	))
	w, found := g.Get("okButton")
	assert.True(found)
	assert.Same(ok, w)

	w, found = g.Get("result")
	assert.True(found)
	assert.Equal("Result", w.Text())

	// The default names stay usable.
	w, found = g.Get("OK")
	assert.True(found)
	assert.Same(ok, w)
}

func TestGui_AliasErrors(t *testing.T) {
	g, err := New([]any{"a", "b"})
	require.NoError(t, err)

	err = g.Names([]any{"first", 1})
	assert.True(t, errors.Is(err, ErrNotName))
	_, found := g.Get("first")
	assert.False(t, found, "no alias is recorded on error")

	err = g.Names([]any{"", Blank})
	assert.True(t, errors.Is(err, ErrNotName))

	err = g.Names([]any{"a", "b", "c"})
	assert.True(t, errors.Is(err, ErrOutOfRange))

	err = g.Names([]any{"a"}, []any{"b", "c"})
	assert.True(t, errors.Is(err, grid.ErrMalformedTable))
}

func TestGui_Events(t *testing.T) {
	assert := assert.New(t)

	greet, quit := B("Greet"), B("Quit")
	g, err := New(
		[]any{"Name", E("name")},
		[]any{greet, quit},
	)
	require.NoError(t, err)

	var (
		greeted int
		quitted bool
		caller  *Gui
	)
	require.NoError(t, g.Events(
		[]any{Blank, Blank},
		[]any{func(g *Gui) { greeted++; caller = g }, func() { quitted = true }},
	))

	g.dispatch()
	assert.Zero(greeted)

	greet.Click()
	greet.Click()
	g.dispatch()
	assert.Equal(2, greeted)
	assert.Same(g, caller)
	assert.False(quitted)

	quit.Click()
	g.dispatch()
	assert.True(quitted)
	assert.Equal(2, greeted)
}

func TestGui_EventsOnSpannedCell(t *testing.T) {
	btn := B("Wide")
	g, err := New([]any{btn, Left})
	require.NoError(t, err)

	clicks := 0
	require.NoError(t, g.Events([]any{Blank, func() { clicks++ }}))

	btn.Click()
	g.dispatch()
	assert.Equal(t, 1, clicks)
}

func TestGui_EventErrors(t *testing.T) {
	btn := B("Go")
	g, err := New([]any{"label", btn})
	require.NoError(t, err)

	calls := 0
	err = g.Events([]any{func() {}, func() { calls++ }})
	assert.True(t, errors.Is(err, ErrNoSignal))

	err = g.Events([]any{Blank, "not a callback"})
	assert.True(t, errors.Is(err, ErrNotCallable))

	err = g.Events([]any{Blank, func() { calls++ }, Blank})
	assert.True(t, errors.Is(err, ErrOutOfRange))

	// Nothing was connected by the failed calls.
	btn.Click()
	g.dispatch()
	assert.Zero(t, calls)
}

func TestGui_Connect(t *testing.T) {
	btn := B("Go")
	g, err := New([]any{"label", btn})
	require.NoError(t, err)

	var got *Gui
	require.NoError(t, g.Connect(btn, func(g *Gui) { got = g }))
	assert.True(t, errors.Is(g.Connect(g.At(0, 0), func(*Gui) {}), ErrNoSignal))

	btn.Click()
	g.dispatch()
	assert.Same(t, g, got)
}

func TestMarker_String(t *testing.T) {
	assert.Equal(t, "_", Blank.String())
	assert.Equal(t, "___", Left.String())
	assert.Equal(t, "I", Up.String())
}

func TestGui_Misplaced(t *testing.T) {
	a, b := B("a"), B("b")
	g, err := New(
		[]any{a, a},
		[]any{a, b},
	)
	require.NoError(t, err)

	assert.Same(t, b, g.At(1, 1))
	assert.Equal(t, []grid.Pos{{Row: 1, Col: 1}}, g.Misplaced())

	ps := g.Placements()
	require.Len(t, ps, 2)
	assert.Equal(t, 2, ps[0].RowSpan)
	assert.Equal(t, 2, ps[0].ColSpan)

	g, err = New([]any{"x", Left}, []any{Up, Up})
	require.NoError(t, err)
	assert.Empty(t, g.Misplaced())
}

func TestGui_LayoutFiresSignals(t *testing.T) {
	btn := B("Go")
	g, err := New([]any{"label", btn})
	require.NoError(t, err)

	clicks := 0
	require.NoError(t, g.Connect(btn, func(*Gui) { clicks++ }))

	btn.Click()
	frame(g, image.Pt(200, 100))
	assert.Equal(t, 1, clicks)

	frame(g, image.Pt(200, 100))
	assert.Equal(t, 1, clicks, "a click fires once")
}
