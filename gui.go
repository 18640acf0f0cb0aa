package guigrid

import (
	"errors"
	"fmt"
	"reflect"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/esimov/guigrid/grid"
)

var (
	// ErrNotWidget is returned when a layout table holds something else than a widget, a string or a marker.
	ErrNotWidget = errors.New("element is not a widget")
	// ErrOutOfRange is returned when an event or name table reaches past the grid.
	ErrOutOfRange = errors.New("position outside of the grid")
)

// Marker is a special cell value of the layout, event and name tables.
type Marker uint8

const (
	// Blank is an empty cell. In a layout table every Blank becomes a distinct empty label.
	Blank Marker = iota + 1
	// Left extends the widget on the left over the cell.
	Left
	// Up extends the widget above over the cell.
	Up
)

func (m Marker) String() string {
	switch m {
	case Blank:
		return "_"
	case Left:
		return "___"
	case Up:
		return "I"
	}
	return fmt.Sprintf("marker(%d)", m)
}

// Gui is a grid of widgets built from a layout table.
// The grid is fixed once built; names, aliases and event callbacks are added afterwards.
type Gui struct {
	Config Config
	// Theme is used to draw the widgets. When nil, a theme is made from Config on the first frame.
	Theme *material.Theme

	layout  GridLayout
	cells   [][]Widget
	order   []Widget
	widgets map[string]Widget
	names   map[Widget]string
	aliases map[string]string
}

// New builds a Gui from a layout table. Every row is a slice of cells,
// all rows having the same length. A cell is either:
//   - a Widget, placed as is;
//   - a string, shown as a label;
//   - Blank, an empty label;
//   - Left or Up, extending the widget on the left or above over the cell.
//
// A widget repeated over adjacent cells spans them. Every widget is named
// after its text, see Get.
func New(rows ...[]any) (*Gui, error) {
	table := make([][]grid.Cell[Widget], len(rows))
	for i, row := range rows {
		table[i] = make([]grid.Cell[Widget], len(row))
		for j, v := range row {
			c, err := toCell(v)
			if err != nil {
				return nil, fmt.Errorf("%w: %T at (%d, %d)", err, v, i, j)
			}
			table[i][j] = c
		}
	}
	resolved, err := grid.Resolve(table)
	if err != nil {
		return nil, err
	}

	g := &Gui{
		Config:  DefaultConfig(),
		cells:   resolved,
		widgets: make(map[string]Widget),
		names:   make(map[Widget]string),
		aliases: make(map[string]string),
	}
	for _, p := range grid.Placements(resolved) {
		if err := g.layout.Add(p.Item, p.Row, p.Col, p.RowSpan, p.ColSpan); err != nil {
			return nil, err
		}
		g.register(p.Item)
	}
	return g, nil
}

func toCell(v any) (grid.Cell[Widget], error) {
	switch v := v.(type) {
	case Marker:
		switch v {
		case Blank:
			return grid.Of[Widget](L("")), nil
		case Left:
			return grid.Left[Widget](), nil
		case Up:
			return grid.Up[Widget](), nil
		}
	case string:
		return grid.Of[Widget](L(v)), nil
	case Widget:
		if !isNil(v) {
			return grid.Of(v), nil
		}
	}
	return grid.Cell[Widget]{}, ErrNotWidget
}

// isNil reports whether w holds a nil pointer, like (*Button)(nil).
func isNil(w Widget) bool {
	if w == nil {
		return true
	}
	v := reflect.ValueOf(w)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// walk calls fn for every cell of a table laid over the grid,
// passing the widget found at the cell position.
func (g *Gui) walk(rows [][]any, fn func(row, col int, v any, w Widget) error) error {
	if _, err := grid.CheckShape(rows); err != nil {
		return err
	}
	for i, row := range rows {
		for j, v := range row {
			w := g.At(i, j)
			if w == nil {
				return fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, i, j)
			}
			if err := fn(i, j, v, w); err != nil {
				return err
			}
		}
	}
	return nil
}

// At returns the widget of the (row, col) cell, or nil outside of the grid.
func (g *Gui) At(row, col int) Widget {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= len(g.cells[row]) {
		return nil
	}
	return g.cells[row][col]
}

// Placements returns the rectangle of every widget, in layout table order.
func (g *Gui) Placements() []grid.Placement[Widget] {
	ps := make([]grid.Placement[Widget], len(g.layout.items))
	for i, it := range g.layout.items {
		ps[i] = it.Placement
	}
	return ps
}

// Misplaced lists the cells drawn over by a widget other than their own.
// It is empty unless a widget covers a region which is not a rectangle.
func (g *Gui) Misplaced() []grid.Pos {
	return grid.Misplaced(g.cells, g.Placements())
}

// Widgets returns all the widgets, ordered by their first appearance in the layout table.
func (g *Gui) Widgets() []Widget {
	return append([]Widget(nil), g.order...)
}

// Size returns the number of rows and columns of the grid.
func (g *Gui) Size() (rows, cols int) {
	return g.layout.Size()
}

// Layout fires the pending widget signals, then draws the grid.
// It allows embedding a Gui into another Gio program.
//
// Input handled while drawing fires its signals right after the grid is drawn,
// and a new frame is requested so that the callbacks' changes show up.
func (g *Gui) Layout(gtx layout.Context) layout.Dimensions {
	if g.Theme == nil {
		g.Theme = g.Config.theme()
	}
	g.layout.Spacing = g.Config.Spacing

	g.dispatch()

	if g.Config.Background.A > 0 {
		paint.Fill(gtx.Ops, g.Config.Background)
	}
	dims := layout.UniformInset(g.Config.Inset).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return g.layout.Layout(gtx, g.Theme)
	})
	if g.dispatch() > 0 {
		op.InvalidateOp{}.Add(gtx.Ops)
	}
	return dims
}

// Run opens a window showing the gui and blocks until the window is closed.
// Pressing ESC closes the window. Like every Gio program, the caller
// must hand the main goroutine over to app.Main.
func (g *Gui) Run() error {
	w := app.NewWindow(
		app.Title(g.Config.Title),
		app.Size(unit.Dp(g.Config.Width), unit.Dp(g.Config.Height)),
	)

	var ops op.Ops
	for e := range w.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			g.Layout(gtx)
			e.Frame(gtx.Ops)
		case key.Event:
			if e.Name == key.NameEscape {
				w.Perform(system.ActionClose)
			}
		case system.DestroyEvent:
			return e.Err
		}
	}
	return nil
}
