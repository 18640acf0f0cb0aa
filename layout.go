package guigrid

import (
	"errors"
	"fmt"
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/esimov/guigrid/grid"
	"github.com/esimov/guigrid/utils"
)

var (
	// ErrBadPlacement is returned when a widget is added with a negative position or a non positive span.
	ErrBadPlacement = errors.New("invalid placement")
	// ErrDuplicateWidget is returned when the same widget is added twice to a layout.
	ErrDuplicateWidget = errors.New("widget already placed")
)

// gridItem is a widget with its grid area, the natural size measured on the
// current frame and the cell it was last drawn into.
type gridItem struct {
	grid.Placement[Widget]
	size image.Point
	cell image.Point
}

// measurer is implemented by the widgets able to report their natural size
// without being laid out.
type measurer interface {
	measure(max image.Point) image.Point
}

// GridLayout arranges widgets on a grid where each widget covers
// a rectangle of rowSpan x colSpan cells.
//
// Column widths and row heights follow the natural size of the widgets,
// the remaining space being shared evenly between all the tracks.
// Every frame the widgets are first measured against the whole area,
// then drawn constrained to their cell.
type GridLayout struct {
	// Spacing is the gap between two adjacent tracks.
	Spacing unit.Dp

	items      []*gridItem
	rows, cols int

	// measureOps receives the throwaway operations of the measuring pass.
	measureOps op.Ops
}

// Add places w with its top left corner at (row, col).
func (l *GridLayout) Add(w Widget, row, col, rowSpan, colSpan int) error {
	if row < 0 || col < 0 || rowSpan < 1 || colSpan < 1 {
		return fmt.Errorf("%w: (%d, %d) span (%d, %d)", ErrBadPlacement, row, col, rowSpan, colSpan)
	}
	for _, it := range l.items {
		if it.Item == w {
			return fmt.Errorf("%w at (%d, %d)", ErrDuplicateWidget, it.Row, it.Col)
		}
	}
	l.items = append(l.items, &gridItem{
		Placement: grid.Placement[Widget]{
			Item:    w,
			Row:     row,
			Col:     col,
			RowSpan: rowSpan,
			ColSpan: colSpan,
		},
	})
	l.rows = utils.Max(l.rows, row+rowSpan)
	l.cols = utils.Max(l.cols, col+colSpan)
	return nil
}

// ItemAt returns the widget covering the (row, col) cell, or nil if the cell is empty.
func (l *GridLayout) ItemAt(row, col int) Widget {
	for _, it := range l.items {
		if it.Contains(row, col) {
			return it.Item
		}
	}
	return nil
}

// Size returns the number of rows and columns.
func (l *GridLayout) Size() (rows, cols int) {
	return l.rows, l.cols
}

// Layout draws the widgets into the space given by the constraints.
func (l *GridLayout) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	if len(l.items) == 0 {
		return layout.Dimensions{Size: gtx.Constraints.Min}
	}
	gap := gtx.Dp(l.Spacing)
	avail := gtx.Constraints.Max

	l.measure(gtx, th)

	colSpans := make([]span, len(l.items))
	rowSpans := make([]span, len(l.items))
	for i, it := range l.items {
		colSpans[i] = span{start: it.Col, count: it.ColSpan, size: it.size.X}
		rowSpans[i] = span{start: it.Row, count: it.RowSpan, size: it.size.Y}
	}
	widths := tracks(l.cols, colSpans, avail.X, gap)
	heights := tracks(l.rows, rowSpans, avail.Y, gap)
	xs := offsets(widths, gap)
	ys := offsets(heights, gap)

	for _, it := range l.items {
		lastCol, lastRow := it.Col+it.ColSpan-1, it.Row+it.RowSpan-1
		it.cell = image.Point{
			X: xs[lastCol] + widths[lastCol] - xs[it.Col],
			Y: ys[lastRow] + heights[lastRow] - ys[it.Row],
		}

		cgtx := gtx
		cgtx.Constraints = layout.Constraints{Max: it.cell}
		macro := op.Record(gtx.Ops)
		dims := it.Item.Layout(cgtx, th)
		call := macro.Stop()

		// Center vertically, align to the start horizontally.
		dy := utils.Max((it.cell.Y-dims.Size.Y)/2, 0)
		trans := op.Offset(image.Pt(xs[it.Col], ys[it.Row]+dy)).Push(gtx.Ops)
		cl := clip.Rect{Max: image.Pt(it.cell.X, it.cell.Y-dy)}.Push(gtx.Ops)
		call.Add(gtx.Ops)
		cl.Pop()
		trans.Pop()
	}

	return layout.Dimensions{Size: image.Point{
		X: xs[l.cols-1] + widths[l.cols-1],
		Y: ys[l.rows-1] + heights[l.rows-1],
	}}
}

// measure records the natural size of every widget laid out in the whole area.
// The measuring pass has no event queue, so it leaves the widget input untouched.
func (l *GridLayout) measure(gtx layout.Context, th *material.Theme) {
	l.measureOps.Reset()
	mgtx := gtx
	mgtx.Ops = &l.measureOps
	mgtx.Queue = nil
	mgtx.Constraints = layout.Constraints{Max: gtx.Constraints.Max}

	for _, it := range l.items {
		if m, ok := it.Item.(measurer); ok {
			it.size = m.measure(mgtx.Constraints.Max)
			continue
		}
		it.size = it.Item.Layout(mgtx, th).Size
	}
}

// span is the extent of one widget along one axis.
type span struct {
	start, count int
	size         int
}

// tracks computes the size of n tracks holding the given spans in avail pixels,
// with gap pixels between two tracks.
func tracks(n int, spans []span, avail, gap int) []int {
	size := make([]int, n)
	if n == 0 {
		return size
	}
	for _, s := range spans {
		if s.count == 1 {
			size[s.start] = utils.Max(size[s.start], s.size)
		}
	}
	// Widgets spanning several tracks only grow them when they don't fit.
	for _, s := range spans {
		if s.count < 2 {
			continue
		}
		covered := utils.Sum(size[s.start:s.start+s.count]...) + gap*(s.count-1)
		if deficit := s.size - covered; deficit > 0 {
			spread(size[s.start:s.start+s.count], deficit)
		}
	}

	room := utils.Max(avail-gap*(n-1), 0)
	content := utils.Sum(size...)
	switch {
	case content < room:
		spread(size, room-content)
	case content > room:
		// Shrink proportionally, keeping the exact total.
		var acc, prev int
		for i, v := range size {
			acc += v
			next := acc * room / content
			size[i] = next - prev
			prev = next
		}
	}
	return size
}

// spread adds extra pixels evenly to the tracks. The first tracks get the remainder.
func spread(size []int, extra int) {
	share, rem := extra/len(size), extra%len(size)
	for i := range size {
		size[i] += share
		if i < rem {
			size[i]++
		}
	}
}

// offsets returns the start position of every track.
func offsets(size []int, gap int) []int {
	pos := make([]int, len(size))
	for i := 1; i < len(size); i++ {
		pos[i] = pos[i-1] + size[i-1] + gap
	}
	return pos
}
