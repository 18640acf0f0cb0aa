package guigrid

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrNotName is returned when a name table holds something else than a non empty string or a marker.
var ErrNotName = errors.New("element is not a name")

// normalize keeps the letters, digits and underscores of s.
func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return -1
	}, s)
}

// defaultName derives the name of a widget from its explicit name or from its text.
func defaultName(w Widget) string {
	if n, ok := w.(namer); ok && n.Name() != "" {
		return normalize(n.Name())
	}
	return normalize(w.Text())
}

// register names w, appending underscores until the name is unique.
func (g *Gui) register(w Widget) string {
	name := defaultName(w)
	for {
		if _, taken := g.widgets[name]; !taken {
			break
		}
		name += "_"
	}
	g.widgets[name] = w
	g.names[w] = name
	g.order = append(g.order, w)
	return name
}

// Names gives aliases to the widgets placed at the same positions.
// Every cell is a non empty string or one of Blank, Left and Up, which are skipped.
// An alias can be used with Get in place of the default name.
// On error no alias is recorded.
func (g *Gui) Names(rows ...[]any) error {
	aliases := make(map[string]string)
	err := g.walk(rows, func(row, col int, v any, w Widget) error {
		switch v := v.(type) {
		case Marker:
			return nil
		case string:
			if v == "" {
				return fmt.Errorf("%w: empty string at (%d, %d)", ErrNotName, row, col)
			}
			aliases[v] = g.names[w]
			return nil
		}
		return fmt.Errorf("%w: %T at (%d, %d)", ErrNotName, v, row, col)
	})
	if err != nil {
		return err
	}
	for alias, name := range aliases {
		g.aliases[alias] = name
	}
	return nil
}

// Name returns the default name of w, or "" when w does not belong to the gui.
func (g *Gui) Name(w Widget) string {
	return g.names[w]
}

// Get returns the widget known by name, trying the aliases first.
func (g *Gui) Get(name string) (Widget, bool) {
	if n, ok := g.aliases[name]; ok {
		name = n
	}
	w, ok := g.widgets[name]
	return w, ok
}
