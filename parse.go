package guigrid

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// ParseError reports a malformed line of a layout description.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	reLeft   = regexp.MustCompile(`^_{3,}$`)
	reUp     = regexp.MustCompile(`^I+$`)
	reEdit   = regexp.MustCompile(`^__(\w+)__$`)
	reCheck  = regexp.MustCompile(`^\[([ xX])\]\s+(.+)$`)
	reRadio  = regexp.MustCompile(`^\(([ oO])\)\s+(.+)$`)
	reButton = regexp.MustCompile(`^\[(.+)\]$`)
)

const imagePrefix = "img:"

// Parse reads a layout description and returns the table to give to New.
// Each line is a row and cells are separated by '|'. Empty lines and lines
// starting with '#' are ignored. A cell reads as:
//
//	___       the widget on the left continues here (three or more underscores)
//	I, III    the widget above continues here
//	_         an empty label
//	[text]    a button
//	__name__  a text input
//	[x] text  a checkbox, checked with x, unchecked with a space
//	(o) text  a radio button, selected with o; all the radios share one group
//	img:src   an image loaded from a path or an url
//	text      a label
func Parse(r io.Reader) ([][]any, error) {
	var (
		rows  [][]any
		group = NewRadioGroup()
		line  int
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		text = strings.TrimPrefix(text, "|")
		text = strings.TrimSuffix(text, "|")

		var row []any
		for _, field := range strings.Split(text, "|") {
			cell, err := parseCell(strings.TrimSpace(field), group)
			if err != nil {
				return nil, &ParseError{Line: line, Err: err}
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &ParseError{Line: line, Err: fmt.Errorf("no rows")}
	}
	return rows, nil
}

func parseCell(s string, group *RadioGroup) (any, error) {
	switch {
	case s == "_":
		return Blank, nil
	case reLeft.MatchString(s):
		return Left, nil
	case reUp.MatchString(s):
		return Up, nil
	case strings.HasPrefix(s, imagePrefix):
		return LoadImage(strings.TrimSpace(strings.TrimPrefix(s, imagePrefix)))
	}
	if m := reEdit.FindStringSubmatch(s); m != nil {
		return E(m[1]), nil
	}
	if m := reCheck.FindStringSubmatch(s); m != nil {
		c := C(m[2])
		c.SetChecked(m[1] != " ")
		return c, nil
	}
	if m := reRadio.FindStringSubmatch(s); m != nil {
		r := R(m[2], group)
		if m[1] != " " {
			r.Select()
		}
		return r, nil
	}
	if m := reButton.FindStringSubmatch(s); m != nil {
		return B(m[1]), nil
	}
	return s, nil
}
