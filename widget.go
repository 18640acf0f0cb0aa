package guigrid

import (
	"fmt"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

// Kind identifies the type of a widget.
type Kind uint8

// The widget kinds.
const (
	KindLabel Kind = iota
	KindButton
	KindEdit
	KindCheck
	KindRadio
	KindImage
)

var kindNames = [...]string{
	KindLabel:  "label",
	KindButton: "button",
	KindEdit:   "edit",
	KindCheck:  "check",
	KindRadio:  "radio",
	KindImage:  "image",
}

// String returns the lower case kind name, as printed by the CLI.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Widget is a cell content of a Gui.
// Widgets are compared by identity, so they are always used through pointers.
type Widget interface {
	Kind() Kind
	// Text returns the text shown by the widget. It is also the source of the default widget name.
	Text() string
	Layout(gtx layout.Context, th *material.Theme) layout.Dimensions
}

// Signaler is implemented by the widgets having a default event.
type Signaler interface {
	Widget
	Signal() *Signal
}

// namer is implemented by the widgets carrying an explicit name.
type namer interface {
	Name() string
}

// NewWidget builds a widget of the given kind. The text is the label for
// labels, buttons, checkboxes and radio buttons, the name for edits
// and the source path or url for images. Every radio button gets its own group.
func NewWidget(kind Kind, text string) (Widget, error) {
	switch kind {
	case KindLabel:
		return L(text), nil
	case KindButton:
		return B(text), nil
	case KindEdit:
		return E(text), nil
	case KindCheck:
		return C(text), nil
	case KindRadio:
		return R(text, nil), nil
	case KindImage:
		return LoadImage(text)
	}
	return nil, fmt.Errorf("unknown widget kind: %v", kind)
}

// Label is a static text.
type Label struct {
	text string
}

// L returns a new label.
func L(text string) *Label {
	return &Label{text: text}
}

// Kind returns KindLabel.
func (l *Label) Kind() Kind { return KindLabel }

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText replaces the label text.
func (l *Label) SetText(s string) { l.text = s }

// Layout draws the text in the theme body style.
func (l *Label) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return material.Body1(th, l.text).Layout(gtx)
}

// Button is a push button. Its default signal is "clicked".
type Button struct {
	text   string
	click  widget.Clickable
	signal *Signal
}

// B returns a new push button.
func B(text string) *Button {
	b := &Button{text: text}
	b.signal = newSignal("clicked", b.click.Clicked)
	return b
}

// Kind returns KindButton.
func (b *Button) Kind() Kind { return KindButton }

// Text returns the button caption.
func (b *Button) Text() string { return b.text }

// Signal returns the "clicked" signal.
func (b *Button) Signal() *Signal { return b.signal }

// Click performs a programmatic click, delivered with the next dispatch.
func (b *Button) Click() { b.click.Click() }

// Layout draws a material button.
func (b *Button) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return material.Button(th, &b.click, b.text).Layout(gtx)
}

// editMinWidth keeps empty editors usable.
var editMinWidth = unit.Dp(120)

// Edit is a single line text input. Its default signal is "submitted",
// emitted when the return key is pressed.
type Edit struct {
	name   string
	editor widget.Editor
	signal *Signal

	// submits counts the submissions not yet reported by the signal.
	submits int
}

// E returns a new, empty text input with the given name. The name is also used as hint.
func E(name string) *Edit {
	e := &Edit{name: name}
	e.editor.SingleLine = true
	e.editor.Submit = true
	e.signal = newSignal("submitted", e.submitted)
	return e
}

// Kind returns KindEdit.
func (e *Edit) Kind() Kind { return KindEdit }

// Text returns the current content.
func (e *Edit) Text() string { return e.editor.Text() }

// SetText replaces the content.
func (e *Edit) SetText(s string) { e.editor.SetText(s) }

// Name returns the name given at construction.
func (e *Edit) Name() string { return e.name }

// Signal returns the "submitted" signal.
func (e *Edit) Signal() *Signal { return e.signal }

// Submit performs a programmatic submission, delivered with the next dispatch.
func (e *Edit) Submit() { e.submits++ }

// submitted reports one pending submission at a time.
func (e *Edit) submitted() bool {
	for _, ev := range e.editor.Events() {
		if _, ok := ev.(widget.SubmitEvent); ok {
			e.submits++
		}
	}
	if e.submits == 0 {
		return false
	}
	e.submits--
	return true
}

// Layout draws the editor, at least editMinWidth wide when the cell allows it.
func (e *Edit) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	if w := gtx.Dp(editMinWidth); gtx.Constraints.Min.X < w {
		gtx.Constraints.Min.X = w
		if gtx.Constraints.Max.X < w {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
		}
	}
	return material.Editor(th, &e.editor, e.name).Layout(gtx)
}

// Check is a checkbox. Its default signal is "toggled".
type Check struct {
	text   string
	value  widget.Bool
	signal *Signal
}

// C returns a new, unchecked checkbox.
func C(text string) *Check {
	c := &Check{text: text}
	c.signal = newSignal("toggled", c.value.Changed)
	return c
}

// Kind returns KindCheck.
func (c *Check) Kind() Kind { return KindCheck }

// Text returns the checkbox caption.
func (c *Check) Text() string { return c.text }

// Signal returns the "toggled" signal.
func (c *Check) Signal() *Signal { return c.signal }

// Checked reports the checkbox state.
func (c *Check) Checked() bool { return c.value.Value }

// SetChecked changes the checkbox state without emitting a signal.
func (c *Check) SetChecked(v bool) { c.value.Value = v }

// Layout draws a material checkbox.
func (c *Check) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return material.CheckBox(th, &c.value, c.text).Layout(gtx)
}

// RadioGroup makes its radio buttons mutually exclusive.
type RadioGroup struct {
	enum    widget.Enum
	keys    int
	pending string
}

// NewRadioGroup returns an empty group.
func NewRadioGroup() *RadioGroup {
	return &RadioGroup{}
}

// Value returns the key of the selected radio button, or "" if none is selected.
func (g *RadioGroup) Value() string { return g.enum.Value }

// sync latches the selection changed by the user since the last call,
// so that every radio of the group can check it.
func (g *RadioGroup) sync() {
	if g.enum.Changed() {
		g.pending = g.enum.Value
	}
}

func (g *RadioGroup) nextKey() string {
	g.keys++
	return fmt.Sprintf("radio%d", g.keys)
}

// Radio is a radio button. Its default signal is "selected",
// emitted on the button which became selected.
type Radio struct {
	text   string
	key    string
	group  *RadioGroup
	signal *Signal
}

// R returns a new radio button belonging to group.
// A nil group gives the button a group of its own.
func R(text string, group *RadioGroup) *Radio {
	if group == nil {
		group = NewRadioGroup()
	}
	r := &Radio{
		text:  text,
		key:   group.nextKey(),
		group: group,
	}
	r.signal = newSignal("selected", r.selected)
	return r
}

// Kind returns KindRadio.
func (r *Radio) Kind() Kind { return KindRadio }

// Text returns the radio caption.
func (r *Radio) Text() string { return r.text }

// Signal returns the "selected" signal.
func (r *Radio) Signal() *Signal { return r.signal }

// Group returns the group the radio belongs to.
func (r *Radio) Group() *RadioGroup { return r.group }

// Selected reports whether this radio is the selected one of its group.
func (r *Radio) Selected() bool { return r.group.enum.Value == r.key }

// Select selects the radio without emitting a signal.
func (r *Radio) Select() { r.group.enum.Value = r.key }

func (r *Radio) selected() bool {
	r.group.sync()
	if r.group.pending != "" && r.group.pending == r.key {
		r.group.pending = ""
		return true
	}
	return false
}

// Layout draws a material radio button bound to the group.
func (r *Radio) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return material.RadioButton(th, &r.group.enum, r.key, r.text).Layout(gtx)
}
