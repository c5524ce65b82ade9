package model

import (
	"fmt"
	"strings"
)

// DefaultType is the type assigned to a SpecialWidget constructed
// without an explicit one.
const DefaultType = "Default"

// Namer is the capability shared by every widget. Calls through a Namer
// dispatch to the concrete type stored in the interface value, so a Namer
// holding a *SpecialWidget can later be narrowed back to it.
type Namer interface {
	Name() string
}

// Widget is the general widget. Its name is fixed at construction.
type Widget struct {
	name string
}

// NewWidget creates a plain widget with the given name.
func NewWidget(name string) *Widget {
	return &Widget{name: name}
}

// Name returns the widget's name.
func (w *Widget) Name() string {
	return w.name
}

// SpecialWidget is a Widget with an additional type attribute.
type SpecialWidget struct {
	Widget

	typ string
}

// NewSpecialWidget creates a special widget. An empty typ selects DefaultType.
func NewSpecialWidget(name, typ string) *SpecialWidget {
	if typ == "" {
		typ = DefaultType
	}
	return &SpecialWidget{Widget: Widget{name: name}, typ: typ}
}

// Type returns the widget's type.
func (sw *SpecialWidget) Type() string {
	return sw.typ
}

// SetType changes the widget's type. Setting it to the empty string
// restores DefaultType so that a special widget never loses its type.
func (sw *SpecialWidget) SetType(typ string) {
	if typ == "" {
		typ = DefaultType
	}
	sw.typ = typ
}

// View returns a read-only view of the widget.
func (sw *SpecialWidget) View() SpecialWidgetView {
	return sw
}

// SpecialWidgetView is the read-only surface of a SpecialWidget. Code that
// receives a view may read both attributes but cannot reach SetType
// without an explicit conversion (see cast.RemoveReadOnly).
type SpecialWidgetView interface {
	Namer
	Type() string
}

// Kind tags the concrete type behind a Namer.
type Kind string

const (
	// KindWidget is a plain Widget.
	KindWidget Kind = "widget"

	// KindSpecial is a SpecialWidget.
	KindSpecial Kind = "special"
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks whether the Kind value is one of the predefined kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindWidget, KindSpecial:
		return true
	default:
		return false
	}
}

// ParseKind converts a string to a Kind, ignoring case.
func ParseKind(s string) (Kind, error) {
	kind := Kind(strings.ToLower(s))
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid widget kind: %q (valid: widget, special)", s)
	}
	return kind, nil
}

// KindOf reports the kind of the value held by n. It returns the empty
// Kind for nil or for types outside the widget hierarchy.
func KindOf(n Namer) Kind {
	switch n.(type) {
	case *SpecialWidget:
		return KindSpecial
	case *Widget:
		return KindWidget
	default:
		return ""
	}
}

// New builds a widget of the given kind. typ is only meaningful for
// KindSpecial; passing one for KindWidget is an error.
func New(kind Kind, name, typ string) (Namer, error) {
	switch kind {
	case KindSpecial:
		return NewSpecialWidget(name, typ), nil
	case KindWidget:
		if typ != "" {
			return nil, fmt.Errorf("widget %q: plain widgets have no type (got %q)", name, typ)
		}
		return NewWidget(name), nil
	default:
		return nil, fmt.Errorf("widget %q: invalid kind %q", name, kind)
	}
}
