// Package cast implements the two handle conversions demonstrated by
// castdemo: removing the read-only restriction from a widget view, and
// narrowing a general widget handle to a *model.SpecialWidget after a
// run-time type check.
//
// Both conversions are plain Go type assertions. The pointer-style
// functions report failure with nil; the error-style functions return a
// *BadCastError so callers can tell what was held.
package cast

import (
	"errors"
	"fmt"

	"github.com/shinji-kodama/castdemo/internal/model"
)

var (
	// ErrBadCast is matched by every *BadCastError via errors.Is.
	ErrBadCast = errors.New("bad cast")

	// ErrNilHandle is returned when a conversion receives a nil handle.
	ErrNilHandle = errors.New("nil handle")
)

// BadCastError reports a conversion whose run-time check failed.
type BadCastError struct {
	// From is the dynamic type that was actually held (e.g. "*model.Widget").
	From string

	// To is the type the caller asked for.
	To string
}

func (e *BadCastError) Error() string {
	return fmt.Sprintf("bad cast: %s is not %s", e.From, e.To)
}

// Is makes errors.Is(err, ErrBadCast) true for any BadCastError.
func (e *BadCastError) Is(target error) bool {
	return target == ErrBadCast
}

const specialTypeName = "*model.SpecialWidget"

// RemoveReadOnly returns the mutable widget behind a read-only view.
//
// The conversion only succeeds when the view was obtained from a
// *model.SpecialWidget. The caller takes responsibility for what it does
// with the result: mutating a widget that was handed out read-only breaks
// whatever promise the view was meant to keep.
func RemoveReadOnly(view model.SpecialWidgetView) (*model.SpecialWidget, error) {
	if view == nil {
		return nil, ErrNilHandle
	}
	sw, ok := view.(*model.SpecialWidget)
	if !ok {
		return nil, &BadCastError{From: fmt.Sprintf("%T", view), To: specialTypeName}
	}
	if sw == nil {
		return nil, ErrNilHandle
	}
	return sw, nil
}

// ToSpecial narrows n to a *model.SpecialWidget. It returns nil when n
// does not hold one.
func ToSpecial(n model.Namer) *model.SpecialWidget {
	sw, _ := n.(*model.SpecialWidget)
	return sw
}

// AsSpecial is ToSpecial with an error instead of a nil result.
func AsSpecial(n model.Namer) (*model.SpecialWidget, error) {
	if n == nil {
		return nil, ErrNilHandle
	}
	sw := ToSpecial(n)
	if sw == nil {
		return nil, &BadCastError{From: fmt.Sprintf("%T", n), To: specialTypeName}
	}
	return sw, nil
}
