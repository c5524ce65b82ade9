// Package report formats widgets for console output.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/shinji-kodama/castdemo/internal/model"
)

// Banner is the first line printed by the demo.
const Banner = "Item 2. Sample codes for how CppCast's work."

// ErrNilWidget is returned when PrintSpecialWidgetName receives nil.
var ErrNilWidget = errors.New("special widget must not be nil")

// PrintSpecialWidgetName writes one "Psw name = [...]; type = [...]" line
// for sw. sw must be non-nil; a nil widget is rejected before anything is
// written.
func PrintSpecialWidgetName(w io.Writer, sw *model.SpecialWidget) error {
	if sw == nil {
		return ErrNilWidget
	}
	_, err := fmt.Fprintln(w, FormatSpecialWidget(sw))
	return err
}

// FormatSpecialWidget renders the line written by PrintSpecialWidgetName,
// without the trailing newline.
func FormatSpecialWidget(v model.SpecialWidgetView) string {
	return fmt.Sprintf("Psw name = [%s]; type = [%s]", v.Name(), v.Type())
}

// PrintBanner writes Banner followed by a newline.
func PrintBanner(w io.Writer) error {
	_, err := fmt.Fprintln(w, Banner)
	return err
}
