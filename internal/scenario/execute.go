package scenario

import (
	"fmt"
	"io"

	"github.com/shinji-kodama/castdemo/internal/cast"
	"github.com/shinji-kodama/castdemo/internal/demo"
	"github.com/shinji-kodama/castdemo/internal/model"
	"github.com/shinji-kodama/castdemo/internal/report"
)

// Result is the outcome of one scenario case.
type Result struct {
	Case       string `json:"case"`
	Kind       string `json:"kind"`
	Conversion string `json:"conversion"`
	OK         bool   `json:"ok"`
	Output     string `json:"output,omitempty"`
	Err        string `json:"error,omitempty"`
}

// Execute runs every case of a validated scenario in order. Successful
// conversions are printed to w through report.PrintSpecialWidgetName;
// failed conversions are recorded in the result and do not stop the run.
//
// The returned error is only non-nil when writing to w fails.
func Execute(w io.Writer, f *File) ([]Result, error) {
	results := make([]Result, 0, len(f.Cases))
	for _, c := range f.Cases {
		res, sw := run(c)
		results = append(results, res)
		if sw == nil {
			continue
		}
		if err := report.PrintSpecialWidgetName(w, sw); err != nil {
			return results, fmt.Errorf("failed to print %q: %w", c.Name, err)
		}
	}
	return results, nil
}

// Failed counts the results whose conversion did not succeed.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.OK {
			n++
		}
	}
	return n
}

func run(c Case) (Result, *model.SpecialWidget) {
	res := Result{Case: c.Name, Kind: c.Kind, Conversion: c.Conversion}

	kind, err := model.ParseKind(c.Kind)
	if err != nil {
		res.Err = err.Error()
		return res, nil
	}
	n, err := model.New(kind, c.Name, c.Type)
	if err != nil {
		res.Err = err.Error()
		return res, nil
	}

	var sw *model.SpecialWidget
	switch c.Conversion {
	case demo.ConversionReadOnly:
		view, _ := n.(model.SpecialWidgetView)
		sw, err = cast.RemoveReadOnly(view)
	case demo.ConversionNarrow:
		sw, err = cast.AsSpecial(n)
	default:
		err = fmt.Errorf("invalid conversion %q", c.Conversion)
	}
	if err != nil {
		res.Err = err.Error()
		return res, nil
	}

	res.OK = true
	res.Output = report.FormatSpecialWidget(sw)
	return res, sw
}
