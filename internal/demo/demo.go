// Package demo runs the fixed castdemo sequence: print a banner, pass a
// widget through a read-only view and back, then narrow a general handle
// to the special widget it holds.
package demo

import (
	"fmt"
	"io"

	"github.com/shinji-kodama/castdemo/internal/cast"
	"github.com/shinji-kodama/castdemo/internal/model"
	"github.com/shinji-kodama/castdemo/internal/report"
)

// Conversion names used in Step and in scenario files.
const (
	ConversionReadOnly = "readonly"
	ConversionNarrow   = "narrow"
)

// Step records one conversion performed by Run.
type Step struct {
	Name       string `json:"name"`
	Conversion string `json:"conversion"`
	Widget     string `json:"widget"`
	Type       string `json:"type,omitempty"`
	OK         bool   `json:"ok"`
	Err        string `json:"error,omitempty"`
}

// Option configures Run.
type Option func(*runner)

// WithLogger sets the function used for trace output. By default
// nothing is traced.
func WithLogger(logf func(format string, args ...interface{})) Option {
	return func(r *runner) {
		r.logf = logf
	}
}

type runner struct {
	out   io.Writer
	logf  func(format string, args ...interface{})
	steps []Step
}

// Run writes the demo output to w and returns the steps it performed.
// A non-nil error means a conversion or a write failed; the steps up to
// that point are still returned.
func Run(w io.Writer, opts ...Option) ([]Step, error) {
	r := &runner{out: w, logf: func(string, ...interface{}) {}}
	for _, opt := range opts {
		opt(r)
	}

	if err := report.PrintBanner(r.out); err != nil {
		return nil, fmt.Errorf("failed to write banner: %w", err)
	}

	// A read-only view cannot be handed to PrintSpecialWidgetName, which
	// takes *model.SpecialWidget. RemoveReadOnly gets the widget back; the
	// printer only reads it.
	sw := model.NewSpecialWidget("Widget1", "NotDefault")
	view := sw.View()
	r.logf("Created %q with a read-only view", view.Name())
	mutable, err := cast.RemoveReadOnly(view)
	if err := r.record("remove read-only view", ConversionReadOnly, view, mutable, err); err != nil {
		return r.steps, err
	}

	// Held through the general capability only. The allocation is never
	// released by hand; it stays reachable until Run returns.
	var handle model.Namer = model.NewSpecialWidget("Widget2", "Special")
	r.logf("Holding %q as %T behind model.Namer", handle.Name(), handle)
	special, err := cast.AsSpecial(handle)
	if err := r.record("narrow general handle", ConversionNarrow, handle, special, err); err != nil {
		return r.steps, err
	}

	return r.steps, nil
}

// record appends a Step for a conversion and prints the widget on success.
func (r *runner) record(name, conversion string, src model.Namer, sw *model.SpecialWidget, castErr error) error {
	step := Step{Name: name, Conversion: conversion, Widget: src.Name()}
	if castErr != nil {
		step.Err = castErr.Error()
		r.steps = append(r.steps, step)
		return model.WrapCLIError(model.ExitBadCast, fmt.Sprintf("%s failed for %q", name, src.Name()), castErr)
	}

	step.OK = true
	step.Type = sw.Type()
	r.steps = append(r.steps, step)
	r.logf("%s: %q ok", name, src.Name())

	if err := report.PrintSpecialWidgetName(r.out, sw); err != nil {
		return fmt.Errorf("failed to print %q: %w", src.Name(), err)
	}
	return nil
}
