// Package circlepoints provides a fluent API for placing points evenly on a
// circle and exporting the resulting diagram as PNG, SVG and a two-page PDF.
//
// Basic usage:
//
//	spec := model.DefaultSpec()
//	spec.Count = 8
//	pdf, err := circlepoints.New(spec).Author("Ada").PDF()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	out, err := circlepoints.New(spec).
//	    Author("Ada").
//	    Contact("ada@example.com").
//	    DPI(300).
//	    Formats(format.PNG, format.SVG).
//	    Export()
//
// The lower-level packages (model, diagram, raster, vector, document) can be
// used directly when only one stage is needed.
package circlepoints

import (
	"errors"
	"fmt"

	"github.com/tsawler/circlepoints/model"
	"github.com/tsawler/circlepoints/raster"
	"github.com/tsawler/circlepoints/vector"
)

// Pipeline stages reported by StageError
const (
	StageGeometry = "geometry"
	StageRender   = "render"
	StageRaster   = "raster"
	StageVector   = "vector"
	StageDocument = "document"
)

// ErrEncoding matches failures of either image encoder
var ErrEncoding = errors.New("circlepoints: encoding failed")

// StageError records which pipeline stage failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("circlepoints: %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Is reports ErrEncoding for raster and vector encoder failures.
func (e *StageError) Is(target error) bool {
	if target != ErrEncoding {
		return false
	}
	return errors.Is(e.Err, raster.ErrEncoding) || errors.Is(e.Err, vector.ErrEncoding)
}

func stageError(stage string, err error) error {
	if err == nil {
		return nil
	}
	var se *StageError
	if errors.As(err, &se) {
		return err
	}
	return &StageError{Stage: stage, Err: err}
}

// New returns a Pipeline for spec. The spec is validated lazily, by the
// first terminal operation.
//
// Example:
//
//	points, err := circlepoints.New(spec).Points()
func New(spec model.CircleSpec) *Pipeline {
	return &Pipeline{
		spec:    spec,
		options: defaultOptions(),
	}
}

// Default returns a Pipeline for model.DefaultSpec.
func Default() *Pipeline {
	return New(model.DefaultSpec())
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	svg := circlepoints.Must(circlepoints.Default().SVG())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
