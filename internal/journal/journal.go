// Package journal hands finalized sales to write-only sinks. Nothing recorded
// here is ever read back into a session.
package journal

import (
	"context"
	"errors"

	"silzey-pos/internal/domain"
)

// Recorder receives every finalized sale.
type Recorder interface {
	Record(ctx context.Context, sale domain.Sale) error
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(ctx context.Context, sale domain.Sale) error

func (f RecorderFunc) Record(ctx context.Context, sale domain.Sale) error {
	return f(ctx, sale)
}

// Multi records to every recorder and joins their errors.
type Multi []Recorder

func (m Multi) Record(ctx context.Context, sale domain.Sale) error {
	var errs []error
	for _, r := range m {
		if err := r.Record(ctx, sale); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
