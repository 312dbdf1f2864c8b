package frag

import (
	"errors"
	"fmt"

	"github.com/gogpu/frag/internal/parallel"
)

// Common errors returned by App.
var (
	// ErrEmptyImage is returned when the source image has zero width or height.
	ErrEmptyImage = errors.New("frag: zero-area image")

	// ErrClosed is returned by Run on an App whose pool has been closed.
	ErrClosed = errors.New("frag: app closed")

	// ErrNilHandler is returned when Run is called without a handler.
	ErrNilHandler = errors.New("frag: nil handler")

	// ErrNilOutput is returned when Run is called without an output writer.
	ErrNilOutput = errors.New("frag: nil output")

	// ErrInvalidWorkers is returned when the worker count or multiplier is
	// negative.
	ErrInvalidWorkers = errors.New("frag: invalid worker count")

	// ErrUniformsType is wrapped by the panic raised when a handler asks for
	// Uniforms of a type other than the App's.
	ErrUniformsType = errors.New("frag: uniforms type mismatch")
)

// DecodeError reports that a source image could not be opened or decoded.
// It is returned before any pixel work starts.
type DecodeError struct {
	// Source names the image: a path, "reader", "image" or "error".
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("frag: decode %s: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports that the output image could not be encoded or
// written. It is returned after all pixel work has completed.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("frag: encode output: %v", e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// PoolError reports that the worker pool could not be created.
type PoolError struct {
	Err error
}

func (e *PoolError) Error() string {
	return fmt.Sprintf("frag: create worker pool: %v", e.Err)
}

func (e *PoolError) Unwrap() error { return e.Err }

// PanicError reports that a handler panicked. The run was aborted and no
// output was written.
type PanicError struct {
	// Value is the value passed to panic.
	Value any
	// Stack is the goroutine stack at the time of the panic.
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("frag: handler panicked: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// fromPoolError translates errors from the worker pool into frag errors.
func fromPoolError(err error) error {
	var p *parallel.Panic
	switch {
	case err == nil:
		return nil
	case errors.As(err, &p):
		return &PanicError{Value: p.Value, Stack: p.Stack}
	case errors.Is(err, parallel.ErrClosed):
		return ErrClosed
	default:
		return err
	}
}
