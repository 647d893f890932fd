package box

import (
	"errors"
	"fmt"

	"m7s.live/inspector/pkg/util"
)

var (
	ErrIO             = errors.New("io error")
	ErrUTF8           = errors.New("invalid utf-8 string")
	ErrInvalidVersion = errors.New("invalid version")
	ErrBoxTooSmall    = errors.New("box too small")
	ErrBoxTooLarge    = errors.New("box too large")
	ErrReadTooMuch    = errors.New("parser read too much")
	ErrReadNotEnough  = errors.New("parser read not enough")
)

func where(box *BasicBox) string {
	if box == nil {
		return "top level"
	}
	return fmt.Sprintf("%s at offset %d", box.Path(), box.Offset)
}

// IOError is a failure of the underlying source, including a truncated read.
type IOError struct {
	Box *BasicBox
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s in %s: %v", ErrIO, where(e.Box), e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }

// TextError reports bytes read as text that are not valid UTF-8.
type TextError struct {
	Box *BasicBox
	Err error
}

func (e *TextError) Error() string {
	return fmt.Sprintf("%s in %s: %v", ErrUTF8, where(e.Box), e.Err)
}

func (e *TextError) Unwrap() error { return e.Err }

func (e *TextError) Is(target error) bool { return target == ErrUTF8 }

type InvalidVersionError struct {
	Box      *BasicBox
	Expected []uint8
	Actual   uint8
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("%s %d in %s, expected one of %v", ErrInvalidVersion, e.Actual, where(e.Box), e.Expected)
}

func (e *InvalidVersionError) Is(target error) bool { return target == ErrInvalidVersion }

// BoxTooSmallError is a declared size that cannot hold the box header.
// Type is empty when the header could not be read at all.
type BoxTooSmallError struct {
	Offset int64
	Size   uint64
	Type   string
	Parent *BasicBox
}

func (e *BoxTooSmallError) Error() string {
	name := e.Type
	if name == "" {
		name = "unnamed box"
	}
	return fmt.Sprintf("%s: %s at offset %d declares %d bytes (in %s)", ErrBoxTooSmall, name, e.Offset, e.Size, where(e.Parent))
}

func (e *BoxTooSmallError) Is(target error) bool { return target == ErrBoxTooSmall }

// BoxTooLargeError is a box that overflows what is left of its parent.
type BoxTooLargeError struct {
	Box       *BasicBox
	Remaining uint64
}

func (e *BoxTooLargeError) Error() string {
	return fmt.Sprintf("%s: %s declares %d bytes but only %d remain", ErrBoxTooLarge, where(e.Box), e.Box.Size, e.Remaining)
}

func (e *BoxTooLargeError) Is(target error) bool { return target == ErrBoxTooLarge }

// ConsumptionError is raised when decoding a box did not end exactly where
// the box ends.
type ConsumptionError struct {
	Box      *BasicBox
	Expected int64
	Actual   int64
}

func (e *ConsumptionError) Error() string {
	kind := ErrReadNotEnough
	if e.Actual > e.Expected {
		kind = ErrReadTooMuch
	}
	return fmt.Sprintf("%s in %s: expected end at %d, stopped at %d", kind, where(e.Box), e.Expected, e.Actual)
}

func (e *ConsumptionError) Is(target error) bool {
	if e.Actual > e.Expected {
		return target == ErrReadTooMuch
	}
	return target == ErrReadNotEnough
}

// located is implemented by every error that already knows which box failed.
type located interface {
	error
	located()
}

func (*IOError) located()             {}
func (*TextError) located()           {}
func (*InvalidVersionError) located() {}
func (*BoxTooSmallError) located()    {}
func (*BoxTooLargeError) located()    {}
func (*ConsumptionError) located()    {}

// wrapError attaches the box being decoded to a bare reader error. Errors
// that already carry their location are returned as they are.
func wrapError(err error, box *BasicBox) error {
	var l located
	switch {
	case err == nil:
		return nil
	case errors.As(err, &l):
		return err
	case errors.Is(err, util.ErrInvalidUTF8):
		return &TextError{Box: box, Err: err}
	default:
		return &IOError{Box: box, Err: err}
	}
}
