package nbt

import (
	"fmt"
	"github.com/cockroachdb/errors"
)

// ErrDecode is matched (errors.Is) by every structural decode failure
var ErrDecode = errors.New("nbt: malformed tag data")

// DecodeError reports bytes that do not parse into a tag tree
type DecodeError struct {
	Offset int
	Msg    string
	cause  error
}

func (e *DecodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("nbt: %s at offset %d: %v", e.Msg, e.Offset, e.cause)
	}
	return fmt.Sprintf("nbt: %s at offset %d", e.Msg, e.Offset)
}

func (e *DecodeError) Unwrap() error { return e.cause }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// UnexpectedTypeError reports a named field holding a tag of the wrong type
type UnexpectedTypeError struct {
	Name string
	Want TagType
	Got  TagType
}

func (e *UnexpectedTypeError) Error() string {
	return fmt.Sprintf("nbt: expected tag %q to be %s, got %s", e.Name, e.Want, e.Got)
}
