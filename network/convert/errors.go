package convert

import (
	"fmt"
	"github.com/cockroachdb/errors"
)

// ErrConverterSealed is returned when a published converter is modified
var ErrConverterSealed = errors.New("type converter is already published")

// TypeConversionError reports data that could not be converted. Callers
// decoding client data should treat the client as sending invalid data.
type TypeConversionError struct {
	Msg string
	Err error
}

func (e *TypeConversionError) Error() string {
	if e.Err == nil {
		return "type conversion: " + e.Msg
	}
	return fmt.Sprintf("type conversion: %s: %v", e.Msg, e.Err)
}

func (e *TypeConversionError) Unwrap() error { return e.Err }

func conversionError(err error, format string, args ...interface{}) *TypeConversionError {
	return &TypeConversionError{Msg: fmt.Sprintf(format, args...), Err: err}
}
