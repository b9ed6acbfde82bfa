package columnar

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedType reports an operation invoked with a data type
	// outside the handled set. It signals a programming error, not a
	// recoverable runtime condition.
	ErrUnsupportedType = errors.New("columnar: unsupported data type")

	// ErrUnsupportedOperation reports an accessor that the receiver's
	// concrete representation cannot serve.
	ErrUnsupportedOperation = errors.New("columnar: unsupported operation")
)

func unsupportedType(op string, t DataType) error {
	return fmt.Errorf("%w: %s %s", ErrUnsupportedType, op, t)
}
