package action

import (
	"errors"
	"fmt"

	"connectrpc.com/connect"
)

// ErrInvalidKey is returned when a clear-errors key is not a string.
var ErrInvalidKey = errors.New("clear errors keys must be strings")

func invalidKey(i int, key any) error {
	return connect.NewError(
		connect.CodeInvalidArgument,
		fmt.Errorf("%w: key %d has type %T", ErrInvalidKey, i, key),
	)
}
