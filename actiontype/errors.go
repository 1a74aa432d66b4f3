package actiontype

import (
	"errors"
	"fmt"

	"connectrpc.com/connect"
)

// ErrNotSequence is returned by Parse when its argument is not a list of
// action type names.
var ErrNotSequence = errors.New("action types must be a list of strings")

func invalidArgument(format string, args ...any) error {
	return connect.NewError(
		connect.CodeInvalidArgument,
		fmt.Errorf("%w: "+format, append([]any{ErrNotSequence}, args...)...),
	)
}
