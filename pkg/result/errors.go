package result

import "fmt"

const (
	unwrapFailureMsg = "called Unwrap on a Failure value"
	unwrapSuccessMsg = "called UnwrapError on a Success value"
)

// UnwrapFailedError is the panic value of Unwrap and Expect when called on a
// Failure. Payload carries the Failure payload for debugging.
type UnwrapFailedError struct {
	Msg     string
	Payload any
}

func (e *UnwrapFailedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Msg, e.Payload)
}

// UnwrapErrorFailedError is the panic value of UnwrapError and ExpectFailure
// when called on a Success. Payload carries the Success payload.
type UnwrapErrorFailedError struct {
	Msg     string
	Payload any
}

func (e *UnwrapErrorFailedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Msg, e.Payload)
}

// UnsupportedDefaultError is the panic value of UnwrapOrDefault when T is not
// in the recognized default set.
type UnsupportedDefaultError struct {
	TypeName string
}

func (e *UnsupportedDefaultError) Error() string {
	return fmt.Sprintf("no default value registered for type %s", e.TypeName)
}
