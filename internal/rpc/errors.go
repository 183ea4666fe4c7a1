package rpc

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	// KindNotAuthenticated means the call was refused before any network attempt.
	KindNotAuthenticated Kind = iota + 1
	// KindRemote means the server answered with an error object.
	KindRemote
	// KindTransport means the server could not be reached or its answer could not be read.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindNotAuthenticated:
		return "not_authenticated"
	case KindRemote:
		return "remote"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// DefaultRemoteMessage is used when the server's error object carries no message.
const DefaultRemoteMessage = "API call failed"

// ErrNotAuthenticated is matched by errors.Is for every KindNotAuthenticated error.
var ErrNotAuthenticated = errors.New("not authenticated")

// Error -.
type Error struct {
	Kind    Kind
	Message string
	// Name is the server side exception name for remote errors, when reported.
	Name string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return fmt.Sprintf("rpc %s: %v", e.Kind, e.Err)
	}

	if e.Err != nil {
		return fmt.Sprintf("rpc %s: %s: %v", e.Kind, e.Message, e.Err)
	}

	return fmt.Sprintf("rpc %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var rpcErr *Error

	return errors.As(err, &rpcErr) && rpcErr.Kind == k
}

func notAuthenticated() *Error {
	return &Error{Kind: KindNotAuthenticated, Err: ErrNotAuthenticated}
}
