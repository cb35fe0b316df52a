package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBoardNotFound is returned when the store has no board with the requested name.
	ErrBoardNotFound = errors.New("board not found")
	// ErrTransport is returned when the store could not be reached or read.
	ErrTransport = errors.New("board store unavailable")
	// ErrDataConsistency is returned when a board violates its structural invariants.
	ErrDataConsistency = errors.New("board data inconsistent")
)

// NotFoundError names the missing board and, when the store knows of
// similarly named boards, a few suggestions.
type NotFoundError struct {
	Name        string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("board %q not found", e.Name)
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}
	return msg
}

func (e *NotFoundError) Is(target error) bool { return target == ErrBoardNotFound }

// TransportError wraps a store failure that is not a missing board.
type TransportError struct {
	Name string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch board %q: %v", e.Name, e.Err)
}

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

func (e *TransportError) Unwrap() error { return e.Err }

// ConsistencyError lists every invariant violation found on a board.
type ConsistencyError struct {
	Board    string
	Problems []string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("board %q: %s", e.Board, strings.Join(e.Problems, "; "))
}

func (e *ConsistencyError) Is(target error) bool { return target == ErrDataConsistency }
