package game

import "errors"

var (
	// ErrIllegalMove is returned when a move is not among the legal moves of the state.
	ErrIllegalMove = errors.New("illegal move")
	// ErrInvariant signals a broken internal invariant, i.e. a bug in dealing or transitions.
	ErrInvariant = errors.New("invariant violation")
	// ErrConfig is returned for unsupported parameters.
	ErrConfig = errors.New("invalid configuration")
)
