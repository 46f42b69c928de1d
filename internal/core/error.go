package core

import "errors"

// Engine error taxonomy. All failures are recoverable; the engine never
// leaves a board or game partially mutated.
var (
	// ErrInvalidInput marks malformed notation or out-of-range coordinates,
	// detected before any state is touched.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIllegalMove marks a well-formed move that is not in the current
	// legal-move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidStateTransition marks an operation attempted outside its
	// valid game phase (move before start, undo when disabled, ...).
	ErrInvalidStateTransition = errors.New("invalid state transition")
)

// API error codes
const (
	ErrCodeGameNotFound   = "GAME_NOT_FOUND"
	ErrCodeInvalidMove    = "INVALID_MOVE"
	ErrCodeGameOver       = "GAME_OVER"
	ErrCodeGameNotStarted = "GAME_NOT_STARTED"
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeInvalidFEN     = "INVALID_FEN"
	ErrCodeUndoDisabled   = "UNDO_DISABLED"
	ErrCodeInternalError  = "INTERNAL_ERROR"
	ErrCodeRateLimited    = "RATE_LIMIT_EXCEEDED"
	ErrCodeInvalidContent = "INVALID_CONTENT_TYPE"
)
