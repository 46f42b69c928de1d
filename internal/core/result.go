package core

// Result is the terminal state of a game. Ongoing means no terminal
// condition has been reached yet.
type Result int8

const (
	ResultOngoing Result = iota
	ResultWhiteWins
	ResultBlackWins
	ResultDrawStalemate
	ResultDrawInsufficientMaterial
	ResultDrawThreefoldRepetition
	ResultDrawFivefoldRepetition
	ResultDrawFiftyMoveRule
	ResultDrawSeventyFiveMoveRule
	ResultDrawAgreement
	ResultWhiteTimeout
	ResultBlackTimeout
)

func (r Result) String() string {
	switch r {
	case ResultWhiteWins:
		return "white wins"
	case ResultBlackWins:
		return "black wins"
	case ResultDrawStalemate:
		return "draw by stalemate"
	case ResultDrawInsufficientMaterial:
		return "draw by insufficient material"
	case ResultDrawThreefoldRepetition:
		return "draw by threefold repetition"
	case ResultDrawFivefoldRepetition:
		return "draw by fivefold repetition"
	case ResultDrawFiftyMoveRule:
		return "draw by fifty-move rule"
	case ResultDrawSeventyFiveMoveRule:
		return "draw by seventy-five-move rule"
	case ResultDrawAgreement:
		return "draw by agreement"
	case ResultWhiteTimeout:
		return "white lost on time"
	case ResultBlackTimeout:
		return "black lost on time"
	default:
		return "ongoing"
	}
}

// IsTerminal reports whether the game is over.
func (r Result) IsTerminal() bool {
	return r != ResultOngoing
}

// IsDraw reports whether the result is one of the draw sub-kinds.
func (r Result) IsDraw() bool {
	switch r {
	case ResultDrawStalemate, ResultDrawInsufficientMaterial,
		ResultDrawThreefoldRepetition, ResultDrawFivefoldRepetition,
		ResultDrawFiftyMoveRule, ResultDrawSeventyFiveMoveRule,
		ResultDrawAgreement:
		return true
	}
	return false
}

// Winner returns the winning color, or NoColor for draws and ongoing games.
// Timeouts count as wins for the other side.
func (r Result) Winner() Color {
	switch r {
	case ResultWhiteWins, ResultBlackTimeout:
		return ColorWhite
	case ResultBlackWins, ResultWhiteTimeout:
		return ColorBlack
	default:
		return NoColor
	}
}

// PGN returns the PGN result token for the game.
func (r Result) PGN() string {
	switch {
	case r == ResultOngoing:
		return "*"
	case r.Winner() == ColorWhite:
		return "1-0"
	case r.Winner() == ColorBlack:
		return "0-1"
	default:
		return "1/2-1/2"
	}
}
