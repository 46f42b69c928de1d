// Package game layers the turn/undo/terminal state machine on top of the
// board. A Game owns the live board, both player records, the committed
// move history, an undo stack of full pre-move snapshots, and an
// undo-independent repetition counter.
package game

import (
	"fmt"
	"time"

	"chess/internal/board"
	"chess/internal/core"
)

// Snapshot is a full game state captured before a move commits. Undo
// restores it verbatim. Board and players are value-independent copies.
type Snapshot struct {
	board         *board.Board
	white         *core.Player
	black         *core.Player
	turn          core.Color
	moveNumber    int
	halfMoveClock int
}

// Record is one committed move plus the context derived at commit time.
type Record struct {
	Move  core.Move
	SAN   string
	Kind  core.MoveKind
	Color core.Color
}

// Option configures a Game at construction.
type Option func(*Game)

// WithUndoDisabled rejects every Undo call.
func WithUndoDisabled() Option {
	return func(g *Game) { g.allowUndo = false }
}

// WithoutAutoThreefoldDraw disables the automatic draw at three
// repetitions. The fivefold-repetition backstop still forces a draw.
func WithoutAutoThreefoldDraw() Option {
	return func(g *Game) { g.autoThreefold = false }
}

// WithoutAutoFiftyMoveDraw disables the automatic draw at a half-move
// clock of 100. The seventy-five-move backstop still forces a draw.
func WithoutAutoFiftyMoveDraw() Option {
	return func(g *Game) { g.autoFiftyMove = false }
}

// Game is the state machine for one chess session: NotStarted until
// Start, Active while moves are accepted, Over once a result is set.
// It is single-threaded; one logical session owns it exclusively.
type Game struct {
	board *board.Board
	white *core.Player
	black *core.Player

	turn          core.Color
	result        core.Result
	moveNumber    int
	halfMoveClock int

	history   []Record
	undoStack []Snapshot

	// repetitions counts occurrences of each (placement, side to move,
	// castling rights, en-passant target) tuple across the whole game.
	// It is maintained alongside the undo stack, never derived from it:
	// incremented on every commit, decremented on every undo.
	repetitions map[string]int

	initialized bool
	started     bool
	startedAt   time.Time

	allowUndo     bool
	autoThreefold bool
	autoFiftyMove bool

	initialFEN string
}

// New returns an empty, not-yet-initialized game.
func New(opts ...Option) *Game {
	g := &Game{
		allowUndo:     true,
		autoThreefold: true,
		autoFiftyMove: true,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Initialize populates the players and resets the board to the standard
// starting position. Valid only before the game starts.
func (g *Game) Initialize(whiteName, blackName string, whiteHuman, blackHuman bool, timeLimitSeconds int) error {
	if g.started {
		return fmt.Errorf("%w: game already started", core.ErrInvalidStateTransition)
	}
	g.white = core.NewPlayer(whiteName, core.ColorWhite, whiteHuman, timeLimitSeconds)
	g.black = core.NewPlayer(blackName, core.ColorBlack, blackHuman, timeLimitSeconds)
	g.reset(board.StartingPosition(), core.ColorWhite, 1, 0)
	return nil
}

// reset installs a position and clears history, undo stack and the
// repetition table (the installed position counts as its first
// occurrence).
func (g *Game) reset(b *board.Board, turn core.Color, moveNumber, halfMoveClock int) {
	g.board = b
	g.turn = turn
	g.moveNumber = moveNumber
	g.halfMoveClock = halfMoveClock
	g.result = core.ResultOngoing
	g.history = nil
	g.undoStack = nil
	g.repetitions = map[string]int{g.repetitionKey(): 1}
	g.initialized = true
	g.initialFEN = g.FEN()
	g.syncCheckFlags()
}

// Start transitions the game from NotStarted to Active.
func (g *Game) Start() error {
	if !g.initialized {
		return fmt.Errorf("%w: game not initialized", core.ErrInvalidStateTransition)
	}
	if g.started {
		return fmt.Errorf("%w: game already started", core.ErrInvalidStateTransition)
	}
	g.started = true
	g.startedAt = time.Now()
	return nil
}

// MakeMove validates and commits m for the side to move, then updates
// counters, history, the repetition table and the terminal result.
// Nothing is mutated on failure.
func (g *Game) MakeMove(m core.Move) error {
	if !g.started {
		return fmt.Errorf("%w: game not started", core.ErrInvalidStateTransition)
	}
	if g.result.IsTerminal() {
		return fmt.Errorf("%w: game is over (%s)", core.ErrInvalidStateTransition, g.result)
	}
	if !m.Valid() {
		return fmt.Errorf("%w: move %s is out of range", core.ErrInvalidInput, m)
	}
	mover := g.board.PieceAt(m.From)
	if mover == nil || mover.Color() != g.turn {
		return fmt.Errorf("%w: no %s piece on %s", core.ErrIllegalMove, g.turn.Name(), m.From)
	}

	legal := g.board.LegalMoves(g.turn)
	chosen, ok := matchLegal(legal, m)
	if !ok {
		return fmt.Errorf("%w: %s", core.ErrIllegalMove, m)
	}

	g.pushSnapshot()

	san := g.sanBase(chosen, legal)
	outcome := g.board.MovePiece(chosen)

	current := g.player(g.turn)
	current.MovesPlayed++
	if outcome.Captured != nil {
		current.PiecesCaptured++
	}

	pawnMove := mover.Type() == core.Pawn
	if outcome.Captured != nil || pawnMove {
		g.halfMoveClock = 0
	} else {
		g.halfMoveClock++
	}
	if g.turn == core.ColorBlack {
		g.moveNumber++
	}

	g.turn = core.OppositeColor(g.turn)
	g.repetitions[g.repetitionKey()]++

	g.syncCheckFlags()
	if g.player(g.turn).InCheck {
		current.ChecksGiven++
	}

	g.evaluateTerminal()

	switch {
	case g.result == core.ResultWhiteWins || g.result == core.ResultBlackWins:
		if g.player(g.turn).InCheck {
			san += "#"
		}
	case g.player(g.turn).InCheck:
		san += "+"
	}
	g.history = append(g.history, Record{Move: chosen, SAN: san, Kind: outcome.Kind, Color: current.Color})

	return nil
}

// matchLegal finds m among the legal candidates. A promotion submitted
// without an explicit target resolves to the queen candidate.
func matchLegal(legal []core.Move, m core.Move) (core.Move, bool) {
	want := m.Promotion
	for _, c := range legal {
		if c.From != m.From || c.To != m.To {
			continue
		}
		if c.Promotion == want {
			return c, true
		}
		if want == core.NoPieceType && c.Promotion == core.Queen {
			return c, true
		}
	}
	return core.Move{}, false
}

// MakeMoveNotation parses coordinate or SAN notation against the current
// position and delegates to MakeMove.
func (g *Game) MakeMoveNotation(s string) error {
	if m, err := core.ParseMove(s); err == nil {
		return g.MakeMove(m)
	}
	if !g.started {
		return fmt.Errorf("%w: game not started", core.ErrInvalidStateTransition)
	}
	m, err := g.parseSAN(s)
	if err != nil {
		return err
	}
	return g.MakeMove(m)
}

// Undo pops the most recent snapshot and restores board, players, turn
// and counters wholesale. History and the undo stack shrink in lock-step;
// the repetition count of the abandoned position is decremented first.
func (g *Game) Undo() error {
	if !g.allowUndo {
		return fmt.Errorf("%w: undo is disabled", core.ErrInvalidStateTransition)
	}
	if len(g.undoStack) == 0 {
		return fmt.Errorf("%w: nothing to undo", core.ErrInvalidStateTransition)
	}

	key := g.repetitionKey()
	if g.repetitions[key] <= 1 {
		delete(g.repetitions, key)
	} else {
		g.repetitions[key]--
	}

	snap := g.undoStack[len(g.undoStack)-1]
	g.undoStack = g.undoStack[:len(g.undoStack)-1]
	g.history = g.history[:len(g.history)-1]

	g.board = snap.board
	g.white = snap.white
	g.black = snap.black
	g.turn = snap.turn
	g.moveNumber = snap.moveNumber
	g.halfMoveClock = snap.halfMoveClock
	g.result = core.ResultOngoing
	return nil
}

func (g *Game) pushSnapshot() {
	g.undoStack = append(g.undoStack, Snapshot{
		board:         g.board.Clone(),
		white:         g.white.Clone(),
		black:         g.black.Clone(),
		turn:          g.turn,
		moveNumber:    g.moveNumber,
		halfMoveClock: g.halfMoveClock,
	})
}

// OfferDraw records a draw by agreement. The engine accepts the offer
// unconditionally; negotiating it is the caller's concern. Returns false
// outside an active game.
func (g *Game) OfferDraw() bool {
	if !g.started || g.result.IsTerminal() {
		return false
	}
	g.result = core.ResultDrawAgreement
	return true
}

// Resign ends the game in favor of the side not to move.
func (g *Game) Resign() error {
	if !g.started {
		return fmt.Errorf("%w: game not started", core.ErrInvalidStateTransition)
	}
	if g.result.IsTerminal() {
		return fmt.Errorf("%w: game is over", core.ErrInvalidStateTransition)
	}
	if g.turn == core.ColorWhite {
		g.result = core.ResultBlackWins
	} else {
		g.result = core.ResultWhiteWins
	}
	return nil
}

// ReportTimeout records that the given color's clock expired. The engine
// never drives clocks; it accepts the caller's report unconditionally at
// any point while the game is active.
func (g *Game) ReportTimeout(color core.Color) error {
	if !g.started {
		return fmt.Errorf("%w: game not started", core.ErrInvalidStateTransition)
	}
	if g.result.IsTerminal() {
		return fmt.Errorf("%w: game is over", core.ErrInvalidStateTransition)
	}
	if color == core.ColorWhite {
		g.result = core.ResultWhiteTimeout
	} else {
		g.result = core.ResultBlackTimeout
	}
	return nil
}

// syncCheckFlags mirrors the board's check evaluation into both player
// records.
func (g *Game) syncCheckFlags() {
	g.white.InCheck = g.board.IsKingInCheck(core.ColorWhite)
	g.black.InCheck = g.board.IsKingInCheck(core.ColorBlack)
}

func (g *Game) player(color core.Color) *core.Player {
	if color == core.ColorWhite {
		return g.white
	}
	return g.black
}

// Queries

func (g *Game) Board() *board.Board   { return g.board }
func (g *Game) Turn() core.Color      { return g.turn }
func (g *Game) Result() core.Result   { return g.result }
func (g *Game) IsGameOver() bool      { return g.result.IsTerminal() }
func (g *Game) Started() bool         { return g.started }
func (g *Game) MoveNumber() int       { return g.moveNumber }
func (g *Game) HalfMoveClock() int    { return g.halfMoveClock }
func (g *Game) InitialFEN() string    { return g.initialFEN }
func (g *Game) StartedAt() time.Time  { return g.startedAt }
func (g *Game) White() *core.Player   { return g.white }
func (g *Game) Black() *core.Player   { return g.black }
func (g *Game) AllowUndo() bool       { return g.allowUndo }

// Player returns the record for the given color.
func (g *Game) Player(color core.Color) *core.Player {
	return g.player(color)
}

// LegalMoves returns every legal move for the side to move.
func (g *Game) LegalMoves() []core.Move {
	if !g.initialized {
		return nil
	}
	return g.board.LegalMoves(g.turn)
}

// History returns the committed move records in order.
func (g *Game) History() []Record {
	return g.history
}

// MoveHistory returns the bare committed moves in order.
func (g *Game) MoveHistory() []core.Move {
	moves := make([]core.Move, len(g.history))
	for i, r := range g.history {
		moves[i] = r.Move
	}
	return moves
}

// IsCheck reports whether the side to move is in check.
func (g *Game) IsCheck() bool {
	return g.initialized && g.board.IsKingInCheck(g.turn)
}

// IsCheckmate reports whether the side to move is checkmated.
func (g *Game) IsCheckmate() bool {
	return g.initialized && g.board.IsKingInCheck(g.turn) && !g.board.HasLegalMove(g.turn)
}

// IsStalemate reports whether the side to move has no legal move while
// not in check.
func (g *Game) IsStalemate() bool {
	return g.initialized && !g.board.IsKingInCheck(g.turn) && !g.board.HasLegalMove(g.turn)
}

// IsDraw reports whether the game ended in any draw sub-kind.
func (g *Game) IsDraw() bool {
	return g.result.IsDraw()
}

// RepetitionCount returns how often the current position tuple has
// occurred so far.
func (g *Game) RepetitionCount() int {
	return g.repetitions[g.repetitionKey()]
}

// repetitionKey builds the tuple that identifies a position for the
// repetition rules: placement, side to move, castling rights and
// en-passant target.
func (g *Game) repetitionKey() string {
	ep := "-"
	if target, ok := g.board.EnPassantTarget(); ok {
		ep = target.String()
	}
	return g.board.Placement() + " " + g.turn.String() + " " + g.board.CastlingFEN() + " " + ep
}

// evaluateTerminal checks the terminal conditions for the side to move,
// in priority order: checkmate, stalemate, insufficient material,
// fifty-move rule, repetition.
func (g *Game) evaluateTerminal() {
	if !g.board.HasLegalMove(g.turn) {
		if g.board.IsKingInCheck(g.turn) {
			if g.turn == core.ColorWhite {
				g.result = core.ResultBlackWins
			} else {
				g.result = core.ResultWhiteWins
			}
		} else {
			g.result = core.ResultDrawStalemate
		}
		return
	}

	if g.insufficientMaterial() {
		g.result = core.ResultDrawInsufficientMaterial
		return
	}

	switch {
	case g.autoFiftyMove && g.halfMoveClock >= 100:
		g.result = core.ResultDrawFiftyMoveRule
		return
	case g.halfMoveClock >= 150:
		g.result = core.ResultDrawSeventyFiveMoveRule
		return
	}

	reps := g.repetitions[g.repetitionKey()]
	switch {
	case g.autoThreefold && reps >= 3:
		g.result = core.ResultDrawThreefoldRepetition
	case reps >= 5:
		g.result = core.ResultDrawFivefoldRepetition
	}
}

// insufficientMaterial recognizes the dead positions neither side can
// win from: king vs king, king and one minor vs king, and king and
// bishop each with both bishops on the same color complex.
func (g *Game) insufficientMaterial() bool {
	type side struct {
		minors  int
		bishops []core.Position
		other   int
	}
	var white, black side
	for _, color := range [2]core.Color{core.ColorWhite, core.ColorBlack} {
		s := &white
		if color == core.ColorBlack {
			s = &black
		}
		for _, p := range g.board.PiecesOfColor(color) {
			switch p.Type() {
			case core.King:
			case core.Knight:
				s.minors++
			case core.Bishop:
				s.minors++
				s.bishops = append(s.bishops, p.Position())
			default:
				s.other++
			}
		}
	}
	if white.other > 0 || black.other > 0 {
		return false
	}
	// King vs king, or king plus a single minor vs bare king.
	if white.minors+black.minors <= 1 {
		return true
	}
	// King and bishop each, bishops on the same color complex.
	if white.minors == 1 && black.minors == 1 &&
		len(white.bishops) == 1 && len(black.bishops) == 1 {
		w, b := white.bishops[0], black.bishops[0]
		return (w.Row+w.Col)%2 == (b.Row+b.Col)%2
	}
	return false
}
