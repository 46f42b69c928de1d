package game

import (
	"fmt"
	"strings"

	"chess/internal/core"
)

// ToPGN exports the game as a PGN record: the seven-tag roster, a FEN
// tag pair when the game started from a custom position, and the
// movetext with the result token.
func (g *Game) ToPGN() string {
	date := "????.??.??"
	if !g.startedAt.IsZero() {
		date = g.startedAt.Format("2006.01.02")
	}
	var sb strings.Builder
	tag := func(name, value string) {
		fmt.Fprintf(&sb, "[%s %q]\n", name, value)
	}
	tag("Event", "Casual Game")
	tag("Site", "?")
	tag("Date", date)
	tag("Round", "1")
	tag("White", g.white.Name)
	tag("Black", g.black.Name)
	tag("Result", g.result.PGN())
	if g.initialFEN != StartingFEN {
		tag("SetUp", "1")
		tag("FEN", g.initialFEN)
	}
	sb.WriteByte('\n')
	sb.WriteString(g.movetext())
	sb.WriteByte('\n')
	return sb.String()
}

// movetext renders the numbered move list plus the result token, wrapped
// near 80 columns.
func (g *Game) movetext() string {
	number := initialMoveNumber(g.initialFEN)

	var tokens []string
	for i, r := range g.history {
		switch {
		case r.Color == core.ColorWhite:
			tokens = append(tokens, fmt.Sprintf("%d.", number), r.SAN)
		case i == 0:
			tokens = append(tokens, fmt.Sprintf("%d...", number), r.SAN)
		default:
			tokens = append(tokens, r.SAN)
		}
		if r.Color == core.ColorBlack {
			number++
		}
	}
	tokens = append(tokens, g.result.PGN())

	var sb strings.Builder
	lineLen := 0
	for i, t := range tokens {
		if i > 0 {
			if lineLen+1+len(t) > 79 {
				sb.WriteByte('\n')
				lineLen = 0
			} else {
				sb.WriteByte(' ')
				lineLen++
			}
		}
		sb.WriteString(t)
		lineLen += len(t)
	}
	return sb.String()
}

// initialMoveNumber pulls the starting full-move number out of the
// initial FEN.
func initialMoveNumber(fen string) int {
	number := 1
	fields := strings.Fields(fen)
	if len(fields) == 6 {
		fmt.Sscanf(fields[5], "%d", &number)
	}
	return number
}

// LoadPGN imports a PGN record into a fresh game: tags configure the
// players and optional starting position, then the movetext is replayed
// move by move. A terminal result tag that the replayed moves do not
// produce on their own (resignation, agreed draw) is applied at the end.
func (g *Game) LoadPGN(pgn string) error {
	if g.started {
		return fmt.Errorf("%w: cannot load a game into a started game", core.ErrInvalidStateTransition)
	}

	tags, movetext := splitPGN(pgn)

	white, black := tags["White"], tags["Black"]
	if white == "" {
		white = "White"
	}
	if black == "" {
		black = "Black"
	}
	if err := g.Initialize(white, black, true, true, 0); err != nil {
		return err
	}
	if fen, ok := tags["FEN"]; ok && fen != "" {
		if err := g.LoadFEN(fen); err != nil {
			return err
		}
	}
	if err := g.Start(); err != nil {
		return err
	}

	for _, token := range tokenizeMovetext(movetext) {
		if err := g.MakeMoveNotation(token); err != nil {
			return fmt.Errorf("replaying %q: %w", token, err)
		}
	}

	if g.result == core.ResultOngoing {
		switch tags["Result"] {
		case "1-0":
			g.result = core.ResultWhiteWins
		case "0-1":
			g.result = core.ResultBlackWins
		case "1/2-1/2":
			g.result = core.ResultDrawAgreement
		}
	}
	return nil
}

// splitPGN separates the tag pairs from the movetext.
func splitPGN(pgn string) (map[string]string, string) {
	tags := make(map[string]string)
	var movetext strings.Builder
	for _, line := range strings.Split(pgn, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			if name, value, ok := parseTagPair(trimmed); ok {
				tags[name] = value
				continue
			}
		}
		movetext.WriteString(line)
		movetext.WriteByte('\n')
	}
	return tags, movetext.String()
}

func parseTagPair(line string) (string, string, bool) {
	inner := strings.TrimSpace(line[1 : len(line)-1])
	space := strings.IndexByte(inner, ' ')
	if space < 0 {
		return "", "", false
	}
	name := inner[:space]
	value := strings.TrimSpace(inner[space+1:])
	if len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
		return "", "", false
	}
	return name, value[1 : len(value)-1], true
}

// tokenizeMovetext strips comments, variations, numeric annotation
// glyphs, move numbers and result tokens, leaving only the moves.
func tokenizeMovetext(movetext string) []string {
	var cleaned strings.Builder
	depth := 0
	inComment := false
	for i := 0; i < len(movetext); i++ {
		c := movetext[i]
		switch {
		case inComment:
			if c == '}' {
				inComment = false
			}
		case c == '{':
			inComment = true
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case c == ';':
			for i < len(movetext) && movetext[i] != '\n' {
				i++
			}
			cleaned.WriteByte('\n')
		case depth == 0:
			cleaned.WriteByte(c)
		}
	}

	var moves []string
	for _, token := range strings.Fields(cleaned.String()) {
		switch token {
		case "1-0", "0-1", "1/2-1/2", "*":
			continue
		}
		if token[0] == '$' {
			continue
		}
		// Strip a leading move number ("1.", "4...", "12.e4").
		j := 0
		for j < len(token) && token[j] >= '0' && token[j] <= '9' {
			j++
		}
		if j > 0 {
			for j < len(token) && token[j] == '.' {
				j++
			}
			token = token[j:]
		}
		if token != "" {
			moves = append(moves, token)
		}
	}
	return moves
}
