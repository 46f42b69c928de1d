package core

// Request types

type PlayerSpec struct {
	Name  string `json:"name" validate:"required,min=1,max=40"`
	Human *bool  `json:"human,omitempty"`
}

type CreateGameRequest struct {
	White            PlayerSpec `json:"white" validate:"required"`
	Black            PlayerSpec `json:"black" validate:"required"`
	TimeLimitSeconds int        `json:"timeLimitSeconds,omitempty" validate:"omitempty,min=10,max=86400"`
	FEN              string     `json:"fen,omitempty" validate:"omitempty,max=100"`
	AllowUndo        *bool      `json:"allowUndo,omitempty"`
}

type MoveRequest struct {
	// Coordinate ("e2e4", "e7e8q") or SAN ("Nf3", "O-O", "e8=Q") notation.
	Move string `json:"move" validate:"required,min=2,max=8"`
}

type UndoRequest struct {
	Count int `json:"count" validate:"required,min=1,max=300"`
}

type TimeoutRequest struct {
	Color string `json:"color" validate:"required,oneof=w b"`
}

// Response types

type PlayerInfo struct {
	Name           string `json:"name"`
	Color          string `json:"color"`
	Human          bool   `json:"human"`
	TimeLeft       string `json:"timeLeft"`
	MovesPlayed    int    `json:"movesPlayed"`
	PiecesCaptured int    `json:"piecesCaptured"`
	ChecksGiven    int    `json:"checksGiven"`
	InCheck        bool   `json:"inCheck"`
}

type PlayersResponse struct {
	White PlayerInfo `json:"white"`
	Black PlayerInfo `json:"black"`
}

type GameResponse struct {
	GameID        string          `json:"gameId"`
	FEN           string          `json:"fen"`
	Turn          string          `json:"turn"`  // "w" or "b"
	Result        string          `json:"result"` // "ongoing", "white wins", ...
	Started       bool            `json:"started"`
	InCheck       bool            `json:"inCheck"`
	MoveNumber    int             `json:"moveNumber"`
	HalfMoveClock int             `json:"halfMoveClock"`
	Moves         []string        `json:"moves"` // SAN history
	Players       PlayersResponse `json:"players"`
	LastMove      *MoveInfo       `json:"lastMove,omitempty"`
}

type MoveInfo struct {
	Move        string `json:"move"` // coordinate form
	SAN         string `json:"san"`
	PlayerColor string `json:"playerColor"`
	Kind        string `json:"kind"`
}

type BoardResponse struct {
	FEN   string `json:"fen"`
	Board string `json:"board"` // ASCII representation
}

type LegalMovesResponse struct {
	Turn  string   `json:"turn"`
	Moves []string `json:"moves"` // coordinate form
}

type PGNResponse struct {
	PGN string `json:"pgn"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
