package storage

import "time"

// GameRecord represents a row in the games table
type GameRecord struct {
	GameID           string    `db:"game_id"`
	InitialFEN       string    `db:"initial_fen"`
	WhiteName        string    `db:"white_name"`
	WhiteHuman       bool      `db:"white_human"`
	BlackName        string    `db:"black_name"`
	BlackHuman       bool      `db:"black_human"`
	TimeLimitSeconds int       `db:"time_limit_seconds"`
	AllowUndo        bool      `db:"allow_undo"`
	Result           string    `db:"result"`
	StartTimeUTC     time.Time `db:"start_time_utc"`
}

// MoveRecord represents a row in the moves table. Ply counts committed
// half-moves from 1; SAN and the coordinate form are both kept so games
// can be replayed or exported without re-deriving notation.
type MoveRecord struct {
	MoveID      int64     `db:"move_id"`
	GameID      string    `db:"game_id"`
	Ply         int       `db:"ply"`
	SAN         string    `db:"san"`
	MoveCoord   string    `db:"move_coord"`
	FENAfter    string    `db:"fen_after"`
	PlayerColor string    `db:"player_color"` // "w" or "b"
	MoveTimeUTC time.Time `db:"move_time_utc"`
}

// Schema defines the SQLite database structure
const Schema = `
CREATE TABLE IF NOT EXISTS games (
	game_id TEXT PRIMARY KEY,
	initial_fen TEXT NOT NULL,
	white_name TEXT NOT NULL,
	white_human INTEGER NOT NULL DEFAULT 1,
	black_name TEXT NOT NULL,
	black_human INTEGER NOT NULL DEFAULT 1,
	time_limit_seconds INTEGER NOT NULL DEFAULT 0,
	allow_undo INTEGER NOT NULL DEFAULT 1,
	result TEXT NOT NULL DEFAULT 'ongoing',
	start_time_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS moves (
	move_id INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id TEXT NOT NULL,
	ply INTEGER NOT NULL,
	san TEXT NOT NULL,
	move_coord TEXT NOT NULL,
	fen_after TEXT NOT NULL,
	player_color TEXT NOT NULL CHECK(player_color IN ('w', 'b')),
	move_time_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (game_id) REFERENCES games(game_id) ON DELETE CASCADE,
	UNIQUE(game_id, ply)
);

CREATE INDEX IF NOT EXISTS idx_moves_game_id ON moves(game_id);
CREATE INDEX IF NOT EXISTS idx_games_white_name ON games(white_name);
CREATE INDEX IF NOT EXISTS idx_games_black_name ON games(black_name);
`
