package service

import (
	"fmt"
	"time"

	"chess/internal/core"
	"chess/internal/game"
	"chess/internal/storage"
)

// CreateGame builds, starts and registers a new game from the request,
// returning its generated ID.
func (s *Service) CreateGame(req core.CreateGameRequest) (string, *game.Game, error) {
	var opts []game.Option
	if req.AllowUndo != nil && !*req.AllowUndo {
		opts = append(opts, game.WithUndoDisabled())
	}
	g := game.New(opts...)

	whiteHuman := req.White.Human == nil || *req.White.Human
	blackHuman := req.Black.Human == nil || *req.Black.Human
	if err := g.Initialize(req.White.Name, req.Black.Name, whiteHuman, blackHuman, req.TimeLimitSeconds); err != nil {
		return "", nil, err
	}
	if req.FEN != "" {
		if err := g.LoadFEN(req.FEN); err != nil {
			return "", nil, err
		}
	}
	if err := g.Start(); err != nil {
		return "", nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var id string
	for {
		id = newGameID()
		if _, exists := s.games[id]; !exists {
			break
		}
	}
	s.games[id] = g

	// Persist if storage enabled
	if s.store != nil {
		record := storage.GameRecord{
			GameID:           id,
			InitialFEN:       g.InitialFEN(),
			WhiteName:        g.White().Name,
			WhiteHuman:       g.White().Human,
			BlackName:        g.Black().Name,
			BlackHuman:       g.Black().Human,
			TimeLimitSeconds: req.TimeLimitSeconds,
			AllowUndo:        g.AllowUndo(),
			Result:           g.Result().String(),
			StartTimeUTC:     time.Now().UTC(),
		}
		s.store.RecordNewGame(record)
	}

	return id, g, nil
}

// Move applies a move in coordinate or SAN notation and persists it.
func (s *Service) Move(gameID, notation string) (*game.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	if err := g.MakeMoveNotation(notation); err != nil {
		return nil, err
	}

	// Persist if storage enabled
	if s.store != nil {
		history := g.History()
		last := history[len(history)-1]
		record := storage.MoveRecord{
			GameID:      gameID,
			Ply:         len(history),
			SAN:         last.SAN,
			MoveCoord:   last.Move.String(),
			FENAfter:    g.FEN(),
			PlayerColor: last.Color.String(),
			MoveTimeUTC: time.Now().UTC(),
		}
		s.store.RecordMove(record)

		if g.IsGameOver() {
			s.store.RecordResult(gameID, g.Result().String())
		}
	}

	return g, nil
}

// Undo reverts the last count half-moves and prunes the persisted moves.
func (s *Service) Undo(gameID string, count int) (*game.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	for i := 0; i < count; i++ {
		if err := g.Undo(); err != nil {
			if i == 0 {
				return nil, err
			}
			break
		}
	}

	// Delete undone moves from storage if enabled
	if s.store != nil {
		s.store.DeleteUndoneMoves(gameID, len(g.History()))
		s.store.RecordResult(gameID, g.Result().String())
	}

	return g, nil
}

// Resign ends the game against the side to move.
func (s *Service) Resign(gameID string) (*game.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	if err := g.Resign(); err != nil {
		return nil, err
	}
	if s.store != nil {
		s.store.RecordResult(gameID, g.Result().String())
	}
	return g, nil
}

// OfferDraw records a draw by agreement.
func (s *Service) OfferDraw(gameID string) (*game.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	if !g.OfferDraw() {
		return nil, fmt.Errorf("%w: game is not active", core.ErrInvalidStateTransition)
	}
	if s.store != nil {
		s.store.RecordResult(gameID, g.Result().String())
	}
	return g, nil
}

// ReportTimeout records a flag fall for the given color.
func (s *Service) ReportTimeout(gameID string, color core.Color) (*game.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	if err := g.ReportTimeout(color); err != nil {
		return nil, err
	}
	if s.store != nil {
		s.store.RecordResult(gameID, g.Result().String())
	}
	return g, nil
}
