package http

import (
	"errors"
	"strings"

	"chess/internal/core"
	"chess/internal/game"
	"chess/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateGame creates a new game from the validated request
func (h *HTTPHandler) CreateGame(c *fiber.Ctx) error {
	req, ok := c.Locals("validatedBody").(*core.CreateGameRequest)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error: "invalid request body",
			Code:  core.ErrCodeInvalidRequest,
		})
	}

	gameID, g, err := h.svc.CreateGame(*req)
	if err != nil {
		code := core.ErrCodeInvalidRequest
		if req.FEN != "" && errors.Is(err, core.ErrInvalidInput) {
			code = core.ErrCodeInvalidFEN
		}
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error:   "failed to create game",
			Code:    code,
			Details: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(buildGameResponse(gameID, g))
}

// GetGame retrieves current game state
func (h *HTTPHandler) GetGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	g, err := h.svc.GetGame(gameID)
	if err != nil {
		return gameNotFound(c)
	}

	return c.JSON(buildGameResponse(gameID, g))
}

// MakeMove submits a move in coordinate or SAN notation
func (h *HTTPHandler) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	req, ok := c.Locals("validatedBody").(*core.MoveRequest)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error: "invalid request body",
			Code:  core.ErrCodeInvalidRequest,
		})
	}

	g, err := h.svc.Move(gameID, req.Move)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(buildGameResponse(gameID, g))
}

// UndoMove undoes one or more half-moves
func (h *HTTPHandler) UndoMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	count := 1
	if req, ok := c.Locals("validatedBody").(*core.UndoRequest); ok {
		count = req.Count
	}

	g, err := h.svc.Undo(gameID, count)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(buildGameResponse(gameID, g))
}

// Resign ends the game against the side to move
func (h *HTTPHandler) Resign(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	g, err := h.svc.Resign(gameID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(buildGameResponse(gameID, g))
}

// OfferDraw records a draw by agreement
func (h *HTTPHandler) OfferDraw(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	g, err := h.svc.OfferDraw(gameID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(buildGameResponse(gameID, g))
}

// ReportTimeout records a flag fall reported by the client
func (h *HTTPHandler) ReportTimeout(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	req, ok := c.Locals("validatedBody").(*core.TimeoutRequest)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error: "invalid request body",
			Code:  core.ErrCodeInvalidRequest,
		})
	}

	color := core.ColorWhite
	if req.Color == "b" {
		color = core.ColorBlack
	}

	g, err := h.svc.ReportTimeout(gameID, color)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(buildGameResponse(gameID, g))
}

// DeleteGame ends and cleans up a game
func (h *HTTPHandler) DeleteGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	if err := h.svc.DeleteGame(gameID); err != nil {
		return gameNotFound(c)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetBoard returns the FEN and an ASCII rendering of the position
func (h *HTTPHandler) GetBoard(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	g, err := h.svc.GetGame(gameID)
	if err != nil {
		return gameNotFound(c)
	}

	return c.JSON(core.BoardResponse{
		FEN:   g.FEN(),
		Board: g.Board().ASCII(),
	})
}

// GetLegalMoves lists every legal move for the side to move
func (h *HTTPHandler) GetLegalMoves(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	g, err := h.svc.GetGame(gameID)
	if err != nil {
		return gameNotFound(c)
	}

	legal := g.LegalMoves()
	moves := make([]string, len(legal))
	for i, m := range legal {
		moves[i] = m.String()
	}

	return c.JSON(core.LegalMovesResponse{
		Turn:  g.Turn().String(),
		Moves: moves,
	})
}

// GetPGN exports the game as PGN
func (h *HTTPHandler) GetPGN(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	g, err := h.svc.GetGame(gameID)
	if err != nil {
		return gameNotFound(c)
	}

	return c.JSON(core.PGNResponse{PGN: g.ToPGN()})
}

func gameNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(core.ErrorResponse{
		Error: "game not found",
		Code:  core.ErrCodeGameNotFound,
	})
}

// writeServiceError maps the engine's error taxonomy to HTTP responses.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return gameNotFound(c)
	case errors.Is(err, core.ErrIllegalMove):
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error:   "invalid move",
			Code:    core.ErrCodeInvalidMove,
			Details: err.Error(),
		})
	case errors.Is(err, core.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error:   "invalid input",
			Code:    core.ErrCodeInvalidRequest,
			Details: err.Error(),
		})
	case errors.Is(err, core.ErrInvalidStateTransition):
		code := core.ErrCodeGameOver
		msg := err.Error()
		if strings.Contains(msg, "not started") {
			code = core.ErrCodeGameNotStarted
		} else if strings.Contains(msg, "undo") {
			code = core.ErrCodeUndoDisabled
		}
		return c.Status(fiber.StatusConflict).JSON(core.ErrorResponse{
			Error:   "operation not allowed in current game state",
			Code:    code,
			Details: msg,
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(core.ErrorResponse{
			Error:   "internal server error",
			Code:    core.ErrCodeInternalError,
			Details: err.Error(),
		})
	}
}

// buildGameResponse assembles the standard game state payload.
func buildGameResponse(gameID string, g *game.Game) core.GameResponse {
	history := g.History()
	moves := make([]string, len(history))
	for i, r := range history {
		moves[i] = r.SAN
	}

	resp := core.GameResponse{
		GameID:        gameID,
		FEN:           g.FEN(),
		Turn:          g.Turn().String(),
		Result:        g.Result().String(),
		Started:       g.Started(),
		InCheck:       g.IsCheck(),
		MoveNumber:    g.MoveNumber(),
		HalfMoveClock: g.HalfMoveClock(),
		Moves:         moves,
		Players: core.PlayersResponse{
			White: playerInfo(g.White()),
			Black: playerInfo(g.Black()),
		},
	}

	if len(history) > 0 {
		last := history[len(history)-1]
		resp.LastMove = &core.MoveInfo{
			Move:        last.Move.String(),
			SAN:         last.SAN,
			PlayerColor: last.Color.String(),
			Kind:        last.Kind.String(),
		}
	}

	return resp
}

func playerInfo(p *core.Player) core.PlayerInfo {
	return core.PlayerInfo{
		Name:           p.Name,
		Color:          p.Color.String(),
		Human:          p.Human,
		TimeLeft:       p.FormattedTime(),
		MovesPlayed:    p.MovesPlayed,
		PiecesCaptured: p.PiecesCaptured,
		ChecksGiven:    p.ChecksGiven,
		InCheck:        p.InCheck,
	}
}
