package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"chess/internal/core"
	"chess/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	svc, err := service.New(nil)
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	return NewFiberApp(svc, true)
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func createGame(t *testing.T, app *fiber.App) core.GameResponse {
	t.Helper()
	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/v1/games", core.CreateGameRequest{
		White: core.PlayerSpec{Name: "Alice"},
		Black: core.PlayerSpec{Name: "Bob"},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))

	var game core.GameResponse
	require.NoError(t, json.Unmarshal(raw, &game))
	return game
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)
	resp, raw := doJSON(t, app, fiber.MethodGet, "/health", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "healthy")
	assert.Contains(t, string(raw), "disabled")
}

func TestCreateGame(t *testing.T) {
	app := newTestApp(t)
	game := createGame(t, app)

	assert.NotEmpty(t, game.GameID)
	assert.Equal(t, "w", game.Turn)
	assert.Equal(t, "ongoing", game.Result)
	assert.True(t, game.Started)
	assert.Equal(t, "Alice", game.Players.White.Name)
	assert.Equal(t, "Bob", game.Players.Black.Name)
}

func TestCreateGameValidation(t *testing.T) {
	app := newTestApp(t)
	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/v1/games", core.CreateGameRequest{
		White: core.PlayerSpec{Name: "Alice"},
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp core.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, core.ErrCodeInvalidRequest, errResp.Code)
}

func TestMakeMoveFlow(t *testing.T) {
	app := newTestApp(t)
	game := createGame(t, app)

	resp, raw := doJSON(t, app, fiber.MethodPost,
		fmt.Sprintf("/api/v1/games/%s/moves", game.GameID),
		core.MoveRequest{Move: "e2e4"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))

	var updated core.GameResponse
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, "b", updated.Turn)
	require.NotNil(t, updated.LastMove)
	assert.Equal(t, "e2e4", updated.LastMove.Move)
	assert.Equal(t, "e4", updated.LastMove.SAN)
}

func TestIllegalMoveRejected(t *testing.T) {
	app := newTestApp(t)
	game := createGame(t, app)

	resp, raw := doJSON(t, app, fiber.MethodPost,
		fmt.Sprintf("/api/v1/games/%s/moves", game.GameID),
		core.MoveRequest{Move: "e2e5"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp core.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, core.ErrCodeInvalidMove, errResp.Code)
}

func TestGameNotFoundResponses(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{
		"/api/v1/games/missing",
		"/api/v1/games/missing/board",
		"/api/v1/games/missing/legal-moves",
		"/api/v1/games/missing/pgn",
	} {
		resp, raw := doJSON(t, app, fiber.MethodGet, path, nil)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode, path)

		var errResp core.ErrorResponse
		require.NoError(t, json.Unmarshal(raw, &errResp))
		assert.Equal(t, core.ErrCodeGameNotFound, errResp.Code, path)
	}
}

func TestUndoEndpoint(t *testing.T) {
	app := newTestApp(t)
	game := createGame(t, app)
	gamePath := fmt.Sprintf("/api/v1/games/%s", game.GameID)

	doJSON(t, app, fiber.MethodPost, gamePath+"/moves", core.MoveRequest{Move: "e2e4"})
	doJSON(t, app, fiber.MethodPost, gamePath+"/moves", core.MoveRequest{Move: "e7e5"})

	resp, raw := doJSON(t, app, fiber.MethodPost, gamePath+"/undo", core.UndoRequest{Count: 2})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))

	var updated core.GameResponse
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Empty(t, updated.Moves)
	assert.Equal(t, "w", updated.Turn)
}

func TestResignEndpoint(t *testing.T) {
	app := newTestApp(t)
	game := createGame(t, app)

	resp, raw := doJSON(t, app, fiber.MethodPost,
		fmt.Sprintf("/api/v1/games/%s/resign", game.GameID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))

	var updated core.GameResponse
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, core.ResultBlackWins.String(), updated.Result)

	// A finished game rejects further moves with a conflict.
	resp, raw = doJSON(t, app, fiber.MethodPost,
		fmt.Sprintf("/api/v1/games/%s/moves", game.GameID),
		core.MoveRequest{Move: "e2e4"})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var errResp core.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, core.ErrCodeGameOver, errResp.Code)
}

func TestTimeoutEndpoint(t *testing.T) {
	app := newTestApp(t)
	game := createGame(t, app)

	resp, raw := doJSON(t, app, fiber.MethodPost,
		fmt.Sprintf("/api/v1/games/%s/timeout", game.GameID),
		core.TimeoutRequest{Color: "w"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))

	var updated core.GameResponse
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, core.ResultWhiteTimeout.String(), updated.Result)
}

func TestBoardEndpoint(t *testing.T) {
	app := newTestApp(t)
	game := createGame(t, app)

	resp, raw := doJSON(t, app, fiber.MethodGet,
		fmt.Sprintf("/api/v1/games/%s/board", game.GameID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var board core.BoardResponse
	require.NoError(t, json.Unmarshal(raw, &board))
	assert.Contains(t, board.Board, "a b c d e f g h")
	assert.Contains(t, board.FEN, "rnbqkbnr")
}

func TestLegalMovesEndpoint(t *testing.T) {
	app := newTestApp(t)
	game := createGame(t, app)

	resp, raw := doJSON(t, app, fiber.MethodGet,
		fmt.Sprintf("/api/v1/games/%s/legal-moves", game.GameID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var legal core.LegalMovesResponse
	require.NoError(t, json.Unmarshal(raw, &legal))
	assert.Equal(t, "w", legal.Turn)
	assert.Len(t, legal.Moves, 20)
}

func TestDeleteGameEndpoint(t *testing.T) {
	app := newTestApp(t)
	game := createGame(t, app)

	resp, _ := doJSON(t, app, fiber.MethodDelete,
		fmt.Sprintf("/api/v1/games/%s", game.GameID), nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet,
		fmt.Sprintf("/api/v1/games/%s", game.GameID), nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUnsupportedContentType(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/games", bytes.NewReader([]byte("x")))
	req.Header.Set("Content-Type", "text/plain")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnsupportedMediaType, resp.StatusCode)
}
