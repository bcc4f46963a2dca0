package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4/internal/service/game"
)

type GamesHandler struct {
	SessionManager *game.SessionManager
}

func NewGamesHandler(sm *game.SessionManager) *GamesHandler {
	return &GamesHandler{SessionManager: sm}
}

type liveGameResponse struct {
	GameID      string `json:"gameId"`
	Status      string `json:"status"`
	CurrentTurn string `json:"currentTurn,omitempty"`
	Winner      string `json:"winner,omitempty"`
	MoveCount   int    `json:"moveCount"`
	StartedAt   string `json:"startedAt"`
}

// GetLiveGames returns every game currently open in this process
func (h *GamesHandler) GetLiveGames(c *gin.Context) {
	games := h.SessionManager.ActiveGames()

	response := make([]liveGameResponse, 0, len(games))
	for _, g := range games {
		item := liveGameResponse{
			GameID:    g.GameID,
			Status:    string(g.Status),
			Winner:    g.Winner,
			MoveCount: g.MoveCount,
			StartedAt: g.StartedAt.UTC().Format(time.RFC3339),
		}
		if !g.Status.IsTerminal() {
			item.CurrentTurn = g.CurrentTurn
		}
		response = append(response, item)
	}

	c.JSON(http.StatusOK, response)
}

// Health reports liveness and how many games are open.
func (h *GamesHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"games":  h.SessionManager.Count(),
	})
}
