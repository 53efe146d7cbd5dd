package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduforge/eduforge/internal/games"
)

type gameRequest struct {
	Topic    string `json:"topic"`
	GameType string `json:"game_type"`
	Language string `json:"language"`
}

func (s *Server) handleGames(c *gin.Context) {
	req := gameRequest{
		Topic:    "any topic",
		GameType: string(games.TypeWordSearch),
		Language: "Spanish",
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	gameType := games.GameType(req.GameType)
	if gameType != games.TypeWordSearch && gameType != games.TypeCrossword {
		fail(c, http.StatusBadRequest, "unsupported game type: "+req.GameType)
		return
	}

	game, err := s.svc.Games.Generate(c.Request.Context(), games.Options{
		Topic:    req.Topic,
		GameType: gameType,
		Language: req.Language,
	})
	if err != nil {
		s.failInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}
