package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nzai/tickerboard/notifiers"
)

// BoardResponse body of /api/board
type BoardResponse struct {
	State   string                 `json:"state"`
	Tickers []string               `json:"tickers"`
	Last    *notifiers.CycleResult `json:"last"`
}

func (s *Server) registeRoute() {
	s.engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	s.engine.GET("/api/ping", s.ping)

	s.engine.GET("/api/board", s.getBoard)
}

func (s *Server) ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

// getBoard current tickers and the latest cycle, last is null until the first cycle completed
func (s *Server) getBoard(c *gin.Context) {
	c.JSON(http.StatusOK, BoardResponse{
		State:   s.board.State().String(),
		Tickers: s.board.Tickers(),
		Last:    s.board.Last(),
	})
}
