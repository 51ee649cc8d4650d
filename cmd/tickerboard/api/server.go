package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/nzai/tickerboard/board"
	"github.com/nzai/tickerboard/notifiers"
	"go.uber.org/zap"
)

// Board board status read by api
type Board interface {
	Tickers() []string
	State() board.State
	Last() *notifiers.CycleResult
}

// Server status api server
type Server struct {
	engine *gin.Engine
	board  Board
	server *http.Server
}

// NewServer create api server listen on address
func NewServer(board Board, address string) *Server {
	gin.SetMode(gin.ReleaseMode)
	server := &Server{
		engine: gin.New(),
		board:  board,
	}
	server.server = &http.Server{
		Addr:              address,
		Handler:           server.engine,
		ReadHeaderTimeout: time.Second * 10,
	}

	zap.L().Debug("init gin success")

	server.engine.Use(server.logger(), server.recovery())

	pprof.Register(server.engine, "/v1/pprof")

	server.registeRoute()

	zap.L().Debug("register route success")

	return server
}

// Run serve until Close, returns http.ErrServerClosed after Close
func (s *Server) Run() error {
	zap.L().Info("status api listen", zap.String("address", s.server.Addr))
	return s.server.ListenAndServe()
}

// Close shutdown server, wait at most 5 seconds for active requests
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	return s.server.Shutdown(ctx)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}
