package server

import (
	"net/http"
	"time"

	"github.com/existflow/flowboard/internal/logger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server is the board placeholder API. It holds a single in-memory board
// snapshot with no persistence across restarts; clients own the state of
// record locally.
type Server struct {
	echo  *echo.Echo
	board *Board
}

// New creates a new server
func New() *Server {
	s := &Server{
		board: NewBoard(),
	}
	s.setupEcho()
	return s
}

func (s *Server) setupEcho() {
	e := echo.New()
	e.HideBanner = true

	// Custom logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			err := next(c)

			res := c.Response()
			logger.Info("HTTP Request",
				logger.F("method", req.Method),
				logger.F("uri", req.RequestURI),
				logger.F("status", res.Status),
				logger.F("duration", time.Since(start).String()))

			return err
		}
	})

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	// Health check
	e.GET("/health", s.handleHealth)

	// API v1
	api := e.Group("/api/v1")
	api.GET("/board", s.handleBoardGet)
	api.POST("/board", s.handleBoardReplace)

	s.echo = e
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Start starts the server on the given address
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Handler exposes the underlying HTTP handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}
