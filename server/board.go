package server

import (
	"net/http"
	"sync"

	"github.com/existflow/flowboard/internal/model"
	"github.com/labstack/echo/v4"
)

// Snapshot maps column names to the tasks displayed in them. The server
// does not validate column names or task contents; it is an echo slot for
// whatever board the client last posted.
type Snapshot map[string][]model.Task

// Board holds the current in-memory snapshot
type Board struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// NewBoard creates a board with one empty bucket per known column
func NewBoard() *Board {
	snapshot := make(Snapshot, len(model.Statuses))
	for _, s := range model.Statuses {
		snapshot[string(s)] = []model.Task{}
	}
	return &Board{snapshot: snapshot}
}

// Get returns the current snapshot
func (b *Board) Get() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snapshot
}

// Replace swaps the snapshot wholesale
func (b *Board) Replace(snapshot Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snapshot = snapshot
}

func (s *Server) handleBoardGet(c echo.Context) error {
	return c.JSON(http.StatusOK, s.board.Get())
}

func (s *Server) handleBoardReplace(c echo.Context) error {
	var snapshot Snapshot
	if err := c.Bind(&snapshot); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid board payload")
	}
	s.board.Replace(snapshot)
	return c.JSON(http.StatusOK, map[string]string{"message": "Board updated successfully", "status": "ok"})
}
