package main

import (
	"net/http"

	"github.com/Groberts93/sudoku-solver/puzzle"
	"github.com/Groberts93/sudoku-solver/storage"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// solveRequest is the body of a solve call: the 81-character
// puzzle string, row-major, 0 for unknowns.
type solveRequest struct {
	Puzzle string `json:"puzzle" binding:"required"`
}

type solveResponse struct {
	Solution string `json:"solution"`
	Passes   int    `json:"passes"`
	Cached   bool   `json:"cached"`
}

type solveHandler struct {
	logger  zerolog.Logger
	persist bool
}

func registerRoutes(e *gin.Engine, logger zerolog.Logger, persist bool) {
	h := &solveHandler{logger: logger, persist: persist}
	v1 := e.Group("/api").Group("/v1")
	v1.POST("/solve", h.Solve)
}

// Solve handles one solve request.  Malformed requests get a 400,
// puzzles that conflict or stall get a 422 carrying the solver's
// error, and solvable puzzles get the solution.  When storage is
// available, solutions are looked up before solving and saved
// after; storage failures are logged but never fail the request.
func (h *solveHandler) Solve(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := puzzle.New(req.Puzzle)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.persist {
		rec, found, err := storage.LookupSolution(req.Puzzle)
		if err != nil {
			h.logger.Warn().Err(err).Msg("solution lookup failed")
		} else if found {
			c.JSON(http.StatusOK, solveResponse{
				Solution: rec.Solution,
				Passes:   rec.Passes,
				Cached:   true,
			})
			return
		}
	}

	b.SetLogger(h.logger)
	if err := b.Solve(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if h.persist {
		rec := &storage.SolveRecord{
			PuzzleId: storage.PuzzleId(req.Puzzle),
			Givens:   req.Puzzle,
			Solution: b.String(),
			Passes:   b.Passes(),
		}
		if err := storage.SaveSolution(rec); err != nil {
			h.logger.Warn().Err(err).Msg("solution save failed")
		}
	}

	c.JSON(http.StatusOK, solveResponse{
		Solution: b.String(),
		Passes:   b.Passes(),
		Cached:   false,
	})
}
