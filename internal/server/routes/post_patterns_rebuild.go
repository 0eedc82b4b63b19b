package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scriptlens/scriptlens/internal/db"
	"github.com/scriptlens/scriptlens/internal/patterns"
	"github.com/scriptlens/scriptlens/internal/server/middleware"
	"github.com/scriptlens/scriptlens/pkg/logger"
)

// RebuildPatternsHandler recomputes every learned pattern from the current
// corpus and upserts the results. Rebuilding an unchanged corpus writes
// identical rows.
func RebuildPatternsHandler(c echo.Context) error {
	type rebuildPatternsResponse struct {
		Message      string `json:"message"`
		PatternCount int    `json:"pattern_count,omitempty"`
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, rebuildPatternsResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	aggregator := patterns.NewAggregator(&corpusSource{q: q}, patterns.DefaultConfig())
	learned, err := aggregator.Run(ctx)
	if err != nil {
		logger.Error("Failed to aggregate patterns", "err", err)
		return c.JSON(http.StatusInternalServerError, rebuildPatternsResponse{
			Message: "Internal server error",
		})
	}

	tx, err := conn.Begin(ctx)
	if err != nil {
		logger.Error("Failed to begin transaction", "err", err)
		return c.JSON(http.StatusInternalServerError, rebuildPatternsResponse{
			Message: "Internal server error",
		})
	}
	defer tx.Rollback(ctx)
	qtx := q.WithTx(tx)

	for _, pattern := range learned {
		err = qtx.UpsertLearnedPattern(ctx, db.UpsertLearnedPatternParams{
			PatternType:       pattern.Type,
			Name:              pattern.Name,
			Description:       pattern.Description,
			Correlation:       pattern.Correlation,
			SuccessfulCount:   int32(pattern.SuccessfulCount),
			UnsuccessfulCount: int32(pattern.UnsuccessfulCount),
		})
		if err != nil {
			logger.Error("Failed to upsert learned pattern", "pattern_type", pattern.Type, "name", pattern.Name, "err", err)
			return c.JSON(http.StatusInternalServerError, rebuildPatternsResponse{
				Message: "Internal server error",
			})
		}
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Error("Failed to commit transaction", "err", err)
		return c.JSON(http.StatusInternalServerError, rebuildPatternsResponse{
			Message: "Internal server error",
		})
	}

	logger.Info("Rebuilt learned patterns", "count", len(learned))
	return c.JSON(http.StatusOK, rebuildPatternsResponse{
		Message:      "Patterns rebuilt successfully",
		PatternCount: len(learned),
	})
}
