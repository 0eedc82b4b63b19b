package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scriptlens/scriptlens/internal/db"
	"github.com/scriptlens/scriptlens/internal/patterns"
	"github.com/scriptlens/scriptlens/internal/server/middleware"
	"github.com/scriptlens/scriptlens/pkg/logger"
)

// GetStatsHandler reports corpus-wide counts: how many scripts are ingested,
// the average rating and how many clear the success threshold.
func GetStatsHandler(c echo.Context) error {
	type getStatsResponse struct {
		Message string                `json:"message"`
		Stats   *db.GetCorpusStatsRow `json:"stats,omitempty"`
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, getStatsResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	stats, err := q.GetCorpusStats(ctx, patterns.DefaultConfig().SuccessThreshold)
	if err != nil {
		logger.Error("Failed to get corpus stats", "err", err)
		return c.JSON(http.StatusInternalServerError, getStatsResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, getStatsResponse{
		Message: "OK",
		Stats:   &stats,
	})
}
