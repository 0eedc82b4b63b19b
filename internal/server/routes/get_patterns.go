package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scriptlens/scriptlens/internal/db"
	"github.com/scriptlens/scriptlens/internal/server/middleware"
	"github.com/scriptlens/scriptlens/pkg/logger"
)

// GetPatternsHandler lists the learned corpus patterns from the last rebuild.
func GetPatternsHandler(c echo.Context) error {
	type getPatternsResponse struct {
		Message  string              `json:"message"`
		Patterns []db.LearnedPattern `json:"patterns,omitempty"`
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, getPatternsResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	learned, err := q.ListLearnedPatterns(ctx)
	if err != nil {
		logger.Error("Failed to list learned patterns", "err", err)
		return c.JSON(http.StatusInternalServerError, getPatternsResponse{
			Message: "Internal server error",
		})
	}
	if learned == nil {
		learned = []db.LearnedPattern{}
	}

	return c.JSON(http.StatusOK, getPatternsResponse{
		Message:  "OK",
		Patterns: learned,
	})
}
