package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scriptlens/scriptlens/internal/db"
	"github.com/scriptlens/scriptlens/internal/server/middleware"
	"github.com/scriptlens/scriptlens/pkg/logger"
)

// GetGenresHandler lists every genre present in the corpus with its script
// count, most frequent first.
func GetGenresHandler(c echo.Context) error {
	type getGenresResponse struct {
		Message string             `json:"message"`
		Genres  []db.ListGenresRow `json:"genres,omitempty"`
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, getGenresResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	genres, err := q.ListGenres(ctx)
	if err != nil {
		logger.Error("Failed to list genres", "err", err)
		return c.JSON(http.StatusInternalServerError, getGenresResponse{
			Message: "Internal server error",
		})
	}
	if genres == nil {
		genres = []db.ListGenresRow{}
	}

	return c.JSON(http.StatusOK, getGenresResponse{
		Message: "OK",
		Genres:  genres,
	})
}
