package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scriptlens/scriptlens/internal/db"
	"github.com/scriptlens/scriptlens/internal/server/middleware"
	"github.com/scriptlens/scriptlens/pkg/logger"
)

// GetScriptsHandler lists all ingested scripts with per-script scene and
// beat counts, newest first.
func GetScriptsHandler(c echo.Context) error {
	type getScriptsResponse struct {
		Message string              `json:"message"`
		Scripts []db.ListScriptsRow `json:"scripts,omitempty"`
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, getScriptsResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	scripts, err := q.ListScripts(ctx)
	if err != nil {
		logger.Error("Failed to list scripts", "err", err)
		return c.JSON(http.StatusInternalServerError, getScriptsResponse{
			Message: "Internal server error",
		})
	}
	if scripts == nil {
		scripts = []db.ListScriptsRow{}
	}

	return c.JSON(http.StatusOK, getScriptsResponse{
		Message: "OK",
		Scripts: scripts,
	})
}
