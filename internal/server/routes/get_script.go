package routes

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/scriptlens/scriptlens/internal/db"
	"github.com/scriptlens/scriptlens/internal/server/middleware"
	"github.com/scriptlens/scriptlens/pkg/logger"
)

// GetScriptHandler returns one script by public ID together with its parsed
// scenes, characters and detected story beats.
func GetScriptHandler(c echo.Context) error {
	type getScriptParams struct {
		ID string `param:"id" validate:"required"`
	}

	type getScriptResponse struct {
		Message    string         `json:"message"`
		Script     *db.Script     `json:"script,omitempty"`
		Scenes     []db.Scene     `json:"scenes,omitempty"`
		Characters []db.Character `json:"characters,omitempty"`
		Beats      []db.StoryBeat `json:"beats,omitempty"`
	}

	params := new(getScriptParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getScriptResponse{
			Message: "Invalid request",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getScriptResponse{
			Message: "Invalid request",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, getScriptResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	script, err := q.GetScriptByPublicID(ctx, params.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.JSON(http.StatusNotFound, getScriptResponse{
			Message: "Script not found",
		})
	}
	if err != nil {
		logger.Error("Failed to get script", "err", err)
		return c.JSON(http.StatusInternalServerError, getScriptResponse{
			Message: "Internal server error",
		})
	}

	scenes, err := q.ListScenesByScript(ctx, script.ID)
	if err != nil {
		logger.Error("Failed to list scenes", "err", err)
		return c.JSON(http.StatusInternalServerError, getScriptResponse{
			Message: "Internal server error",
		})
	}

	characters, err := q.ListCharactersByScript(ctx, script.ID)
	if err != nil {
		logger.Error("Failed to list characters", "err", err)
		return c.JSON(http.StatusInternalServerError, getScriptResponse{
			Message: "Internal server error",
		})
	}

	beats, err := q.ListBeatsByScript(ctx, script.ID)
	if err != nil {
		logger.Error("Failed to list beats", "err", err)
		return c.JSON(http.StatusInternalServerError, getScriptResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, getScriptResponse{
		Message:    "OK",
		Script:     &script,
		Scenes:     scenes,
		Characters: characters,
		Beats:      beats,
	})
}
