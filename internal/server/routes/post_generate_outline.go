package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scriptlens/scriptlens/internal/db"
	"github.com/scriptlens/scriptlens/internal/outline"
	"github.com/scriptlens/scriptlens/internal/server/middleware"
	"github.com/scriptlens/scriptlens/pkg/logger"
)

// GenerateOutlineHandler produces a three-act outline for a premise/genre
// pair, informed by the best-rated comparable scripts in the corpus.
func GenerateOutlineHandler(c echo.Context) error {
	type generateOutlineBody struct {
		Premise      string `json:"premise"`
		Genre        string `json:"genre"`
		TargetLength int    `json:"targetLength"`
	}

	type generateOutlineResponse struct {
		Success bool             `json:"success"`
		Outline *outline.Outline `json:"outline,omitempty"`
		Error   string           `json:"error,omitempty"`
	}

	data := new(generateOutlineBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, generateOutlineResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, generateOutlineResponse{
			Success: false,
			Error:   "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	source := &comparableSource{q: db.New(conn)}
	generator := outline.NewGenerator(source, outline.DefaultConfig())

	result, err := generator.Generate(ctx, data.Premise, data.Genre, data.TargetLength)
	if err != nil {
		var validationErr *outline.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, generateOutlineResponse{
				Success: false,
				Error:   validationErr.Error(),
			})
		}
		logger.Error("Failed to generate outline", "err", err)
		return c.JSON(http.StatusInternalServerError, generateOutlineResponse{
			Success: false,
			Error:   "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, generateOutlineResponse{
		Success: true,
		Outline: result,
	})
}
