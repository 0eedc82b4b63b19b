package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/scriptlens/scriptlens/internal/db"
	"github.com/scriptlens/scriptlens/internal/screenplay"
	"github.com/scriptlens/scriptlens/internal/server/middleware"
	"github.com/scriptlens/scriptlens/internal/storage"
	"github.com/scriptlens/scriptlens/internal/util"
	"github.com/scriptlens/scriptlens/pkg/logger"
)

// CreateScriptHandler ingests a raw screenplay: it parses the text into
// scenes, characters, dialogue and beats, and persists everything in one
// transaction.
func CreateScriptHandler(c echo.Context) error {
	type createScriptBody struct {
		Title   string   `json:"title" validate:"required"`
		Year    int      `json:"year"`
		Genres  []string `json:"genres"`
		Rating  float64  `json:"rating"`
		Content string   `json:"content" validate:"required"`
	}

	type createScriptResponse struct {
		Message        string     `json:"message"`
		Script         *db.Script `json:"script,omitempty"`
		SceneCount     int        `json:"scene_count,omitempty"`
		CharacterCount int        `json:"character_count,omitempty"`
		DialogueCount  int        `json:"dialogue_count,omitempty"`
		BeatCount      int        `json:"beat_count,omitempty"`
	}

	data := new(createScriptBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createScriptResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createScriptResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, createScriptResponse{
			Message: "Unauthorized",
		})
	}

	rawText := util.SanitizePostgresText(util.NormalizeNewlines(data.Content))
	analysis := screenplay.Parse(rawText, screenplay.DefaultConfig())

	publicID, err := gonanoid.New()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createScriptResponse{
			Message: "Internal server error",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	tx, err := conn.Begin(ctx)
	if err != nil {
		logger.Error("Failed to begin transaction", "err", err)
		return c.JSON(http.StatusInternalServerError, createScriptResponse{
			Message: "Internal server error",
		})
	}
	defer tx.Rollback(ctx)
	q := db.New(conn)
	qtx := q.WithTx(tx)

	script, err := qtx.CreateScript(ctx, db.CreateScriptParams{
		PublicID:  publicID,
		Title:     data.Title,
		Year:      int32(data.Year),
		Genres:    data.Genres,
		Rating:    data.Rating,
		PageCount: int32(analysis.PageCount),
		RawText:   rawText,
	})
	if err != nil {
		logger.Error("Failed to create script", "err", err)
		return c.JSON(http.StatusInternalServerError, createScriptResponse{
			Message: "Internal server error",
		})
	}

	for _, scene := range analysis.Scenes {
		err = qtx.CreateScene(ctx, db.CreateSceneParams{
			ScriptID:          script.ID,
			SceneNumber:       int32(scene.Number),
			SceneType:         scene.Type,
			Location:          scene.Location,
			TimeOfDay:         scene.TimeOfDay,
			PageStart:         int32(scene.PageStart),
			PageEnd:           int32(scene.PageEnd),
			Content:           scene.Content,
			CharactersPresent: scene.CharactersPresent,
			DialogueLines:     int32(scene.DialogueLines),
			ActionLines:       int32(scene.ActionLines),
			DialogueRatio:     scene.DialogueRatio,
		})
		if err != nil {
			logger.Error("Failed to create scene", "err", err)
			return c.JSON(http.StatusInternalServerError, createScriptResponse{
				Message: "Internal server error",
			})
		}
	}

	for _, character := range analysis.Characters {
		sceneNumbers := make([]int32, len(character.SceneNumbers))
		for i, n := range character.SceneNumbers {
			sceneNumbers[i] = int32(n)
		}
		err = qtx.CreateCharacter(ctx, db.CreateCharacterParams{
			ScriptID:            script.ID,
			Name:                character.Name,
			FirstAppearancePage: int32(character.FirstAppearancePage),
			SceneNumbers:        sceneNumbers,
			LineCount:           int32(character.LineCount),
		})
		if err != nil {
			logger.Error("Failed to create character", "err", err)
			return c.JSON(http.StatusInternalServerError, createScriptResponse{
				Message: "Internal server error",
			})
		}
	}

	for _, line := range analysis.Dialogue {
		err = qtx.CreateDialogueLine(ctx, db.CreateDialogueLineParams{
			ScriptID:      script.ID,
			SceneNumber:   int32(line.SceneNumber),
			CharacterName: line.Character,
			LineNumber:    int32(line.LineNumber),
			Text:          line.Text,
			WordCount:     int32(line.WordCount),
			Tone:          line.Tone,
		})
		if err != nil {
			logger.Error("Failed to create dialogue line", "err", err)
			return c.JSON(http.StatusInternalServerError, createScriptResponse{
				Message: "Internal server error",
			})
		}
	}

	for _, beat := range analysis.Beats {
		err = qtx.CreateStoryBeat(ctx, db.CreateStoryBeatParams{
			ScriptID:    script.ID,
			BeatType:    beat.Type,
			SceneNumber: int32(beat.SceneNumber),
			Page:        int32(beat.Page),
			Confidence:  beat.Confidence,
		})
		if err != nil {
			logger.Error("Failed to create story beat", "err", err)
			return c.JSON(http.StatusInternalServerError, createScriptResponse{
				Message: "Internal server error",
			})
		}
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Error("Failed to commit transaction", "err", err)
		return c.JSON(http.StatusInternalServerError, createScriptResponse{
			Message: "Internal server error",
		})
	}

	// Archive the raw upload after commit; ingestion already succeeded.
	s3Client := c.(*middleware.AppContext).App.S3
	if s3Client != nil {
		if _, err := storage.PutScriptArchive(ctx, s3Client, publicID, rawText); err != nil {
			logger.Warn("Failed to archive script text", "script_id", publicID, "err", err)
		}
	}

	// The caller already has the content; no point echoing it back.
	script.RawText = ""

	return c.JSON(http.StatusOK, createScriptResponse{
		Message:        "Script ingested successfully",
		Script:         &script,
		SceneCount:     len(analysis.Scenes),
		CharacterCount: len(analysis.Characters),
		DialogueCount:  len(analysis.Dialogue),
		BeatCount:      len(analysis.Beats),
	})
}
