package enrich

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scriptlens/scriptlens/internal/db"
	"github.com/scriptlens/scriptlens/internal/util"
	"github.com/scriptlens/scriptlens/pkg/logger"
)

// ErrTitleNotFound is returned by a MetadataSource when the external API
// has no record for the requested title.
var ErrTitleNotFound = errors.New("title not found")

// MetadataSource looks up external metadata for a title. *MetadataClient
// implements it; tests substitute an in-memory fake.
type MetadataSource interface {
	LookupTitle(ctx context.Context, title string, year int) (*TitleMetadata, error)
}

const (
	// LookupThrottle is the pause between consecutive metadata lookups.
	// The external API rate-limits aggressively, so scripts are enriched
	// strictly one at a time.
	LookupThrottle = 350 * time.Millisecond

	passBatchSize = 25
	lookupRetries = 3
)

// RunPass enriches up to one batch of scripts that have no metadata yet and
// returns how many it enriched. Scripts whose title is unknown to the API
// are marked enriched with their existing values so they are not retried
// forever.
func RunPass(ctx context.Context, conn *pgxpool.Pool, source MetadataSource) (int, error) {
	q := db.New(conn)

	scripts, err := q.ListUnenrichedScripts(ctx, passBatchSize)
	if err != nil {
		return 0, err
	}

	enriched := 0
	for i, script := range scripts {
		if i > 0 {
			select {
			case <-ctx.Done():
				return enriched, ctx.Err()
			case <-time.After(LookupThrottle):
			}
		}

		metadata, err := util.RetryWithContext(ctx, lookupRetries, func(ctx context.Context) (*TitleMetadata, error) {
			return source.LookupTitle(ctx, script.Title, int(script.Year))
		})
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return enriched, err
		}
		if errors.Is(err, ErrTitleNotFound) {
			logger.Warn("[Enrich] No metadata for title", "script_id", script.PublicID, "title", script.Title)
			if err := markEnriched(ctx, conn, script.ID); err != nil {
				return enriched, err
			}
			continue
		}
		if err != nil {
			logger.Error("[Enrich] Metadata lookup failed", "script_id", script.PublicID, "title", script.Title, "err", err)
			continue
		}

		if err := applyMetadata(ctx, conn, script.ID, metadata); err != nil {
			return enriched, err
		}
		logger.Info("[Enrich] Script enriched", "script_id", script.PublicID, "rating", metadata.Rating, "genres", metadata.Genres)
		enriched++
	}

	return enriched, nil
}

func applyMetadata(ctx context.Context, conn *pgxpool.Pool, scriptID int64, metadata *TitleMetadata) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	qtx := db.New(conn).WithTx(tx)

	if err := qtx.UpdateScriptEnrichment(ctx, db.UpdateScriptEnrichmentParams{
		ID:     scriptID,
		Rating: metadata.Rating,
		Genres: metadata.Genres,
	}); err != nil {
		return err
	}

	for _, member := range metadata.Cast {
		if err := qtx.UpsertScriptCast(ctx, db.UpsertScriptCastParams{
			ScriptID:    scriptID,
			ActorName:   member.Name,
			AwardWinner: member.AwardWinner,
		}); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func markEnriched(ctx context.Context, conn *pgxpool.Pool, scriptID int64) error {
	q := db.New(conn)
	script, err := q.GetScriptByID(ctx, scriptID)
	if err != nil {
		return err
	}
	return q.UpdateScriptEnrichment(ctx, db.UpdateScriptEnrichmentParams{
		ID:     scriptID,
		Rating: script.Rating,
		Genres: script.Genres,
	})
}
