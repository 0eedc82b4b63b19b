package routes

import (
	"context"

	"github.com/scriptlens/scriptlens/internal/db"
	"github.com/scriptlens/scriptlens/internal/outline"
	"github.com/scriptlens/scriptlens/internal/patterns"
)

// comparableSource adapts the sqlc queries to outline.ComparableSource.
type comparableSource struct {
	q *db.Queries
}

func (s *comparableSource) ListComparables(ctx context.Context, genre string, minRating float64, limit int) ([]outline.Comparable, error) {
	rows, err := s.q.ListComparables(ctx, db.ListComparablesParams{
		Genre:     genre,
		MinRating: minRating,
		Limit:     int32(limit),
	})
	if err != nil {
		return nil, err
	}

	comparables := make([]outline.Comparable, 0, len(rows))
	for _, row := range rows {
		comparables = append(comparables, outline.Comparable{
			ID:        row.ID,
			Title:     row.Title,
			Rating:    row.Rating,
			PageCount: int(row.PageCount),
		})
	}
	return comparables, nil
}

func (s *comparableSource) BeatPageAverages(ctx context.Context, scriptIDs []int64) (map[string]float64, error) {
	rows, err := s.q.BeatPageAverages(ctx, scriptIDs)
	if err != nil {
		return nil, err
	}

	averages := make(map[string]float64, len(rows))
	for _, row := range rows {
		averages[row.BeatType] = row.AveragePage
	}
	return averages, nil
}

// corpusSource adapts the sqlc rollup queries to patterns.CorpusSource,
// assembling the per-script facts the aggregator consumes.
type corpusSource struct {
	q *db.Queries
}

func (s *corpusSource) ListScriptFacts(ctx context.Context) ([]patterns.ScriptFacts, error) {
	scripts, err := s.q.ListScripts(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*patterns.ScriptFacts, len(scripts))
	ordered := make([]int64, 0, len(scripts))
	for _, script := range scripts {
		byID[script.ID] = &patterns.ScriptFacts{
			ID:         script.ID,
			Rating:     script.Rating,
			PageCount:  int(script.PageCount),
			SceneCount: int(script.SceneCount),
			ToneCounts: make(map[string]int),
			BeatPages:  make(map[string]int),
			Genres:     script.Genres,
		}
		ordered = append(ordered, script.ID)
	}

	characterFacts, err := s.q.ListCharacterFacts(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range characterFacts {
		if facts, ok := byID[row.ScriptID]; ok {
			facts.CharacterCount = int(row.CharacterCount)
			facts.Archetypes = row.Archetypes
		}
	}

	dialogueFacts, err := s.q.ListDialogueFacts(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range dialogueFacts {
		if facts, ok := byID[row.ScriptID]; ok {
			facts.DialogueLineCount = int(row.LineCount)
			facts.DialogueWordCount = int(row.WordCount)
		}
	}

	toneCounts, err := s.q.ListToneCounts(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range toneCounts {
		if facts, ok := byID[row.ScriptID]; ok {
			facts.ToneCounts[row.Tone] = int(row.LineCount)
		}
	}

	beatPages, err := s.q.ListBeatPages(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range beatPages {
		if facts, ok := byID[row.ScriptID]; ok {
			facts.BeatPages[row.BeatType] = int(row.Page)
		}
	}

	castFacts, err := s.q.ListCastFacts(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range castFacts {
		if facts, ok := byID[row.ScriptID]; ok {
			facts.CastCount = int(row.CastCount)
			facts.AwardCastCount = int(row.AwardCastCount)
		}
	}

	out := make([]patterns.ScriptFacts, 0, len(ordered))
	for _, id := range ordered {
		out = append(out, *byID[id])
	}
	return out, nil
}
