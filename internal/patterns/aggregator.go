package patterns

import (
	"context"
	"fmt"
	"math"
	"sort"
)

// Config carries the aggregator's tunable constants.
type Config struct {
	// SuccessThreshold splits the corpus into the successful and
	// unsuccessful cohorts by rating.
	SuccessThreshold float64
	// TopGenres caps how many genres produce genre patterns.
	TopGenres int
}

// DefaultConfig returns the production aggregator configuration.
func DefaultConfig() Config {
	return Config{
		SuccessThreshold: 7.0,
		TopGenres:        5,
	}
}

// ScriptFacts is the per-script aggregate the corpus source supplies. All
// counts are scene/dialogue/beat rollups of one parsed script.
type ScriptFacts struct {
	ID                int64
	Rating            float64
	PageCount         int
	SceneCount        int
	CharacterCount    int
	DialogueLineCount int
	DialogueWordCount int
	ToneCounts        map[string]int
	BeatPages         map[string]int
	Genres            []string
	Archetypes        []string
	CastCount         int
	AwardCastCount    int
}

// CorpusSource supplies per-script facts. The production implementation
// reads PostgreSQL; tests use an in-memory fake.
type CorpusSource interface {
	ListScriptFacts(ctx context.Context) ([]ScriptFacts, error)
}

// LearnedPattern is one derived corpus-wide observation. Patterns are
// recomputed wholesale on every run and upserted by (Type, Name).
type LearnedPattern struct {
	Type              string  `json:"pattern_type"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Correlation       float64 `json:"correlation"`
	SuccessfulCount   int     `json:"successful_count"`
	UnsuccessfulCount int     `json:"unsuccessful_count"`
}

// Aggregator computes descriptive statistics over the parsed corpus, split
// into successful and unsuccessful cohorts.
type Aggregator struct {
	source CorpusSource
	cfg    Config
}

// NewAggregator returns an Aggregator reading corpus facts from source.
func NewAggregator(source CorpusSource, cfg Config) *Aggregator {
	return &Aggregator{source: source, cfg: cfg}
}

// Run recomputes every pattern category. Categories with zero input rows
// contribute nothing; the run itself only fails when the source does. The
// output is deterministic for an unchanged corpus, so repeated runs upsert
// identical values.
func (a *Aggregator) Run(ctx context.Context) ([]LearnedPattern, error) {
	facts, err := a.source.ListScriptFacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing script facts: %w", err)
	}

	var success, failure []ScriptFacts
	for _, f := range facts {
		if f.Rating >= a.cfg.SuccessThreshold {
			success = append(success, f)
		} else {
			failure = append(failure, f)
		}
	}

	var out []LearnedPattern
	out = append(out, a.structurePatterns(success, failure)...)
	out = append(out, a.dialoguePatterns(success, failure)...)
	out = append(out, a.characterPatterns(success, failure)...)
	out = append(out, a.beatTimingPatterns(success, failure)...)
	out = append(out, a.genrePatterns(facts)...)
	out = append(out, a.castingPatterns(facts)...)
	return out, nil
}

// normalizedGap is the bounded correlation proxy used throughout:
// min(1, |a-b| / ((a+b)/2)). It is deliberately not a statistical
// correlation; keep it as-is so outputs stay reproducible.
func normalizedGap(a, b float64) float64 {
	avg := (a + b) / 2
	if avg == 0 {
		return 0
	}
	return math.Min(1, math.Abs(a-b)/avg)
}

func mean(facts []ScriptFacts, pick func(ScriptFacts) float64) float64 {
	if len(facts) == 0 {
		return 0
	}
	sum := 0.0
	for _, f := range facts {
		sum += pick(f)
	}
	return sum / float64(len(facts))
}

func (a *Aggregator) structurePatterns(success, failure []ScriptFacts) []LearnedPattern {
	if len(success) == 0 {
		return nil
	}

	sceneS := mean(success, func(f ScriptFacts) float64 { return float64(f.SceneCount) })
	sceneU := mean(failure, func(f ScriptFacts) float64 { return float64(f.SceneCount) })
	pageS := mean(success, func(f ScriptFacts) float64 { return float64(f.PageCount) })
	pageU := mean(failure, func(f ScriptFacts) float64 { return float64(f.PageCount) })

	return []LearnedPattern{
		{
			Type:              "structure",
			Name:              "average_scene_count",
			Description:       fmt.Sprintf("Successful scripts average %.1f scenes (unsuccessful: %.1f).", sceneS, sceneU),
			Correlation:       normalizedGap(sceneS, sceneU),
			SuccessfulCount:   len(success),
			UnsuccessfulCount: len(failure),
		},
		{
			Type:              "structure",
			Name:              "average_page_count",
			Description:       fmt.Sprintf("Successful scripts average %.1f pages (unsuccessful: %.1f).", pageS, pageU),
			Correlation:       normalizedGap(pageS, pageU),
			SuccessfulCount:   len(success),
			UnsuccessfulCount: len(failure),
		},
	}
}

func (a *Aggregator) dialoguePatterns(success, failure []ScriptFacts) []LearnedPattern {
	withDialogue := func(facts []ScriptFacts) []ScriptFacts {
		var out []ScriptFacts
		for _, f := range facts {
			if f.DialogueLineCount > 0 {
				out = append(out, f)
			}
		}
		return out
	}
	succ := withDialogue(success)
	fail := withDialogue(failure)
	if len(succ) == 0 {
		return nil
	}

	wordsPerLine := func(facts []ScriptFacts) float64 {
		lines, words := 0, 0
		for _, f := range facts {
			lines += f.DialogueLineCount
			words += f.DialogueWordCount
		}
		if lines == 0 {
			return 0
		}
		return float64(words) / float64(lines)
	}
	wplS := wordsPerLine(succ)
	wplU := wordsPerLine(fail)

	out := []LearnedPattern{{
		Type:              "dialogue",
		Name:              "average_words_per_line",
		Description:       fmt.Sprintf("Successful scripts average %.1f words per dialogue line (unsuccessful: %.1f).", wplS, wplU),
		Correlation:       normalizedGap(wplS, wplU),
		SuccessfulCount:   len(succ),
		UnsuccessfulCount: len(fail),
	}}

	tone, shareS := dominantTone(succ)
	if tone != "" {
		_, shareU := toneShare(fail, tone)
		out = append(out, LearnedPattern{
			Type:              "dialogue",
			Name:              "dominant_tone",
			Description:       fmt.Sprintf("The dominant dialogue tone in successful scripts is %q (%.0f%% of lines).", tone, shareS*100),
			Correlation:       normalizedGap(shareS, shareU),
			SuccessfulCount:   len(succ),
			UnsuccessfulCount: len(fail),
		})
	}

	return out
}

// dominantTone returns the most frequent tone across the cohort and its
// share of all dialogue lines. Ties resolve alphabetically so repeated runs
// stay identical.
func dominantTone(facts []ScriptFacts) (string, float64) {
	totals := make(map[string]int)
	lines := 0
	for _, f := range facts {
		for tone, n := range f.ToneCounts {
			totals[tone] += n
			lines += n
		}
	}
	if lines == 0 {
		return "", 0
	}

	tones := make([]string, 0, len(totals))
	for tone := range totals {
		tones = append(tones, tone)
	}
	sort.Strings(tones)

	best := ""
	bestCount := -1
	for _, tone := range tones {
		if totals[tone] > bestCount {
			best = tone
			bestCount = totals[tone]
		}
	}
	return best, float64(bestCount) / float64(lines)
}

func toneShare(facts []ScriptFacts, tone string) (int, float64) {
	count, lines := 0, 0
	for _, f := range facts {
		count += f.ToneCounts[tone]
		for _, n := range f.ToneCounts {
			lines += n
		}
	}
	if lines == 0 {
		return 0, 0
	}
	return count, float64(count) / float64(lines)
}

func (a *Aggregator) characterPatterns(success, failure []ScriptFacts) []LearnedPattern {
	if len(success) == 0 {
		return nil
	}

	charS := mean(success, func(f ScriptFacts) float64 { return float64(f.CharacterCount) })
	charU := mean(failure, func(f ScriptFacts) float64 { return float64(f.CharacterCount) })

	out := []LearnedPattern{{
		Type:              "character",
		Name:              "average_character_count",
		Description:       fmt.Sprintf("Successful scripts average %.1f named characters (unsuccessful: %.1f).", charS, charU),
		Correlation:       normalizedGap(charS, charU),
		SuccessfulCount:   len(success),
		UnsuccessfulCount: len(failure),
	}}

	archetypes := make(map[string]int)
	for _, f := range success {
		for _, arch := range f.Archetypes {
			archetypes[arch]++
		}
	}
	if len(archetypes) > 0 {
		names := make([]string, 0, len(archetypes))
		for n := range archetypes {
			names = append(names, n)
		}
		sort.Strings(names)
		best := names[0]
		for _, n := range names {
			if archetypes[n] > archetypes[best] {
				best = n
			}
		}
		out = append(out, LearnedPattern{
			Type:              "character",
			Name:              "dominant_archetype",
			Description:       fmt.Sprintf("The most frequent character archetype in successful scripts is %q (%d occurrences).", best, archetypes[best]),
			Correlation:       math.Min(1, float64(archetypes[best])/float64(len(success))),
			SuccessfulCount:   len(success),
			UnsuccessfulCount: len(failure),
		})
	}

	return out
}

// beatTimingPatterns emits one pattern per beat type detected in the
// successful cohort, carrying the average page the beat lands on.
func (a *Aggregator) beatTimingPatterns(success, failure []ScriptFacts) []LearnedPattern {
	type pageAcc struct {
		sum   int
		count int
	}
	accumulate := func(facts []ScriptFacts) map[string]*pageAcc {
		acc := make(map[string]*pageAcc)
		for _, f := range facts {
			for beat, page := range f.BeatPages {
				if acc[beat] == nil {
					acc[beat] = &pageAcc{}
				}
				acc[beat].sum += page
				acc[beat].count++
			}
		}
		return acc
	}

	succ := accumulate(success)
	if len(succ) == 0 {
		return nil
	}
	fail := accumulate(failure)

	beats := make([]string, 0, len(succ))
	for beat := range succ {
		beats = append(beats, beat)
	}
	sort.Strings(beats)

	var out []LearnedPattern
	for _, beat := range beats {
		s := succ[beat]
		avgS := float64(s.sum) / float64(s.count)
		avgU := 0.0
		failCount := 0
		if f, ok := fail[beat]; ok {
			avgU = float64(f.sum) / float64(f.count)
			failCount = f.count
		}
		out = append(out, LearnedPattern{
			Type:              "beat_timing",
			Name:              beat,
			Description:       fmt.Sprintf("In successful scripts the %q beat lands on page %.1f on average.", beat, avgS),
			Correlation:       normalizedGap(avgS, avgU),
			SuccessfulCount:   s.count,
			UnsuccessfulCount: failCount,
		})
	}
	return out
}

// genrePatterns emits one pattern per top genre by corpus frequency, with
// the genre's average rating against the corpus average.
func (a *Aggregator) genrePatterns(facts []ScriptFacts) []LearnedPattern {
	type genreAcc struct {
		count      int
		ratingSum  float64
		successful int
	}
	acc := make(map[string]*genreAcc)
	corpusRating := 0.0
	for _, f := range facts {
		corpusRating += f.Rating
		for _, g := range f.Genres {
			if acc[g] == nil {
				acc[g] = &genreAcc{}
			}
			acc[g].count++
			acc[g].ratingSum += f.Rating
			if f.Rating >= a.cfg.SuccessThreshold {
				acc[g].successful++
			}
		}
	}
	if len(acc) == 0 {
		return nil
	}
	corpusAvg := corpusRating / float64(len(facts))

	genres := make([]string, 0, len(acc))
	for g := range acc {
		genres = append(genres, g)
	}
	// Frequency descending, name ascending on ties.
	sort.Slice(genres, func(i, j int) bool {
		if acc[genres[i]].count != acc[genres[j]].count {
			return acc[genres[i]].count > acc[genres[j]].count
		}
		return genres[i] < genres[j]
	})
	if len(genres) > a.cfg.TopGenres {
		genres = genres[:a.cfg.TopGenres]
	}

	var out []LearnedPattern
	for _, g := range genres {
		ga := acc[g]
		avg := ga.ratingSum / float64(ga.count)
		out = append(out, LearnedPattern{
			Type:              "genre",
			Name:              g,
			Description:       fmt.Sprintf("%d %s scripts average a %.1f rating (corpus average: %.1f).", ga.count, g, avg, corpusAvg),
			Correlation:       normalizedGap(avg, corpusAvg),
			SuccessfulCount:   ga.successful,
			UnsuccessfulCount: ga.count - ga.successful,
		})
	}
	return out
}

// castingPatterns compares ratings of scripts with award-tagged cast against
// the rest. Skipped entirely when no script carries cast data.
func (a *Aggregator) castingPatterns(facts []ScriptFacts) []LearnedPattern {
	var awarded, plain []ScriptFacts
	hasCastData := false
	for _, f := range facts {
		if f.CastCount > 0 {
			hasCastData = true
		}
		if f.AwardCastCount > 0 {
			awarded = append(awarded, f)
		} else if f.CastCount > 0 {
			plain = append(plain, f)
		}
	}
	if !hasCastData || len(awarded) == 0 {
		return nil
	}

	avgA := mean(awarded, func(f ScriptFacts) float64 { return f.Rating })
	avgP := mean(plain, func(f ScriptFacts) float64 { return f.Rating })

	return []LearnedPattern{{
		Type:              "casting",
		Name:              "award_cast_rating",
		Description:       fmt.Sprintf("Scripts with award-tagged cast average a %.1f rating (others with cast data: %.1f).", avgA, avgP),
		Correlation:       normalizedGap(avgA, avgP),
		SuccessfulCount:   len(awarded),
		UnsuccessfulCount: len(plain),
	}}
}
