package patterns

import (
	"context"
	"math"
	"reflect"
	"strings"
	"testing"
)

type fakeCorpus struct {
	facts []ScriptFacts
}

func (f *fakeCorpus) ListScriptFacts(ctx context.Context) ([]ScriptFacts, error) {
	return f.facts, nil
}

func testFacts() []ScriptFacts {
	return []ScriptFacts{
		{
			ID: 1, Rating: 8.0, PageCount: 110, SceneCount: 40, CharacterCount: 12,
			DialogueLineCount: 500, DialogueWordCount: 4000,
			ToneCounts: map[string]int{"neutral": 300, "intense": 150, "questioning": 50},
			BeatPages:  map[string]int{"Midpoint": 58, "Climax": 98},
			Genres:     []string{"Action", "Thriller"},
			CastCount:  8, AwardCastCount: 2,
		},
		{
			ID: 2, Rating: 7.4, PageCount: 118, SceneCount: 48, CharacterCount: 16,
			DialogueLineCount: 620, DialogueWordCount: 5400,
			ToneCounts: map[string]int{"neutral": 400, "tender": 120, "intense": 100},
			BeatPages:  map[string]int{"Midpoint": 62},
			Genres:     []string{"Action"},
			CastCount:  10, AwardCastCount: 0,
		},
		{
			ID: 3, Rating: 5.1, PageCount: 95, SceneCount: 30, CharacterCount: 8,
			DialogueLineCount: 300, DialogueWordCount: 2100,
			ToneCounts: map[string]int{"neutral": 200, "aggressive": 100},
			BeatPages:  map[string]int{"Midpoint": 45},
			Genres:     []string{"Horror"},
			CastCount:  5, AwardCastCount: 0,
		},
	}
}

func patternsByKey(list []LearnedPattern) map[string]LearnedPattern {
	out := make(map[string]LearnedPattern, len(list))
	for _, p := range list {
		out[p.Type+"/"+p.Name] = p
	}
	return out
}

func TestRun_AllCategoriesPresent(t *testing.T) {
	agg := NewAggregator(&fakeCorpus{facts: testFacts()}, DefaultConfig())

	got, err := agg.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byKey := patternsByKey(got)
	wantKeys := []string{
		"structure/average_scene_count",
		"structure/average_page_count",
		"dialogue/average_words_per_line",
		"dialogue/dominant_tone",
		"character/average_character_count",
		"beat_timing/Midpoint",
		"beat_timing/Climax",
		"genre/Action",
		"genre/Horror",
		"genre/Thriller",
		"casting/award_cast_rating",
	}
	for _, k := range wantKeys {
		if _, ok := byKey[k]; !ok {
			t.Fatalf("missing pattern %s in %v", k, got)
		}
	}

	for _, p := range got {
		if p.Correlation < 0 || p.Correlation > 1 {
			t.Fatalf("correlation outside [0,1] for %s/%s: %f", p.Type, p.Name, p.Correlation)
		}
	}
}

func TestRun_StructureMeans(t *testing.T) {
	agg := NewAggregator(&fakeCorpus{facts: testFacts()}, DefaultConfig())

	got, err := agg.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := patternsByKey(got)["structure/average_scene_count"]

	if p.SuccessfulCount != 2 || p.UnsuccessfulCount != 1 {
		t.Fatalf("unexpected cohort sizes: %+v", p)
	}
	// Successful mean 44, unsuccessful 30: gap = 14/37.
	want := math.Min(1, 14.0/37.0)
	if math.Abs(p.Correlation-want) > 1e-12 {
		t.Fatalf("expected correlation %v, got %v", want, p.Correlation)
	}
}

func TestRun_DominantTone(t *testing.T) {
	agg := NewAggregator(&fakeCorpus{facts: testFacts()}, DefaultConfig())

	got, err := agg.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, ok := patternsByKey(got)["dialogue/dominant_tone"]
	if !ok {
		t.Fatal("expected dominant_tone pattern")
	}
	if !strings.Contains(p.Description, "neutral") {
		t.Fatalf("expected neutral as dominant tone, got %q", p.Description)
	}
}

func TestRun_Idempotent(t *testing.T) {
	agg := NewAggregator(&fakeCorpus{facts: testFacts()}, DefaultConfig())

	first, err := agg.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := agg.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("re-running on an unchanged corpus must produce identical patterns:\n%v\n%v", first, second)
	}
}

func TestRun_EmptyCorpus(t *testing.T) {
	agg := NewAggregator(&fakeCorpus{}, DefaultConfig())

	got, err := agg.Run(context.Background())
	if err != nil {
		t.Fatalf("empty corpus must not fail: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no patterns for empty corpus, got %v", got)
	}
}

func TestRun_SkipsCategoriesWithoutRows(t *testing.T) {
	// One successful script with no dialogue, beats, genres, or cast:
	// only the structure and character categories have input rows.
	facts := []ScriptFacts{{ID: 1, Rating: 8.0, PageCount: 100, SceneCount: 20, CharacterCount: 5}}
	agg := NewAggregator(&fakeCorpus{facts: facts}, DefaultConfig())

	got, err := agg.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, p := range got {
		if p.Type == "dialogue" || p.Type == "beat_timing" || p.Type == "casting" {
			t.Fatalf("category %s must be skipped without input rows", p.Type)
		}
	}
}

func TestRun_TopGenresCapped(t *testing.T) {
	var facts []ScriptFacts
	genres := []string{"Action", "Drama", "Comedy", "Horror", "Thriller", "Western", "Noir"}
	for i, g := range genres {
		facts = append(facts, ScriptFacts{
			ID: int64(i + 1), Rating: 6.0, PageCount: 100, SceneCount: 10, CharacterCount: 4,
			Genres: []string{g},
		})
	}
	// Make Action the most frequent.
	facts = append(facts, ScriptFacts{ID: 99, Rating: 8.0, PageCount: 100, SceneCount: 10, CharacterCount: 4, Genres: []string{"Action"}})

	agg := NewAggregator(&fakeCorpus{facts: facts}, DefaultConfig())
	got, err := agg.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	genreCount := 0
	first := ""
	for _, p := range got {
		if p.Type == "genre" {
			if genreCount == 0 {
				first = p.Name
			}
			genreCount++
		}
	}
	if genreCount != 5 {
		t.Fatalf("expected top-5 genres, got %d", genreCount)
	}
	if first != "Action" {
		t.Fatalf("expected Action first by frequency, got %q", first)
	}
}
