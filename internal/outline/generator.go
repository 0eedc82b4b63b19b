package outline

import (
	"context"
	"fmt"
	"math"
)

// Config carries the tunable constants of the generator.
type Config struct {
	// RatingFloor is the minimum rating a corpus script needs to count as
	// a comparable.
	RatingFloor float64
	// MaxComparables caps how many top-rated comparables inform the
	// structure.
	MaxComparables int
	// DefaultTotalPages is used when neither comparables nor a caller
	// target length exist.
	DefaultTotalPages int
	// DefaultProbability is the success estimate without comparable data.
	DefaultProbability float64
	// ProbabilityCeiling clips the comparable-derived estimate.
	ProbabilityCeiling float64
}

// DefaultConfig returns the production generator configuration.
func DefaultConfig() Config {
	return Config{
		RatingFloor:        7.0,
		MaxComparables:     10,
		DefaultTotalPages:  110,
		DefaultProbability: 0.65,
		ProbabilityCeiling: 0.95,
	}
}

// Comparable is one corpus script used as a structural reference.
type Comparable struct {
	ID        int64
	Title     string
	Rating    float64
	PageCount int
}

// ComparableSource supplies corpus data to the generator. The production
// implementation reads PostgreSQL; tests use an in-memory fake.
type ComparableSource interface {
	// ListComparables returns scripts tagged with the genre and rated at
	// or above minRating, best-rated first, at most limit entries.
	ListComparables(ctx context.Context, genre string, minRating float64, limit int) ([]Comparable, error)
	// BeatPageAverages returns the mean detected page per beat type
	// across the given scripts. Beat types with no rows are absent.
	BeatPageAverages(ctx context.Context, scriptIDs []int64) (map[string]float64, error)
}

// ValidationError reports a missing required caller input. It is the only
// hard failure the generator produces; an empty corpus degrades to defaults
// instead.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// Structure holds the five milestone page numbers of the outline.
type Structure struct {
	Act1End       int `json:"act1End"`
	Act2aMidpoint int `json:"act2aMidpoint"`
	Act2bEnd      int `json:"act2bEnd"`
	Act3End       int `json:"act3End"`
	TotalPages    int `json:"totalPages"`
}

// Prediction is the heuristic success estimate. The formula is fixed:
// min(ceiling, mean comparable rating / 10), confidence "high" above 0.75,
// "medium" above 0.65, else "low".
type Prediction struct {
	Probability float64 `json:"probability"`
	Confidence  string  `json:"confidence"`
	Reasoning   string  `json:"reasoning"`
}

// Beat is one templated outline beat with its computed page.
type Beat struct {
	Name        string `json:"name"`
	Page        int    `json:"page"`
	Description string `json:"description"`
}

// Act is one of the four outline acts.
type Act struct {
	Name  string `json:"name"`
	Beats []Beat `json:"beats"`
}

// Outline is the full generator output.
type Outline struct {
	Premise         string     `json:"premise"`
	Genre           string     `json:"genre"`
	Acts            []Act      `json:"acts"`
	Structure       Structure  `json:"structure"`
	Prediction      Prediction `json:"prediction"`
	Recommendations []string   `json:"recommendations"`
}

// Generator synthesizes three-act outlines from the beat catalog and the
// comparable corpus.
type Generator struct {
	source ComparableSource
	cfg    Config
}

// NewGenerator returns a Generator reading corpus data from source.
func NewGenerator(source ComparableSource, cfg Config) *Generator {
	return &Generator{source: source, cfg: cfg}
}

// Generate produces an outline for the premise/genre pair. targetLength <= 0
// means no caller override; the page structure then follows the comparables,
// falling back to the configured default length.
func (g *Generator) Generate(ctx context.Context, premise, genre string, targetLength int) (*Outline, error) {
	if premise == "" {
		return nil, &ValidationError{Field: "premise"}
	}
	if genre == "" {
		return nil, &ValidationError{Field: "genre"}
	}

	comparables, err := g.source.ListComparables(ctx, genre, g.cfg.RatingFloor, g.cfg.MaxComparables)
	if err != nil {
		return nil, fmt.Errorf("listing comparables: %w", err)
	}

	totalPages := g.cfg.DefaultTotalPages
	if len(comparables) > 0 {
		sum := 0
		for _, c := range comparables {
			sum += c.PageCount
		}
		totalPages = int(math.Round(float64(sum) / float64(len(comparables))))
	}
	// An explicit caller target overrides the comparables wholesale.
	if targetLength > 0 {
		totalPages = targetLength
	}

	beatPages := map[string]float64{}
	if len(comparables) > 0 {
		ids := make([]int64, len(comparables))
		for i, c := range comparables {
			ids[i] = c.ID
		}
		beatPages, err = g.source.BeatPageAverages(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("averaging beat pages: %w", err)
		}
	}

	out := &Outline{
		Premise: premise,
		Genre:   genre,
		Structure: Structure{
			Act1End:       int(math.Round(0.25 * float64(totalPages))),
			Act2aMidpoint: int(math.Round(0.50 * float64(totalPages))),
			Act2bEnd:      int(math.Round(0.75 * float64(totalPages))),
			Act3End:       totalPages,
			TotalPages:    totalPages,
		},
		Prediction: g.predict(comparables),
	}

	for _, actTemplate := range ActCatalog {
		act := Act{Name: actTemplate.Name}
		for _, bt := range actTemplate.Beats {
			page := int(math.Round(bt.DefaultPosition * float64(totalPages)))
			if avg, ok := beatPages[bt.Name]; ok {
				page = int(math.Round(avg))
			}
			if page < 1 {
				page = 1
			}
			act.Beats = append(act.Beats, Beat{
				Name:        bt.Name,
				Page:        page,
				Description: bt.Description,
			})
		}
		out.Acts = append(out.Acts, act)
	}

	out.Recommendations = recommendations(genre, totalPages, comparables)
	return out, nil
}

func (g *Generator) predict(comparables []Comparable) Prediction {
	if len(comparables) == 0 {
		return Prediction{
			Probability: g.cfg.DefaultProbability,
			Confidence:  "medium",
			Reasoning:   "No comparable scripts found for this genre; estimate uses the corpus-wide default.",
		}
	}

	sum := 0.0
	for _, c := range comparables {
		sum += c.Rating
	}
	probability := math.Min(g.cfg.ProbabilityCeiling, sum/float64(len(comparables))/10)

	confidence := "low"
	switch {
	case probability > 0.75:
		confidence = "high"
	case probability > 0.65:
		confidence = "medium"
	}

	return Prediction{
		Probability: probability,
		Confidence:  confidence,
		Reasoning:   fmt.Sprintf("Based on %d comparable scripts with a mean rating of %.1f.", len(comparables), sum/float64(len(comparables))),
	}
}

func recommendations(genre string, totalPages int, comparables []Comparable) []string {
	recs := []string{
		fmt.Sprintf("Target a total length of about %d pages for a %s script.", totalPages, genre),
		"Anchor the midpoint as a clear false victory or false defeat; it is the single strongest structural signal in the corpus.",
	}
	if len(comparables) > 0 {
		recs = append(recs, fmt.Sprintf("Study the top comparable, %q (%.1f), for genre-specific pacing.", comparables[0].Title, comparables[0].Rating))
	} else {
		recs = append(recs, "No rated comparables exist for this genre yet; expect the structure to be the generic template.")
	}
	return recs
}
