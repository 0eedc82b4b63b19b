package screenplay

// Config carries the heuristic constants used by the parser. Callers that
// need different behavior pass their own values instead of editing the
// defaults in place.
type Config struct {
	// LinesPerPage is the fixed page-length heuristic. The parser has no
	// real page-break detection; it advances the page counter every
	// LinesPerPage input lines.
	LinesPerPage int

	// CueMaxLen is the exclusive upper bound on the length of a character
	// cue line.
	CueMaxLen int

	// DefaultLocation and DefaultTime are used when a scene heading does
	// not parse. The scene is still created.
	DefaultLocation string
	DefaultTime     string

	// BeatWindows is the ordered beat template table evaluated by
	// DetectBeats. Order matters: it is the output order of the beats.
	BeatWindows []BeatWindow
}

// DefaultConfig returns the parser configuration used in production.
func DefaultConfig() Config {
	return Config{
		LinesPerPage:    60,
		CueMaxLen:       30,
		DefaultLocation: "UNKNOWN",
		DefaultTime:     "DAY",
		BeatWindows:     DefaultBeatWindows(),
	}
}
