package screenplay

import (
	"regexp"
	"strings"
)

var (
	cueRe     = regexp.MustCompile(`^[A-Z][A-Z\s]{2,}$`)
	headingRe = regexp.MustCompile(`(?i)^(INT\.|EXT\.)\s*(.*?)\s*-\s*(DAY|NIGHT|DAWN|DUSK|CONTINUOUS)\s*$`)
)

// transitionPrefixes are never dialogue, even with an active speaker.
var transitionPrefixes = []string{"INT.", "EXT.", "FADE", "CUT"}

// isSceneHeading reports whether the line opens a new scene.
func isSceneHeading(line string) bool {
	upper := strings.ToUpper(strings.TrimSpace(line))
	return strings.HasPrefix(upper, "INT.") || strings.HasPrefix(upper, "EXT.")
}

// isCharacterCue reports whether the line names the speaker of the
// following dialogue: short and entirely upper-case letters and spaces.
func isCharacterCue(line string, maxLen int) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) >= maxLen {
		return false
	}
	if isSceneHeading(trimmed) {
		return false
	}
	return cueRe.MatchString(trimmed)
}

// isTransition reports whether the line is a scene-transition directive.
func isTransition(line string) bool {
	upper := strings.ToUpper(strings.TrimSpace(line))
	for _, p := range transitionPrefixes {
		if strings.HasPrefix(upper, p) {
			return true
		}
	}
	return false
}

// parseHeading extracts scene type, location and time-of-day from a scene
// heading. A heading that does not match the expected
// "(INT.|EXT.) <location> - <TIME>" shape still produces a scene; the
// location and time fall back to the configured defaults.
func parseHeading(line string, cfg Config) (sceneType, location, timeOfDay string) {
	trimmed := strings.TrimSpace(line)

	sceneType = "interior"
	if strings.HasPrefix(strings.ToUpper(trimmed), "EXT.") {
		sceneType = "exterior"
	}

	m := headingRe.FindStringSubmatch(trimmed)
	if m == nil {
		return sceneType, cfg.DefaultLocation, cfg.DefaultTime
	}

	location = strings.TrimSpace(m[2])
	if location == "" {
		location = cfg.DefaultLocation
	}
	timeOfDay = strings.ToUpper(m[3])
	return sceneType, location, timeOfDay
}
