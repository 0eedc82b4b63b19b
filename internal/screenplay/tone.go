package screenplay

import (
	"regexp"
	"strings"
)

// toneRule is one entry in the ordered tone table. Rules are evaluated top
// to bottom and the first match wins, so a line containing several cues
// always resolves to the earliest-listed label.
type toneRule struct {
	label string
	match func(text, lower string) bool
}

func wordMatcher(words ...string) *regexp.Regexp {
	return regexp.MustCompile(`\b(` + strings.Join(words, "|") + `)\b`)
}

var (
	intenseWords    = wordMatcher("yell", "yells", "yelling", "shout", "shouts", "shouting", "scream", "screams", "screaming")
	aggressiveWords = wordMatcher("damn", "dammit", "hell", "shit", "fuck", "fucking", "bastard")
	tenderWords     = wordMatcher("love", "loves", "care", "cares", "sweet", "sweetheart")
	humorousWords   = wordMatcher("ha", "haha", "heh", "funny", "hilarious")
)

// toneRules: punctuation checks are case-sensitive, word checks run on the
// lowercased line.
var toneRules = []toneRule{
	{"intense", func(text, lower string) bool {
		return strings.Contains(text, "!") || intenseWords.MatchString(lower)
	}},
	{"questioning", func(text, lower string) bool {
		return strings.Contains(text, "?")
	}},
	{"hesitant", func(text, lower string) bool {
		return strings.Contains(text, "...") || strings.Contains(text, "—")
	}},
	{"aggressive", func(text, lower string) bool {
		return aggressiveWords.MatchString(lower)
	}},
	{"tender", func(text, lower string) bool {
		return tenderWords.MatchString(lower)
	}},
	{"humorous", func(text, lower string) bool {
		return humorousWords.MatchString(lower)
	}},
}

// ClassifyTone assigns a single tone label to one line of dialogue from the
// closed set {intense, questioning, hesitant, aggressive, tender, humorous,
// neutral}.
func ClassifyTone(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range toneRules {
		if rule.match(text, lower) {
			return rule.label
		}
	}
	return "neutral"
}
