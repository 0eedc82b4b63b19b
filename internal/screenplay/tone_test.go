package screenplay

import "testing"

func TestClassifyTone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"exclamation", "Get out of here!", "intense"},
		{"yelling word", "He was yelling at me.", "intense"},
		{"question", "Where did you go?", "questioning"},
		{"ellipsis", "I just... I can't.", "hesitant"},
		{"em dash", "It was — I mean, maybe.", "hesitant"},
		{"profanity", "Damn right it was.", "aggressive"},
		{"tender", "I love the way you did that.", "tender"},
		{"laughter", "Ha, good one.", "humorous"},
		{"neutral", "The train leaves at noon.", "neutral"},
		{"empty", "", "neutral"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyTone(tt.text); got != tt.want {
				t.Fatalf("ClassifyTone(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyTone_PriorityOrder(t *testing.T) {
	// Multiple cues resolve to the earliest-listed rule: exclamation is
	// checked before the question mark, so "intense" always wins.
	got := ClassifyTone("What are you doing?!")
	if got != "intense" {
		t.Fatalf("expected intense for combined !?, got %q", got)
	}

	// A question containing profanity is still questioning: the question
	// rule sits above the profanity rule.
	got = ClassifyTone("What the hell was that?")
	if got != "questioning" {
		t.Fatalf("expected questioning, got %q", got)
	}
}

func TestClassifyTone_Deterministic(t *testing.T) {
	line := "Why would you do that... you know I care?"
	first := ClassifyTone(line)
	for i := 0; i < 10; i++ {
		if got := ClassifyTone(line); got != first {
			t.Fatalf("classification not deterministic: %q then %q", first, got)
		}
	}
}

func TestClassifyTone_WordBoundaries(t *testing.T) {
	// "that" contains "ha" but must not read as laughter.
	if got := ClassifyTone("She said that."); got != "neutral" {
		t.Fatalf("substring match leaked through word boundary: got %q", got)
	}
}
