package screenplay

import (
	"strings"
	"testing"
)

const sampleScript = `FADE IN:

Some opening text before any scene heading.

INT. KITCHEN - DAY

JOHN
Hello there!
How are you?

Mary walks in and sits down.

MARY
Fine...

EXT. GARDEN - NIGHT

The garden is empty.

INT. BEDROOM

JOHN
Good night.
`

func TestParse_SceneSegmentation(t *testing.T) {
	analysis := Parse(sampleScript, DefaultConfig())

	if len(analysis.Scenes) != 3 {
		t.Fatalf("expected 3 scenes, got %d", len(analysis.Scenes))
	}

	for i, s := range analysis.Scenes {
		if s.Number != i+1 {
			t.Fatalf("scene %d: expected number %d, got %d", i, i+1, s.Number)
		}
		if s.PageStart > s.PageEnd {
			t.Fatalf("scene %d: page_start %d > page_end %d", s.Number, s.PageStart, s.PageEnd)
		}
		if s.DialogueRatio < 0 || s.DialogueRatio >= 1 {
			t.Fatalf("scene %d: dialogue_ratio %f outside [0,1)", s.Number, s.DialogueRatio)
		}
	}

	first := analysis.Scenes[0]
	if first.Type != "interior" || first.Location != "KITCHEN" || first.TimeOfDay != "DAY" {
		t.Fatalf("unexpected first scene heading parse: %+v", first)
	}
	if first.DialogueLines != 3 {
		t.Fatalf("expected 3 dialogue lines in first scene, got %d", first.DialogueLines)
	}
	if first.ActionLines != 1 {
		t.Fatalf("expected 1 action line in first scene, got %d", first.ActionLines)
	}

	second := analysis.Scenes[1]
	if second.Type != "exterior" || second.Location != "GARDEN" || second.TimeOfDay != "NIGHT" {
		t.Fatalf("unexpected second scene heading parse: %+v", second)
	}
	if second.DialogueLines != 0 {
		t.Fatalf("scene without dialogue must still be valid, got %d dialogue lines", second.DialogueLines)
	}
}

func TestParse_MalformedHeadingDefaults(t *testing.T) {
	analysis := Parse(sampleScript, DefaultConfig())

	// "INT. BEDROOM" has no "- TIME" suffix: the scene is still created
	// with defaulted location and time.
	third := analysis.Scenes[2]
	if third.Location != "UNKNOWN" {
		t.Fatalf("expected defaulted location UNKNOWN, got %q", third.Location)
	}
	if third.TimeOfDay != "DAY" {
		t.Fatalf("expected defaulted time DAY, got %q", third.TimeOfDay)
	}
}

func TestParse_PreambleDiscarded(t *testing.T) {
	analysis := Parse(sampleScript, DefaultConfig())

	for _, s := range analysis.Scenes {
		if strings.Contains(s.Content, "opening text before") {
			t.Fatalf("text before the first heading must not attach to any scene")
		}
	}
}

func TestParse_SceneCountMatchesHeadings(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"empty input", "", 0},
		{"no headings", "just some text\nand more text", 0},
		{"single heading", "INT. LAB - NIGHT\naction", 1},
		{"lowercase heading", "int. lab - night\naction", 1},
		{"three headings", "INT. A - DAY\nx\nEXT. B - NIGHT\ny\nINT. C - DAWN\nz", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := Parse(tt.raw, DefaultConfig())
			if len(analysis.Scenes) != tt.want {
				t.Fatalf("expected %d scenes, got %d", tt.want, len(analysis.Scenes))
			}
		})
	}
}

func TestParse_DialogueAttribution(t *testing.T) {
	analysis := Parse(sampleScript, DefaultConfig())

	if len(analysis.Dialogue) != 4 {
		t.Fatalf("expected 4 dialogue lines, got %d", len(analysis.Dialogue))
	}

	first := analysis.Dialogue[0]
	if first.Character != "JOHN" || first.Text != "Hello there!" {
		t.Fatalf("unexpected first dialogue line: %+v", first)
	}
	if first.WordCount != 2 {
		t.Fatalf("expected word count 2, got %d", first.WordCount)
	}
	if first.Tone != "intense" {
		t.Fatalf("expected intense tone for exclamation, got %q", first.Tone)
	}

	if analysis.Dialogue[2].Character != "MARY" {
		t.Fatalf("expected third dialogue line attributed to MARY, got %q", analysis.Dialogue[2].Character)
	}
	if analysis.Dialogue[2].Tone != "hesitant" {
		t.Fatalf("expected hesitant tone for ellipsis, got %q", analysis.Dialogue[2].Tone)
	}
}

func TestParse_TransitionsNeverDialogue(t *testing.T) {
	raw := "INT. HALL - DAY\n\nJOHN\nHello.\nCUT TO:\nFADE OUT.\n"
	analysis := Parse(raw, DefaultConfig())

	for _, d := range analysis.Dialogue {
		if strings.HasPrefix(d.Text, "CUT") || strings.HasPrefix(d.Text, "FADE") {
			t.Fatalf("transition directive misattributed as dialogue: %q", d.Text)
		}
	}
	if len(analysis.Dialogue) != 1 {
		t.Fatalf("expected exactly 1 dialogue line, got %d", len(analysis.Dialogue))
	}
}

func TestParse_CharacterRegistry(t *testing.T) {
	analysis := Parse(sampleScript, DefaultConfig())

	if len(analysis.Characters) != 2 {
		t.Fatalf("expected 2 characters, got %d", len(analysis.Characters))
	}

	byName := make(map[string]Character)
	for _, c := range analysis.Characters {
		byName[c.Name] = c
	}

	john, ok := byName["JOHN"]
	if !ok {
		t.Fatal("expected JOHN in registry")
	}
	if len(john.SceneNumbers) != 2 {
		t.Fatalf("expected JOHN in 2 scenes, got %v", john.SceneNumbers)
	}
	if john.FirstAppearancePage != 1 {
		t.Fatalf("expected first appearance on page 1, got %d", john.FirstAppearancePage)
	}

	mary, ok := byName["MARY"]
	if !ok {
		t.Fatal("expected MARY in registry")
	}
	if len(mary.SceneNumbers) != 1 || mary.SceneNumbers[0] != 1 {
		t.Fatalf("expected MARY only in scene 1, got %v", mary.SceneNumbers)
	}
}

func TestParse_PageCounter(t *testing.T) {
	// 130 lines at 60 lines/page lands on page 3.
	var b strings.Builder
	b.WriteString("INT. LAB - DAY\n")
	for i := 0; i < 129; i++ {
		b.WriteString("action line\n")
	}
	analysis := Parse(b.String(), DefaultConfig())

	if analysis.PageCount != 3 {
		t.Fatalf("expected 3 pages, got %d", analysis.PageCount)
	}
	if analysis.Scenes[0].PageEnd != 3 {
		t.Fatalf("expected scene to close on page 3, got %d", analysis.Scenes[0].PageEnd)
	}
}

func TestIsCharacterCue(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		line string
		want bool
	}{
		{"JOHN", true},
		{"MARY SUE", true},
		{"JOHN (CONT'D)", false}, // parentheses fail the cue pattern
		{"John", false},
		{"A", false},
		{"INT. KITCHEN - DAY", false},
		{"THIS IS A VERY LONG LINE THAT EXCEEDS THE CUE CUTOFF", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := isCharacterCue(tt.line, cfg.CueMaxLen); got != tt.want {
				t.Fatalf("isCharacterCue(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}
