package screenplay

import "testing"

func makeScene(number, pageStart, dialogueLines int) Scene {
	return Scene{
		Number:        number,
		PageStart:     pageStart,
		PageEnd:       pageStart,
		DialogueLines: dialogueLines,
	}
}

func TestDetectBeats_WindowAssignment(t *testing.T) {
	scenes := []Scene{
		makeScene(1, 2, 5),
		makeScene(2, 58, 1),
		makeScene(3, 60, 8),
		makeScene(4, 63, 3),
		makeScene(5, 99, 2),
	}

	beats := DetectBeats(scenes, 100, DefaultBeatWindows())

	byType := make(map[string]StoryBeat)
	for _, b := range beats {
		byType[b.Type] = b
	}

	opening, ok := byType["Opening Image"]
	if !ok {
		t.Fatal("expected Opening Image beat")
	}
	if opening.SceneNumber != 1 || opening.Confidence != 0.5 {
		t.Fatalf("unexpected Opening Image: %+v", opening)
	}

	mid, ok := byType["Midpoint"]
	if !ok {
		t.Fatal("expected Midpoint beat")
	}
	// Scene 3 has the most dialogue lines among the three midpoint
	// candidates.
	if mid.SceneNumber != 3 {
		t.Fatalf("expected scene 3 as midpoint anchor, got %d", mid.SceneNumber)
	}
	if mid.Confidence != 0.7 {
		t.Fatalf("expected 0.7 confidence with multiple candidates, got %f", mid.Confidence)
	}
	if mid.Page != 60 {
		t.Fatalf("expected midpoint page 60, got %d", mid.Page)
	}

	if _, ok := byType["All Is Lost"]; ok {
		t.Fatal("All Is Lost window is empty and must be skipped")
	}
}

func TestDetectBeats_FewerThanSevenIsValid(t *testing.T) {
	scenes := []Scene{makeScene(1, 1, 2)}
	beats := DetectBeats(scenes, 100, DefaultBeatWindows())

	if len(beats) != 1 {
		t.Fatalf("expected a single detected beat, got %d", len(beats))
	}
	if beats[0].Type != "Opening Image" {
		t.Fatalf("expected Opening Image, got %q", beats[0].Type)
	}
}

func TestDetectBeats_TieBreaksByScanOrder(t *testing.T) {
	scenes := []Scene{
		makeScene(1, 58, 4),
		makeScene(2, 62, 4),
	}
	beats := DetectBeats(scenes, 100, DefaultBeatWindows())

	if len(beats) != 1 {
		t.Fatalf("expected one beat, got %d", len(beats))
	}
	if beats[0].SceneNumber != 1 {
		t.Fatalf("tie must resolve to the first scanned scene, got %d", beats[0].SceneNumber)
	}
}

func TestDetectBeats_OrderFollowsTemplateTable(t *testing.T) {
	scenes := []Scene{
		makeScene(1, 2, 1),
		makeScene(2, 25, 1),
		makeScene(3, 60, 1),
		makeScene(4, 90, 1),
		makeScene(5, 98, 1),
	}
	beats := DetectBeats(scenes, 100, DefaultBeatWindows())

	want := []string{"Opening Image", "End of Act 1", "Midpoint", "Climax", "Resolution"}
	if len(beats) != len(want) {
		t.Fatalf("expected %d beats, got %d: %+v", len(want), len(beats), beats)
	}
	for i, b := range beats {
		if b.Type != want[i] {
			t.Fatalf("beat %d: expected %q, got %q", i, want[i], b.Type)
		}
	}
}

func TestDetectBeats_EmptyInputs(t *testing.T) {
	if beats := DetectBeats(nil, 100, DefaultBeatWindows()); beats != nil {
		t.Fatalf("expected no beats for empty scene list, got %+v", beats)
	}
	if beats := DetectBeats([]Scene{makeScene(1, 1, 0)}, 0, DefaultBeatWindows()); beats != nil {
		t.Fatalf("expected no beats for zero pages, got %+v", beats)
	}
}
