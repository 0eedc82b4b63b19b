package screenplay

// BeatWindow is one entry in the ordered beat template table. Start and End
// are fractions of the total estimated page count.
type BeatWindow struct {
	Type  string
	Start float64
	End   float64
}

// DefaultBeatWindows returns the seven-beat template catalog. The Midpoint
// window is 55–65% of the script; the others follow the same three-act
// shape.
func DefaultBeatWindows() []BeatWindow {
	return []BeatWindow{
		{Type: "Opening Image", Start: 0.0, End: 0.10},
		{Type: "Inciting Incident", Start: 0.10, End: 0.20},
		{Type: "End of Act 1", Start: 0.20, End: 0.30},
		{Type: "Midpoint", Start: 0.55, End: 0.65},
		{Type: "All Is Lost", Start: 0.70, End: 0.80},
		{Type: "Climax", Start: 0.85, End: 0.95},
		{Type: "Resolution", Start: 0.95, End: 1.0},
	}
}

// DetectBeats assigns at most one scene per beat window. A window with no
// candidate scenes is skipped; fewer than seven beats is a valid result.
// The anchor scene is the candidate with the most dialogue lines, first
// encountered wins ties. Confidence is a coarse occupancy proxy: 0.7 when
// the window held more than one candidate, 0.5 otherwise.
func DetectBeats(scenes []Scene, totalPages int, windows []BeatWindow) []StoryBeat {
	if totalPages <= 0 || len(scenes) == 0 {
		return nil
	}

	var beats []StoryBeat
	for _, w := range windows {
		startPage := w.Start * float64(totalPages)
		endPage := w.End * float64(totalPages)

		var anchor *Scene
		candidates := 0
		for i := range scenes {
			s := &scenes[i]
			p := float64(s.PageStart)
			if p < startPage || p > endPage {
				continue
			}
			candidates++
			if anchor == nil || s.DialogueLines > anchor.DialogueLines {
				anchor = s
			}
		}
		if anchor == nil {
			continue
		}

		confidence := 0.5
		if candidates > 1 {
			confidence = 0.7
		}
		beats = append(beats, StoryBeat{
			Type:        w.Type,
			SceneNumber: anchor.Number,
			Page:        anchor.PageStart,
			Confidence:  confidence,
		})
	}

	return beats
}
