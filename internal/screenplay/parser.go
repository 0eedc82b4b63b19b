package screenplay

import (
	"strings"
)

// Parse runs the full single-pass analysis over raw screenplay text:
// scene segmentation, character registry, dialogue extraction with tone
// labels, and beat detection. It never fails; malformed input degrades to
// defaulted values instead of errors.
func Parse(raw string, cfg Config) Analysis {
	scenes, pageCount := extractScenes(raw, cfg)

	analysis := Analysis{
		Scenes:     scenes,
		Characters: buildCharacterRegistry(scenes),
		Dialogue:   extractDialogue(scenes, cfg),
		PageCount:  pageCount,
	}
	analysis.Beats = DetectBeats(scenes, pageCount, cfg.BeatWindows)
	return analysis
}

// sceneAccumulator is the open scene while scanning.
type sceneAccumulator struct {
	scene   Scene
	lines   []string
	present map[string]bool
	order   []string
}

func (acc *sceneAccumulator) addCharacter(name string) {
	if !acc.present[name] {
		acc.present[name] = true
		acc.order = append(acc.order, name)
	}
}

func (acc *sceneAccumulator) close(page int) Scene {
	s := acc.scene
	s.PageEnd = page
	s.Content = strings.Join(acc.lines, "\n")
	s.CharactersPresent = acc.order
	// The +1 is a deliberate smoothing constant: it avoids division by
	// zero and slightly deflates the ratio for sparse scenes.
	s.DialogueRatio = float64(s.DialogueLines) / float64(s.DialogueLines+s.ActionLines+1)
	return s
}

// extractScenes splits raw text into header-delimited scenes. Text before
// the first recognized scene heading is discarded; it belongs to no scene.
func extractScenes(raw string, cfg Config) ([]Scene, int) {
	lines := strings.Split(raw, "\n")

	var (
		scenes  []Scene
		current *sceneAccumulator
		speaker string
	)
	page := 1

	for i, rawLine := range lines {
		if i > 0 && i%cfg.LinesPerPage == 0 {
			page++
		}
		line := strings.TrimSpace(rawLine)

		if isSceneHeading(line) {
			if current != nil {
				scenes = append(scenes, current.close(page))
			}
			sceneType, location, timeOfDay := parseHeading(line, cfg)
			current = &sceneAccumulator{
				scene: Scene{
					Number:    len(scenes) + 1,
					Type:      sceneType,
					Location:  location,
					TimeOfDay: timeOfDay,
					PageStart: page,
				},
				present: make(map[string]bool),
			}
			speaker = ""
			continue
		}

		if current == nil {
			continue
		}
		current.lines = append(current.lines, rawLine)

		if line == "" {
			speaker = ""
			continue
		}

		if isCharacterCue(line, cfg.CueMaxLen) {
			speaker = line
			current.addCharacter(line)
			continue
		}

		if speaker != "" && !isTransition(line) {
			current.scene.DialogueLines++
		} else {
			current.scene.ActionLines++
		}
	}

	if current != nil {
		scenes = append(scenes, current.close(page))
	}

	return scenes, page
}

// buildCharacterRegistry folds scene membership into per-character records.
// Identity is exact cue-string equality, so "JOHN" and "JOHN (CONT'D)" stay
// separate entries.
func buildCharacterRegistry(scenes []Scene) []Character {
	index := make(map[string]int)
	var registry []Character

	for _, scene := range scenes {
		for _, name := range scene.CharactersPresent {
			idx, seen := index[name]
			if !seen {
				index[name] = len(registry)
				registry = append(registry, Character{
					Name:                name,
					FirstAppearancePage: scene.PageStart,
				})
				idx = len(registry) - 1
			}
			registry[idx].SceneNumbers = append(registry[idx].SceneNumbers, scene.Number)
			registry[idx].LineCount += scene.DialogueLines
		}
	}

	return registry
}

// extractDialogue re-runs the cue/speaker scan per scene to produce one
// DialogueLine per attributed line, tagged with a tone label.
func extractDialogue(scenes []Scene, cfg Config) []DialogueLine {
	var out []DialogueLine

	for _, scene := range scenes {
		speaker := ""
		lineNo := 0
		for _, rawLine := range strings.Split(scene.Content, "\n") {
			line := strings.TrimSpace(rawLine)
			if line == "" {
				speaker = ""
				continue
			}
			if isCharacterCue(line, cfg.CueMaxLen) {
				speaker = line
				continue
			}
			if speaker == "" || isTransition(line) {
				continue
			}
			lineNo++
			out = append(out, DialogueLine{
				SceneNumber: scene.Number,
				Character:   speaker,
				LineNumber:  lineNo,
				Text:        line,
				WordCount:   len(strings.Fields(line)),
				Tone:        ClassifyTone(line),
			})
		}
	}

	return out
}
