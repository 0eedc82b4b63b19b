package screenplay

// Scene is one header-delimited segment of the screenplay.
type Scene struct {
	Number            int
	Type              string // "interior" or "exterior"
	Location          string
	TimeOfDay         string
	PageStart         int
	PageEnd           int
	Content           string
	CharactersPresent []string
	DialogueLines     int
	ActionLines       int
	DialogueRatio     float64
}

// Character is one entry in the per-script character registry, keyed by the
// exact cue text. "JOHN" and "JOHN (CONT'D)" are distinct entries.
type Character struct {
	Name                string
	FirstAppearancePage int
	SceneNumbers        []int
	// LineCount is approximated from scene-level dialogue counts rather
	// than a precise per-character tally.
	LineCount int
}

// DialogueLine is one attributed line of dialogue within a scene.
type DialogueLine struct {
	SceneNumber int
	Character   string
	LineNumber  int // 1-based within the scene
	Text        string
	WordCount   int
	Tone        string
}

// StoryBeat anchors one beat template to a detected scene.
type StoryBeat struct {
	Type        string
	SceneNumber int
	Page        int
	Confidence  float64
}

// Analysis is the full output of Parse for a single screenplay.
type Analysis struct {
	Scenes     []Scene
	Characters []Character
	Dialogue   []DialogueLine
	Beats      []StoryBeat
	// PageCount is the estimated total page count derived from the
	// lines-per-page heuristic.
	PageCount int
}
