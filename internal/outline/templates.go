package outline

// BeatTemplate is one named beat of the outline catalog. DefaultPosition is
// the fallback page position as a fraction of total pages, used when no
// comparable scripts supply an averaged page for the beat.
type BeatTemplate struct {
	Name            string
	DefaultPosition float64
	Description     string
}

// ActTemplate groups the catalog beats into the four-act structure.
type ActTemplate struct {
	Name  string
	Beats []BeatTemplate
}

// ActCatalog is the fixed 17-beat outline template. The names that overlap
// with the beat detector's seven-beat catalog (Opening Image, Inciting
// Incident, End of Act 1, Midpoint, All Is Lost, Climax, Resolution) pick up
// averaged pages from comparable scripts; the rest always use their default
// position.
var ActCatalog = []ActTemplate{
	{
		Name: "Act One",
		Beats: []BeatTemplate{
			{"Opening Image", 0.01, "A single image that sets the tone and stakes of the world before anything changes."},
			{"Theme Stated", 0.05, "Someone states, usually in passing, what the story is really about."},
			{"Setup", 0.08, "Introduce the protagonist's ordinary world and everything that is missing from it."},
			{"Inciting Incident", 0.12, "The event that knocks the protagonist's world off balance and demands a response."},
			{"End of Act 1", 0.25, "The protagonist makes a choice that cannot be unmade and crosses into the new world."},
		},
	},
	{
		Name: "Act Two A",
		Beats: []BeatTemplate{
			{"B Story", 0.30, "A secondary relationship begins, carrying the theme the main plot is too busy for."},
			{"Fun and Games", 0.38, "The promise of the premise: the set pieces the audience came for."},
			{"Rising Stakes", 0.45, "Early wins turn expensive; the opposition starts answering back."},
			{"Midpoint", 0.55, "A false victory or false defeat that raises the stakes and pins the protagonist to the goal."},
		},
	},
	{
		Name: "Act Two B",
		Beats: []BeatTemplate{
			{"Bad Guys Close In", 0.62, "External pressure tightens while internal doubts split the team apart."},
			{"All Is Lost", 0.75, "The lowest point: the goal looks unreachable and something or someone is lost for good."},
			{"Dark Night of the Soul", 0.80, "The protagonist sits in the wreckage and confronts the theme directly."},
			{"Glimmer of Hope", 0.83, "A small discovery, often from the B story, suggests one last way through."},
		},
	},
	{
		Name: "Act Three",
		Beats: []BeatTemplate{
			{"Break Into Three", 0.85, "Armed with the lesson of the theme, the protagonist commits to the final plan."},
			{"Climax", 0.90, "The plan is executed; the protagonist proves the change by paying its full price."},
			{"Resolution", 0.97, "The dust settles and the consequences of the climax are made concrete."},
			{"Final Image", 0.99, "The mirror of the opening image, showing how much the world has changed."},
		},
	},
}
