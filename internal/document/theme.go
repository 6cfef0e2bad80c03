package document

// ThemeStyle holds the per-level colors for one theme. Index 0 styles the
// central topic, index 1 the main branches, index 2 everything deeper.
type ThemeStyle struct {
	Fill   [3]string
	Stroke [3]string
	Text   [3]string
	Canvas string
}

// Themes is the static theme lookup table. Entries are never mutated.
var Themes = map[string]ThemeStyle{
	"classic": {
		Fill:   [3]string{"#4a6fa5", "#7a9cc6", "#e8eef5"},
		Stroke: [3]string{"#35507a", "#5b7ba3", "#b9c9dc"},
		Text:   [3]string{"#ffffff", "#ffffff", "#2b3a4e"},
		Canvas: "#f7f9fc",
	},
	"midnight": {
		Fill:   [3]string{"#e94560", "#533483", "#16213e"},
		Stroke: [3]string{"#b8243d", "#3c2461", "#0f3460"},
		Text:   [3]string{"#ffffff", "#e8e8e8", "#c5c5d2"},
		Canvas: "#1a1a2e",
	},
	"meadow": {
		Fill:   [3]string{"#3a7d44", "#81b29a", "#f2efe9"},
		Stroke: [3]string{"#2c5e33", "#5f8d74", "#cfc9bd"},
		Text:   [3]string{"#ffffff", "#1f3326", "#3c4a3e"},
		Canvas: "#fbfaf7",
	},
}

// ThemeOrDefault resolves a theme name, falling back to classic.
func ThemeOrDefault(name string) ThemeStyle {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["classic"]
}

// MarkerDisplay describes how a content marker renders in a node badge.
type MarkerDisplay struct {
	Glyph string
	Color string
}

// Markers is the static marker display table.
var Markers = map[string]MarkerDisplay{
	"priority-1": {Glyph: "1", Color: "#e74c3c"},
	"priority-2": {Glyph: "2", Color: "#e67e22"},
	"priority-3": {Glyph: "3", Color: "#f1c40f"},
	"task-start": {Glyph: "○", Color: "#95a5a6"},
	"task-half":  {Glyph: "◐", Color: "#3498db"},
	"task-done":  {Glyph: "●", Color: "#2ecc71"},
	"flag":       {Glyph: "⚑", Color: "#9b59b6"},
	"star":       {Glyph: "★", Color: "#f39c12"},
}
