// Package icons maps goal icon names to terminal glyphs.
// Lookup is total: any name resolves to a glyph, unknown names get Default.
package icons

import "sort"

// Glyph is a renderable icon character.
type Glyph string

// Default is the fallback glyph for empty or unknown icon names.
const Default Glyph = "◎"

var registry = map[string]Glyph{
	"Plane":  "✈",
	"Home":   "⌂",
	"Car":    "🚗",
	"Gift":   "🎁",
	"Beach":  "🏖",
	"Book":   "📚",
	"Heart":  "♥",
	"Star":   "★",
	"Laptop": "💻",
	"Piggy":  "🐷",
	"Ring":   "💍",
	"Tools":  "🔧",
}

// Lookup resolves an icon name to its glyph, falling back to Default.
func Lookup(name string) Glyph {
	if g, ok := registry[name]; ok {
		return g
	}
	return Default
}

// Known reports whether the name resolves to a registered glyph.
func Known(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names returns all registered icon names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
