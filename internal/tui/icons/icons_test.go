package icons

import (
	"sort"
	"testing"
)

func TestLookupKnown(t *testing.T) {
	if got := Lookup("Plane"); got != "✈" {
		t.Errorf("Lookup(Plane) = %q, want ✈", got)
	}
	if !Known("Plane") {
		t.Error("Known(Plane) = false")
	}
}

func TestLookupFallback(t *testing.T) {
	for _, name := range []string{"", "NoSuchIcon", "plane"} {
		if got := Lookup(name); got != Default {
			t.Errorf("Lookup(%q) = %q, want Default %q", name, got, Default)
		}
	}
	if Known("NoSuchIcon") {
		t.Error("Known(NoSuchIcon) = true")
	}
}

func TestNamesSortedAndComplete(t *testing.T) {
	names := Names()
	if len(names) != len(registry) {
		t.Fatalf("Names() returned %d entries, registry has %d", len(names), len(registry))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	for _, n := range names {
		if Lookup(n) == Default && n != "" {
			// Registered names must resolve to their own glyph, not the fallback,
			// unless someone registers Default itself.
			if registry[n] != Default {
				t.Errorf("registered name %q resolved to Default", n)
			}
		}
	}
}
