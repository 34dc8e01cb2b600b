package theme

import "testing"

func TestByNameFallback(t *testing.T) {
	if got := ByName("no-such-theme"); got.Name != FlexokiDark.Name {
		t.Errorf("ByName(unknown) = %s, want default %s", got.Name, FlexokiDark.Name)
	}
	if got := ByName("catppuccin-mocha"); got.Name != "catppuccin-mocha" {
		t.Errorf("ByName(catppuccin-mocha) = %s", got.Name)
	}
}

func TestSetActive(t *testing.T) {
	orig := Active
	defer func() { Active = orig }()

	SetActive("terminal")
	if Active.Name != "terminal" {
		t.Errorf("Active = %s after SetActive(terminal)", Active.Name)
	}
}

func TestGoalColor(t *testing.T) {
	orig := Active
	defer func() { Active = orig }()
	Active = FlexokiDark

	if got := GoalColor("#ff0000"); got != "#ff0000" {
		t.Errorf("GoalColor(#ff0000) = %q", got)
	}
	if got := GoalColor(""); got != Active.Blue {
		t.Errorf("GoalColor(empty) = %q, want theme blue", got)
	}
	for _, bad := range []string{"red", "#zzz", "ff0000", "#12345"} {
		if got := GoalColor(bad); got != Active.Blue {
			t.Errorf("GoalColor(%q) = %q, want theme blue fallback", bad, got)
		}
	}
}
