package arena

import (
	"testing"

	"blitzbot/internal/bot"
)

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout("t", []string{
		"AA.BB",
		"AA#BB",
	}, "red", "blue")
	if err != nil {
		t.Fatal(err)
	}
	if l.Width != 5 || l.Height != 2 {
		t.Fatalf("size = %dx%d, want 5x2", l.Width, l.Height)
	}
	if l.ZoneAt(bot.Position{X: 0, Y: 0}) != "red" || l.ZoneAt(bot.Position{X: 4, Y: 1}) != "blue" {
		t.Fatal("zone ownership does not match the rows")
	}
	if l.ZoneAt(bot.Position{X: 2, Y: 0}) != "" {
		t.Fatal("'.' cells are neutral")
	}
	if l.Walkable(bot.Position{X: 2, Y: 1}) {
		t.Fatal("'#' cells are walls")
	}
	if l.Walkable(bot.Position{X: -1, Y: 0}) || l.Walkable(bot.Position{X: 5, Y: 0}) {
		t.Fatal("out-of-range cells are not walkable")
	}
}

func TestParseLayout_Rejects(t *testing.T) {
	if _, err := ParseLayout("t", []string{"AA", "A"}, "a", "b"); err == nil {
		t.Fatal("ragged rows must fail")
	}
	if _, err := ParseLayout("t", []string{"AXA"}, "a", "b"); err == nil {
		t.Fatal("unknown cells must fail")
	}
	if _, err := ParseLayout("t", nil, "a", "b"); err == nil {
		t.Fatal("empty layouts must fail")
	}
}

func TestBuiltinLayouts(t *testing.T) {
	for _, name := range BuiltinLayoutNames() {
		l, err := BuiltinLayout(name, "a", "b")
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		// Every shipped layout must give both teams some territory.
		haveA, haveB := false, false
		for x := 0; x < l.Width; x++ {
			for y := 0; y < l.Height; y++ {
				switch l.Zones[x][y] {
				case "a":
					haveA = true
				case "b":
					haveB = true
				}
			}
		}
		if !haveA || !haveB {
			t.Fatalf("%s: missing territory (a=%v b=%v)", name, haveA, haveB)
		}
	}
	if _, err := BuiltinLayout("no-such", "a", "b"); err == nil {
		t.Fatal("unknown layout name must fail")
	}
}
