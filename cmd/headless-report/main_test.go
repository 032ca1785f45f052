package main

import (
	"testing"

	"blitzbot/internal/bot"
)

func TestVerdict(t *testing.T) {
	if v := verdict(10, 5); v != "alpha" {
		t.Fatalf("verdict(10,5) = %q", v)
	}
	if v := verdict(-5, 0); v != "bravo" {
		t.Fatalf("verdict(-5,0) = %q", v)
	}
	if v := verdict(7, 7); v != "draw" {
		t.Fatalf("verdict(7,7) = %q", v)
	}
}

func TestFirstTick(t *testing.T) {
	entries := []bot.DecisionEntry{
		{Tick: 3, Category: "grab"},
		{Tick: 5, Category: "kill"},
		{Tick: 9, Category: "grab"},
	}
	if got := firstTick(entries, "grab"); got != 3 {
		t.Fatalf("first grab tick = %d, want 3", got)
	}
	if got := firstTick(entries, "respawn"); got != -1 {
		t.Fatal("missing category must report -1")
	}
}

func TestNoopTicks(t *testing.T) {
	if got := noopTicks(100, 8, 650); got != 150 {
		t.Fatalf("noopTicks = %d, want 150", got)
	}
	if got := noopTicks(10, 2, 50); got != 0 {
		t.Fatal("over-logged runs floor at zero")
	}
}

func TestRunMatchProducesActivity(t *testing.T) {
	rs := runMatch(1, 7, 120, "open-field", 4)
	if rs.grabs == 0 {
		t.Fatal("a seeded 120-tick run should see at least one grab")
	}
	if rs.firstGrabTick < 0 {
		t.Fatal("first grab marker missing despite grabs")
	}
}
