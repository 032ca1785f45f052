package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"blitzbot/internal/arena"
	"blitzbot/internal/bot"
)

func main() {
	var (
		layoutName = flag.String("layout", "open-field", "arena layout name")
		seed       = flag.Int64("seed", 42, "match RNG seed")
		agents     = flag.Int("agents", 4, "agents per team")
		tuningPath = flag.String("tuning", "", "optional tuning YAML file")
	)
	flag.Parse()

	layout, err := arena.BuiltinLayout(*layoutName, "alpha", "bravo")
	if err != nil {
		log.Fatal(err)
	}

	tuning := bot.DefaultTuning()
	if *tuningPath != "" {
		tuning, err = bot.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatalf("tuning: %v", err)
		}
	}

	opts := []arena.MatchOption{
		arena.WithLayout(layout),
		arena.WithSeed(*seed),
		arena.WithTuning(tuning),
		arena.WithBlitziumSpawner(25, 10),
	}
	for i := 0; i < *agents; i++ {
		y := 1 + i%(layout.Height-2)
		opts = append(opts,
			arena.WithAgent("alpha", 1, y),
			arena.WithAgent("bravo", layout.Width-2, y),
		)
	}

	ebiten.SetWindowTitle("blitzbot arena")
	view := arena.NewView(arena.NewMatch(opts...))
	w, h := view.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(view); err != nil {
		log.Fatal(err)
	}
}
