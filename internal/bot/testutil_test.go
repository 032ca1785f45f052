package bot

// Test fixtures. States are built half/half by default: columns up to
// ownMaxX belong to team "A" (the evaluating team), the rest to team "B".

type stateOption func(*TeamGameState)

func withNeutralColumn(x int) stateOption {
	return func(s *TeamGameState) {
		for y := 0; y < s.Map.Height; y++ {
			s.TeamZoneGrid[x][y] = ""
		}
	}
}

func withWall(x, y int) stateOption {
	return func(s *TeamGameState) { s.Map.Tiles[x][y] = TileWall }
}

func withItem(it Item) stateOption {
	return func(s *TeamGameState) { s.Items = append(s.Items, it) }
}

func withAlly(ch Character) stateOption {
	return func(s *TeamGameState) {
		ch.TeamID = s.CurrentTeamID
		s.YourCharacters = append(s.YourCharacters, ch)
	}
}

func withEnemy(ch Character) stateOption {
	return func(s *TeamGameState) {
		ch.TeamID = "B"
		s.OtherCharacters = append(s.OtherCharacters, ch)
	}
}

func halfState(w, h, ownMaxX int, opts ...stateOption) *TeamGameState {
	s := &TeamGameState{
		CurrentTeamID:     "A",
		CurrentTickNumber: 1,
		Map:               GameMap{Width: w, Height: h},
		Constants:         GameConstants{MaxNumberOfItemsCarriedPerCharacter: 2},
	}
	s.Map.Tiles = make([][]string, w)
	s.TeamZoneGrid = make([][]string, w)
	for x := 0; x < w; x++ {
		s.Map.Tiles[x] = make([]string, h)
		s.TeamZoneGrid[x] = make([]string, h)
		for y := 0; y < h; y++ {
			s.Map.Tiles[x][y] = TileEmpty
			if x <= ownMaxX {
				s.TeamZoneGrid[x][y] = "A"
			} else {
				s.TeamZoneGrid[x][y] = "B"
			}
		}
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func testCtx(s *TeamGameState) *TickContext {
	return NewTickContext(s, DefaultTuning(), nil)
}

func alive(id string, x, y int, items ...Item) Character {
	return Character{
		ID:                   id,
		Position:             Position{x, y},
		Alive:                true,
		CarriedItems:         items,
		NumberOfCarriedItems: len(items),
	}
}

func blitzium(x, y, value int) Item {
	return Item{Position: Position{x, y}, Type: "blitzium_ingot", Value: value}
}

func radiant(x, y int) Item {
	return Item{Position: Position{x, y}, Type: "radiant_slag", Value: -1}
}
