package bot

import "testing"

func decideCarrier(t *testing.T, s *TeamGameState, ch Character) (Action, bool) {
	t.Helper()
	return Carrier{}.Decide(testCtx(s), ch)
}

func TestCarrier_MovesToBlitzium(t *testing.T) {
	// 5x5 empty grid, left half ours, blitzium in the enemy half.
	s := halfState(5, 5, 1, withItem(blitzium(4, 2, 10)))

	act, ok := decideCarrier(t, s, alive("c1", 1, 2))
	if !ok {
		t.Fatal("expected an action")
	}
	if act.Type != ActionMoveTo || act.Position == nil || *act.Position != (Position{4, 2}) {
		t.Fatalf("got %+v, want MOVE_TO (4,2)", act)
	}
}

func TestCarrier_GrabsWhenColocated(t *testing.T) {
	s := halfState(5, 5, 1, withItem(blitzium(4, 2, 10)))

	act, ok := decideCarrier(t, s, alive("c1", 4, 2))
	if !ok || act.Type != ActionGrab {
		t.Fatalf("got %+v ok=%v, want GRAB", act, ok)
	}
}

func TestCarrier_LiabilityBeforeBlitzium(t *testing.T) {
	s := halfState(5, 5, 1,
		withItem(radiant(0, 0)),
		withItem(blitzium(4, 2, 10)),
	)

	act, ok := decideCarrier(t, s, alive("c1", 1, 2))
	if !ok {
		t.Fatal("expected an action")
	}
	if act.Type != ActionMoveTo || *act.Position != (Position{0, 0}) {
		t.Fatalf("got %+v; radiant in our zone outranks blitzium abroad", act)
	}
}

func TestCarrier_DeliversInOwnZone(t *testing.T) {
	s := halfState(5, 5, 1)

	act, ok := decideCarrier(t, s, alive("c1", 1, 2, blitzium(1, 2, 10)))
	if !ok || act.Type != ActionDrop {
		t.Fatalf("got %+v ok=%v, want DROP in own zone", act, ok)
	}
}

func TestCarrier_HaulsHomeFromEnemyZone(t *testing.T) {
	s := halfState(5, 5, 1)

	act, ok := decideCarrier(t, s, alive("c1", 4, 2, blitzium(4, 2, 10)))
	if !ok || act.Type != ActionMoveTo {
		t.Fatalf("got %+v ok=%v, want MOVE_TO toward home", act, ok)
	}
	ctx := testCtx(s)
	if !ctx.Grid.InOwnZone(*act.Position) {
		t.Fatalf("haul target %v must be in our zone", *act.Position)
	}
}

func TestCarrier_DumpsRadiantInEnemyZone(t *testing.T) {
	s := halfState(5, 5, 1)

	act, ok := decideCarrier(t, s, alive("c1", 3, 2, radiant(3, 2)))
	if !ok || act.Type != ActionDrop {
		t.Fatalf("got %+v ok=%v, want DROP in enemy territory", act, ok)
	}
}

func TestCarrier_WontDropOntoOccupiedCell(t *testing.T) {
	s := halfState(5, 5, 1, withItem(blitzium(3, 2, 5)))

	act, ok := decideCarrier(t, s, alive("c1", 3, 2, radiant(3, 2)))
	if !ok {
		t.Fatal("expected an action")
	}
	if act.Type == ActionDrop {
		t.Fatal("must not drop onto a cell already holding an item")
	}
	if act.Type != ActionMoveTo {
		t.Fatalf("got %+v, want a move to a free drop spot", act)
	}
}

func TestCarrier_SkipsUnsafeBlitzium(t *testing.T) {
	// Two enemies camped on the item: the empty-handed safety gate rejects
	// it, and with nothing else to do the carrier idles.
	s := halfState(7, 3, 1,
		withItem(blitzium(5, 1, 10)),
		withEnemy(alive("e1", 5, 1)),
		withEnemy(alive("e2", 6, 1)),
	)

	if act, ok := decideCarrier(t, s, alive("c1", 0, 1)); ok {
		t.Fatalf("got %+v, want no-op for an unsafe target", act)
	}
}

func TestCarrier_UnreachableItemIgnored(t *testing.T) {
	s := halfState(6, 3, 1,
		withWall(4, 0), withWall(4, 1), withWall(4, 2),
		withItem(blitzium(5, 1, 100)),
	)

	if act, ok := decideCarrier(t, s, alive("c1", 0, 1)); ok {
		t.Fatalf("got %+v, want no-op when the only item is walled off", act)
	}
}

func TestCarrier_EnemyZoneBeforeNeutral(t *testing.T) {
	s := halfState(7, 3, 1, withNeutralColumn(2), withNeutralColumn(3),
		withItem(blitzium(2, 1, 10)), // neutral, closer
		withItem(blitzium(6, 1, 3)),  // enemy zone, worth less
	)

	act, ok := decideCarrier(t, s, alive("c1", 1, 1))
	if !ok {
		t.Fatal("expected an action")
	}
	if *act.Position != (Position{6, 1}) {
		t.Fatalf("got %+v; enemy-zone blitzium is tried before neutral", act)
	}
}

func TestCarrier_DeadDoesNothing(t *testing.T) {
	s := halfState(5, 5, 1, withItem(blitzium(4, 2, 10)))
	ch := alive("c1", 1, 2)
	ch.Alive = false

	if _, ok := decideCarrier(t, s, ch); ok {
		t.Fatal("dead characters emit nothing")
	}
}
