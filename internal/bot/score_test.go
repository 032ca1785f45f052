package bot

import "testing"

func TestThreatLevel_MonotonicInBorderDistance(t *testing.T) {
	s := halfState(8, 3, 2)
	ctx := testCtx(s)

	near := alive("e1", 3, 1) // one cell past our border
	far := alive("e2", 7, 1)

	if ctx.ThreatLevel(near) < ctx.ThreatLevel(far) {
		t.Fatal("closer enemy must not score lower threat")
	}
}

func TestThreatLevel_IntruderOutranksOutsider(t *testing.T) {
	s := halfState(8, 3, 2)
	ctx := testCtx(s)

	inside := alive("e1", 2, 1)  // on our border cell
	outside := alive("e2", 3, 1) // adjacent but outside

	if ctx.ThreatLevel(inside) <= ctx.ThreatLevel(outside) {
		t.Fatal("an intruder inside our territory must outrank one outside")
	}
}

func TestThreatLevel_DeadIsZero(t *testing.T) {
	s := halfState(4, 2, 1)
	ctx := testCtx(s)

	dead := alive("e1", 3, 0)
	dead.Alive = false
	if got := ctx.ThreatLevel(dead); got != 0 {
		t.Fatalf("dead enemy threat = %v, want 0", got)
	}
}

func TestIsSafe_OwnZoneAlwaysSafe(t *testing.T) {
	s := halfState(6, 3, 2,
		withEnemy(alive("e1", 1, 1)),
		withEnemy(alive("e2", 2, 1)),
	)
	ctx := testCtx(s)

	if !ctx.IsSafe(Position{1, 0}, []Item{blitzium(0, 0, 5)}) {
		t.Fatal("own-territory cells are safe regardless of enemies")
	}
}

func TestIsSafe_BlitziumLoadFearsAnyNearEnemy(t *testing.T) {
	s := halfState(8, 3, 1, withEnemy(alive("e1", 6, 1)))
	ctx := testCtx(s)
	load := []Item{blitzium(0, 0, 5)}

	if ctx.IsSafe(Position{5, 1}, load) {
		t.Fatal("enemy at distance 1 makes the cell unsafe when hauling blitzium")
	}
	if ctx.IsSafe(Position{4, 1}, load) {
		t.Fatal("enemy at distance 2 still inside the blitzium danger radius")
	}
	if !ctx.IsSafe(Position{3, 1}, load) {
		t.Fatal("enemy at distance 3 is outside the danger radius")
	}
}

func TestIsSafe_EmptyHandedToleratesOneEnemy(t *testing.T) {
	s := halfState(8, 3, 1,
		withEnemy(alive("e1", 5, 1)),
		withEnemy(alive("e2", 5, 2)),
	)
	ctx := testCtx(s)

	if !ctx.IsSafe(Position{4, 1}, nil) {
		t.Fatal("one adjacent enemy is tolerated when empty-handed")
	}
	if ctx.IsSafe(Position{5, 1}, nil) {
		t.Fatal("two enemies within the crowd radius are not tolerated")
	}
}

func TestBestBorderPosition_BalancesBothDistances(t *testing.T) {
	// Own zone is column 0 of a 6x5 map, so all border cells sit in x=0.
	s := halfState(6, 5, 0)
	ctx := testCtx(s)

	self := Position{0, 0}
	enemy := Position{2, 4}

	got, ok := ctx.BestBorderPosition(self, enemy)
	if !ok {
		t.Fatal("expected a border cell")
	}
	// Exhaustive check of the scoring rule.
	want := Position{}
	best := 1e18
	for _, b := range ctx.Grid.BorderCells() {
		score := float64(Manhattan(b, enemy)) + 0.5*float64(Manhattan(b, self))
		if score < best {
			best = score
			want = b
		}
	}
	if got != want {
		t.Fatalf("best border %v, want %v", got, want)
	}
}

func TestNearestDropSpot_JustAcrossTheBorder(t *testing.T) {
	s := halfState(6, 3, 2)
	ctx := testCtx(s)

	spot, ok := ctx.NearestDropSpot(Position{2, 1}, 8)
	if !ok {
		t.Fatal("expected a drop spot")
	}
	if spot.X != 3 {
		t.Fatalf("drop spot %v should be in column 3, just across the border", spot)
	}
	if ctx.Grid.InOwnZone(spot) {
		t.Fatal("drop spot must be outside our territory")
	}
}

func TestNearestDropSpot_SkipsOccupiedCells(t *testing.T) {
	s := halfState(6, 2, 2, withItem(radiant(3, 0)))
	ctx := testCtx(s)

	spot, ok := ctx.NearestDropSpot(Position{2, 0}, 8)
	if !ok {
		t.Fatal("expected a drop spot")
	}
	if spot == (Position{3, 0}) {
		t.Fatal("occupied cell must be skipped")
	}
}

func TestNearestDropSpot_RequiresBorderAdjacency(t *testing.T) {
	// Only column 4 on a 1-row map is adjacent to nothing own: columns 3 is
	// the only qualifying cell next to own column 2.
	s := halfState(6, 1, 2)
	ctx := testCtx(s)

	spot, ok := ctx.NearestDropSpot(Position{0, 0}, 8)
	if !ok {
		t.Fatal("expected a drop spot")
	}
	if spot != (Position{3, 0}) {
		t.Fatalf("drop spot %v, want the cell adjacent to own territory (3,0)", spot)
	}
}

func TestBestValueTarget_ReachabilityBeatsValue(t *testing.T) {
	// Wall off column 4+: the high-value item is unreachable.
	s := halfState(6, 3, 1,
		withWall(4, 0), withWall(4, 1), withWall(4, 2),
		withItem(blitzium(5, 1, 100)),
		withItem(blitzium(3, 1, 1)),
	)
	ctx := testCtx(s)

	it, ok := ctx.BestValueTarget(alive("c1", 0, 1), func(it Item) bool { return it.IsBlitzium() })
	if !ok {
		t.Fatal("the reachable item should be found")
	}
	if it.Value != 1 {
		t.Fatalf("picked value %d; unreachable 100-value item must never win", it.Value)
	}
}

func TestBestValueTarget_ValueDominatesDistance(t *testing.T) {
	s := halfState(8, 1, 0,
		withItem(blitzium(2, 0, 1)),
		withItem(blitzium(7, 0, 9)),
	)
	ctx := testCtx(s)

	it, ok := ctx.BestValueTarget(alive("c1", 1, 0), func(it Item) bool { return it.IsBlitzium() })
	if !ok {
		t.Fatal("expected a target")
	}
	if it.Value != 9 {
		t.Fatal("the distant high-value item must beat the close low-value one")
	}
}

func TestSafestHomeCell_PrefersLowPressure(t *testing.T) {
	// Enemy camped near the top of our zone; the carrier should be sent to
	// a cell out of its reach.
	s := halfState(6, 6, 2, withEnemy(alive("e1", 3, 0)))
	ctx := testCtx(s)

	home, ok := ctx.SafestHomeCell(alive("c1", 4, 0))
	if !ok {
		t.Fatal("expected a home cell")
	}
	if !ctx.Grid.InOwnZone(home) {
		t.Fatalf("home cell %v must be in our zone", home)
	}
	if Manhattan(home, Position{3, 0}) <= DefaultTuning().DeliveryRiskRadius {
		t.Fatalf("home cell %v is still inside the enemy pressure radius", home)
	}
}

func TestBestPatrolCell_MaximisesCoverage(t *testing.T) {
	// A wall next to (1,0) reduces its neighbourhood coverage; the best
	// patrol cell is a border cell away from the wall.
	s := halfState(4, 4, 1, withWall(0, 0), withWall(0, 1))
	ctx := testCtx(s)

	got, ok := ctx.BestPatrolCell()
	if !ok {
		t.Fatal("expected a patrol cell")
	}
	if got.X != 1 {
		t.Fatalf("patrol cell %v must be on the border column", got)
	}
	if got.Y == 0 {
		t.Fatal("the wall-adjacent border cell has lower coverage and must lose")
	}
}
