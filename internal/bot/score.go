package bot

import "math"

// Spatial scoring: pure queries over the grid index and the tick's character
// and item lists. Nothing here mutates the context.

// ThreatLevel scores an enemy for defender target selection. The base score
// decays with distance to our nearest border cell and is multiplied hard
// when the enemy is already inside our territory. Dead enemies score zero.
func (c *TickContext) ThreatLevel(enemy Character) float64 {
	if !enemy.Alive {
		return 0
	}

	threat := c.Tuning.ThreatBase

	minBorderDist := math.MaxInt32
	for _, b := range c.Grid.BorderCells() {
		if d := Manhattan(enemy.Position, b); d < minBorderDist {
			minBorderDist = d
		}
	}
	if minBorderDist < math.MaxInt32 {
		factor := 1 - float64(minBorderDist)*c.Tuning.ThreatDecay
		if factor < c.Tuning.ThreatFloor {
			factor = c.Tuning.ThreatFloor
		}
		threat *= factor
	}

	if c.Grid.InOwnZone(enemy.Position) {
		threat *= c.Tuning.ThreatHomeMultiplier
	}
	return threat
}

// IsSafe reports whether pos is tenable for an agent carrying the given
// items. Own territory is always safe. Outside it the gate depends on the
// load: hauling blitzium means no living enemy may be close at all, while an
// empty or radiant-only load only fears a crowd.
func (c *TickContext) IsSafe(pos Position, carried []Item) bool {
	if c.Grid.InOwnZone(pos) {
		return true
	}

	haulingBlitzium := false
	for _, it := range carried {
		if it.IsBlitzium() {
			haulingBlitzium = true
			break
		}
	}

	if haulingBlitzium {
		for _, e := range c.LivingEnemies() {
			if Manhattan(e.Position, pos) <= c.Tuning.BlitziumDangerRadius {
				return false
			}
		}
		return true
	}

	nearby := 0
	for _, e := range c.LivingEnemies() {
		if Manhattan(e.Position, pos) <= c.Tuning.CrowdRadius {
			nearby++
		}
	}
	return nearby <= c.Tuning.CrowdTolerance
}

// BestBorderPosition picks the border cell balancing interception speed
// against the enemy's approach: minimise d(cell,enemy) + w·d(cell,self).
func (c *TickContext) BestBorderPosition(self, enemyPos Position) (Position, bool) {
	best := Position{}
	bestScore := math.Inf(1)
	found := false

	for _, b := range c.Grid.BorderCells() {
		score := float64(Manhattan(b, enemyPos)) + c.Tuning.BorderSelfWeight*float64(Manhattan(b, self))
		if score < bestScore {
			bestScore = score
			best = b
			found = true
		}
	}
	return best, found
}

// NearestDropSpot searches expanding rings around from for the closest cell
// that is walkable, outside our territory, empty of items, and adjacent to
// at least one own-territory cell — liabilities get dumped just across the
// border, not hauled deep into enemy land.
func (c *TickContext) NearestDropSpot(from Position, withinRadius int) (Position, bool) {
	for radius := 0; radius <= withinRadius; radius++ {
		best := Position{}
		found := false
		for dx := -radius; dx <= radius; dx++ {
			dy := radius - abs(dx)
			for _, cand := range []Position{{from.X + dx, from.Y + dy}, {from.X + dx, from.Y - dy}} {
				if c.qualifiesAsDropSpot(cand) && (!found || less(cand, best)) {
					best = cand
					found = true
				}
				if dy == 0 {
					break // avoid scoring the same cell twice
				}
			}
		}
		if found {
			return best, true
		}
	}
	return Position{}, false
}

// less gives a deterministic order for equally distant candidates.
func less(a, b Position) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func (c *TickContext) qualifiesAsDropSpot(pos Position) bool {
	if !c.Grid.Walkable(pos) || c.Grid.InOwnZone(pos) || c.OccupiedByItem(pos) {
		return false
	}
	for _, n := range Neighbours4(pos) {
		if c.Grid.InBounds(n) && c.Grid.InOwnZone(n) {
			return true
		}
	}
	return false
}

// BestValueTarget picks the best ground item matching pred that self can
// actually reach. Value dominates; distance only breaks value ties. An
// unreachable high-value item never beats a reachable low-value one.
func (c *TickContext) BestValueTarget(self Character, pred func(Item) bool) (Item, bool) {
	walk := c.Grid.WalkFunc()
	best := Item{}
	found := false

	for _, it := range c.items {
		if !pred(it) {
			continue
		}
		if !Reachable(self.Position, it.Position, walk) {
			continue
		}
		if !found || betterValueTarget(it, best, self.Position) {
			best = it
			found = true
		}
	}
	return best, found
}

func betterValueTarget(cand, cur Item, from Position) bool {
	if cand.Value != cur.Value {
		return cand.Value > cur.Value
	}
	return Manhattan(cand.Position, from) < Manhattan(cur.Position, from)
}

// NearestItem returns the closest reachable item matching pred, by Manhattan
// distance. Used where proximity matters more than value, e.g. radiant
// removal from our own zone.
func (c *TickContext) NearestItem(self Character, pred func(Item) bool) (Item, bool) {
	walk := c.Grid.WalkFunc()
	best := Item{}
	bestDist := math.MaxInt32
	found := false

	for _, it := range c.items {
		if !pred(it) {
			continue
		}
		d := Manhattan(self.Position, it.Position)
		if d >= bestDist {
			continue
		}
		if !Reachable(self.Position, it.Position, walk) {
			continue
		}
		best = it
		bestDist = d
		found = true
	}
	return best, found
}

// SafestHomeCell picks the own-territory cell a carrier should deliver
// toward: reachable, and preferring low enemy pressure (count of living
// enemies within the risk radius) over raw distance.
func (c *TickContext) SafestHomeCell(self Character) (Position, bool) {
	walk := c.Grid.WalkFunc()
	enemies := c.LivingEnemies()

	best := Position{}
	bestRisk := math.MaxInt32
	bestDist := math.MaxInt32
	found := false

	for x := 0; x < c.Grid.Width(); x++ {
		for y := 0; y < c.Grid.Height(); y++ {
			pos := Position{x, y}
			if !c.Grid.InOwnZone(pos) || !c.Grid.Walkable(pos) {
				continue
			}
			risk := 0
			for _, e := range enemies {
				if Manhattan(e.Position, pos) <= c.Tuning.DeliveryRiskRadius {
					risk++
				}
			}
			dist := Manhattan(self.Position, pos)
			if risk > bestRisk || (risk == bestRisk && dist >= bestDist) {
				continue
			}
			if !Reachable(self.Position, pos, walk) {
				continue
			}
			best = pos
			bestRisk = risk
			bestDist = dist
			found = true
		}
	}
	return best, found
}

// BestPatrolCell picks the border cell with the highest coverage score:
// the base border score plus a bonus per own-territory cell in the 3x3
// neighbourhood, favouring spots that watch the most territory.
func (c *TickContext) BestPatrolCell() (Position, bool) {
	best := Position{}
	bestScore := math.Inf(-1)
	found := false

	for _, b := range c.Grid.BorderCells() {
		coverage := 0
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				n := Position{b.X + dx, b.Y + dy}
				if c.Grid.Walkable(n) && c.Grid.InOwnZone(n) {
					coverage++
				}
			}
		}
		score := c.Tuning.PatrolBase + float64(coverage)*c.Tuning.PatrolCoverageWeight
		if score > bestScore {
			bestScore = score
			best = b
			found = true
		}
	}
	return best, found
}
