package bot

import (
	"fmt"
	"math"
	"sort"
)

// Defender holds the line: it claims the most threatening enemy through the
// tick's target registry, engages intruders, intercepts approaches at the
// border, and spends idle time clearing radiant out of our zone or
// patrolling.
type Defender struct{}

// Decide returns the defender's action for this tick.
func (Defender) Decide(ctx *TickContext, ch Character) (Action, bool) {
	if !ch.Alive {
		return Action{}, false
	}

	target, hasTarget := claimTarget(ctx, ch)

	if hasTarget {
		enemyPos := target.LastSeen

		// Engage: intruder inside our territory. Contact resolves the
		// interception on the engine side, so adjacency means hold still.
		if ctx.Grid.InOwnZone(enemyPos) {
			if Manhattan(ch.Position, enemyPos) <= 1 {
				ctx.Log.Add(ctx.State.CurrentTickNumber, ch.ID, "defender", "hold",
					fmt.Sprintf("in contact with %s", target.EnemyID))
				return Action{}, false
			}
			return stepToward(ctx, ch, enemyPos, false)
		}

		// Intercept: enemy still outside. Head for the border cell that
		// balances our travel against the enemy's approach.
		intercept, ok := ctx.BestBorderPosition(ch.Position, enemyPos)
		if ok && ctx.Grid.IsBorder(ch.Position) &&
			Manhattan(ch.Position, enemyPos) <= Manhattan(intercept, enemyPos)+1 {
			// Already well placed. Use the idle time on cleanup, else hold.
			if act, ok := cleanupDuty(ctx, ch); ok {
				return act, true
			}
			ctx.Log.Add(ctx.State.CurrentTickNumber, ch.ID, "defender", "hold",
				fmt.Sprintf("at border, waiting on %s", target.EnemyID))
			return Action{}, false
		}
		if ok {
			return stepToward(ctx, ch, intercept, false)
		}
	}

	// No target: cleanup, then patrol.
	if act, ok := cleanupDuty(ctx, ch); ok {
		return act, true
	}
	if patrol, ok := ctx.BestPatrolCell(); ok {
		ctx.Log.Add(ctx.State.CurrentTickNumber, ch.ID, "defender", "patrol",
			fmt.Sprintf("toward (%d,%d)", patrol.X, patrol.Y))
		return stepToward(ctx, ch, patrol, false)
	}
	return Action{}, false
}

// claimTarget recomputes threat for all living enemies and claims the
// highest-threat one not already held by a different defender. Claims are
// exclusive for the tick: the registry never hands the same enemy to two
// defenders.
func claimTarget(ctx *TickContext, ch Character) (Target, bool) {
	enemies := ctx.LivingEnemies()

	alive := make(map[string]bool, len(enemies))
	for _, e := range enemies {
		alive[e.ID] = true
	}
	ctx.Targets.Prune(alive)

	type scored struct {
		enemy  Character
		threat float64
	}
	ranked := make([]scored, 0, len(enemies))
	for _, e := range enemies {
		if t := ctx.ThreatLevel(e); t > 0 {
			ranked = append(ranked, scored{e, t})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].threat > ranked[j].threat })

	for _, s := range ranked {
		if holder, held := ctx.Targets.Holder(s.enemy.ID); held && holder != ch.ID {
			continue
		}
		ctx.Targets.Claim(s.enemy.ID, ch.ID, s.threat, s.enemy.Position)
		ctx.Log.Add(ctx.State.CurrentTickNumber, ch.ID, "defender", "target",
			fmt.Sprintf("%s threat=%.0f", s.enemy.ID, s.threat))
		return Target{EnemyID: s.enemy.ID, DefenderID: ch.ID, Threat: s.threat, LastSeen: s.enemy.Position}, true
	}
	return Target{}, false
}

// cleanupDuty opportunistically removes a nearby radiant from our zone and
// carries it just across the border. It only fires when the round trip stays
// inside the budget — cleanup never pulls a defender far from its post.
func cleanupDuty(ctx *TickContext, ch Character) (Action, bool) {
	carried := ctx.CarriedItems(ch)

	// Carrying a picked-up radiant: finish the run. The drop leg may step
	// outside our territory, since qualifying drop cells sit just beyond it.
	if len(carried) > 0 {
		if !carriesAny(carried, Item.IsRadiant) {
			return Action{}, false
		}
		if !ctx.Grid.InOwnZone(ch.Position) && ctx.qualifiesAsDropSpot(ch.Position) {
			ctx.Log.Add(ctx.State.CurrentTickNumber, ch.ID, "defender", "cleanup",
				fmt.Sprintf("dumped radiant at (%d,%d)", ch.Position.X, ch.Position.Y))
			return Drop(ch.ID), true
		}
		spot, ok := ctx.NearestDropSpot(ch.Position, ctx.Tuning.DropSearchRadius)
		if !ok {
			return Action{}, false
		}
		return stepToward(ctx, ch, spot, true)
	}

	// Not safe to leave post with enemies close by.
	for _, e := range ctx.LivingEnemies() {
		if Manhattan(ch.Position, e.Position) <= ctx.Tuning.CleanupSafetyRadius {
			return Action{}, false
		}
	}

	itemPos, dropPos, ok := findCleanupRun(ctx, ch)
	if !ok {
		return Action{}, false
	}
	if ch.Position == itemPos {
		ctx.Log.Add(ctx.State.CurrentTickNumber, ch.ID, "defender", "cleanup",
			fmt.Sprintf("grabbed radiant at (%d,%d)", itemPos.X, itemPos.Y))
		return Grab(ch.ID), true
	}
	_ = dropPos
	return stepToward(ctx, ch, itemPos, false)
}

// findCleanupRun locates the nearest radiant in our zone within pick-up
// range, pairs it with a drop spot, and checks the total trip budget.
func findCleanupRun(ctx *TickContext, ch Character) (itemPos, dropPos Position, ok bool) {
	bestDist := math.MaxInt32
	found := false
	for _, it := range ctx.Items() {
		if it.Value >= 0 || !ctx.Grid.InOwnZone(it.Position) {
			continue
		}
		d := Manhattan(ch.Position, it.Position)
		if d <= ctx.Tuning.CleanupItemRadius && d < bestDist {
			bestDist = d
			itemPos = it.Position
			found = true
		}
	}
	if !found {
		return Position{}, Position{}, false
	}

	dropPos, ok = ctx.NearestDropSpot(itemPos, ctx.Tuning.DropSearchRadius)
	if !ok {
		return Position{}, Position{}, false
	}
	if bestDist+Manhattan(itemPos, dropPos) > ctx.Tuning.CleanupBudget {
		return Position{}, Position{}, false
	}
	return itemPos, dropPos, true
}

// stepToward is the defender movement primitive: of the four orthogonal
// steps, keep the walkable ones inside our territory (unless allowOutside)
// and take the one minimising distance to goal, with a distance discount for
// steps landing adjacent to a living enemy — contact is the point.
func stepToward(ctx *TickContext, ch Character, goal Position, allowOutside bool) (Action, bool) {
	enemies := ctx.LivingEnemies()

	bestScore := math.MaxInt32
	var best Position
	found := false

	for _, next := range Neighbours4(ch.Position) {
		if !ctx.Grid.Walkable(next) {
			continue
		}
		if !allowOutside && !ctx.Grid.InOwnZone(next) {
			continue
		}
		score := Manhattan(next, goal)
		for _, e := range enemies {
			if Manhattan(next, e.Position) <= 1 {
				score -= ctx.Tuning.InterceptBonus
				break
			}
		}
		if score < bestScore {
			bestScore = score
			best = next
			found = true
		}
	}
	if !found {
		return Action{}, false
	}
	act, ok := StepAction(ch.ID, ch.Position, best)
	if ok {
		ctx.Log.Add(ctx.State.CurrentTickNumber, ch.ID, "defender", "move",
			fmt.Sprintf("step to (%d,%d) toward (%d,%d)", best.X, best.Y, goal.X, goal.Y))
	}
	return act, ok
}
