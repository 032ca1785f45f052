package bot

import "fmt"

// Carrier hauls resources: blitzium home, radiant out. It re-evaluates its
// whole priority chain from scratch every tick; the only state it reads is
// the tick context.
type Carrier struct{}

// Decide returns the carrier's action for this tick. Every tier that finds
// no candidate falls through to the next; when all tiers fail the carrier
// emits nothing.
func (Carrier) Decide(ctx *TickContext, ch Character) (Action, bool) {
	if !ch.Alive {
		return Action{}, false
	}

	carried := ctx.CarriedItems(ch)

	// Tier 1: blitzium on board — deliver it.
	if carriesAny(carried, Item.IsBlitzium) {
		if act, ok := deliverHome(ctx, ch); ok {
			return act, true
		}
	}

	// Tier 2: only radiant on board — dump it across the border.
	if carriesAny(carried, Item.IsRadiant) && !carriesAny(carried, Item.IsBlitzium) {
		if act, ok := dumpRadiant(ctx, ch); ok {
			return act, true
		}
	}

	// Tier 3: free capacity — acquire.
	if len(carried) == 0 && ctx.HasSpace(ch) {
		if act, ok := acquire(ctx, ch, carried); ok {
			return act, true
		}
	}

	return Action{}, false
}

func carriesAny(items []Item, pred func(Item) bool) bool {
	for _, it := range items {
		if pred(it) {
			return true
		}
	}
	return false
}

// deliverHome drops in our own zone, or moves toward the safest reachable
// own-territory cell.
func deliverHome(ctx *TickContext, ch Character) (Action, bool) {
	if ctx.Grid.InOwnZone(ch.Position) {
		ctx.Log.Add(ctx.State.CurrentTickNumber, ch.ID, "carrier", "drop",
			fmt.Sprintf("deliver at (%d,%d)", ch.Position.X, ch.Position.Y))
		return Drop(ch.ID), true
	}
	home, ok := ctx.SafestHomeCell(ch)
	if !ok {
		return Action{}, false
	}
	ctx.Log.Add(ctx.State.CurrentTickNumber, ch.ID, "carrier", "move",
		fmt.Sprintf("hauling home via (%d,%d)", home.X, home.Y))
	return MoveTo(ch.ID, home), true
}

// dumpRadiant drops the liability on an empty enemy-zone cell, walking to a
// qualifying spot first when needed.
func dumpRadiant(ctx *TickContext, ch Character) (Action, bool) {
	if ctx.Grid.InEnemyZone(ch.Position) && !ctx.OccupiedByItem(ch.Position) {
		ctx.Log.Add(ctx.State.CurrentTickNumber, ch.ID, "carrier", "drop",
			fmt.Sprintf("dump radiant at (%d,%d)", ch.Position.X, ch.Position.Y))
		return Drop(ch.ID), true
	}

	spot, ok := ctx.NearestDropSpot(ch.Position, ctx.Tuning.DropSearchRadius)
	if !ok || spot == ch.Position || !Reachable(ch.Position, spot, ctx.Grid.WalkFunc()) {
		// spot == current cell means we stand on a qualifying cell that still
		// failed the enemy-zone drop gate (a neutral corridor); idle rather
		// than issue a move to nowhere.
		return Action{}, false
	}
	ctx.Log.Add(ctx.State.CurrentTickNumber, ch.ID, "carrier", "move",
		fmt.Sprintf("carrying radiant to (%d,%d)", spot.X, spot.Y))
	return MoveTo(ch.ID, spot), true
}

// acquire works the pick-up priorities: radiant polluting our zone always
// comes first and has no safety gate — it must go. Blitzium is next, enemy
// zone before neutral, gated on the target cell being safe to stand on.
func acquire(ctx *TickContext, ch Character, carried []Item) (Action, bool) {
	if it, ok := ctx.NearestItem(ch, func(it Item) bool {
		return it.IsRadiant() && ctx.Grid.InOwnZone(it.Position)
	}); ok {
		return moveOrGrab(ctx, ch, it)
	}

	zoneTiers := []func(Position) bool{ctx.Grid.InEnemyZone, ctx.Grid.InNeutralZone}
	for _, inZone := range zoneTiers {
		it, ok := ctx.BestValueTarget(ch, func(it Item) bool {
			return it.IsBlitzium() && inZone(it.Position)
		})
		if ok && ctx.IsSafe(it.Position, carried) {
			return moveOrGrab(ctx, ch, it)
		}
	}
	return Action{}, false
}

func moveOrGrab(ctx *TickContext, ch Character, it Item) (Action, bool) {
	if ch.Position == it.Position {
		ctx.Log.Add(ctx.State.CurrentTickNumber, ch.ID, "carrier", "grab",
			fmt.Sprintf("%s at (%d,%d)", it.Type, it.Position.X, it.Position.Y))
		return Grab(ch.ID), true
	}
	ctx.Log.Add(ctx.State.CurrentTickNumber, ch.ID, "carrier", "move",
		fmt.Sprintf("toward %s at (%d,%d)", it.Type, it.Position.X, it.Position.Y))
	return MoveTo(ch.ID, it.Position), true
}
