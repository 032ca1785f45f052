package bot

// TickContext is the per-tick working state shared by every policy run in
// the same tick: the grid index with its border cache, the target registry,
// and a working copy of the item list that reflects our own grabs and drops
// as they are decided, so later agents in the same tick see them.
//
// A context is built once per Decide call and discarded; nothing in it
// survives the tick.
type TickContext struct {
	State   *TeamGameState
	Grid    *GridIndex
	Tuning  Tuning
	Targets *TargetRegistry
	Log     *DecisionLog

	items     []Item
	itemCount map[Position]int
}

// NewTickContext builds the context for one tick. This is the single reset
// point for all cross-agent state.
func NewTickContext(state *TeamGameState, tuning Tuning, log *DecisionLog) *TickContext {
	ctx := &TickContext{
		State:     state,
		Grid:      NewGridIndex(&state.Map, state.TeamZoneGrid, state.CurrentTeamID),
		Tuning:    tuning,
		Targets:   NewTargetRegistry(),
		Log:       log,
		itemCount: make(map[Position]int, len(state.Items)),
	}
	ctx.items = make([]Item, 0, len(state.Items))
	for _, it := range state.Items {
		if !ctx.Grid.InBounds(it.Position) {
			continue // malformed snapshot entry; skip, don't abort the tick
		}
		ctx.items = append(ctx.items, it)
		ctx.itemCount[it.Position]++
	}
	return ctx
}

// Items returns the tick's item list including local effects applied so far.
// The slice is shared; callers must not mutate it.
func (c *TickContext) Items() []Item { return c.items }

// OccupiedByItem reports whether any item sits at pos.
func (c *TickContext) OccupiedByItem(pos Position) bool {
	return c.itemCount[pos] > 0
}

// LivingEnemies yields the alive entries of the snapshot's enemy list.
func (c *TickContext) LivingEnemies() []Character {
	out := make([]Character, 0, len(c.State.OtherCharacters))
	for _, e := range c.State.OtherCharacters {
		if e.Alive {
			out = append(out, e)
		}
	}
	return out
}

// CarriedItems returns ch's carried items clamped to capacity, guarding
// against snapshots that claim more than the rules allow.
func (c *TickContext) CarriedItems(ch Character) []Item {
	items := ch.CarriedItems
	if max := c.State.MaxCarry(); len(items) > max {
		items = items[:max]
	}
	return items
}

// HasSpace reports whether ch can pick up another item.
func (c *TickContext) HasSpace(ch Character) bool {
	n := ch.NumberOfCarriedItems
	if carried := len(ch.CarriedItems); carried > n {
		n = carried
	}
	return n < c.State.MaxCarry()
}

// ApplyLocalEffect folds one of our own decided actions back into the item
// working copy: a drop materialises the dropped item on the agent's cell, a
// grab removes the item under it. Movement needs no bookkeeping — positions
// only change after the harness applies the tick.
func (c *TickContext) ApplyLocalEffect(ch Character, act Action) {
	switch act.Type {
	case ActionDrop:
		carried := c.CarriedItems(ch)
		if len(carried) == 0 {
			return
		}
		dropped := carried[len(carried)-1]
		dropped.Position = ch.Position
		c.items = append(c.items, dropped)
		c.itemCount[ch.Position]++
	case ActionGrab:
		for i, it := range c.items {
			if it.Position == ch.Position {
				c.items = append(c.items[:i], c.items[i+1:]...)
				c.itemCount[ch.Position]--
				return
			}
		}
	}
}
