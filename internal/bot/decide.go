package bot

// Policy decides one character's action for the tick. The boolean is false
// for a no-op, which emits nothing.
type Policy interface {
	Decide(ctx *TickContext, ch Character) (Action, bool)
}

// Engine is the per-team decision engine: it owns the tuning and the
// decision log and turns one snapshot into one action list per tick. It
// keeps no tactical state between ticks — everything is derived fresh from
// the snapshot through a TickContext.
type Engine struct {
	tuning Tuning
	log    *DecisionLog
}

// NewEngine builds an engine. log may be nil to disable decision logging.
func NewEngine(tuning Tuning, log *DecisionLog) *Engine {
	return &Engine{tuning: tuning, log: log}
}

// Log returns the engine's decision log (nil when logging is disabled).
func (e *Engine) Log() *DecisionLog { return e.log }

// roleFor alternates roles down the character list: even slots haul, odd
// slots defend. Dead characters keep their slot so roles stay stable for
// the match even as characters die and respawn.
func roleFor(index int) Policy {
	if index%2 == 1 {
		return Defender{}
	}
	return Carrier{}
}

// RoleName returns the role label for the character at the given slot.
func RoleName(index int) string {
	if index%2 == 1 {
		return "defender"
	}
	return "carrier"
}

// Decide evaluates every own character in snapshot order and returns their
// actions. Characters whose policy found nothing to do are simply absent
// from the result. Agents are evaluated sequentially against a shared tick
// context, and each decided grab or drop is folded back into the context so
// later agents in the same tick see a consistent item list.
func (e *Engine) Decide(state *TeamGameState) []Action {
	ctx := NewTickContext(state, e.tuning, e.log)

	actions := make([]Action, 0, len(state.YourCharacters))
	for i, ch := range state.YourCharacters {
		act, ok := roleFor(i).Decide(ctx, ch)
		if !ok {
			continue
		}
		actions = append(actions, act)
		ctx.ApplyLocalEffect(ch, act)
	}
	return actions
}
