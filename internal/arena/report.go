package arena

import (
	"fmt"
	"strings"

	"blitzbot/internal/bot"
)

// Report renders a pasteable plain-text summary of the match: scores, the
// full roster, and the recent event and decision history. lastTicks bounds
// how far back the history sections reach.
func (m *Match) Report(lastTicks int) string {
	if lastTicks <= 0 {
		lastTicks = 60
	}
	fromTick := m.tick - lastTicks + 1
	if fromTick < 0 {
		fromTick = 0
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- blitzbot match report ---\n")
	fmt.Fprintf(&b, "layout=%s tick_range=[%d..%d]\n", m.layout.Name, fromTick, m.tick)
	ids := m.TeamIDs()
	fmt.Fprintf(&b, "score: %s=%d %s=%d\n\n", ids[0], m.Score(ids[0]), ids[1], m.Score(ids[1]))

	for _, team := range ids {
		fmt.Fprintf(&b, "== %s ==\n", team)
		for i, a := range m.Agents(team) {
			status := "alive"
			if !a.Alive {
				status = fmt.Sprintf("down (back T=%d)", a.respawnAt)
			}
			fmt.Fprintf(&b, "  %s %-8s (%2d,%2d) %-18s carrying=%s\n",
				a.ID, bot.RoleName(i), a.Pos.X, a.Pos.Y, status, cargoString(a.Carried))
		}
		b.WriteByte('\n')
	}

	writeSection := func(title string, entries []bot.DecisionEntry) {
		fmt.Fprintf(&b, "== %s ==\n", title)
		wrote := false
		for _, e := range entries {
			if e.Tick < fromTick {
				continue
			}
			b.WriteString("  ")
			b.WriteString(e.String())
			b.WriteByte('\n')
			wrote = true
		}
		if !wrote {
			b.WriteString("  (nothing in range)\n")
		}
		b.WriteByte('\n')
	}

	writeSection("match events", m.log.Entries())
	for _, team := range ids {
		writeSection(team+" decisions", m.EngineLog(team).Entries())
	}
	return b.String()
}

func cargoString(items []bot.Item) string {
	if len(items) == 0 {
		return "nothing"
	}
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, fmt.Sprintf("%s(%+d)", it.Type, it.Value))
	}
	return strings.Join(names, ",")
}
