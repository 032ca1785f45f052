package bot

import (
	"fmt"
	"strings"
)

// DecisionEntry records one reasoning step during a tick.
type DecisionEntry struct {
	Tick      int
	Character string // character id, or "--" for tick-level events
	Role      string // "carrier", "defender", or "--"
	Category  string // target, move, grab, drop, cleanup, patrol, hold
	Detail    string
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] c1       carrier   grab      blitzium_ingot at (4,2)
func (e DecisionEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-8s %-9s %-9s %s",
		e.Tick, e.Character, e.Role, e.Category, e.Detail)
}

// DecisionLog collects structured decision events. It is unbounded and
// machine-filterable, for tests and the headless reporter; the viewer shows
// a bounded tail of it. A nil log is valid and records nothing.
type DecisionLog struct {
	entries []DecisionEntry
}

// NewDecisionLog returns an empty log.
func NewDecisionLog() *DecisionLog {
	return &DecisionLog{}
}

// Add records an event. Safe on a nil receiver so the engine can run
// without logging.
func (l *DecisionLog) Add(tick int, character, role, category, detail string) {
	if l == nil {
		return
	}
	l.entries = append(l.entries, DecisionEntry{
		Tick:      tick,
		Character: character,
		Role:      role,
		Category:  category,
		Detail:    detail,
	})
}

// Entries returns all recorded entries.
func (l *DecisionLog) Entries() []DecisionEntry {
	if l == nil {
		return nil
	}
	return l.entries
}

// Filter returns entries matching category and/or character id. Empty
// strings match anything.
func (l *DecisionLog) Filter(category, character string) []DecisionEntry {
	if l == nil {
		return nil
	}
	var out []DecisionEntry
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if character != "" && e.Character != character {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries match category.
func (l *DecisionLog) Count(category string) int {
	return len(l.Filter(category, ""))
}

// Tail returns the most recent n entries, oldest first.
func (l *DecisionLog) Tail(n int) []DecisionEntry {
	if l == nil || n <= 0 {
		return nil
	}
	if len(l.entries) <= n {
		return l.entries
	}
	return l.entries[len(l.entries)-n:]
}

// Format returns the full log as one string for test output.
func (l *DecisionLog) Format() string {
	if l == nil {
		return ""
	}
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
