package main

import (
	"flag"
	"fmt"

	"blitzbot/internal/arena"
	"blitzbot/internal/bot"
)

type runStats struct {
	runIndex int
	seed     int64

	scoreA int
	scoreB int

	grabs    int
	drops    int
	kills    int
	respawns int

	targetClaims int
	cleanups     int
	noopTicks    int

	firstGrabTick  int
	firstKillTick  int
	firstScoreTick int
}

func main() {
	var (
		runs       int
		ticks      int
		seedBase   int64
		seedStep   int64
		layoutName string
		agents     int
	)
	flag.IntVar(&runs, "runs", 5, "number of headless match runs")
	flag.IntVar(&ticks, "ticks", 600, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&layoutName, "layout", "open-field", "arena layout name")
	flag.IntVar(&agents, "agents", 4, "agents per team")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if _, err := arena.BuiltinLayout(layoutName, "alpha", "bravo"); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Match Report ===\n")
	fmt.Printf("layout=%s runs=%d ticks=%d agents=%d seed_base=%d seed_step=%d\n\n",
		layoutName, runs, ticks, agents, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runMatch(i+1, seed, ticks, layoutName, agents)
		all = append(all, stats)
		printRun(stats)
	}
	printAggregate(all)
}

func runMatch(runIndex int, seed int64, ticks int, layoutName string, agents int) runStats {
	layout, err := arena.BuiltinLayout(layoutName, "alpha", "bravo")
	if err != nil {
		panic(err) // validated in main
	}
	opts := []arena.MatchOption{
		arena.WithLayout(layout),
		arena.WithSeed(seed),
		arena.WithBlitziumSpawner(20, 10),
	}
	for i := 0; i < agents; i++ {
		y := 1 + i%(layout.Height-2)
		opts = append(opts,
			arena.WithAgent("alpha", 1, y),
			arena.WithAgent("bravo", layout.Width-2, y),
		)
	}
	m := arena.NewMatch(opts...)

	rs := runStats{runIndex: runIndex, seed: seed, firstScoreTick: -1}
	for i := 0; i < ticks; i++ {
		m.Step()
		if rs.firstScoreTick < 0 && (m.Score("alpha") != 0 || m.Score("bravo") != 0) {
			rs.firstScoreTick = m.Tick()
		}
	}

	rs.scoreA = m.Score("alpha")
	rs.scoreB = m.Score("bravo")
	rs.grabs = m.Log().Count("grab")
	rs.drops = m.Log().Count("drop")
	rs.kills = m.Log().Count("kill")
	rs.respawns = m.Log().Count("respawn")
	rs.firstGrabTick = firstTick(m.Log().Entries(), "grab")
	rs.firstKillTick = firstTick(m.Log().Entries(), "kill")

	for _, team := range []string{"alpha", "bravo"} {
		el := m.EngineLog(team)
		rs.targetClaims += el.Count("target")
		rs.cleanups += el.Count("cleanup")
	}
	rs.noopTicks = noopTicks(ticks, agents*2, decisionsLogged(m))
	return rs
}

// decisionsLogged counts how many per-agent decisions both engines recorded.
func decisionsLogged(m *arena.Match) int {
	total := 0
	for _, team := range m.TeamIDs() {
		total += len(m.EngineLog(team).Entries())
	}
	return total
}

// noopTicks estimates idle agent-ticks: every agent-tick without a logged
// decision emitted nothing. Floored at zero since one decision can log more
// than one line.
func noopTicks(ticks, agents, decisions int) int {
	idle := ticks*agents - decisions
	if idle < 0 {
		return 0
	}
	return idle
}

func firstTick(entries []bot.DecisionEntry, category string) int {
	for _, e := range entries {
		if e.Category == category {
			return e.Tick
		}
	}
	return -1
}

// verdict names the winner, or "draw".
func verdict(scoreA, scoreB int) string {
	switch {
	case scoreA > scoreB:
		return "alpha"
	case scoreB > scoreA:
		return "bravo"
	default:
		return "draw"
	}
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("score: alpha=%d bravo=%d verdict=%s\n", rs.scoreA, rs.scoreB, verdict(rs.scoreA, rs.scoreB))
	fmt.Printf("events: grab=%d drop=%d kill=%d respawn=%d\n", rs.grabs, rs.drops, rs.kills, rs.respawns)
	fmt.Printf("decisions: target_claims=%d cleanups=%d idle_agent_ticks=%d\n",
		rs.targetClaims, rs.cleanups, rs.noopTicks)
	fmt.Printf("phase_markers: first_grab=%d first_kill=%d first_score=%d\n\n",
		rs.firstGrabTick, rs.firstKillTick, rs.firstScoreTick)
}

func printAggregate(all []runStats) {
	var scoreA, scoreB, grabs, drops, kills, claims, cleanups int
	winsA, winsB, draws := 0, 0, 0
	grabTicks := make([]int, 0, len(all))
	killTicks := make([]int, 0, len(all))
	for _, rs := range all {
		scoreA += rs.scoreA
		scoreB += rs.scoreB
		grabs += rs.grabs
		drops += rs.drops
		kills += rs.kills
		claims += rs.targetClaims
		cleanups += rs.cleanups
		switch verdict(rs.scoreA, rs.scoreB) {
		case "alpha":
			winsA++
		case "bravo":
			winsB++
		default:
			draws++
		}
		if rs.firstGrabTick >= 0 {
			grabTicks = append(grabTicks, rs.firstGrabTick)
		}
		if rs.firstKillTick >= 0 {
			killTicks = append(killTicks, rs.firstKillTick)
		}
	}

	n := len(all)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d wins: alpha=%d bravo=%d draw=%d\n", n, winsA, winsB, draws)
	fmt.Printf("avg_score_per_run: alpha=%.1f bravo=%.1f\n", avg(scoreA, n), avg(scoreB, n))
	fmt.Printf("avg_events_per_run: grab=%.1f drop=%.1f kill=%.1f target_claims=%.1f cleanups=%.1f\n",
		avg(grabs, n), avg(drops, n), avg(kills, n), avg(claims, n), avg(cleanups, n))
	fmt.Printf("phase_marker_avg_ticks: first_grab=%s first_kill=%s\n",
		avgTickString(grabTicks), avgTickString(killTicks))
}

func avg(sum, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
