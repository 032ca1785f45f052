package arena

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"blitzbot/internal/bot"
)

// Agent is one character living in the arena. The decision engine only ever
// sees it through a snapshot; the arena owns the authoritative state.
type Agent struct {
	ID      string
	TeamID  string
	Spawn   bot.Position
	Pos     bot.Position
	Alive   bool
	Carried []bot.Item

	respawnAt int
}

// side is one team's half of the match: its engine plus its agents in
// stable slot order (slot parity drives role assignment).
type side struct {
	id      string
	engine  *bot.Engine
	log     *bot.DecisionLog
	agents  []*Agent
	passive bool
}

// Match is a self-contained local game: it feeds snapshots to each team's
// engine, applies the returned actions, and resolves interception, respawn
// and item scoring. It mirrors the external game server closely enough to
// exercise both role policies without any network in the loop.
type Match struct {
	layout *Layout
	sides  [2]*side
	items  []bot.Item
	tick   int
	rng    *rand.Rand
	log    *bot.DecisionLog

	tuning       bot.Tuning
	respawnDelay int
	maxCarry     int
	spawnEvery   int
	spawnValue   int
}

// matchOptionKind controls the pass in which an option is applied.
type matchOptionKind int

const (
	matchOptInfra matchOptionKind = iota // layout, seed, rules — applied first
	matchOptActor                        // agents and ground items — applied after the layout exists
)

// MatchOption is a builder function applied to a Match during construction.
type MatchOption struct {
	kind matchOptionKind
	fn   func(*Match)
}

// WithLayout sets the arena map.
func WithLayout(l *Layout) MatchOption {
	return MatchOption{matchOptInfra, func(m *Match) { m.layout = l }}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) MatchOption {
	return MatchOption{matchOptInfra, func(m *Match) {
		m.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- local simulation
	}}
}

// WithTuning overrides the engine tuning for both teams.
func WithTuning(t bot.Tuning) MatchOption {
	return MatchOption{matchOptInfra, func(m *Match) { m.tuning = t }}
}

// WithRespawnDelay sets how many ticks a killed agent stays down.
func WithRespawnDelay(n int) MatchOption {
	return MatchOption{matchOptInfra, func(m *Match) { m.respawnDelay = n }}
}

// WithMaxCarry sets the per-agent carry capacity.
func WithMaxCarry(n int) MatchOption {
	return MatchOption{matchOptInfra, func(m *Match) { m.maxCarry = n }}
}

// WithBlitziumSpawner drops a fresh blitzium ingot of the given value on a
// random free cell every n ticks, keeping long matches supplied.
func WithBlitziumSpawner(every, value int) MatchOption {
	return MatchOption{matchOptInfra, func(m *Match) {
		m.spawnEvery = every
		m.spawnValue = value
	}}
}

// WithPassiveTeam disables the named team's engine: its agents stand still.
// Used by scenario tests that need a fixed intruder or victim.
func WithPassiveTeam(team string) MatchOption {
	return MatchOption{matchOptActor, func(m *Match) {
		for _, s := range m.sides {
			if s != nil && s.id == team {
				s.passive = true
			}
		}
	}}
}

// WithAgent adds an agent to the named team, spawning at (x,y).
func WithAgent(team string, x, y int) MatchOption {
	return MatchOption{matchOptActor, func(m *Match) { m.addAgent(team, bot.Position{X: x, Y: y}) }}
}

// WithGroundItem places an item on the floor.
func WithGroundItem(item bot.Item) MatchOption {
	return MatchOption{matchOptActor, func(m *Match) { m.items = append(m.items, item) }}
}

// NewMatch constructs a match in two ordered passes: infrastructure first
// (layout, seed, rules), then agents and items once the layout is fixed.
// The default arena is the open-field layout with nothing on it.
func NewMatch(opts ...MatchOption) *Match {
	m := &Match{
		rng:          rand.New(rand.NewSource(1)), // #nosec G404 -- local simulation default
		log:          bot.NewDecisionLog(),
		tuning:       bot.DefaultTuning(),
		respawnDelay: 10,
		maxCarry:     2,
	}
	if l, err := BuiltinLayout("open-field", "alpha", "bravo"); err == nil {
		m.layout = l
	}
	m.sides[0] = &side{}
	m.sides[1] = &side{}
	for _, o := range opts {
		if o.kind == matchOptInfra {
			o.fn(m)
		}
	}
	m.sides[0].id = m.layout.TeamA
	m.sides[1].id = m.layout.TeamB
	for _, s := range m.sides {
		s.log = bot.NewDecisionLog()
		s.engine = bot.NewEngine(m.tuning, s.log)
	}
	for _, o := range opts {
		if o.kind == matchOptActor {
			o.fn(m)
		}
	}
	return m
}

func (m *Match) addAgent(team string, pos bot.Position) {
	s := m.sideOf(team)
	if s == nil {
		return
	}
	s.agents = append(s.agents, &Agent{
		ID:     uuid.NewString()[:8],
		TeamID: team,
		Spawn:  pos,
		Pos:    pos,
		Alive:  true,
	})
}

func (m *Match) sideOf(team string) *side {
	for _, s := range m.sides {
		if s.id == team {
			return s
		}
	}
	return nil
}

// Tick returns the current match tick.
func (m *Match) Tick() int { return m.tick }

// Layout returns the arena map.
func (m *Match) Layout() *Layout { return m.layout }

// Items returns the items currently on the floor.
func (m *Match) Items() []bot.Item { return m.items }

// Log returns the match event log (kill, respawn, grab, drop).
func (m *Match) Log() *bot.DecisionLog { return m.log }

// TeamIDs returns both team ids, side A first.
func (m *Match) TeamIDs() [2]string { return [2]string{m.sides[0].id, m.sides[1].id} }

// Agents returns the named team's agents in slot order.
func (m *Match) Agents(team string) []*Agent {
	if s := m.sideOf(team); s != nil {
		return s.agents
	}
	return nil
}

// EngineLog returns the named team's decision log.
func (m *Match) EngineLog(team string) *bot.DecisionLog {
	if s := m.sideOf(team); s != nil {
		return s.log
	}
	return nil
}

// Score is the summed value of floor items inside the named team's zone.
// Blitzium parked at home counts up, radiant not yet dumped counts down.
func (m *Match) Score(team string) int {
	total := 0
	for _, it := range m.items {
		if m.layout.ZoneAt(it.Position) == team {
			total += it.Value
		}
	}
	return total
}

// Snapshot builds the wire-shaped state the named team's engine consumes.
// Dead agents are included with Alive=false so role slots stay stable.
func (m *Match) Snapshot(team string) *bot.TeamGameState {
	s := m.sideOf(team)
	if s == nil {
		return nil
	}

	state := &bot.TeamGameState{
		CurrentTeamID:     team,
		CurrentTickNumber: m.tick,
		Map: bot.GameMap{
			Width:  m.layout.Width,
			Height: m.layout.Height,
			Tiles:  m.layout.Tiles,
		},
		TeamZoneGrid: m.layout.Zones,
		Items:        append([]bot.Item(nil), m.items...),
		Constants: bot.GameConstants{
			MaxNumberOfItemsCarriedPerCharacter: m.maxCarry,
		},
	}
	for _, other := range m.sides {
		for _, a := range other.agents {
			ch := bot.Character{
				ID:                   a.ID,
				TeamID:               a.TeamID,
				Position:             a.Pos,
				Alive:                a.Alive,
				CarriedItems:         append([]bot.Item(nil), a.Carried...),
				NumberOfCarriedItems: len(a.Carried),
			}
			if other == s {
				state.YourCharacters = append(state.YourCharacters, ch)
			} else {
				state.OtherCharacters = append(state.OtherCharacters, ch)
			}
		}
	}
	return state
}

// Step advances the match one tick: both engines decide and act, then
// interception and respawns resolve.
func (m *Match) Step() {
	m.tick++
	if m.spawnEvery > 0 && m.tick%m.spawnEvery == 0 {
		m.spawnBlitzium()
	}
	for _, s := range m.sides {
		if s.passive || len(s.agents) == 0 {
			continue
		}
		snap := m.Snapshot(s.id)
		for _, act := range s.engine.Decide(snap) {
			m.apply(s, act)
		}
	}
	m.resolveInterceptions()
	m.processRespawns()
}

// RunTicks advances the match n ticks.
func (m *Match) RunTicks(n int) {
	for i := 0; i < n; i++ {
		m.Step()
	}
}

// RunUntil advances the match up to maxTicks, stopping early once predicate
// holds. Returns the tick it first held, or -1.
func (m *Match) RunUntil(predicate func(*Match) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		m.Step()
		if predicate(m) {
			return m.tick
		}
	}
	return -1
}

// spawnBlitzium places a fresh ingot on a random walkable item-free cell.
// Gives up quietly on crowded maps.
func (m *Match) spawnBlitzium() {
	for attempt := 0; attempt < 50; attempt++ {
		pos := bot.Position{X: m.rng.Intn(m.layout.Width), Y: m.rng.Intn(m.layout.Height)}
		if !m.layout.Walkable(pos) {
			continue
		}
		occupied := false
		for _, it := range m.items {
			if it.Position == pos {
				occupied = true
				break
			}
		}
		if occupied {
			continue
		}
		m.items = append(m.items, bot.Item{Position: pos, Type: "blitzium_ingot", Value: m.spawnValue})
		return
	}
}

// stepOffsets maps single-step action types to their grid offsets.
var stepOffsets = map[bot.ActionType]bot.Position{
	bot.ActionMoveUp:    {X: 0, Y: -1},
	bot.ActionMoveDown:  {X: 0, Y: 1},
	bot.ActionMoveLeft:  {X: -1, Y: 0},
	bot.ActionMoveRight: {X: 1, Y: 0},
}

// apply executes one action for one of s's agents. Invalid actions are
// dropped silently, exactly as the external server drops them.
func (m *Match) apply(s *side, act bot.Action) {
	var agent *Agent
	for _, a := range s.agents {
		if a.ID == act.CharacterID {
			agent = a
			break
		}
	}
	if agent == nil || !agent.Alive {
		return
	}

	switch act.Type {
	case bot.ActionMoveUp, bot.ActionMoveDown, bot.ActionMoveLeft, bot.ActionMoveRight:
		off := stepOffsets[act.Type]
		next := bot.Position{X: agent.Pos.X + off.X, Y: agent.Pos.Y + off.Y}
		if m.layout.Walkable(next) {
			agent.Pos = next
		}
	case bot.ActionMoveTo:
		if act.Position == nil {
			return
		}
		path := bot.AStarClassic(agent.Pos, *act.Position, m.layout.Walkable)
		if len(path) >= 2 {
			agent.Pos = path[1]
		}
	case bot.ActionGrab:
		m.applyGrab(agent)
	case bot.ActionDrop:
		m.applyDrop(agent)
	}
}

func (m *Match) applyGrab(agent *Agent) {
	if len(agent.Carried) >= m.maxCarry {
		return
	}
	for i, it := range m.items {
		if it.Position == agent.Pos {
			agent.Carried = append(agent.Carried, it)
			m.items = append(m.items[:i], m.items[i+1:]...)
			m.log.Add(m.tick, agent.ID, agent.TeamID, "grab",
				fmt.Sprintf("%s at (%d,%d)", it.Type, agent.Pos.X, agent.Pos.Y))
			return
		}
	}
}

func (m *Match) applyDrop(agent *Agent) {
	if len(agent.Carried) == 0 {
		return
	}
	it := agent.Carried[len(agent.Carried)-1]
	agent.Carried = agent.Carried[:len(agent.Carried)-1]
	it.Position = agent.Pos
	m.items = append(m.items, it)
	m.log.Add(m.tick, agent.ID, agent.TeamID, "drop",
		fmt.Sprintf("%s at (%d,%d)", it.Type, agent.Pos.X, agent.Pos.Y))
}

// resolveInterceptions kills every living agent standing in enemy territory
// with a living enemy on an orthogonally adjacent or shared cell. Kills are
// collected first and applied together so mutual interceptions both land.
func (m *Match) resolveInterceptions() {
	var killed []*Agent
	for i, s := range m.sides {
		enemy := m.sides[1-i]
		for _, a := range s.agents {
			if !a.Alive || m.layout.ZoneAt(a.Pos) != enemy.id {
				continue
			}
			for _, e := range enemy.agents {
				if e.Alive && bot.Manhattan(a.Pos, e.Pos) <= 1 {
					killed = append(killed, a)
					break
				}
			}
		}
	}
	for _, a := range killed {
		m.kill(a)
	}
}

// kill downs the agent, scattering its cargo on the cell where it fell.
func (m *Match) kill(a *Agent) {
	for _, it := range a.Carried {
		it.Position = a.Pos
		m.items = append(m.items, it)
	}
	a.Carried = nil
	a.Alive = false
	a.respawnAt = m.tick + m.respawnDelay
	m.log.Add(m.tick, a.ID, a.TeamID, "kill",
		fmt.Sprintf("intercepted at (%d,%d)", a.Pos.X, a.Pos.Y))
}

func (m *Match) processRespawns() {
	for _, s := range m.sides {
		for _, a := range s.agents {
			if a.Alive || m.tick < a.respawnAt {
				continue
			}
			a.Alive = true
			a.Pos = a.Spawn
			m.log.Add(m.tick, a.ID, a.TeamID, "respawn",
				fmt.Sprintf("at (%d,%d)", a.Pos.X, a.Pos.Y))
		}
	}
}
