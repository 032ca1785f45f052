package bot

import "strings"

// Position is an integer grid coordinate. Value type; equality by coordinate.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Manhattan returns the Manhattan distance between two positions.
func Manhattan(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// orthoSteps are the four orthogonal neighbour offsets, in the order the
// defender movement primitive evaluates them.
var orthoSteps = [4]Position{
	{0, 1},  // down
	{0, -1}, // up
	{1, 0},  // right
	{-1, 0}, // left
}

// Neighbours4 returns pos shifted by each orthogonal step. No bounds check —
// callers filter through their own walkability predicate.
func Neighbours4(pos Position) [4]Position {
	return [4]Position{
		{pos.X, pos.Y + 1},
		{pos.X, pos.Y - 1},
		{pos.X + 1, pos.Y},
		{pos.X - 1, pos.Y},
	}
}

// Tile values as the harness encodes them.
const (
	TileWall  = "WALL"
	TileEmpty = "EMPTY"
)

// GameMap is the static map for the whole match. Tiles is indexed [x][y].
type GameMap struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Tiles  [][]string `json:"tiles"`
}

// Item is a resource sitting on the ground or carried by a character.
// Radiant items carry negative value (liabilities to dump in enemy territory),
// blitzium items positive value (assets to bring home).
type Item struct {
	Position Position `json:"position"`
	Type     string   `json:"type"`
	Value    int      `json:"value"`
}

// IsRadiant reports whether the item belongs to the liability family.
func (it Item) IsRadiant() bool { return strings.HasPrefix(it.Type, "radiant") }

// IsBlitzium reports whether the item belongs to the high-value family.
func (it Item) IsBlitzium() bool { return strings.HasPrefix(it.Type, "blitzium") }

// Character is one agent as reported by the snapshot.
type Character struct {
	ID                   string   `json:"id"`
	TeamID               string   `json:"teamId"`
	Position             Position `json:"position"`
	Alive                bool     `json:"alive"`
	CarriedItems         []Item   `json:"carriedItems"`
	NumberOfCarriedItems int      `json:"numberOfCarriedItems"`
}

// CarriesBlitzium reports whether any carried item is blitzium.
func (c Character) CarriesBlitzium() bool {
	for _, it := range c.CarriedItems {
		if it.IsBlitzium() {
			return true
		}
	}
	return false
}

// CarriesRadiant reports whether any carried item is radiant.
func (c Character) CarriesRadiant() bool {
	for _, it := range c.CarriedItems {
		if it.IsRadiant() {
			return true
		}
	}
	return false
}

// CarriedValue is the summed value of all carried items.
func (c Character) CarriedValue() int {
	total := 0
	for _, it := range c.CarriedItems {
		total += it.Value
	}
	return total
}

// GameConstants are the per-match rule constants the harness provides.
type GameConstants struct {
	MaxNumberOfItemsCarriedPerCharacter int `json:"maxNumberOfItemsCarriedPerCharacter"`
}

// TeamGameState is the full per-tick snapshot fed by the harness. It is
// treated as read-only for the duration of the tick; within-tick consistency
// for our own grabs and drops is handled by the TickContext working copy.
type TeamGameState struct {
	CurrentTeamID     string        `json:"currentTeamId"`
	CurrentTickNumber int           `json:"currentTickNumber"`
	Map               GameMap       `json:"map"`
	TeamZoneGrid      [][]string    `json:"teamZoneGrid"`
	YourCharacters    []Character   `json:"yourCharacters"`
	OtherCharacters   []Character   `json:"otherCharacters"`
	Items             []Item        `json:"items"`
	Constants         GameConstants `json:"constants"`
}

// MaxCarry returns the carry capacity with a defensive floor of 1, so a
// malformed snapshot with a zero constant cannot wedge every policy.
func (s *TeamGameState) MaxCarry() int {
	if s.Constants.MaxNumberOfItemsCarriedPerCharacter < 1 {
		return 1
	}
	return s.Constants.MaxNumberOfItemsCarriedPerCharacter
}

// ActionType tags the outbound action variant.
type ActionType string

const (
	ActionMoveUp    ActionType = "MOVE_UP"
	ActionMoveDown  ActionType = "MOVE_DOWN"
	ActionMoveLeft  ActionType = "MOVE_LEFT"
	ActionMoveRight ActionType = "MOVE_RIGHT"
	ActionMoveTo    ActionType = "MOVE_TO"
	ActionGrab      ActionType = "GRAB"
	ActionDrop      ActionType = "DROP"
)

// Action is one command for one character. A no-op is represented by
// emitting no Action at all, so there is no explicit variant for it.
type Action struct {
	Type        ActionType `json:"type"`
	CharacterID string     `json:"characterId"`
	Position    *Position  `json:"position,omitempty"`
}

// MoveTo builds a pathfind-and-walk command toward pos.
func MoveTo(characterID string, pos Position) Action {
	p := pos
	return Action{Type: ActionMoveTo, CharacterID: characterID, Position: &p}
}

// Grab builds a pick-up command for the item under the character.
func Grab(characterID string) Action {
	return Action{Type: ActionGrab, CharacterID: characterID}
}

// Drop builds a put-down command for the last carried item.
func Drop(characterID string) Action {
	return Action{Type: ActionDrop, CharacterID: characterID}
}

// stepActionTypes maps orthoSteps indices to their single-step action types.
var stepActionTypes = [4]ActionType{
	ActionMoveDown,
	ActionMoveUp,
	ActionMoveRight,
	ActionMoveLeft,
}

// StepAction builds the single-step move matching a unit offset. Returns
// false for offsets that are not one of the four orthogonal steps.
func StepAction(characterID string, from, to Position) (Action, bool) {
	d := Position{to.X - from.X, to.Y - from.Y}
	for i, s := range orthoSteps {
		if d == s {
			return Action{Type: stepActionTypes[i], CharacterID: characterID}, true
		}
	}
	return Action{}, false
}
