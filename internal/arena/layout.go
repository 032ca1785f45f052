package arena

import (
	"fmt"
	"strings"

	"blitzbot/internal/bot"
)

// Layout is a static arena map: tiles plus the initial zone ownership grid.
// Both grids are indexed [x][y], matching the wire schema.
type Layout struct {
	Name   string
	Width  int
	Height int
	Tiles  [][]string
	Zones  [][]string
	TeamA  string
	TeamB  string
}

// Layout row legend:
//
//	#  wall
//	A  team-A territory
//	B  team-B territory
//	.  neutral ground
const (
	cellWall    = '#'
	cellTeamA   = 'A'
	cellTeamB   = 'B'
	cellNeutral = '.'
)

// ParseLayout builds a Layout from ASCII rows. Rows are listed top to
// bottom, so rows[y][x] maps to grid cell (x,y). All rows must share one
// width.
func ParseLayout(name string, rows []string, teamA, teamB string) (*Layout, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("layout %s: no rows", name)
	}
	w := len(rows[0])
	h := len(rows)

	l := &Layout{
		Name:   name,
		Width:  w,
		Height: h,
		Tiles:  make([][]string, w),
		Zones:  make([][]string, w),
		TeamA:  teamA,
		TeamB:  teamB,
	}
	for x := 0; x < w; x++ {
		l.Tiles[x] = make([]string, h)
		l.Zones[x] = make([]string, h)
	}

	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("layout %s: row %d is %d wide, want %d", name, y, len(row), w)
		}
		for x, c := range row {
			tile := bot.TileEmpty
			zone := ""
			switch c {
			case cellWall:
				tile = bot.TileWall
			case cellTeamA:
				zone = teamA
			case cellTeamB:
				zone = teamB
			case cellNeutral:
			default:
				return nil, fmt.Errorf("layout %s: unknown cell %q at (%d,%d)", name, c, x, y)
			}
			l.Tiles[x][y] = tile
			l.Zones[x][y] = zone
		}
	}
	return l, nil
}

// builtinRows holds the shipped layouts. Maps are mirrored left/right so
// neither side starts with a positional edge.
var builtinRows = map[string][]string{
	// Flat halves separated by a neutral corridor.
	"open-field": {
		"AAAAA..BBBBB",
		"AAAAA..BBBBB",
		"AAAAA..BBBBB",
		"AAAAA..BBBBB",
		"AAAAA..BBBBB",
		"AAAAA..BBBBB",
	},
	// Two wall stubs pinch the corridor into three lanes.
	"walled-lanes": {
		"AAAAA..BBBBB",
		"AAAA#..#BBBB",
		"AAAAA..BBBBB",
		"AAAAA..BBBBB",
		"AAAA#..#BBBB",
		"AAAAA..BBBBB",
	},
	// Territories meet head-on with no neutral ground.
	"frontline": {
		"AAAAABBBBB",
		"AAAAABBBBB",
		"AAAAABBBBB",
		"AAAAABBBBB",
		"AAAAABBBBB",
		"AAAAABBBBB",
	},
	// A central neutral pocket reachable only through two gaps.
	"keyhole": {
		"AAAA######BBBB",
		"AAAA#....#BBBB",
		"AAAA......BBBB",
		"AAAA#....#BBBB",
		"AAAA######BBBB",
	},
}

// BuiltinLayout returns one of the shipped layouts by name with the given
// team ids stamped into its zones.
func BuiltinLayout(name, teamA, teamB string) (*Layout, error) {
	rows, ok := builtinRows[name]
	if !ok {
		return nil, fmt.Errorf("unknown layout %q (have: %s)", name, strings.Join(BuiltinLayoutNames(), ", "))
	}
	return ParseLayout(name, rows, teamA, teamB)
}

// BuiltinLayoutNames lists the shipped layout names in a stable order.
func BuiltinLayoutNames() []string {
	return []string{"open-field", "walled-lanes", "frontline", "keyhole"}
}

// Walkable reports whether pos is inside the layout and not a wall.
func (l *Layout) Walkable(pos bot.Position) bool {
	if pos.X < 0 || pos.Y < 0 || pos.X >= l.Width || pos.Y >= l.Height {
		return false
	}
	return l.Tiles[pos.X][pos.Y] != bot.TileWall
}

// ZoneAt returns the owning team id at pos, or "" for neutral ground and
// out-of-range positions.
func (l *Layout) ZoneAt(pos bot.Position) string {
	if pos.X < 0 || pos.Y < 0 || pos.X >= l.Width || pos.Y >= l.Height {
		return ""
	}
	return l.Zones[pos.X][pos.Y]
}
