package bot

// Zone classifies a cell relative to the evaluating team.
type Zone int

const (
	ZoneOwn Zone = iota
	ZoneEnemy
	ZoneNeutral
)

func (z Zone) String() string {
	switch z {
	case ZoneOwn:
		return "own"
	case ZoneEnemy:
		return "enemy"
	default:
		return "neutral"
	}
}

// GridIndex wraps one tick's map and zone grid into O(1) lookups. It is a
// read-only view: rebuilt fresh each tick, never mutated after construction.
type GridIndex struct {
	width    int
	height   int
	walkable []bool // row-major: index = y*width + x
	zones    []Zone

	border    []Position // own-zone walkable cells adjacent to a non-own cell
	borderSet map[Position]bool
}

// NewGridIndex builds the index from the snapshot's map and zone grid.
// Missing or short zone columns are treated as neutral rather than rejected;
// one malformed tick must not take the whole match down.
func NewGridIndex(m *GameMap, zoneGrid [][]string, teamID string) *GridIndex {
	g := &GridIndex{
		width:    m.Width,
		height:   m.Height,
		walkable: make([]bool, m.Width*m.Height),
		zones:    make([]Zone, m.Width*m.Height),
	}

	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			i := y*m.Width + x

			tile := TileEmpty
			if x < len(m.Tiles) && y < len(m.Tiles[x]) {
				tile = m.Tiles[x][y]
			}
			g.walkable[i] = tile != TileWall

			owner := ""
			if x < len(zoneGrid) && y < len(zoneGrid[x]) {
				owner = zoneGrid[x][y]
			}
			switch owner {
			case teamID:
				g.zones[i] = ZoneOwn
			case "":
				g.zones[i] = ZoneNeutral
			default:
				g.zones[i] = ZoneEnemy
			}
		}
	}

	g.precomputeBorder()
	return g
}

// precomputeBorder scans the grid once so every later border query is an
// O(1) membership test or an iteration over a small slice.
func (g *GridIndex) precomputeBorder() {
	g.borderSet = make(map[Position]bool)
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			pos := Position{x, y}
			if g.ZoneOf(pos) != ZoneOwn || !g.Walkable(pos) {
				continue
			}
			for _, n := range Neighbours4(pos) {
				if g.InBounds(n) && g.Walkable(n) && g.ZoneOf(n) != ZoneOwn {
					g.border = append(g.border, pos)
					g.borderSet[pos] = true
					break
				}
			}
		}
	}
}

// Width returns the map width in cells.
func (g *GridIndex) Width() int { return g.width }

// Height returns the map height in cells.
func (g *GridIndex) Height() int { return g.height }

// InBounds reports whether pos lies inside the map.
func (g *GridIndex) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < g.width && pos.Y >= 0 && pos.Y < g.height
}

// Walkable reports whether pos is in bounds and not a wall.
func (g *GridIndex) Walkable(pos Position) bool {
	if !g.InBounds(pos) {
		return false
	}
	return g.walkable[pos.Y*g.width+pos.X]
}

// ZoneOf classifies pos. Out-of-bounds cells are neutral.
func (g *GridIndex) ZoneOf(pos Position) Zone {
	if !g.InBounds(pos) {
		return ZoneNeutral
	}
	return g.zones[pos.Y*g.width+pos.X]
}

// InOwnZone reports whether pos belongs to our territory.
func (g *GridIndex) InOwnZone(pos Position) bool { return g.ZoneOf(pos) == ZoneOwn }

// InEnemyZone reports whether pos belongs to the opposing team's territory.
func (g *GridIndex) InEnemyZone(pos Position) bool { return g.ZoneOf(pos) == ZoneEnemy }

// InNeutralZone reports whether pos is unowned.
func (g *GridIndex) InNeutralZone(pos Position) bool { return g.ZoneOf(pos) == ZoneNeutral }

// BorderCells returns the precomputed own-territory border cells. The slice
// is shared; callers must not mutate it.
func (g *GridIndex) BorderCells() []Position { return g.border }

// IsBorder reports whether pos is one of the precomputed border cells.
func (g *GridIndex) IsBorder(pos Position) bool { return g.borderSet[pos] }

// WalkFunc returns the plain walkability predicate for search calls.
func (g *GridIndex) WalkFunc() func(Position) bool {
	return g.Walkable
}
