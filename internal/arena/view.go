package arena

import (
	"fmt"
	"image/color"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"blitzbot/internal/bot"
)

// cellSize is the pixel size of one grid cell.
const cellSize = 48

// panelWidth is the pixel width of the log panel to the right of the arena.
const panelWidth = 470

// logTailLines is how many recent log lines the panel shows.
const logTailLines = 30

var (
	colBackground = color.RGBA{R: 24, G: 26, B: 28, A: 255}
	colWall       = color.RGBA{R: 70, G: 70, B: 74, A: 255}
	colNeutral    = color.RGBA{R: 44, G: 46, B: 48, A: 255}
	colZoneA      = color.RGBA{R: 66, G: 42, B: 34, A: 255}
	colZoneB      = color.RGBA{R: 34, G: 46, B: 66, A: 255}
	colTeamA      = color.RGBA{R: 235, G: 130, B: 60, A: 255}
	colTeamB      = color.RGBA{R: 80, G: 150, B: 235, A: 255}
	colDown       = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	colBlitzium   = color.RGBA{R: 240, G: 205, B: 60, A: 255}
	colRadiant    = color.RGBA{R: 170, G: 80, B: 200, A: 255}
	colGridLine   = color.RGBA{R: 0, G: 0, B: 0, A: 60}
)

// View renders a live match and drives it at an adjustable speed.
//
// Keys: Space pause, N single-step while paused, +/- speed, C copy report.
type View struct {
	match *Match

	paused        bool
	framesPerTick int
	frame         int
	status        string
	prevKeys      map[ebiten.Key]bool
}

// NewView wraps a match for rendering. The match must already be built.
func NewView(m *Match) *View {
	return &View{
		match:         m,
		framesPerTick: 15,
		prevKeys:      map[ebiten.Key]bool{},
	}
}

// keyJustPressed is edge-triggered key detection across Update calls.
func (v *View) keyJustPressed(k ebiten.Key) bool {
	down := ebiten.IsKeyPressed(k)
	was := v.prevKeys[k]
	v.prevKeys[k] = down
	return down && !was
}

func (v *View) Update() error {
	if v.keyJustPressed(ebiten.KeySpace) {
		v.paused = !v.paused
	}
	if v.keyJustPressed(ebiten.KeyEqual) && v.framesPerTick > 1 {
		v.framesPerTick /= 2
	}
	if v.keyJustPressed(ebiten.KeyMinus) && v.framesPerTick < 120 {
		v.framesPerTick *= 2
	}
	if v.keyJustPressed(ebiten.KeyN) && v.paused {
		v.match.Step()
	}
	if v.keyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(v.match.Report(120)); err != nil {
			v.status = fmt.Sprintf("clipboard: %v", err)
		} else {
			v.status = fmt.Sprintf("report copied at T=%d", v.match.Tick())
		}
	}

	v.frame++
	if !v.paused && v.frame%v.framesPerTick == 0 {
		v.match.Step()
	}
	return nil
}

func (v *View) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	v.drawArena(screen)
	v.drawItems(screen)
	v.drawAgents(screen)
	v.drawHUD(screen)
	v.drawLogPanel(screen)
}

func (v *View) drawArena(screen *ebiten.Image) {
	l := v.match.Layout()
	for x := 0; x < l.Width; x++ {
		for y := 0; y < l.Height; y++ {
			c := colNeutral
			switch {
			case l.Tiles[x][y] == bot.TileWall:
				c = colWall
			case l.Zones[x][y] == l.TeamA:
				c = colZoneA
			case l.Zones[x][y] == l.TeamB:
				c = colZoneB
			}
			px, py := float32(x*cellSize), float32(y*cellSize)
			vector.DrawFilledRect(screen, px, py, cellSize, cellSize, c, false)
			vector.StrokeRect(screen, px, py, cellSize, cellSize, 1, colGridLine, false)
		}
	}
}

func (v *View) drawItems(screen *ebiten.Image) {
	for _, it := range v.match.Items() {
		c := colBlitzium
		if it.IsRadiant() {
			c = colRadiant
		}
		cx := float32(it.Position.X*cellSize + cellSize/2)
		cy := float32(it.Position.Y*cellSize + cellSize/2)
		vector.DrawFilledCircle(screen, cx, cy, cellSize/5, c, true)
	}
}

func (v *View) drawAgents(screen *ebiten.Image) {
	ids := v.match.TeamIDs()
	for ti, team := range ids {
		teamCol := colTeamA
		if ti == 1 {
			teamCol = colTeamB
		}
		for i, a := range v.match.Agents(team) {
			c := teamCol
			if !a.Alive {
				c = colDown
			}
			cx := float32(a.Pos.X*cellSize + cellSize/2)
			cy := float32(a.Pos.Y*cellSize + cellSize/2)
			vector.DrawFilledCircle(screen, cx, cy, cellSize/3, c, true)
			if i%2 == 1 {
				// Defenders get a ring so roles read at a glance.
				vector.StrokeCircle(screen, cx, cy, cellSize/3+3, 2, c, true)
			}
			if len(a.Carried) > 0 {
				vector.DrawFilledCircle(screen, cx, cy-cellSize/3, 4, colBlitzium, true)
			}
			ebitenutil.DebugPrintAt(screen, a.ID[:4], int(cx)-12, int(cy)+cellSize/3)
		}
	}
}

func (v *View) drawHUD(screen *ebiten.Image) {
	ids := v.match.TeamIDs()
	state := "running"
	if v.paused {
		state = "paused"
	}
	hud := fmt.Sprintf("T=%d  %s=%d  %s=%d  speed=1/%df  [%s]  space=pause n=step +/-=speed c=copy",
		v.match.Tick(), ids[0], v.match.Score(ids[0]), ids[1], v.match.Score(ids[1]),
		v.framesPerTick, state)
	if v.status != "" {
		hud += "\n" + v.status
	}
	ebitenutil.DebugPrintAt(screen, hud, 4, v.match.Layout().Height*cellSize+4)
}

func (v *View) drawLogPanel(screen *ebiten.Image) {
	const lineHeight = 14
	x := v.match.Layout().Width*cellSize + 8
	ids := v.match.TeamIDs()
	perSection := logTailLines / 3

	y := 4
	section := func(title string, tail []bot.DecisionEntry) {
		ebitenutil.DebugPrintAt(screen, "-- "+title+" --", x, y)
		y += lineHeight
		for _, e := range tail {
			ebitenutil.DebugPrintAt(screen, e.String(), x, y)
			y += lineHeight
		}
		y += lineHeight / 2
	}
	section("events", v.match.Log().Tail(perSection))
	section(ids[0], v.match.EngineLog(ids[0]).Tail(perSection))
	section(ids[1], v.match.EngineLog(ids[1]).Tail(perSection))
}

// Layout sizes the window to the arena plus the log panel and HUD strip.
func (v *View) Layout(_, _ int) (int, int) {
	l := v.match.Layout()
	w := l.Width*cellSize + panelWidth
	h := l.Height*cellSize + 48
	if h < 640 {
		h = 640
	}
	return w, h
}
