package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/pixelrestaurant/internal/entity"
	"github.com/samdwyer/pixelrestaurant/internal/gamedata"
	"github.com/samdwyer/pixelrestaurant/internal/world"
)

// cellWidth is the number of terminal columns per tile, so tiles look square.
const cellWidth = 2

// Scene is everything drawn in one frame.
type Scene struct {
	Title    string
	Subtitle string
	Grid     *world.Grid
	OnPath   func(world.Pos) bool // nil draws no route
	Members  []*entity.Character  // drawn in order, later on top
	Button   string
	Message  string
}

// Canvas is the drawing surface the renderer needs. *Screen implements it.
type Canvas interface {
	Clear()
	Show()
	SetContent(x, y int, r rune, style tcell.Style)
}

// Renderer handles drawing the restaurant to the screen.
type Renderer struct {
	canvas Canvas
	styles *gamedata.StyleRegistry
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas, styles *gamedata.StyleRegistry) *Renderer {
	return &Renderer{canvas: canvas, styles: styles}
}

// Render draws the scene: title, grid, characters, then the button and status lines.
func (r *Renderer) Render(scene Scene) {
	r.canvas.Clear()

	r.RenderMessage(scene.Title, 0, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	r.RenderMessage(scene.Subtitle, 1, tcell.StyleDefault.Foreground(tcell.ColorGray))

	const top = 3
	grid := scene.Grid
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			p := world.Pos{Row: row, Col: col}
			s := r.styles.Tile(grid.At(p))
			if scene.OnPath != nil && scene.OnPath(p) {
				s = r.styles.Path()
			}
			r.drawCell(p, top, s)
		}
	}

	for _, c := range scene.Members {
		s := r.styles.Character(c.Kind)
		if _, bg, _ := s.Style.Decompose(); bg == tcell.ColorDefault {
			// Keep the tile's background under the character
			_, tileBG, _ := r.styles.Tile(grid.At(c.Pos)).Style.Decompose()
			s.Style = s.Style.Background(tileBG)
		}
		r.drawCell(c.Pos, top, s)
	}

	y := top + grid.Rows() + 1
	r.RenderMessage("[ "+scene.Button+" ]", y, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorGreen).Bold(true))
	if scene.Message != "" {
		r.RenderMessage(scene.Message, y+2, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}
	r.RenderMessage("enter: seat guests  q: quit", y+4, tcell.StyleDefault.Foreground(tcell.ColorDarkGray))

	r.canvas.Show()
}

func (r *Renderer) drawCell(p world.Pos, top int, s gamedata.Style) {
	x := p.Col * cellWidth
	r.canvas.SetContent(x, top+p.Row, s.Glyph, s.Style)
	for i := 1; i < cellWidth; i++ {
		r.canvas.SetContent(x+i, top+p.Row, ' ', s.Style)
	}
}

// RenderMessage writes a single line of text starting at column 0.
func (r *Renderer) RenderMessage(msg string, y int, style tcell.Style) {
	x := 0
	for _, ch := range msg {
		r.canvas.SetContent(x, y, ch, style)
		x++
	}
}
