package render

import (
	"image/color"

	"hex-colony/internal/app"
	"hex-colony/internal/component"
	"hex-colony/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/paulmach/orb"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Flash marks a point where something went wrong, faded by Age/Life.
type Flash struct {
	Point orb.Point
	Age   float64
	Life  float64
}

type HexRenderer struct {
	hexMap       *hexmap.HexMap
	layout       hexmap.Layout
	screenWidth  int
	screenHeight int
	mapColors    MapColors
	agentColors  AgentColors
	fillImg      *ebiten.Image
	strokeImg    *ebiten.Image
	fillVs       []ebiten.Vertex
	fillIs       []uint16
	strokeVs     []ebiten.Vertex
	strokeIs     []uint16
	fontFace     font.Face
	mapImage     *ebiten.Image // Поле для предрендеренной карты
}

// NewHexRenderer creates a renderer for hexMap. The layout must already be in screen space.
func NewHexRenderer(hexMap *hexmap.HexMap, layout hexmap.Layout, screenWidth, screenHeight int, mapColors MapColors, agentColors AgentColors) *HexRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	strokeImg := ebiten.NewImage(1, 1)
	strokeImg.Fill(color.White)

	renderer := &HexRenderer{
		hexMap:       hexMap,
		layout:       layout,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		mapColors:    mapColors,
		agentColors:  agentColors,
		fillImg:      fillImg,
		strokeImg:    strokeImg,
		fillVs:       make([]ebiten.Vertex, 0, 18),
		fillIs:       make([]uint16, 0, 18),
		strokeVs:     make([]ebiten.Vertex, 0, 36),
		strokeIs:     make([]uint16, 0, 36),
		fontFace:     basicfont.Face7x13,
		mapImage:     ebiten.NewImage(screenWidth, screenHeight),
	}

	// Отрисовываем карту один раз при инициализации
	renderer.RenderMapImage()

	return renderer
}

// RenderMapImage redraws the static board: rock fills, then every cell outline.
func (r *HexRenderer) RenderMapImage() {
	r.mapImage.Clear()
	r.mapImage.Fill(r.mapColors.BackgroundColor)

	hexes := r.hexMap.Hexes()
	for _, hex := range hexes {
		if !r.hexMap.IsPassable(hex) {
			r.drawHexFill(r.mapImage, hex, r.mapColors.RockColor)
		}
	}
	for _, hex := range hexes {
		stroke := r.mapColors.GridLineColor
		if !r.hexMap.IsPassable(hex) {
			stroke = DarkenColor(r.mapColors.RockColor)
		}
		r.drawHexOutline(r.mapImage, hex, stroke)
	}
}

// Draw renders the board, planned routes, agents, failure flashes and, when box is
// non-nil, the drag rectangle.
func (r *HexRenderer) Draw(screen *ebiten.Image, agents []app.AgentView, flashes []Flash, box *orb.Bound) {
	screen.DrawImage(r.mapImage, nil)

	for _, a := range agents {
		if a.Dest != nil {
			r.drawRoute(screen, a)
		}
	}
	for _, a := range agents {
		if a.Selected {
			r.drawHexOutline(screen, r.layout.WorldToHex(a.Pos), r.agentColors.SelectionColor)
		}
	}
	for _, a := range agents {
		r.drawAgent(screen, a)
	}
	for _, f := range flashes {
		c := FadeColor(r.agentColors.FlashColor, 1-f.Age/f.Life)
		x, y := float32(f.Point.X()), float32(f.Point.Y())
		s := float32(r.layout.Size / 3)
		vector.StrokeLine(screen, x-s, y-s, x+s, y+s, r.mapColors.StrokeWidth, c, true)
		vector.StrokeLine(screen, x-s, y+s, x+s, y-s, r.mapColors.StrokeWidth, c, true)
	}
	if box != nil {
		vector.StrokeRect(screen,
			float32(box.Min.X()), float32(box.Min.Y()),
			float32(box.Max.X()-box.Min.X()), float32(box.Max.Y()-box.Min.Y()),
			1, r.agentColors.BoxColor, false)
	}
}

// DrawHUD prints lines top-left, one per row.
func (r *HexRenderer) DrawHUD(screen *ebiten.Image, lines []string, marginX, lineHeight int) {
	for i, line := range lines {
		text.Draw(screen, line, r.fontFace, marginX, lineHeight*(i+1), r.agentColors.TextColor)
	}
}

func (r *HexRenderer) drawAgent(screen *ebiten.Image, a app.AgentView) {
	c := r.agentColors.WorkerColor
	switch {
	case a.Kind == component.Queen:
		c = r.agentColors.QueenColor
	case a.State == component.Blocked:
		c = r.agentColors.BlockedColor
	}
	x, y := float32(a.Pos.X()), float32(a.Pos.Y())
	vector.DrawFilledCircle(screen, x, y, float32(a.Radius), c, true)
	if a.Kind == component.Queen {
		vector.StrokeCircle(screen, x, y, float32(a.Radius), r.mapColors.StrokeWidth, DarkenColor(c), true)
	}
}

// drawRoute marks the cells on the straight line from the agent to its destination
// and outlines the destination itself.
func (r *HexRenderer) drawRoute(screen *ebiten.Image, a app.AgentView) {
	from := r.layout.WorldToHex(a.Pos)
	for _, h := range from.LineTo(*a.Dest) {
		p := r.layout.HexToWorld(h)
		vector.DrawFilledCircle(screen, float32(p.X()), float32(p.Y()), 2, r.agentColors.PathColor, true)
	}
	dest := r.layout.HexToWorld(*a.Dest)
	vector.StrokeLine(screen, float32(a.Pos.X()), float32(a.Pos.Y()), float32(dest.X()), float32(dest.Y()), 1, r.agentColors.PathColor, true)
	r.drawHexOutline(screen, *a.Dest, r.agentColors.PathColor)
}

func (r *HexRenderer) hexPath(hex hexmap.Hex) vector.Path {
	path := vector.Path{}
	for i, p := range r.layout.Corners(hex) {
		if i == 0 {
			path.MoveTo(float32(p.X()), float32(p.Y()))
		} else {
			path.LineTo(float32(p.X()), float32(p.Y()))
		}
	}
	path.Close()
	return path
}

func (r *HexRenderer) drawHexFill(target *ebiten.Image, hex hexmap.Hex, fillColor color.RGBA) {
	path := r.hexPath(hex)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paint(r.fillVs, fillColor)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) drawHexOutline(target *ebiten.Image, hex hexmap.Hex, strokeColor color.RGBA) {
	path := r.hexPath(hex)
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: r.mapColors.StrokeWidth,
	})
	paint(r.strokeVs, strokeColor)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.strokeImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func paint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
