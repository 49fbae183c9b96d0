// pkg/render/color.go
package render

import (
	"image/color"

	"hex-colony/pkg/utils"
)

// MapColors holds all the color definitions needed to render the static board.
type MapColors struct {
	BackgroundColor color.RGBA
	GridLineColor   color.RGBA
	RockColor       color.RGBA
	StrokeWidth     float32
}

// AgentColors holds the colors for everything drawn on top of the board.
type AgentColors struct {
	QueenColor     color.RGBA
	WorkerColor    color.RGBA
	BlockedColor   color.RGBA
	SelectionColor color.RGBA
	PathColor      color.RGBA
	BoxColor       color.RGBA
	FlashColor     color.RGBA
	TextColor      color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// FadeColor scales alpha by f in [0, 1].
func FadeColor(c color.RGBA, f float64) color.RGBA {
	f = utils.Clamp(f, 0, 1)
	// Colors are premultiplied, so every channel scales.
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
