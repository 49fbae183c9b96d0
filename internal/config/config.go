// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth       = 1200
	ScreenHeight      = 900
	MaxDeltaTime      = 0.06
	ClickDragDistance = 5.0 // pointer travel below this is a tap, above it a box drag
	FlashDuration     = 0.4 // seconds a block/cancel marker stays on screen

	HUDMarginX     = 10
	HUDLineHeight  = 16
	HUDEventsShown = 8
)

var (
	BackgroundColor    = color.RGBA{20, 20, 30, 255}
	GridLineColor      = color.RGBA{68, 68, 68, 255}
	RockColor          = color.RGBA{110, 100, 90, 255}
	QueenColor         = color.RGBA{139, 69, 19, 255}
	WorkerColor        = color.RGBA{139, 69, 19, 255}
	BlockedWorkerColor = color.RGBA{200, 90, 40, 255}
	SelectionColor     = color.RGBA{255, 255, 0, 255}
	PathColor          = color.RGBA{128, 128, 0, 128}
	BoxColor           = color.RGBA{255, 255, 255, 255}
	FlashColor         = color.RGBA{220, 60, 60, 255}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	StrokeWidth        = 2.0
)
