package game

const WindowTitle = "Raindrop"

// Frame pacing.
const MaxFrameDelta = 0.1 // seconds; longer stalls are not replayed

// Font atlas layout: 32 cols x 4 rows covering ASCII 0-127.
// Cell 127 is a solid block used for panels.
const (
	FontCellW  = 7
	FontCellH  = 13
	FontCols   = 32
	FontRows   = 4
	FontAtlasW = FontCellW * FontCols // 224
	FontAtlasH = FontCellH * FontRows // 52
	SolidGlyph = 127
)

// HUD animation.
const (
	ScorePopScale    = 1.2
	ScorePopDuration = 0.1 // seconds at ScorePopScale after a catch
	ModalDuration    = 0.3 // game-over panel slide/fade-in
	ModalSlide       = 0.1 // fraction of framebuffer height the panel slides
	HUDScale         = 2.5
)
