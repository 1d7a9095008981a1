package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Float returns the channels scaled to 0..1.
func (c RGB) Float() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	Text       RGB
	Score      RGB
	Shadow     RGB
	Panel      RGB
	PanelTitle RGB
	Hint       RGB
}{
	Text:       RGB{R: 255, G: 255, B: 255},
	Score:      RGB{R: 255, G: 255, B: 255},
	Shadow:     RGB{R: 20, G: 40, B: 80},
	Panel:      RGB{R: 16, G: 32, B: 64},
	PanelTitle: RGB{R: 135, G: 206, B: 235},
	Hint:       RGB{R: 200, G: 220, B: 240},
}
