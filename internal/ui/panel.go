package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Panel is a column of text lines anchored to the top-left corner of the screen, clear of the
// debug overlay on the right.
type Panel struct {
	Title string
	Lines []string
	Style Style
	Width int32
	// Margin is the gap to the screen edges.
	Margin int32
}

// Height is the pixel height the panel needs for its title and lines.
func (p *Panel) Height() int32 {
	rows := int32(len(p.Lines))
	if p.Title != "" {
		rows++
	}
	return 2*p.Style.Padding + rows*lineHeight(p.Style)
}

func lineHeight(s Style) int32 {
	return s.FontSize + s.FontSize/3
}

// Bounds places the panel. The width is clamped to the screen.
func (p *Panel) Bounds(screenW int32) rl.Rectangle {
	w := min(p.Width, screenW-2*p.Margin)
	return rl.Rectangle{
		X:      float32(p.Margin),
		Y:      float32(p.Margin),
		Width:  float32(w),
		Height: float32(p.Height()),
	}
}

// Draw draws background, 1px border, title and lines. Call between BeginDrawing and EndDrawing.
func (p *Panel) Draw() {
	b := p.Bounds(int32(rl.GetScreenWidth()))
	x, y, w, h := int32(b.X), int32(b.Y), int32(b.Width), int32(b.Height)
	if p.Style.Background.A > 0 {
		rl.DrawRectangle(x, y, w, h, p.Style.Background)
	}
	rl.DrawRectangleLines(x, y, w, h, p.Style.Border)

	tx, ty := x+p.Style.Padding, y+p.Style.Padding
	step := lineHeight(p.Style)
	if p.Title != "" {
		rl.DrawText(p.Title, tx, ty, p.Style.FontSize, p.Style.Border)
		ty += step
	}
	for _, line := range p.Lines {
		rl.DrawText(line, tx, ty, p.Style.FontSize, p.Style.Text)
		ty += step
	}
}
