package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh text every N frames to reduce allocations.
	updateInterval = 30
)

// Stats is what the overlay reports about the simulation.
type Stats struct {
	SimTime   float64
	Bodies    int
	Processor string
	Paused    bool
}

// Debug draws the top-right overlay: FPS, heap, and simulation stats.
type Debug struct {
	ShowFPS      bool
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns an overlay with FPS shown or hidden.
func New(showFPS bool) *Debug {
	return &Debug{ShowFPS: showFPS}
}

// SetShowFPS sets whether the FPS and memory lines are drawn.
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SimText formats the simulation line. Kept separate from Draw so it can be checked without a window.
func SimText(s Stats) string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	return fmt.Sprintf("t=%.3fs  bodies=%d  %s  %s", s.SimTime, s.Bodies, s.Processor, state)
}

// Draw renders the overlay. Call after the scene and before the console.
func (d *Debug) Draw(s Stats) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0 || d.lastFpsText == ""
	if update {
		d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		runtime.ReadMemStats(&d.lastMemStats)
		d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(d.lastMemStats.Alloc)/(1024*1024))
	}

	lines := []string{SimText(s)}
	if d.ShowFPS {
		lines = append(lines, d.lastFpsText, d.lastMemText)
	}
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range lines {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
