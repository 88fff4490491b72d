package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the viewer window.
type Window struct {
	Title     string
	Width     int
	Height    int
	TargetFPS int
	// OnClose runs after the loop ends, while the GL context still exists.
	OnClose func()
}

// Run opens the window and runs the main loop. Each frame it calls update (input, simulation step),
// then clears the screen and calls draw. ESC is left to the console; close via the window button.
func Run(win Window, update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(win.Width), int32(win.Height), win.Title)
	defer rl.CloseWindow()
	if win.OnClose != nil {
		defer win.OnClose()
	}

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(win.TargetFPS))

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
