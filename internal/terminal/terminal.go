package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"rigid-kernel/internal/commands"
	"rigid-kernel/internal/logger"
)

const (
	BarHeight = 40
	// When windowed, move bar up by this many pixels so it stays visible.
	WindowedBarOffset = 56
	prompt            = "> "
	fontSize          = 20
	padding           = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
	maxLineChars     = 200
)

var (
	barColor    = rl.NewColor(40, 40, 40, 255)
	lineColor   = rl.NewColor(80, 80, 80, 255)
	chatBgColor = rl.NewColor(24, 24, 24, 240)
)

// Terminal is the console bar at the bottom of the viewer, toggled with ESC.
// Lines starting with "cmd " run through the command registry; anything else is logged as a note.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
	// history of submitted lines, oldest first; histPos == len(history) means a fresh line
	history []string
	histPos int
}

// New returns a closed console that logs to log and runs commands through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen returns true when the console is visible and capturing input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Submit handles one entered line. Exposed so the behavior can be driven without a window.
func (t *Terminal) Submit(line string) {
	if n := len(t.history); n == 0 || t.history[n-1] != line {
		t.history = append(t.history, line)
	}
	t.histPos = len(t.history)
	t.log.Log(prompt + line)
	args, isCmd := commands.Parse(line)
	if !isCmd {
		return
	}
	if len(args) == 0 {
		t.log.Log(t.reg.Usage())
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Log(err.Error())
	}
}

// Recall steps through submitted lines: delta -1 is older, +1 newer. Stepping past the newest
// line yields an empty input.
func (t *Terminal) Recall(delta int) string {
	t.histPos = max(0, min(t.histPos+delta, len(t.history)))
	if t.histPos == len(t.history) {
		return ""
	}
	return t.history[t.histPos]
}

// Update handles ESC (toggle), and when open: typing, paste, history, backspace, enter. Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
		if t.open {
			rl.EnableCursor()
		} else {
			rl.DisableCursor()
		}
	}
	if !t.open {
		return
	}
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		if pasted := rl.GetClipboardText(); pasted != "" {
			t.inputBuf += pasted
		}
	} else {
		for {
			c := rl.GetCharPressed()
			if c == 0 {
				break
			}
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		t.inputBuf = t.Recall(-1)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		t.inputBuf = t.Recall(1)
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		line := t.inputBuf
		t.inputBuf = ""
		t.Submit(line)
	}
}

// Draw draws the bar at the bottom when open, with the most recent log lines above it.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int(rl.GetScreenWidth())
	screenH := int(rl.GetScreenHeight())
	barY := screenH - BarHeight
	if !rl.IsWindowFullscreen() {
		barY -= WindowedBarOffset
	}

	chatHeight := maxLinesOnScreen * lineHeight
	chatY := barY - chatHeight
	if chatY < 0 {
		chatHeight = barY
		chatY = 0
	}
	if chatHeight > 0 {
		rl.DrawRectangle(0, int32(chatY), int32(screenW), int32(chatHeight), chatBgColor)
	}
	lines := t.log.Lines()
	start := 0
	if len(lines) > maxLinesOnScreen {
		start = len(lines) - maxLinesOnScreen
	}
	for i := start; i < len(lines); i++ {
		y := chatY + (i-start)*lineHeight + padding
		line := lines[i]
		if len(line) > maxLineChars {
			line = line[:maxLineChars-3] + "..."
		}
		rl.DrawText(line, int32(padding), int32(y), int32(fontSize), rl.LightGray)
	}

	rl.DrawRectangle(0, int32(barY), int32(screenW), int32(BarHeight), barColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, lineColor)
	rl.DrawText(prompt+t.inputBuf+"|", int32(padding), int32(barY+padding), int32(fontSize), rl.White)
}
