// Package ui draws flat 2D panels over the 3D view.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Style holds resolved panel colors.
type Style struct {
	Background rl.Color
	Text       rl.Color
	Border     rl.Color
	Padding    int32
	FontSize   int32
}

// DefaultStyle is a translucent dark panel with white text.
func DefaultStyle() Style {
	return Style{
		Background: rl.NewColor(20, 22, 28, 200),
		Text:       rl.White,
		Border:     rl.NewColor(90, 200, 250, 255),
		Padding:    8,
		FontSize:   18,
	}
}

// ParseHexColor parses #RGB, #RRGGBB or #RRGGBBAA. Alpha defaults to 255.
func ParseHexColor(s string) (rl.Color, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return rl.Black, fmt.Errorf("color %q: missing #", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return rl.Black, fmt.Errorf("color %q: want 3, 6 or 8 hex digits", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rl.Black, fmt.Errorf("color %q: %w", s, err)
	}
	return rl.NewColor(uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)), nil
}
