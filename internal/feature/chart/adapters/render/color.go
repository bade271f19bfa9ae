package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// parseColor converts "#rgb", "#rrggbb" or "rgba(r, g, b, a)" into a drawing color.
func parseColor(css string) (drawing.Color, error) {
	s := strings.TrimSpace(strings.ToLower(css))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		var r, g, b uint8
		var a float64
		body := strings.ReplaceAll(s[len("rgba("):len(s)-1], " ", "")
		if _, err := fmt.Sscanf(body, "%d,%d,%d,%g", &r, &g, &b, &a); err != nil {
			return drawing.Color{}, fmt.Errorf("parse color %q: %w", css, err)
		}
		if a < 0 || a > 1 {
			return drawing.Color{}, fmt.Errorf("parse color %q: alpha out of range", css)
		}
		return drawing.Color{R: r, G: g, B: b, A: uint8(math.Round(a * 255))}, nil
	}
	return drawing.Color{}, fmt.Errorf("parse color %q: unsupported notation", css)
}

func parseHex(h string) (drawing.Color, error) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return drawing.Color{}, fmt.Errorf("parse color %q: want 3 or 6 hex digits", h)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return drawing.Color{}, fmt.Errorf("parse color %q: %w", h, err)
	}
	return drawing.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// palette is entity.Palette resolved to drawing colors.
type palette struct {
	text, grid, background, legendFill, legendStroke drawing.Color
}
