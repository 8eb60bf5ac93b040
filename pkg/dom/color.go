package dom

import (
	"fmt"
	"image/color"
	"strconv"

	"golang.org/x/image/colornames"
)

// NamedColor resolves a CSS/SVG 1.1 color name (e.g. "rebeccapurple" is not
// in that set, "steelblue" is) to its RGBA value.
func NamedColor(name string) (color.RGBA, bool) {
	c, ok := colornames.Map[name]
	return c, ok
}

// StyleValue renders a style value as a string. Colors render as #rrggbb
// (or #rrggbbaa when translucent); numbers and strings pass through.
func StyleValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case color.Color:
		return FormatColor(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FormatColor renders a color as a CSS hex literal.
func FormatColor(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	if rgba.A != 0xff {
		return fmt.Sprintf("#%02x%02x%02x%02x", rgba.R, rgba.G, rgba.B, rgba.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
