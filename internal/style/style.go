// Package style reads the label stylesheet string: a short list of
// CSS-like "property: value;" declarations.
package style

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Style is the resolved appearance of every label.
type Style struct {
	Color      color.RGBA
	Background color.RGBA // Zero alpha means no fill
	FontSize   float64    // Pixels
	Bold       bool
	Padding    int // Pixels around the text block
}

// Default is used for properties the stylesheet leaves out.
var Default = Style{
	Color:    color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	FontSize: 13,
	Padding:  4,
}

// Parse resolves a stylesheet on top of Default. Unknown properties are
// ignored; bad values for known properties are errors.
func Parse(sheet string) (Style, error) {
	s := Default
	for _, decl := range strings.Split(sheet, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			if strings.TrimSpace(decl) != "" {
				return s, fmt.Errorf("malformed declaration %q", strings.TrimSpace(decl))
			}
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.TrimSpace(value)

		var err error
		switch prop {
		case "color":
			s.Color, err = ParseColor(value)
		case "background", "background-color":
			s.Background, err = ParseColor(value)
		case "font-size":
			s.FontSize, err = parseLength(value)
			if err == nil && s.FontSize <= 0 {
				err = fmt.Errorf("must be positive")
			}
		case "font-weight":
			s.Bold, err = parseWeight(value)
		case "padding":
			var px float64
			px, err = parseLength(value)
			s.Padding = int(math.Round(px))
		}
		if err != nil {
			return s, fmt.Errorf("%s: %q: %w", prop, value, err)
		}
	}
	return s, nil
}

// parseLength accepts a bare number, px, or pt (converted at 96 dpi).
func parseLength(v string) (float64, error) {
	v = strings.ToLower(v)
	points := false
	switch {
	case strings.HasSuffix(v, "px"):
		v = strings.TrimSuffix(v, "px")
	case strings.HasSuffix(v, "pt"):
		v = strings.TrimSuffix(v, "pt")
		points = true
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, err
	}
	if points {
		f = f * 96 / 72
	}
	return f, nil
}

func parseWeight(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "bold", "bolder":
		return true, nil
	case "normal", "lighter":
		return false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return false, err
	}
	return n >= 600, nil
}

// ParseColor accepts #rgb, #rrggbb, #aarrggbb, rgb(), rgba(),
// "transparent" and SVG colour names.
func ParseColor(v string) (color.RGBA, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	switch {
	case v == "transparent":
		return color.RGBA{}, nil
	case strings.HasPrefix(v, "#"):
		return parseHex(v[1:])
	case strings.HasPrefix(v, "rgba(") || strings.HasPrefix(v, "rgb("):
		return parseFunc(v)
	}
	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color")
}

func parseHex(h string) (color.RGBA, error) {
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, err
	}
	switch len(h) {
	case 3:
		r, g, b := uint8(n>>8&0xf), uint8(n>>4&0xf), uint8(n&0xf)
		return color.RGBA{R: r * 17, G: g * 17, B: b * 17, A: 0xff}, nil
	case 6:
		return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
	case 8:
		// Qt order: alpha first.
		return premultiply(uint8(n>>16), uint8(n>>8), uint8(n), uint8(n>>24)), nil
	}
	return color.RGBA{}, fmt.Errorf("bad hex length %d", len(h))
}

func parseFunc(v string) (color.RGBA, error) {
	lp, rp := strings.IndexByte(v, '('), strings.LastIndexByte(v, ')')
	if rp < lp {
		return color.RGBA{}, fmt.Errorf("unterminated")
	}
	args := strings.Split(v[lp+1:rp], ",")
	if len(args) != 3 && len(args) != 4 {
		return color.RGBA{}, fmt.Errorf("want 3 or 4 components, got %d", len(args))
	}
	var ch [3]uint8
	for i := range ch {
		c, err := channel(args[i])
		if err != nil {
			return color.RGBA{}, err
		}
		ch[i] = c
	}
	alpha := uint8(0xff)
	if len(args) == 4 {
		a, err := alphaChannel(args[3])
		if err != nil {
			return color.RGBA{}, err
		}
		alpha = a
	}
	return premultiply(ch[0], ch[1], ch[2], alpha), nil
}

func channel(s string) (uint8, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, err
		}
		return clamp(f / 100 * 255), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return clamp(f), nil
}

// alphaChannel takes 0-255 like Qt, or a 0-1 fraction when the value
// has a decimal point, or a percentage.
func alphaChannel(s string) (uint8, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") || !strings.Contains(s, ".") {
		return channel(s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return clamp(f * 255), nil
}

func clamp(f float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, f))))
}

// premultiply returns the alpha-premultiplied colour image/color expects.
func premultiply(r, g, b, a uint8) color.RGBA {
	m := func(c uint8) uint8 { return uint8((uint16(c)*uint16(a) + 127) / 255) }
	return color.RGBA{R: m(r), G: m(g), B: m(b), A: a}
}
