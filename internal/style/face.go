package style

import (
	"fmt"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// NewFace builds the Go font face for s at its pixel size.
func NewFace(s Style) (font.Face, error) {
	ttf := goregular.TTF
	if s.Bold {
		ttf = gobold.TTF
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    s.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

// Wrap breaks text into lines no wider than maxWidth pixels, keeping
// explicit newlines. A single word wider than maxWidth gets its own line.
func Wrap(face font.Face, text string, maxWidth int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		// Keep leading alignment spaces such as "CPU:  12%".
		line := words[0]
		rest := para[strings.Index(para, words[0])+len(words[0]):]
		for _, w := range words[1:] {
			gap := rest[:strings.Index(rest, w)]
			rest = rest[len(gap)+len(w):]
			candidate := line + gap + w
			if maxWidth > 0 && font.MeasureString(face, candidate).Ceil() > maxWidth {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

// Measure returns the pixel width of the widest line and the line height.
func Measure(face font.Face, lines []string) (width, lineHeight int) {
	for _, l := range lines {
		if w := font.MeasureString(face, l).Ceil(); w > width {
			width = w
		}
	}
	return width, face.Metrics().Height.Ceil()
}
