// render.go - Styled badge rendering.
// Draws the icon at 4x resolution (flat fill, circle, or rounded square, with
// an optional letter label) and downscales it with CatmullRom so curved edges
// stay smooth at 16px.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"
	"unicode/utf8"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Style selects the badge shape for the render encoder.
type Style string

const (
	StyleSolid   Style = "solid"
	StyleCircle  Style = "circle"
	StyleRounded Style = "rounded"
)

// ParseStyle validates a style name. Empty means solid.
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(s)) {
	case StyleSolid, "":
		return StyleSolid, nil
	case StyleCircle:
		return StyleCircle, nil
	case StyleRounded:
		return StyleRounded, nil
	default:
		return "", fmt.Errorf("unknown style %q: use solid, circle or rounded", s)
	}
}

var (
	fontOnce   sync.Once
	labelFont  *opentype.Font
	fontErr    error
	labelColor = color.RGBA{255, 255, 255, 255}
)

// RenderBadge draws a styled icon at the given size. The label, if any, is
// drawn centered in white; it is truncated to two characters to stay legible
// at 16px.
func RenderBadge(size int, fill color.RGBA, style Style, label string) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size %d", size)
	}
	if style == "" {
		style = StyleSolid
	}

	base := size * 4
	img := drawShape(base, fill, style)

	if label != "" {
		if err := drawLabel(img, truncateLabel(label)); err != nil {
			return nil, err
		}
	}

	if base == size {
		return img, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// drawShape fills a square canvas according to the badge style. Circle and
// rounded styles leave the outside transparent.
func drawShape(size int, fill color.RGBA, style Style) *image.RGBA {
	switch style {
	case StyleCircle:
		img := image.NewRGBA(image.Rect(0, 0, size, size))
		center := float64(size) / 2
		radius := center - 1
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				dx := float64(x) - center + 0.5
				dy := float64(y) - center + 0.5
				if dx*dx+dy*dy <= radius*radius {
					img.SetRGBA(x, y, fill)
				}
			}
		}
		return img
	case StyleRounded:
		img := image.NewRGBA(image.Rect(0, 0, size, size))
		r := size / 5
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if insideRounded(x, y, size, size, r) {
					img.SetRGBA(x, y, fill)
				}
			}
		}
		return img
	default:
		return NewSolidImage(size, size, fill)
	}
}

// insideRounded reports whether (x, y) lies inside a w×h rounded rectangle
// with corner radius r.
func insideRounded(x, y, w, h, r int) bool {
	inX := x >= r && x < w-r
	inY := y >= r && y < h-r
	if inX || inY {
		return true
	}

	// Corner region: test against the nearest quarter-circle center.
	cx := r
	if x >= w-r {
		cx = w - r - 1
	}
	cy := r
	if y >= h-r {
		cy = h - r - 1
	}
	dx := x - cx
	dy := y - cy
	return dx*dx+dy*dy <= r*r
}

// truncateLabel keeps at most the first two runes, uppercased.
func truncateLabel(label string) string {
	label = strings.ToUpper(strings.TrimSpace(label))
	if utf8.RuneCountInString(label) <= 2 {
		return label
	}
	runes := []rune(label)
	return string(runes[:2])
}

// drawLabel draws the label centered on the badge using the embedded Go Bold
// font.
func drawLabel(img *image.RGBA, label string) error {
	fontOnce.Do(func() {
		labelFont, fontErr = opentype.Parse(gobold.TTF)
	})
	if fontErr != nil {
		return fmt.Errorf("parse label font: %w", fontErr)
	}

	size := img.Bounds().Dx()
	ptSize := float64(size) * 0.62
	if utf8.RuneCountInString(label) > 1 {
		ptSize = float64(size) * 0.45
	}

	face, err := opentype.NewFace(labelFont, &opentype.FaceOptions{
		Size:    ptSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("create label face: %w", err)
	}
	defer face.Close()

	m := face.Metrics()
	adv := font.MeasureString(face, label)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: face,
		Dot: fixed.Point26_6{
			X: (fixed.I(size) - adv) / 2,
			Y: (fixed.I(size)-m.Ascent-m.Descent)/2 + m.Ascent,
		},
	}
	d.DrawString(label)
	return nil
}
