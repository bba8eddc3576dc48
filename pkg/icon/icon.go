// Package icon provides placeholder icon generation for browser extensions.
//
// All output follows a unified pipeline: resolve an image (raw chunk assembly,
// styled render, or the fixed pixel placeholder), then write it as PNG or
// bundle the size set into an ICO container.
package icon

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultSizes is the WebExtension icon size set.
var DefaultSizes = []int{16, 32, 48, 128}

// DefaultColor is the flat fill used when no color is given.
const DefaultColor = "#0077b5"

// Encoder selects how icon bytes are produced.
type Encoder string

const (
	// EncoderRaw assembles the PNG chunk by chunk (signature, IHDR, IDAT, IEND).
	EncoderRaw Encoder = "raw"
	// EncoderRender draws a styled badge and encodes it with image/png.
	EncoderRender Encoder = "render"
	// EncoderPixel writes the fixed 1×1 placeholder bytes regardless of size.
	EncoderPixel Encoder = "pixel"
)

// ParseEncoder validates an encoder name.
func ParseEncoder(s string) (Encoder, error) {
	switch Encoder(strings.ToLower(s)) {
	case EncoderRaw, "":
		return EncoderRaw, nil
	case EncoderRender:
		return EncoderRender, nil
	case EncoderPixel:
		return EncoderPixel, nil
	default:
		return "", fmt.Errorf("unknown encoder %q: use raw, render or pixel", s)
	}
}

// Config holds parameters for icon generation.
type Config struct {
	Size    int         // Pixel width and height
	Color   string      // Hex "#rrggbb" or "random"
	Style   Style       // Badge shape, render encoder only
	Label   string      // 1–2 letter overlay, render encoder only
	Encoder Encoder     // Defaults to EncoderRaw
	Image   image.Image // Pre-rendered image; overrides everything else
}

// Filename returns the conventional name for one icon size, e.g. "icon48.png".
func Filename(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// ParseSizes parses a comma-separated size list like "16,32,48,128".
func ParseSizes(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return append([]int(nil), DefaultSizes...), nil
	}
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", part, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("invalid size %d: must be positive", n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes in %q", s)
	}
	return sizes, nil
}

// Generate creates an icon file. The format is inferred from the file extension:
//   - ".png" → single PNG icon
//   - ".ico" → ICO container (use WriteICO for multi-size bundles)
func Generate(output string, cfg Config) error {
	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".png":
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create %s: %w", output, err)
		}
		defer f.Close()
		if err := GenerateToWriter(f, ext, cfg); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		return nil
	case ".ico":
		size := cfg.Size
		if size <= 0 {
			size = DefaultSizes[0]
		}
		return WriteICO(output, []int{size}, cfg)
	default:
		return fmt.Errorf("unsupported format %q: use .png or .ico", ext)
	}
}

// GenerateToWriter writes one icon to an io.Writer. The format is specified by
// ext (".png"). This is the in-memory path used by the preview server.
func GenerateToWriter(w io.Writer, ext string, cfg Config) error {
	if strings.ToLower(ext) != ".png" {
		return fmt.Errorf("unsupported format %q: use .png", ext)
	}

	switch cfg.Encoder {
	case EncoderPixel:
		data, err := PixelPNG()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case EncoderRender:
		img, err := resolveImage(cfg)
		if err != nil {
			return err
		}
		return png.Encode(w, img)
	case EncoderRaw, "":
		if cfg.Image != nil {
			return png.Encode(w, cfg.Image)
		}
		r, g, b, err := ParseColor(cfg.Color)
		if err != nil {
			return err
		}
		size := cfg.Size
		if size <= 0 {
			size = DefaultSizes[0]
		}
		return EncodeRaw(w, size, size, toRGBA(r, g, b))
	default:
		return fmt.Errorf("unknown encoder %q", cfg.Encoder)
	}
}

// resolveImage returns the source image from config, rendering a badge if none
// is provided.
func resolveImage(cfg Config) (image.Image, error) {
	if cfg.Image != nil {
		return cfg.Image, nil
	}

	size := cfg.Size
	if size <= 0 {
		size = DefaultSizes[0]
	}

	r, g, b, err := ParseColor(cfg.Color)
	if err != nil {
		return nil, err
	}

	return RenderBadge(size, toRGBA(r, g, b), cfg.Style, cfg.Label)
}
