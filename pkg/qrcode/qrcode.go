package qrcode

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/skip2/go-qrcode"

	"github.com/sefazor/qrtrack-backend/pkg/logger"
)

// Options carries the per-code rendering customization.
type Options struct {
	Size            int
	Margin          int
	ForegroundColor string // hex, e.g. "#1a1a2e"
	BackgroundColor string
	ErrorCorrection string // L, M, Q, H
	Style           string // square, rounded, dots
	LogoURL         string
}

// Renderer produces PNG images for QR content strings.
type Renderer struct {
	log *logger.Logger
}

func NewRenderer(log *logger.Logger) *Renderer {
	return &Renderer{log: log}
}

// Generate encodes content into a PNG. Encoding errors are returned to the
// caller; styling and logo failures degrade to the plain image with a warning
// so a cosmetic problem never breaks the download.
func (r *Renderer) Generate(content string, opts Options) ([]byte, error) {
	buf, err := encode(content, opts)
	if err != nil {
		return nil, err
	}

	if opts.Style == "rounded" || opts.Style == "dots" {
		styled, err := applyRoundedCorners(buf)
		if err != nil {
			r.log.Warnw("failed to apply QR style, falling back to unstyled image",
				"style", opts.Style, "error", err)
		} else {
			buf = styled
		}
	}

	if opts.LogoURL != "" {
		withLogo, err := overlayLogoPlaceholder(buf)
		if err != nil {
			r.log.Warnw("failed to overlay logo area, falling back", "error", err)
		} else {
			buf = withLogo
		}
	}

	return buf, nil
}

func encode(content string, opts Options) ([]byte, error) {
	level, err := errorCorrectionLevel(opts.ErrorCorrection)
	if err != nil {
		return nil, err
	}

	fg, err := parseHexColor(opts.ForegroundColor)
	if err != nil {
		return nil, fmt.Errorf("invalid foreground color: %w", err)
	}
	bg, err := parseHexColor(opts.BackgroundColor)
	if err != nil {
		return nil, fmt.Errorf("invalid background color: %w", err)
	}

	q, err := qrcode.New(content, level)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR content: %w", err)
	}

	q.ForegroundColor = fg
	q.BackgroundColor = bg
	// The encoder only toggles its standard quiet zone; a non-positive margin
	// drops it entirely.
	q.DisableBorder = opts.Margin <= 0

	buf, err := q.PNG(opts.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR PNG: %w", err)
	}
	return buf, nil
}

func errorCorrectionLevel(s string) (qrcode.RecoveryLevel, error) {
	switch s {
	case "L":
		return qrcode.Low, nil
	case "M", "":
		return qrcode.Medium, nil
	case "Q":
		return qrcode.High, nil
	case "H":
		return qrcode.Highest, nil
	default:
		return qrcode.Medium, fmt.Errorf("unknown error correction level %q", s)
	}
}

func parseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	switch len(s) {
	case 7: // #rrggbb
		if _, err := fmt.Sscanf(s, "#%2x%2x%2x", &c.R, &c.G, &c.B); err != nil {
			return c, fmt.Errorf("malformed color %q", s)
		}
	case 4: // #rgb
		var r, g, b uint8
		if _, err := fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b); err != nil {
			return c, fmt.Errorf("malformed color %q", s)
		}
		c.R, c.G, c.B = r*17, g*17, b*17
	default:
		return c, fmt.Errorf("malformed color %q", s)
	}
	return c, nil
}

// applyRoundedCorners clips the image against a rounded rectangle whose corner
// radius is 5% of the image width, leaving transparent corners.
func applyRoundedCorners(src []byte) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("failed to decode QR image: %w", err)
	}

	bounds := img.Bounds()
	radius := bounds.Dx() * 5 / 100

	out := image.NewRGBA(bounds)
	mask := &roundedRectMask{rect: bounds, radius: radius}
	draw.DrawMask(out, bounds, img, bounds.Min, mask, bounds.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to re-encode styled image: %w", err)
	}
	return buf.Bytes(), nil
}

// roundedRectMask is an alpha mask that is opaque inside a rounded rectangle
// and transparent in the corner cutouts.
type roundedRectMask struct {
	rect   image.Rectangle
	radius int
}

func (m *roundedRectMask) ColorModel() color.Model {
	return color.AlphaModel
}

func (m *roundedRectMask) Bounds() image.Rectangle {
	return m.rect
}

func (m *roundedRectMask) At(x, y int) color.Color {
	r := m.radius
	if r <= 0 {
		return color.Alpha{A: 0xff}
	}

	// Nearest corner circle center; points outside its radius are cut away.
	cx, cy := x, y
	switch {
	case x < m.rect.Min.X+r && y < m.rect.Min.Y+r:
		cx, cy = m.rect.Min.X+r, m.rect.Min.Y+r
	case x >= m.rect.Max.X-r && y < m.rect.Min.Y+r:
		cx, cy = m.rect.Max.X-r-1, m.rect.Min.Y+r
	case x < m.rect.Min.X+r && y >= m.rect.Max.Y-r:
		cx, cy = m.rect.Min.X+r, m.rect.Max.Y-r-1
	case x >= m.rect.Max.X-r && y >= m.rect.Max.Y-r:
		cx, cy = m.rect.Max.X-r-1, m.rect.Max.Y-r-1
	default:
		return color.Alpha{A: 0xff}
	}

	dx, dy := x-cx, y-cy
	if dx*dx+dy*dy > r*r {
		return color.Alpha{A: 0}
	}
	return color.Alpha{A: 0xff}
}

// overlayLogoPlaceholder draws a centered white square sized at 20% of the QR
// width (plus padding) where a logo would sit. The referenced logo image is
// not fetched.
func overlayLogoPlaceholder(src []byte) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("failed to decode QR image: %w", err)
	}

	bounds := img.Bounds()
	size := bounds.Dx()
	logoSize := size * 20 / 100
	pad := 10
	pos := (size - logoSize) / 2

	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)

	area := image.Rect(pos-pad, pos-pad, pos+logoSize+pad, pos+logoSize+pad).
		Add(bounds.Min).
		Intersect(bounds)
	draw.Draw(out, area, image.NewUniform(color.White), image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to re-encode image with logo area: %w", err)
	}
	return buf.Bytes(), nil
}
