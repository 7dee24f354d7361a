// Package render turns sprite sheets into images and documents.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/draw"

	sp "github.com/akeil/spritepack"
	"github.com/akeil/spritepack/internal/logging"
)

// OutlineColor is the default color for anchor outlines.
var OutlineColor = color.NRGBA{255, 0, 255, 255}

// PNG encodes the pixels of a sheet as PNG and writes them to w.
// The sheet must have 4 bytes per pixel (NRGBA).
func PNG(s *sp.SpriteSheet, w io.Writer) error {
	img := s.Image()
	if img == nil {
		return fmt.Errorf("cannot encode sheet with %d bytes per pixel as PNG", s.BytesPerPixel)
	}
	return png.Encode(w, img)
}

// Outline returns a copy of the sheet with a one pixel frame drawn along
// the inner edge of every anchor.
func Outline(s *sp.SpriteSheet, c color.Color) (*image.RGBA, error) {
	src := s.Image()
	if src == nil {
		return nil, fmt.Errorf("cannot outline sheet with %d bytes per pixel", s.BytesPerPixel)
	}

	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, image.ZP, draw.Src)

	gc := draw2dimg.NewGraphicContext(dst)
	gc.SetStrokeColor(c)
	gc.SetLineWidth(1)

	drawn := make(map[sp.SpriteAnchor]bool)
	for _, a := range s.Anchors {
		// aliases share the frame of their original
		key := a
		key.ID = 0
		if drawn[key] {
			continue
		}
		drawn[key] = true

		x0 := float64(a.Position.X) + 0.5
		y0 := float64(a.Position.Y) + 0.5
		x1 := float64(a.Position.X+a.Size.Width) - 0.5
		y1 := float64(a.Position.Y+a.Size.Height) - 0.5
		draw2dkit.Rectangle(gc, x0, y0, x1, y1)
		gc.Stroke()
	}

	logging.Debug("Outlined %d frames on sheet %v", len(drawn), s.Dimensions)
	return dst, nil
}
