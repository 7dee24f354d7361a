package spritepack

import (
	"image"

	"github.com/akeil/spritepack/internal/logging"
)

// Layout describes the pixel buffer of a sheet.
type Layout struct {
	// BytesPerPixel is the channel width shared by all input sprites.
	BytesPerPixel int
	// Stride is a fixed row length in bytes. If zero, it is computed from
	// the sheet width and Alignment.
	Stride int
	// Alignment rounds a computed stride up to a multiple of this many
	// bytes. Zero or one means rows are packed tightly.
	Alignment int
}

// DefaultLayout is for tightly packed 4-byte (RGBA) pixels.
func DefaultLayout() Layout {
	return Layout{BytesPerPixel: 4}
}

func (l Layout) validate() error {
	if l.BytesPerPixel <= 0 {
		return NewConfigurationError("bytes per pixel must be positive, got %d", l.BytesPerPixel)
	}
	if l.Stride < 0 || l.Alignment < 0 {
		return NewConfigurationError("stride and alignment must not be negative")
	}
	return nil
}

// stride returns the row length for a sheet of the given width.
func (l Layout) stride(width int) (int, error) {
	row := width * l.BytesPerPixel
	if l.Stride != 0 {
		if l.Stride < row {
			return 0, NewConfigurationError("stride %d is less than %d bytes needed for a row of width %d", l.Stride, row, width)
		}
		return l.Stride, nil
	}
	if l.Alignment > 1 && row%l.Alignment != 0 {
		row += l.Alignment - row%l.Alignment
	}
	return row, nil
}

// SpriteSheet is a packed sheet with its pixels and anchors.
//
// Anchors holds one entry for every input sprite placed on this sheet,
// including duplicates that share the pixels of another sprite.
type SpriteSheet struct {
	Bytes         []byte
	Stride        int
	BytesPerPixel int
	Dimensions    Size
	Anchors       []SpriteAnchor
}

// Image wraps the pixel buffer as an NRGBA image without copying.
// It returns nil unless the sheet has 4 bytes per pixel.
func (s *SpriteSheet) Image() *image.NRGBA {
	if s.BytesPerPixel != 4 {
		return nil
	}
	return &image.NRGBA{
		Pix:    s.Bytes,
		Stride: s.Stride,
		Rect:   image.Rect(0, 0, s.Dimensions.Width, s.Dimensions.Height),
	}
}

// compose allocates the pixel buffer for one packer result, copies the
// sprites and adds anchors for aliased duplicates.
//
// sprites is indexed by input id; entries for aliased ids are nil.
func compose(res PackerResult, sprites []*Sprite, aliases []Alias, layout Layout, stride int) (SpriteSheet, error) {
	dim := res.Dimensions
	buf := make([]byte, dim.Height*stride)

	anchors := make([]SpriteAnchor, 0, len(res.Anchors))
	anchors = append(anchors, res.Anchors...)
	for _, a := range res.Anchors {
		err := blit(buf, stride, layout.BytesPerPixel, sprites[a.ID], a)
		if err != nil {
			return SpriteSheet{}, err
		}
		if aliases[a.ID].Kind == AliasOf {
			for _, id := range aliases[a.ID].IDs {
				alias := a
				alias.ID = id
				anchors = append(anchors, alias)
			}
		}
	}

	logging.Debug("Composed sheet %v: %d blits, %d anchors", dim, len(res.Anchors), len(anchors))
	return SpriteSheet{
		Bytes:         buf,
		Stride:        stride,
		BytesPerPixel: layout.BytesPerPixel,
		Dimensions:    dim,
		Anchors:       anchors,
	}, nil
}

// blit copies the pixels of one sprite into the sheet buffer.
// Rotated anchors receive the sprite turned 90 degrees clockwise.
func blit(buf []byte, stride, bpp int, s *Sprite, a SpriteAnchor) error {
	src := s.Data.Size
	row := src.Width * bpp
	if len(s.bytes) != row*src.Height {
		return NewInvariantViolation("sprite %d has %d bytes, want %d", s.Data.ID, len(s.bytes), row*src.Height)
	}

	if !a.Rotated {
		for y := 0; y < src.Height; y++ {
			dst := (a.Position.Y+y)*stride + a.Position.X*bpp
			if dst < 0 || dst+row > len(buf) || a.Position.X*bpp+row > stride {
				return NewInvariantViolation("row %d of %v is outside the sheet", y, a)
			}
			copy(buf[dst:dst+row], s.bytes[y*row:(y+1)*row])
		}
		return nil
	}

	// (sx, sy) -> (x + h-1-sy, y + sx)
	for sy := 0; sy < src.Height; sy++ {
		for sx := 0; sx < src.Width; sx++ {
			dx := a.Position.X + src.Height - 1 - sy
			dy := a.Position.Y + sx
			dst := dy*stride + dx*bpp
			if dx < 0 || dy < 0 || (dx+1)*bpp > stride || dst+bpp > len(buf) {
				return NewInvariantViolation("pixel %d,%d of %v is outside the sheet", sx, sy, a)
			}
			off := sy*row + sx*bpp
			copy(buf[dst:dst+bpp], s.bytes[off:off+bpp])
		}
	}
	return nil
}
