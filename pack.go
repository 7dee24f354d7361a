package spritepack

import (
	"github.com/akeil/spritepack/internal/logging"
)

// Format turns the anchors of a sheet into metadata for some consumer.
// Options for the output are fields of the implementing type.
type Format interface {
	Encode(dimensions Size, anchors []SpriteAnchor) ([]byte, error)
}

// Pack deduplicates the input sprites, lets the Packer lay them out and
// composes the resulting sheets.
//
// Every input index appears in exactly one anchor across the returned
// sheets. Pack either places all sprites or returns an error before any
// pixel buffer is allocated. An empty input yields no sheets.
func Pack(input []InputSprite, layout Layout, p Packer, opts Options) ([]SpriteSheet, error) {
	err := layout.validate()
	if err != nil {
		return nil, err
	}
	for i, in := range input {
		want := in.Width * in.Height * layout.BytesPerPixel
		if in.Width <= 0 || in.Height <= 0 {
			return nil, NewConfigurationError("sprite %d has empty size %v", i, in.Size())
		}
		if len(in.Bytes) != want {
			return nil, NewConfigurationError("sprite %d (%v) has %d bytes, want %d", i, in.Size(), len(in.Bytes), want)
		}
	}
	if len(input) == 0 {
		return []SpriteSheet{}, nil
	}

	sprites, aliases := Resolve(input)

	data := make([]SpriteData, len(sprites))
	byID := make([]*Sprite, len(input))
	for i := range sprites {
		data[i] = sprites[i].Data
		byID[sprites[i].Data.ID] = &sprites[i]
	}

	results, err := p.Pack(data, opts)
	if err != nil {
		return nil, err
	}

	err = verify(results, byID)
	if err != nil {
		return nil, err
	}

	strides := make([]int, len(results))
	for i, res := range results {
		strides[i], err = layout.stride(res.Dimensions.Width)
		if err != nil {
			return nil, err
		}
	}

	sheets := make([]SpriteSheet, len(results))
	for i, res := range results {
		sheets[i], err = compose(res, byID, aliases, layout, strides[i])
		if err != nil {
			return nil, err
		}
	}

	logging.Info("Packed %d sprites (%d unique) on %d sheets", len(input), len(sprites), len(sheets))
	return sheets, nil
}

// verify checks the packer output against the sprites that were packed.
func verify(results []PackerResult, byID []*Sprite) error {
	placed := make([]bool, len(byID))
	for n, res := range results {
		for i, a := range res.Anchors {
			if a.ID < 0 || a.ID >= len(byID) || byID[a.ID] == nil {
				return NewInvariantViolation("sheet %d: anchor for unknown sprite %d", n, a.ID)
			}
			if placed[a.ID] {
				return NewInvariantViolation("sheet %d: sprite %d placed twice", n, a.ID)
			}
			placed[a.ID] = true

			want := byID[a.ID].Data.Size
			if a.Rotated {
				want = rotated(want)
			}
			if a.Size != want {
				return NewInvariantViolation("sheet %d: anchor %v does not match sprite size %v", n, a, byID[a.ID].Data.Size)
			}
			if !a.Within(res.Dimensions) {
				return NewInvariantViolation("sheet %d: anchor %v outside of %v", n, a, res.Dimensions)
			}
			for _, b := range res.Anchors[:i] {
				if a.Overlaps(b) {
					return NewInvariantViolation("sheet %d: anchors %v and %v overlap", n, a, b)
				}
			}
		}
	}

	for id, s := range byID {
		if s != nil && !placed[id] {
			return NewInvariantViolation("sprite %d was not placed", id)
		}
	}
	return nil
}

// Encode produces metadata for one sheet with the given Format.
func Encode(sheet *SpriteSheet, f Format) ([]byte, error) {
	return f.Encode(sheet.Dimensions, sheet.Anchors)
}
