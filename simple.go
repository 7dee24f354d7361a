package spritepack

import (
	"github.com/akeil/spritepack/internal/logging"
)

// SimplePacker places sprites on shelves, in input order.
//
// Sprites are lined up left to right until the next one would exceed the
// maximum width. The next shelf starts below the tallest sprite of the
// current one. When a shelf would exceed the maximum height, a new sheet is
// started. SimplePacker never rotates sprites.
type SimplePacker struct{}

// NewSimplePacker creates a shelf packer.
func NewSimplePacker() *SimplePacker {
	return &SimplePacker{}
}

func (p *SimplePacker) Pack(sprites []SpriteData, opts Options) ([]PackerResult, error) {
	err := opts.Validate()
	if err != nil {
		return nil, err
	}
	err = checkFit(sprites, opts, false)
	if err != nil {
		return nil, err
	}

	bin := opts.bin()
	results := make([]PackerResult, 0)
	anchors := make([]SpriteAnchor, 0)
	x, y, shelf := 0, 0, 0

	for _, s := range sprites {
		fp := opts.footprint(s.Size)

		if x+fp.Width > bin.Width {
			x = 0
			y += shelf
			shelf = 0
		}
		if y+fp.Height > bin.Height {
			logging.Debug("Simple packer: sheet %d full with %d sprites", len(results), len(anchors))
			results = append(results, finish(anchors, opts))
			anchors = make([]SpriteAnchor, 0)
			x, y, shelf = 0, 0, 0
		}

		anchors = append(anchors, SpriteAnchor{
			ID:       s.ID,
			Position: Point{x, y},
			Size:     s.Size,
		})
		x += fp.Width
		if fp.Height > shelf {
			shelf = fp.Height
		}
	}

	if len(anchors) > 0 {
		results = append(results, finish(anchors, opts))
	}
	logging.Debug("Simple packer: %d sprites on %d sheets", len(sprites), len(results))
	return results, nil
}
