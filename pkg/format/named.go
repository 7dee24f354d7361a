package format

import (
	"fmt"

	sp "github.com/akeil/spritepack"
)

// Named maps sprite names to their position on the sheet.
// Names is indexed by sprite id; every anchor needs a unique name.
type Named struct {
	Names  []string
	Indent bool
}

type namedSheet struct {
	Width   int                   `json:"width"`
	Height  int                   `json:"height"`
	Sprites map[string]namedFrame `json:"sprites"`
}

type namedFrame struct {
	X       int  `json:"x"`
	Y       int  `json:"y"`
	Width   int  `json:"width"`
	Height  int  `json:"height"`
	Rotated bool `json:"rotated,omitempty"`
}

func (f Named) Encode(dim sp.Size, anchors []sp.SpriteAnchor) ([]byte, error) {
	sheet := namedSheet{
		Width:   dim.Width,
		Height:  dim.Height,
		Sprites: make(map[string]namedFrame, len(anchors)),
	}
	for _, a := range sorted(anchors) {
		n, err := name(f.Names, a.ID)
		if err != nil {
			return nil, err
		}
		if _, dup := sheet.Sprites[n]; dup {
			return nil, fmt.Errorf("duplicate sprite name %q", n)
		}
		sheet.Sprites[n] = namedFrame{
			X:       a.Position.X,
			Y:       a.Position.Y,
			Width:   a.Size.Width,
			Height:  a.Size.Height,
			Rotated: a.Rotated,
		}
	}
	return marshal(sheet, f.Indent)
}
