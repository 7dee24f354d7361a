package format

import (
	sp "github.com/akeil/spritepack"
)

// JSON lists the anchors of a sheet by sprite id.
type JSON struct {
	Indent bool
}

type jsonSheet struct {
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	Sprites []jsonSprite `json:"sprites"`
}

type jsonSprite struct {
	ID      int  `json:"id"`
	X       int  `json:"x"`
	Y       int  `json:"y"`
	Width   int  `json:"width"`
	Height  int  `json:"height"`
	Rotated bool `json:"rotated,omitempty"`
}

func (f JSON) Encode(dim sp.Size, anchors []sp.SpriteAnchor) ([]byte, error) {
	sheet := jsonSheet{
		Width:   dim.Width,
		Height:  dim.Height,
		Sprites: make([]jsonSprite, 0, len(anchors)),
	}
	for _, a := range sorted(anchors) {
		sheet.Sprites = append(sheet.Sprites, jsonSprite{
			ID:      a.ID,
			X:       a.Position.X,
			Y:       a.Position.Y,
			Width:   a.Size.Width,
			Height:  a.Size.Height,
			Rotated: a.Rotated,
		})
	}
	return marshal(sheet, f.Indent)
}
