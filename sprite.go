package spritepack

import "fmt"

// Size is the width and height of a sprite or a sheet, in pixels.
type Size struct {
	Width  int
	Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Area returns Width * Height.
func (s Size) Area() int {
	return s.Width * s.Height
}

// InputSprite is one source image as handed to Pack.
//
// Bytes holds the pixels row-major without padding, so it must contain
// exactly Width * Height * BytesPerPixel bytes. Pack never modifies it.
type InputSprite struct {
	Bytes  []byte
	Width  int
	Height int
}

// Size returns the dimensions of the sprite.
func (i InputSprite) Size() Size {
	return Size{i.Width, i.Height}
}

// SpriteData is the shape information a Packer works on.
// ID is the index of the sprite in the original input.
type SpriteData struct {
	ID   int
	Size Size
}

// Sprite is a unique input sprite that takes part in packing.
type Sprite struct {
	Data  SpriteData
	bytes []byte
}

func newSprite(id int, in InputSprite) Sprite {
	return Sprite{
		Data:  SpriteData{ID: id, Size: in.Size()},
		bytes: in.Bytes,
	}
}

// SpriteAnchor is the placement of a sprite on a sheet.
//
// Position and Size are in sheet coordinates. If Rotated is set, the sprite
// is stored turned 90 degrees clockwise and Size is the rotated size.
type SpriteAnchor struct {
	ID       int
	Position Point
	Size     Size
	Rotated  bool
}

// Point is a pixel position, X to the right and Y downwards.
type Point struct {
	X int
	Y int
}

func (a SpriteAnchor) minX() int { return a.Position.X }
func (a SpriteAnchor) minY() int { return a.Position.Y }
func (a SpriteAnchor) maxX() int { return a.Position.X + a.Size.Width }
func (a SpriteAnchor) maxY() int { return a.Position.Y + a.Size.Height }

// Overlaps tells if the two anchors share at least one pixel.
func (a SpriteAnchor) Overlaps(b SpriteAnchor) bool {
	return a.minX() < b.maxX() && b.minX() < a.maxX() &&
		a.minY() < b.maxY() && b.minY() < a.maxY()
}

// Within tells if the anchor lies completely inside a sheet of the given
// dimensions.
func (a SpriteAnchor) Within(s Size) bool {
	return a.minX() >= 0 && a.minY() >= 0 && a.maxX() <= s.Width && a.maxY() <= s.Height
}

func (a SpriteAnchor) String() string {
	r := ""
	if a.Rotated {
		r = " rotated"
	}
	return fmt.Sprintf("#%d at %d,%d (%v%s)", a.ID, a.Position.X, a.Position.Y, a.Size, r)
}
