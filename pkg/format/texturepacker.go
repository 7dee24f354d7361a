package format

import (
	"fmt"

	sp "github.com/akeil/spritepack"
)

// TexturePacker writes the TexturePacker "hash" JSON format.
//
// Rotated frames are stored turned 90 degrees clockwise; their frame
// width and height are the unrotated sprite size, as TexturePacker does.
type TexturePacker struct {
	// Image is the file name of the sheet image, recorded in meta.
	Image  string
	Names  []string
	Indent bool
}

type tpRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type tpSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type tpFrame struct {
	Frame            tpRect `json:"frame"`
	Rotated          bool   `json:"rotated"`
	Trimmed          bool   `json:"trimmed"`
	SpriteSourceSize tpRect `json:"spriteSourceSize"`
	SourceSize       tpSize `json:"sourceSize"`
}

type tpMeta struct {
	App    string `json:"app"`
	Image  string `json:"image"`
	Format string `json:"format"`
	Size   tpSize `json:"size"`
	Scale  string `json:"scale"`
}

type tpAtlas struct {
	Frames map[string]tpFrame `json:"frames"`
	Meta   tpMeta             `json:"meta"`
}

func (f TexturePacker) Encode(dim sp.Size, anchors []sp.SpriteAnchor) ([]byte, error) {
	atlas := tpAtlas{
		Frames: make(map[string]tpFrame, len(anchors)),
		Meta: tpMeta{
			App:    "spritepack",
			Image:  f.Image,
			Format: "RGBA8888",
			Size:   tpSize{dim.Width, dim.Height},
			Scale:  "1",
		},
	}

	for _, a := range sorted(anchors) {
		n, err := name(f.Names, a.ID)
		if err != nil {
			return nil, err
		}
		if _, dup := atlas.Frames[n]; dup {
			return nil, fmt.Errorf("duplicate sprite name %q", n)
		}

		w, h := a.Size.Width, a.Size.Height
		if a.Rotated {
			w, h = h, w
		}
		atlas.Frames[n] = tpFrame{
			Frame:            tpRect{a.Position.X, a.Position.Y, w, h},
			Rotated:          a.Rotated,
			SpriteSourceSize: tpRect{0, 0, w, h},
			SourceSize:       tpSize{w, h},
		}
	}
	return marshal(atlas, f.Indent)
}
