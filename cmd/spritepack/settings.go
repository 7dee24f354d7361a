package main

import (
	"fmt"

	"gopkg.in/alecthomas/kingpin.v2"

	sp "github.com/akeil/spritepack"
	"github.com/akeil/spritepack/internal/imaging"
)

type settings struct {
	files     *[]string
	packer    *string
	heuristic *string
	maxWidth  *int
	maxHeight *int
	padding   *int
	rotate    *bool
	pot       *bool
	align     *int
}

func addPackFlags(cmd *kingpin.CmdClause) *settings {
	return &settings{
		files:     cmd.Arg("files", "Image files to pack (png, gif, jpeg, bmp, webp)").Required().ExistingFiles(),
		packer:    cmd.Flag("packer", "Packing strategy").Short('p').Default("maxrects").Enum("simple", "maxrects"),
		heuristic: cmd.Flag("heuristic", "Free rectangle heuristic for maxrects").Default(sp.BestAreaFit.String()).String(),
		maxWidth:  cmd.Flag("max-width", "Maximum sheet width").Default("4096").Int(),
		maxHeight: cmd.Flag("max-height", "Maximum sheet height").Default("4096").Int(),
		padding:   cmd.Flag("padding", "Pixels between sprites").Default("0").Int(),
		rotate:    cmd.Flag("rotate", "Allow rotating sprites (maxrects only)").Bool(),
		pot:       cmd.Flag("pot", "Power of two sheet dimensions").Bool(),
		align:     cmd.Flag("align", "Align sheet rows to this many bytes").Default("0").Int(),
	}
}

func (s *settings) options() sp.Options {
	return sp.Options{
		MaxWidth:      *s.maxWidth,
		MaxHeight:     *s.maxHeight,
		Padding:       *s.padding,
		AllowRotation: *s.rotate,
		PowerOfTwo:    *s.pot,
	}
}

func (s *settings) layout() sp.Layout {
	return sp.Layout{
		BytesPerPixel: imaging.BytesPerPixel,
		Alignment:     *s.align,
	}
}

func (s *settings) newPacker() (sp.Packer, error) {
	switch *s.packer {
	case "simple":
		return sp.NewSimplePacker(), nil
	case "maxrects":
		h, err := sp.ParseHeuristic(*s.heuristic)
		if err != nil {
			return nil, err
		}
		return sp.NewMaxrectsPacker(h), nil
	default:
		return nil, fmt.Errorf("unsupported packer %q", *s.packer)
	}
}

// run loads the input files and packs them.
// It returns the sprite names along with the sheets.
func (s *settings) run() ([]string, []sp.SpriteSheet, error) {
	p, err := s.newPacker()
	if err != nil {
		return nil, nil, err
	}

	fmt.Printf("%v load %d images\n", ellipsis, len(*s.files))
	names, input, err := loadSprites(*s.files)
	if err != nil {
		return nil, nil, err
	}

	fmt.Printf("%v pack %d sprites\n", ellipsis, len(input))
	sheets, err := sp.Pack(input, s.layout(), p, s.options())
	if err != nil {
		return nil, nil, err
	}
	return names, sheets, nil
}
