package main

import (
	"fmt"
	"io"
	"path/filepath"

	sp "github.com/akeil/spritepack"
	"github.com/akeil/spritepack/internal/fs"
	"github.com/akeil/spritepack/pkg/format"
	"github.com/akeil/spritepack/pkg/render"
)

func doPack(s *settings, base, formatName string) error {
	names, sheets, err := s.run()
	if err != nil {
		return err
	}

	for i := range sheets {
		sheet := &sheets[i]
		imgPath := fmt.Sprintf("%s-%d.png", base, i)
		metaPath := fmt.Sprintf("%s-%d.json", base, i)

		err = writeFile(imgPath, func(w io.Writer) error {
			return render.PNG(sheet, w)
		})
		if err != nil {
			return err
		}

		f := newFormat(formatName, names, filepath.Base(imgPath))
		data, err := sp.Encode(sheet, f)
		if err != nil {
			return sp.Wrap(err, "encode metadata for %q", imgPath)
		}
		err = writeFile(metaPath, func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		})
		if err != nil {
			return err
		}

		fmt.Printf("%v sheet %v with %d sprites saved as %q\n", checkmark, sheet.Dimensions, len(sheet.Anchors), imgPath)
	}
	return nil
}

func newFormat(name string, names []string, image string) sp.Format {
	switch name {
	case "named":
		return format.Named{Names: names, Indent: true}
	case "texturepacker":
		return format.TexturePacker{Image: image, Names: names, Indent: true}
	default:
		return format.JSON{Indent: true}
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	err := fs.WriteFile(path, write)
	if err != nil {
		return sp.Wrap(err, "write %q", path)
	}
	return nil
}
