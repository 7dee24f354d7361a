package main

import (
	"fmt"
	"io"

	"github.com/akeil/spritepack/pkg/render"
)

func doPreview(s *settings, out string, scale int, outline bool) error {
	_, sheets, err := s.run()
	if err != nil {
		return err
	}
	if len(sheets) == 0 {
		fmt.Println("No sprites to render.")
		return nil
	}

	fmt.Printf("%v render %d sheets\n", ellipsis, len(sheets))
	opts := render.PDFOptions{
		Scale:   scale,
		Outline: outline,
		Title:   "spritepack",
	}
	err = writeFile(out, func(w io.Writer) error {
		return render.PDF(sheets, opts, w)
	})
	if err != nil {
		return err
	}

	fmt.Printf("%v contact sheet saved as %q\n", checkmark, out)
	return nil
}
