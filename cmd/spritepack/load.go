package main

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	sp "github.com/akeil/spritepack"
	"github.com/akeil/spritepack/internal/imaging"
)

// loadSprites decodes the given files concurrently.
// Sprite names are the file names without extension.
func loadSprites(paths []string) ([]string, []sp.InputSprite, error) {
	names := make([]string, len(paths))
	input := make([]sp.InputSprite, len(paths))

	var group errgroup.Group
	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			img, err := decode(path)
			if err != nil {
				return sp.Wrap(err, "decode %q", path)
			}
			buf, w, h := imaging.Pixels(img)
			input[i] = sp.InputSprite{Bytes: buf, Width: w, Height: h}
			names[i] = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, nil, err
	}
	return names, input, nil
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}
