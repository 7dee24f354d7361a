package main

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func testSettings(files []string, packer string) *settings {
	heuristic := "best-area"
	maxW, maxH, padding, align := 64, 64, 1, 0
	rotate, pot := false, false
	return &settings{
		files:     &files,
		packer:    &packer,
		heuristic: &heuristic,
		maxWidth:  &maxW,
		maxHeight: &maxH,
		padding:   &padding,
		rotate:    &rotate,
		pot:       &pot,
		align:     &align,
	}
}

func TestDoPack(t *testing.T) {
	dir := t.TempDir()
	red := color.NRGBA{255, 0, 0, 255}
	files := []string{
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "b.png"),
		filepath.Join(dir, "c.png"),
	}
	writePNG(t, files[0], 8, 8, red)
	writePNG(t, files[1], 4, 2, color.NRGBA{0, 0, 255, 255})
	writePNG(t, files[2], 8, 8, red)

	for _, packer := range []string{"simple", "maxrects"} {
		base := filepath.Join(dir, "out-"+packer)
		err := doPack(testSettings(files, packer), base, "texturepacker")
		require.NoError(t, err, packer)

		_, err = os.Stat(base + "-0.png")
		assert.NoError(t, err)

		data, err := os.ReadFile(base + "-0.json")
		require.NoError(t, err)
		var atlas struct {
			Frames map[string]struct {
				Frame struct{ X, Y, W, H int } `json:"frame"`
			} `json:"frames"`
		}
		require.NoError(t, json.Unmarshal(data, &atlas))
		require.Len(t, atlas.Frames, 3)
		assert.Equal(t, atlas.Frames["a"], atlas.Frames["c"])
		assert.Equal(t, 4, atlas.Frames["b"].Frame.W)
	}
}

func TestDoPreview(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.png")
	writePNG(t, file, 8, 8, color.NRGBA{0, 255, 0, 255})

	out := filepath.Join(dir, "sheets.pdf")
	require.NoError(t, doPreview(testSettings([]string{file}, "maxrects"), out, 2, true))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)
}

func TestNewPacker(t *testing.T) {
	s := testSettings(nil, "maxrects")
	bogus := "nope"
	s.heuristic = &bogus
	_, err := s.newPacker()
	assert.Error(t, err)

	s = testSettings(nil, "other")
	_, err = s.newPacker()
	assert.Error(t, err)
}

func TestLoadSpritesMissing(t *testing.T) {
	_, _, err := loadSprites([]string{filepath.Join(t.TempDir(), "missing.png")})
	assert.Error(t, err)
}
