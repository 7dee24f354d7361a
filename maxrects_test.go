package spritepack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allHeuristics = []Heuristic{BestAreaFit, BestShortSideFit, BestLongSideFit, BottomLeft}

// assertLayout checks the guarantees every packer must give.
func assertLayout(t *testing.T, sprites []SpriteData, res []PackerResult, opts Options) {
	t.Helper()
	seen := make(map[int]int)
	for _, sheet := range res {
		max := opts.maxSize()
		assert.True(t, fits(sheet.Dimensions, max), "sheet %v exceeds %v", sheet.Dimensions, max)
		for i, a := range sheet.Anchors {
			seen[a.ID]++
			assert.True(t, a.Within(sheet.Dimensions), "%v outside of %v", a, sheet.Dimensions)
			for _, b := range sheet.Anchors[:i] {
				// footprints include the padding on the right and bottom
				pa, pb := a, b
				pa.Size = opts.footprint(a.Size)
				pb.Size = opts.footprint(b.Size)
				assert.False(t, pa.Overlaps(pb), "%v overlaps %v", a, b)
			}
		}
	}
	require.Len(t, seen, len(sprites))
	for _, s := range sprites {
		assert.Equal(t, 1, seen[s.ID], "sprite %d", s.ID)
	}
}

func TestMaxrectsUniformGrid(t *testing.T) {
	sizes := make([]Size, 50)
	for i := range sizes {
		sizes[i] = Size{16, 16}
	}
	sprites := shapes(sizes...)
	opts := Options{MaxWidth: 256, MaxHeight: 256}

	for _, h := range allHeuristics {
		res, err := NewMaxrectsPacker(h).Pack(sprites, opts)
		require.NoError(t, err, h.String())
		require.Len(t, res, 1, h.String())

		assertLayout(t, sprites, res, opts)
		assert.LessOrEqual(t, 50*16*16, res[0].Dimensions.Area())
		assert.LessOrEqual(t, res[0].Dimensions.Area(), 256*256)
	}
}

func TestMaxrectsPlacement(t *testing.T) {
	opts := Options{MaxWidth: 10, MaxHeight: 10}
	sprites := shapes(Size{2, 2}, Size{4, 4})

	res, err := NewMaxrectsPacker(BestAreaFit).Pack(sprites, opts)
	require.NoError(t, err)
	require.Len(t, res, 1)

	// largest first, ties on score go to the first free rect
	assert.Equal(t, []SpriteAnchor{
		{ID: 1, Position: Point{0, 0}, Size: Size{4, 4}},
		{ID: 0, Position: Point{4, 0}, Size: Size{2, 2}},
	}, res[0].Anchors)
	assert.Equal(t, Size{6, 4}, res[0].Dimensions)
}

func TestMaxrectsNewSheet(t *testing.T) {
	opts := Options{MaxWidth: 10, MaxHeight: 10}
	sprites := shapes(Size{6, 6}, Size{6, 6}, Size{6, 6}, Size{4, 10})

	res, err := NewMaxrectsPacker(BestAreaFit).Pack(sprites, opts)
	require.NoError(t, err)
	require.Len(t, res, 3)
	assertLayout(t, sprites, res, opts)

	// the 4x10 sprite is packed first, the first 6x6 fills the gap
	assert.Equal(t, 3, res[0].Anchors[0].ID)
	assert.Equal(t, 0, res[0].Anchors[1].ID)
	assert.Equal(t, Point{4, 0}, res[0].Anchors[1].Position)
	assert.Equal(t, Size{10, 10}, res[0].Dimensions)
}

func TestMaxrectsRotation(t *testing.T) {
	opts := Options{MaxWidth: 10, MaxHeight: 30}
	sprites := shapes(Size{20, 5})

	_, err := NewMaxrectsPacker(BestAreaFit).Pack(sprites, opts)
	assert.True(t, IsConfigurationError(err))

	opts.AllowRotation = true
	res, err := NewMaxrectsPacker(BestAreaFit).Pack(sprites, opts)
	require.NoError(t, err)
	require.Len(t, res, 1)
	a := res[0].Anchors[0]
	assert.True(t, a.Rotated)
	assert.Equal(t, Size{5, 20}, a.Size)
	assert.Equal(t, Size{5, 20}, res[0].Dimensions)
}

func TestMaxrectsTooLarge(t *testing.T) {
	opts := Options{MaxWidth: 8, MaxHeight: 8}
	_, err := NewMaxrectsPacker(BestAreaFit).Pack(shapes(Size{9, 9}), opts)
	if !IsConfigurationError(err) {
		t.Errorf("expected configuration error, got %v", err)
	}

	_, err = NewMaxrectsPacker(Heuristic(42)).Pack(shapes(Size{1, 1}), opts)
	if !IsConfigurationError(err) {
		t.Errorf("expected configuration error for unknown heuristic, got %v", err)
	}
}

func TestMaxrectsRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		sizes := make([]Size, 1+rnd.Intn(80))
		for i := range sizes {
			sizes[i] = Size{1 + rnd.Intn(40), 1 + rnd.Intn(40)}
		}
		sprites := shapes(sizes...)
		opts := Options{
			MaxWidth:      64 + rnd.Intn(64),
			MaxHeight:     64 + rnd.Intn(64),
			Padding:       rnd.Intn(3),
			AllowRotation: rnd.Intn(2) == 0,
			PowerOfTwo:    rnd.Intn(3) == 0,
		}

		for _, h := range allHeuristics {
			res, err := NewMaxrectsPacker(h).Pack(sprites, opts)
			require.NoError(t, err)
			assertLayout(t, sprites, res, opts)

			again, err := NewMaxrectsPacker(h).Pack(sprites, opts)
			require.NoError(t, err)
			assert.Equal(t, res, again, "packing is not deterministic")
		}

		res, err := NewSimplePacker().Pack(sprites, opts)
		require.NoError(t, err)
		assertLayout(t, sprites, res, opts)
	}
}

func TestSplit(t *testing.T) {
	b := newMaxrectsBin(Options{MaxWidth: 10, MaxHeight: 10}, BestAreaFit)
	b.split(rect{0, 0, 4, 3})
	assert.Equal(t, []rect{{4, 0, 6, 10}, {0, 3, 10, 7}}, b.free)
}

func TestPrune(t *testing.T) {
	rects := []rect{{0, 0, 5, 5}, {0, 0, 5, 5}, {1, 1, 2, 2}, {0, 0, 10, 1}}
	assert.Equal(t, []rect{{0, 0, 5, 5}, {0, 0, 10, 1}}, prune(rects))
}

func TestParseHeuristic(t *testing.T) {
	for _, h := range allHeuristics {
		parsed, err := ParseHeuristic(h.String())
		require.NoError(t, err)
		assert.Equal(t, h, parsed)
	}
	_, err := ParseHeuristic("nope")
	assert.True(t, IsConfigurationError(err))
}
