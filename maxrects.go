package spritepack

import (
	"fmt"
	"sort"

	"github.com/akeil/spritepack/internal/logging"
)

// Heuristic selects the free rectangle a MaxrectsPacker places a sprite in.
type Heuristic int

const (
	// BestAreaFit picks the free rectangle with the least area left over.
	BestAreaFit Heuristic = iota
	// BestShortSideFit minimizes the shorter leftover side.
	BestShortSideFit
	// BestLongSideFit minimizes the longer leftover side.
	BestLongSideFit
	// BottomLeft picks the topmost, then leftmost position.
	BottomLeft
)

var heuristicNames = map[Heuristic]string{
	BestAreaFit:      "best-area",
	BestShortSideFit: "best-short-side",
	BestLongSideFit:  "best-long-side",
	BottomLeft:       "bottom-left",
}

func (h Heuristic) String() string {
	if n, ok := heuristicNames[h]; ok {
		return n
	}
	return fmt.Sprintf("heuristic(%d)", int(h))
}

// ParseHeuristic returns the Heuristic with the given name.
func ParseHeuristic(name string) (Heuristic, error) {
	for h, n := range heuristicNames {
		if n == name {
			return h, nil
		}
	}
	return 0, NewConfigurationError("unknown heuristic %q", name)
}

// MaxrectsPacker implements the maximal rectangles algorithm.
//
// Each sheet keeps a list of maximal free rectangles. Sprites are taken
// largest first and placed at the origin of the free rectangle chosen by
// the Heuristic. Free rectangles that intersect the placed sprite are split
// into the remaining strips, and strips contained in another free rectangle
// are dropped. Sprites that fit nowhere on the current sheet are placed on
// the next one.
type MaxrectsPacker struct {
	Heuristic Heuristic
}

// NewMaxrectsPacker creates a MaxRects packer with the given heuristic.
func NewMaxrectsPacker(h Heuristic) *MaxrectsPacker {
	return &MaxrectsPacker{Heuristic: h}
}

func (p *MaxrectsPacker) Pack(sprites []SpriteData, opts Options) ([]PackerResult, error) {
	err := opts.Validate()
	if err != nil {
		return nil, err
	}
	if _, ok := heuristicNames[p.Heuristic]; !ok {
		return nil, NewConfigurationError("unknown heuristic %v", p.Heuristic)
	}
	err = checkFit(sprites, opts, opts.AllowRotation)
	if err != nil {
		return nil, err
	}

	pending := make([]SpriteData, len(sprites))
	copy(pending, sprites)
	sort.SliceStable(pending, func(i, j int) bool {
		a, b := pending[i].Size, pending[j].Size
		if longSide(a) != longSide(b) {
			return longSide(a) > longSide(b)
		}
		if a.Area() != b.Area() {
			return a.Area() > b.Area()
		}
		return pending[i].ID < pending[j].ID
	})

	results := make([]PackerResult, 0)
	for len(pending) > 0 {
		bin := newMaxrectsBin(opts, p.Heuristic)
		deferred := make([]SpriteData, 0)
		for _, s := range pending {
			if !bin.insert(s) {
				deferred = append(deferred, s)
			}
		}

		// an empty sheet takes any sprite that passed checkFit
		if len(deferred) == len(pending) {
			return nil, NewInvariantViolation("no progress packing %d sprites", len(pending))
		}

		logging.Debug("Maxrects packer: sheet %d holds %d sprites, %d free rects", len(results), len(bin.anchors), len(bin.free))
		results = append(results, finish(bin.anchors, opts))
		pending = deferred
	}

	logging.Debug("Maxrects packer: %d sprites on %d sheets", len(sprites), len(results))
	return results, nil
}

func longSide(s Size) int {
	if s.Width > s.Height {
		return s.Width
	}
	return s.Height
}

type rect struct {
	x, y, w, h int
}

func (r rect) intersects(o rect) bool {
	return r.x < o.x+o.w && o.x < r.x+r.w &&
		r.y < o.y+o.h && o.y < r.y+r.h
}

func (r rect) contains(o rect) bool {
	return r.x <= o.x && r.y <= o.y &&
		r.x+r.w >= o.x+o.w && r.y+r.h >= o.y+o.h
}

// maxrectsBin is the state of one sheet.
type maxrectsBin struct {
	opts      Options
	heuristic Heuristic
	free      []rect
	anchors   []SpriteAnchor
}

func newMaxrectsBin(opts Options, h Heuristic) *maxrectsBin {
	b := opts.bin()
	return &maxrectsBin{
		opts:      opts,
		heuristic: h,
		free:      []rect{{0, 0, b.Width, b.Height}},
		anchors:   make([]SpriteAnchor, 0),
	}
}

type placement struct {
	index   int
	rotated bool
	primary int
	second  int
}

func (p placement) better(o placement) bool {
	if o.index < 0 {
		return true
	}
	if p.primary != o.primary {
		return p.primary < o.primary
	}
	return p.second < o.second
}

// insert places the sprite on this sheet if a free rectangle can hold it.
func (b *maxrectsBin) insert(s SpriteData) bool {
	best := placement{index: -1}
	fp := b.opts.footprint(s.Size)

	for i, r := range b.free {
		if fp.Width <= r.w && fp.Height <= r.h {
			c := b.score(r, fp)
			c.index = i
			if c.better(best) {
				best = c
			}
		}
		if !b.opts.AllowRotation || s.Size.Width == s.Size.Height {
			continue
		}
		rfp := rotated(fp)
		if rfp.Width <= r.w && rfp.Height <= r.h {
			c := b.score(r, rfp)
			c.index = i
			c.rotated = true
			if c.better(best) {
				best = c
			}
		}
	}

	if best.index < 0 {
		return false
	}

	r := b.free[best.index]
	size := s.Size
	if best.rotated {
		size = rotated(size)
		fp = rotated(fp)
	}
	b.anchors = append(b.anchors, SpriteAnchor{
		ID:       s.ID,
		Position: Point{r.x, r.y},
		Size:     size,
		Rotated:  best.rotated,
	})
	b.split(rect{r.x, r.y, fp.Width, fp.Height})
	return true
}

// score rates placing a footprint at the origin of the free rectangle r.
// Lower is better.
func (b *maxrectsBin) score(r rect, fp Size) placement {
	dw := r.w - fp.Width
	dh := r.h - fp.Height
	short, long := dw, dh
	if short > long {
		short, long = long, short
	}

	switch b.heuristic {
	case BestShortSideFit:
		return placement{primary: short, second: long}
	case BestLongSideFit:
		return placement{primary: long, second: short}
	case BottomLeft:
		return placement{primary: r.y + fp.Height, second: r.x}
	default:
		return placement{primary: r.w*r.h - fp.Area(), second: short}
	}
}

// split replaces every free rectangle that intersects used with the
// maximal strips left over around it, then prunes contained rectangles.
func (b *maxrectsBin) split(used rect) {
	next := make([]rect, 0, len(b.free)+4)
	for _, r := range b.free {
		if !r.intersects(used) {
			next = append(next, r)
			continue
		}
		// left
		if used.x > r.x {
			next = append(next, rect{r.x, r.y, used.x - r.x, r.h})
		}
		// right
		if used.x+used.w < r.x+r.w {
			next = append(next, rect{used.x + used.w, r.y, r.x + r.w - used.x - used.w, r.h})
		}
		// top
		if used.y > r.y {
			next = append(next, rect{r.x, r.y, r.w, used.y - r.y})
		}
		// bottom
		if used.y+used.h < r.y+r.h {
			next = append(next, rect{r.x, used.y + used.h, r.w, r.y + r.h - used.y - used.h})
		}
	}
	b.free = prune(next)
}

// prune drops rectangles contained in another one.
// Of two equal rectangles, the later one is kept.
func prune(rects []rect) []rect {
	removed := make([]bool, len(rects))
	for i := range rects {
		if removed[i] {
			continue
		}
		for j := i + 1; j < len(rects); j++ {
			if removed[j] {
				continue
			}
			if rects[j].contains(rects[i]) {
				removed[i] = true
				break
			}
			if rects[i].contains(rects[j]) {
				removed[j] = true
			}
		}
	}

	kept := make([]rect, 0, len(rects))
	for i, r := range rects {
		if !removed[i] {
			kept = append(kept, r)
		}
	}
	return kept
}
