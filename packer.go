package spritepack

// Packer places sprites on one or more sheets.
//
// A Packer works on shapes only. It must place every given sprite exactly
// once and never let two anchors on the same sheet overlap.
type Packer interface {
	Pack(sprites []SpriteData, opts Options) ([]PackerResult, error)
}

// PackerResult is the layout of one sheet.
type PackerResult struct {
	Dimensions Size
	Anchors    []SpriteAnchor
}

// Options control the size and layout of the sheets produced by a Packer.
type Options struct {
	// MaxWidth and MaxHeight limit the size of a single sheet.
	MaxWidth  int
	MaxHeight int
	// Padding is the minimum number of pixels between two sprites.
	Padding int
	// AllowRotation lets a packer turn sprites by 90 degrees.
	// Not every packer supports rotation.
	AllowRotation bool
	// PowerOfTwo forces sheet dimensions to powers of two.
	PowerOfTwo bool
}

// DefaultOptions returns options for sheets of up to 4096x4096 pixels
// without padding and rotation.
func DefaultOptions() Options {
	return Options{
		MaxWidth:  4096,
		MaxHeight: 4096,
	}
}

// Validate checks that the options describe a usable sheet size.
func (o Options) Validate() error {
	if o.MaxWidth <= 0 || o.MaxHeight <= 0 {
		return NewConfigurationError("maximum sheet size must be positive, got %dx%d", o.MaxWidth, o.MaxHeight)
	}
	if o.Padding < 0 {
		return NewConfigurationError("padding must not be negative, got %d", o.Padding)
	}
	if o.PowerOfTwo && (floorPow2(o.MaxWidth) == 0 || floorPow2(o.MaxHeight) == 0) {
		return NewConfigurationError("no power of two fits into %dx%d", o.MaxWidth, o.MaxHeight)
	}
	return nil
}

// maxSize is the largest sheet a packer may produce.
// With PowerOfTwo, the limits are rounded down so that rounding the final
// sheet size up never exceeds them.
func (o Options) maxSize() Size {
	if o.PowerOfTwo {
		return Size{floorPow2(o.MaxWidth), floorPow2(o.MaxHeight)}
	}
	return Size{o.MaxWidth, o.MaxHeight}
}

// bin is the area a packer fills with padded footprints.
// It is larger than the sheet by one padding so that a sprite at the
// right or bottom edge needs no trailing gap.
func (o Options) bin() Size {
	m := o.maxSize()
	return Size{m.Width + o.Padding, m.Height + o.Padding}
}

func (o Options) footprint(s Size) Size {
	return Size{s.Width + o.Padding, s.Height + o.Padding}
}

// checkFit rejects sprites that could never be placed on an empty sheet.
func checkFit(sprites []SpriteData, opts Options, rotate bool) error {
	max := opts.maxSize()
	for _, s := range sprites {
		if s.Size.Width <= 0 || s.Size.Height <= 0 {
			return NewConfigurationError("sprite %d has empty size %v", s.ID, s.Size)
		}
		if fits(s.Size, max) {
			continue
		}
		if rotate && fits(rotated(s.Size), max) {
			continue
		}
		return NewConfigurationError("sprite %d (%v) does not fit on a sheet of %v", s.ID, s.Size, max)
	}
	return nil
}

func fits(s, into Size) bool {
	return s.Width <= into.Width && s.Height <= into.Height
}

func rotated(s Size) Size {
	return Size{s.Height, s.Width}
}

// finish computes the final dimensions of a sheet from its anchors.
func finish(anchors []SpriteAnchor, opts Options) PackerResult {
	var dim Size
	for _, a := range anchors {
		if a.maxX() > dim.Width {
			dim.Width = a.maxX()
		}
		if a.maxY() > dim.Height {
			dim.Height = a.maxY()
		}
	}
	if opts.PowerOfTwo {
		dim = Size{ceilPow2(dim.Width), ceilPow2(dim.Height)}
	}
	return PackerResult{Dimensions: dim, Anchors: anchors}
}

func floorPow2(n int) int {
	if n <= 0 {
		return 0
	}
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return p
}

func ceilPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
