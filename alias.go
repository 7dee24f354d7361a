package spritepack

import (
	"bytes"

	"github.com/cespare/xxhash/v2"

	"github.com/akeil/spritepack/internal/logging"
)

// AliasKind is the deduplication state of one input sprite.
type AliasKind int

const (
	// NotAliased sprites are unique and packed as they are.
	NotAliased AliasKind = iota
	// Aliased sprites duplicate an earlier sprite and are not packed.
	Aliased
	// AliasOf marks the first occurrence of content that later sprites
	// duplicate. The sprite is packed; its duplicates are listed in IDs.
	AliasOf
)

func (k AliasKind) String() string {
	switch k {
	case NotAliased:
		return "not-aliased"
	case Aliased:
		return "aliased"
	case AliasOf:
		return "alias-of"
	default:
		return "unknown"
	}
}

// Alias is the resolution state for one input index.
type Alias struct {
	Kind AliasKind
	// IDs holds the duplicates of this sprite in input order.
	// Only set if Kind is AliasOf.
	IDs []int
}

// Packed tells if a sprite in this state takes part in packing.
func (a Alias) Packed() bool {
	return a.Kind != Aliased
}

// Resolve deduplicates the input by exact pixel content.
//
// It returns the sprites to pack, tagged with their input index, and the
// alias state for every input index. The first occurrence of some content
// is always the one that is kept. Sprites with equal bytes but different
// dimensions are distinct.
func Resolve(input []InputSprite) ([]Sprite, []Alias) {
	// buckets by content digest; candidates are compared byte for byte
	seen := make(map[uint64][]int)
	aliases := make([]Alias, len(input))

	for id, in := range input {
		digest := xxhash.Sum64(in.Bytes)
		canonical := -1
		for _, candidate := range seen[digest] {
			other := input[candidate]
			if other.Size() == in.Size() && bytes.Equal(other.Bytes, in.Bytes) {
				canonical = candidate
				break
			}
		}

		if canonical < 0 {
			seen[digest] = append(seen[digest], id)
			continue
		}

		aliases[canonical].Kind = AliasOf
		aliases[canonical].IDs = append(aliases[canonical].IDs, id)
		aliases[id].Kind = Aliased
	}

	sprites := make([]Sprite, 0, len(input))
	for id, in := range input {
		if aliases[id].Packed() {
			sprites = append(sprites, newSprite(id, in))
		}
	}

	logging.Debug("Resolved %d input sprites to %d unique sprites", len(input), len(sprites))
	return sprites, aliases
}
