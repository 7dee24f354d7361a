package spritepack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	a := []byte{1, 2, 3, 4}
	input := []InputSprite{
		{Bytes: a, Width: 2, Height: 2},
		{Bytes: []byte{1, 2, 3, 4}, Width: 2, Height: 2},
		{Bytes: []byte{1, 2, 3}, Width: 3, Height: 1},
		{Bytes: []byte{1, 2, 3, 4}, Width: 2, Height: 2},
		// same bytes as #2, different shape
		{Bytes: []byte{1, 2, 3}, Width: 1, Height: 3},
	}

	sprites, aliases := Resolve(input)

	require.Len(t, aliases, len(input))
	assert.Equal(t, AliasOf, aliases[0].Kind)
	assert.Equal(t, []int{1, 3}, aliases[0].IDs)
	assert.Equal(t, Aliased, aliases[1].Kind)
	assert.Equal(t, NotAliased, aliases[2].Kind)
	assert.Equal(t, Aliased, aliases[3].Kind)
	assert.Equal(t, NotAliased, aliases[4].Kind)

	ids := make([]int, len(sprites))
	for i, s := range sprites {
		ids[i] = s.Data.ID
	}
	assert.Equal(t, []int{0, 2, 4}, ids)
	assert.Equal(t, Size{1, 3}, sprites[2].Data.Size)

	// input is untouched
	assert.Equal(t, []byte{1, 2, 3, 4}, a)
}

func TestResolveUnique(t *testing.T) {
	input := []InputSprite{
		{Bytes: []byte{1}, Width: 1, Height: 1},
		{Bytes: []byte{2}, Width: 1, Height: 1},
	}
	sprites, aliases := Resolve(input)
	if len(sprites) != 2 {
		t.Errorf("unexpected number of sprites: %v", len(sprites))
	}
	for i, a := range aliases {
		if a.Kind != NotAliased || a.IDs != nil {
			t.Errorf("unexpected alias state for %d: %+v", i, a)
		}
	}
}

func TestResolveEmpty(t *testing.T) {
	sprites, aliases := Resolve(nil)
	if len(sprites) != 0 || len(aliases) != 0 {
		t.Errorf("expected no sprites and no aliases")
	}
}
