// Package format encodes sheet anchors as metadata for renderers and game
// engines.
//
// All formats sort anchors by sprite id, so encoding the same sheet twice
// yields the same bytes.
package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	sp "github.com/akeil/spritepack"
)

var (
	_ sp.Format = JSON{}
	_ sp.Format = Named{}
	_ sp.Format = TexturePacker{}
)

func sorted(anchors []sp.SpriteAnchor) []sp.SpriteAnchor {
	s := make([]sp.SpriteAnchor, len(anchors))
	copy(s, anchors)
	sort.Slice(s, func(i, j int) bool {
		return s[i].ID < s[j].ID
	})
	return s
}

// name looks up the name for a sprite id.
// Without names, the decimal id is used.
func name(names []string, id int) (string, error) {
	if names == nil {
		return strconv.Itoa(id), nil
	}
	if id < 0 || id >= len(names) {
		return "", fmt.Errorf("no name for sprite %d (%d names)", id, len(names))
	}
	return names[id], nil
}

func marshal(v interface{}, indent bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if indent {
		enc.SetIndent("", "  ")
	}
	err := enc.Encode(v)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
