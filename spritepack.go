// Package spritepack packs sprites into sprite sheets.
//
// Pack removes byte-identical duplicates, hands the remaining sizes to a
// Packer (SimplePacker or MaxrectsPacker), copies the sprite pixels into
// one buffer per sheet and returns the sheets with an anchor for every
// input sprite. Encode turns the anchors of a sheet into metadata through a
// Format; see the format package for implementations.
package spritepack

import (
	"github.com/akeil/spritepack/internal/logging"
)

// SetLogLevel sets the log level by name: debug, info, warning or error.
// Any other name disables logging.
func SetLogLevel(level string) {
	logging.SetLevel(logging.ParseLevel(level))
}
