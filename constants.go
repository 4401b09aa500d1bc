package objectarray

import "github.com/cybergodev/objectarray/internal"

const (
	// KeySeparator joins the segments of a dotted key
	KeySeparator = internal.KeySeparator

	// DefaultMaxDepth caps the number of segments a dotted key may have
	DefaultMaxDepth = internal.MaxKeyDepth
)

// Method defaults for the throwing mode
const (
	throwsDataset   = true
	throwsKeys      = false
	throwsRemove    = true
	throwsIteration = true
	throwsFlatten   = true
)
