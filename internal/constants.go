package internal

// Shared constants for dotted key handling

const (
	KeySeparator    = "."
	MaxKeyDepth     = 100 // Maximum number of segments in a dotted key
	MaxLoggedKeyLen = 100 // Keys longer than this are truncated in log records
)
