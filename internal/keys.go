package internal

import "strings"

// SplitKey splits a dotted key into its segments.
// An empty key has no segments.
func SplitKey(key string) []string {
	if key == "" {
		return nil
	}
	return strings.Split(key, KeySeparator)
}

// JoinKey joins the non-empty parts with the key separator
func JoinKey(parts ...string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}

	var sb strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(KeySeparator)
		}
		sb.WriteString(part)
	}
	return sb.String()
}

// ValidKey reports whether key is a well-formed dotted key: non-empty and
// without empty segments ("a..b", ".a", "a.").
func ValidKey(key string) bool {
	if key == "" {
		return false
	}
	if strings.HasPrefix(key, KeySeparator) || strings.HasSuffix(key, KeySeparator) {
		return false
	}
	return !strings.Contains(key, KeySeparator+KeySeparator)
}

// KeyDepth returns the number of segments in key
func KeyDepth(key string) int {
	if key == "" {
		return 0
	}
	return strings.Count(key, KeySeparator) + 1
}

// ParentKey returns every segment but the last one, or "" when key has a
// single segment.
func ParentKey(key string) string {
	idx := strings.LastIndex(key, KeySeparator)
	if idx < 0 {
		return ""
	}
	return key[:idx]
}

// ChildKey returns every segment but the first one, or "" when key has a
// single segment.
func ChildKey(key string) string {
	idx := strings.Index(key, KeySeparator)
	if idx < 0 {
		return ""
	}
	return key[idx+1:]
}

// LastSegment returns the final segment of key
func LastSegment(key string) string {
	idx := strings.LastIndex(key, KeySeparator)
	if idx < 0 {
		return key
	}
	return key[idx+1:]
}
