package internal

import "strings"

const upperHex = "0123456789ABCDEF"

// EncodeURIComponent percent-encodes s byte by byte, leaving only the
// ECMAScript encodeURIComponent unreserved set as is:
// A-Z a-z 0-9 - _ . ! ~ * ' ( )
func EncodeURIComponent(s string) string {
	// Fast path: nothing to escape
	escape := 0
	for i := 0; i < len(s); i++ {
		if !isURIUnreserved(s[i]) {
			escape++
		}
	}
	if escape == 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 2*escape)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isURIUnreserved(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperHex[c>>4])
		sb.WriteByte(upperHex[c&0x0F])
	}
	return sb.String()
}

func isURIUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
