package internal

import (
	"strings"
	"unicode"
)

// Camelize removes every '-' or space that is followed by a letter and
// uppercases that letter. The case of the first character is left alone.
//
//	Camelize("padding-left")  // paddingLeft
//	Camelize("a long-string") // aLongString
func Camelize(s string) string {
	runes := []rune(s)
	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if (r == '-' || r == ' ') && i+1 < len(runes) && unicode.IsLetter(runes[i+1]) {
			sb.WriteRune(unicode.ToUpper(runes[i+1]))
			i++
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Dashize inserts a '-' before every uppercase letter except the first
// character and lowercases it, then turns each space into a '-'. A space that
// is already followed by a '-' is dropped, so "a LongString" and "a -b" both
// end up with a single dash.
//
//	Dashize("paddingLeft")  // padding-left
//	Dashize("a LongString") // a-long-string
func Dashize(s string) string {
	runes := []rune(s)
	dashed := make([]rune, 0, len(runes)+4)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			dashed = append(dashed, '-', unicode.ToLower(r))
			continue
		}
		dashed = append(dashed, r)
	}

	var sb strings.Builder
	sb.Grow(len(dashed))
	for i, r := range dashed {
		if r == ' ' {
			if i+1 < len(dashed) && dashed[i+1] == '-' {
				continue
			}
			sb.WriteByte('-')
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
