package objectarray

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/cybergodev/objectarray/internal"
)

func validKey(key string) bool {
	return internal.ValidKey(key)
}

// stringify renders a leaf the way it appears in style and query strings
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(v).Int(), 10)
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(v).Uint(), 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		// nil elements join as empty strings
		parts := make([]string, len(v))
		for i, item := range v {
			if item != nil {
				parts[i] = stringify(item)
			}
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(v, ",")
	case *Map:
		return "[object Object]"
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// strictEqual compares type and value. Mappings compare by identity.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// looseEqual compares numbers numerically across types and everything else
// by its text form.
func looseEqual(a, b any) bool {
	if strictEqual(a, b) {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if isNested(a) || isNested(b) {
		return false
	}
	fa, okA := toNumber(a)
	fb, okB := toNumber(b)
	if okA && okB {
		return fa == fb
	}
	if isNumeric(a) || isNumeric(b) {
		return false
	}
	return stringify(a) == stringify(b)
}

// isNumeric reports whether value converts to a number without parsing text
func isNumeric(value any) bool {
	switch value.(type) {
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	return false
}

func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case int, int8, int16, int32, int64:
		return float64(reflect.ValueOf(v).Int()), true
	case uint, uint8, uint16, uint32, uint64:
		return float64(reflect.ValueOf(v).Uint()), true
	case float32:
		return float64(v), true
	case float64:
		return v, !math.IsNaN(v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil && !math.IsNaN(f)
	default:
		return 0, false
	}
}
