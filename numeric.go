package ask

import (
	"fmt"
	"reflect"
	"strconv"
)

// Numeric is the set of types a Number prompt can produce.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NumberKind classifies a numeric type for input admission.
type NumberKind struct {
	Signed bool
	Float  bool
	Bits   int
}

// KindOf returns the classification of N.
func KindOf[N Numeric]() NumberKind {
	t := reflect.TypeFor[N]()
	k := NumberKind{Bits: t.Bits()}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		k.Signed = true
		k.Float = true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		k.Signed = true
	}
	return k
}

// ParseNumber parses s as an N. Failures wrap ErrInvalidValue.
func ParseNumber[N Numeric](s string) (N, error) {
	k := KindOf[N]()
	switch {
	case k.Float:
		f, err := strconv.ParseFloat(s, k.Bits)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %w", ErrInvalidValue, s, err)
		}
		return N(f), nil
	case k.Signed:
		i, err := strconv.ParseInt(s, 10, k.Bits)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %w", ErrInvalidValue, s, err)
		}
		return N(i), nil
	default:
		u, err := strconv.ParseUint(s, 10, k.Bits)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %w", ErrInvalidValue, s, err)
		}
		return N(u), nil
	}
}

// formatNumber writes v in the plain notation Number accepts as input:
// floats never use an exponent.
func formatNumber[N Numeric](v N) string {
	k := KindOf[N]()
	switch {
	case k.Float:
		return strconv.FormatFloat(float64(v), 'f', -1, k.Bits)
	case k.Signed:
		return strconv.FormatInt(int64(v), 10)
	default:
		return strconv.FormatUint(uint64(v), 10)
	}
}

// admits reports whether ch may be inserted at col into value.
//
// Digits are always accepted. A sign is accepted at column 0 for signed
// kinds when no sign is present yet, and a single decimal point for float
// kinds. Nothing may be inserted in front of an existing sign.
func (k NumberKind) admits(value []rune, col int, ch rune) bool {
	hasSign := len(value) > 0 && (value[0] == '-' || value[0] == '+')
	if hasSign && col == 0 {
		return false
	}
	switch {
	case ch >= '0' && ch <= '9':
		return true
	case ch == '-' || ch == '+':
		return k.Signed && col == 0 && !hasSign
	case ch == '.':
		if !k.Float {
			return false
		}
		for _, r := range value {
			if r == '.' {
				return false
			}
		}
		return true
	}
	return false
}
