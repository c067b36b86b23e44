package config

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the declared shape of a configuration field. It selects the
// coercion strategy applied to raw values from every source.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindStringList
	KindBoolList
	KindIntList
)

// listSeparator splits list-valued text such as "123,456,789".
const listSeparator = ","

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindStringList:
		return "list[string]"
	case KindBoolList:
		return "list[bool]"
	case KindIntList:
		return "list[int]"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsList reports whether values of this kind are homogeneous lists.
func (k Kind) IsList() bool {
	return k == KindStringList || k == KindBoolList || k == KindIntList
}

// Elem returns the scalar kind of list elements. Scalar kinds return
// themselves.
func (k Kind) Elem() Kind {
	switch k {
	case KindStringList:
		return KindString
	case KindBoolList:
		return KindBool
	case KindIntList:
		return KindInt
	default:
		return k
	}
}

// falseLiterals are the only non-empty spellings that coerce to false.
var falseLiterals = map[string]struct{}{
	"0":     {},
	"f":     {},
	"false": {},
	"n":     {},
	"no":    {},
	"off":   {},
}

// parseBoolText turns environment text into a boolean. Empty text and the
// false literals give false, anything else gives true.
func parseBoolText(raw string) bool {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return false
	}
	_, isFalse := falseLiterals[v]
	return !isFalse
}

// CoerceText converts textual input (environment variables are always text)
// to the Go value for kind: string, bool, int64, []string, []bool or []int64.
//
// Lists are split on commas and every element is trimmed before it is
// coerced with the element kind.
func CoerceText(raw string, kind Kind) (any, error) {
	if kind.IsList() {
		parts := strings.Split(raw, listSeparator)
		items := make([]any, 0, len(parts))
		for _, part := range parts {
			item, err := coerceScalarText(strings.TrimSpace(part), kind.Elem())
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return typedList(items, kind), nil
	}

	return coerceScalarText(raw, kind)
}

func coerceScalarText(raw string, kind Kind) (any, error) {
	switch kind {
	case KindBool:
		return parseBoolText(raw), nil
	case KindInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a base-10 integer: %w", raw, err)
		}
		return n, nil
	default:
		return raw, nil
	}
}

// CoerceNative converts an already-decoded file value (JSON or YAML) to the Go
// value for kind. Strings are accepted for every kind and go through
// [CoerceText], so `"BOT_ONLY": "yes"` and `"IDS": "1,2"` behave like their
// environment counterparts.
func CoerceNative(value any, kind Kind) (any, error) {
	if s, ok := value.(string); ok {
		return CoerceText(s, kind)
	}

	if !kind.IsList() {
		return coerceScalarNative(value, kind)
	}

	raw, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("expected %s, got %T", kind, value)
	}
	items := make([]any, 0, len(raw))
	for i, elem := range raw {
		item, err := coerceScalarNative(elem, kind.Elem())
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		items = append(items, item)
	}
	return typedList(items, kind), nil
}

func coerceScalarNative(value any, kind Kind) (any, error) {
	if s, ok := value.(string); ok {
		return coerceScalarText(s, kind)
	}

	switch kind {
	case KindBool:
		if b, ok := value.(bool); ok {
			return b, nil
		}
	case KindInt:
		if n, ok := nativeInt(value); ok {
			return n, nil
		}
	case KindString:
		switch v := value.(type) {
		case json.Number:
			return v.String(), nil
		case int, int64, uint64, float64:
			return fmt.Sprint(v), nil
		}
	}

	return nil, fmt.Errorf("expected %s, got %T", kind, value)
}

// nativeInt accepts the integer representations produced by encoding/json
// (with UseNumber) and gopkg.in/yaml.v3.
func nativeInt(value any) (int64, bool) {
	switch v := value.(type) {
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case int:
		return int64(v), true
	case int64:
		return v, true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case float64:
		if v != math.Trunc(v) || v >= math.MaxInt64 || v < math.MinInt64 {
			return 0, false
		}
		return int64(v), true
	default:
		return 0, false
	}
}

func typedList(items []any, kind Kind) any {
	switch kind {
	case KindBoolList:
		out := make([]bool, len(items))
		for i, item := range items {
			out[i] = item.(bool)
		}
		return out
	case KindIntList:
		out := make([]int64, len(items))
		for i, item := range items {
			out[i] = item.(int64)
		}
		return out
	default:
		out := make([]string, len(items))
		for i, item := range items {
			out[i] = item.(string)
		}
		return out
	}
}
