package table

import (
	"strconv"
	"strings"
)

// Record is an open-ended row: a mapping from column key to value. Values are
// JSON scalars (string, float64/int, nil). The "id" key is always present and
// is never reassigned once the record enters a Store.
type Record map[string]any

func (r Record) ID() string {
	id, _ := r["id"].(string)
	return id
}

func (r Record) Clone() Record {
	clone := Record{}
	for k, v := range r {
		clone[k] = v
	}
	return clone
}

// Stringify renders a field value the same way for searching and for export.
// Numbers are rendered without exponent notation, nil as the empty string.
func Stringify(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case bool:
		return strconv.FormatBool(value)
	default:
		return ""
	}
}

// Compare totally orders two field values: -1, 0 or 1. Two strings compare
// lexicographically; otherwise both values are coerced to numbers (the empty
// string counts as zero) and compare numerically. A value that cannot be
// coerced makes the pair a tie, so the caller's stable sort preserves the
// previous relative order.
func Compare(a, b any) int {
	sa, okA := a.(string)
	sb, okB := b.(string)
	if okA && okB {
		switch {
		case sa < sb:
			return -1
		case sa > sb:
			return 1
		}
		return 0
	}

	na, okA := toNumber(a)
	nb, okB := toNumber(b)
	if okA && okB {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	}

	return 0
}

func toNumber(v any) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return 0, true
		}
		n, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
