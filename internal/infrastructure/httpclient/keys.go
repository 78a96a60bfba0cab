package httpclient

import (
	"reflect"
	"strings"
)

// UnderscoreKeys rewrites every map key of v from camelCase to the processor's
// snake_case: each capital letter X becomes _x. Keys that are already snake_case are
// left as they are.
func UnderscoreKeys(v any) any {
	return convertKeys(v, underscore)
}

// CamelizeKeys is the inverse of UnderscoreKeys: "_x" and "-x" become "X", where x is a
// lowercase letter or digit.
func CamelizeKeys(v any) any {
	return convertKeys(v, camelize)
}

func convertKeys(v any, conv func(string) string) any {
	switch t := v.(type) {
	case nil:
		return nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[conv(k)] = convertKeys(val, conv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = convertKeys(val, conv)
		}
		return out
	}

	// Named map and slice types (entities.Attributes, []map[string]any, ...).
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[conv(iter.Key().String())] = convertKeys(iter.Value().Interface(), conv)
		}
		return out
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = convertKeys(rv.Index(i).Interface(), conv)
		}
		return out
	default:
		return v
	}
}

func underscore(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func camelize(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		if (c == '_' || c == '-') && i+1 < len(key) {
			next := key[i+1]
			switch {
			case next >= 'a' && next <= 'z':
				b.WriteByte(next - ('a' - 'A'))
				i++
				continue
			case next >= '0' && next <= '9':
				b.WriteByte(next)
				i++
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}
