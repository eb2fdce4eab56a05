package carquery

import (
	"math"
	"strconv"
	"strings"
)

// record is one JSON object from an API response. The API sends numbers as
// strings, so every accessor coerces from whatever it finds.
type record map[string]any

// float returns the named field as a number. Numeric strings and JSON
// numbers are converted; null, absent and unparseable values become 0.
func (r record) float(key string) float64 {
	var f float64
	switch v := r[key].(type) {
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		f = parsed
	case float64:
		f = v
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// int is float truncated toward zero.
func (r record) int(key string) int {
	return int(r.float(key))
}

// str returns the named field as a string; null and absent become "".
func (r record) str(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// nullable is str, except that null and absent stay nil.
func (r record) nullable(key string) *string {
	if v, ok := r[key]; !ok || v == nil {
		return nil
	}
	s := r.str(key)
	return &s
}

// flag reports whether the named field is exactly the string "1".
func (r record) flag(key string) bool {
	s, ok := r[key].(string)
	return ok && s == "1"
}

// colors reads an array of {color_name, color_rgb} objects.
// Anything that is not an array yields nil.
func (r record) colors(key string) []Color {
	items, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]Color, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		c := record(obj)
		out = append(out, Color{Name: c.str("color_name"), RGB: c.str("color_rgb")})
	}
	return out
}
