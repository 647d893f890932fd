package render

import (
	"strconv"
	"strings"

	"m7s.live/inspector/pkg/box"
)

const collapsed = "Collapsed collection of values"

type Options struct {
	ShowAll bool // expand collections such as per-sample tables
	Color   bool
}

// scalar formats every value kind except Matrix and Collection, which are
// laid out on several lines. tag is the YAML tag of the result.
func scalar(v box.Value) (s string, tag string, ok bool) {
	switch v := v.(type) {
	case box.Uint8:
		return strconv.FormatUint(uint64(v), 10), "!!int", true
	case box.Uint16:
		return strconv.FormatUint(uint64(v), 10), "!!int", true
	case box.Uint32:
		return strconv.FormatUint(uint64(v), 10), "!!int", true
	case box.Uint64:
		return strconv.FormatUint(uint64(v), 10), "!!int", true
	case box.Int8:
		return strconv.FormatInt(int64(v), 10), "!!int", true
	case box.Int16:
		return strconv.FormatInt(int64(v), 10), "!!int", true
	case box.Int32:
		return strconv.FormatInt(int64(v), 10), "!!int", true
	case box.Int64:
		return strconv.FormatInt(int64(v), 10), "!!int", true
	case box.Bool:
		return strconv.FormatBool(bool(v)), "!!bool", true
	case box.Utf8:
		return string(v), "!!str", true
	case box.Flags:
		return v.String(), "!!str", true
	case box.FixedPoint8:
		return strconv.Itoa(int(v[0])) + "." + strconv.Itoa(int(v[1])), "!!str", true
	case box.FixedPoint16:
		return strconv.Itoa(int(v[0])) + "." + strconv.Itoa(int(v[1])), "!!str", true
	case box.FixedPoint32:
		return strconv.FormatUint(uint64(v[0]), 10) + "." + strconv.FormatUint(uint64(v[1]), 10), "!!str", true
	case box.Utf8Array:
		return strings.Join(v, ", "), "!!str", true
	case box.Uint8Array:
		return join(v), "!!str", true
	case box.Uint16Array:
		return join(v), "!!str", true
	case box.Uint32Array:
		return join(v), "!!str", true
	case box.Uint64Array:
		return join(v), "!!str", true
	}
	return "", "", false
}

func join[T uint8 | uint16 | uint32 | uint64](values []T) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(s, ", ")
}
