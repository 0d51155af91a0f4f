package values

import (
	"strconv"
	"strings"
)

// Parse reads a host literal as typed on a command line.
func Parse(str string) Value {
	switch strings.ToLower(str) {
	case "undefined":
		return Absent
	case "true", "yes":
		return BoolOf(true)
	case "false", "no":
		return BoolOf(false)
	}
	if i, err := strconv.ParseInt(str, 10, 64); err == nil {
		return IntOf(i)
	}
	if f, err := strconv.ParseFloat(str, 64); err == nil {
		return FloatOf(f)
	}
	return StrOf(str)
}

// ParseAll parses each literal.
func ParseAll(strs ...string) []Value {
	ret := make([]Value, 0, len(strs))
	for _, str := range strs {
		ret = append(ret, Parse(str))
	}
	return ret
}

// StrToBool accepts the usual spellings of true and false.
func StrToBool(str string) bool {
	switch strings.ToLower(str) {
	case "true", "t", "yes", "y", "1":
		return true
	}
	return false
}
