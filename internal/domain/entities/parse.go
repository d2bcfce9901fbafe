package entities

import (
	"strconv"
	"strings"
)

// ParseIntOr parses s as a signed integer, returning def when it cannot.
func ParseIntOr(s string, def int) int {
	return parseOr(s, def, strconv.Atoi)
}

// ParseUintOr parses s as a non-negative integer, returning def when it cannot.
// A single leading plus sign is accepted.
func ParseUintOr(s string, def int) int {
	return parseOr(s, def, func(v string) (int, error) {
		n, err := strconv.ParseUint(strings.TrimPrefix(v, "+"), 10, strconv.IntSize-1)
		return int(n), err
	})
}

func parseOr(s string, def int, parse func(string) (int, error)) int {
	n, err := parse(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}
