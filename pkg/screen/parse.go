package screen

import (
	"strconv"
	"strings"
)

// Text accepts any input, trimmed.
func Text(raw string) (string, bool) {
	return strings.TrimSpace(raw), true
}

// NonEmpty accepts any input that is not blank.
func NonEmpty(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	return s, s != ""
}

// Int accepts base-10 integers.
func Int(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

// IntRange accepts integers in [lo, hi].
func IntRange(lo, hi int) ParseFunc[int] {
	return func(raw string) (int, bool) {
		n, ok := Int(raw)
		if !ok || n < lo || n > hi {
			return 0, false
		}
		return n, true
	}
}

// OneOf accepts one of values, compared case-insensitively. The canonical
// spelling from values is returned.
func OneOf(values ...string) ParseFunc[string] {
	return func(raw string) (string, bool) {
		in := strings.TrimSpace(raw)
		for _, v := range values {
			if strings.EqualFold(in, v) {
				return v, true
			}
		}
		return "", false
	}
}

// Confirm accepts yes/no style answers.
func Confirm(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes", "true", "1":
		return true, true
	case "n", "no", "false", "0":
		return false, true
	}
	return false, false
}

// Choice accepts either the 1-based position of a label or the label itself
// (case-insensitive) and yields the 0-based index.
func Choice(labels ...string) ParseFunc[int] {
	return func(raw string) (int, bool) {
		in := strings.TrimSpace(raw)
		if n, err := strconv.Atoi(in); err == nil {
			if n >= 1 && n <= len(labels) {
				return n - 1, true
			}
			return 0, false
		}
		for i, label := range labels {
			if in != "" && strings.EqualFold(in, label) {
				return i, true
			}
		}
		return 0, false
	}
}

// Optional wraps parse so that blank input yields fallback instead of a rejection.
func Optional[T any](parse ParseFunc[T], fallback T) ParseFunc[T] {
	return func(raw string) (T, bool) {
		if strings.TrimSpace(raw) == "" {
			return fallback, true
		}
		return parse(raw)
	}
}
