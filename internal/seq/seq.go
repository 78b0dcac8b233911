package seq

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNotFound is returned by Index when the value is absent.
	ErrNotFound = errors.New("value not found in sequence")
	// ErrIndexOutOfRange is returned by Insert for a position outside [0, len].
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrEmpty is returned by Pop on an empty sequence.
	ErrEmpty = errors.New("pop from empty sequence")
)

// New returns an empty, non-nil sequence.
func New() []int {
	return []int{}
}

// clone copies s into a fresh slice with room for extra more elements.
func clone(s []int, extra int) []int {
	out := make([]int, len(s), len(s)+extra)
	copy(out, s)
	return out
}

// Append returns s with values added to the end in order.
func Append(s []int, values ...int) []int {
	out := clone(s, len(values))
	return append(out, values...)
}

// Insert returns s with v placed before position i.
func Insert(s []int, i, v int) ([]int, error) {
	if i < 0 || i > len(s) {
		return nil, fmt.Errorf("insert at %d into sequence of length %d: %w", i, len(s), ErrIndexOutOfRange)
	}
	out := clone(s, 1)
	return slices.Insert(out, i, v), nil
}

// Extend returns s followed by every element of other.
func Extend(s, other []int) []int {
	return Append(s, other...)
}

// Pop returns s without its last element, along with that element.
func Pop(s []int) ([]int, int, error) {
	if len(s) == 0 {
		return nil, 0, ErrEmpty
	}
	last := len(s) - 1
	return clone(s[:last], 0), s[last], nil
}

// DropLast returns s without its last element. An empty sequence stays empty.
func DropLast(s []int) []int {
	if len(s) == 0 {
		return New()
	}
	return clone(s[:len(s)-1], 0)
}

// Sort returns an ascending copy of s.
func Sort(s []int) []int {
	out := clone(s, 0)
	slices.Sort(out)
	return out
}

// Index reports the 0-based position of the first occurrence of v.
func Index(s []int, v int) (int, error) {
	if i := slices.Index(s, v); i >= 0 {
		return i, nil
	}
	return -1, fmt.Errorf("index of %d: %w", v, ErrNotFound)
}

// Format renders s as a bracketed, comma separated list, e.g. "[10, 15, 20]".
func Format(s []int) string {
	b := make([]byte, 0, 2+len(s)*4)
	b = append(b, '[')
	for i, v := range s {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = fmt.Appendf(b, "%d", v)
	}
	b = append(b, ']')
	return string(b)
}
