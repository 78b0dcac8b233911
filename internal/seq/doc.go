// Package seq provides pure operations over an ordered sequence of integers.
// Every operation returns a new slice and leaves its input untouched, so a
// caller can hold the state before and after each step side by side.
package seq
