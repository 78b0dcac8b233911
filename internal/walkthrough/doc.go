// Package walkthrough executes a list of sequence steps, carrying the state
// of each step into the next and recording it before and after every step.
//
// Default returns the canonical exercise: build [10,20,30,40], insert 15 at
// position 1, extend with [50,60,70], pop the last element, sort, and look up
// the position of 30.
package walkthrough
