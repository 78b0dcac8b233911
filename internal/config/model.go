package config

import (
	"errors"
	"fmt"
)

// ErrUnknownOp is returned when a step names an operation that does not exist.
var ErrUnknownOp = errors.New("unknown operation")

// ErrInvalidStep is returned when a step's arguments do not fit its operation.
var ErrInvalidStep = errors.New("invalid step")

// Op names a single sequence operation.
type Op string

const (
	OpAppend   Op = "append"
	OpInsert   Op = "insert"
	OpExtend   Op = "extend"
	OpPop      Op = "pop"
	OpDropLast Op = "drop_last"
	OpSort     Op = "sort"
	OpSorted   Op = "sorted"
	OpIndex    Op = "index"
)

// Ops lists every supported operation in declaration order.
var Ops = []Op{OpAppend, OpInsert, OpExtend, OpPop, OpDropLast, OpSort, OpSorted, OpIndex}

// Model is the unified, format-agnostic representation of a walkthrough file.
type Model struct {
	Steps []*Step
}

// Step is the format-agnostic representation of one `step` entry.
type Step struct {
	Op     Op
	Values []int
	Index  *int
	Value  *int
	// Source points at the declaring location, e.g. "main.hcl:3,1-4".
	// Empty for steps built in code.
	Source string
}

// Validate checks that the step's operation exists and that exactly the
// arguments it needs are present.
func (s *Step) Validate() error {
	var needValues, needIndex, needValue bool
	switch s.Op {
	case OpAppend, OpExtend:
		needValues = true
	case OpInsert:
		needIndex, needValue = true, true
	case OpIndex:
		needValue = true
	case OpPop, OpDropLast, OpSort, OpSorted:
	default:
		return fmt.Errorf("%w %q%s", ErrUnknownOp, s.Op, s.at())
	}

	if !needValues && s.Values != nil {
		return fmt.Errorf("%w: %s does not take 'values'%s", ErrInvalidStep, s.Op, s.at())
	}
	if needValues && s.Values == nil {
		return fmt.Errorf("%w: %s requires 'values'%s", ErrInvalidStep, s.Op, s.at())
	}
	if needIndex != (s.Index != nil) {
		return fmt.Errorf("%w: 'index' is %s for %s%s", ErrInvalidStep, requirement(needIndex), s.Op, s.at())
	}
	if needValue != (s.Value != nil) {
		return fmt.Errorf("%w: 'value' is %s for %s%s", ErrInvalidStep, requirement(needValue), s.Op, s.at())
	}
	return nil
}

// Validate checks every step of the model.
func (m *Model) Validate() error {
	for i, s := range m.Steps {
		if s == nil {
			return fmt.Errorf("%w: step %d is empty", ErrInvalidStep, i+1)
		}
		if err := s.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (s *Step) at() string {
	if s.Source == "" {
		return ""
	}
	return " (" + s.Source + ")"
}

func requirement(required bool) string {
	if required {
		return "required"
	}
	return "not allowed"
}
