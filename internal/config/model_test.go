package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestStepValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		step      Step
		expectErr error
	}{
		{name: "append with values", step: Step{Op: OpAppend, Values: []int{1}}},
		{name: "extend with empty values", step: Step{Op: OpExtend, Values: []int{}}},
		{name: "insert", step: Step{Op: OpInsert, Index: intPtr(1), Value: intPtr(15)}},
		{name: "index", step: Step{Op: OpIndex, Value: intPtr(30)}},
		{name: "pop", step: Step{Op: OpPop}},
		{name: "drop_last", step: Step{Op: OpDropLast}},
		{name: "sorted", step: Step{Op: OpSorted}},
		{name: "unknown op", step: Step{Op: "reverse"}, expectErr: ErrUnknownOp},
		{name: "append without values", step: Step{Op: OpAppend}, expectErr: ErrInvalidStep},
		{name: "insert without index", step: Step{Op: OpInsert, Value: intPtr(1)}, expectErr: ErrInvalidStep},
		{name: "insert without value", step: Step{Op: OpInsert, Index: intPtr(1)}, expectErr: ErrInvalidStep},
		{name: "pop with value", step: Step{Op: OpPop, Value: intPtr(1)}, expectErr: ErrInvalidStep},
		{name: "sort with values", step: Step{Op: OpSort, Values: []int{1}}, expectErr: ErrInvalidStep},
		{name: "index with index", step: Step{Op: OpIndex, Index: intPtr(0), Value: intPtr(1)}, expectErr: ErrInvalidStep},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.step.Validate()
			if tc.expectErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.expectErr)
		})
	}
}

func TestStepValidate_MentionsSource(t *testing.T) {
	t.Parallel()

	s := Step{Op: "shuffle", Source: "main.hcl:4,1-17"}
	err := s.Validate()
	require.ErrorIs(t, err, ErrUnknownOp)
	require.Contains(t, err.Error(), "main.hcl:4,1-17")
}

func TestModelValidate_ReportsStepNumber(t *testing.T) {
	t.Parallel()

	m := &Model{Steps: []*Step{
		{Op: OpAppend, Values: []int{1}},
		{Op: OpIndex},
	}}
	err := m.Validate()
	require.ErrorIs(t, err, ErrInvalidStep)
	require.Contains(t, err.Error(), "step 2")
}
