package yaml_adapter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/coursegrid/internal/config"
	"github.com/specialistvlad/coursegrid/internal/testutil"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, content string) (*config.Model, error) {
	t.Helper()
	root := testutil.WriteFiles(t, map[string]string{"walk.yaml": content})
	return NewLoader().Load(context.Background(), filepath.Join(root, "walk.yaml"))
}

func TestLoad_Canonical(t *testing.T) {
	t.Parallel()

	model, err := load(t, `steps:
  - op: append
    values: [10, 20, 30, 40]
  - op: insert
    index: 1
    value: 15
  - op: extend
    values: [50, 60, 70]
  - op: pop
  - op: sort
  - op: index
    value: 30
`)
	require.NoError(t, err)
	require.Len(t, model.Steps, 6)
	require.Equal(t, config.OpAppend, model.Steps[0].Op)
	require.Equal(t, []int{10, 20, 30, 40}, model.Steps[0].Values)
	require.Equal(t, 1, *model.Steps[1].Index)
	require.Equal(t, 15, *model.Steps[1].Value)
	require.Equal(t, 30, *model.Steps[5].Value)
	require.Equal(t, "walk.yaml:2", model.Steps[0].Source)
	require.Equal(t, "walk.yaml:4", model.Steps[1].Source)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		yaml        string
		expectIs    error
		expectInMsg string
	}{
		{name: "unknown field", yaml: "steps:\n  - op: pop\n    count: 2\n", expectInMsg: `unknown field "count"`},
		{name: "not a number", yaml: "steps:\n  - op: index\n    value: thirty\n", expectInMsg: "failed to decode"},
		{name: "unknown top-level key", yaml: "walk:\n  - op: pop\n", expectInMsg: "failed to decode"},
		{name: "unknown op", yaml: "steps:\n  - op: reverse\n", expectIs: config.ErrUnknownOp},
		{name: "missing value", yaml: "steps:\n  - op: index\n", expectIs: config.ErrInvalidStep},
		{name: "second document", yaml: "steps:\n  - op: pop\n---\nsteps:\n  - op: sort\n", expectInMsg: "multiple YAML documents"},
		{name: "null entry", yaml: "steps:\n  -\n", expectInMsg: "must be a mapping"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := load(t, tc.yaml)
			require.Error(t, err)
			if tc.expectIs != nil {
				require.ErrorIs(t, err, tc.expectIs)
			}
			if tc.expectInMsg != "" {
				require.Contains(t, err.Error(), tc.expectInMsg)
			}
		})
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Parallel()

	model, err := load(t, "")
	require.NoError(t, err)
	require.Empty(t, model.Steps)
}
