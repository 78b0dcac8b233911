package apptest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/coursegrid/internal/app"
	"github.com/specialistvlad/coursegrid/internal/testutil"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcome of a single application run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
}

// RunApp builds an App from cfg and runs it with stdin as console input.
// A relative cfg.WalkthroughPath is resolved against a temporary directory
// populated with files.
func RunApp(t *testing.T, cfg app.Config, stdin string, files map[string]string) *HarnessResult {
	t.Helper()

	if len(files) > 0 {
		root := testutil.WriteFiles(t, files)
		if cfg.WalkthroughPath != "" && !filepath.IsAbs(cfg.WalkthroughPath) {
			cfg.WalkthroughPath = filepath.Join(root, cfg.WalkthroughPath)
		}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	validated, err := app.NewConfig(cfg)
	require.NoError(t, err, "test config must be valid")

	out := &testutil.SafeBuffer{}
	logs := &testutil.SafeBuffer{}
	a := app.NewApp(strings.NewReader(stdin), out, logs, validated)
	runErr := a.Run(context.Background())

	if os.Getenv("COURSEGRID_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
	}
}
