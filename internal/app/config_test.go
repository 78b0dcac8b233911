package app

import (
	"testing"

	"github.com/specialistvlad/coursegrid/internal/hcl_adapter"
	"github.com/specialistvlad/coursegrid/internal/yaml_adapter"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		cfg         Config
		expectErr   string
		expectedCfg *Config
	}{
		{
			name:        "lists with defaults",
			cfg:         Config{Command: CommandLists, LogFormat: "text", LogLevel: "info"},
			expectedCfg: &Config{Command: CommandLists, LogFormat: "text", LogLevel: "info"},
		},
		{
			name:        "case is normalised",
			cfg:         Config{Command: CommandDiscount, LogFormat: "JSON", LogLevel: "Debug"},
			expectedCfg: &Config{Command: CommandDiscount, LogFormat: "json", LogLevel: "debug"},
		},
		{
			name:        "yaml walkthrough",
			cfg:         Config{Command: CommandLists, WalkthroughPath: "walk.YML", LogFormat: "text", LogLevel: "warn"},
			expectedCfg: &Config{Command: CommandLists, WalkthroughPath: "walk.YML", LogFormat: "text", LogLevel: "warn"},
		},
		{
			name:        "walkthrough directory",
			cfg:         Config{Command: CommandLists, WalkthroughPath: "walks", LogFormat: "text", LogLevel: "error"},
			expectedCfg: &Config{Command: CommandLists, WalkthroughPath: "walks", LogFormat: "text", LogLevel: "error"},
		},
		{
			name:      "missing command",
			cfg:       Config{LogFormat: "text", LogLevel: "info"},
			expectErr: "Command is a required configuration field",
		},
		{
			name:      "unknown command",
			cfg:       Config{Command: "tuples", LogFormat: "text", LogLevel: "info"},
			expectErr: `unknown command "tuples"`,
		},
		{
			name:      "bad log format",
			cfg:       Config{Command: CommandLists, LogFormat: "xml", LogLevel: "info"},
			expectErr: "invalid log-format",
		},
		{
			name:      "bad log level",
			cfg:       Config{Command: CommandLists, LogFormat: "text", LogLevel: "verbose"},
			expectErr: "invalid log-level",
		},
		{
			name:      "walkthrough with discount",
			cfg:       Config{Command: CommandDiscount, WalkthroughPath: "walk.hcl", LogFormat: "text", LogLevel: "info"},
			expectErr: "only used by the lists command",
		},
		{
			name:      "unsupported walkthrough extension",
			cfg:       Config{Command: CommandLists, WalkthroughPath: "walk.json", LogFormat: "text", LogLevel: "info"},
			expectErr: "unsupported walkthrough file",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := NewConfig(tc.cfg)
			if tc.expectErr != "" {
				require.ErrorContains(t, err, tc.expectErr)
				require.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedCfg, cfg)
		})
	}
}

func TestLoaderFor(t *testing.T) {
	t.Parallel()

	require.IsType(t, &hcl_adapter.Loader{}, loaderFor("walk.hcl"))
	require.IsType(t, &hcl_adapter.Loader{}, loaderFor("walks"))
	require.IsType(t, &yaml_adapter.Loader{}, loaderFor("walk.yaml"))
	require.IsType(t, &yaml_adapter.Loader{}, loaderFor("WALK.YML"))
}
