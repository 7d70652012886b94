package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevelFlags(t *testing.T) {
	tests := []struct {
		name         string
		flags        []string
		wantDefault  string
		wantPackages map[string]string
		wantErr      bool
	}{
		{
			name:         "simple default",
			flags:        []string{"debug"},
			wantDefault:  "debug",
			wantPackages: map[string]string{},
		},
		{
			name:        "per-package overrides",
			flags:       []string{"default=info", "tools.registry=debug", "apiserver=warn"},
			wantDefault: "info",
			wantPackages: map[string]string{
				"tools.registry": "debug",
				"apiserver":      "warn",
			},
		},
		{
			name:    "invalid default level",
			flags:   []string{"loud"},
			wantErr: true,
		},
		{
			name:    "invalid package level",
			flags:   []string{"tools.registry=loud"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defaultLevel, packages, err := parseLogLevelFlags(tt.flags)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDefault, defaultLevel)
			assert.Equal(t, tt.wantPackages, packages)
		})
	}
}

func TestConvertEnvKeyToPackageName(t *testing.T) {
	assert.Equal(t, "tools.registry", convertEnvKeyToPackageName("LOG_LEVEL_TOOLS_REGISTRY"))
	assert.Equal(t, "apiserver", convertEnvKeyToPackageName("LOG_LEVEL_APISERVER"))
}
