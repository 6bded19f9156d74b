package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/tilegrid/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{
		"-d", "devices/small.hcl",
		"-format", "YAML",
		"-only", "small, quad,",
		"-workers", "8",
		"-log-level", "debug",
		"extra/",
	}, &out)

	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, &app.Config{
		DevicePaths: []string{"devices/small.hcl", "extra/"},
		Only:        []string{"small", "quad"},
		Format:      app.FormatYAML,
		LogFormat:   "text",
		LogLevel:    "debug",
		WorkerCount: 8,
	}, cfg)
	assert.Empty(t, out.String())
}

func TestParse_HelpAndNoPath(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {}} {
		var out bytes.Buffer
		cfg, exit, err := Parse(args, &out)

		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown flag", []string{"-nope"}, "flag provided but not defined: -nope"},
		{"log format", []string{"-log-format", "xml", "devices"}, "invalid log-format"},
		{"log level", []string{"-log-level", "trace", "devices"}, `invalid log-level "trace"`},
		{"report format", []string{"-format", "csv", "devices"}, `unknown output format "csv"`},
		{"workers", []string{"-workers", "0", "devices"}, "worker count must be at least 1"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, exit, err := Parse(tc.args, &bytes.Buffer{})

			require.Error(t, err)
			assert.False(t, exit)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantErr)
		})
	}
}
