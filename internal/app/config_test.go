package app

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kmaicher/tabline/internal/logging"
	"github.com/peterbourgon/ff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	// Unset environment variables set on host computer
	t.Setenv("TABLINE_DEBUG", "")
	t.Setenv("TABLINE_LOG_LEVEL", "")
	t.Setenv("TABLINE_MIN_WIDTH", "")
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name string
		file string
		args []string
		envs []string
		want func(t *testing.T, got Config)
	}{
		{
			"defaults",
			"",
			nil,
			nil,
			func(t *testing.T, got Config) {
				want := Config{
					MaxWidth:    32,
					Padding:     1,
					TickMillis:  16,
					JumpLetters: "asdfjkl;ghnmxcvbziowerutylqp",
					Logging: logging.Options{
						Level: "info",
					},
				}
				assert.Equal(t, want, got)
			},
		},
		{
			"config file override default",
			"min-width: 12\n",
			nil,
			nil,
			func(t *testing.T, got Config) {
				assert.Equal(t, 12, got.MinWidth)
			},
		},
		{
			"env var override default",
			"",
			nil,
			[]string{"TABLINE_MAX_WIDTH=40"},
			func(t *testing.T, got Config) {
				assert.Equal(t, 40, got.MaxWidth)
			},
		},
		{
			"flag override default",
			"",
			[]string{"--padding", "2", "--no-animation"},
			nil,
			func(t *testing.T, got Config) {
				assert.Equal(t, 2, got.Padding)
				assert.True(t, got.NoAnimation)
			},
		},
		{
			"flag override env var",
			"",
			[]string{"--log-level", "debug"},
			[]string{"TABLINE_LOG_LEVEL=error"},
			func(t *testing.T, got Config) {
				assert.Equal(t, "debug", got.Logging.Level)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.file != "" {
				path := filepath.Join(os.Getenv("HOME"), ".tabline.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tt.file), 0o644))
				defer os.Remove(path)
			}
			for _, env := range tt.envs {
				name, value, _ := strings.Cut(env, "=")
				t.Setenv(name, value)
			}

			got, err := Parse(io.Discard, tt.args)
			require.NoError(t, err)

			tt.want(t, got)
		})
	}
}

func TestConfig_invalidLogLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Parse(io.Discard, []string{"--log-level", "noisy"})
	assert.Error(t, err)
}

func TestConfig_help(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Parse(io.Discard, []string{"-h"})
	assert.ErrorIs(t, err, ff.ErrHelp)

	_, err = Parse(io.Discard, []string{"--help"})
	assert.ErrorIs(t, err, ff.ErrHelp)
}
