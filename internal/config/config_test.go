package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T, args []string) {
	t.Helper()

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	os.Args = append([]string{"test"}, args...)
}

func TestParseConfig(t *testing.T) {
	type want struct {
		logLevel string
		format   string
		numbers  []string
	}

	tests := []struct {
		name  string
		env   map[string]string
		flags []string
		want  want
	}{
		{
			name:  "defaults",
			env:   map[string]string{},
			flags: []string{},
			want: want{
				logLevel: "info",
				format:   "text",
			},
		},
		{
			name: "env only",
			env: map[string]string{
				"LOG_LEVEL":     "debug",
				"OUTPUT_FORMAT": "json",
				"CARD_NUMBERS":  "4539677908016808,4532778771091795",
			},
			flags: []string{},
			want: want{
				logLevel: "debug",
				format:   "json",
				numbers:  []string{"4539677908016808", "4532778771091795"},
			},
		},
		{
			name: "flags only",
			env:  map[string]string{},
			flags: []string{
				"-l", "warn",
				"-f", "json",
				"4539677908016808", "79927398713",
			},
			want: want{
				logLevel: "warn",
				format:   "json",
				numbers:  []string{"4539677908016808", "79927398713"},
			},
		},
		{
			name: "env overrides flags",
			env: map[string]string{
				"LOG_LEVEL":     "error",
				"OUTPUT_FORMAT": "text",
				"CARD_NUMBERS":  "18",
			},
			flags: []string{
				"-l", "debug",
				"-f", "json",
				"4539677908016808",
			},
			want: want{
				logLevel: "error",
				format:   "text",
				numbers:  []string{"18"},
			},
		},
		{
			name:  "malformed numbers are kept as is",
			env:   map[string]string{},
			flags: []string{"45x9", "1"},
			want: want{
				logLevel: "info",
				format:   "text",
				numbers:  []string{"45x9", "1"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t, tt.flags)

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Parse()
			require.NoError(t, err)

			assert.Equal(t, tt.want.logLevel, cfg.LogLevel)
			assert.Equal(t, tt.want.format, cfg.Format)
			assert.Equal(t, tt.want.numbers, cfg.Numbers)
		})
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		flags []string
	}{
		{
			name:  "unknown format flag",
			flags: []string{"-f", "xml"},
		},
		{
			name:  "unknown level flag",
			flags: []string{"-l", "verbose"},
		},
		{
			name: "unknown format env",
			env:  map[string]string{"OUTPUT_FORMAT": "yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t, tt.flags)

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Parse()
			require.Error(t, err)
		})
	}
}

func TestParseConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("OUTPUT_FORMAT=json\nCARD_NUMBERS=18,27\n"), 0o600)
	require.NoError(t, err)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// godotenv не перезаписывает заданные переменные, поэтому снимаем их,
	// а t.Setenv восстановит исходное состояние после теста.
	for _, key := range []string{"OUTPUT_FORMAT", "CARD_NUMBERS", "LOG_LEVEL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("LOG_LEVEL", "warn")

	resetFlags(t, []string{"-f", "text"})

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, []string{"18", "27"}, cfg.Numbers)
}
