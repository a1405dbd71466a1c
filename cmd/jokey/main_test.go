package main

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/jokey/internal/application/settings"
)

func parse(t *testing.T, args ...string) cli {
	t.Helper()
	var flags cli
	parser, err := kong.New(&flags, kong.Name("jokey"), kong.Vars{"version": "test"})
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return flags
}

func TestParseFlags(t *testing.T) {
	flags := parse(t, "--config", "/tmp/jokey.yaml", "--log-file", "/tmp/jokey.log", "--log-level", "debug", "--no-alt-screen")

	assert.Equal(t, "/tmp/jokey.yaml", flags.Config)
	assert.Equal(t, "/tmp/jokey.log", flags.LogFile)
	assert.Equal(t, "debug", flags.LogLevel)
	assert.True(t, flags.NoAltScreen)
	assert.Empty(t, programOptions(flags))
}

func TestParseFlags_Defaults(t *testing.T) {
	flags := parse(t)

	assert.Empty(t, flags.Config)
	assert.False(t, flags.NoAltScreen)
	assert.Len(t, programOptions(flags), 1)
}

func TestApplyOverrides(t *testing.T) {
	base := settings.Settings{LogFile: "/var/log/jokey.log", LogLevel: "info"}

	got := applyOverrides(base, cli{})
	assert.Equal(t, base, got)

	got = applyOverrides(base, cli{LogFile: "/tmp/other.log", LogLevel: "warn"})
	assert.Equal(t, "/tmp/other.log", got.LogFile)
	assert.Equal(t, "warn", got.LogLevel)
	assert.Equal(t, "/var/log/jokey.log", base.LogFile, "input is not modified")
}
