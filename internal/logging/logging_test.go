package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldiagram/internal/logging"
)

func TestNew(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	l, err := logging.New(buff, "warn")
	require.NoError(t, err)

	l.Info().Msg("hidden")
	require.Equal(t, 0, buff.Len())

	l.Warn().Msg("shown")
	require.Contains(t, buff.String(), "shown")
	require.Contains(t, buff.String(), `"time"`)
}

func TestParseLevel(t *testing.T) {
	lvl, err := logging.ParseLevel("")
	require.NoError(t, err)
	require.Equal(t, zerolog.InfoLevel, lvl)

	lvl, err = logging.ParseLevel("DEBUG")
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, lvl)

	_, err = logging.ParseLevel("loud")
	require.Error(t, err)

	_, err = logging.New(&bytes.Buffer{}, "loud")
	require.Error(t, err)
}

func TestConsole(t *testing.T) {
	buff := &bytes.Buffer{}
	l, err := logging.Console(buff, "debug")
	require.NoError(t, err)
	l.Debug().Str("cell", "7").Msg("edge re-homed")
	require.Contains(t, buff.String(), "edge re-homed")
	require.Contains(t, buff.String(), "cell=7")
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diagram.log")
	l, f, err := logging.Open(path, "info")
	require.NoError(t, err)
	l.Info().Msg("Test")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "Test")

	_, _, err = logging.Open(filepath.Join(t.TempDir(), "missing", "x.log"), "info")
	require.Error(t, err)
}

func TestNop(t *testing.T) {
	require.Equal(t, zerolog.Disabled, logging.Nop().GetLevel())
}
