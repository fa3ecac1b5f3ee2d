package log

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLog_DisabledUntilInit(t *testing.T) {
	Info(CatStore, "dropped")
	require.Nil(t, Subscribe(context.Background()))
}

func TestInitWriter_FormatsEntries(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	defer cleanup()

	Info(CatStore, "animal added", "name", "Grey", "species", "Wolf")
	Warn(CatConfig, "odd fields", "orphan")
	ErrorErr(CatRoster, "load failed", errors.New("boom"))

	out := buf.String()
	require.Contains(t, out, "[INFO] [store] animal added name=Grey species=Wolf\n")
	require.Contains(t, out, "[WARN] [config] odd fields orphan=<missing>\n")
	require.Contains(t, out, "[ERROR] [roster] load failed error=boom\n")
}

func TestSetMinLevel(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	defer cleanup()

	SetMinLevel(LevelWarn)
	Debug(CatCLI, "hidden")
	Info(CatCLI, "hidden")
	Error(CatCLI, "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "[ERROR] [cli] shown")

	buf.Reset()
	SetEnabled(false)
	Error(CatCLI, "muted")
	require.Empty(t, buf.String())
}

func TestSubscribe_ReceivesEntries(t *testing.T) {
	cleanup := InitWriter(&bytes.Buffer{})
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := Subscribe(ctx)
	require.NotNil(t, ch)

	Debug(CatRegistry, "kind registered", "kind", "Wolf")

	select {
	case event := <-ch:
		require.Contains(t, event.Payload, "[DEBUG] [registry] kind registered kind=Wolf")
	case <-time.After(time.Second):
		require.Fail(t, "timeout waiting for log event")
	}
}

func TestInit_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zoo-debug.log")
	cleanup, err := Init(path)
	require.NoError(t, err)

	Info(CatCache, "hit", "key", "wolf")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[INFO] [cache] hit key=wolf")
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, LevelInfo, ParseLevel(" INFO "))
	require.Equal(t, LevelWarn, ParseLevel("warning"))
	require.Equal(t, LevelError, ParseLevel("error"))
	require.Equal(t, LevelDebug, ParseLevel("verbose"))
	require.Equal(t, "WARN", LevelWarn.String())
}
