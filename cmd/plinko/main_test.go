package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/plinko/logger"
)

func TestRecoverCrashFlushesLog(t *testing.T) {
	dir := t.TempDir()
	log, closeLog, err := logger.New(true, dir)
	require.NoError(t, err)

	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())

	var stderr bytes.Buffer
	code := func() (code int) {
		defer closeLog()
		defer recoverCrash(&code, screen, log, &stderr)
		panic("frame loop exploded")
	}()

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "PLINKO CRASHED: frame loop exploded")
	assert.Contains(t, stderr.String(), "Stack Trace:")

	data, err := os.ReadFile(filepath.Join(dir, logger.FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"crashed"`)
	assert.Contains(t, string(data), "frame loop exploded")
}

func TestRecoverCrashWithoutPanic(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()

	var stderr bytes.Buffer
	code := func() (code int) {
		defer recoverCrash(&code, screen, nil, &stderr)
		return 0
	}()

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String())
}
