package logger

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"github.com/stretchr/testify/require"
)

func TestNew_DisabledByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	l, cleanup, err := New(false, dir)
	require.NoError(t, err)
	defer cleanup()

	l.Info("dropped")
	assert.Equal(t, io.Discard, log.Writer())

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "log dir must not be created when debug is off")
}

func TestNew_EnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	l, cleanup, err := New(true, dir)
	require.NoError(t, err)

	l.Named("test").Debug("ball dropped")
	log.Println("stdlib line")
	assert.NotEqual(t, os.Stdout, log.Writer())
	assert.NotEqual(t, os.Stderr, log.Writer())
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"ball dropped"`)
	assert.Contains(t, string(data), `"logger":"test"`)
	assert.Contains(t, string(data), "stdlib line")
}

func backups(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "plinko-*.log"))
	require.NoError(t, err)
	return matches
}

func TestNew_OversizedFileRolledOnFirstWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	require.NoError(t, os.WriteFile(path, make([]byte, MaxLogSizeMB*megabyte+1), 0644))

	_, cleanup, err := New(true, dir)
	require.NoError(t, err)
	defer cleanup()

	rolled := backups(t, dir)
	require.Len(t, rolled, 1, "expected the oversized log to be moved aside")
	info, err := os.Stat(rolled[0])
	require.NoError(t, err)
	assert.EqualValues(t, MaxLogSizeMB*megabyte+1, info.Size())

	info, err = os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(megabyte))
}

func TestFileLogger_RollsOverDuringSession(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	l, closeFile := newFileLogger(path, 1)
	defer closeFile()

	pad := strings.Repeat("a", 300*1024)
	for i := 0; i < 8; i++ {
		l.Info("ball settled", zap.Int("i", i), zap.String("pad", pad))
	}

	assert.NotEmpty(t, backups(t, dir), "expected a rollover once the file passed the cap")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.LessOrEqual(t, info.Size(), int64(megabyte))
}

func TestNew_SmallFileNotRotated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0644))

	_, cleanup, err := New(true, dir)
	require.NoError(t, err)
	defer cleanup()

	assert.Empty(t, backups(t, dir))
}

const megabyte = 1024 * 1024
