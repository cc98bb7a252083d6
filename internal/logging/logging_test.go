package logging

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLog(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetPrefix("")
		log.SetFlags(log.LstdFlags)
	})
}

func TestSetupLoggingToFile(t *testing.T) {
	restoreLog(t)
	path := filepath.Join(t.TempDir(), "debug.log")

	cleanup, err := SetupLogging(path)
	require.NoError(t, err)
	log.Printf("selected %q", "AUS")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "popchart ")
	assert.Contains(t, string(data), `selected "AUS"`)
	assert.Contains(t, string(data), "logging_test.go")
}

func TestSetupLoggingDisabled(t *testing.T) {
	restoreLog(t)
	cleanup, err := SetupLogging("")
	require.NoError(t, err)
	cleanup()
	log.Print("dropped")
}

func TestSetupLoggingBadPath(t *testing.T) {
	restoreLog(t)
	_, err := SetupLogging(filepath.Join(t.TempDir(), "missing", "debug.log"))
	assert.Error(t, err)
}
