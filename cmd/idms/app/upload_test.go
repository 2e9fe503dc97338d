package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
	return path
}

func TestValidateUploadFileAccepts(t *testing.T) {
	for _, name := range []string{"bill.pdf", "scan.JPG", "sheet.xlsx"} {
		path := writeTempFile(t, name, 128)
		assert.NoError(t, validateUploadFile(path), name)
	}
}

func TestValidateUploadFileRejectsExtension(t *testing.T) {
	path := writeTempFile(t, "script.exe", 128)
	err := validateUploadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `".exe"`)
}

func TestValidateUploadFileRejectsOversized(t *testing.T) {
	path := writeTempFile(t, "big.pdf", maxUploadSize+1)
	err := validateUploadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit")
}

func TestValidateUploadFileConcatenatesReasons(t *testing.T) {
	path := writeTempFile(t, "big.exe", maxUploadSize+1)
	err := validateUploadFile(path)
	require.Error(t, err)
	// Both failures are reported in one message.
	assert.True(t, strings.Contains(err.Error(), ".exe") && strings.Contains(err.Error(), "limit"))
}

func TestValidateUploadFileMissingFile(t *testing.T) {
	err := validateUploadFile(filepath.Join(t.TempDir(), "gone.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not readable")
}
