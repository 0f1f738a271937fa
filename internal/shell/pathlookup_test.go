package shell_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jedevc/dwsh/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPath_FindsOnPATH(t *testing.T) {
	dir := t.TempDir()
	binPath := filepath.Join(dir, "mytool")
	require.NoError(t, os.WriteFile(binPath, []byte("#!/bin/sh\n"), 0755))

	resolved, err := shell.LookupPathForTest("mytool", dir)
	require.NoError(t, err)
	assert.Equal(t, binPath, resolved)
}

func TestLookupPath_FirstPATHEntryWins(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(first, "mytool"), []byte(""), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(second, "mytool"), []byte(""), 0755))

	resolved, err := shell.LookupPathForTest("mytool", first+":"+second)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(first, "mytool"), resolved)
}

func TestLookupPath_AbsolutePathUsedVerbatim(t *testing.T) {
	dir := t.TempDir()
	binPath := filepath.Join(dir, "mytool")
	require.NoError(t, os.WriteFile(binPath, []byte(""), 0755))

	resolved, err := shell.LookupPathForTest(binPath, "")
	require.NoError(t, err)
	assert.Equal(t, binPath, resolved)
}

func TestLookupPath_RelativeDotSlashUsedVerbatim(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mytool"), []byte(""), 0755))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	resolved, err := shell.LookupPathForTest("./mytool", "")
	require.NoError(t, err)
	assert.Equal(t, "./mytool", resolved)
}

func TestLookupPath_NotFoundIsCommandNotFound(t *testing.T) {
	_, err := shell.LookupPathForTest("nosuchcmd", "/nonexistent")
	require.Error(t, err)
	assert.IsType(t, &shell.CommandNotFoundError{}, err)
	assert.Equal(t, "command not found: nosuchcmd", err.Error())
}

func TestLookupPath_IdempotentUnderFixedPATHAndFilesystem(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mytool"), []byte(""), 0755))

	first, err := shell.LookupPathForTest("mytool", dir)
	require.NoError(t, err)
	second, err := shell.LookupPathForTest("mytool", dir)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLookupPath_SkipsEmptyPATHEntries(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mytool"), []byte(""), 0755))

	resolved, err := shell.LookupPathForTest("mytool", "::"+dir+"::")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mytool"), resolved)
}
