/*
File    : sod/command/registry_test.go
Package   : command
*/

package command

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mkExecutable(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require := assert.New(t)
	require.NoError(os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))
}

func TestRegistry_FindsExecutablesOnPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("execute-bit semantics are POSIX-specific")
	}

	dir := t.TempDir()
	mkExecutable(t, dir, "mytool")

	t.Setenv("PATH", dir)

	reg := New()
	assert.True(t, reg.Has("mytool"))
	assert.False(t, reg.Has("doesnotexist"))
}

func TestRegistry_SkipsNonExecutableFiles(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("execute-bit semantics are POSIX-specific")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	assert.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))

	t.Setenv("PATH", dir)

	reg := New()
	assert.False(t, reg.Has("notes.txt"))
}

func TestRegistry_MergesAcrossPathEntries(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("execute-bit semantics are POSIX-specific")
	}

	first := t.TempDir()
	second := t.TempDir()
	mkExecutable(t, first, "shared")
	mkExecutable(t, second, "shared")
	mkExecutable(t, second, "only-in-second")

	t.Setenv("PATH", first+string(os.PathListSeparator)+second)

	reg := New()
	assert.True(t, reg.Has("shared"))
	assert.True(t, reg.Has("only-in-second"))
}

func TestRegistry_EmptyPath(t *testing.T) {
	t.Setenv("PATH", "")
	reg := New()
	assert.False(t, reg.Has("ls"))
}
