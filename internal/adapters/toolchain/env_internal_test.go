package toolchain

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEnvironment(t *testing.T) {
	sep := string(os.PathListSeparator)

	tests := []struct {
		name      string
		sysEnv    []string
		overrides map[string]string
		want      []string
	}{
		{
			name:   "inherits system environment",
			sysEnv: []string{"HOME=/home/user", "PATH=/usr/bin"},
			want:   []string{"HOME=/home/user", "PATH=/usr/bin"},
		},
		{
			name:      "override wins",
			sysEnv:    []string{"RUSTFLAGS=-g", "PATH=/usr/bin"},
			overrides: map[string]string{"RUSTFLAGS": "-C target-cpu=native"},
			want:      []string{"PATH=/usr/bin", "RUSTFLAGS=-C target-cpu=native"},
		},
		{
			name:      "PATH is prepended",
			sysEnv:    []string{"PATH=/usr/bin"},
			overrides: map[string]string{"PATH": "/opt/toolchain/bin"},
			want:      []string{"PATH=/opt/toolchain/bin" + sep + "/usr/bin"},
		},
		{
			name:      "PATH without system PATH",
			sysEnv:    []string{"HOME=/root"},
			overrides: map[string]string{"PATH": "/opt/toolchain/bin"},
			want:      []string{"HOME=/root", "PATH=/opt/toolchain/bin"},
		},
		{
			name:   "malformed entries are dropped",
			sysEnv: []string{"NOEQUALS", "A=1"},
			want:   []string{"A=1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveEnvironment(tt.sysEnv, tt.overrides))
		})
	}
}

func TestLookPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits")
	}

	first := t.TempDir()
	second := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(second, "cargo"), []byte("#!/bin/sh\n"), 0o700)) //nolint:gosec // executable
	require.NoError(t, os.WriteFile(filepath.Join(first, "cargo"), []byte("#!/bin/sh\n"), 0o600))

	env := []string{"PATH=" + first + string(os.PathListSeparator) + second}

	got, err := lookPath("cargo", env)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(second, "cargo"), got)

	_, err = lookPath("rustc", env)
	assert.ErrorIs(t, err, exec.ErrNotFound)

	_, err = lookPath("cargo", []string{"HOME=/root"})
	assert.ErrorIs(t, err, exec.ErrNotFound)

	got, err = lookPath(filepath.Join(second, "cargo"), nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(second, "cargo"), got)
}

func TestExitCode(t *testing.T) {
	code, err := exitCode(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	_, err = exitCode(os.ErrClosed)
	assert.ErrorIs(t, err, os.ErrClosed)

	code, err = exitCode(fmt.Errorf("wait: %w", exec.ErrWaitDelay))
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func shellExitError(t *testing.T, script string) error {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}
	err := exec.Command("sh", "-c", script).Run()
	require.Error(t, err)
	return err
}

func TestInterrupted(t *testing.T) {
	tests := []struct {
		name    string
		waitErr func(t *testing.T) error
		want    bool
	}{
		{name: "clean exit", waitErr: func(*testing.T) error { return nil }, want: false},
		{name: "nonzero exit", waitErr: func(t *testing.T) error { return shellExitError(t, "exit 3") }, want: false},
		{name: "killed", waitErr: func(t *testing.T) error { return shellExitError(t, "kill -9 $$") }, want: true},
		{name: "output held open", waitErr: func(*testing.T) error { return exec.ErrWaitDelay }, want: true},
		{name: "cancelled", waitErr: func(*testing.T) error { return context.Canceled }, want: true},
		{name: "deadline", waitErr: func(*testing.T) error { return context.DeadlineExceeded }, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, interrupted(tt.waitErr(t)))
		})
	}
}
