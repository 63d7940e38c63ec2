// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kverr "github.com/sigil-dev/kvstore/pkg/errors"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 bytes"},
		{1023, "1023 bytes"},
		{5 * 1024 * 1024, "5.0 MB"},
		{3 * 1024 * 1024 * 1024 / 2, "1.5 GB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatBytes(tt.in))
	}
}

func TestPrepareSnapshotDir_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, prepareSnapshotDir(filepath.Join(dir, "kv.snapshot")))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestPrepareSnapshotDir_ParentIsFile(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0o600))

	err := prepareSnapshotDir(filepath.Join(parent, "sub", "kv.snapshot"))
	require.Error(t, err)
	assert.True(t, kverr.HasCode(err, kverr.CodeCLISetupFailure))
}
