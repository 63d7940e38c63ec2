// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	kverr "github.com/sigil-dev/kvstore/pkg/errors"
)

// lowDiskSpace is the free space below which serve warns that the final
// snapshot save may not fit.
const lowDiskSpace = 64 * 1024 * 1024

// prepareSnapshotDir creates the directory holding the snapshot file and
// logs how much space is left on it.
func prepareSnapshotDir(snapshotPath string) error {
	dir := filepath.Dir(snapshotPath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return kverr.Wrap(err, kverr.CodeCLISetupFailure, "creating snapshot directory", kverr.FieldPath(dir))
	}

	avail, ok := availableBytes(dir)
	if !ok {
		slog.Debug("unable to check free space", "path", dir)
		return nil
	}
	if avail < lowDiskSpace {
		slog.Warn("low disk space for snapshot", "path", dir, "available", formatBytes(avail))
		return nil
	}
	slog.Debug("snapshot directory ready", "path", dir, "available", formatBytes(avail))
	return nil
}

// formatBytes formats a byte count as a human-readable string.
func formatBytes(b uint64) string {
	const (
		gb = 1024 * 1024 * 1024
		mb = 1024 * 1024
	)
	switch {
	case b >= gb:
		return fmt.Sprintf("%.1f GB", float64(b)/float64(gb))
	case b >= mb:
		return fmt.Sprintf("%.1f MB", float64(b)/float64(mb))
	default:
		return fmt.Sprintf("%d bytes", b)
	}
}
