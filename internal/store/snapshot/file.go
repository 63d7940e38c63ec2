// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package snapshot

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	snapshotv1 "github.com/sigil-dev/kvstore/internal/gen/proto/snapshot/v1"
	kverr "github.com/sigil-dev/kvstore/pkg/errors"
)

// SaveFile atomically replaces path with an encoding of snap.
//
// The snapshot is written to a temporary file in the same directory, synced,
// and renamed over path, so a reader never observes a partial file. The
// parent directory must already exist.
func SaveFile(path string, snap *snapshotv1.Snapshot, c Compression) (int64, error) {
	if path == "" {
		return 0, kverr.New(kverr.CodeStoreSnapshotPathInvalid, "snapshot path is empty")
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return 0, kverr.Wrap(err, kverr.CodeStoreSnapshotWriteFailure, "creating temp snapshot", kverr.FieldPath(path))
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	_ = tmp.Chmod(0o600)

	buf := bufio.NewWriterSize(tmp, 256*1024)
	n, err := Encode(buf, snap, c)
	if err != nil {
		return n, kverr.With(err, kverr.FieldPath(path))
	}
	if err := buf.Flush(); err != nil {
		return n, kverr.Wrap(err, kverr.CodeStoreSnapshotWriteFailure, "flushing snapshot", kverr.FieldPath(path))
	}
	if err := tmp.Sync(); err != nil {
		return n, kverr.Wrap(err, kverr.CodeStoreSnapshotWriteFailure, "syncing snapshot", kverr.FieldPath(path))
	}
	if err := tmp.Close(); err != nil {
		return n, kverr.Wrap(err, kverr.CodeStoreSnapshotWriteFailure, "closing snapshot", kverr.FieldPath(path))
	}
	if err := os.Rename(tmpName, path); err != nil {
		return n, kverr.Wrap(err, kverr.CodeStoreSnapshotWriteFailure, "replacing snapshot", kverr.FieldPath(path))
	}
	tmpName = ""

	// Best-effort: fsync the directory so the rename is durable on POSIX.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	return n, nil
}

// LoadFile reads the snapshot at path. found is false, with a nil error,
// when no file exists there.
func LoadFile(path string) (snap *snapshotv1.Snapshot, found bool, err error) {
	if path == "" {
		return nil, false, kverr.New(kverr.CodeStoreSnapshotPathInvalid, "snapshot path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, kverr.Wrap(err, kverr.CodeStoreSnapshotReadFailure, "reading snapshot", kverr.FieldPath(path))
	}

	snap, err = decodeBytes(data)
	if err != nil {
		return nil, true, kverr.With(err, kverr.FieldPath(path))
	}
	return snap, true, nil
}
