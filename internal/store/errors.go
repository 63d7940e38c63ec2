// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package store

import "errors"

// Sentinel errors for snapshot persistence.
// These errors can be checked using errors.Is() for classification.
var (
	// ErrIOFailure indicates the snapshot file could not be read or written
	// (permissions, full disk, missing directory).
	ErrIOFailure = errors.New("snapshot i/o failure")

	// ErrDataCorruption indicates a snapshot file exists but cannot be
	// decoded into a consistent store.
	ErrDataCorruption = errors.New("snapshot data corruption")
)
