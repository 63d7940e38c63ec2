// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package store

import "github.com/sigil-dev/kvstore/internal/store/snapshot"

// DefaultServerName is reported by Health when Options.ServerName is empty.
const DefaultServerName = "kvstore"

// Options controls where an Engine persists and how it identifies itself.
type Options struct {
	SnapshotPath  string               // Snapshot file; required.
	Compression   snapshot.Compression // Payload codec for saves; loads accept any.
	ServerName    string
	ServerVersion string
}
