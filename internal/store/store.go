// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

// Package store holds the key-value engine: each key maps to a textbook chunk
// and an embedding, kept in memory and persisted to a single snapshot file.
package store

import (
	"context"
	"iter"

	"github.com/sigil-dev/kvstore/pkg/health"
)

// Entry is the record stored under one key. Both payloads are opaque.
type Entry struct {
	Text      []byte
	Embedding []byte
}

// Store is the set of operations the RPC layer needs from the engine.
//
// Byte slices returned by a Store are shared with its internal state and
// must not be modified.
type Store interface {
	Put(key string, text, embedding []byte) (overwritten bool)
	GetText(key string) (text []byte, found bool)
	Delete(key string) (deleted bool)
	List() []string

	// StreamEmbeddings yields every (key, embedding) pair as of the call.
	// Iteration stops early when ctx is done.
	StreamEmbeddings(ctx context.Context) iter.Seq2[string, []byte]

	Health() health.Report

	PersistToDisk(ctx context.Context) error
	LoadFromDisk(ctx context.Context) error
}
