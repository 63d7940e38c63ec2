// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package store

import (
	"bytes"
	"context"
	"fmt"
	"iter"
	"log/slog"
	"maps"
	"slices"
	"sync"

	snapshotv1 "github.com/sigil-dev/kvstore/internal/gen/proto/snapshot/v1"
	"github.com/sigil-dev/kvstore/internal/store/snapshot"
	kverr "github.com/sigil-dev/kvstore/pkg/errors"
	"github.com/sigil-dev/kvstore/pkg/health"
)

// Engine is the in-memory Store backed by a snapshot file.
//
// Writers (Put, Delete, LoadFromDisk) hold mu exclusively; readers share it.
// Stored slices are never modified after insertion, so readers may hand them
// out after releasing the lock.
//
// PersistToDisk captures the table under the read lock and writes the file
// after releasing it, so a save is ordered at its capture: writes that start
// after the capture are not in the file.
type Engine struct {
	opts Options

	mu      sync.RWMutex
	entries map[string]Entry

	// persistMu serializes snapshot file access (PersistToDisk and
	// LoadFromDisk) so saves land in call order.
	persistMu sync.Mutex
}

var _ Store = (*Engine)(nil)

// New constructs an Engine and loads its snapshot. A missing snapshot file
// yields an empty store; an unreadable or corrupt one is an error.
func New(ctx context.Context, opts Options) (*Engine, error) {
	if opts.SnapshotPath == "" {
		return nil, kverr.New(kverr.CodeStoreSnapshotPathInvalid, "snapshot path is required")
	}
	if opts.ServerName == "" {
		opts.ServerName = DefaultServerName
	}

	e := &Engine{
		opts:    opts,
		entries: make(map[string]Entry),
	}
	if err := e.LoadFromDisk(ctx); err != nil {
		return nil, err
	}
	return e, nil
}

// Put stores text and embedding under key, replacing any previous entry.
// It reports whether key was present before the call.
func (e *Engine) Put(key string, text, embedding []byte) bool {
	entry := Entry{
		Text:      bytes.Clone(nonNil(text)),
		Embedding: bytes.Clone(nonNil(embedding)),
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	_, overwritten := e.entries[key]
	e.entries[key] = entry
	return overwritten
}

// GetText returns the textbook chunk stored under key.
func (e *Engine) GetText(key string) ([]byte, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	entry, ok := e.entries[key]
	if !ok {
		return nil, false
	}
	return entry.Text, true
}

// Delete removes key and reports whether it was present.
func (e *Engine) Delete(key string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.entries[key]; !ok {
		return false
	}
	delete(e.entries, key)
	return true
}

// List returns every key. The order is unspecified.
func (e *Engine) List() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.AppendSeq(make([]string, 0, len(e.entries)), maps.Keys(e.entries))
}

// StreamEmbeddings captures the (key, embedding) pairs present when it is
// called and yields them one by one. Writes made during iteration are not
// observed. Iteration ends early when ctx is done or the consumer stops.
func (e *Engine) StreamEmbeddings(ctx context.Context) iter.Seq2[string, []byte] {
	e.mu.RLock()
	keys := make([]string, 0, len(e.entries))
	embeddings := make([][]byte, 0, len(e.entries))
	for k, entry := range e.entries {
		keys = append(keys, k)
		embeddings = append(embeddings, entry.Embedding)
	}
	e.mu.RUnlock()

	return func(yield func(string, []byte) bool) {
		for i, k := range keys {
			if ctx.Err() != nil {
				return
			}
			if !yield(k, embeddings[i]) {
				return
			}
		}
	}
}

// Health reports the engine identity and its current key count.
func (e *Engine) Health() health.Report {
	return health.Report{
		ServerName:    e.opts.ServerName,
		ServerVersion: e.opts.ServerVersion,
		KeyCount:      int64(e.Len()),
	}
}

// Len returns the number of stored keys.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.entries)
}

// PersistToDisk writes the whole store to the snapshot file, replacing the
// previous one. The written image is a consistent view: no write is half
// applied in it.
func (e *Engine) PersistToDisk(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.persistMu.Lock()
	defer e.persistMu.Unlock()

	snap := e.capture()
	n, err := snapshot.SaveFile(e.opts.SnapshotPath, snap, e.opts.Compression)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	slog.Info("snapshot saved",
		slog.String("path", e.opts.SnapshotPath),
		slog.Int("keys", len(snap.GetTextbookChunks())),
		slog.Int64("bytes", n),
		slog.String("compression", e.opts.Compression.String()),
	)
	return nil
}

// LoadFromDisk replaces the store contents with the snapshot file. When the
// file does not exist the store is left unchanged.
func (e *Engine) LoadFromDisk(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.persistMu.Lock()
	defer e.persistMu.Unlock()

	snap, found, err := snapshot.LoadFile(e.opts.SnapshotPath)
	switch {
	case err != nil && kverr.IsDataCorruption(err):
		return fmt.Errorf("%w: %w", ErrDataCorruption, err)
	case err != nil:
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	case !found:
		slog.Info("no snapshot found, starting empty", slog.String("path", e.opts.SnapshotPath))
		return nil
	}

	entries, err := restore(snap)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDataCorruption, kverr.With(err, kverr.FieldPath(e.opts.SnapshotPath)))
	}

	e.mu.Lock()
	e.entries = entries
	e.mu.Unlock()

	slog.Info("snapshot loaded",
		slog.String("path", e.opts.SnapshotPath),
		slog.Int("keys", len(entries)),
	)
	return nil
}

// capture copies the entry table into a snapshot message under the read lock.
func (e *Engine) capture() *snapshotv1.Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	snap := &snapshotv1.Snapshot{
		TextbookChunks: make(map[string][]byte, len(e.entries)),
		Embeddings:     make(map[string][]byte, len(e.entries)),
	}
	for k, entry := range e.entries {
		snap.TextbookChunks[k] = entry.Text
		snap.Embeddings[k] = entry.Embedding
	}
	return snap
}

// restore rebuilds the entry table from a decoded snapshot. Both maps must
// hold exactly the same keys.
func restore(snap *snapshotv1.Snapshot) (map[string]Entry, error) {
	texts := snap.GetTextbookChunks()
	embeddings := snap.GetEmbeddings()
	if len(texts) != len(embeddings) {
		return nil, kverr.Errorf(kverr.CodeStoreSnapshotCorrupt,
			"snapshot has %d textbook chunks but %d embeddings", len(texts), len(embeddings))
	}

	entries := make(map[string]Entry, len(texts))
	for k, text := range texts {
		emb, ok := embeddings[k]
		if !ok {
			return nil, kverr.New(kverr.CodeStoreSnapshotCorrupt,
				"snapshot key has a textbook chunk but no embedding", kverr.FieldKey(k))
		}
		entries[k] = Entry{Text: nonNil(text), Embedding: nonNil(emb)}
	}
	return entries, nil
}

func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
