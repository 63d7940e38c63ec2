// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package store_test

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	snapshotv1 "github.com/sigil-dev/kvstore/internal/gen/proto/snapshot/v1"
	"github.com/sigil-dev/kvstore/internal/store"
	"github.com/sigil-dev/kvstore/internal/store/snapshot"
	kverr "github.com/sigil-dev/kvstore/pkg/errors"
)

func newEngine(t *testing.T) (*store.Engine, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kvstore.snapshot")
	e, err := store.New(context.Background(), store.Options{
		SnapshotPath:  path,
		Compression:   snapshot.CompressionZstd,
		ServerVersion: "1.2.3",
	})
	require.NoError(t, err)
	return e, path
}

func reopen(t *testing.T, path string) *store.Engine {
	t.Helper()
	e, err := store.New(context.Background(), store.Options{SnapshotPath: path})
	require.NoError(t, err)
	return e
}

func collect(ctx context.Context, e *store.Engine) map[string][]byte {
	out := map[string][]byte{}
	for k, emb := range e.StreamEmbeddings(ctx) {
		out[k] = emb
	}
	return out
}

func TestEngine_AbsentKey(t *testing.T) {
	e, _ := newEngine(t)

	text, found := e.GetText("nope")
	assert.False(t, found)
	assert.Empty(t, text)
	assert.False(t, e.Delete("nope"))
	assert.Empty(t, e.List())
}

func TestEngine_PutThenGet(t *testing.T) {
	e, _ := newEngine(t)

	assert.False(t, e.Put("k", []byte("chunk"), []byte{0, 0, 128, 63}))

	text, found := e.GetText("k")
	assert.True(t, found)
	assert.Equal(t, []byte("chunk"), text)
	assert.Equal(t, []string{"k"}, e.List())
}

func TestEngine_ScenarioListAndDelete(t *testing.T) {
	e, _ := newEngine(t)

	e.Put("k1", []byte("val1"), []byte{1, 1, 1, 1})
	e.Put("k2", []byte("val2"), []byte{2, 2, 2, 2})
	e.Put("k3", []byte("val3"), []byte{3, 3, 3, 3})
	assert.ElementsMatch(t, []string{"k1", "k2", "k3"}, e.List())

	assert.True(t, e.Delete("k2"))
	assert.ElementsMatch(t, []string{"k1", "k3"}, e.List())

	_, found := e.GetText("k2")
	assert.False(t, found)
	assert.False(t, e.Delete("k2"), "second delete is a no-op")
}

func TestEngine_ScenarioOverwrite(t *testing.T) {
	e, _ := newEngine(t)

	assert.False(t, e.Put("x", []byte("original"), []byte{1}))
	assert.True(t, e.Put("x", []byte("updated"), []byte{2}))

	text, found := e.GetText("x")
	assert.True(t, found)
	assert.Equal(t, []byte("updated"), text)
	assert.Len(t, e.List(), 1)
	assert.Equal(t, map[string][]byte{"x": {2}}, collect(context.Background(), e))
}

func TestEngine_ScenarioStream(t *testing.T) {
	e, _ := newEngine(t)

	e.Put("a", []byte("A"), []byte{9, 9, 9, 9})
	e.Put("b", []byte("B"), []byte{1, 2, 3, 4})
	e.Put("c", []byte("C"), []byte{5, 6, 7, 8})
	e.Put("a", []byte("A2"), []byte{1, 1, 1, 1})

	assert.Equal(t, map[string][]byte{
		"a": {1, 1, 1, 1},
		"b": {1, 2, 3, 4},
		"c": {5, 6, 7, 8},
	}, collect(context.Background(), e))
}

func TestEngine_EmptyKeyIsOrdinary(t *testing.T) {
	e, _ := newEngine(t)

	assert.False(t, e.Put("", []byte("root"), nil))
	text, found := e.GetText("")
	assert.True(t, found)
	assert.Equal(t, []byte("root"), text)
	assert.Equal(t, []string{""}, e.List())
	assert.True(t, e.Delete(""))
}

func TestEngine_PutCopiesInput(t *testing.T) {
	e, _ := newEngine(t)

	text := []byte("mutable")
	emb := []byte{1, 2, 3, 4}
	e.Put("k", text, emb)
	text[0] = 'X'
	emb[0] = 99

	got, _ := e.GetText("k")
	assert.Equal(t, []byte("mutable"), got)
	assert.Equal(t, []byte{1, 2, 3, 4}, collect(context.Background(), e)["k"])
}

func TestEngine_HealthMatchesList(t *testing.T) {
	e, _ := newEngine(t)
	for i := range 5 {
		e.Put(fmt.Sprintf("k%d", i), []byte("t"), []byte("e"))
	}
	e.Delete("k3")

	h := e.Health()
	assert.Equal(t, store.DefaultServerName, h.ServerName)
	assert.Equal(t, "1.2.3", h.ServerVersion)
	assert.Equal(t, int64(len(e.List())), h.KeyCount)
	assert.Equal(t, int64(4), h.KeyCount)
}

func TestEngine_StreamIsPointInTime(t *testing.T) {
	e, _ := newEngine(t)
	e.Put("a", []byte("A"), []byte{1})
	e.Put("b", []byte("B"), []byte{2})

	seq := e.StreamEmbeddings(context.Background())
	e.Put("c", []byte("C"), []byte{3})
	e.Delete("a")
	e.Put("b", []byte("B2"), []byte{22})

	got := map[string][]byte{}
	for k, emb := range seq {
		got[k] = emb
	}
	assert.Equal(t, map[string][]byte{"a": {1}, "b": {2}}, got)
}

func TestEngine_StreamStopsOnCancel(t *testing.T) {
	e, _ := newEngine(t)
	for i := range 10 {
		e.Put(fmt.Sprintf("k%d", i), nil, []byte{byte(i)})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	n := 0
	for range e.StreamEmbeddings(ctx) {
		n++
		if n == 3 {
			cancel()
		}
	}
	assert.Equal(t, 3, n)
}

func TestEngine_StreamConsumerCanBreak(t *testing.T) {
	e, _ := newEngine(t)
	e.Put("a", nil, nil)
	e.Put("b", nil, nil)

	n := 0
	for range e.StreamEmbeddings(context.Background()) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestEngine_PersistLoadRoundTrip(t *testing.T) {
	e, path := newEngine(t)
	e.Put("k1", []byte("val1"), []byte{1, 1, 1, 1})
	e.Put("k2", []byte(""), []byte{})
	e.Put("", []byte("empty key"), []byte{7})
	require.NoError(t, e.PersistToDisk(context.Background()))

	loaded := reopen(t, path)
	assert.ElementsMatch(t, e.List(), loaded.List())
	for _, k := range e.List() {
		want, _ := e.GetText(k)
		got, found := loaded.GetText(k)
		assert.True(t, found)
		assert.Equal(t, want, got, "key %q", k)
	}
	assert.Equal(t, collect(context.Background(), e), collect(context.Background(), loaded))
}

func TestEngine_PersistLoadEmptyStore(t *testing.T) {
	e, path := newEngine(t)
	require.NoError(t, e.PersistToDisk(context.Background()))

	_, err := os.Stat(path)
	require.NoError(t, err)

	loaded := reopen(t, path)
	assert.Empty(t, loaded.List())
	assert.Equal(t, int64(0), loaded.Health().KeyCount)
}

func TestEngine_PersistOverwritesPrevious(t *testing.T) {
	e, path := newEngine(t)
	e.Put("old", []byte("o"), []byte{1})
	require.NoError(t, e.PersistToDisk(context.Background()))
	e.Delete("old")
	e.Put("new", []byte("n"), []byte{2})
	require.NoError(t, e.PersistToDisk(context.Background()))

	assert.Equal(t, []string{"new"}, reopen(t, path).List())
}

func TestEngine_LoadReplacesContents(t *testing.T) {
	e, _ := newEngine(t)
	e.Put("saved", []byte("s"), []byte{1})
	require.NoError(t, e.PersistToDisk(context.Background()))

	e.Put("unsaved", []byte("u"), []byte{2})
	require.NoError(t, e.LoadFromDisk(context.Background()))
	assert.Equal(t, []string{"saved"}, e.List())
}

func TestEngine_NewRequiresPath(t *testing.T) {
	_, err := store.New(context.Background(), store.Options{})
	require.Error(t, err)
	assert.True(t, kverr.IsInvalidInput(err))
}

func TestEngine_CorruptSnapshotFailsConstruction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kvstore.snapshot")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a snapshot"), 0o600))

	_, err := store.New(context.Background(), store.Options{SnapshotPath: path})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrDataCorruption)
	assert.True(t, kverr.IsDataCorruption(err))
}

func TestEngine_PersistIsOrderedAtCapture(t *testing.T) {
	ctx := context.Background()
	e, path := newEngine(t)

	e.Put("before", []byte("b"), []byte{1})
	require.NoError(t, e.PersistToDisk(ctx))
	e.Put("after", []byte("a"), []byte{2})

	reloaded, err := store.New(ctx, store.Options{SnapshotPath: path})
	require.NoError(t, err)
	assert.Equal(t, []string{"before"}, reloaded.List())
}

func TestEngine_OversizedSnapshotLengthIsCorrupt(t *testing.T) {
	data := make([]byte, 21)
	copy(data, "KVSN")
	data[4] = 1
	data[5] = byte(snapshot.CompressionLZ4)
	binary.LittleEndian.PutUint64(data[12:20], 1<<36)
	binary.LittleEndian.PutUint32(data[8:12], crc32.ChecksumIEEE(data[12:]))

	path := filepath.Join(t.TempDir(), "kvstore.snapshot")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	_, err := store.New(context.Background(), store.Options{SnapshotPath: path})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrDataCorruption)
	assert.True(t, kverr.HasCode(err, kverr.CodeStoreSnapshotCorrupt))
}

func TestEngine_MismatchedKeySetsAreCorrupt(t *testing.T) {
	tests := []struct {
		name string
		snap *snapshotv1.Snapshot
	}{
		{
			name: "missing embedding",
			snap: &snapshotv1.Snapshot{
				TextbookChunks: map[string][]byte{"a": []byte("A"), "b": []byte("B")},
				Embeddings:     map[string][]byte{"a": {1}},
			},
		},
		{
			name: "disjoint keys",
			snap: &snapshotv1.Snapshot{
				TextbookChunks: map[string][]byte{"a": []byte("A")},
				Embeddings:     map[string][]byte{"b": {1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "kvstore.snapshot")
			_, err := snapshot.SaveFile(path, tt.snap, snapshot.CompressionNone)
			require.NoError(t, err)

			_, err = store.New(context.Background(), store.Options{SnapshotPath: path})
			require.Error(t, err)
			assert.ErrorIs(t, err, store.ErrDataCorruption)
			assert.True(t, kverr.IsDataCorruption(err))
		})
	}
}

func TestEngine_PersistToMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	e, err := store.New(context.Background(), store.Options{
		SnapshotPath: filepath.Join(dir, "gone", "kvstore.snapshot"),
	})
	require.NoError(t, err)
	e.Put("k", []byte("v"), []byte{1})

	err = e.PersistToDisk(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrIOFailure)
	assert.True(t, kverr.IsIOFailure(err))
}

func TestEngine_PersistHonoursCancelledContext(t *testing.T) {
	e, path := newEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, e.PersistToDisk(ctx), context.Canceled)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestEngine_ConcurrentAccess(t *testing.T) {
	e, path := newEngine(t)

	const writers, perWriter = 8, 200
	var g errgroup.Group
	for w := range writers {
		g.Go(func() error {
			for i := range perWriter {
				k := fmt.Sprintf("w%d-%d", w, i)
				e.Put(k, []byte(k), []byte{byte(w), byte(i)})
				if i%3 == 0 {
					e.Delete(k)
				}
			}
			return nil
		})
	}

	var readers sync.WaitGroup
	stop := make(chan struct{})
	for range 4 {
		readers.Add(1)
		go func() {
			defer readers.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				for _, k := range e.List() {
					e.GetText(k)
				}
				for range e.StreamEmbeddings(context.Background()) {
				}
				_ = e.Health()
			}
		}()
	}

	g.Go(func() error { return e.PersistToDisk(context.Background()) })
	require.NoError(t, g.Wait())
	close(stop)
	readers.Wait()

	wantPerWriter := perWriter - (perWriter+2)/3
	assert.Len(t, e.List(), writers*wantPerWriter)
	assert.Equal(t, int64(writers*wantPerWriter), e.Health().KeyCount)

	// Every stream entry must agree with GetText on presence.
	for k := range e.StreamEmbeddings(context.Background()) {
		_, found := e.GetText(k)
		assert.True(t, found, "streamed key %q must be retrievable", k)
	}

	require.NoError(t, e.PersistToDisk(context.Background()))
	assert.ElementsMatch(t, e.List(), reopen(t, path).List())
}
