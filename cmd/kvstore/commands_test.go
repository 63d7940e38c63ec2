// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package main

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kvstorev1 "github.com/sigil-dev/kvstore/internal/gen/proto/kvstore/v1"
	"github.com/sigil-dev/kvstore/internal/server"
	"github.com/sigil-dev/kvstore/internal/store"
	"github.com/sigil-dev/kvstore/pkg/embedding"
	kverr "github.com/sigil-dev/kvstore/pkg/errors"
	"github.com/sigil-dev/kvstore/pkg/health"
)

// startServer runs an in-process kvstore server on a loopback port and
// returns its address. The server is stopped when the test ends.
func startServer(t *testing.T) string {
	t.Helper()

	st, err := store.New(context.Background(), store.Options{
		SnapshotPath:  filepath.Join(t.TempDir(), "kv.snapshot"),
		ServerVersion: "test",
	})
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv, err := server.New(server.Config{ListenAddr: ln.Addr().String()}, st)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	return ln.Addr().String()
}

// freeAddr returns a loopback address nothing is listening on.
func freeAddr(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func TestClientCommands_RoundTrip(t *testing.T) {
	addr := startServer(t)

	out, err := runCmd(t, nil, "put", "--address", addr, "--embedding", "0.5,-1,2", "b", "second chunk")
	require.NoError(t, err)
	assert.Equal(t, "created \"b\"\n", out)

	out, err = runCmd(t, nil, "put", "--address", addr, "a", "first chunk")
	require.NoError(t, err)
	assert.Equal(t, "created \"a\"\n", out)

	out, err = runCmd(t, nil, "put", "--address", addr, "a", "first chunk, revised")
	require.NoError(t, err)
	assert.Equal(t, "overwrote \"a\"\n", out)

	out, err = runCmd(t, nil, "get", "--address", addr, "a")
	require.NoError(t, err)
	assert.Equal(t, "first chunk, revised\n", out)

	out, err = runCmd(t, nil, "list", "--address", addr)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)

	out, err = runCmd(t, nil, "stream", "--address", addr)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.ElementsMatch(t, []string{"a\t0\t", "b\t3\t0.5,-1,2"}, lines)

	out, err = runCmd(t, nil, "health", "--address", addr)
	require.NoError(t, err)
	assert.Equal(t, "kvstore test at "+addr+": 2 keys\n", out)

	out, err = runCmd(t, nil, "delete", "--address", addr, "a")
	require.NoError(t, err)
	assert.Equal(t, "deleted \"a\"\n", out)

	out, err = runCmd(t, nil, "delete", "--address", addr, "a")
	require.NoError(t, err)
	assert.Equal(t, "\"a\" not found\n", out)

	out, err = runCmd(t, nil, "list", "--address", addr)
	require.NoError(t, err)
	assert.Equal(t, "b\n", out)
}

func TestPutCommand_Stdin(t *testing.T) {
	addr := startServer(t)

	_, err := runCmd(t, strings.NewReader("chunk from stdin\n"), "put", "--address", addr, "k", "-")
	require.NoError(t, err)

	out, err := runCmd(t, nil, "get", "--address", addr, "k")
	require.NoError(t, err)
	assert.Equal(t, "chunk from stdin\n", out)
}

func TestPutCommand_EmbeddingFile(t *testing.T) {
	addr := startServer(t)

	path := filepath.Join(t.TempDir(), "vec.bin")
	require.NoError(t, os.WriteFile(path, embedding.Encode([]float32{1, 2, 3, 4}), 0o600))

	_, err := runCmd(t, nil, "put", "--address", addr, "--embedding-file", path, "k", "text")
	require.NoError(t, err)

	out, err := runCmd(t, nil, "stream", "--address", addr)
	require.NoError(t, err)
	assert.Equal(t, "k\t4\t1,2,3,4\n", out)
}

func TestStreamCommand_RawEmbedding(t *testing.T) {
	addr := startServer(t)

	path := filepath.Join(t.TempDir(), "odd.bin")
	require.NoError(t, os.WriteFile(path, []byte{0xde, 0xad, 0xbe}, 0o600))

	_, err := runCmd(t, nil, "put", "--address", addr, "--embedding-file", path, "k", "text")
	require.NoError(t, err)

	out, err := runCmd(t, nil, "stream", "--address", addr)
	require.NoError(t, err)
	assert.Equal(t, "k\t0\tdeadbe\n", out)
}

func TestPutCommand_ConflictingEmbeddingFlags(t *testing.T) {
	_, err := runCmd(t, nil, "put", "--embedding", "1,2", "--embedding-file", "vec.bin", "k", "text")
	require.Error(t, err)
	assert.True(t, kverr.HasCode(err, kverr.CodeCLIInputInvalid))
}

func TestPutCommand_InvalidEmbedding(t *testing.T) {
	_, err := runCmd(t, nil, "put", "--embedding", "1,two", "k", "text")
	require.Error(t, err)
	assert.True(t, kverr.IsInvalidInput(err))
}

func TestPutCommand_RequiresArgs(t *testing.T) {
	_, err := runCmd(t, nil, "put", "only-key")
	require.Error(t, err)
}

func TestGetCommand_MissingKey(t *testing.T) {
	addr := startServer(t)

	_, err := runCmd(t, nil, "get", "--address", addr, "absent")
	require.Error(t, err)
	assert.True(t, kverr.IsNotFound(err))
	assert.Equal(t, "absent", kverr.FieldsOf(err)["key"])
}

func TestHealthCommand_JSON(t *testing.T) {
	addr := startServer(t)

	_, err := runCmd(t, nil, "put", "--address", addr, "k", "v")
	require.NoError(t, err)

	out, err := runCmd(t, nil, "health", "--address", addr, "--json")
	require.NoError(t, err)

	var report health.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, health.Report{ServerName: store.DefaultServerName, ServerVersion: "test", KeyCount: 1}, report)
}

func TestClientCommands_ServerNotRunning(t *testing.T) {
	addr := freeAddr(t)

	for _, args := range [][]string{
		{"get", "k"},
		{"list"},
		{"health"},
		{"stream"},
	} {
		t.Run(args[0], func(t *testing.T) {
			_, err := runCmd(t, nil, append(args, "--address", addr)...)
			require.Error(t, err)
			assert.True(t, kverr.HasCode(err, kverr.CodeCLIServerNotRunning), "got %v", err)
		})
	}
}

func TestServeCommand_PersistsOnShutdown(t *testing.T) {
	dir := t.TempDir()
	snapshotPath := filepath.Join(dir, "data", "kv.snapshot")
	_, port, err := net.SplitHostPort(freeAddr(t))
	require.NoError(t, err)
	addr := net.JoinHostPort("127.0.0.1", port)
	t.Setenv("KVSTORE_SERVER_HOST", "127.0.0.1")
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		root := NewRootCmd()
		root.SetOut(io.Discard)
		root.SetErr(io.Discard)
		root.SetArgs([]string{"serve", "--port", port, "--snapshot", snapshotPath})
		done <- root.ExecuteContext(ctx)
	}()

	c, err := newKVClient(addr)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	require.Eventually(t, func() bool {
		rctx, rcancel := context.WithTimeout(ctx, time.Second)
		defer rcancel()
		_, err := c.Put(rctx, &kvstorev1.PutRequest{Key: "k", TextbookChunk: []byte("persisted")})
		return err == nil
	}, 10*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not exit")
	}

	reloaded, err := store.New(context.Background(), store.Options{SnapshotPath: snapshotPath})
	require.NoError(t, err)
	text, ok := reloaded.GetText("k")
	require.True(t, ok)
	assert.Equal(t, []byte("persisted"), text)
	assert.Equal(t, 1, reloaded.Len())
}

func TestClientCommands_TimeoutDefaults(t *testing.T) {
	stream := newStreamCmd()
	stream.SetContext(context.Background())
	c, ctx, cancel, err := newClientFromFlags(stream)
	require.NoError(t, err)
	defer cancel()
	defer func() { _ = c.Close() }()

	_, hasDeadline := ctx.Deadline()
	assert.False(t, hasDeadline, "stream must not inherit the unary deadline")

	get := newGetCmd()
	get.SetContext(context.Background())
	c, ctx, cancel, err = newClientFromFlags(get)
	require.NoError(t, err)
	defer cancel()
	defer func() { _ = c.Close() }()

	deadline, hasDeadline := ctx.Deadline()
	require.True(t, hasDeadline)
	assert.WithinDuration(t, time.Now().Add(defaultTimeout), deadline, time.Second)
}
