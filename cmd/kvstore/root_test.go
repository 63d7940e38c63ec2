// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kverr "github.com/sigil-dev/kvstore/pkg/errors"
)

// runCmd executes the root command with args against a fresh global viper
// and an isolated HOME. Stdin is optional.
func runCmd(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())

	root := NewRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(io.Discard)
	if stdin != nil {
		root.SetIn(stdin)
	}
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	out, err := runCmd(t, nil, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "kvstore")
	for _, sub := range []string{"serve", "put", "get", "delete", "list", "stream", "health", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCmd(t, nil, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "kvstore dev (commit: unknown"), out)
}

func TestRootCommand_GlobalFlags(t *testing.T) {
	out, err := runCmd(t, nil, "--verbose", "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "--config")
	assert.Contains(t, out, "--env-file")
	assert.Contains(t, out, "--verbose")
}

func TestServeCommand_Flags(t *testing.T) {
	out, err := runCmd(t, nil, "serve", "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "--port")
	assert.Contains(t, out, "--snapshot")
}

func TestServeCommand_MissingConfigFile(t *testing.T) {
	_, err := runCmd(t, nil, "serve", "--config", "/nonexistent/kvstore.yaml")
	require.Error(t, err)
	assert.True(t, kverr.HasCode(err, kverr.CodeConfigLoadReadFailure))
}

func TestServeCommand_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "kvstore.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("storage:\n  compression: brotli\n"), 0o600))

	_, err := runCmd(t, nil, "serve", "--config", cfgPath, "--snapshot", filepath.Join(dir, "kv.snapshot"))
	require.Error(t, err)
	assert.True(t, kverr.IsInvalidInput(err))
	assert.Contains(t, err.Error(), "storage.compression")
}

func TestServeCommand_InvalidPortFlag(t *testing.T) {
	dir := t.TempDir()

	_, err := runCmd(t, nil, "serve", "--port", "70000", "--snapshot", filepath.Join(dir, "kv.snapshot"))
	require.Error(t, err)
	assert.True(t, kverr.HasCode(err, kverr.CodeConfigValidateInvalidValue))
	assert.Contains(t, err.Error(), "server.port")
}

func TestRootCommand_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("KVSTORE_LOG_FORMAT=yaml\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("KVSTORE_LOG_FORMAT") })

	_, err := runCmd(t, nil, "--env-file", envPath, "serve", "--snapshot", filepath.Join(dir, "kv.snapshot"))
	require.Error(t, err)
	assert.True(t, kverr.HasCode(err, kverr.CodeConfigValidateInvalidValue))
	assert.Contains(t, err.Error(), "log.format")
}

func TestRootCommand_MissingEnvFileIgnored(t *testing.T) {
	out, err := runCmd(t, nil, "--env-file", filepath.Join(t.TempDir(), "absent.env"), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "kvstore")
}

func TestConfigCommand_ShowsEffectiveConfig(t *testing.T) {
	t.Setenv("KVSTORE_PORT", "6000")
	t.Setenv("KVSTORE_STORAGE_COMPRESSION", "lz4")

	out, err := runCmd(t, nil, "config")
	require.NoError(t, err)

	assert.Contains(t, out, "port: 6000")
	assert.Contains(t, out, "compression: lz4")
	assert.Contains(t, out, "grace_period: 1s")
}
