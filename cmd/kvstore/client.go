// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	kvstorev1 "github.com/sigil-dev/kvstore/internal/gen/proto/kvstore/v1"
	kverr "github.com/sigil-dev/kvstore/pkg/errors"
)

const (
	defaultAddress = "localhost:50051"
	defaultTimeout = 5 * time.Second
)

// kvClient provides gRPC access to a running kvstore server.
type kvClient struct {
	addr string
	conn *grpc.ClientConn
	kvstorev1.KeyValueStoreClient
}

// addClientFlags registers the flags shared by every client command. A zero
// timeout means no deadline.
func addClientFlags(cmd *cobra.Command, timeout time.Duration) {
	cmd.Flags().String("address", defaultAddress, "kvstore server address")
	cmd.Flags().Duration("timeout", timeout, "request deadline (0 for none)")
}

// newClientFromFlags dials the server named by --address and returns a
// context bounded by --timeout, if set. Callers must call the returned
// cancel func and Close the client.
func newClientFromFlags(cmd *cobra.Command) (*kvClient, context.Context, context.CancelFunc, error) {
	addr, _ := cmd.Flags().GetString("address")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	c, err := newKVClient(addr)
	if err != nil {
		return nil, nil, nil, err
	}

	if timeout <= 0 {
		ctx, cancel := context.WithCancel(cmd.Context())
		return c, ctx, cancel, nil
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	return c, ctx, cancel, nil
}

// newKVClient creates a client targeting the given host:port address. The
// connection is established lazily on the first call.
func newKVClient(addr string) (*kvClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, kverr.Wrap(err, kverr.CodeCLISetupFailure, "creating client", kverr.Field("addr", addr))
	}
	return &kvClient{
		addr:                addr,
		conn:                conn,
		KeyValueStoreClient: kvstorev1.NewKeyValueStoreClient(conn),
	}, nil
}

func (c *kvClient) Close() error {
	return c.conn.Close()
}

// callError classifies an RPC failure. An unreachable server maps to
// CodeCLIServerNotRunning.
func (c *kvClient) callError(err error, op string) error {
	if status.Code(err) == codes.Unavailable {
		return kverr.Wrap(err, kverr.CodeCLIServerNotRunning, "kvstore server is not running", kverr.Field("addr", c.addr))
	}
	return kverr.Wrapf(err, kverr.CodeCLIRequestFailure, "%s request failed", op)
}
