// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	kvstorev1 "github.com/sigil-dev/kvstore/internal/gen/proto/kvstore/v1"
	"github.com/sigil-dev/kvstore/pkg/embedding"
)

func newStreamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Stream every stored embedding",
		Long: `Stream every stored embedding as "KEY<TAB>DIMS<TAB>VALUES".

Embeddings whose length is not a multiple of four bytes are printed as hex.
The stream has no deadline unless --timeout is given.`,
		Args: cobra.NoArgs,
		RunE: runStream,
	}
	addClientFlags(cmd, 0)
	return cmd
}

func runStream(cmd *cobra.Command, _ []string) error {
	c, ctx, cancel, err := newClientFromFlags(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	defer func() { _ = c.Close() }()

	stream, err := c.StreamEmbeddings(ctx, &kvstorev1.StreamEmbeddingsRequest{})
	if err != nil {
		return c.callError(err, "stream")
	}

	out := cmd.OutOrStdout()
	for {
		entry, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return c.callError(err, "stream")
		}

		raw := entry.GetEmbedding()
		values := fmt.Sprintf("%x", raw)
		if v, err := embedding.Decode(raw); err == nil {
			values = embedding.Format(v)
		}
		if _, err := fmt.Fprintf(out, "%s\t%d\t%s\n", entry.GetKey(), embedding.Dimensions(raw), values); err != nil {
			return err
		}
	}
}
