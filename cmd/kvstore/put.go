// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	kvstorev1 "github.com/sigil-dev/kvstore/internal/gen/proto/kvstore/v1"
	"github.com/sigil-dev/kvstore/pkg/embedding"
	kverr "github.com/sigil-dev/kvstore/pkg/errors"
)

func newPutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "put KEY TEXT",
		Short: "Store a text chunk and its embedding",
		Long: `Store a text chunk and its embedding under KEY, replacing any existing entry.

TEXT of "-" reads the chunk from stdin. The embedding is given either as
comma-separated floats (--embedding) or as a file of packed little-endian
float32 values (--embedding-file).`,
		Args: cobra.ExactArgs(2),
		RunE: runPut,
	}

	addClientFlags(cmd, defaultTimeout)
	cmd.Flags().String("embedding", "", "comma-separated float32 values")
	cmd.Flags().String("embedding-file", "", "file holding the packed embedding bytes")

	return cmd
}

func runPut(cmd *cobra.Command, args []string) error {
	key, text := args[0], []byte(args[1])
	if args[1] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return kverr.Wrap(err, kverr.CodeCLIInputInvalid, "reading text from stdin")
		}
		text = b
	}

	emb, err := readEmbedding(cmd)
	if err != nil {
		return err
	}

	c, ctx, cancel, err := newClientFromFlags(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	defer func() { _ = c.Close() }()

	resp, err := c.Put(ctx, &kvstorev1.PutRequest{Key: key, TextbookChunk: text, Embedding: emb})
	if err != nil {
		return c.callError(err, "put")
	}

	verb := "created"
	if resp.GetOverwritten() {
		verb = "overwrote"
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %q\n", verb, key)
	return err
}

func readEmbedding(cmd *cobra.Command) ([]byte, error) {
	csv, _ := cmd.Flags().GetString("embedding")
	path, _ := cmd.Flags().GetString("embedding-file")

	switch {
	case csv != "" && path != "":
		return nil, kverr.New(kverr.CodeCLIInputInvalid, "--embedding and --embedding-file are mutually exclusive")
	case path != "":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, kverr.Wrap(err, kverr.CodeCLIInputInvalid, "reading embedding file", kverr.FieldPath(path))
		}
		return b, nil
	default:
		v, err := embedding.Parse(csv)
		if err != nil {
			return nil, err
		}
		return embedding.Encode(v), nil
	}
}
