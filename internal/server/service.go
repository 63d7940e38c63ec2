// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package server

import (
	"context"

	"google.golang.org/grpc"

	kvstorev1 "github.com/sigil-dev/kvstore/internal/gen/proto/kvstore/v1"
	"github.com/sigil-dev/kvstore/internal/store"
	kverr "github.com/sigil-dev/kvstore/pkg/errors"
)

// Service implements kvstorev1.KeyValueStoreServer on top of a store.Store.
// Each RPC maps to exactly one store operation.
type Service struct {
	kvstorev1.UnimplementedKeyValueStoreServer

	store store.Store
}

var _ kvstorev1.KeyValueStoreServer = (*Service)(nil)

// NewService returns a Service backed by st.
func NewService(st store.Store) (*Service, error) {
	if st == nil {
		return nil, kverr.New(kverr.CodeServerConfigInvalid, "store is required")
	}
	return &Service{store: st}, nil
}

func (s *Service) Put(_ context.Context, req *kvstorev1.PutRequest) (*kvstorev1.PutResponse, error) {
	overwritten := s.store.Put(req.GetKey(), req.GetTextbookChunk(), req.GetEmbedding())
	return &kvstorev1.PutResponse{Overwritten: overwritten}, nil
}

func (s *Service) GetText(_ context.Context, req *kvstorev1.GetTextRequest) (*kvstorev1.GetTextResponse, error) {
	text, found := s.store.GetText(req.GetKey())
	return &kvstorev1.GetTextResponse{Found: found, TextbookChunk: text}, nil
}

func (s *Service) Delete(_ context.Context, req *kvstorev1.DeleteRequest) (*kvstorev1.DeleteResponse, error) {
	return &kvstorev1.DeleteResponse{Deleted: s.store.Delete(req.GetKey())}, nil
}

func (s *Service) List(_ context.Context, _ *kvstorev1.ListRequest) (*kvstorev1.ListResponse, error) {
	return &kvstorev1.ListResponse{Keys: s.store.List()}, nil
}

// StreamEmbeddings sends one EmbeddingEntry per stored key. A client that
// disconnects ends the stream; entries already sent stay sent.
func (s *Service) StreamEmbeddings(_ *kvstorev1.StreamEmbeddingsRequest, stream grpc.ServerStreamingServer[kvstorev1.EmbeddingEntry]) error {
	ctx := stream.Context()
	for key, embedding := range s.store.StreamEmbeddings(ctx) {
		if err := stream.Send(&kvstorev1.EmbeddingEntry{Key: key, Embedding: embedding}); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return kverr.Wrap(err, kverr.CodeStoreStreamCancelled, "embedding stream aborted")
	}
	return nil
}

func (s *Service) Health(_ context.Context, _ *kvstorev1.HealthRequest) (*kvstorev1.HealthResponse, error) {
	h := s.store.Health()
	return &kvstorev1.HealthResponse{
		ServerName:    h.ServerName,
		ServerVersion: h.ServerVersion,
		KeyCount:      h.KeyCount,
	}, nil
}
