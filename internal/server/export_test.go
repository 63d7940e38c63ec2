// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package server

import "google.golang.org/grpc"

// GRPCServer exposes the underlying grpc.Server for service registration checks.
func (s *Server) GRPCServer() *grpc.Server {
	return s.grpc
}
