// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

// Package embedding converts between float32 vectors and the packed
// little-endian byte form stored by the key-value service. The store itself
// never interprets embeddings; these helpers exist for clients.
package embedding

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	kverr "github.com/sigil-dev/kvstore/pkg/errors"
)

// ElementSize is the width in bytes of one packed float32.
const ElementSize = 4

// Encode packs v as consecutive little-endian IEEE-754 float32 values.
func Encode(v []float32) []byte {
	out := make([]byte, len(v)*ElementSize)
	for i, f := range v {
		binary.LittleEndian.PutUint32(out[i*ElementSize:], math.Float32bits(f))
	}
	return out
}

// Decode unpacks b. It fails if len(b) is not a multiple of ElementSize.
func Decode(b []byte) ([]float32, error) {
	if len(b)%ElementSize != 0 {
		return nil, kverr.Errorf(kverr.CodeCLIInputInvalid,
			"embedding length %d is not a multiple of %d", len(b), ElementSize)
	}
	out := make([]float32, len(b)/ElementSize)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*ElementSize:]))
	}
	return out, nil
}

// Dimensions returns the number of float32 values packed in b, rounding down.
func Dimensions(b []byte) int {
	return len(b) / ElementSize
}

// Parse reads a comma-separated list such as "0.1, 0.2,-3e-2".
// An empty string yields an empty vector.
func Parse(s string) ([]float32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []float32{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float32, 0, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, kverr.Errorf(kverr.CodeCLIInputInvalid, "embedding element %d: %w", i, err)
		}
		out = append(out, float32(f))
	}
	return out, nil
}

// Format renders v the way Parse accepts it.
func Format(v []float32) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = strconv.FormatFloat(float64(f), 'g', -1, 32)
	}
	return strings.Join(parts, ",")
}
