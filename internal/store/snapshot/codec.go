// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package snapshot

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	kverr "github.com/sigil-dev/kvstore/pkg/errors"
)

// Compression identifies the codec applied to a snapshot payload.
// The numeric value is written into the file header.
type Compression uint8

const (
	CompressionNone Compression = 0
	CompressionLZ4  Compression = 1
	CompressionZstd Compression = 2
)

// Codec compresses and decompresses whole snapshot payloads.
type Codec interface {
	Name() string
	// Compress returns the encoded payload, or ok=false when the codec could
	// not shrink src and the payload should be stored uncompressed.
	Compress(src []byte) (dst []byte, ok bool, err error)
	// Decompress expands src into a buffer of exactly size bytes. It must
	// reject a size that src cannot produce before allocating for it.
	Decompress(src []byte, size int) ([]byte, error)
}

var (
	codecs   = map[Compression]Codec{}
	codecsMu sync.RWMutex
)

// RegisterCodec makes a codec available under the given header value.
// This function is goroutine-safe.
func RegisterCodec(c Compression, codec Codec) {
	codecsMu.Lock()
	defer codecsMu.Unlock()
	codecs[c] = codec
}

func init() {
	RegisterCodec(CompressionNone, noneCodec{})
	RegisterCodec(CompressionLZ4, lz4Codec{})
	RegisterCodec(CompressionZstd, zstdCodec{})
}

func lookupCodec(c Compression) (Codec, bool) {
	codecsMu.RLock()
	defer codecsMu.RUnlock()
	codec, ok := codecs[c]
	return codec, ok
}

// ParseCompression resolves a configured codec name such as "zstd".
// An empty name selects zstd.
func ParseCompression(name string) (Compression, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return CompressionZstd, nil
	}

	codecsMu.RLock()
	defer codecsMu.RUnlock()
	names := make([]string, 0, len(codecs))
	for c, codec := range codecs {
		if codec.Name() == name {
			return c, nil
		}
		names = append(names, codec.Name())
	}
	sort.Strings(names)
	return 0, kverr.Errorf(kverr.CodeStoreSnapshotCodecInvalid,
		"unknown snapshot compression %q (want one of %s)", name, strings.Join(names, ", "))
}

func (c Compression) String() string {
	if codec, ok := lookupCodec(c); ok {
		return codec.Name()
	}
	return fmt.Sprintf("compression(%d)", uint8(c))
}

type noneCodec struct{}

func (noneCodec) Name() string { return "none" }

func (noneCodec) Compress(src []byte) ([]byte, bool, error) { return src, false, nil }

func (noneCodec) Decompress(src []byte, size int) ([]byte, error) {
	if len(src) != size {
		return nil, fmt.Errorf("stored payload is %d bytes, header says %d", len(src), size)
	}
	return src, nil
}

type lz4Codec struct{}

func (lz4Codec) Name() string { return "lz4" }

func (lz4Codec) Compress(src []byte) ([]byte, bool, error) {
	if len(src) == 0 {
		return src, false, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(src)))
	n, err := lz4.CompressBlock(src, dst, nil)
	if err != nil {
		return nil, false, err
	}
	if n == 0 || n >= len(src) {
		return src, false, nil // incompressible
	}
	return dst[:n], true, nil
}

// lz4MaxRatio bounds LZ4 block expansion: each input byte adds at most 255
// output bytes through a length extension.
const lz4MaxRatio = 255

func (lz4Codec) Decompress(src []byte, size int) ([]byte, error) {
	if size > len(src)*lz4MaxRatio {
		return nil, fmt.Errorf("header length %d exceeds what %d lz4 bytes can produce", size, len(src))
	}
	dst := make([]byte, size)
	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, fmt.Errorf("decompressed %d bytes, header says %d", n, size)
	}
	return dst, nil
}

type zstdCodec struct{}

func (zstdCodec) Name() string { return "zstd" }

func (zstdCodec) Compress(src []byte) ([]byte, bool, error) {
	if len(src) == 0 {
		return src, false, nil
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = enc.Close() }()

	dst := enc.EncodeAll(src, nil)
	if len(dst) >= len(src) {
		return src, false, nil
	}
	return dst, true, nil
}

// A zstd block yields at most 128 KiB and takes at least four bytes (an RLE
// block), which bounds frame expansion.
const (
	zstdMaxBlockSize    = 128 << 10
	zstdMinBlockEncoded = 4
)

func (zstdCodec) Decompress(src []byte, size int) ([]byte, error) {
	if size > (len(src)/zstdMinBlockEncoded+1)*zstdMaxBlockSize {
		return nil, fmt.Errorf("header length %d exceeds what %d zstd bytes can produce", size, len(src))
	}

	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1), zstd.WithDecoderMaxMemory(uint64(size)+1))
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	// The buffer grows as frames decode; it is never pre-sized from the header.
	dst, err := dec.DecodeAll(src, nil)
	if err != nil {
		return nil, err
	}
	if len(dst) != size {
		return nil, fmt.Errorf("decompressed %d bytes, header says %d", len(dst), size)
	}
	return dst, nil
}
