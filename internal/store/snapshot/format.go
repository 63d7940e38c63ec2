// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

// Package snapshot reads and writes the single-file image of the store.
//
// File layout (little endian):
//
//	[0:4]   magic "KVSN"
//	[4]     format version
//	[5]     compression (see Compression)
//	[6:8]   reserved, zero
//	[8:12]  CRC32-IEEE over [12:20] and the stored payload
//	[12:20] uncompressed payload length
//	[20:]   payload: snapshot.v1.Snapshot, protobuf encoded, then compressed
//
// The CRC only detects accidental corruption; it is not a tamper check.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"

	"google.golang.org/protobuf/proto"

	snapshotv1 "github.com/sigil-dev/kvstore/internal/gen/proto/snapshot/v1"
	kverr "github.com/sigil-dev/kvstore/pkg/errors"
)

const (
	magic         = "KVSN"
	formatVersion = 1
	headerSize    = 20

	// maxPayloadSize bounds the allocation made from an untrusted header.
	maxPayloadSize = 1 << 36
)

// Encode writes snap to w using compression c and returns the number of
// bytes written.
func Encode(w io.Writer, snap *snapshotv1.Snapshot, c Compression) (int64, error) {
	codec, ok := lookupCodec(c)
	if !ok {
		return 0, kverr.Errorf(kverr.CodeStoreSnapshotCodecInvalid, "snapshot compression %d is not registered", uint8(c))
	}

	raw, err := proto.MarshalOptions{Deterministic: true}.Marshal(snap)
	if err != nil {
		return 0, kverr.Errorf(kverr.CodeStoreSnapshotWriteFailure, "marshalling snapshot: %w", err)
	}

	payload, compressed, err := codec.Compress(raw)
	if err != nil {
		return 0, kverr.Errorf(kverr.CodeStoreSnapshotWriteFailure, "compressing snapshot with %s: %w", codec.Name(), err)
	}
	if !compressed {
		c = CompressionNone
	}

	var hdr [headerSize]byte
	copy(hdr[0:4], magic)
	hdr[4] = formatVersion
	hdr[5] = byte(c)
	binary.LittleEndian.PutUint64(hdr[12:20], uint64(len(raw)))
	binary.LittleEndian.PutUint32(hdr[8:12], checksum(hdr[12:20], payload))

	n, err := w.Write(hdr[:])
	total := int64(n)
	if err != nil {
		return total, kverr.Errorf(kverr.CodeStoreSnapshotWriteFailure, "writing snapshot header: %w", err)
	}
	n, err = w.Write(payload)
	total += int64(n)
	if err != nil {
		return total, kverr.Errorf(kverr.CodeStoreSnapshotWriteFailure, "writing snapshot payload: %w", err)
	}
	return total, nil
}

// Decode reads a snapshot written by Encode. Structural problems are
// reported as data corruption; failures of r itself as read failures.
func Decode(r io.Reader) (*snapshotv1.Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, kverr.Errorf(kverr.CodeStoreSnapshotReadFailure, "reading snapshot: %w", err)
	}
	return decodeBytes(data)
}

func decodeBytes(data []byte) (*snapshotv1.Snapshot, error) {
	if len(data) < headerSize {
		return nil, kverr.Errorf(kverr.CodeStoreSnapshotCorrupt, "snapshot truncated: %d bytes, header needs %d", len(data), headerSize)
	}
	if !bytes.Equal(data[0:4], []byte(magic)) {
		return nil, kverr.Errorf(kverr.CodeStoreSnapshotCorrupt, "not a snapshot file: bad magic %q", data[0:4])
	}
	if data[4] != formatVersion {
		return nil, kverr.Errorf(kverr.CodeStoreSnapshotCorrupt, "unsupported snapshot version %d", data[4])
	}

	c := Compression(data[5])
	codec, ok := lookupCodec(c)
	if !ok {
		return nil, kverr.Errorf(kverr.CodeStoreSnapshotCorrupt, "unknown snapshot compression %d", data[5])
	}

	payload := data[headerSize:]
	want := binary.LittleEndian.Uint32(data[8:12])
	if got := checksum(data[12:20], payload); got != want {
		return nil, kverr.Errorf(kverr.CodeStoreSnapshotCorrupt, "snapshot checksum mismatch: stored %08x, computed %08x", want, got)
	}

	size := binary.LittleEndian.Uint64(data[12:20])
	if size > maxPayloadSize {
		return nil, kverr.Errorf(kverr.CodeStoreSnapshotCorrupt, "snapshot payload length %d exceeds limit", size)
	}

	raw, err := codec.Decompress(payload, int(size))
	if err != nil {
		return nil, kverr.Errorf(kverr.CodeStoreSnapshotCorrupt, "decompressing snapshot (%s): %w", codec.Name(), err)
	}

	snap := &snapshotv1.Snapshot{}
	if err := proto.Unmarshal(raw, snap); err != nil {
		return nil, kverr.Errorf(kverr.CodeStoreSnapshotCorrupt, "unmarshalling snapshot: %w", err)
	}
	return snap, nil
}

func checksum(length, payload []byte) uint32 {
	sum := crc32.ChecksumIEEE(length)
	return crc32.Update(sum, crc32.IEEETable, payload)
}
