// argon2-go: Argon2id password hashing and key derivation
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2

import "encoding/binary"

const (
	// blockLength is the number of 64-bit words in a memory block.
	blockLength = 128

	// blockSize is the size of a memory block in bytes.
	blockSize = 8 * blockLength
)

// block is the atomic unit of the memory matrix: 128 words, serialized
// little-endian as 1024 bytes.
type block [blockLength]uint64

func (b *block) xor(other *block) {
	for i := range b {
		b[i] ^= other[i]
	}
}

// deserialize loads the block from 1024 little-endian bytes.
func (b *block) deserialize(buf []byte) {
	_ = buf[blockSize-1]
	for i := range b {
		b[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
}

// serialize writes the block into buf as 1024 little-endian bytes.
func (b *block) serialize(buf []byte) {
	_ = buf[blockSize-1]
	for i, v := range b {
		binary.LittleEndian.PutUint64(buf[i*8:], v)
	}
}
