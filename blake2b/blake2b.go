// argon2-go: Argon2id password hashing and key derivation
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blake2b implements the keyless BLAKE2b hash function producing
// digests of 1 to 64 bytes.
//
// https://datatracker.ietf.org/doc/html/rfc7693
//
// The digest length is part of the parameter block, so different output
// lengths produce unrelated digests of the same message. Keyed hashing, salts,
// personalization and tree modes are deliberately not supported; Argon2id
// needs none of them.
package blake2b

import (
	"encoding/binary"
	"errors"
	"hash"
)

const (
	// Size is the maximum (and default) digest size in bytes.
	Size = 64

	// BlockSize is the message block size in bytes.
	BlockSize = 128
)

// ErrInvalidSize is returned by New for digest sizes outside 1..64.
var ErrInvalidSize = errors.New("blake2b: digest size out of range")

// iv holds the BLAKE2b initialization vector, the same constants SHA-512 uses.
var iv = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b,
	0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f,
	0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

type digest struct {
	h    [8]uint64       // chain value
	t    [2]uint64       // 128-bit message byte counter
	x    [BlockSize]byte // buffered input not yet compressed
	nx   int             // number of buffered bytes
	size int             // digest size in bytes
}

// New returns a hash.Hash computing a BLAKE2b digest of the given size in
// bytes. The size must be between 1 and 64 inclusive.
func New(size int) (hash.Hash, error) {
	if size < 1 || size > Size {
		return nil, ErrInvalidSize
	}
	d := new(digest)
	d.size = size
	d.Reset()
	return d, nil
}

// New512 returns a hash.Hash computing the 64-byte BLAKE2b digest.
func New512() hash.Hash {
	d := &digest{size: Size}
	d.Reset()
	return d
}

// Sum512 returns the 64-byte BLAKE2b digest of data.
func Sum512(data []byte) [Size]byte {
	d := digest{size: Size}
	d.Reset()
	d.Write(data)
	return d.checkSum()
}

// Sum returns a BLAKE2b digest of data with the given size in bytes,
// between 1 and 64 inclusive.
func Sum(data []byte, size int) ([]byte, error) {
	if size < 1 || size > Size {
		return nil, ErrInvalidSize
	}
	d := digest{size: size}
	d.Reset()
	d.Write(data)
	sum := d.checkSum()
	out := make([]byte, size)
	copy(out, sum[:])
	return out, nil
}

func (d *digest) Size() int { return d.size }

func (d *digest) BlockSize() int { return BlockSize }

// Reset restores the initial chain value. The keyless parameter block is all
// zero except for the digest length, fanout and depth, so only h[0] differs
// from the IV.
func (d *digest) Reset() {
	d.h = iv
	d.h[0] ^= 0x01010000 ^ uint64(d.size)
	d.t[0] = 0
	d.t[1] = 0
	d.nx = 0
}

func (d *digest) Write(p []byte) (n int, err error) {
	n = len(p)
	left := BlockSize - d.nx
	if len(p) > left {
		// Flush the buffer. The final block must be compressed with the
		// last-block flag, so a full buffer is kept until more input proves
		// it is not final.
		copy(d.x[d.nx:], p[:left])
		d.compress(d.x[:])
		d.nx = 0
		p = p[left:]
	}
	if len(p) > BlockSize {
		nn := (len(p) - 1) &^ (BlockSize - 1)
		d.compress(p[:nn])
		p = p[nn:]
	}
	d.nx += copy(d.x[d.nx:], p)
	return n, nil
}

// Sum appends the digest to in and returns the result. The internal state is
// copied first, so callers can keep writing afterwards.
func (d *digest) Sum(in []byte) []byte {
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:d0.size]...)
}

func (d *digest) checkSum() [Size]byte {
	// Zero-pad the final block. An empty message compresses a single zero
	// block with counter 0 and the final flag set.
	for i := d.nx; i < BlockSize; i++ {
		d.x[i] = 0
	}
	d.compressFinal(d.x[:], d.nx)

	var out [Size]byte
	for i, v := range d.h {
		binary.LittleEndian.PutUint64(out[i*8:], v)
	}
	return out
}
