// argon2-go: Argon2id password hashing and key derivation
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2

import (
	"encoding/binary"

	"github.com/dark-bio/argon2-go/blake2b"
	"github.com/dark-bio/argon2-go/internal/zeroize"
)

// initHash computes the 64-byte initial seed H0 over the parameters and the
// length-prefixed inputs. The trailing 8 bytes of the returned array are
// scratch space for the per-lane counters appended by initBlocks.
//
//	H0 = BLAKE2b-64(LE32(p) || LE32(tagLen) || LE32(m) || LE32(t) ||
//	                LE32(version) || LE32(type) ||
//	                LE32(|P|) || P || LE32(|S|) || S ||
//	                LE32(|K|) || K || LE32(|X|) || X)
//
// The assembled preimage is wiped before returning.
func initHash(password, salt, secret, data []byte, time, memory, threads, tagLen uint32) [blake2b.Size + 8]byte {
	pre := make([]byte, 0, 10*4+len(password)+len(salt)+len(secret)+len(data))
	pre = appendUint32(pre, threads)
	pre = appendUint32(pre, tagLen)
	pre = appendUint32(pre, memory)
	pre = appendUint32(pre, time)
	pre = appendUint32(pre, Version)
	pre = appendUint32(pre, typeID)
	pre = appendUint32(pre, uint32(len(password)))
	pre = append(pre, password...)
	pre = appendUint32(pre, uint32(len(salt)))
	pre = append(pre, salt...)
	pre = appendUint32(pre, uint32(len(secret)))
	pre = append(pre, secret...)
	pre = appendUint32(pre, uint32(len(data)))
	pre = append(pre, data...)

	var h0 [blake2b.Size + 8]byte
	sum := blake2b.Sum512(pre)
	copy(h0[:blake2b.Size], sum[:])
	zeroize.Bytes(pre)
	zeroize.Bytes(sum[:])
	return h0
}

func appendUint32(b []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(b, tmp[:]...)
}

// initBlocks fills the first two columns of every lane from H0:
//
//	B[lane][i] = H'(H0 || LE32(i) || LE32(lane), 1024) for i in {0, 1}
//
// h0's trailing 8 bytes carry the two counters.
func initBlocks(b []block, h0 *[blake2b.Size + 8]byte, laneLength, threads uint32) {
	var buf [blockSize]byte
	for lane := uint32(0); lane < threads; lane++ {
		j := lane * laneLength
		binary.LittleEndian.PutUint32(h0[blake2b.Size+4:], lane)

		binary.LittleEndian.PutUint32(h0[blake2b.Size:], 0)
		hashVar(buf[:], h0[:])
		b[j].deserialize(buf[:])

		binary.LittleEndian.PutUint32(h0[blake2b.Size:], 1)
		hashVar(buf[:], h0[:])
		b[j+1].deserialize(buf[:])
	}
	zeroize.Bytes(buf[:])
}

// hashVar is the Argon2 variable-length hash H'. The output length is bound
// into the computation via a little-endian 32-bit prefix. Outputs of at most
// 64 bytes are a single variable-length BLAKE2b digest; longer outputs chain
// 64-byte digests with a 32-byte stride, the final link shrunk to the
// remaining length. The stride and the shrunken final digest are what the
// reference implementation produces; both are required for bit-exact tags.
func hashVar(out, in []byte) {
	var length [4]byte
	binary.LittleEndian.PutUint32(length[:], uint32(len(out)))

	if len(out) <= blake2b.Size {
		h, err := blake2b.New(len(out))
		if err != nil {
			panic("argon2: " + err.Error())
		}
		h.Write(length[:])
		h.Write(in)
		h.Sum(out[:0])
		return
	}

	var v [blake2b.Size]byte
	h := blake2b.New512()
	h.Write(length[:])
	h.Write(in)
	h.Sum(v[:0])
	copy(out, v[:32])

	rest := out[32:]
	for len(rest) > blake2b.Size {
		h.Reset()
		h.Write(v[:])
		h.Sum(v[:0])
		copy(rest, v[:32])
		rest = rest[32:]
	}

	last, err := blake2b.New(len(rest))
	if err != nil {
		panic("argon2: " + err.Error())
	}
	last.Write(v[:])
	last.Sum(rest[:0])
	zeroize.Bytes(v[:])
}
