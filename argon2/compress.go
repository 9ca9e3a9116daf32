// argon2-go: Argon2id password hashing and key derivation
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2

import "math/bits"

// fillBlock computes the compression G(prev, ref) = P(R) XOR R with
// R = prev XOR ref and stores it in next. With withXOR set (every pass after
// the first), the previous contents of next are folded in as well.
//
// r and tmp are caller-owned scratch blocks so that the segment that drives
// the compression can wipe them on teardown.
func fillBlock(prev, ref, next, r, tmp *block, withXOR bool) {
	for i := range r {
		r[i] = prev[i] ^ ref[i]
		tmp[i] = r[i]
	}
	if withXOR {
		for i := range tmp {
			tmp[i] ^= next[i]
		}
	}

	// P over the eight rows of 16 consecutive words, then over the eight
	// column groups built from the word pairs (2i, 2i+1) of every row.
	for i := 0; i < blockLength; i += 16 {
		permute(
			&r[i], &r[i+1], &r[i+2], &r[i+3],
			&r[i+4], &r[i+5], &r[i+6], &r[i+7],
			&r[i+8], &r[i+9], &r[i+10], &r[i+11],
			&r[i+12], &r[i+13], &r[i+14], &r[i+15],
		)
	}
	for i := 0; i < 16; i += 2 {
		permute(
			&r[i], &r[i+1], &r[i+16], &r[i+17],
			&r[i+32], &r[i+33], &r[i+48], &r[i+49],
			&r[i+64], &r[i+65], &r[i+80], &r[i+81],
			&r[i+96], &r[i+97], &r[i+112], &r[i+113],
		)
	}

	for i := range next {
		next[i] = r[i] ^ tmp[i]
	}
}

// permute is the BLAKE2b round permutation P over 16 words: four column
// quarter-rounds followed by four diagonal quarter-rounds.
func permute(v0, v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11, v12, v13, v14, v15 *uint64) {
	gb(v0, v4, v8, v12)
	gb(v1, v5, v9, v13)
	gb(v2, v6, v10, v14)
	gb(v3, v7, v11, v15)

	gb(v0, v5, v10, v15)
	gb(v1, v6, v11, v12)
	gb(v2, v7, v8, v13)
	gb(v3, v4, v9, v14)
}

// gb is the Argon2 quarter-round: BLAKE2b's G with the message words replaced
// by the nonlinear term 2*lo32(a)*lo32(b). All arithmetic wraps modulo 2^64;
// the product of two 32-bit halves fits in 64 bits, so it cannot overflow
// before doubling.
func gb(a, b, c, d *uint64) {
	*a += *b + 2*(*a&0xFFFFFFFF)*(*b&0xFFFFFFFF)
	*d = bits.RotateLeft64(*d^*a, -32)
	*c += *d + 2*(*c&0xFFFFFFFF)*(*d&0xFFFFFFFF)
	*b = bits.RotateLeft64(*b^*c, -24)
	*a += *b + 2*(*a&0xFFFFFFFF)*(*b&0xFFFFFFFF)
	*d = bits.RotateLeft64(*d^*a, -16)
	*c += *d + 2*(*c&0xFFFFFFFF)*(*d&0xFFFFFFFF)
	*b = bits.RotateLeft64(*b^*c, -63)
}
