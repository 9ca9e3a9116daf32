// argon2-go: Argon2id password hashing and key derivation
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2

import "testing"

func testBlocks() (prev, ref block) {
	for i := range prev {
		prev[i] = 0x9e3779b97f4a7c15 * uint64(i+1)
		ref[i] = ^prev[i] ^ uint64(i)<<32
	}
	return prev, ref
}

// G with the XOR flag equals plain G folded into the old block contents.
func TestFillBlockXORMode(t *testing.T) {
	prev, ref := testBlocks()
	var old block
	for i := range old {
		old[i] = 0x123456789abcdef0 ^ uint64(i)
	}

	var plain, r, tmp block
	fillBlock(&prev, &ref, &plain, &r, &tmp, false)

	next := old
	fillBlock(&prev, &ref, &next, &r, &tmp, true)

	for i := range next {
		if next[i] != plain[i]^old[i] {
			t.Fatalf("word %d: XOR mode = %#x, want %#x", i, next[i], plain[i]^old[i])
		}
	}
}

// G's arguments commute: G(X, Y) = G(Y, X), since both only enter as X XOR Y.
func TestFillBlockSymmetric(t *testing.T) {
	prev, ref := testBlocks()

	var a, b, r, tmp block
	fillBlock(&prev, &ref, &a, &r, &tmp, false)
	fillBlock(&ref, &prev, &b, &r, &tmp, false)
	if a != b {
		t.Fatal("G(X, Y) != G(Y, X)")
	}
}

// The compression must not be the identity or a plain XOR of its inputs.
func TestFillBlockMixes(t *testing.T) {
	prev, ref := testBlocks()

	var next, r, tmp block
	fillBlock(&prev, &ref, &next, &r, &tmp, false)

	var same int
	for i := range next {
		if next[i] == prev[i]^ref[i] {
			same++
		}
	}
	if same > 2 {
		t.Fatalf("%d of %d output words equal the plain XOR of the inputs", same, blockLength)
	}
}

// The inputs are read before the output is written, so compressing in place
// (ref aliasing next) must match the out-of-place result. The address block
// generator relies on this.
func TestFillBlockAliased(t *testing.T) {
	_, ref := testBlocks()
	var zero, r, tmp block

	var out block
	fillBlock(&zero, &ref, &out, &r, &tmp, false)

	aliased := ref
	fillBlock(&zero, &aliased, &aliased, &r, &tmp, false)
	if aliased != out {
		t.Fatal("in-place compression diverges from out-of-place")
	}
}

func BenchmarkFillBlock(b *testing.B) {
	prev, ref := testBlocks()
	var next, r, tmp block
	b.SetBytes(blockSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fillBlock(&prev, &ref, &next, &r, &tmp, false)
	}
}
