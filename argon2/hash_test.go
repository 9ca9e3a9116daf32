// argon2-go: Argon2id password hashing and key derivation
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2

import (
	"bytes"
	"encoding/binary"
	"hash"
	"testing"

	refblake "golang.org/x/crypto/blake2b"
)

// refHashVar recomputes H' on top of x/crypto's BLAKE2b, mirroring the
// reference expansion: a length-prefixed first digest, 32-byte strides, and
// a shrunken final digest.
func refHashVar(out, in []byte) {
	var h hash.Hash
	if len(out) < refblake.Size {
		h, _ = refblake.New(len(out), nil)
	} else {
		h, _ = refblake.New512(nil)
	}
	var length [4]byte
	binary.LittleEndian.PutUint32(length[:], uint32(len(out)))
	h.Write(length[:])
	h.Write(in)

	if len(out) <= refblake.Size {
		h.Sum(out[:0])
		return
	}

	v := h.Sum(nil)
	copy(out, v[:32])
	rest := out[32:]
	for len(rest) > refblake.Size {
		h, _ = refblake.New512(nil)
		h.Write(v)
		v = h.Sum(nil)
		copy(rest, v[:32])
		rest = rest[32:]
	}
	h, _ = refblake.New(len(rest), nil)
	h.Write(v)
	h.Sum(rest[:0])
}

func TestHashVar(t *testing.T) {
	in := make([]byte, 72)
	for i := range in {
		in[i] = byte(i * 13)
	}
	lengths := []int{1, 4, 31, 32, 33, 63, 64, 65, 95, 96, 97, 127, 128, 129,
		160, 191, 192, 193, 1024, 4095, 4096}

	for _, n := range lengths {
		want := make([]byte, n)
		refHashVar(want, in)
		got := make([]byte, n)
		hashVar(got, in)
		if !bytes.Equal(got, want) {
			t.Errorf("hashVar(len=%d) = %x..., want %x...", n, got[:min(16, n)], want[:min(16, n)])
		}
	}
}

// The requested length is part of the computation: H'(in, n) must not be a
// prefix of H'(in, n+1).
func TestHashVarLengthBound(t *testing.T) {
	in := []byte("length binding")
	a := make([]byte, 32)
	b := make([]byte, 33)
	hashVar(a, in)
	hashVar(b, in)
	if bytes.Equal(a, b[:32]) {
		t.Fatal("H' output for length 32 is a prefix of the length-33 output")
	}
}

func TestInitHashDistinctInputs(t *testing.T) {
	base := initHash([]byte("pw"), []byte("somesalt"), nil, nil, 3, 32, 4, 32)

	variants := [][blake2b64 + 8]byte{
		initHash([]byte("pw2"), []byte("somesalt"), nil, nil, 3, 32, 4, 32),
		initHash([]byte("pw"), []byte("somesalt2"), nil, nil, 3, 32, 4, 32),
		initHash([]byte("pw"), []byte("somesalt"), []byte("k"), nil, 3, 32, 4, 32),
		initHash([]byte("pw"), []byte("somesalt"), nil, []byte("x"), 3, 32, 4, 32),
		initHash([]byte("pw"), []byte("somesalt"), nil, nil, 4, 32, 4, 32),
		initHash([]byte("pw"), []byte("somesalt"), nil, nil, 3, 64, 4, 32),
		initHash([]byte("pw"), []byte("somesalt"), nil, nil, 3, 32, 2, 32),
		initHash([]byte("pw"), []byte("somesalt"), nil, nil, 3, 32, 4, 64),
	}
	for i, v := range variants {
		if bytes.Equal(base[:blake2b64], v[:blake2b64]) {
			t.Errorf("variant %d collides with the base H0", i)
		}
	}
}

// An empty secret and an absent secret hash identically: the length prefix
// is zero either way.
func TestInitHashEmptyVersusNil(t *testing.T) {
	a := initHash([]byte("pw"), []byte("somesalt"), nil, nil, 1, 8, 1, 32)
	b := initHash([]byte("pw"), []byte("somesalt"), []byte{}, []byte{}, 1, 8, 1, 32)
	if !bytes.Equal(a[:], b[:]) {
		t.Fatal("nil and empty optional inputs produced different H0")
	}
}

const blake2b64 = 64
