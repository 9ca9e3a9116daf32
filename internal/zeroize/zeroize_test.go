// argon2-go: Argon2id password hashing and key derivation
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zeroize

import "testing"

func TestBytes(t *testing.T) {
	b := make([]byte, 1027)
	for i := range b {
		b[i] = byte(i)
	}
	Bytes(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not wiped: %#x", i, v)
		}
	}
	Bytes(nil) // must not panic
}

func TestWords(t *testing.T) {
	w := make([]uint64, 128)
	for i := range w {
		w[i] = ^uint64(i)
	}
	Words(w)
	for i, v := range w {
		if v != 0 {
			t.Fatalf("word %d not wiped: %#x", i, v)
		}
	}
	Words(nil) // must not panic
}
