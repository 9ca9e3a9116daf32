// argon2-go: Argon2id password hashing and key derivation
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zeroize overwrites secret material before its storage is released.
//
// Go has no volatile stores, so the wipes are anchored with runtime.KeepAlive
// to keep the buffer (and therefore the stores into it) live until the wipe
// has completed.
package zeroize

import "runtime"

// Bytes overwrites b with zeros.
func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// Words overwrites w with zeros.
func Words(w []uint64) {
	for i := range w {
		w[i] = 0
	}
	runtime.KeepAlive(w)
}
