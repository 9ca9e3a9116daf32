// argon2-go: Argon2id password hashing and key derivation
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argon2 provides Argon2id key derivation, implemented from scratch.
//
// https://datatracker.ietf.org/doc/html/rfc9106
//
// Argon2id is the hybrid Argon2 variant: memory access is data-independent
// for the first half of the first pass and data-dependent afterwards. The
// implementation is bit-exact with the reference Argon2id (type 2, version
// 0x13) for every parameter combination, so tags interoperate with
// phc-winner-argon2 and libsodium.
//
// The initial hash, the memory matrix, and the transient buffers this package
// fills with password-derived data are wiped before Derive returns, on
// success and on failure alike. The internal state of the BLAKE2b hashes used
// along the way is not wiped.
package argon2

import (
	"errors"
	"fmt"
	"math"

	"github.com/dark-bio/argon2-go/internal/zeroize"
)

// Version is the Argon2 version implemented by this package.
const Version = 0x13

// typeID is the Argon2id algorithm identifier in the initial hash.
const typeID = 2

// syncPoints is the number of slices a pass is divided into. Lanes
// synchronize at each slice boundary.
const syncPoints = 4

// Parameter bounds from RFC 9106 as restricted by this package.
const (
	MinSaltLength   = 8    // bytes
	MaxSaltLength   = 64   // bytes
	MinTagLength    = 4    // bytes
	MaxTagLength    = 4096 // bytes
	MaxSecretLength = 64   // bytes
	MaxThreads      = 255  // lanes
)

// Failure kinds. Errors returned by Derive wrap one of these.
var (
	// ErrInvalidParameter reports an input outside the allowed ranges.
	ErrInvalidParameter = errors.New("argon2: invalid parameter")

	// ErrAllocation reports that the memory matrix cannot be provisioned.
	ErrAllocation = errors.New("argon2: cannot allocate memory matrix")

	// ErrInternal is reserved for invariant violations. It is not reachable
	// by construction.
	ErrInternal = errors.New("argon2: internal error")
)

// Options holds the Argon2id cost parameters and the optional secret inputs.
type Options struct {
	// Memory is the memory cost in KiB. It is rounded down to a multiple of
	// 4*Threads, with a floor of 8*Threads.
	Memory uint32

	// Time is the number of passes over memory. Must be at least 1.
	Time uint32

	// Threads is the parallelism degree (the number of lanes). Must be at
	// least 1. Lane layout affects the output, thread scheduling does not.
	Threads uint8

	// Secret is an optional key ("pepper") mixed into the initial hash.
	// At most 64 bytes. May be nil.
	Secret []byte

	// Data is optional associated data mixed into the initial hash.
	// May be nil.
	Data []byte
}

// Derive computes the Argon2id tag for the password and salt under the given
// options and writes it into out. The tag length is len(out), which must be
// between 4 and 4096 bytes. The same inputs always produce the same tag.
//
// On failure the error wraps one of ErrInvalidParameter or ErrAllocation,
// out is filled with zeros, and no secret-derived state survives. Parameter
// errors are reported before any secret processing begins. Note that Go's
// runtime aborts the process if the heap itself is exhausted; ErrAllocation
// covers the matrix sizes this package can reject up front.
func Derive(out, password, salt []byte, opts Options) error {
	if err := checkParams(out, password, salt, opts); err != nil {
		zeroize.Bytes(out)
		return err
	}

	threads := uint32(opts.Threads)
	mPrime := opts.Memory
	if mPrime < 8*threads {
		mPrime = 8 * threads
	}
	mPrime = mPrime / (syncPoints * threads) * (syncPoints * threads)
	if uint64(mPrime) > uint64(math.MaxInt)/blockSize {
		zeroize.Bytes(out)
		return fmt.Errorf("%w: %d KiB exceeds the addressable size", ErrAllocation, mPrime)
	}
	laneLength := mPrime / threads

	h0 := initHash(password, salt, opts.Secret, opts.Data, opts.Time, opts.Memory, threads, uint32(len(out)))
	defer zeroize.Bytes(h0[:])

	b := make([]block, mPrime)
	defer func() {
		for i := range b {
			zeroize.Words(b[i][:])
		}
	}()

	initBlocks(b, &h0, laneLength, threads)
	fillMemory(b, opts.Time, threads)
	extractTag(out, b, laneLength, threads)
	return nil
}

// Key derives a key from the password, salt, and cost parameters using
// Argon2id, returning a byte slice of the requested length, that can be used
// as a cryptographic key. The CPU cost and parallelism degree must be greater
// than zero.
//
// For example, you can get a derived key for e.g. AES-256 (which needs a
// 32-byte key) by doing:
//
//	key := argon2.Key([]byte("password"), []byte("somesalt"), 1, 64*1024, 4, 32)
//
// RFC 9106 Section 7.4 recommends time=1, and memory=2048*1024 as a sensible
// number. If using that amount of memory (2GB) is not possible in some
// contexts then the time parameter can be increased to compensate.
//
// Key panics if Derive would reject the parameters; use Derive directly for
// an error return.
//
// https://www.rfc-editor.org/rfc/rfc9106.html#section-7.4
func Key(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) []byte {
	out := make([]byte, keyLen)
	if err := Derive(out, password, salt, Options{Memory: memory, Time: time, Threads: threads}); err != nil {
		panic("argon2: " + err.Error())
	}
	return out
}

func checkParams(out, password, salt []byte, opts Options) error {
	switch {
	case len(out) < MinTagLength || len(out) > MaxTagLength:
		return fmt.Errorf("%w: tag length %d not in [%d, %d]", ErrInvalidParameter, len(out), MinTagLength, MaxTagLength)
	case len(password) == 0:
		return fmt.Errorf("%w: empty password", ErrInvalidParameter)
	case uint64(len(password)) > math.MaxUint32:
		return fmt.Errorf("%w: password longer than 2^32-1 bytes", ErrInvalidParameter)
	case len(salt) < MinSaltLength || len(salt) > MaxSaltLength:
		return fmt.Errorf("%w: salt length %d not in [%d, %d]", ErrInvalidParameter, len(salt), MinSaltLength, MaxSaltLength)
	case len(opts.Secret) > MaxSecretLength:
		return fmt.Errorf("%w: secret longer than %d bytes", ErrInvalidParameter, MaxSecretLength)
	case uint64(len(opts.Data)) > math.MaxUint32:
		return fmt.Errorf("%w: associated data longer than 2^32-1 bytes", ErrInvalidParameter)
	case opts.Time < 1:
		return fmt.Errorf("%w: at least one pass required", ErrInvalidParameter)
	case opts.Threads < 1:
		return fmt.Errorf("%w: at least one lane required", ErrInvalidParameter)
	}
	return nil
}

// extractTag XORs the last block of every lane into the finalization block C,
// serializes it, and expands it to the tag with H'.
func extractTag(tag []byte, b []block, laneLength, threads uint32) {
	c := b[laneLength-1]
	for lane := uint32(1); lane < threads; lane++ {
		c.xor(&b[lane*laneLength+laneLength-1])
	}

	var buf [blockSize]byte
	c.serialize(buf[:])
	hashVar(tag, buf[:])
	zeroize.Bytes(buf[:])
	zeroize.Words(c[:])
}
