// argon2-go: Argon2id password hashing and key derivation
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Cost records the public parameters needed to re-derive a tag: the cost
// settings, the tag length, and the salt. It never carries the password, the
// secret key, or the derived tag itself, so a Cost can be stored next to the
// data the tag protects. The encoding is canonical CBOR with integer keys;
// it is not the PHC string format.
type Cost struct {
	Memory    uint32 `cbor:"1,keyasint"`
	Time      uint32 `cbor:"2,keyasint"`
	Threads   uint8  `cbor:"3,keyasint"`
	TagLength uint32 `cbor:"4,keyasint"`
	Salt      []byte `cbor:"5,keyasint"`
}

var costEncMode = mustEncMode()
var costDecMode = mustDecMode()

func mustEncMode() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic("argon2: " + err.Error())
	}
	return em
}

func mustDecMode() cbor.DecMode {
	dm, err := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		IndefLength:       cbor.IndefLengthForbidden,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic("argon2: " + err.Error())
	}
	return dm
}

// costRecord has Cost's fields and CBOR tags but none of its methods, so the
// codec encodes and decodes the struct itself rather than calling back into
// MarshalBinary or UnmarshalBinary.
type costRecord Cost

// MarshalBinary encodes the record as canonical CBOR.
func (c *Cost) MarshalBinary() ([]byte, error) {
	return costEncMode.Marshal((*costRecord)(c))
}

// UnmarshalBinary decodes a record produced by MarshalBinary. Decoding is
// strict: duplicate or unknown keys and indefinite-length items are rejected.
func (c *Cost) UnmarshalBinary(data []byte) error {
	if err := costDecMode.Unmarshal(data, (*costRecord)(c)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	return nil
}

// Key derives the tag for password under the recorded parameters. The secret
// and data arguments correspond to Options.Secret and Options.Data and may
// be nil.
func (c *Cost) Key(password, secret, data []byte) ([]byte, error) {
	out := make([]byte, c.TagLength)
	err := Derive(out, password, c.Salt, Options{
		Memory:  c.Memory,
		Time:    c.Time,
		Threads: c.Threads,
		Secret:  secret,
		Data:    data,
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
