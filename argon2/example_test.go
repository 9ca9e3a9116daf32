// argon2-go: Argon2id password hashing and key derivation
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2_test

import (
	"encoding/hex"
	"fmt"

	"github.com/dark-bio/argon2-go/argon2"
)

func ExampleKey() {
	key := argon2.Key([]byte("password"), []byte("somesalt"), 1, 64, 1, 24)
	fmt.Println(hex.EncodeToString(key))
	// Output: 655ad15eac652dc59f7170a7332bf49b8469be1fdb9c28bb
}

func ExampleDerive() {
	tag := make([]byte, 32)
	err := argon2.Derive(tag, []byte("password"), []byte("somesalt"), argon2.Options{
		Memory:  64 * 1024,
		Time:    1,
		Threads: 4,
		Secret:  []byte("server-side pepper"),
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(tag))
	// Output: 32
}

func ExampleCost() {
	// Record the public parameters next to the protected data, then use the
	// record to re-derive the same key later.
	c := argon2.Cost{
		Memory:    64,
		Time:      2,
		Threads:   2,
		TagLength: 32,
		Salt:      []byte("somesalt"),
	}
	blob, _ := c.MarshalBinary()

	var restored argon2.Cost
	if err := restored.UnmarshalBinary(blob); err != nil {
		fmt.Println(err)
		return
	}
	key, _ := restored.Key([]byte("password"), nil, nil)
	fmt.Println(len(key))
	// Output: 32
}
