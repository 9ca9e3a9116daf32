// argon2-go: Argon2id password hashing and key derivation
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2

import (
	"sync"

	"github.com/dark-bio/argon2-go/internal/zeroize"
)

// fillMemory runs the pass/slice/lane state machine over the matrix. Passes
// and slices are strictly sequential; the lanes of one slice run as a
// fork/join group, so every block a segment may reference was written before
// the slice began. That barrier is the only synchronization the algorithm
// needs: a segment writes its own (lane, column range) exclusively and reads
// everything else.
func fillMemory(b []block, time, threads uint32) {
	laneLength := uint32(len(b)) / threads

	for pass := uint32(0); pass < time; pass++ {
		for slice := uint32(0); slice < syncPoints; slice++ {
			var wg sync.WaitGroup
			for lane := uint32(0); lane < threads; lane++ {
				wg.Add(1)
				go func(lane uint32) {
					defer wg.Done()
					fillSegment(b, pass, slice, lane, laneLength, threads, time)
				}(lane)
			}
			wg.Wait()
		}
	}
}

// fillSegment fills the columns of one (pass, slice, lane) cell in ascending
// order: new = G(previous block, referenced block), XORed with the old
// contents on passes after the first. Columns 0 and 1 of the very first
// segment come from initBlocks and are skipped.
func fillSegment(b []block, pass, slice, lane, laneLength, threads, time uint32) {
	segmentLength := laneLength / syncPoints
	dataIndependent := pass == 0 && slice < syncPoints/2

	var in, addr, zero, r, tmp block
	defer func() {
		zeroize.Words(in[:])
		zeroize.Words(addr[:])
		zeroize.Words(r[:])
		zeroize.Words(tmp[:])
	}()

	if dataIndependent {
		in[0] = uint64(pass)
		in[1] = uint64(lane)
		in[2] = uint64(slice)
		in[3] = uint64(len(b))
		in[4] = uint64(time)
		in[5] = typeID
	}

	index := uint32(0)
	if pass == 0 && slice == 0 {
		index = 2
		// Column 2 needs an address before the loop's 128-column cadence
		// first triggers.
		nextAddressBlock(&addr, &in, &zero, &r, &tmp)
	}

	offset := lane*laneLength + slice*segmentLength + index
	for ; index < segmentLength; index, offset = index+1, offset+1 {
		prev := offset - 1
		if index == 0 && slice == 0 {
			prev += laneLength // wrap to the lane's last column
		}

		var random uint64
		if dataIndependent {
			if index%blockLength == 0 {
				nextAddressBlock(&addr, &in, &zero, &r, &tmp)
			}
			random = addr[index%blockLength]
		} else {
			random = b[prev][0]
		}

		refL := refLane(random, pass, slice, lane, threads)
		refI := refIndex(random, pass, slice, lane, index, refL, laneLength, segmentLength)
		fillBlock(&b[prev], &b[refL*laneLength+refI], &b[offset], &r, &tmp, pass > 0)
	}
}
