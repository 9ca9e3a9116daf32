// argon2-go: Argon2id password hashing and key derivation
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argon2

// Reference selection. The mode is decided by public parameters alone:
// pass 0, slices 0 and 1 are data-independent (Argon2i), everything after is
// data-dependent (Argon2d). Either way a 64-bit pseudorandom value is split
// into J1 (low half) and J2 (high half); J2 picks the lane and J1 picks a
// block within the eligible reference area, biased toward recent blocks.

// nextAddressBlock refreshes the Argon2i address block: the counter word of
// the input block is bumped, then addr = G(Zero, G(Zero, input)). A fresh
// block is needed every 128 columns of a data-independent segment.
func nextAddressBlock(addr, in, zero, r, tmp *block) {
	in[6]++
	fillBlock(zero, in, addr, r, tmp, false)
	fillBlock(zero, addr, addr, r, tmp, false)
}

// refLane maps J2 to the referenced lane. In the first slice of the first
// pass only the current lane is initialized, so references stay local.
func refLane(rand uint64, pass, slice, lane, threads uint32) uint32 {
	l := uint32(rand>>32) % threads
	if pass == 0 && slice == 0 {
		l = lane
	}
	return l
}

// refIndex maps J1 to an absolute column in the referenced lane.
//
// The reference area holds the blocks eligible at position (pass, slice,
// index): on the first pass everything written so far, on later passes the
// three finished slices plus the current segment's progress — always
// excluding the block immediately before the current one when referencing
// the current lane, and the neighbours' freshest block when the segment has
// written nothing yet.
func refIndex(rand uint64, pass, slice, lane, index, refLane, laneLength, segmentLength uint32) uint32 {
	sameLane := refLane == lane

	var area uint32
	if pass == 0 {
		switch {
		case slice == 0:
			area = index - 1
		case sameLane:
			area = slice*segmentLength + index - 1
		case index == 0:
			area = slice*segmentLength - 1
		default:
			area = slice * segmentLength
		}
	} else {
		switch {
		case sameLane:
			area = laneLength - segmentLength + index - 1
		case index == 0:
			area = laneLength - segmentLength - 1
		default:
			area = laneLength - segmentLength
		}
	}

	// Quadratic mapping of J1 onto the area, favoring recent blocks.
	j1 := rand & 0xFFFFFFFF
	x := (j1 * j1) >> 32
	y := (uint64(area) * x) >> 32
	relative := area - 1 - uint32(y)

	start := uint32(0)
	if pass != 0 {
		start = ((slice + 1) % syncPoints) * segmentLength
	}
	return (start + relative) % laneLength
}
