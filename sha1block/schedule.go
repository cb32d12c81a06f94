//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sha1block

import (
	"encoding/binary"
	"math/bits"
)

// Schedule holds the 80 message schedule words of one block.
type Schedule [Rounds]uint32

// lanes is a group of four consecutive schedule words.
type lanes [4]uint32

// load copies the 16 big-endian block words into the schedule.
func (w *Schedule) load(block *Block) {
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
}

// Expand computes the message schedule of the block one word at a
// time.
func Expand(w *Schedule, block *Block) {
	w.load(block)
	for t := 16; t < Rounds; t++ {
		w[t] = bits.RotateLeft32(w[t-3]^w[t-8]^w[t-14]^w[t-16], 1)
	}
}

// expandGrouped computes the message schedule four words at a time.
// It produces the same words as Expand.
func expandGrouped(w *Schedule, block *Block) {
	w.load(block)
	for t := 16; t < Rounds; t += 4 {
		b0 := lanes(w[t-16 : t-12])
		b1 := lanes(w[t-12 : t-8])
		b2 := lanes(w[t-8 : t-4])
		b3 := lanes(w[t-4 : t])

		n := msg2(xor4(msg1(b0, b1), b2), b3)
		copy(w[t:t+4], n[:])
	}
}

// msg1 combines the words t-16 and t-14 of the next four schedule
// words.
func msg1(b0, b1 lanes) lanes {
	return lanes{
		b0[0] ^ b0[2],
		b0[1] ^ b0[3],
		b0[2] ^ b1[0],
		b0[3] ^ b1[1],
	}
}

// msg2 folds in the words t-3 and rotates. The last lane depends on
// the first lane of the same group.
func msg2(x, b3 lanes) lanes {
	var n lanes
	n[0] = bits.RotateLeft32(x[0]^b3[1], 1)
	n[1] = bits.RotateLeft32(x[1]^b3[2], 1)
	n[2] = bits.RotateLeft32(x[2]^b3[3], 1)
	n[3] = bits.RotateLeft32(x[3]^n[0], 1)
	return n
}

func xor4(a, b lanes) lanes {
	return lanes{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}
