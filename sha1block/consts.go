//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sha1block

// BlockSize is the size of a SHA-1 message block in bytes.
const BlockSize = 64

// StateWords is the number of 32-bit words in the running state.
const StateWords = 5

const (
	// Rounds is the number of steps applied to each block.
	Rounds = 80

	// groupSize is the number of steps sharing one boolean function
	// and round constant.
	groupSize = 20
)

// Round constants, one per 20-step group.
const (
	K0 = 0x5A827999
	K1 = 0x6ED9EBA1
	K2 = 0x8F1BBCDC
	K3 = 0xCA62C1D6
)

var constants = [4]uint32{K0, K1, K2, K3}

// Constant returns the round constant for the step t.
func Constant(t int) uint32 {
	return constants[t/groupSize]
}
