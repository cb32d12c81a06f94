//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sha1block

import (
	"encoding/binary"
	"encoding/hex"
	mrand "math/rand"
	"testing"
)

var initState = State{
	0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476, 0xC3D2E1F0,
}

// pad frames the message into SHA-1 blocks: a 1 bit, zero bits until
// 56 bytes mod 64, and the 64-bit message length in bits.
func pad(data []byte) []Block {
	length := uint64(len(data))

	t := 56 - length%64
	if length%64 >= 56 {
		t += 64
	}
	buf := make([]byte, 0, length+t+8)
	buf = append(buf, data...)
	buf = append(buf, 0x80)
	buf = append(buf, make([]byte, t-1)...)
	buf = binary.BigEndian.AppendUint64(buf, length<<3)

	blocks := make([]Block, len(buf)/BlockSize)
	for i := range blocks {
		copy(blocks[i][:], buf[i*BlockSize:])
	}
	return blocks
}

func digest(state State) string {
	var out []byte
	for _, h := range state {
		out = binary.BigEndian.AppendUint32(out, h)
	}
	return hex.EncodeToString(out)
}

func randomBlocks(t testing.TB, rnd *mrand.Rand, n int) []Block {
	t.Helper()

	blocks := make([]Block, n)
	for i := range blocks {
		if _, err := rnd.Read(blocks[i][:]); err != nil {
			t.Fatalf("rand.Read: %v", err)
		}
	}
	return blocks
}

func randomState(rnd *mrand.Rand) State {
	var s State
	for i := range s {
		s[i] = rnd.Uint32()
	}
	return s
}
