//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package sha1block implements the SHA-1 block compression function:
// the permutation that folds 64-byte message blocks into the 160-bit
// running state. Padding, length framing, and digest serialization
// belong to the caller, which supplies whole blocks and keeps the
// state between calls.
//
// Example:
//
//	state := sha1block.State{
//		0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476, 0xC3D2E1F0,
//	}
//	sha1block.Compress(&state, blocks)
//
// SHA-1 is cryptographically broken and must not be used for secure
// applications. This package reproduces its bit behavior for
// compatibility and testing.
package sha1block
