//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sha1block

// BoolFunc is one of the three SHA-1 boolean functions.
type BoolFunc func(x, y, z uint32) uint32

// Choose selects bits from y where x is set and from z elsewhere.
func Choose(x, y, z uint32) uint32 {
	return z ^ (x & (y ^ z))
}

// Parity returns the bitwise parity of its arguments.
func Parity(x, y, z uint32) uint32 {
	return x ^ y ^ z
}

// Majority returns the bitwise majority of its arguments.
func Majority(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}

var functions = [4]BoolFunc{Choose, Parity, Majority, Parity}

// Function returns the boolean function for the step t.
func Function(t int) BoolFunc {
	return functions[t/groupSize]
}
