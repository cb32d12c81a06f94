//
// state.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/markkurossi/sha1block/sha1block"
)

// InitialState is the SHA-1 initial state.
var InitialState = sha1block.State{
	0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476, 0xC3D2E1F0,
}

// ParseState parses a state from 40 hex digits, h0 first.
func ParseState(s string) (sha1block.State, error) {
	var state sha1block.State

	data, err := hex.DecodeString(s)
	if err != nil {
		return state, fmt.Errorf("invalid state: %w", err)
	}
	if len(data) != sha1block.StateWords*4 {
		return state, fmt.Errorf("invalid state length: %d", len(data))
	}
	for i := range state {
		state[i] = binary.BigEndian.Uint32(data[i*4:])
	}
	return state, nil
}

// FormatState formats the state as 40 hex digits, h0 first.
func FormatState(state sha1block.State) string {
	var data []byte
	for _, h := range state {
		data = binary.BigEndian.AppendUint32(data, h)
	}
	return hex.EncodeToString(data)
}

// ParseBlocks decodes hex arguments into blocks. The concatenated
// arguments must be a whole number of blocks.
func ParseBlocks(args []string) ([]sha1block.Block, error) {
	var data []byte
	for _, arg := range args {
		d, err := hex.DecodeString(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid block data: %w", err)
		}
		data = append(data, d...)
	}
	if len(data)%sha1block.BlockSize != 0 {
		return nil, fmt.Errorf("%d bytes: %w", len(data),
			sha1block.ErrMalformedInput)
	}
	blocks := make([]sha1block.Block, len(data)/sha1block.BlockSize)
	for i := range blocks {
		copy(blocks[i][:], data[i*sha1block.BlockSize:])
	}
	return blocks, nil
}

// CheckBlockCount verifies the number of blocks to generate.
func CheckBlockCount(n int) error {
	if n < 0 {
		return fmt.Errorf("invalid block count: %d", n)
	}
	return nil
}
