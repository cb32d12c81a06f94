//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sha1block

import (
	"errors"
)

// ErrMalformedInput is returned when a byte slice is not a whole
// number of blocks.
var ErrMalformedInput = errors.New("sha1block: malformed input")

// State is the running SHA-1 state h0..h4.
type State [StateWords]uint32

// Block is one padded 64-byte message block.
type Block [BlockSize]byte

// Compress folds the blocks in order into the state.
func Compress(state *State, blocks []Block) {
	var w Schedule
	for i := range blocks {
		state.compress(&blocks[i], &w)
	}
}

// CompressBytes folds the byte slice p into the state. The length of
// p must be a multiple of BlockSize; otherwise the function returns
// ErrMalformedInput and the state is not modified.
func CompressBytes(state *State, p []byte) error {
	if len(p)%BlockSize != 0 {
		return ErrMalformedInput
	}
	var w Schedule
	for ; len(p) > 0; p = p[BlockSize:] {
		state.compress((*Block)(p[:BlockSize]), &w)
	}
	return nil
}

// compress folds one block into the state using the grouped schedule
// and four-step rounds. The schedule w is scratch space.
func (s *State) compress(block *Block, w *Schedule) {
	expandGrouped(w, block)

	a, b, c, d, e := s[0], s[1], s[2], s[3], s[4]

	t := 0
	for ; t < 20; t += 4 {
		a, b, c, d, e = rounds4(a, b, c, d, e, Choose, K0, w[t:t+4])
	}
	for ; t < 40; t += 4 {
		a, b, c, d, e = rounds4(a, b, c, d, e, Parity, K1, w[t:t+4])
	}
	for ; t < 60; t += 4 {
		a, b, c, d, e = rounds4(a, b, c, d, e, Majority, K2, w[t:t+4])
	}
	for ; t < 80; t += 4 {
		a, b, c, d, e = rounds4(a, b, c, d, e, Parity, K3, w[t:t+4])
	}

	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += d
	s[4] += e
}

// compressSequential is the plain form of Compress: the full schedule
// followed by 80 single steps.
func compressSequential(state *State, blocks []Block) {
	var w Schedule
	var r Registers

	for i := range blocks {
		Expand(&w, &blocks[i])
		r.Load(state)
		for t := 0; t < Rounds; t++ {
			r.Step(t, w[t])
		}
		state.add(&r)
	}
}

func (s *State) add(r *Registers) {
	s[0] += r.A
	s[1] += r.B
	s[2] += r.C
	s[3] += r.D
	s[4] += r.E
}

// Trace replays the compression of one block and calls fn with the
// registers after each step. The argument state is not modified; the
// function returns the state after the block.
func Trace(state State, block *Block, fn func(t int, r Registers)) State {
	var w Schedule
	var r Registers

	Expand(&w, block)
	r.Load(&state)
	for t := 0; t < Rounds; t++ {
		r.Step(t, w[t])
		fn(t, r)
	}
	state.add(&r)
	return state
}
