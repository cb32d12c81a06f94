//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sha1block_test

import (
	"sync"
	"testing"

	"github.com/markkurossi/sha1block/blockgen"
	"github.com/markkurossi/sha1block/env"
	"github.com/markkurossi/sha1block/sha1block"
)

// TestParallelStreams compresses independent streams concurrently and
// compares them with a single-threaded run.
func TestParallelStreams(t *testing.T) {
	const streams = 8

	gen, err := blockgen.New(&env.Config{Seed: []byte("streams")})
	if err != nil {
		t.Fatalf("blockgen.New: %v", err)
	}
	var inputs [streams][]sha1block.Block
	var states, expected [streams]sha1block.State
	for i := range inputs {
		inputs[i] = gen.Blocks(16)
		states[i] = gen.State()
		expected[i] = states[i]
		sha1block.Compress(&expected[i], inputs[i])
	}

	var wg sync.WaitGroup
	for i := range inputs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sha1block.Compress(&states[i], inputs[i])
		}(i)
	}
	wg.Wait()

	for i := range states {
		if states[i] != expected[i] {
			t.Errorf("stream %d: got %08x, expected %08x",
				i, states[i], expected[i])
		}
	}
}

// TestTraceMatchesCompress checks that the step trace ends in the
// same state as Compress for generated blocks.
func TestTraceMatchesCompress(t *testing.T) {
	gen, err := blockgen.New(&env.Config{Seed: []byte("trace")})
	if err != nil {
		t.Fatalf("blockgen.New: %v", err)
	}
	for i := 0; i < 16; i++ {
		state := gen.State()
		var block sha1block.Block
		gen.Block(&block)

		traced := sha1block.Trace(state, &block,
			func(int, sha1block.Registers) {})
		sha1block.Compress(&state, []sha1block.Block{block})
		if traced != state {
			t.Fatalf("block %d: trace %08x, compress %08x", i, traced, state)
		}
	}
}
