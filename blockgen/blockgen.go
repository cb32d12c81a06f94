//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package blockgen generates SHA-1 message blocks and states from a
// ChaCha20 keystream. Seeded generators are reproducible across runs
// and platforms.
package blockgen

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"

	"github.com/markkurossi/sha1block/env"
	"github.com/markkurossi/sha1block/sha1block"
)

// Generator produces blocks from a keystream. A Generator is not safe
// for concurrent use.
type Generator struct {
	stream *chacha20.Cipher
	zero   [sha1block.BlockSize]byte
}

// New creates a generator. If the config has a seed, the keystream key
// is derived from it; otherwise the key is read from the config's
// random source.
func New(config *env.Config) (*Generator, error) {
	var key [chacha20.KeySize]byte

	if config.Deterministic() {
		key = sha256.Sum256(config.Seed)
	} else {
		_, err := io.ReadFull(config.GetRandom(), key[:])
		if err != nil {
			return nil, fmt.Errorf("blockgen: random key: %w", err)
		}
	}
	var nonce [chacha20.NonceSize]byte

	stream, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, err
	}
	return &Generator{
		stream: stream,
	}, nil
}

// Block fills the block with the next keystream bytes.
func (g *Generator) Block(block *sha1block.Block) {
	g.stream.XORKeyStream(block[:], g.zero[:])
}

// Blocks returns n new blocks.
func (g *Generator) Blocks(n int) []sha1block.Block {
	blocks := make([]sha1block.Block, n)
	for i := range blocks {
		g.Block(&blocks[i])
	}
	return blocks
}

// State returns a state with keystream words.
func (g *Generator) State() sha1block.State {
	var buf [sha1block.StateWords * 4]byte
	g.stream.XORKeyStream(buf[:], buf[:])

	var state sha1block.State
	for i := range state {
		state[i] = binary.BigEndian.Uint32(buf[i*4:])
	}
	return state
}
