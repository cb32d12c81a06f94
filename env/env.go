//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package env implements global environment for the SHA-1 block
// tools.
package env

import (
	"crypto/rand"
	"io"
)

// Config defines the global configuration for block generation and
// reporting. Config must not be modified after being passed to any
// module. It is safe for concurrent use by multiple modules as they
// do not modify it.
type Config struct {
	// Rand is the entropy source for random block keys. If nil,
	// crypto/rand is used.
	Rand io.Reader

	// Seed makes block generation deterministic. An empty seed
	// selects a random key from Rand.
	Seed []byte

	// Verbose enables progress output in the tools.
	Verbose bool
}

// GetRandom returns the source of entropy for random block keys.
func (config *Config) GetRandom() io.Reader {
	if config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// Deterministic tests if the configuration produces reproducible
// blocks.
func (config *Config) Deterministic() bool {
	return len(config.Seed) > 0
}
