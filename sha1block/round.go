//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sha1block

import (
	"math/bits"
)

// Registers holds the working registers a, b, c, d, and e.
type Registers struct {
	A, B, C, D, E uint32
}

// Load seeds the registers from the state.
func (r *Registers) Load(state *State) {
	r.A, r.B, r.C, r.D, r.E = state[0], state[1], state[2], state[3], state[4]
}

// Step applies the step t with the schedule word w.
func (r *Registers) Step(t int, w uint32) {
	f := Function(t)(r.B, r.C, r.D)
	tmp := bits.RotateLeft32(r.A, 5) + f + r.E + Constant(t) + w
	r.A, r.B, r.C, r.D, r.E = tmp, r.A, bits.RotateLeft32(r.B, 30), r.C, r.D
}

// rounds4 applies four steps sharing the function f and constant k.
// Instead of moving values between registers, each step writes its
// result into the register that becomes the new a. After four steps
// the roles have shifted by four positions, which the return order
// undoes.
func rounds4(a, b, c, d, e uint32, f BoolFunc, k uint32,
	w []uint32) (uint32, uint32, uint32, uint32, uint32) {

	_ = w[3]

	e += bits.RotateLeft32(a, 5) + f(b, c, d) + k + w[0]
	b = bits.RotateLeft32(b, 30)

	d += bits.RotateLeft32(e, 5) + f(a, b, c) + k + w[1]
	a = bits.RotateLeft32(a, 30)

	c += bits.RotateLeft32(d, 5) + f(e, a, b) + k + w[2]
	e = bits.RotateLeft32(e, 30)

	b += bits.RotateLeft32(c, 5) + f(d, e, a) + k + w[3]
	d = bits.RotateLeft32(d, 30)

	return b, c, d, e, a
}
