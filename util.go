package main

import (
	"crypto/rand"
	"encoding/binary"
	"math"
)

// xorshift64 is a tiny non-crypto PRNG. It lives on the World rather than in
// a package global so each World can be seeded independently in tests.
type xorshift64 struct {
	state uint64
}

// seedFromEntropy seeds the generator from crypto/rand.
func (r *xorshift64) seedFromEntropy() {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	r.state = binary.LittleEndian.Uint64(b)
	if r.state == 0 {
		r.state = 1
	}
}

// Float returns a random float64 in [0, 1)
func (r *xorshift64) Float() float64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	if r.state == 0 {
		r.state = 1
	}
	return float64(r.state%10000) / 10000.0
}

// Distance returns the distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// WrapAngle wraps an angle in degrees to [0, 360)
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
