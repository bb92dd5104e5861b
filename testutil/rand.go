// Package testutil holds helpers shared by package tests.
package testutil

import "fmt"

// ScriptedRand replays fixed values instead of random ones.
// Intn values are reduced modulo n so scripts stay valid for any bound.
type ScriptedRand struct {
	Ints   []int
	Floats []float64

	intPos   int
	floatPos int
}

// Intn returns the next scripted int
func (r *ScriptedRand) Intn(n int) int {
	if r.intPos >= len(r.Ints) {
		panic(fmt.Sprintf("scripted rand: Intn(%d) called after %d ints", n, len(r.Ints)))
	}
	v := r.Ints[r.intPos]
	r.intPos++
	return v % n
}

// Float64 returns the next scripted float
func (r *ScriptedRand) Float64() float64 {
	if r.floatPos >= len(r.Floats) {
		panic(fmt.Sprintf("scripted rand: Float64 called after %d floats", len(r.Floats)))
	}
	v := r.Floats[r.floatPos]
	r.floatPos++
	return v
}

// IntsUsed returns how many ints were consumed
func (r *ScriptedRand) IntsUsed() int { return r.intPos }

// FloatsUsed returns how many floats were consumed
func (r *ScriptedRand) FloatsUsed() int { return r.floatPos }
