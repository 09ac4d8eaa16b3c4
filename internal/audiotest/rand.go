// SPDX-License-Identifier: EPL-2.0

package audiotest

import "fmt"

// Draw records one IntN call made against a ScriptedRand.
type Draw struct {
	N      int // upper bound passed to IntN
	Result int
}

// ScriptedRand replays a fixed sequence of results for IntN and records every
// call. Results are reduced modulo n so a short script stays in range. Once the
// script is exhausted it keeps returning 0.
type ScriptedRand struct {
	script []int
	pos    int
	draws  []Draw
}

// NewScriptedRand creates a ScriptedRand returning results in order.
func NewScriptedRand(results ...int) *ScriptedRand {
	return &ScriptedRand{script: results}
}

func (r *ScriptedRand) IntN(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("audiotest: IntN called with n=%d", n))
	}

	v := 0
	if r.pos < len(r.script) {
		v = r.script[r.pos] % n
		r.pos++
	}
	r.draws = append(r.draws, Draw{N: n, Result: v})
	return v
}

// Draws returns every recorded call in order.
func (r *ScriptedRand) Draws() []Draw {
	return r.draws
}
