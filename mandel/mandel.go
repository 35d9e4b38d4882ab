package mandel

// Iterate returns the number of iterations of z ← z² + c, starting from
// z = 0 with c = (cx, cy), before |z|² reaches 4.0, capped at maxIters.
//
// The result is always in [0, maxIters]. A point that never escapes
// within the budget (a set member, as far as the budget can tell)
// returns exactly maxIters.
func Iterate(cx, cy float64, maxIters uint32) uint32 {
	var zx, zy float64
	var i uint32
	for i < maxIters && zx*zx+zy*zy < 4.0 {
		zx, zy = zx*zx-zy*zy+cx, 2*zx*zy+cy
		i++
	}
	return i
}
