// Package mandel computes Mandelbrot escape iterations.
//
// The core operation is [Iterate]: count the steps of the quadratic
// recurrence z ← z² + c before |z| exceeds 2, capped at a caller-supplied
// maximum. The escape test compares |z|² against 4.0, avoiding a square
// root per step. The function is deterministic, allocation-free and total:
// every finite or non-finite input pair yields a count in [0, maxIters]
// by plain IEEE comparison rules.
//
// [RenderCounts] evaluates Iterate over a rectangular grid of sample
// points, producing the row-major escape-count field used for plotting.
//
// # Usage
//
//	n := mandel.Iterate(-0.5, 0.6, 1000)
//	inSet := n == 1000
package mandel
