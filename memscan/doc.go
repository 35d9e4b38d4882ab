// Package memscan provides fixed-size typed buffers with one sequential
// update pass per element type, intended as throughput-measurement targets.
//
// A [Harness] owns six buffers of [Items] elements each, one per numeric
// kind (int8, int16, int32, int64, float32, float64). Each ProcessXX
// method walks its buffer once in ascending index order and adds the index
// to every element in the buffer's own arithmetic: integers wrap silently
// at their bit width, floats round as usual. [Harness.ProcessAll] runs all
// six passes in a fixed order.
//
// The six loops are deliberately kept separate and uninlined rather than
// folded into one generic loop: the point of the package is comparable
// per-type timing of an uninlined sequential scan, and a shared generic
// body would let the compiler blur exactly the differences being measured.
//
// A Harness is not safe for concurrent use. Each buffer is written by its
// own pass only; callers that want to drive passes from several goroutines
// must serialize access externally.
//
// # Usage
//
//	h := memscan.New()
//	h.ProcessAll()
//	fmt.Println(h.F64()[3]) // 3
package memscan
