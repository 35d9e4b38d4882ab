// Package wasmdemo bundles the demo state the browser build exposes:
// the scan harness, the escape-time renderer, the light-switch flag and
// the greeting writer.
package wasmdemo

import (
	"fmt"
	"io"

	"github.com/cwbudde/algo-bench/mandel"
	"github.com/cwbudde/algo-bench/memscan"
)

// Greeting is the text Hello emits, one byte at a time plus a newline.
const Greeting = "Hello, world"

// Engine holds the demo state behind the wasm exports.
type Engine struct {
	harness *memscan.Harness
	out     io.Writer
	lit     bool
}

// NewEngine creates an engine writing greetings to out.
func NewEngine(out io.Writer) (*Engine, error) {
	if out == nil {
		return nil, fmt.Errorf("wasmdemo: output writer must not be nil")
	}
	return &Engine{
		harness: memscan.New(),
		out:     out,
	}, nil
}

// Hello writes the greeting byte by byte followed by a newline, matching
// a host that only supplies a single-character output primitive.
func (e *Engine) Hello() error {
	buf := [1]byte{}
	for i := 0; i < len(Greeting); i++ {
		buf[0] = Greeting[i]
		if _, err := e.out.Write(buf[:]); err != nil {
			return fmt.Errorf("wasmdemo: write greeting: %w", err)
		}
	}

	buf[0] = '\n'
	if _, err := e.out.Write(buf[:]); err != nil {
		return fmt.Errorf("wasmdemo: write greeting: %w", err)
	}

	return nil
}

// TurnOn sets the light flag.
func (e *Engine) TurnOn() { e.lit = true }

// TurnOff clears the light flag.
func (e *Engine) TurnOff() { e.lit = false }

// IsLit reports the light flag.
func (e *Engine) IsLit() bool { return e.lit }

// Iterate exposes the Mandelbrot escape count to the host.
func (e *Engine) Iterate(cx, cy float64, maxIters uint32) uint32 {
	return mandel.Iterate(cx, cy, maxIters)
}

// RenderCounts renders the escape-count field of a region for plotting.
func (e *Engine) RenderCounts(r mandel.Region, width, height int, maxIters uint32) ([]uint32, error) {
	if width <= 0 || height <= 0 {
		return nil, mandel.ErrInvalidSize
	}

	dst := make([]uint32, width*height)
	if err := mandel.RenderCounts(dst, r, width, height, maxIters); err != nil {
		return nil, err
	}
	return dst, nil
}

// Process runs one scan pass of the named kind ("i8" ... "f64").
func (e *Engine) Process(name string) error {
	k, err := memscan.ParseKind(name)
	if err != nil {
		return err
	}
	return e.harness.Process(k)
}

// ProcessAll runs all six scan passes in canonical order.
func (e *Engine) ProcessAll() {
	e.harness.ProcessAll()
}

// Harness returns the engine's scan harness.
func (e *Engine) Harness() *memscan.Harness {
	return e.harness
}
