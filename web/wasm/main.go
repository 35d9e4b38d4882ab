//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-bench/internal/wasmdemo"
	"github.com/cwbudde/algo-bench/mandel"
)

var (
	engine *wasmdemo.Engine
	funcs  []js.Func
)

// putcWriter forwards bytes to a host-supplied putc(fd, ch) callback,
// the output primitive the browser shell provides.
type putcWriter struct {
	putc js.Value
}

func (w putcWriter) Write(p []byte) (int, error) {
	for _, b := range p {
		w.putc.Invoke(0, int(b))
	}
	return len(p), nil
}

func main() {
	api := js.Global().Get("Object").New()

	api.Set("init", export(func(args []js.Value) any {
		putc := js.Null()
		if len(args) > 0 {
			putc = args[0]
		}
		e, err := wasmdemo.NewEngine(putcWriter{putc: putc})
		if err != nil {
			return err.Error()
		}
		engine = e
		return js.Null()
	}))

	api.Set("hello", export(func(_ []js.Value) any {
		if engine == nil {
			return js.Null()
		}
		if err := engine.Hello(); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("turnOn", export(func(_ []js.Value) any {
		if engine != nil {
			engine.TurnOn()
		}
		return js.Null()
	}))

	api.Set("turnOff", export(func(_ []js.Value) any {
		if engine != nil {
			engine.TurnOff()
		}
		return js.Null()
	}))

	api.Set("isLit", export(func(_ []js.Value) any {
		return engine != nil && engine.IsLit()
	}))

	api.Set("iterateMandelbrot", export(func(args []js.Value) any {
		if engine == nil || len(args) < 3 {
			return 0
		}
		cx := args[0].Float()
		cy := args[1].Float()
		maxIters := uint32(args[2].Int())
		return int(engine.Iterate(cx, cy, maxIters))
	}))

	api.Set("renderCounts", export(func(args []js.Value) any {
		if engine == nil || len(args) < 3 {
			return js.Global().Get("Uint32Array").New(0)
		}
		r := mandel.ClassicRegion()
		if len(args) >= 7 {
			r = mandel.Region{
				MinX: args[3].Float(),
				MinY: args[4].Float(),
				MaxX: args[5].Float(),
				MaxY: args[6].Float(),
			}
		}
		width := args[0].Int()
		height := args[1].Int()
		maxIters := uint32(args[2].Int())

		counts, err := engine.RenderCounts(r, width, height, maxIters)
		if err != nil {
			return err.Error()
		}

		arr := js.Global().Get("Uint32Array").New(len(counts))
		for i, n := range counts {
			arr.SetIndex(i, n)
		}
		return arr
	}))

	for _, name := range []string{"i8", "i16", "i32", "i64", "f32", "f64"} {
		kind := name
		api.Set("process_"+kind, export(func(_ []js.Value) any {
			if engine == nil {
				return js.Null()
			}
			if err := engine.Process(kind); err != nil {
				return err.Error()
			}
			return js.Null()
		}))
	}

	api.Set("processAll", export(func(_ []js.Value) any {
		if engine != nil {
			engine.ProcessAll()
		}
		return js.Null()
	}))

	js.Global().Set("AlgoBenchDemo", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
