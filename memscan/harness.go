package memscan

import "fmt"

// Items is the element count of every buffer in a Harness.
const Items = 1 << 20

// Kind identifies one of the six typed buffers.
type Kind int

const (
	KindI8 Kind = iota
	KindI16
	KindI32
	KindI64
	KindF32
	KindF64
)

// Kinds returns all kinds in the canonical processing order.
func Kinds() []Kind {
	return []Kind{KindI8, KindI16, KindI32, KindI64, KindF32, KindF64}
}

// String returns the short name of the kind ("i8", "f64", ...).
func (k Kind) String() string {
	switch k {
	case KindI8:
		return "i8"
	case KindI16:
		return "i16"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ElemBytes returns the element size of the kind's buffer in bytes.
func (k Kind) ElemBytes() int {
	switch k {
	case KindI8:
		return 1
	case KindI16:
		return 2
	case KindI32, KindF32:
		return 4
	case KindI64, KindF64:
		return 8
	default:
		return 0
	}
}

// Valid reports whether k names one of the six buffers.
func (k Kind) Valid() bool {
	return k >= KindI8 && k <= KindF64
}

// ParseKind maps a short name ("i8", "f64", ...) to its Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("memscan: unknown kind %q", name)
}

// Harness owns the six typed buffers. All buffers are allocated once by
// [New], zero-valued, and keep their length for the harness lifetime.
//
// A Harness is not safe for concurrent use.
type Harness struct {
	i8  []int8
	i16 []int16
	i32 []int32
	i64 []int64
	f32 []float32
	f64 []float64
}

// New returns a Harness with all six buffers allocated and zeroed.
func New() *Harness {
	return &Harness{
		i8:  make([]int8, Items),
		i16: make([]int16, Items),
		i32: make([]int32, Items),
		i64: make([]int64, Items),
		f32: make([]float32, Items),
		f64: make([]float64, Items),
	}
}

// ProcessI8 adds the index to every int8 element, wrapping at 8 bits.
//
//go:noinline
func (h *Harness) ProcessI8() {
	buf := h.i8
	for i := range buf {
		buf[i] += int8(i)
	}
}

// ProcessI16 adds the index to every int16 element, wrapping at 16 bits.
//
//go:noinline
func (h *Harness) ProcessI16() {
	buf := h.i16
	for i := range buf {
		buf[i] += int16(i)
	}
}

// ProcessI32 adds the index to every int32 element, wrapping at 32 bits.
//
//go:noinline
func (h *Harness) ProcessI32() {
	buf := h.i32
	for i := range buf {
		buf[i] += int32(i)
	}
}

// ProcessI64 adds the index to every int64 element.
//
//go:noinline
func (h *Harness) ProcessI64() {
	buf := h.i64
	for i := range buf {
		buf[i] += int64(i)
	}
}

// ProcessF32 adds the index to every float32 element with single-precision
// rounding.
//
//go:noinline
func (h *Harness) ProcessF32() {
	buf := h.f32
	for i := range buf {
		buf[i] += float32(i)
	}
}

// ProcessF64 adds the index to every float64 element.
//
//go:noinline
func (h *Harness) ProcessF64() {
	buf := h.f64
	for i := range buf {
		buf[i] += float64(i)
	}
}

// ProcessAll runs all six passes in the canonical order:
// i8, i16, i32, i64, f32, f64. Each buffer is touched exactly once.
func (h *Harness) ProcessAll() {
	h.ProcessI8()
	h.ProcessI16()
	h.ProcessI32()
	h.ProcessI64()
	h.ProcessF32()
	h.ProcessF64()
}

// Process runs the pass for the given kind.
func (h *Harness) Process(k Kind) error {
	switch k {
	case KindI8:
		h.ProcessI8()
	case KindI16:
		h.ProcessI16()
	case KindI32:
		h.ProcessI32()
	case KindI64:
		h.ProcessI64()
	case KindF32:
		h.ProcessF32()
	case KindF64:
		h.ProcessF64()
	default:
		return fmt.Errorf("memscan: unknown kind %q", k)
	}
	return nil
}

// Reset zeroes all six buffers, restoring the freshly allocated state.
func (h *Harness) Reset() {
	clear(h.i8)
	clear(h.i16)
	clear(h.i32)
	clear(h.i64)
	clear(h.f32)
	clear(h.f64)
}

// I8 returns the int8 buffer. The slice aliases harness-owned memory;
// mutating it outside ProcessI8 invalidates subsequent pass results.
func (h *Harness) I8() []int8 { return h.i8 }

// I16 returns the int16 buffer. Same aliasing caveat as [Harness.I8].
func (h *Harness) I16() []int16 { return h.i16 }

// I32 returns the int32 buffer. Same aliasing caveat as [Harness.I8].
func (h *Harness) I32() []int32 { return h.i32 }

// I64 returns the int64 buffer. Same aliasing caveat as [Harness.I8].
func (h *Harness) I64() []int64 { return h.i64 }

// F32 returns the float32 buffer. Same aliasing caveat as [Harness.I8].
func (h *Harness) F32() []float32 { return h.f32 }

// F64 returns the float64 buffer. Same aliasing caveat as [Harness.I8].
func (h *Harness) F64() []float64 { return h.f64 }
