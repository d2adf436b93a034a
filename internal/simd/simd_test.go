package simd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var sizes = []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 33, 100}

func ramp(n int) []complex64 {
	out := make([]complex64, n)
	for i := range out {
		out[i] = complex(float32(i), float32(n-i)*0.5)
	}
	return out
}

func TestScaleC64(t *testing.T) {
	for _, n := range sizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			x := ramp(n)
			want := make([]complex64, n)
			s := complex64(complex(0.5, 0.25))
			for i, v := range x {
				want[i] = v * s
			}

			ScaleC64(x, s)

			assert.Equal(t, want, x)
		})
	}
}

func TestScaleC64To(t *testing.T) {
	x := []complex64{1 + 1i, 2 + 2i, 3, 4i, -1}
	dst := make([]complex64, len(x))

	ScaleC64To(dst, x, 2)

	assert.Equal(t, []complex64{2 + 2i, 4 + 4i, 6, 8i, -2}, dst)
	assert.Equal(t, complex64(1+1i), x[0], "source must be untouched")
}

func TestAxpbC64To(t *testing.T) {
	for _, n := range sizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			x := ramp(n)
			a := complex64(2)
			b := complex64(complex(1, -1))
			want := make([]complex64, n)
			for i, v := range x {
				want[i] = a*v + b
			}

			dst := make([]complex64, n)
			AxpbC64To(dst, x, a, b)
			assert.Equal(t, want, dst)

			// Aliased destination
			AxpbC64To(x, x, a, b)
			assert.Equal(t, want, x)
		})
	}
}

func TestMulC64To(t *testing.T) {
	for _, n := range sizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			x := ramp(n)
			y := ramp(n)
			for i := range y {
				y[i] = complex(imag(y[i]), real(y[i]))
			}
			want := make([]complex64, n)
			for i := range x {
				want[i] = x[i] * y[i]
			}

			dst := make([]complex64, n)
			MulC64To(dst, x, y)
			assert.Equal(t, want, dst)
		})
	}
}

func TestFillC64(t *testing.T) {
	dst := make([]complex64, 5)
	FillC64(dst, 1-1i)
	for i, v := range dst {
		assert.Equal(t, complex64(1-1i), v, "index %d", i)
	}
}

func TestDotuC64(t *testing.T) {
	x := []complex64{1 + 1i, 2, 3i, 1, 1}
	y := []complex64{1 - 1i, 2, 3i, 0, 2}
	// (1+1i)(1-1i) = 2, 2*2 = 4, 3i*3i = -9, 0, 2
	assert.Equal(t, complex64(-1), DotuC64(x, y))
	assert.Equal(t, complex64(0), DotuC64(nil, nil))
}

// Benchmarks

func BenchmarkScaleC64(b *testing.B) {
	x := ramp(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ScaleC64(x, 1)
	}
}

func BenchmarkAxpbC64To(b *testing.B) {
	x := ramp(1024)
	dst := make([]complex64, len(x))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AxpbC64To(dst, x, 2, 1-1i)
	}
}

func BenchmarkMulC64To(b *testing.B) {
	x := ramp(1024)
	y := ramp(1024)
	dst := make([]complex64, len(x))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MulC64To(dst, x, y)
	}
}
