package cvec

import (
	"github.com/23skdu/longbow-cvec/internal/simd"
)

var std = New(nil)

// ScaleInPlace multiplies every element of x by s, in place.
func ScaleInPlace(x []complex64, s complex64) {
	std.ScaleInPlace(x, s)
}

// ScaleInto writes x[i] * s into dst.
func ScaleInto(dst, x []complex64, s complex64) error {
	return std.ScaleInto(dst, x, s)
}

// Axpb returns a new vector y with y[i] = a*x[i] + b.
func Axpb(x []complex64, a, b complex64) []complex64 {
	return std.Axpb(x, a, b)
}

// AxpbInto writes a*x[i] + b into dst.
func AxpbInto(dst, x []complex64, a, b complex64) error {
	return std.AxpbInto(dst, x, a, b)
}

// Mul returns the elementwise product of x and y.
func Mul(x, y []complex64) ([]complex64, error) {
	return std.Mul(x, y)
}

// MulInto writes the elementwise product of x and y into dst.
func MulInto(dst, x, y []complex64) error {
	return std.MulInto(dst, x, y)
}

// Fill returns a vector of n copies of v.
func Fill(n int, v complex64) []complex64 {
	out := make([]complex64, n)
	simd.FillC64(out, v)
	return out
}

// Ones returns a vector of n copies of 1+0i.
func Ones(n int) []complex64 {
	return Fill(n, 1)
}
