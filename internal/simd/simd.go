package simd

// Loops in this package do not validate their operands. Every slice passed
// alongside x must be at least len(x) long; callers check lengths first.

// ScaleC64 performs x *= s for complex64 vectors
func ScaleC64(x []complex64, s complex64) {
	// Unrolled loop for better pipelining
	i := 0
	for ; i <= len(x)-4; i += 4 {
		x[i] *= s
		x[i+1] *= s
		x[i+2] *= s
		x[i+3] *= s
	}
	// Handle remainder
	for ; i < len(x); i++ {
		x[i] *= s
	}
}

// ScaleC64To performs dst = x * s for complex64 vectors
func ScaleC64To(dst, x []complex64, s complex64) {
	i := 0
	for ; i <= len(x)-4; i += 4 {
		dst[i] = x[i] * s
		dst[i+1] = x[i+1] * s
		dst[i+2] = x[i+2] * s
		dst[i+3] = x[i+3] * s
	}
	for ; i < len(x); i++ {
		dst[i] = x[i] * s
	}
}

// AxpbC64To performs dst = a*x + b for complex64 vectors.
// dst may be x itself.
func AxpbC64To(dst, x []complex64, a, b complex64) {
	i := 0
	for ; i <= len(x)-4; i += 4 {
		dst[i] = a*x[i] + b
		dst[i+1] = a*x[i+1] + b
		dst[i+2] = a*x[i+2] + b
		dst[i+3] = a*x[i+3] + b
	}
	for ; i < len(x); i++ {
		dst[i] = a*x[i] + b
	}
}

// FillC64 sets every element of dst to v
func FillC64(dst []complex64, v complex64) {
	for i := range dst {
		dst[i] = v
	}
}

// MulC64To performs the elementwise product dst = x * y
func MulC64To(dst, x, y []complex64) {
	i := 0
	for ; i <= len(x)-4; i += 4 {
		dst[i] = x[i] * y[i]
		dst[i+1] = x[i+1] * y[i+1]
		dst[i+2] = x[i+2] * y[i+2]
		dst[i+3] = x[i+3] * y[i+3]
	}
	for ; i < len(x); i++ {
		dst[i] = x[i] * y[i]
	}
}

// DotuC64 computes the unconjugated dot product sum(x[i] * y[i])
func DotuC64(x, y []complex64) complex64 {
	var sum complex64
	i := 0
	for ; i <= len(x)-4; i += 4 {
		sum += x[i] * y[i]
		sum += x[i+1] * y[i+1]
		sum += x[i+2] * y[i+2]
		sum += x[i+3] * y[i+3]
	}
	for ; i < len(x); i++ {
		sum += x[i] * y[i]
	}
	return sum
}
