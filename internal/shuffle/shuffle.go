package shuffle

// Source yields uniform values in [0, 1). *math/rand/v2.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Slice permutes s in place with a Durstenfeld backward pass.
func Slice[T any](src Source, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := Index(src, i+1)
		s[i], s[j] = s[j], s[i]
	}
}

// Copy returns a shuffled copy of s, leaving s untouched.
func Copy[T any](src Source, s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	Slice(src, out)
	return out
}

// Index returns a uniform index in [0, n). n must be positive.
func Index(src Source, n int) int {
	j := int(src.Float64() * float64(n))
	// Guards against a source that returns exactly 1.0.
	if j >= n {
		j = n - 1
	}
	return j
}
