package shuffle

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource replays a fixed sequence of values.
type fixedSource struct {
	vals []float64
	pos  int
}

func (f *fixedSource) Float64() float64 {
	v := f.vals[f.pos%len(f.vals)]
	f.pos++
	return v
}

func TestSlice_Permutation(t *testing.T) {
	src := rand.New(rand.NewPCG(7, 11))

	for n := 0; n <= 40; n++ {
		in := make([]int, n)
		for i := range in {
			in[i] = i % 5 // repeated elements keep the multiset check honest
		}
		got := slices.Clone(in)
		Slice(src, got)

		require.Len(t, got, n)
		slices.Sort(got)
		want := slices.Clone(in)
		slices.Sort(want)
		assert.Equal(t, want, got, "n=%d", n)
	}
}

func TestSlice_ShortSequencesUnchanged(t *testing.T) {
	src := &fixedSource{vals: []float64{0.9}}

	var empty []string
	Slice(src, empty)
	assert.Empty(t, empty)

	one := []string{"only"}
	Slice(src, one)
	assert.Equal(t, []string{"only"}, one)
	assert.Equal(t, 0, src.pos, "no random draws for length <= 1")
}

func TestSlice_BackwardPass(t *testing.T) {
	// i=3: j=floor(0*4)=0 -> [d b c a]
	// i=2: j=floor(0.5*3)=1 -> [d c b a]
	// i=1: j=floor(0.99*2)=1 -> unchanged
	src := &fixedSource{vals: []float64{0, 0.5, 0.99}}
	s := []string{"a", "b", "c", "d"}
	Slice(src, s)
	assert.Equal(t, []string{"d", "c", "b", "a"}, s)
}

func TestSlice_DeterministicForSeed(t *testing.T) {
	a := []int{1, 2, 3, 4, 5, 6, 7, 8}
	b := slices.Clone(a)
	Slice(rand.New(rand.NewPCG(1, 2)), a)
	Slice(rand.New(rand.NewPCG(1, 2)), b)
	assert.Equal(t, a, b)
}

func TestSlice_Uniform(t *testing.T) {
	src := rand.New(rand.NewPCG(3, 5))
	counts := make(map[[3]int]int)
	const runs = 60000
	for range runs {
		s := []int{0, 1, 2}
		Slice(src, s)
		counts[[3]int{s[0], s[1], s[2]}]++
	}
	require.Len(t, counts, 6)
	for perm, c := range counts {
		assert.InDelta(t, runs/6, c, runs/6*0.1, "permutation %v", perm)
	}
}

func TestCopy_LeavesInputAlone(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	out := Copy(rand.New(rand.NewPCG(9, 9)), in)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, in)
	assert.ElementsMatch(t, in, out)
}

func TestIndex_Clamp(t *testing.T) {
	assert.Equal(t, 2, Index(&fixedSource{vals: []float64{1.0}}, 3))
	assert.Equal(t, 0, Index(&fixedSource{vals: []float64{0}}, 3))
}
