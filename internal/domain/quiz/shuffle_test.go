package quiz_test

import (
	"math/rand/v2"
	"sort"
	"testing"

	"satsang/internal/domain/quiz"

	"github.com/stretchr/testify/require"
)

func TestShuffle_IsPermutation(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	input := []int{5, 3, 3, 9, 1, 0, 7}
	original := append([]int(nil), input...)

	got := quiz.Shuffle(input, r)

	require.Len(t, got, len(input))
	require.ElementsMatch(t, input, got)
	require.Equal(t, original, input, "a entrada não deve ser alterada")
}

func TestShuffle_EmptyAndSingle(t *testing.T) {
	require.Empty(t, quiz.Shuffle([]string{}, nil))
	require.Equal(t, []string{"x"}, quiz.Shuffle([]string{"x"}, nil))

	in := []string{"x"}
	out := quiz.Shuffle(in, nil)
	out[0] = "y"
	require.Equal(t, "x", in[0], "deve devolver uma cópia")
}

func TestShuffle_NilSourceStillPermutes(t *testing.T) {
	input := []string{"a", "b", "c", "d"}
	got := quiz.Shuffle(input, nil)

	sorted := append([]string(nil), got...)
	sort.Strings(sorted)
	require.Equal(t, []string{"a", "b", "c", "d"}, sorted)
}

// Cada elemento deve ocupar cada posição com frequência aproximada de 1/n.
func TestShuffle_Uniformity(t *testing.T) {
	const (
		n      = 4
		trials = 40000
	)
	r := rand.New(rand.NewPCG(42, 7))
	input := []int{0, 1, 2, 3}

	var counts [n][n]int
	for i := 0; i < trials; i++ {
		out := quiz.Shuffle(input, r)
		for pos, v := range out {
			counts[v][pos]++
		}
	}

	expected := float64(trials) / n
	for v := 0; v < n; v++ {
		for pos := 0; pos < n; pos++ {
			require.InDelta(t, expected, float64(counts[v][pos]), expected*0.1,
				"elemento %d na posição %d", v, pos)
		}
	}
}
