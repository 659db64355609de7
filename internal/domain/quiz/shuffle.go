package quiz

import "math/rand/v2"

// Shuffle devolve uma permutação uniforme de items (Fisher-Yates) sem alterar o original.
// Com r nil usa a fonte global de math/rand/v2.
func Shuffle[T any](items []T, r *rand.Rand) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)

	for i := len(shuffled) - 1; i > 0; i-- {
		var j int
		if r != nil {
			j = r.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}
