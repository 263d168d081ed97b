package matching

import "sort"

type Ranked[T any] struct {
	Item   T
	Result Result
}

// RankByMatch scores every item and orders them by descending score.
// Items with equal scores keep their input order.
func RankByMatch[T any](items []T, extractRequired func(T) []string, candidate []string) []Ranked[T] {
	out := make([]Ranked[T], 0, len(items))
	if extractRequired == nil {
		return out
	}

	for _, it := range items {
		out = append(out, Ranked[T]{Item: it, Result: Score(extractRequired(it), candidate)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Result.Score > out[j].Result.Score
	})
	return out
}
