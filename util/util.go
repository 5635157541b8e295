package util

import (
	"os"
	"sort"

	"golang.org/x/exp/constraints"
)

// GetKeysSorted returns the map's keys in ascending order so warnings and
// report rows come out in a stable order.
func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func ReadFileOrPanic(path string) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		panic("Couldn't read file: " + err.Error())
	}
	return data
}
