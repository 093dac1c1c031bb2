// Package cuboids decomposes voxelized grains into sets
// of disjoint axis-aligned cuboids.
package cuboids

import (
	"sort"

	"github.com/unixpickle/essentials"
)

// A SizeTuple stores extents along a prefix of the grid
// axes, such as (depthZ, breadthY) within one layer or
// (extentX, depthZ, breadthY) across layers.
type SizeTuple []int

// Min gets the smallest component.
func (s SizeTuple) Min() int {
	return essentials.MinInt(s...)
}

// Volume gets the product of the components.
func (s SizeTuple) Volume() int {
	res := 1
	for _, x := range s {
		res *= x
	}
	return res
}

// Less compares tuples lexicographically.
func (s SizeTuple) Less(other SizeTuple) bool {
	for i, x := range s {
		if x != other[i] {
			return x < other[i]
		}
	}
	return false
}

// Dominates checks if every component of a is less than
// or equal to the corresponding component of b.
//
// The tuples must have the same length.
func Dominates(a, b SizeTuple) bool {
	for i, x := range a {
		if x > b[i] {
			return false
		}
	}
	return true
}

// ReduceFrontier removes dominated tuples from a list of
// candidates.
//
// Candidates are visited in descending order of their
// minimum component, and a candidate is kept unless it is
// dominated by a tuple kept before it. This is greedy, so
// the result is not always the exact Pareto frontier.
//
// The result is sorted lexicographically.
func ReduceFrontier(candidates []SizeTuple) []SizeTuple {
	if len(candidates) == 0 {
		return nil
	}
	sorted := append([]SizeTuple{}, candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Min() > sorted[j].Min()
	})

	kept := []SizeTuple{sorted[0]}
	for _, c := range sorted[1:] {
		if !dominatedByAny(c, kept) {
			kept = append(kept, c)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Less(kept[j])
	})
	return kept
}

func dominatedByAny(t SizeTuple, kept []SizeTuple) bool {
	for _, k := range kept {
		if Dominates(t, k) {
			return true
		}
	}
	return false
}

// RunLengths computes, for every position, the number of
// consecutive true values starting at that position and
// continuing toward the end of the slice.
func RunLengths(bits []bool) []int {
	res := make([]int, len(bits))
	run := 0
	for i := len(bits) - 1; i >= 0; i-- {
		if bits[i] {
			run++
		} else {
			run = 0
		}
		res[i] = run
	}
	return res
}
