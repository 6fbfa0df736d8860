// Package subsets enumerates k-element subsets of an index range in
// lexicographic order. Both the scoring engine (fifteens, pairs) and the
// discard search depend on this order for deterministic tie-breaking.
package subsets

import "gonum.org/v1/gonum/stat/combin"

// Count returns C(n, k).
func Count(n, k int) int {
	return combin.Binomial(n, k)
}

// Each calls visit with every k-subset of {0..n-1}, as sorted index
// slices in lexicographic order. The slice is reused between calls;
// visit must copy it if it needs to keep it. Each invocation is
// independent and restartable.
func Each(n, k int, visit func(idx []int)) {
	if k < 0 || k > n {
		return
	}
	if k == 0 {
		visit(nil)
		return
	}
	gen := combin.NewCombinationGenerator(n, k)
	idx := make([]int, k)
	for gen.Next() {
		gen.Combination(idx)
		visit(idx)
	}
}

// EachUpTo calls visit with every subset of {0..n-1} of size 1 through
// maxK, smaller sizes first, lexicographic within a size.
func EachUpTo(n, maxK int, visit func(idx []int)) {
	if maxK > n {
		maxK = n
	}
	for k := 1; k <= maxK; k++ {
		Each(n, k, visit)
	}
}

// Pick copies the items selected by idx into dst, growing it as needed,
// and returns the result.
func Pick[T any](items []T, idx []int, dst []T) []T {
	dst = dst[:0]
	for _, i := range idx {
		dst = append(dst, items[i])
	}
	return dst
}
