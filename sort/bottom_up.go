package algorithm

import "golang.org/x/exp/constraints"

const blockSize = 20

// BottomUp sorts seq without recursion: blocks of blockSize elements are
// insertion sorted, then adjacent runs are merged with doubling width.
func BottomUp[E constraints.Ordered](seq []E) {
	BottomUpFunc(seq, compare[E])
}

func BottomUpFunc[E any](seq []E, cmp func(a, b E) int) {
	n := len(seq)
	for a := 0; a < n; a += blockSize {
		insertSort(seq, a, min(a+blockSize, n)-1, cmp)
	}
	if n <= blockSize {
		return
	}

	tmp := make([]E, n)
	for width := blockSize; width < n; width *= 2 {
		for left := 0; left+width < n; left += 2 * width {
			mid := left + width - 1
			right := min(left+2*width-1, n-1)
			mergeRuns(seq, tmp, left, mid, right, cmp)
		}
	}
}
