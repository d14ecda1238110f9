package algorithm

import "testing"

func TestBottomUp(t *testing.T) {
	a := []int{12, 11, 13, 5, 6, 7}
	BottomUp(a)
	checkInts(t, a, []int{5, 6, 7, 11, 12, 13})
}

func TestBottomUpAcrossBlocks(t *testing.T) {
	n := 3*blockSize + 7
	a := make([]int, n)
	ref := make([]int, n)
	for i := range a {
		a[i] = n - 1 - i
		ref[i] = i
	}
	BottomUp(a)
	checkInts(t, a, ref)
}

func TestInsertSort(t *testing.T) {
	a := []int{2, 3, 4, 2, 1}
	insertSort(a, 0, len(a)-1, compare[int])
	checkInts(t, a, []int{1, 2, 2, 3, 4})

	b := []int{9, 3, 1, 2, 0}
	insertSort(b, 1, 3, compare[int])
	checkInts(t, b, []int{9, 1, 2, 3, 0})
}
