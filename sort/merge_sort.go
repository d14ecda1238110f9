package algorithm

import "golang.org/x/exp/constraints"

// compare orders values of an Ordered type the way cmp.Compare does,
// except that NaN compares equal to everything.
func compare[E constraints.Ordered](a, b E) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Merge merges the sorted runs seq[left..mid] and seq[mid+1..right] (both
// inclusive) into one sorted run. The runs are trusted to be sorted; bounds
// must satisfy 0 <= left <= mid < right < len(seq).
func Merge[E constraints.Ordered](seq []E, left, mid, right int) {
	MergeFunc(seq, left, mid, right, compare[E])
}

// MergeFunc is Merge ordered by cmp.
func MergeFunc[E any](seq []E, left, mid, right int, cmp func(a, b E) int) {
	mergeRuns(seq, make([]E, right-left+1), left, mid, right, cmp)
}

// mergeRuns uses tmp[:right-left+1] as the copy of the range being merged.
func mergeRuns[E any](seq, tmp []E, left, mid, right int, cmp func(a, b E) int) {
	tmp = tmp[:right-left+1]
	copy(tmp, seq[left:right+1])

	i, j, k := 0, mid-left+1, left
	for i <= mid-left && j <= right-left {
		// equal keys come from the left run first
		if cmp(tmp[i], tmp[j]) <= 0 {
			seq[k] = tmp[i]
			i++
		} else {
			seq[k] = tmp[j]
			j++
		}
		k++
	}
	for i <= mid-left {
		seq[k] = tmp[i]
		i++
		k++
	}
	for j <= right-left {
		seq[k] = tmp[j]
		j++
		k++
	}
}

// MergeSort sorts seq[left..right] (inclusive) ascending in place. The
// empty range right == left-1 is a no-op. Bounds outside seq return an
// error wrapping ErrInvalidRange and leave seq untouched.
func MergeSort[E constraints.Ordered](seq []E, left, right int) error {
	return MergeSortFunc(seq, left, right, compare[E])
}

// MergeSortFunc is MergeSort ordered by cmp, which returns a negative
// number when a < b, zero when they are equal and a positive number when
// a > b. The sort is stable.
func MergeSortFunc[E any](seq []E, left, right int, cmp func(a, b E) int) error {
	if err := checkRange(len(seq), left, right); err != nil {
		return err
	}
	mergeSort(seq, nil, left, right, cmp)
	return nil
}

// Sort sorts the whole of seq.
func Sort[E constraints.Ordered](seq []E) {
	SortFunc(seq, compare[E])
}

func SortFunc[E any](seq []E, cmp func(a, b E) int) {
	if len(seq) == 0 {
		return
	}
	mergeSort(seq, nil, 0, len(seq)-1, cmp)
}

// mergeSort allocates a fresh buffer per merge when scratch is nil,
// otherwise scratch must hold at least right-left+1 elements.
func mergeSort[E any](seq, scratch []E, left, right int, cmp func(a, b E) int) {
	if left >= right {
		return
	}

	mid := left + (right-left)/2
	mergeSort(seq, scratch, left, mid, cmp)
	mergeSort(seq, scratch, mid+1, right, cmp)
	if scratch == nil {
		mergeRuns(seq, make([]E, right-left+1), left, mid, right, cmp)
		return
	}
	mergeRuns(seq, scratch, left, mid, right, cmp)
}
