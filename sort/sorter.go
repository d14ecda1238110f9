package algorithm

import "golang.org/x/exp/constraints"

// Sorter runs the same recursion as MergeSort but every merge copies into
// one scratch buffer that is kept between calls. A Sorter must not be used
// from more than one goroutine at a time.
type Sorter[E any] struct {
	cmp     func(a, b E) int
	scratch []E
}

func NewSorter[E constraints.Ordered]() *Sorter[E] {
	return &Sorter[E]{cmp: compare[E]}
}

func NewSorterFunc[E any](cmp func(a, b E) int) *Sorter[E] {
	return &Sorter[E]{cmp: cmp}
}

func (s *Sorter[E]) Sort(seq []E) {
	if len(seq) == 0 {
		return
	}
	s.sortRange(seq, 0, len(seq)-1)
}

// SortRange sorts seq[left..right] with the same bounds rules as MergeSort.
func (s *Sorter[E]) SortRange(seq []E, left, right int) error {
	if err := checkRange(len(seq), left, right); err != nil {
		return err
	}
	if left < right {
		s.sortRange(seq, left, right)
	}
	return nil
}

func (s *Sorter[E]) sortRange(seq []E, left, right int) {
	n := right - left + 1
	if cap(s.scratch) < n {
		s.scratch = make([]E, n)
	}
	scratch := s.scratch[:n]
	mergeSort(seq, scratch, left, right, s.cmp)
	// drop references held by the copies
	clear(scratch)
}
