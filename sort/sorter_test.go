package algorithm

import (
	"errors"
	"testing"
)

func TestSorterReusesScratch(t *testing.T) {
	s := NewSorter[int]()
	a := []int{5, 1, 4, 2, 3, 0, 9, 8}
	s.Sort(a)
	checkInts(t, a, []int{0, 1, 2, 3, 4, 5, 8, 9})
	if cap(s.scratch) != 8 {
		t.Fatalf("cap(scratch)==%d, want 8", cap(s.scratch))
	}

	b := []int{3, 2, 1}
	s.Sort(b)
	checkInts(t, b, []int{1, 2, 3})
	if cap(s.scratch) != 8 {
		t.Errorf("scratch was reallocated for a smaller input")
	}
}

func TestSorterSortRange(t *testing.T) {
	s := NewSorter[int]()
	a := []int{12, 11, 13, 5, 6, 7}
	if err := s.SortRange(a, 0, 2); err != nil {
		t.Fatal(err)
	}
	checkInts(t, a, []int{11, 12, 13, 5, 6, 7})

	if err := s.SortRange(a, 2, 6); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("err = %v, want ErrInvalidRange", err)
	}
	if err := s.SortRange(a, 3, 2); err != nil {
		t.Errorf("empty range: %v", err)
	}
}

func TestSorterClearsScratch(t *testing.T) {
	one, two := 1, 2
	s := NewSorterFunc(func(a, b *int) int { return *a - *b })
	s.Sort([]*int{&two, &one})
	for i, p := range s.scratch[:cap(s.scratch)] {
		if p != nil {
			t.Errorf("scratch[%d] still holds a pointer", i)
		}
	}
}
