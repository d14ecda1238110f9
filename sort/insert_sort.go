package algorithm

// insertSort sorts seq[left..right] in place. Equal elements keep their order.
func insertSort[E any](seq []E, left, right int, cmp func(a, b E) int) {
	for i := left + 1; i <= right; i++ {
		insertNum := seq[i]
		for j := i - 1; j >= left; j-- {
			if cmp(seq[j], insertNum) > 0 {
				seq[j+1] = seq[j]
				seq[j] = insertNum
			} else {
				break
			}
		}
	}
}
