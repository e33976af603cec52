package tournament

// BracketSize is the largest power of two not above n, or 0 when n < 1.
func BracketSize(n int) int {
	if n < 1 {
		return 0
	}
	size := 1
	for size*2 <= n {
		size *= 2
	}
	return size
}

// Rounds returns log2(size) for a power-of-two bracket size.
func Rounds(size int) int {
	r := 0
	for s := size; s > 1; s /= 2 {
		r++
	}
	return r
}

// SeedOrder returns the 1-based seed placed at each first-round position so
// that seeds 1 and 2 can only meet in the final. The order is built by
// doubling: every seed s in a block of size b is followed by b+1-s.
func SeedOrder(size int) []int {
	if size < 2 {
		if size == 1 {
			return []int{1}
		}
		return nil
	}
	order := []int{1, 2}
	for len(order) < size {
		block := len(order) * 2
		next := make([]int, 0, block)
		for _, seed := range order {
			next = append(next, seed, block+1-seed)
		}
		order = next
	}
	return order
}
