package state

// DefaultPageSize is the number of rows shown at once.
const DefaultPageSize = 7

func pageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	return size
}

// VisibleWindow returns the page of matches containing pos and pos's row
// within it. Pages are aligned to multiples of size; an empty match list
// yields no rows and a highlight of -1.
func VisibleWindow(matches []int, pos, size int) ([]int, int) {
	if len(matches) == 0 {
		return nil, -1
	}
	size = pageSize(size)
	if pos < 0 {
		pos = 0
	}
	if pos >= len(matches) {
		pos = len(matches) - 1
	}
	start := (pos / size) * size
	end := start + size
	if end > len(matches) {
		end = len(matches)
	}
	return matches[start:end], pos - start
}
