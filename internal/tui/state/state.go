package state

func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// CenteredWindow returns the [start, end) range of height rows centered on
// cursor.
func CenteredWindow(totalRows, cursor, height int) (int, int) {
	if totalRows <= 0 {
		return 0, 0
	}
	if height <= 0 || totalRows <= height {
		return 0, totalRows
	}
	cursor = ClampCursor(cursor, totalRows)
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	maxStart := totalRows - height
	if start > maxStart {
		start = maxStart
	}
	return start, start + height
}

// CycleIndex moves current by delta and wraps around size.
func CycleIndex(current, delta, size int) int {
	if size <= 0 {
		return 0
	}
	next := (current + delta) % size
	if next < 0 {
		next += size
	}
	return next
}

func IndexOf(items []string, value string) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return -1
}

// CardsPerPage is how many cards of cardHeight lines fit in height lines,
// never less than one.
func CardsPerPage(height, cardHeight int) int {
	if height <= 0 || cardHeight <= 0 {
		return 1
	}
	n := height / cardHeight
	if n < 1 {
		return 1
	}
	return n
}
