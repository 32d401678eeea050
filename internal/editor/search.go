package editor

// FindNext scans forward line by line for a case-sensitive needle,
// starting just after (fromRow, fromCol). At the end of the document it
// wraps to the first line and continues up to the original start
// position, so repeated calls cycle through all matches instead of
// rescanning one.
func FindNext(b *Buffer, fromRow, fromCol int, needle string) (Cursor, bool) {
	target := []rune(needle)
	if len(target) == 0 {
		return Cursor{}, false
	}
	for row := fromRow; row < b.LineCount(); row++ {
		start := 0
		if row == fromRow {
			start = fromCol + 1
		}
		if col := indexFrom(b.Line(row), target, start); col >= 0 {
			return Cursor{Row: row, Col: col}, true
		}
	}
	for row := 0; row <= fromRow && row < b.LineCount(); row++ {
		col := indexFrom(b.Line(row), target, 0)
		if col < 0 {
			continue
		}
		if row == fromRow && col > fromCol {
			continue
		}
		return Cursor{Row: row, Col: col}, true
	}
	return Cursor{}, false
}

func indexFrom(line, target []rune, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i+len(target) <= len(line); i++ {
		match := true
		for j, r := range target {
			if line[i+j] != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
