package editor

// Cursor is a logical position in the buffer. Col may equal the line
// length, meaning "after the last character".
type Cursor struct {
	Row int
	Col int
}

// View couples the cursor with the viewport origin. ScrollRow and
// ScrollCol are buffer coordinates of the top-left visible cell.
type View struct {
	Cursor    Cursor
	ScrollRow int
	ScrollCol int
}

func (v *View) MoveLeft(b *Buffer) {
	if v.Cursor.Col > 0 {
		v.Cursor.Col--
		return
	}
	if v.Cursor.Row == 0 {
		return
	}
	v.Cursor.Row--
	v.Cursor.Col = b.LineLen(v.Cursor.Row)
}

func (v *View) MoveRight(b *Buffer) {
	if v.Cursor.Col < b.LineLen(v.Cursor.Row) {
		v.Cursor.Col++
		return
	}
	if v.Cursor.Row >= b.LineCount()-1 {
		return
	}
	v.Cursor.Row++
	v.Cursor.Col = 0
}

func (v *View) MoveUp(b *Buffer) {
	if v.Cursor.Row == 0 {
		return
	}
	v.Cursor.Row--
	v.clampCol(b)
}

func (v *View) MoveDown(b *Buffer) {
	if v.Cursor.Row >= b.LineCount()-1 {
		return
	}
	v.Cursor.Row++
	v.clampCol(b)
}

func (v *View) MoveHome() {
	v.Cursor.Col = 0
}

func (v *View) MoveEnd(b *Buffer) {
	v.Cursor.Col = b.LineLen(v.Cursor.Row)
}

func (v *View) PageUp(b *Buffer, height int) {
	if height < 1 {
		height = 1
	}
	v.Cursor.Row -= height
	if v.Cursor.Row < 0 {
		v.Cursor.Row = 0
	}
	v.clampCol(b)
}

func (v *View) PageDown(b *Buffer, height int) {
	if height < 1 {
		height = 1
	}
	v.Cursor.Row += height
	if v.Cursor.Row >= b.LineCount() {
		v.Cursor.Row = b.LineCount() - 1
	}
	v.clampCol(b)
}

// SetPosition moves the cursor to (row, col), clamping both into the
// valid range for the buffer.
func (v *View) SetPosition(b *Buffer, row, col int) {
	if row < 0 {
		row = 0
	}
	if row >= b.LineCount() {
		row = b.LineCount() - 1
	}
	v.Cursor.Row = row
	if col < 0 {
		col = 0
	}
	if n := b.LineLen(row); col > n {
		col = n
	}
	v.Cursor.Col = col
}

// ClampAndScroll restores the cursor invariant and scrolls the viewport
// by the minimum amount that brings the cursor back into the width x
// height rectangle. Idempotent.
func (v *View) ClampAndScroll(b *Buffer, width, height int) {
	v.SetPosition(b, v.Cursor.Row, v.Cursor.Col)
	if v.ScrollRow < 0 {
		v.ScrollRow = 0
	}
	if v.ScrollCol < 0 {
		v.ScrollCol = 0
	}
	if height > 0 {
		if v.Cursor.Row < v.ScrollRow {
			v.ScrollRow = v.Cursor.Row
		}
		if v.Cursor.Row >= v.ScrollRow+height {
			v.ScrollRow = v.Cursor.Row - height + 1
		}
	}
	if width > 0 {
		if v.Cursor.Col < v.ScrollCol {
			v.ScrollCol = v.Cursor.Col
		}
		if v.Cursor.Col >= v.ScrollCol+width {
			v.ScrollCol = v.Cursor.Col - width + 1
		}
	}
}

func (v *View) clampCol(b *Buffer) {
	if n := b.LineLen(v.Cursor.Row); v.Cursor.Col > n {
		v.Cursor.Col = n
	}
}
