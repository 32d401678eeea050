package editor

import "testing"

func TestMoveLeftAcrossLineStart(t *testing.T) {
	b := newTestBuffer("abc", "de")
	v := View{Cursor: Cursor{Row: 1, Col: 0}}
	v.MoveLeft(b)
	if v.Cursor != (Cursor{Row: 0, Col: 3}) {
		t.Fatalf("cursor = %+v, want row 0 col 3", v.Cursor)
	}
	v.Cursor = Cursor{}
	v.MoveLeft(b)
	if v.Cursor != (Cursor{}) {
		t.Fatalf("cursor = %+v, want unchanged at origin", v.Cursor)
	}
}

func TestMoveRightAcrossLineEnd(t *testing.T) {
	b := newTestBuffer("abc", "de")
	v := View{Cursor: Cursor{Row: 0, Col: 3}}
	v.MoveRight(b)
	if v.Cursor != (Cursor{Row: 1, Col: 0}) {
		t.Fatalf("cursor = %+v, want row 1 col 0", v.Cursor)
	}
	v.Cursor = Cursor{Row: 1, Col: 2}
	v.MoveRight(b)
	if v.Cursor != (Cursor{Row: 1, Col: 2}) {
		t.Fatalf("cursor = %+v, want unchanged at document end", v.Cursor)
	}
}

func TestMoveVerticalClampsColumn(t *testing.T) {
	b := newTestBuffer("long line", "ab", "longer line")
	v := View{Cursor: Cursor{Row: 0, Col: 7}}
	v.MoveDown(b)
	if v.Cursor != (Cursor{Row: 1, Col: 2}) {
		t.Fatalf("cursor = %+v, want row 1 col 2", v.Cursor)
	}
	v.MoveDown(b)
	if v.Cursor != (Cursor{Row: 2, Col: 2}) {
		t.Fatalf("cursor = %+v, want row 2 col 2", v.Cursor)
	}
}

func TestHomeEnd(t *testing.T) {
	b := newTestBuffer("hello")
	v := View{Cursor: Cursor{Row: 0, Col: 2}}
	v.MoveEnd(b)
	if v.Cursor.Col != 5 {
		t.Fatalf("end col = %d, want 5", v.Cursor.Col)
	}
	v.MoveHome()
	if v.Cursor.Col != 0 {
		t.Fatalf("home col = %d, want 0", v.Cursor.Col)
	}
}

func TestPageUpDown(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "x"
	}
	b := newTestBuffer(lines...)
	v := View{}
	v.PageDown(b, 10)
	if v.Cursor.Row != 10 {
		t.Fatalf("row = %d, want 10", v.Cursor.Row)
	}
	v.PageDown(b, 100)
	if v.Cursor.Row != 49 {
		t.Fatalf("row = %d, want clamp to 49", v.Cursor.Row)
	}
	v.PageUp(b, 100)
	if v.Cursor.Row != 0 {
		t.Fatalf("row = %d, want clamp to 0", v.Cursor.Row)
	}
}

func TestSetPositionClamps(t *testing.T) {
	b := newTestBuffer("abc", "de")
	v := View{}
	v.SetPosition(b, 99, 99)
	if v.Cursor != (Cursor{Row: 1, Col: 2}) {
		t.Fatalf("cursor = %+v, want row 1 col 2", v.Cursor)
	}
	v.SetPosition(b, -5, -5)
	if v.Cursor != (Cursor{}) {
		t.Fatalf("cursor = %+v, want origin", v.Cursor)
	}
}

func TestClampAndScrollFollowsCursor(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "0123456789012345678901234567890123456789"
	}
	b := newTestBuffer(lines...)
	v := View{Cursor: Cursor{Row: 25, Col: 35}}
	v.ClampAndScroll(b, 10, 10)
	if v.ScrollRow != 16 {
		t.Fatalf("scroll row = %d, want 16", v.ScrollRow)
	}
	if v.ScrollCol != 26 {
		t.Fatalf("scroll col = %d, want 26", v.ScrollCol)
	}

	// Scrolling back up moves the origin by the minimum amount.
	v.Cursor = Cursor{Row: 10, Col: 5}
	v.ClampAndScroll(b, 10, 10)
	if v.ScrollRow != 10 {
		t.Fatalf("scroll row = %d, want 10", v.ScrollRow)
	}
	if v.ScrollCol != 5 {
		t.Fatalf("scroll col = %d, want 5", v.ScrollCol)
	}
}

func TestClampAndScrollIdempotent(t *testing.T) {
	b := newTestBuffer("short", "a considerably longer line of text")
	v := View{Cursor: Cursor{Row: 1, Col: 30}, ScrollRow: 5, ScrollCol: 40}
	v.ClampAndScroll(b, 8, 4)
	once := v
	v.ClampAndScroll(b, 8, 4)
	if v != once {
		t.Fatalf("second clamp changed view: %+v, want %+v", v, once)
	}
}

func TestClampAndScrollClampsCursor(t *testing.T) {
	b := newTestBuffer("ab")
	v := View{Cursor: Cursor{Row: 9, Col: 9}}
	v.ClampAndScroll(b, 80, 24)
	if v.Cursor != (Cursor{Row: 0, Col: 2}) {
		t.Fatalf("cursor = %+v, want row 0 col 2", v.Cursor)
	}
}
