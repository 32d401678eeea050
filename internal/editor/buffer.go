package editor

import "strings"

// Buffer holds the open document as an ordered list of lines. It is
// never empty: a document with no content is a single empty line.
type Buffer struct {
	lines [][]rune
}

func NewBuffer() *Buffer {
	return &Buffer{lines: [][]rune{{}}}
}

// NewBufferFromBytes splits file contents on newline boundaries. CRLF
// is normalized to LF. A single trailing newline is dropped; Serialize
// is the inverse, so save/reload round-trips are byte-stable.
func NewBufferFromBytes(data []byte) *Buffer {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	if len(lines) == 0 {
		lines = [][]rune{{}}
	}
	return &Buffer{lines: lines}
}

func (b *Buffer) LineCount() int {
	return len(b.lines)
}

func (b *Buffer) Line(row int) []rune {
	return b.lines[row]
}

func (b *Buffer) LineLen(row int) int {
	return len(b.lines[row])
}

// InsertChar inserts ch at col in the given line. row must be a valid
// line and col within [0, line length].
func (b *Buffer) InsertChar(row, col int, ch rune) {
	line := b.lines[row]
	out := make([]rune, 0, len(line)+1)
	out = append(out, line[:col]...)
	out = append(out, ch)
	out = append(out, line[col:]...)
	b.lines[row] = out
}

// DeleteCharBefore removes the character before col. At the start of a
// line it joins the line onto the previous one instead. Reports whether
// anything changed; (0, 0) is a no-op.
func (b *Buffer) DeleteCharBefore(row, col int) bool {
	if col > 0 {
		line := b.lines[row]
		b.lines[row] = append(line[:col-1], line[col:]...)
		return true
	}
	if row == 0 {
		return false
	}
	b.lines[row-1] = append(b.lines[row-1], b.lines[row]...)
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	return true
}

// DeleteCharAt removes the character at col. At the end of a line it
// joins the next line onto this one instead. Reports whether anything
// changed; the end of the last line is a no-op.
func (b *Buffer) DeleteCharAt(row, col int) bool {
	line := b.lines[row]
	if col < len(line) {
		b.lines[row] = append(line[:col], line[col+1:]...)
		return true
	}
	if row >= len(b.lines)-1 {
		return false
	}
	b.lines[row] = append(line, b.lines[row+1]...)
	b.lines = append(b.lines[:row+1], b.lines[row+2:]...)
	return true
}

// SplitLine replaces the line with its prefix up to col and inserts the
// suffix as a new line immediately after.
func (b *Buffer) SplitLine(row, col int) {
	line := b.lines[row]
	left := make([]rune, col)
	copy(left, line[:col])
	right := make([]rune, len(line)-col)
	copy(right, line[col:])
	b.lines = append(b.lines[:row], append([][]rune{left, right}, b.lines[row+1:]...)...)
}

// Serialize joins the lines with newline separators. The on-disk form
// appends one final newline; see Editor.Save.
func (b *Buffer) Serialize() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}
