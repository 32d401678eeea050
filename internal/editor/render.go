package editor

import (
	"fmt"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
)

const helpLine = "^O WriteOut   ^X Exit"

// Render projects the buffer, status bar and help/prompt line onto the
// screen. It mutates nothing but the viewport origin, which follows the
// cursor.
func (e *Editor) Render(s tcell.Screen) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}

	statusY := h - 2
	bottomY := h - 1
	textHeight := h - 2
	if h < 2 {
		statusY = h - 1
		textHeight = 0
	}
	e.viewHeight = textHeight

	e.view.ClampAndScroll(e.buf, w, textHeight)

	s.SetStyle(e.styleMain)
	s.Clear()

	for y := 0; y < textHeight; y++ {
		row := e.view.ScrollRow + y
		if row >= e.buf.LineCount() {
			continue
		}
		line := e.buf.Line(row)
		if e.view.ScrollCol >= len(line) {
			continue
		}
		seg := line[e.view.ScrollCol:]
		if len(seg) > w {
			seg = seg[:w]
		}
		for x, r := range seg {
			s.SetContent(x, y, r, nil, e.styleMain)
		}
	}

	if statusY >= 0 {
		e.renderStatusline(s, w, statusY)
	}

	cx := e.view.Cursor.Col - e.view.ScrollCol
	cy := e.view.Cursor.Row - e.view.ScrollRow
	if bottomY >= 0 && bottomY != statusY {
		promptX := e.renderBottomLine(s, w, bottomY)
		if e.mode == ModePromptSearch || e.mode == ModePromptGoto {
			cx = promptX
			cy = bottomY
		}
	}

	if cx < 0 || cx >= w || cy < 0 || cy >= h {
		s.HideCursor()
	} else {
		s.ShowCursor(cx, cy)
	}
	s.Show()
}

func (e *Editor) renderStatusline(s tcell.Screen, w, y int) {
	name := filepath.Base(e.filename)
	if name == "." || name == string(filepath.Separator) {
		name = e.filename
	}
	dirty := ""
	if e.dirty {
		dirty = "*"
	}

	left := fmt.Sprintf(" %s%s | Modified: %s ", name, dirty, e.mtimeStamp)
	if e.statusMessage != "" {
		left = fmt.Sprintf(" %s%s | Modified: %s | %s ", name, dirty, e.mtimeStamp, e.statusMessage)
	}
	right := fmt.Sprintf(" Ln %d, Col %d ", e.view.Cursor.Row+1, e.view.Cursor.Col+1)
	if len(left)+len(right) > w {
		left = fmt.Sprintf(" %s%s ", name, dirty)
	}

	line := composeStatusLine(left, right, w)
	for x, r := range line {
		s.SetContent(x, y, r, nil, e.styleStatus)
	}
}

// renderBottomLine draws the help text, or the active prompt with its
// input, and returns the screen column for the prompt cursor.
func (e *Editor) renderBottomLine(s tcell.Screen, w, y int) int {
	var text []rune
	switch e.mode {
	case ModePromptSearch:
		text = append([]rune("Search: "), e.prompt...)
	case ModePromptGoto:
		text = append([]rune("Go to line: "), e.prompt...)
	default:
		text = []rune(helpLine)
	}
	promptX := len(text)
	if promptX > w-1 {
		promptX = w - 1
	}
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(text) {
			r = text[x]
		}
		s.SetContent(x, y, r, nil, e.styleStatus)
	}
	return promptX
}

func composeStatusLine(left, right string, width int) []rune {
	if width <= 0 {
		return nil
	}
	leftRunes := []rune(left)
	rightRunes := []rune(right)
	if len(leftRunes)+len(rightRunes) > width {
		if len(rightRunes) >= width {
			rightRunes = rightRunes[len(rightRunes)-width:]
			leftRunes = nil
		} else {
			leftRunes = leftRunes[:width-len(rightRunes)]
		}
	}
	spaceCount := width - len(leftRunes) - len(rightRunes)
	if spaceCount < 0 {
		spaceCount = 0
	}
	line := make([]rune, 0, width)
	line = append(line, leftRunes...)
	for i := 0; i < spaceCount; i++ {
		line = append(line, ' ')
	}
	line = append(line, rightRunes...)
	return line
}
