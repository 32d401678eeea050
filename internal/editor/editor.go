package editor

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/mini/internal/config"
	"github.com/kobzarvs/mini/internal/logger"
)

type Mode int

const (
	ModeEdit Mode = iota
	ModePromptSearch
	ModePromptGoto
)

const mtimeLayout = "2006-01-02 15:04:05"

// Editor owns the buffer, the cursor/viewport and the edit session
// state, and dispatches logical key events onto them.
type Editor struct {
	buf      *Buffer
	view     View
	mode     Mode
	filename string
	dirty    bool

	statusMessage string
	mtimeStamp    string
	prompt        []rune

	fs              FileStore
	viewHeight      int
	redrawRequested bool

	styleMain   tcell.Style
	styleStatus tcell.Style
}

func New(cfg config.Config) *Editor {
	mainFg := parseColor(cfg.Theme.Foreground, tcell.ColorWhite)
	mainBg := parseColor(cfg.Theme.Background, tcell.ColorBlack)
	statusFg := parseColor(cfg.Theme.StatuslineForeground, tcell.ColorBlack)
	statusBg := parseColor(cfg.Theme.StatuslineBackground, tcell.ColorGray)
	return &Editor{
		buf:         NewBuffer(),
		fs:          osStore{},
		mtimeStamp:  "N/A",
		styleMain:   tcell.StyleDefault.Foreground(mainFg).Background(mainBg),
		styleStatus: tcell.StyleDefault.Foreground(statusFg).Background(statusBg),
	}
}

// OpenFile loads path into the buffer. A missing file starts an empty
// document; any other read error is fatal to startup.
func (e *Editor) OpenFile(path string) error {
	e.filename = path
	data, err := e.fs.ReadFile(path)
	switch {
	case err == nil:
		e.buf = NewBufferFromBytes(data)
		e.mtimeStamp = e.stampNow()
		e.setStatus("Opened")
	case errors.Is(err, os.ErrNotExist):
		e.buf = NewBuffer()
		e.mtimeStamp = "N/A"
		e.setStatus("New file")
	default:
		return fmt.Errorf("open %s: %w", path, err)
	}
	e.view = View{}
	e.mode = ModeEdit
	e.dirty = false
	return nil
}

// Save writes the serialized document plus a final newline. On failure
// the buffer keeps its unsaved edits and stays dirty.
func (e *Editor) Save() error {
	data := []byte(e.buf.Serialize() + "\n")
	if err := e.fs.WriteFile(e.filename, data); err != nil {
		return err
	}
	e.dirty = false
	e.mtimeStamp = e.stampNow()
	logger.Info("wrote file", "path", e.filename, "bytes", len(data))
	return nil
}

// HandleKey processes one logical key event. It returns true when the
// run loop should exit.
func (e *Editor) HandleKey(ev *tcell.EventKey) bool {
	if e.mode == ModePromptSearch || e.mode == ModePromptGoto {
		e.handlePrompt(ev)
		return false
	}
	return e.handleEdit(ev)
}

func (e *Editor) handleEdit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlX:
		return true
	case tcell.KeyCtrlO:
		if err := e.Save(); err != nil {
			logger.Error("save failed", "path", e.filename, "err", err)
			e.setStatus("Write error: " + err.Error())
		} else {
			e.setStatus("Wrote file")
		}
	case tcell.KeyCtrlF:
		e.mode = ModePromptSearch
		e.prompt = e.prompt[:0]
	case tcell.KeyCtrlG:
		e.mode = ModePromptGoto
		e.prompt = e.prompt[:0]
	case tcell.KeyCtrlL:
		e.redrawRequested = true
	case tcell.KeyUp:
		e.view.MoveUp(e.buf)
	case tcell.KeyDown:
		e.view.MoveDown(e.buf)
	case tcell.KeyLeft:
		e.view.MoveLeft(e.buf)
	case tcell.KeyRight:
		e.view.MoveRight(e.buf)
	case tcell.KeyHome:
		e.view.MoveHome()
	case tcell.KeyEnd:
		e.view.MoveEnd(e.buf)
	case tcell.KeyPgUp:
		e.view.PageUp(e.buf, e.textHeight())
	case tcell.KeyPgDn:
		e.view.PageDown(e.buf, e.textHeight())
	case tcell.KeyEnter:
		e.buf.SplitLine(e.view.Cursor.Row, e.view.Cursor.Col)
		e.view.Cursor = Cursor{Row: e.view.Cursor.Row + 1, Col: 0}
		e.dirty = true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.backspace()
	case tcell.KeyDelete:
		if e.buf.DeleteCharAt(e.view.Cursor.Row, e.view.Cursor.Col) {
			e.dirty = true
		}
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return false
		}
		e.buf.InsertChar(e.view.Cursor.Row, e.view.Cursor.Col, ev.Rune())
		e.view.Cursor.Col++
		e.dirty = true
	}
	return false
}

// backspace deletes before the cursor; a merge at column zero lands the
// cursor on the join point of the previous line.
func (e *Editor) backspace() {
	cur := e.view.Cursor
	if cur.Col > 0 {
		e.buf.DeleteCharBefore(cur.Row, cur.Col)
		e.view.Cursor.Col--
		e.dirty = true
		return
	}
	if cur.Row == 0 {
		return
	}
	joinCol := e.buf.LineLen(cur.Row - 1)
	e.buf.DeleteCharBefore(cur.Row, cur.Col)
	e.view.Cursor = Cursor{Row: cur.Row - 1, Col: joinCol}
	e.dirty = true
}

func (e *Editor) handlePrompt(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		e.mode = ModeEdit
		e.prompt = e.prompt[:0]
		e.setStatus("Cancelled")
	case tcell.KeyEnter:
		input := string(e.prompt)
		wasSearch := e.mode == ModePromptSearch
		e.mode = ModeEdit
		e.prompt = e.prompt[:0]
		if input == "" {
			e.setStatus("Cancelled")
			return
		}
		if wasSearch {
			e.runSearch(input)
		} else {
			e.runGotoLine(input)
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(e.prompt) > 0 {
			e.prompt = e.prompt[:len(e.prompt)-1]
		}
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
			e.prompt = append(e.prompt, ev.Rune())
		}
	}
}

func (e *Editor) runSearch(query string) {
	pos, ok := FindNext(e.buf, e.view.Cursor.Row, e.view.Cursor.Col, query)
	if !ok {
		e.setStatus("Not found")
		return
	}
	e.view.SetPosition(e.buf, pos.Row, pos.Col)
	e.setStatus("Found")
}

func (e *Editor) runGotoLine(input string) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		e.setStatus("Invalid number")
		return
	}
	if n < 1 {
		n = 1
	}
	row := n - 1
	if row >= e.buf.LineCount() {
		row = e.buf.LineCount() - 1
	}
	e.view.SetPosition(e.buf, row, 0)
	e.setStatus(fmt.Sprintf("Line %d", n))
}

// ConsumeRedrawRequest reports whether a full repaint was requested
// since the last call.
func (e *Editor) ConsumeRedrawRequest() bool {
	req := e.redrawRequested
	e.redrawRequested = false
	return req
}

func (e *Editor) Modified() bool {
	return e.dirty
}

func (e *Editor) StatusMessage() string {
	return e.statusMessage
}

func (e *Editor) setStatus(msg string) {
	e.statusMessage = msg
}

// textHeight is the height of the text region as of the last render.
func (e *Editor) textHeight() int {
	if e.viewHeight < 1 {
		return 1
	}
	return e.viewHeight
}

func (e *Editor) stampNow() string {
	t, err := e.fs.ModTime(e.filename)
	if err != nil {
		return "N/A"
	}
	return t.Format(mtimeLayout)
}

func parseColor(name string, fallback tcell.Color) tcell.Color {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		r, err1 := strconv.ParseInt(name[1:3], 16, 32)
		g, err2 := strconv.ParseInt(name[3:5], 16, 32)
		b, err3 := strconv.ParseInt(name[5:7], 16, 32)
		if err1 == nil && err2 == nil && err3 == nil {
			return tcell.NewRGBColor(int32(r), int32(g), int32(b))
		}
		return fallback
	}
	if name == "default" {
		return tcell.ColorDefault
	}
	return tcell.GetColor(strings.ToLower(name))
}
