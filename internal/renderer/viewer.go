// Package renderer draws the interactive tag navigation view.
package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/tagnav/internal/dispatcher"
	"github.com/dshills/tagnav/internal/dispatcher/execctx"
	tagh "github.com/dshills/tagnav/internal/dispatcher/handlers/tag"
	"github.com/dshills/tagnav/internal/engine/buffer"
	"github.com/dshills/tagnav/internal/input"
	"github.com/dshills/tagnav/internal/renderer/backend"
)

// Key bindings for the viewer.
const (
	KeyNext        = 'n'
	KeyPrev        = 'p'
	KeySelectInner = 'i'
	KeySelectOuter = 'o'
	KeyRemove      = 'd'
	KeyReset       = 'r'
	KeyQuit        = 'q'
)

// Viewer is the interactive terminal view: it displays a buffer,
// highlights the current selection, and routes key presses to tag
// navigation actions.
type Viewer struct {
	term    *backend.Terminal
	disp    *dispatcher.Dispatcher
	ctx     *execctx.ExecutionContext
	buf     *buffer.Buffer
	open    string
	close   string
	message string
	top     uint32
}

// NewViewer creates a viewer over the given buffer and dispatcher.
func NewViewer(term *backend.Terminal, disp *dispatcher.Dispatcher, ctx *execctx.ExecutionContext, buf *buffer.Buffer, open, close string) *Viewer {
	return &Viewer{
		term:  term,
		disp:  disp,
		ctx:   ctx,
		buf:   buf,
		open:  open,
		close: close,
	}
}

// Run enters the event loop. It returns when the user quits.
func (v *Viewer) Run() error {
	if err := v.term.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer v.term.Shutdown()

	for {
		v.draw()

		ev := v.term.PollEvent()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}

		switch {
		case key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC:
			return nil
		case key.Key() != tcell.KeyRune:
			continue
		}

		switch key.Rune() {
		case KeyQuit:
			return nil
		case KeyNext:
			v.dispatch(tagh.ActionNext)
		case KeyPrev:
			v.dispatch(tagh.ActionPrev)
		case KeySelectInner:
			v.dispatch(tagh.ActionSelectInner)
		case KeySelectOuter:
			v.dispatch(tagh.ActionSelectOuter)
		case KeyRemove:
			v.dispatch(tagh.ActionRemove)
		case KeyReset:
			v.dispatch(tagh.ActionReset)
		}
	}
}

func (v *Viewer) dispatch(name string) {
	res := v.disp.Dispatch(input.NewAction(name), v.ctx)
	switch {
	case res.IsError():
		v.message = res.Error.Error()
	case res.Message != "":
		v.message = res.Message
	default:
		v.message = ""
	}
}

// draw renders the visible buffer lines with the selection highlighted
// and a status line at the bottom.
func (v *Viewer) draw() {
	v.term.Clear()
	width, height := v.term.Size()
	if height < 2 {
		v.term.Show()
		return
	}
	textRows := height - 1

	sel := v.ctx.Cursors.Primary().Range()
	v.scrollTo(sel, textRows)

	snap := v.buf.Snapshot()
	base := tcell.StyleDefault
	hl := base.Reverse(true)

	for row := 0; row < textRows; row++ {
		line := v.top + uint32(row)
		if line >= snap.LineCount() {
			break
		}
		start := snap.LineStartOffset(line)
		text := snap.LineText(line)

		x := 0
		offset := start
		for _, r := range text {
			if x >= width {
				break
			}
			style := base
			if !sel.IsEmpty() && sel.Contains(offset) {
				style = hl
			}
			v.term.SetCell(x, row, r, style)
			x += runewidth.RuneWidth(r)
			offset += len(string(r))
		}
	}

	status := StatusLine(v.buf.Path(), v.open, v.close, v.message)
	v.term.DrawText(0, height-1, base.Reverse(true), runewidth.FillRight(status, width))
	v.term.Show()
}

// scrollTo keeps the selection's start line visible.
func (v *Viewer) scrollTo(sel buffer.Range, textRows int) {
	line := v.buf.OffsetToPoint(sel.Start).Line
	if line < v.top {
		v.top = line
	}
	if line >= v.top+uint32(textRows) {
		v.top = line - uint32(textRows) + 1
	}
}

// StatusLine formats the viewer status line.
func StatusLine(path, open, close, message string) string {
	if path == "" {
		path = "[no file]"
	}
	s := fmt.Sprintf(" %s  tags %s...%s  n/p navigate  i/o select  d remove  q quit", path, open, close)
	if message != "" {
		s += "  | " + message
	}
	return s
}
