package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
)

// Renderer draws game snapshots onto a tcell screen
type Renderer struct {
	screen tcell.Screen
	styles Styles
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		styles: DefaultStyles(),
	}
}

// Frame is everything drawn in one pass
type Frame struct {
	Snapshot engine.Snapshot
	Viewport Viewport
	Dialog   *Dialog // Optional modal
	Metrics  string  // Optional right side of the status bar
}

// Draw renders a full frame and shows it
func (r *Renderer) Draw(f Frame) {
	width, height := r.screen.Size()
	r.screen.Clear()

	r.drawScoreBar(f.Snapshot, width)
	r.drawField(f.Snapshot, f.Viewport)
	r.drawStatusBar(f.Snapshot, f.Metrics, width, height)
	if f.Dialog != nil {
		r.drawDialog(f.Dialog, width, height)
	}

	r.screen.Show()
}

func (r *Renderer) drawScoreBar(s engine.Snapshot, width int) {
	r.fillRow(0, width, r.styles.Title)

	left := fmt.Sprintf(" PLAYER 1: %d", s.Score1)
	right := fmt.Sprintf("PLAYER 2: %d ", s.Score2)
	r.text(0, 0, left, r.styles.Score)
	r.text(width-len(right), 0, right, r.styles.Score)
	r.text((width-len(constants.GameTitle))/2, 0, constants.GameTitle, r.styles.Title)
}

func (r *Renderer) drawField(s engine.Snapshot, vp Viewport) {
	for row := vp.Top; row < vp.Top+vp.Rows; row++ {
		r.fillRow(row, vp.Cols, r.styles.Field)
	}

	// Dashed center line
	if vp.Cols > 0 {
		mid := vp.Cols / 2
		for row := 0; row < vp.Rows; row++ {
			if row%2 == 0 {
				r.screen.SetContent(mid, vp.Top+row, '╎', nil, r.styles.CenterLine)
			}
		}
	}

	r.fillRect(vp, s.Paddle1, '█', r.styles.Paddle)
	r.fillRect(vp, s.Paddle2, '█', r.styles.Paddle)
	r.fillRect(vp, s.Ball, '●', r.styles.Ball)
}

func (r *Renderer) drawStatusBar(s engine.Snapshot, metrics string, width, height int) {
	row := height - 1
	if row < constants.ScoreBarHeight {
		return
	}
	r.fillRow(row, width, r.styles.Hint)

	msg := " " + s.Status
	r.text(0, row, msg, r.styles.Status)

	right := constants.KeyHints + " "
	if metrics != "" {
		right = metrics + "  " + right
	}
	if x := width - len(right); x > len(msg)+1 {
		r.text(x, row, right, r.styles.Hint)
	}
}

func (r *Renderer) drawDialog(d *Dialog, width, height int) {
	w, h := d.size()
	x0 := max((width-w)/2, 0)
	y0 := max((height-h)/2, 0)
	x1, y1 := x0+w-1, y0+h-1

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			ch := ' '
			style := r.styles.DialogText
			switch {
			case (y == y0 || y == y1) && (x == x0 || x == x1):
				ch, style = corner(x == x0, y == y0), r.styles.DialogFrame
			case y == y0 || y == y1:
				ch, style = '─', r.styles.DialogFrame
			case x == x0 || x == x1:
				ch, style = '│', r.styles.DialogFrame
			}
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}

	r.text(x0+(w-len(d.Title))/2, y0, d.Title, r.styles.DialogText.Bold(true))
	for i, line := range d.Lines {
		r.text(x0+2, y0+2+i, line, r.styles.DialogText)
	}
}

func corner(left, top bool) rune {
	switch {
	case left && top:
		return '┌'
	case top:
		return '┐'
	case left:
		return '└'
	default:
		return '┘'
	}
}

func (r *Renderer) fillRect(vp Viewport, rect core.Rect, ch rune, style tcell.Style) {
	col0, col1, row0, row1, ok := vp.Span(rect)
	if !ok {
		return
	}
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

func (r *Renderer) fillRow(row, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, row, ' ', nil, style)
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
