package render

import (
	"strings"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/core"
)

// Dialog is a modal box drawn over the field
type Dialog struct {
	Title string
	Lines []string
}

// GameOverDialog announces the match result
func GameOverDialog(r core.MatchResult) *Dialog {
	return &Dialog{
		Title: "GAME OVER",
		Lines: []string{r.Message(), "", "press any key"},
	}
}

// HelpDialog explains the controls
func HelpDialog() *Dialog {
	lines := strings.Split(constants.HowToPlayText, "\n")
	lines = append(lines, "", "press any key")
	return &Dialog{
		Title: "HOW TO PLAY",
		Lines: lines,
	}
}

// size returns the box dimensions including a one-cell border and padding
func (d *Dialog) size() (w, h int) {
	inner := len(d.Title)
	for _, l := range d.Lines {
		inner = max(inner, len(l))
	}
	return inner + 4, len(d.Lines) + 4
}
