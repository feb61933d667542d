package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground  = tcell.NewRGBColor(13, 13, 26)    // Deep navy field
	RgbChrome      = tcell.NewRGBColor(28, 28, 44)    // Score and status bars
	RgbPaddle      = tcell.NewRGBColor(80, 250, 123)  // Green
	RgbBall        = tcell.NewRGBColor(241, 250, 140) // Pale yellow
	RgbCenterLine  = tcell.NewRGBColor(98, 114, 164)  // Muted purple
	RgbScore       = tcell.NewRGBColor(139, 233, 253) // Cyan
	RgbTitle       = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatus      = tcell.NewRGBColor(255, 121, 198) // Pink
	RgbHint        = tcell.NewRGBColor(150, 150, 170) // Gray
	RgbDialogFrame = tcell.NewRGBColor(106, 90, 205)  // Slate purple border
	RgbDialogBg    = tcell.NewRGBColor(58, 58, 74)
	RgbDialogText  = tcell.NewRGBColor(255, 255, 255)
)

// Styles bundles the cell styles used by the renderer
type Styles struct {
	Field       tcell.Style
	Paddle      tcell.Style
	Ball        tcell.Style
	CenterLine  tcell.Style
	Score       tcell.Style
	Title       tcell.Style
	Status      tcell.Style
	Hint        tcell.Style
	DialogFrame tcell.Style
	DialogText  tcell.Style
}

// DefaultStyles returns the dark arcade palette
func DefaultStyles() Styles {
	field := tcell.StyleDefault.Background(RgbBackground)
	chrome := tcell.StyleDefault.Background(RgbChrome)
	dialog := tcell.StyleDefault.Background(RgbDialogBg)
	return Styles{
		Field:       field,
		Paddle:      field.Foreground(RgbPaddle),
		Ball:        field.Foreground(RgbBall),
		CenterLine:  field.Foreground(RgbCenterLine),
		Score:       chrome.Foreground(RgbScore).Bold(true),
		Title:       chrome.Foreground(RgbTitle).Bold(true),
		Status:      chrome.Foreground(RgbStatus).Bold(true),
		Hint:        chrome.Foreground(RgbHint),
		DialogFrame: dialog.Foreground(RgbDialogFrame),
		DialogText:  dialog.Foreground(RgbDialogText),
	}
}
