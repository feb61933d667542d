package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTranslateKeys(t *testing.T) {
	tr := NewTranslator(nil)

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want IntentType
	}{
		{"start", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), IntentStart},
		{"reset", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), IntentReset},
		{"help", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), IntentHelp},
		{"quit rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), IntentPaddleUp},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), IntentPaddleDown},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), IntentAnyKey},
		{"unbound key", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), IntentAnyKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.Translate(tt.ev).Type; got != tt.want {
				t.Errorf("Translate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTranslateMouse(t *testing.T) {
	tr := NewTranslator(nil)

	got := tr.Translate(tcell.NewEventMouse(12, 7, tcell.ButtonNone, tcell.ModNone))
	if got.Type != IntentPointer || got.Row != 7 || got.Col != 12 {
		t.Errorf("motion = %+v, want pointer at row 7 col 12", got)
	}

	got = tr.Translate(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone))
	if got.Type != IntentPointer || got.Row != 4 {
		t.Errorf("click = %+v, want pointer at row 4", got)
	}

	got = tr.Translate(tcell.NewEventMouse(3, 4, tcell.WheelUp, tcell.ModNone))
	if got.Type != IntentNone {
		t.Errorf("wheel = %v, want none", got.Type)
	}
}

func TestTranslateResize(t *testing.T) {
	tr := NewTranslator(nil)
	got := tr.Translate(tcell.NewEventResize(120, 40))
	if got.Type != IntentResize || got.Width != 120 || got.Height != 40 {
		t.Errorf("resize = %+v", got)
	}
}

func TestIntentString(t *testing.T) {
	if IntentPointer.String() != "Pointer" || IntentType(200).String() != "None" {
		t.Error("unexpected intent names")
	}
}
