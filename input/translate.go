package input

import "github.com/gdamore/tcell/v2"

// Translator converts tcell events into intents
type Translator struct {
	keys *KeyTable
}

func NewTranslator(keys *KeyTable) *Translator {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Translator{keys: keys}
}

// Translate maps one terminal event; unrecognized events yield IntentNone
func (t *Translator) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return Intent{Type: t.keys.Lookup(ev)}

	case *tcell.EventMouse:
		// Motion, drag and click all steer the paddle; wheel is ignored
		if ev.Buttons()&(tcell.WheelUp|tcell.WheelDown|tcell.WheelLeft|tcell.WheelRight) != 0 {
			return Intent{}
		}
		x, y := ev.Position()
		return Intent{Type: IntentPointer, Row: y, Col: x}

	case *tcell.EventResize:
		w, h := ev.Size()
		return Intent{Type: IntentResize, Width: w, Height: h}
	}
	return Intent{}
}
