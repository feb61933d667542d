package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]IntentType
	// Rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyUp:     IntentPaddleUp,
			tcell.KeyDown:   IntentPaddleDown,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			's': IntentStart,
			'r': IntentReset,
			'h': IntentHelp,
			'?': IntentHelp,
			'k': IntentPaddleUp,
			'j': IntentPaddleDown,
		},
	}
}

// Lookup resolves a key event, falling back to IntentAnyKey
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		if it, ok := kt.Runes[ev.Rune()]; ok {
			return it
		}
		return IntentAnyKey
	}
	if it, ok := kt.SpecialKeys[ev.Key()]; ok {
		return it
	}
	return IntentAnyKey
}
