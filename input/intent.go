package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // Terminal resize event

	// Match commands
	IntentStart // s
	IntentReset // r
	IntentHelp  // h, ?

	// Paddle control
	IntentPointer    // Mouse motion, drag or click; Row carries the cell row
	IntentPaddleUp   // Up arrow, k
	IntentPaddleDown // Down arrow, j

	// Any other key; closes dialogs
	IntentAnyKey
)

// String returns the intent name for logging
func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "Quit"
	case IntentResize:
		return "Resize"
	case IntentStart:
		return "Start"
	case IntentReset:
		return "Reset"
	case IntentHelp:
		return "Help"
	case IntentPointer:
		return "Pointer"
	case IntentPaddleUp:
		return "PaddleUp"
	case IntentPaddleDown:
		return "PaddleDown"
	case IntentAnyKey:
		return "AnyKey"
	default:
		return "None"
	}
}

// Intent is a translated terminal event
type Intent struct {
	Type IntentType
	// Row and Col are screen cell coordinates for IntentPointer
	Row, Col int
	// Width and Height are the new screen size for IntentResize
	Width, Height int
}
