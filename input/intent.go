package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit        // q, Esc, Ctrl+C
	IntentTogglePause // Space
	IntentReset       // r
	IntentToggleMute  // m
	IntentResize      // Terminal resize event
	IntentPointer     // Mouse sample forwarded to the pointer sink
)

// Intent is the parsed result of one terminal event
type Intent struct {
	Type IntentType
}

func (t IntentType) String() string {
	switch t {
	case IntentNone:
		return "none"
	case IntentQuit:
		return "quit"
	case IntentTogglePause:
		return "pause"
	case IntentReset:
		return "reset"
	case IntentToggleMute:
		return "mute"
	case IntentResize:
		return "resize"
	case IntentPointer:
		return "pointer"
	default:
		return "unknown"
	}
}
