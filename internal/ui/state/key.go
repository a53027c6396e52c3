package state

// Key names the physical keys the engine reacts to. Printable input arrives
// as EventText instead.
type Key int

const (
	KeyUnknown Key = iota
	KeyBackspace
	KeyReturn
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyLCtrl
	KeyRCtrl
	KeyK
	KeyN
	KeyP
	KeyEscape
)

var keyNames = map[Key]string{
	KeyBackspace: "backspace",
	KeyReturn:    "return",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyLCtrl:     "lctrl",
	KeyRCtrl:     "rctrl",
	KeyK:         "k",
	KeyN:         "n",
	KeyP:         "p",
	KeyEscape:    "escape",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsCtrl reports whether k is either control key.
func (k Key) IsCtrl() bool {
	return k == KeyLCtrl || k == KeyRCtrl
}

// EventKind classifies an input event.
type EventKind int

const (
	EventText EventKind = iota
	EventPress
	EventRelease
)

// Event is one input event fed to the engine.
type Event struct {
	Kind EventKind
	Key  Key
	Text string
}

// Text builds a text insertion event.
func Text(s string) Event { return Event{Kind: EventText, Text: s} }

// Press builds a key press event.
func Press(k Key) Event { return Event{Kind: EventPress, Key: k} }

// Release builds a key release event.
func Release(k Key) Event { return Event{Kind: EventRelease, Key: k} }

// Chord expands a control chord into the press/release sequence a keyboard
// with modifier reporting would produce.
func Chord(k Key) []Event {
	return []Event{Press(KeyLCtrl), Press(k), Release(k), Release(KeyLCtrl)}
}

// Tap expands a plain key into press and release.
func Tap(k Key) []Event {
	return []Event{Press(k), Release(k)}
}
