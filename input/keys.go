package input

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/babykeys/engine"
)

// keyNameOverrides renames tcell keys whose names differ from the usual key names
var keyNameOverrides = map[tcell.Key]string{
	tcell.KeyEscape: "Escape",
	tcell.KeyPgUp:   "PageUp",
	tcell.KeyPgDn:   "PageDown",
}

// Translate converts a terminal key event into a key press
// Rune keys keep their character; letter codes are the uppercase character value
// Named keys use the tcell key name and value
func Translate(ev *tcell.EventKey) engine.KeyPress {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		code := int(r)
		if unicode.IsLetter(r) {
			code = int(unicode.ToUpper(r))
		}
		return engine.KeyPress{Key: string(r), Code: code}
	}

	return engine.KeyPress{Key: KeyName(ev.Key()), Code: int(ev.Key())}
}

// KeyName returns the display name for a non-rune key
func KeyName(k tcell.Key) string {
	if name, ok := keyNameOverrides[k]; ok {
		return name
	}
	if name, ok := tcell.KeyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key%d", int(k))
}

// IsQuitKey reports whether ev is the key of the exit chord
func IsQuitKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlQ
}
