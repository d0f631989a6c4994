package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTranslateRunes(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		key  string
		code int
	}{
		{"Lowercase letter", 'a', "a", 65},
		{"Uppercase letter", 'Q', "Q", 81},
		{"Digit", '7', "7", 55},
		{"Space", ' ', " ", 32},
		{"Punctuation", '?', "?", 63},
		{"Non-ASCII letter", 'é', "é", int('É')},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kp := Translate(tcell.NewEventKey(tcell.KeyRune, tt.r, tcell.ModNone))
			if kp.Key != tt.key {
				t.Errorf("Key = %q, want %q", kp.Key, tt.key)
			}
			if kp.Code != tt.code {
				t.Errorf("Code = %d, want %d", kp.Code, tt.code)
			}
			if kp.IsSpecial() {
				t.Errorf("Single character %q should not be special", kp.Key)
			}
		})
	}
}

func TestTranslateNamedKeys(t *testing.T) {
	tests := []struct {
		k    tcell.Key
		name string
	}{
		{tcell.KeyEnter, "Enter"},
		{tcell.KeyBackspace, "Backspace"},
		{tcell.KeyEscape, "Escape"},
		{tcell.KeyUp, "Up"},
		{tcell.KeyF1, "F1"},
		{tcell.KeyPgUp, "PageUp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kp := Translate(tcell.NewEventKey(tt.k, 0, tcell.ModNone))
			if kp.Key != tt.name {
				t.Errorf("Key = %q, want %q", kp.Key, tt.name)
			}
			if kp.Code != int(tt.k) {
				t.Errorf("Code = %d, want %d", kp.Code, int(tt.k))
			}
			if !kp.IsSpecial() {
				t.Errorf("Named key %q should be special", kp.Key)
			}
		})
	}
}

func TestKeyNameFallback(t *testing.T) {
	if name := KeyName(tcell.Key(9999)); name != "Key9999" {
		t.Errorf("Expected fallback name Key9999, got %q", name)
	}
}

func TestIsQuitKey(t *testing.T) {
	if !IsQuitKey(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)) {
		t.Error("Expected Ctrl+Q to be the quit key")
	}
	if IsQuitKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("Plain q must not quit")
	}
	if IsQuitKey(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Error("Ctrl+C must not quit")
	}
}
