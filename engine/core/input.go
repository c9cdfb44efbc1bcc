package core

import (
	"fmt"
	"sync"
)

// Key code definitions. Values follow the virtual-key table used by the
// platform layer; only keys the window backend maps are listed.
type KeyCode uint16

const (
	KEY_BACKSPACE KeyCode = 0x08
	KEY_TAB       KeyCode = 0x09
	KEY_ENTER     KeyCode = 0x0D
	KEY_ESCAPE    KeyCode = 0x1B
	KEY_SPACE     KeyCode = 0x20
	KEY_LEFT      KeyCode = 0x25
	KEY_UP        KeyCode = 0x26
	KEY_RIGHT     KeyCode = 0x27
	KEY_DOWN      KeyCode = 0x28
	KEY_A         KeyCode = 0x41
	KEY_B         KeyCode = 0x42
	KEY_C         KeyCode = 0x43
	KEY_D         KeyCode = 0x44
	KEY_E         KeyCode = 0x45
	KEY_F         KeyCode = 0x46
	KEY_G         KeyCode = 0x47
	KEY_H         KeyCode = 0x48
	KEY_I         KeyCode = 0x49
	KEY_J         KeyCode = 0x4A
	KEY_K         KeyCode = 0x4B
	KEY_L         KeyCode = 0x4C
	KEY_M         KeyCode = 0x4D
	KEY_N         KeyCode = 0x4E
	KEY_O         KeyCode = 0x4F
	KEY_P         KeyCode = 0x50
	KEY_Q         KeyCode = 0x51
	KEY_R         KeyCode = 0x52
	KEY_S         KeyCode = 0x53
	KEY_T         KeyCode = 0x54
	KEY_U         KeyCode = 0x55
	KEY_V         KeyCode = 0x56
	KEY_W         KeyCode = 0x57
	KEY_X         KeyCode = 0x58
	KEY_Y         KeyCode = 0x59
	KEY_Z         KeyCode = 0x5A
	KEY_F1        KeyCode = 0x70
	KEY_F2        KeyCode = 0x71
	KEY_F3        KeyCode = 0x72
	KEY_F4        KeyCode = 0x73
	KEY_F5        KeyCode = 0x74
	KEY_F6        KeyCode = 0x75
	KEY_F7        KeyCode = 0x76
	KEY_F8        KeyCode = 0x77
	KEY_F9        KeyCode = 0x78
	KEY_F10       KeyCode = 0x79
	KEY_F11       KeyCode = 0x7A
	KEY_F12       KeyCode = 0x7B

	KEYS_MAX_KEYS KeyCode = 0x100
)

// String returns a printable name for the key.
func (k KeyCode) String() string {
	switch {
	case k >= KEY_A && k <= KEY_Z:
		return string(rune(k))
	case k >= KEY_F1 && k <= KEY_F12:
		return fmt.Sprintf("F%d", k-KEY_F1+1)
	}
	switch k {
	case KEY_BACKSPACE:
		return "Backspace"
	case KEY_TAB:
		return "Tab"
	case KEY_ENTER:
		return "Enter"
	case KEY_ESCAPE:
		return "Escape"
	case KEY_SPACE:
		return "Space"
	case KEY_LEFT:
		return "Left"
	case KEY_UP:
		return "Up"
	case KEY_RIGHT:
		return "Right"
	case KEY_DOWN:
		return "Down"
	}
	return "Unknown"
}

// Keyboard state structure
type KeyboardState struct {
	Keys [KEYS_MAX_KEYS]bool
}

// Input state structure that holds current and previous states for the keyboard
type InputState struct {
	KeyboardCurrent  KeyboardState
	KeyboardPrevious KeyboardState
}

var inputMu sync.Mutex
var inputState *InputState = nil

func InputInitialize() error {
	inputMu.Lock()
	inputState = &InputState{}
	inputMu.Unlock()
	LogDebug("Input subsystem initialized.")
	return nil
}

func InputShutdown() error {
	inputMu.Lock()
	inputState = nil
	inputMu.Unlock()
	return nil
}

// InputUpdate copies the current state to the previous one. Call it once at
// the end of every frame.
func InputUpdate(deltaTime float64) error {
	inputMu.Lock()
	defer inputMu.Unlock()
	if inputState == nil {
		return nil
	}
	inputState.KeyboardPrevious = inputState.KeyboardCurrent
	return nil
}

func InputIsKeyDown(key KeyCode) bool {
	inputMu.Lock()
	defer inputMu.Unlock()
	if inputState == nil {
		return false
	}
	return inputState.KeyboardCurrent.Keys[key]
}

func InputIsKeyUp(key KeyCode) bool {
	inputMu.Lock()
	defer inputMu.Unlock()
	if inputState == nil {
		return false
	}
	return !inputState.KeyboardCurrent.Keys[key]
}

func InputWasKeyDown(key KeyCode) bool {
	inputMu.Lock()
	defer inputMu.Unlock()
	if inputState == nil {
		return false
	}
	return inputState.KeyboardPrevious.Keys[key]
}

func InputWasKeyUp(key KeyCode) bool {
	inputMu.Lock()
	defer inputMu.Unlock()
	if inputState == nil {
		return false
	}
	return !inputState.KeyboardPrevious.Keys[key]
}

// InputProcessKey records a key transition and fires a key event when the
// state actually changed.
func InputProcessKey(key KeyCode, pressed bool) error {
	if key >= KEYS_MAX_KEYS {
		return fmt.Errorf("key code %d out of range", key)
	}
	inputMu.Lock()
	if inputState == nil {
		inputMu.Unlock()
		return ErrNotInitialized
	}
	if inputState.KeyboardCurrent.Keys[key] == pressed {
		inputMu.Unlock()
		return nil
	}
	inputState.KeyboardCurrent.Keys[key] = pressed
	inputMu.Unlock()

	code := EVENT_CODE_KEY_RELEASED
	if pressed {
		code = EVENT_CODE_KEY_PRESSED
	}

	// Fire off an event for immediate processing.
	EventFire(EventContext{
		Type: code,
		Data: &KeyEvent{
			KeyCode: key,
		},
	})
	return nil
}
