package core

import "sync"

// System internal event codes. Application should use codes beyond 255.
type EventCode uint16

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01

	// Keyboard key pressed. Data: *KeyEvent
	EVENT_CODE_KEY_PRESSED EventCode = 0x02

	// Keyboard key released. Data: *KeyEvent
	EVENT_CODE_KEY_RELEASED EventCode = 0x03

	// Resized/resolution changed from the OS. Data: *SystemEvent
	EVENT_CODE_RESIZED EventCode = 0x08

	// The scene file (or an asset it references) changed on disk. Data: string path
	EVENT_CODE_ASSET_CHANGED EventCode = 0x10

	MAX_EVENT_CODE EventCode = 0xFF
)

type EventContext struct {
	Type EventCode
	Data interface{}
}

type KeyEvent struct {
	KeyCode KeyCode
}

type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
}

// FnOnEvent is invoked synchronously by EventFire on the firing goroutine.
type FnOnEvent func(context EventContext)

type eventSystemState struct {
	mu         sync.RWMutex
	registered map[EventCode][]FnOnEvent
}

var eventState *eventSystemState = nil

func EventSystemInitialize() bool {
	if eventState != nil {
		return false
	}
	eventState = &eventSystemState{
		registered: make(map[EventCode][]FnOnEvent),
	}
	return true
}

func EventSystemShutdown() error {
	if eventState == nil {
		return ErrNotInitialized
	}
	eventState = nil
	return nil
}

// EventRegister adds a listener for the given code. Listeners run in the
// order they were registered.
func EventRegister(code EventCode, onEvent FnOnEvent) bool {
	if eventState == nil || onEvent == nil {
		return false
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()
	eventState.registered[code] = append(eventState.registered[code], onEvent)
	return true
}

// EventUnregisterAll drops every listener of the given code.
func EventUnregisterAll(code EventCode) bool {
	if eventState == nil {
		return false
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()
	if _, ok := eventState.registered[code]; !ok {
		return false
	}
	delete(eventState.registered, code)
	return true
}

// EventFire dispatches the event to every listener of its code and reports
// whether anyone was listening.
func EventFire(context EventContext) bool {
	if eventState == nil {
		return false
	}
	eventState.mu.RLock()
	listeners := append([]FnOnEvent(nil), eventState.registered[context.Type]...)
	eventState.mu.RUnlock()

	for _, fn := range listeners {
		fn(context)
	}
	return len(listeners) > 0
}
