package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/spaghettifunk/wireframe/engine/platform"
)

var keymap = []struct {
	key  ebiten.Key
	code core.KeyCode
}{
	{ebiten.KeyBackspace, core.KEY_BACKSPACE},
	{ebiten.KeyTab, core.KEY_TAB},
	{ebiten.KeyEnter, core.KEY_ENTER},
	{ebiten.KeyEscape, core.KEY_ESCAPE},
	{ebiten.KeySpace, core.KEY_SPACE},
	{ebiten.KeyArrowLeft, core.KEY_LEFT},
	{ebiten.KeyArrowUp, core.KEY_UP},
	{ebiten.KeyArrowRight, core.KEY_RIGHT},
	{ebiten.KeyArrowDown, core.KEY_DOWN},
	{ebiten.KeyA, core.KEY_A},
	{ebiten.KeyB, core.KEY_B},
	{ebiten.KeyC, core.KEY_C},
	{ebiten.KeyD, core.KEY_D},
	{ebiten.KeyE, core.KEY_E},
	{ebiten.KeyF, core.KEY_F},
	{ebiten.KeyG, core.KEY_G},
	{ebiten.KeyH, core.KEY_H},
	{ebiten.KeyI, core.KEY_I},
	{ebiten.KeyJ, core.KEY_J},
	{ebiten.KeyK, core.KEY_K},
	{ebiten.KeyL, core.KEY_L},
	{ebiten.KeyM, core.KEY_M},
	{ebiten.KeyN, core.KEY_N},
	{ebiten.KeyO, core.KEY_O},
	{ebiten.KeyP, core.KEY_P},
	{ebiten.KeyQ, core.KEY_Q},
	{ebiten.KeyR, core.KEY_R},
	{ebiten.KeyS, core.KEY_S},
	{ebiten.KeyT, core.KEY_T},
	{ebiten.KeyU, core.KEY_U},
	{ebiten.KeyV, core.KEY_V},
	{ebiten.KeyW, core.KEY_W},
	{ebiten.KeyX, core.KEY_X},
	{ebiten.KeyY, core.KEY_Y},
	{ebiten.KeyZ, core.KEY_Z},
	{ebiten.KeyF1, core.KEY_F1},
	{ebiten.KeyF2, core.KEY_F2},
	{ebiten.KeyF3, core.KEY_F3},
	{ebiten.KeyF4, core.KEY_F4},
	{ebiten.KeyF5, core.KEY_F5},
	{ebiten.KeyF6, core.KEY_F6},
	{ebiten.KeyF7, core.KEY_F7},
	{ebiten.KeyF8, core.KEY_F8},
	{ebiten.KeyF9, core.KEY_F9},
	{ebiten.KeyF10, core.KEY_F10},
	{ebiten.KeyF11, core.KEY_F11},
	{ebiten.KeyF12, core.KEY_F12},
}

// pollKeys forwards this tick's key transitions to the application.
func pollKeys(app platform.Application) {
	for _, k := range keymap {
		if inpututil.IsKeyJustPressed(k.key) {
			app.PushKey(k.code, true)
		}
		if inpututil.IsKeyJustReleased(k.key) {
			app.PushKey(k.code, false)
		}
	}
}
