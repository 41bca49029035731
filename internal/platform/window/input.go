package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// binding ties a game action to the keys that trigger it.
type binding struct {
	action core.Action
	keys   []ebiten.Key
}

var bindings = []binding{
	{core.ActionJump, []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
}

// keyboard polls key state and remembers the previous frame so it can tell
// fresh presses from held keys.
type keyboard struct {
	isDown   func(ebiten.Key) bool
	prevKeys map[ebiten.Key]bool
}

func newKeyboard(isDown func(ebiten.Key) bool) *keyboard {
	return &keyboard{isDown: isDown, prevKeys: make(map[ebiten.Key]bool)}
}

// justPressed reports a key that is down now and was up last frame.
func (k *keyboard) justPressed(key ebiten.Key) bool {
	return k.isDown(key) && !k.prevKeys[key]
}

// poll builds this frame's input and advances the previous-key snapshot.
func (k *keyboard) poll() core.InputFrame {
	in := core.NewInputFrame()
	for _, b := range bindings {
		for _, key := range b.keys {
			if k.justPressed(key) {
				in.Set(b.action)
			} else if k.isDown(key) {
				in.SetHeld(b.action)
			}
		}
	}
	for _, b := range bindings {
		for _, key := range b.keys {
			k.prevKeys[key] = k.isDown(key)
		}
	}
	return in
}
