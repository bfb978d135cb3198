package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/marblemaze/gravity"
)

// Input feeds touches and the left mouse button into a gravity.Pointer.
// The first touch wins; the mouse is only read when nothing touches the
// screen.
type Input struct {
	pointer     *gravity.Pointer
	sceneHeight float64
	touchID     ebiten.TouchID
	touching    bool

	RestartPressed bool
	DebugPressed   bool
}

func NewInput(pointer *gravity.Pointer, sceneHeight float64) *Input {
	return &Input{pointer: pointer, sceneHeight: sceneHeight}
}

func (i *Input) Update() {
	i.RestartPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF3)

	if i.updateTouch() {
		return
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		x, y := ebiten.CursorPosition()
		i.pointer.Down(i.toScene(x, y))
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		x, y := ebiten.CursorPosition()
		i.pointer.Move(i.toScene(x, y))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		i.pointer.Up()
	}
}

// updateTouch reports whether a touch owns the pointer this frame.
func (i *Input) updateTouch() bool {
	if i.touching {
		if inpututil.IsTouchJustReleased(i.touchID) {
			i.touching = false
			i.pointer.Up()
			return true
		}
		for _, id := range ebiten.AppendTouchIDs(nil) {
			if id == i.touchID {
				i.pointer.Move(i.toScene(ebiten.TouchPosition(id)))
				return true
			}
		}
		// The touch vanished without a release event.
		i.touching = false
		i.pointer.Cancel()
		return true
	}

	ids := inpututil.AppendJustPressedTouchIDs(nil)
	if len(ids) == 0 {
		return false
	}
	i.touchID = ids[0]
	i.touching = true
	i.pointer.Down(i.toScene(ebiten.TouchPosition(i.touchID)))
	return true
}

// toScene flips screen y (down) into scene y (up).
func (i *Input) toScene(x, y int) (float64, float64) {
	return float64(x), i.sceneHeight - float64(y)
}
