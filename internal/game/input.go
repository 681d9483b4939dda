package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/rishik7575/3d-farm-visualizer/internal/mathutil"
	"github.com/rishik7575/3d-farm-visualizer/internal/scene"
)

// InputHandler handles all user input for the visualizer.
type InputHandler struct {
	game *FarmGame

	lastMouseX int
	lastMouseY int
	dragging   bool
	panning    bool
}

// NewInputHandler creates a new input handler.
func NewInputHandler(game *FarmGame) *InputHandler {
	return &InputHandler{game: game}
}

// HandleInput processes all input for the current frame.
func (ih *InputHandler) HandleInput() {
	ih.handleViewInput()
	ih.handleFarmInput()
	ih.handleUIInput()
	ih.handleMouseInput()
}

// handleViewInput covers camera presets, reset and fullscreen.
func (ih *InputHandler) handleViewInput() {
	g := ih.game
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		g.scene.SetViewMode(scene.ViewTop)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		g.scene.SetViewMode(scene.ViewSide)
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		g.scene.SetViewMode(scene.ViewAngled)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.scene.Rig().Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
}

// handleFarmInput changes acreage and cycles the demo allocation presets,
// both of which trigger a scene rebuild.
func (ih *InputHandler) handleFarmInput() {
	g := ih.game
	changed := false

	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.acres = int(mathutil.Clamp(float64(g.acres-10), 10, 5000))
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.acres = int(mathutil.Clamp(float64(g.acres+10), 10, 5000))
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.presetIdx = (g.presetIdx + 1) % len(allocationPresets)
		changed = true
	}

	if changed {
		g.requestRebuild()
	}
}

// handleUIInput toggles the overlays.
func (ih *InputHandler) handleUIInput() {
	g := ih.game
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showFPS = !g.showFPS
	}
}

// handleMouseInput applies orbit (left drag), pan (right drag) and zoom
// (wheel) to the camera rig.
func (ih *InputHandler) handleMouseInput() {
	g := ih.game
	x, y := ebiten.CursorPosition()
	dx, dy := float64(x-ih.lastMouseX), float64(y-ih.lastMouseY)
	ih.lastMouseX, ih.lastMouseY = x, y

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	if left {
		if ih.dragging {
			g.scene.Rig().Orbit(dx, dy)
		}
		ih.dragging = true
	} else {
		ih.dragging = false
	}

	if right {
		if ih.panning {
			g.scene.Rig().Pan(dx, dy)
		}
		ih.panning = true
	} else {
		ih.panning = false
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		g.scene.Rig().Zoom(wheelY)
	}
}
