package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/rishik7575/3d-farm-visualizer/internal/farm"
	"github.com/rishik7575/3d-farm-visualizer/internal/mathutil"
)

// UISystem draws the 2D overlays: sky backdrop, HUD legend, loading
// banner, event messages and the help screen.
type UISystem struct {
	game *FarmGame

	// skyImg is a cached 1-pixel-wide vertical gradient, stretched to
	// the screen each frame.
	skyImg *ebiten.Image
}

// NewUISystem builds the UI layer and its cached sky gradient.
func NewUISystem(game *FarmGame) *UISystem {
	const steps = 128
	sky := ebiten.NewImage(1, steps)
	top := game.cfg.Render.SkyTop
	bottom := game.cfg.Render.SkyBottom
	for y := 0; y < steps; y++ {
		t := float64(y) / float64(steps-1)
		sky.Set(0, y, color.RGBA{
			uint8(mathutil.Lerp(float64(top[0]), float64(bottom[0]), t)),
			uint8(mathutil.Lerp(float64(top[1]), float64(bottom[1]), t)),
			uint8(mathutil.Lerp(float64(top[2]), float64(bottom[2]), t)),
			255,
		})
	}
	return &UISystem{game: game, skyImg: sky}
}

// DrawSky paints the gradient backdrop before any 3D geometry.
func (ui *UISystem) DrawSky(screen *ebiten.Image) {
	bounds := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()), float64(bounds.Dy())/float64(ui.skyImg.Bounds().Dy()))
	screen.DrawImage(ui.skyImg, op)
}

// Draw renders all HUD overlays for the frame.
func (ui *UISystem) Draw(screen *ebiten.Image) {
	ui.drawLegend(screen)
	ui.drawMessages(screen)

	if ui.game.scene.Loading() {
		ui.drawLoading(screen)
	}
	if ui.game.showHelp {
		ui.drawHelp(screen)
	}
}

// drawLegend shows acreage, the active preset and a color swatch per crop.
func (ui *UISystem) drawLegend(screen *ebiten.Image) {
	g := ui.game
	x, y := 12, 12

	ebitenutil.DebugPrintAt(screen, g.statusLine(), x, y)
	y += 22

	for _, alloc := range g.allocations() {
		if alloc.Percentage <= 0 {
			continue
		}
		def := farm.Definition(alloc.Type)
		c := color.RGBA{uint8(def.Color[0]), uint8(def.Color[1]), uint8(def.Color[2]), 255}
		vector.DrawFilledRect(screen, float32(x), float32(y), 14, 14, c, false)
		label := fmt.Sprintf("%s %.0f%% (%.1f ac)", def.Name, alloc.Percentage, alloc.Acres)
		ebitenutil.DebugPrintAt(screen, label, x+20, y)
		y += 18
	}

	ebitenutil.DebugPrintAt(screen, "H: help", x, y+6)
}

// drawMessages shows the most recent scene notifications bottom-left.
func (ui *UISystem) drawMessages(screen *ebiten.Image) {
	g := ui.game
	h := screen.Bounds().Dy()
	y := h - 18*len(g.messages) - 10
	for _, msg := range g.messages {
		ebitenutil.DebugPrintAt(screen, msg, 12, y)
		y += 18
	}
}

// drawLoading dims the view while a rebuild is pending.
func (ui *UISystem) drawLoading(screen *ebiten.Image) {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h),
		color.RGBA{0, 0, 0, 90}, false)

	msg := "Generating farm..."
	face := basicfont.Face7x13
	tw := len(msg) * 7
	text.Draw(screen, msg, face, (w-tw)/2, h/2, color.White)
}

// drawHelp renders the control reference over a translucent panel.
func (ui *UISystem) drawHelp(screen *ebiten.Image) {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	panelW, panelH := 340, 230
	px := (w - panelW) / 2
	py := (h - panelH) / 2

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH),
		color.RGBA{10, 24, 10, 215}, false)

	lines := []string{
		"Controls",
		"",
		"1 / 2 / 3      top / side / angled view",
		"Left drag      orbit camera",
		"Right drag     pan camera",
		"Wheel          zoom",
		"R              reset camera",
		"- / =          shrink / grow acreage",
		"Tab            cycle crop allocation",
		"F              fullscreen",
		"F3             frame stats",
		"H              close this help",
	}
	y := py + 16
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, px+18, y)
		y += 17
	}
}

// DrawFPS prints frame statistics top-right.
func (ui *UISystem) DrawFPS(screen *ebiten.Image) {
	g := ui.game
	w := screen.Bounds().Dx()
	stats := fmt.Sprintf("FPS %.0f | frame %.2fms | build %dms",
		ebiten.ActualFPS(),
		float64(g.monitor.AvgFrameTime().Microseconds())/1000,
		g.monitor.LastBuildTime().Milliseconds())
	x := mathutil.IntMax(0, w-len(stats)*6-16)
	ebitenutil.DebugPrintAt(screen, stats, x, 12)
}
