package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rishik7575/3d-farm-visualizer/internal/config"
	"github.com/rishik7575/3d-farm-visualizer/internal/farm"
	"github.com/rishik7575/3d-farm-visualizer/internal/geom"
	"github.com/rishik7575/3d-farm-visualizer/internal/render"
	"github.com/rishik7575/3d-farm-visualizer/internal/scene"
	"github.com/rishik7575/3d-farm-visualizer/internal/task"
)

// cropSplit is one crop's share within a demo preset.
type cropSplit struct {
	crop farm.CropType
	pct  float64
}

// allocationPreset is a demo crop split. In the full product these lists
// come from the recommendation engine; the scene consumes them as opaque
// input either way.
type allocationPreset struct {
	name   string
	splits []cropSplit
}

var allocationPresets = []allocationPreset{
	{"balanced", []cropSplit{
		{farm.CropWheat, 30}, {farm.CropCorn, 40}, {farm.CropSoybean, 20}, {farm.CropCotton, 10}}},
	{"corn heavy", []cropSplit{
		{farm.CropWheat, 15}, {farm.CropCorn, 60}, {farm.CropSoybean, 15}, {farm.CropCotton, 10}}},
	{"wheat and soybean", []cropSplit{
		{farm.CropWheat, 50}, {farm.CropSoybean, 50}}},
	{"corn only", []cropSplit{
		{farm.CropCorn, 100}}},
}

// FarmGame is the ebiten application shell around one Scene.
type FarmGame struct {
	cfg      *config.Config
	scene    *scene.Scene
	renderer *render.Renderer
	monitor  *task.FrameMonitor
	input    *InputHandler
	ui       *UISystem
	textures *TextureManager

	acres     int
	presetIdx int

	showHelp bool
	showFPS  bool

	// Event messages shown briefly in the corner.
	messages    []string
	maxMessages int
	messageAge  int

	items []render.DrawItem
}

// NewFarmGame builds the scene and wires up input, UI and textures.
func NewFarmGame(cfg *config.Config) *FarmGame {
	sc := scene.NewScene(cfg, time.Now().UnixNano())

	g := &FarmGame{
		cfg:         cfg,
		scene:       sc,
		renderer:    render.NewRenderer(),
		monitor:     task.NewFrameMonitor(),
		textures:    NewTextureManager(),
		acres:       50,
		maxMessages: 3,
	}
	light := cfg.Render.LightDir
	g.renderer.LightDir = geom.V3(light[0], light[1], light[2])
	g.renderer.Ambient = cfg.Render.Ambient

	g.input = NewInputHandler(g)
	g.ui = NewUISystem(g)

	sc.OnEvent(func(ev scene.Event) {
		g.pushMessage(ev.Message)
	})

	// Decorative textures load in the background; early frames render
	// with flat vertex colors until (unless) they arrive.
	g.textures.LoadAsync("soil", "assets/textures/soil.png")
	g.textures.LoadAsync("water", "assets/textures/water.png")

	g.requestRebuild()
	return g
}

// expandPreset turns a preset into the allocation list the scene consumes,
// apportioning the given acreage by percentage.
func expandPreset(preset allocationPreset, acres float64) []farm.CropAllocation {
	allocs := make([]farm.CropAllocation, 0, len(preset.splits))
	for _, split := range preset.splits {
		allocs = append(allocs, farm.CropAllocation{
			Type:       split.crop,
			Percentage: split.pct,
			Acres:      acres * split.pct / 100,
		})
	}
	return allocs
}

// allocations expands the active preset against the current acreage.
func (g *FarmGame) allocations() []farm.CropAllocation {
	return expandPreset(allocationPresets[g.presetIdx], float64(g.acres))
}

func (g *FarmGame) requestRebuild() {
	g.scene.RequestRebuild(float64(g.acres), g.allocations())
}

func (g *FarmGame) pushMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > g.maxMessages {
		g.messages = g.messages[len(g.messages)-g.maxMessages:]
	}
	g.messageAge = 0
}

// Update advances one frame: input, then the scene tick.
func (g *FarmGame) Update() error {
	timer := g.monitor.StartFrame()
	defer timer.EndFrame()

	g.input.HandleInput()

	dt := 1.0 / float64(ebiten.TPS())
	if g.scene.Loading() {
		g.monitor.RecordBuild(func() { g.scene.Update(dt) })
	} else {
		g.scene.Update(dt)
	}

	// Let stale notifications fade out.
	g.messageAge++
	if g.messageAge > 240 && len(g.messages) > 0 {
		g.messages = g.messages[1:]
		g.messageAge = 0
	}

	return nil
}

// Draw renders the sky, the 3D scene, then the UI overlays, submitting
// exactly one scene pass per frame.
func (g *FarmGame) Draw(screen *ebiten.Image) {
	g.ui.DrawSky(screen)

	g.items = g.scene.CollectDrawItems(g.items[:0],
		g.textures.Get("soil"), g.textures.Get("water"))
	g.renderer.Render(screen, g.scene.Rig().Camera(), g.items)

	g.ui.Draw(screen)

	if g.showFPS {
		g.ui.DrawFPS(screen)
	}
}

// Layout tracks the window so the render surface always fills its
// container.
func (g *FarmGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.cfg.GetScreenWidth(), g.cfg.GetScreenHeight()
	}
	return outsideWidth, outsideHeight
}

// Shutdown releases the scene; called when the game window closes.
func (g *FarmGame) Shutdown() {
	g.scene.Dispose()
}

// statusLine summarizes the current state for the HUD.
func (g *FarmGame) statusLine() string {
	return fmt.Sprintf("%d acres | %s | view: %s",
		g.acres, allocationPresets[g.presetIdx].name, g.scene.Rig().Mode())
}
