package game

import (
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// TextureManager loads decorative textures in the background. Loads are
// fire-and-forget: failures log a warning and the slot stays nil, which
// downstream code treats as "use flat vertex colors". There is no
// ordering guarantee relative to the first frame.
type TextureManager struct {
	mu       sync.RWMutex
	textures map[string]*ebiten.Image
}

// NewTextureManager returns an empty manager.
func NewTextureManager() *TextureManager {
	return &TextureManager{textures: make(map[string]*ebiten.Image)}
}

// LoadAsync starts loading the named texture from path.
func (tm *TextureManager) LoadAsync(name, path string) {
	go func() {
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			log.Printf("Warning: texture %q not loaded (%v), using flat colors", name, err)
			return
		}
		tm.mu.Lock()
		tm.textures[name] = img
		tm.mu.Unlock()
	}()
}

// Get returns the named texture, or nil while it is missing or loading.
func (tm *TextureManager) Get(name string) *ebiten.Image {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.textures[name]
}
