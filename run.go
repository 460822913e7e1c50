package sprig

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window opened by Run. Zero values fall back to
// defaults: an 800x600 window titled "sprig" cleared to black.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	Background Color
	Resizable  bool
	Debug      bool
}

const (
	defaultWindowWidth  = 800
	defaultWindowHeight = 600
	defaultWindowTitle  = "sprig"
)

func (c RunConfig) withDefaults() RunConfig {
	if c.Width <= 0 {
		c.Width = defaultWindowWidth
	}
	if c.Height <= 0 {
		c.Height = defaultWindowHeight
	}
	if c.Title == "" {
		c.Title = defaultWindowTitle
	}
	return c
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	cfg   RunConfig
}

func (g *game) Update() error {
	g.scene.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.Background.A > 0 {
		screen.Fill(g.cfg.Background)
	}
	g.scene.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Resizable {
		return outsideWidth, outsideHeight
	}
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives scene until the window is closed. It blocks
// and returns the error that stopped the game loop, if any.
func Run(scene *Scene, cfg RunConfig) error {
	cfg = cfg.withDefaults()
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(&game{scene: scene, cfg: cfg})
}
