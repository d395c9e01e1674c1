package slides

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	// TPS overrides ebiten's ticks per second when positive.
	TPS int
	// Background fills the screen before the widget is drawn. Nil leaves
	// ebiten's default clear.
	Background color.Color
	ShowFPS    bool
}

// Run opens a window and drives w until the window is closed. For full
// control, use the Widget as an ebiten.Game directly.
func Run(w *Widget, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("run: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	game := &gameShell{widget: w, background: cfg.Background}
	if cfg.ShowFPS {
		game.fps = &fpsOverlay{}
	}
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// gameShell adds the window extras of RunConfig around a widget.
type gameShell struct {
	widget     *Widget
	background color.Color
	fps        *fpsOverlay
}

func (g *gameShell) Update() error {
	if g.fps != nil {
		g.fps.update(1 / float64(ebitenTPS()))
	}
	return g.widget.Update()
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	if g.background != nil {
		screen.Fill(g.background)
	}
	g.widget.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *gameShell) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.widget.Layout(outsideWidth, outsideHeight)
}

// ebitenTPS returns the configured tick rate, treating ebiten.SyncWithFPS
// as 60.
func ebitenTPS() int {
	if tps := ebiten.TPS(); tps > 0 {
		return tps
	}
	return 60
}
