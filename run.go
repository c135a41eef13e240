package fbopick

import "github.com/hajimehoshi/ebiten/v2"

// Run opens a fixed-size, non-resizable window and runs the App until the
// window closes or the App quits. The FBO is released on return.
func Run(cfg Config, opts ...Option) error {
	app, err := NewApp(cfg, opts...)
	if err != nil {
		return err
	}
	defer app.Dispose()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	// Update returning ebiten.Termination makes RunGame return nil.
	if err := ebiten.RunGame(app); err != nil {
		return err
	}
	app.logger.Info("stopped", "points", app.points.Len())
	return nil
}
