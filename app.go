package fbopick

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// App draws the point store through an offscreen target and turns clicks
// into points. It implements ebiten.Game; Update and Draw run on the game
// goroutine only.
type App struct {
	cfg      Config
	cams     *CameraPair
	picker   *Picker
	points   PointStore
	fbo      *FrameBuffer
	renderer *Renderer
	drawCam  *OrthoCamera
	input    *Input
	markers  markerSet
	logger   *log.Logger
	script   *ScriptRunner

	showOverlay bool
	showMarkers bool

	screenshotDir   string
	screenshotQueue []string

	// layoutW and layoutH are the window size last reported by Ebitengine.
	layoutW, layoutH int

	lastPick *PickResult
	quit     bool
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger. Without it the App logs nowhere.
func WithLogger(l *log.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithScript attaches a click script that runs from the first frame.
func WithScript(r *ScriptRunner) Option {
	return func(a *App) { a.script = r }
}

// NewApp validates cfg, builds the camera pair and allocates the FBO.
func NewApp(cfg Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	renderer, err := NewRendererFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	cams := NewCameraPair(cfg.Window.Width, cfg.Window.Height, cfg.FBOScale, cfg.WorldScale)
	a := &App{
		cfg:           cfg,
		cams:          cams,
		fbo:           NewFrameBuffer(cams.FBOWidth, cams.FBOHeight),
		renderer:      renderer,
		drawCam:       cams.World,
		input:         NewInput(),
		logger:        discardLogger(),
		showOverlay:   cfg.Overlay,
		showMarkers:   cfg.Markers,
		screenshotDir: cfg.ScreenshotDir,
	}
	if cfg.RenderCamera == RenderWithFBO {
		a.drawCam = cams.FBO
	}
	a.picker = &Picker{Cameras: cams, Display: a, Mode: cfg.Mode}
	for _, opt := range opts {
		opt(a)
	}

	a.input.OnPointerDown(a.handlePointerDown)

	a.logger.Info("app ready",
		"window", [2]int{cams.WindowWidth, cams.WindowHeight},
		"fbo", [2]int{cams.FBOWidth, cams.FBOHeight},
		"world", [2]float64{cams.World.ViewportWidth, cams.World.ViewportHeight},
		"mode", a.picker.Mode)
	return a, nil
}

// Size implements Display with the window size Ebitengine last reported
// through Layout, or the configured size before the first Layout.
func (a *App) Size() (int, int) {
	if a.layoutW == 0 || a.layoutH == 0 {
		return a.cfg.Window.Width, a.cfg.Window.Height
	}
	return a.layoutW, a.layoutH
}

// Cameras returns the camera pair.
func (a *App) Cameras() *CameraPair {
	return a.cams
}

// Points returns the point store.
func (a *App) Points() *PointStore {
	return &a.points
}

// Input returns the input dispatcher, e.g. to inject clicks.
func (a *App) Input() *Input {
	return a.input
}

// Mode returns the active unprojection mode.
func (a *App) Mode() Mode {
	return a.picker.Mode
}

// SetMode switches the unprojection mode. Existing points are kept.
func (a *App) SetMode(m Mode) {
	if a.picker.Mode == m {
		return
	}
	a.picker.Mode = m
	a.logger.Info("mode changed", "mode", m)
}

// LastPick returns the most recent primary click, or nil.
func (a *App) LastPick() *PickResult {
	return a.lastPick
}

// ClearPoints discards every stored point.
func (a *App) ClearPoints() {
	n := a.points.Len()
	a.points.Clear()
	a.logger.Info("points cleared", "count", n)
}

// Quit ends the game loop after the current frame.
func (a *App) Quit() {
	a.quit = true
}

// handlePointerDown adds a point on a primary press and clears the store on
// a secondary press.
func (a *App) handlePointerDown(ctx PointerContext) {
	switch ctx.Button {
	case MouseButtonLeft:
		res := a.picker.Pick(ctx.ScreenX, ctx.ScreenY)
		a.points.Add(res.Point())
		a.lastPick = &res
		if a.showMarkers {
			a.markers.add(ctx.ScreenX, ctx.ScreenY)
		}
		a.logger.Debug("point added",
			"mode", res.Mode,
			"screen", res.Screen,
			"fbo", res.FBO,
			"world", res.World,
			"count", a.points.Len())
	case MouseButtonRight:
		a.ClearPoints()
	}
}

func (a *App) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		a.SetMode(a.picker.Mode.Toggle())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.ClearPoints()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		a.showOverlay = !a.showOverlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		a.Screenshot("manual")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.Quit()
	}
}

// Update runs the script, keyboard shortcuts and pointer input, then
// advances click markers.
func (a *App) Update() error {
	if a.script != nil {
		a.script.step(a)
	}
	a.handleKeys()
	a.input.Update()
	a.markers.update(float32(1.0 / float64(ebiten.TPS())))

	if a.quit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the points into the FBO, stretches the FBO over the window
// and draws markers and the overlay on top.
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.DrawPoints(a.fbo, a.drawCam, &a.points)
	a.renderer.Present(a.fbo, screen)

	if a.showMarkers {
		a.markers.draw(screen)
	}
	if a.showOverlay {
		a.drawOverlay(screen)
	}
	a.flushScreenshots(screen)
}

// Layout records the window size and keeps the logical screen at the
// configured size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.layoutW, a.layoutH = outsideWidth, outsideHeight
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// Dispose releases the FBO.
func (a *App) Dispose() {
	if a.fbo != nil {
		a.fbo.Dispose()
		a.fbo = nil
	}
}
