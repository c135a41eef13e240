package fbopick

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot asks for the next drawn frame to be saved as
// <screenshot_dir>/<timestamp>_<label>.png.
func (a *App) Screenshot(label string) {
	a.screenshotQueue = append(a.screenshotQueue, label)
}

// flushScreenshots runs last in Draw so the file shows the overlay and
// markers too.
func (a *App) flushScreenshots(screen *ebiten.Image) {
	if len(a.screenshotQueue) == 0 {
		return
	}
	labels := a.screenshotQueue
	a.screenshotQueue = a.screenshotQueue[:0]

	if err := os.MkdirAll(a.screenshotDir, 0o755); err != nil {
		a.logger.Error("screenshot dir", "dir", a.screenshotDir, "error", err)
		return
	}

	frame := captureFrame(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range labels {
		name := stamp + "_" + sanitizeLabel(label) + ".png"
		path := filepath.Join(a.screenshotDir, name)
		if err := writePNG(path, frame); err != nil {
			a.logger.Error("screenshot failed", "label", label, "error", err)
			continue
		}
		a.logger.Info("screenshot saved", "path", path)
	}
}

// captureFrame reads src back from the GPU. Ebitengine pixels are
// premultiplied like image.RGBA, so the PNG encoder un-premultiplies them.
func captureFrame(src *ebiten.Image) *image.RGBA {
	img := image.NewRGBA(src.Bounds())
	src.ReadPixels(img.Pix)
	return img
}

// writePNG saves img at path. Screenshots favor speed over size.
func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("screenshot: close %s: %w", path, cerr)
		}
	}()

	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(f, img); err != nil {
		return fmt.Errorf("screenshot: encode %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.' and maps every
// other rune to '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' || r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return '_'
	}, label)
}
