package slides

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the next drawn frame. The PNG is
// written to ScreenshotDir as <timestamp>_<label>_slide<N>.png, where N is
// the index of the current slide when the frame is drawn. The slide suffix
// is left out while no slide has been shown.
func (w *Widget) Screenshot(label string) {
	w.screenshotQueue = append(w.screenshotQueue, label)
}

// flushScreenshots writes the frame once per queued label. Called at the end
// of Widget.Draw.
func (w *Widget) flushScreenshots(screen *ebiten.Image) {
	if len(w.screenshotQueue) == 0 {
		return
	}
	defer func() { w.screenshotQueue = w.screenshotQueue[:0] }()

	if err := os.MkdirAll(w.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[slides] screenshot: mkdir %s: %v\n", w.ScreenshotDir, err)
		return
	}

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, b.Dx(), b.Dy())

	stamp := time.Now().Format("20060102_150405")
	slide := w.Position().Current
	for _, label := range w.screenshotQueue {
		path := filepath.Join(w.ScreenshotDir, screenshotName(stamp, label, slide))
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[slides] screenshot: %v\n", err)
			continue
		}
		w.logf("screenshot %s", path)
	}
}

// screenshotName builds the file name for one capture. slide < 0 means no
// slide is showing yet.
func screenshotName(stamp, label string, slide int) string {
	name := stamp + "_" + sanitizeLabel(label)
	if slide >= 0 {
		name += "_slide" + strconv.Itoa(slide)
	}
	return name + ".png"
}

// unpremultiply converts premultiplied RGBA pixels, as read back from the
// screen, to a straight-alpha image.
func unpremultiply(pixels []byte, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	n := min(len(pixels), len(img.Pix)) &^ 3
	for i := 0; i < n; i += 4 {
		px := img.Pix[i : i+4 : i+4]
		copy(px, pixels[i:i+4])
		if a := int(px[3]); a > 0 && a < 255 {
			for c := 0; c < 3; c++ {
				px[c] = uint8(min(int(px[c])*255/a, 255))
			}
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', replacing every other
// rune with '_'. Empty labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
