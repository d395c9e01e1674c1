package slides

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Draw renders the widget's tree onto screen, then writes any screenshots
// queued during the frame.
func (w *Widget) Draw(screen *ebiten.Image) {
	if !w.destroyed {
		var ox, oy, alpha float64 = 0, 0, 1
		if p := w.root.Parent; p != nil {
			ox, oy = p.WorldPosition()
			alpha = p.worldAlpha()
		}
		drawNode(screen, w.root, ox, oy, alpha, screen.Bounds())
	}
	w.flushScreenshots(screen)
}

// drawNode draws n at parent offset (ox, oy) with inherited alpha, then its
// children in paint order. A clipping node narrows clip to its own box.
func drawNode(screen *ebiten.Image, n *Node, ox, oy, alpha float64, clip image.Rectangle) {
	if !n.Visible || n.disposed {
		return
	}
	x, y := ox+n.X, oy+n.Y
	alpha *= n.Alpha
	if alpha <= 0 {
		return
	}

	if n.Clip {
		clip = clip.Intersect(pixelRect(x, y, n.Width, n.Height))
		if clip.Empty() {
			return
		}
	}
	dst := screen
	if clip != screen.Bounds() {
		dst = screen.SubImage(clip).(*ebiten.Image)
	}

	switch n.Type {
	case NodeTypeImage:
		if n.Image != nil {
			var op ebiten.DrawImageOptions
			op.GeoM = imageGeoM(n, x, y)
			op.ColorScale.ScaleAlpha(float32(alpha))
			op.Filter = ebiten.FilterLinear
			dst.DrawImage(n.Image, &op)
		}
	case NodeTypeRect:
		if n.Width > 0 && n.Height > 0 {
			var op ebiten.DrawImageOptions
			op.GeoM.Scale(n.Width, n.Height)
			op.GeoM.Translate(x, y)
			op.ColorScale.Scale(n.Color.premultiplied(alpha))
			dst.DrawImage(whiteImage(), &op)
		}
	}

	for _, child := range n.paintOrder() {
		drawNode(screen, child, x, y, alpha, clip)
	}
}

// imageGeoM stretches an image node's source to its Width x Height box at
// (x, y). A zero box draws the source at its natural size.
func imageGeoM(n *Node, x, y float64) ebiten.GeoM {
	var m ebiten.GeoM
	b := n.Image.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	if sw > 0 && sh > 0 && n.Width > 0 && n.Height > 0 {
		m.Scale(n.Width/sw, n.Height/sh)
	}
	m.Translate(x, y)
	return m
}

// pixelRect rounds a box outward to whole pixels.
func pixelRect(x, y, w, h float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	)
}
