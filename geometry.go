package slides

// Viewport is the widget's visible size in pixels.
type Viewport struct {
	Width, Height float64
}

// Aspect returns Width/Height, or 0 when the viewport has no height.
func (v Viewport) Aspect() float64 {
	if v.Height <= 0 {
		return 0
	}
	return v.Width / v.Height
}

// SizingSource is anything that reports a current width and height. The
// widget reads its viewport width from one source and its height from
// another; both default to the window.
type SizingSource interface {
	Width() float64
	Height() float64
}

// FixedSize is a SizingSource with a constant size.
type FixedSize struct {
	W, H float64
}

// Width returns the fixed width.
func (s FixedSize) Width() float64 { return s.W }

// Height returns the fixed height.
func (s FixedSize) Height() float64 { return s.H }

// SizeFunc adapts a function to a SizingSource, e.g. to follow another node's
// box or a monitor size.
type SizeFunc func() (w, h float64)

// Width returns the function's current width.
func (f SizeFunc) Width() float64 {
	w, _ := f()
	return w
}

// Height returns the function's current height.
func (f SizeFunc) Height() float64 {
	_, h := f()
	return h
}

// NodeSize returns a SizingSource that follows n's box.
func NodeSize(n *Node) SizingSource {
	return SizeFunc(func() (float64, float64) { return n.Width, n.Height })
}

// ComputeViewport reads the viewport width from width and its height from
// height.
func ComputeViewport(width, height SizingSource) Viewport {
	return Viewport{Width: width.Width(), Height: height.Height()}
}

// Fit says which axis constrains a scaled image.
type Fit uint8

const (
	FitWidth  Fit = iota // width 100% of the viewport, height follows the aspect ratio
	FitHeight            // height 100% of the viewport, width follows the aspect ratio
)

func (f Fit) String() string {
	if f == FitHeight {
		return "height"
	}
	return "width"
}

// AspectRatio returns the image's natural width/height, computing and caching
// it on the node the first time. It returns 0 for an image with no natural
// height.
func AspectRatio(img *Node) float64 {
	if img.aspect == 0 && img.NaturalHeight > 0 {
		img.aspect = img.NaturalWidth / img.NaturalHeight
	}
	return img.aspect
}

// Scale decides how img fills vp: by width when the viewport is at least as
// wide (relative to its height) as the image, otherwise by height. The
// image's aspect ratio is cached for Center.
func Scale(img *Node, vp Viewport) Fit {
	if vp.Aspect() >= AspectRatio(img) {
		return FitWidth
	}
	return FitHeight
}

// Offset is the position of a scaled image relative to its panel.
type Offset struct {
	Top, Left float64
}

// Center returns the offsets that center img within vp on whichever axis the
// scaled image overflows. An axis that does not overflow gets offset 0.
func Center(img *Node, vp Viewport) Offset {
	aspect := AspectRatio(img)
	if aspect <= 0 {
		return Offset{}
	}
	return Offset{Top: centerY(aspect, vp), Left: centerX(aspect, vp)}
}

func centerY(aspect float64, vp Viewport) float64 {
	scaledHeight := vp.Width / aspect
	if scaledHeight >= vp.Height {
		return -(scaledHeight - vp.Height) / 2
	}
	return 0
}

func centerX(aspect float64, vp Viewport) float64 {
	scaledWidth := vp.Height * aspect
	if scaledWidth >= vp.Width {
		return -(scaledWidth - vp.Width) / 2
	}
	return 0
}

// Placement is the box an image occupies inside its panel.
type Placement struct {
	Fit           Fit
	Width, Height float64
	Top, Left     float64
}

// Place scales and centers img for vp and writes the result to the node's box.
func Place(img *Node, vp Viewport) Placement {
	p := Placement{Fit: Scale(img, vp)}
	aspect := AspectRatio(img)
	switch {
	case aspect <= 0:
		p.Width, p.Height = vp.Width, vp.Height
	case p.Fit == FitWidth:
		p.Width, p.Height = vp.Width, vp.Width/aspect
	default:
		p.Width, p.Height = vp.Height*aspect, vp.Height
	}
	off := Center(img, vp)
	p.Top, p.Left = off.Top, off.Left

	img.X, img.Y = p.Left, p.Top
	img.Width, img.Height = p.Width, p.Height
	return p
}
