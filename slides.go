package slides

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a rect node is drawn.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default fill for rect nodes.
var ColorWhite = Color{1, 1, 1, 1}

// premultiplied returns the color scaled by its own alpha and the inherited
// alpha, ready for ebiten.ColorScale.
func (c Color) premultiplied(alpha float64) (r, g, b, a float32) {
	a64 := c.A * alpha
	return float32(c.R * a64), float32(c.G * a64), float32(c.B * a64), float32(a64)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeImage                     // draws Node.Image stretched to Width x Height
	NodeTypeRect                      // fills Width x Height with Node.Color
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// whitePixel is the 1x1 source image scaled up to draw rect nodes. Created on
// first use so that building a widget never touches the graphics driver.
var whitePixel *ebiten.Image

func whiteImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}
