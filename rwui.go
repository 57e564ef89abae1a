package rwui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

// ColorWhite is plain opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to the premultiplied 8-bit form Ebitengine expects,
// clamping each component into [0, 1] first.
func (c Color) toRGBA() color.RGBA {
	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	a := clamp(c.A)
	return color.RGBA{
		R: uint8(clamp(c.R) * a * 255),
		G: uint8(clamp(c.G) * a * 255),
		B: uint8(clamp(c.B) * a * 255),
		A: uint8(a * 255),
	}
}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the
// API. The coordinate system has its origin at the top-left, with Y increasing
// downward.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// WhitePixel is a 1x1 white image used for solid color fills and overlays.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)
