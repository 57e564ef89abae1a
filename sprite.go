package rwui

import "github.com/hajimehoshi/ebiten/v2"

// Sprite is the rendering primitive behind a rectangular widget: a background
// quad (solid colour or texture, scaled to size) plus a white overlay quad
// whose alpha carries the widget's highlight intensity.
//
// A sprite holds no interaction logic. Widgets push their animated geometry
// and overlay values into it every frame.
type Sprite struct {
	position     Vec2
	size         Vec2
	zIndex       float64
	backColour   Color
	texture      *ebiten.Image
	overlayAlpha float64
}

// NewSprite creates a sprite with the given geometry and background. texture
// may be nil for a solid colour fill.
func NewSprite(position, size Vec2, zIndex float64, backColour Color, texture *ebiten.Image) *Sprite {
	return &Sprite{
		position:   position,
		size:       size,
		zIndex:     zIndex,
		backColour: backColour,
		texture:    texture,
	}
}

// SetPosition moves the sprite to a new absolute position.
func (s *Sprite) SetPosition(position Vec2) {
	s.position = position
}

// SetSize resizes the sprite.
func (s *Sprite) SetSize(size Vec2) {
	s.size = size
}

// SetOverlayAlpha sets the white overlay intensity. Values are clamped into
// [0, 1] at draw time only; the stored value is kept as given.
func (s *Sprite) SetOverlayAlpha(alpha float64) {
	s.overlayAlpha = alpha
}

// SetZIndex changes the sprite's z-index. Lower values are drawn in front of
// higher ones; callers are responsible for draw ordering.
func (s *Sprite) SetZIndex(zIndex float64) {
	s.zIndex = zIndex
}

// ZIndex returns the sprite's z-index.
func (s *Sprite) ZIndex() float64 {
	return s.zIndex
}

// Draw renders the background quad and, if the overlay intensity is positive,
// the white overlay quad on top.
func (s *Sprite) Draw(screen *ebiten.Image) {
	if s.size.X <= 0 || s.size.Y <= 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	if s.texture != nil {
		bounds := s.texture.Bounds()
		op.GeoM.Scale(s.size.X/float64(bounds.Dx()), s.size.Y/float64(bounds.Dy()))
		op.GeoM.Translate(s.position.X, s.position.Y)
		screen.DrawImage(s.texture, op)
	} else {
		op.GeoM.Scale(s.size.X, s.size.Y)
		op.GeoM.Translate(s.position.X, s.position.Y)
		a := float32(clamp01(s.backColour.A))
		op.ColorScale.Scale(float32(s.backColour.R)*a, float32(s.backColour.G)*a, float32(s.backColour.B)*a, a)
		screen.DrawImage(WhitePixel, op)
	}

	alpha := float32(clamp01(s.overlayAlpha))
	if alpha <= 0 {
		return
	}
	overlayOp := &ebiten.DrawImageOptions{}
	overlayOp.GeoM.Scale(s.size.X, s.size.Y)
	overlayOp.GeoM.Translate(s.position.X, s.position.Y)
	overlayOp.ColorScale.Scale(alpha, alpha, alpha, alpha)
	screen.DrawImage(WhitePixel, overlayOp)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
