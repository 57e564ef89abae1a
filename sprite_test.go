package rwui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestSpriteDrawsBackgroundColour(t *testing.T) {
	screen := ebiten.NewImage(64, 64)
	s := NewSprite(Vec2{X: 8, Y: 8}, Vec2{X: 16, Y: 16}, 0, Color{R: 1, G: 0, B: 0, A: 1}, nil)

	s.Draw(screen)

	r, _, _, a := screen.At(10, 10).RGBA()
	if r == 0 || a == 0 {
		t.Errorf("expected red fill inside the sprite, got r=%d a=%d", r, a)
	}
	_, _, _, outside := screen.At(40, 40).RGBA()
	if outside != 0 {
		t.Errorf("expected transparent pixel outside the sprite, got a=%d", outside)
	}
}

func TestSpriteOverlayClampsAtDrawTime(t *testing.T) {
	screen := ebiten.NewImage(32, 32)
	s := NewSprite(Vec2{}, Vec2{X: 32, Y: 32}, 0, Color{R: 0, G: 0, B: 1, A: 1}, nil)

	// An overshooting overlay value stays stored as given but renders as a
	// fully opaque white overlay.
	s.SetOverlayAlpha(1.7)
	if s.overlayAlpha != 1.7 {
		t.Errorf("stored overlay = %v, want 1.7 unclamped", s.overlayAlpha)
	}
	s.Draw(screen)

	r, g, b, _ := screen.At(16, 16).RGBA()
	if r != g || g != b || r == 0 {
		t.Errorf("expected white pixel under saturated overlay, got r=%d g=%d b=%d", r, g, b)
	}

	// Negative values render as no overlay at all.
	screen.Clear()
	s.SetOverlayAlpha(-0.3)
	s.Draw(screen)
	r, _, b, _ = screen.At(16, 16).RGBA()
	if r != 0 || b == 0 {
		t.Errorf("expected plain blue fill with negative overlay, got r=%d b=%d", r, b)
	}
}

func TestSpriteSkipsDegenerateSize(t *testing.T) {
	screen := ebiten.NewImage(16, 16)
	s := NewSprite(Vec2{}, Vec2{X: 0, Y: 10}, 0, ColorWhite, nil)

	s.Draw(screen)

	_, _, _, a := screen.At(0, 0).RGBA()
	if a != 0 {
		t.Errorf("degenerate sprite drew pixels, a=%d", a)
	}
}
