package rwui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Callback is a user hook invoked on a button state transition. It receives
// the button itself and the application's user data. Callbacks run
// synchronously on the calling goroutine and may mutate the button, but must
// not call ConsumeEvent on the same button: that recursion is unbounded.
type Callback[T any] func(*Button[T], *T)

// ButtonDescriptor is the collection of parameters for button creation.
type ButtonDescriptor[T any] struct {
	// Absolute position of the button.
	Position Vec2
	// Size of the button.
	Size Vec2
	// Lower values are drawn in front of higher ones.
	ZIndex float64
	// Background colour. The zero value falls back to the theme colour.
	BackColour Color
	// Optional background texture. Overrides BackColour when set.
	Texture *ebiten.Image
	// Optional label text, centred in the button.
	Label string
	// Optional theme. Nil selects DefaultTheme.
	Theme *Theme
	// Optional callback slots for press, release, enter, and exit transitions.
	OnPress   Callback[T]
	OnRelease Callback[T]
	OnEnter   Callback[T]
	OnExit    Callback[T]
}

// Button is a rectangular control that can be interacted with. Its position,
// size, and highlight overlay are all [Animated] values: interaction and the
// programmatic setters move targets, and Update advances the visuals toward
// them each frame.
//
// A button handles exactly one pointer stream and its own geometry.
// Composition into widget trees, focus order, and layout belong to the caller.
type Button[T any] struct {
	position     *Animated[Vec2]
	size         *Animated[Vec2]
	zIndex       float64
	hovered      bool
	pressed      bool
	backColour   Color
	overlayAlpha *Animated[float64]
	overlayStep  float64
	onPress      Callback[T]
	onRelease    Callback[T]
	onEnter      Callback[T]
	onExit       Callback[T]
	label        *Label
	sprite       *Sprite
}

// NewButton creates a button from the descriptor. Geometry animates over the
// theme's MoveDuration, the highlight overlay over the shorter FadeDuration.
func NewButton[T any](descriptor ButtonDescriptor[T]) *Button[T] {
	theme := descriptor.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	backColour := descriptor.BackColour
	if backColour == (Color{}) {
		backColour = theme.BackColour
	}

	return &Button[T]{
		position:     NewAnimated(descriptor.Position, theme.MoveDuration.Std(), LerpVec2),
		size:         NewAnimated(descriptor.Size, theme.MoveDuration.Std(), LerpVec2),
		zIndex:       descriptor.ZIndex,
		backColour:   backColour,
		overlayAlpha: NewAnimated(0.0, theme.FadeDuration.Std(), LerpFloat),
		overlayStep:  theme.OverlayStep,
		onPress:      descriptor.OnPress,
		onRelease:    descriptor.OnRelease,
		onEnter:      descriptor.OnEnter,
		onExit:       descriptor.OnExit,
		label:        NewLabel(descriptor.Label, nil, theme.LabelColour, descriptor.Position, descriptor.Size),
		sprite:       NewSprite(descriptor.Position, descriptor.Size, descriptor.ZIndex, backColour, descriptor.Texture),
	}
}

// ConsumeEvent processes an event. If the event is directed at this button,
// true is returned to signal that the event was consumed and the button's
// state changed. Otherwise false is returned. Consumed events invoke the
// relevant callback with the provided user data.
//
// Cursor moves hit-test against the button's current animated rectangle with
// inclusive edges. Only the left mouse button is processed; a press requires
// the cursor to be hovering, while a release always clears the pressed state
// no matter where the cursor is.
func (b *Button[T]) ConsumeEvent(data *T, event Event) bool {
	consumed := false

	switch e := event.(type) {
	case CursorMoved:
		rect := Rect{
			X:      b.position.Current().X,
			Y:      b.position.Current().Y,
			Width:  b.size.Current().X,
			Height: b.size.Current().Y,
		}
		if rect.Contains(e.Position.X, e.Position.Y) {
			if !b.hovered {
				b.hovered = true
				b.overlayAlpha.SetTarget(b.overlayAlpha.Target() + b.overlayStep)
				if b.onEnter != nil {
					b.onEnter(b, data)
				}
				consumed = true
			}
		} else if b.hovered {
			b.hovered = false
			b.overlayAlpha.SetTarget(b.overlayAlpha.Target() - b.overlayStep)
			if b.onExit != nil {
				b.onExit(b, data)
			}
			consumed = true
		}
	case MouseInput:
		if e.Button != MouseButtonLeft {
			break
		}
		// Compatibility note: the press transition invokes the OnRelease slot
		// and the release transition invokes OnPress. Callers depend on this
		// pairing; do not swap without a migration plan.
		if b.pressed {
			if e.State == StateReleased {
				b.pressed = false
				b.overlayAlpha.SetTarget(b.overlayAlpha.Target() - b.overlayStep)
				if b.onPress != nil {
					b.onPress(b, data)
				}
				consumed = true
			}
		} else if b.hovered && e.State == StatePressed {
			b.pressed = true
			b.overlayAlpha.SetTarget(b.overlayAlpha.Target() + b.overlayStep)
			if b.onRelease != nil {
				b.onRelease(b, data)
			}
			consumed = true
		}
	}

	return consumed
}

// Update advances every in-flight animation by elapsed and pushes the new
// current values to the rendering primitives. No callbacks fire here; only
// ConsumeEvent fires callbacks.
func (b *Button[T]) Update(elapsed time.Duration) {
	if !b.position.Complete() {
		b.position.Update(elapsed)
		b.sprite.SetPosition(b.position.Current())
		b.label.SetPosition(b.position.Current())
	}

	if !b.size.Complete() {
		b.size.Update(elapsed)
		b.sprite.SetSize(b.size.Current())
		b.label.SetSize(b.size.Current())
	}

	if !b.overlayAlpha.Complete() {
		b.overlayAlpha.Update(elapsed)
		b.sprite.SetOverlayAlpha(b.overlayAlpha.Current())
	}
}

// Draw renders the button's sprite and label.
func (b *Button[T]) Draw(screen *ebiten.Image) {
	b.sprite.Draw(screen)
	b.label.Draw(screen)
}

// SetPosition sets a new absolute position target for the button.
func (b *Button[T]) SetPosition(position Vec2) {
	b.position.SetTarget(position)
}

// SetPositionOffset moves the button relative to its target position, so
// repeated offsets during an in-flight animation compound without jitter.
func (b *Button[T]) SetPositionOffset(offset Vec2) {
	b.SetPosition(b.position.Target().Add(offset))
}

// SetSize sets a new absolute size target for the button.
func (b *Button[T]) SetSize(size Vec2) {
	b.size.SetTarget(size)
}

// SetSizeOffset resizes the button relative to its target size.
func (b *Button[T]) SetSizeOffset(offset Vec2) {
	b.SetSize(b.size.Target().Add(offset))
}

// SetZIndex sets a new z-index for the button.
func (b *Button[T]) SetZIndex(zIndex float64) {
	b.zIndex = zIndex
	b.sprite.SetZIndex(zIndex)
}

// Position returns the button's current animated position.
func (b *Button[T]) Position() Vec2 {
	return b.position.Current()
}

// Size returns the button's current animated size.
func (b *Button[T]) Size() Vec2 {
	return b.size.Current()
}

// ZIndex returns the button's z-index.
func (b *Button[T]) ZIndex() float64 {
	return b.zIndex
}

// Hovered reports whether the pointer is currently inside the button.
func (b *Button[T]) Hovered() bool {
	return b.hovered
}

// Pressed reports whether the primary button is held down on this button.
func (b *Button[T]) Pressed() bool {
	return b.pressed
}

// OverlayAlpha returns the current highlight overlay intensity.
func (b *Button[T]) OverlayAlpha() float64 {
	return b.overlayAlpha.Current()
}

// Label returns the button's label text.
func (b *Button[T]) Label() string {
	return b.label.Content()
}
