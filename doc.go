// Package rwui is a small animated widget library for [Ebitengine].
//
// Rwui provides interactive rectangular controls (buttons) that animate
// smoothly between geometry and highlight states, a generic time-based
// interpolation engine ([Animated]) that drives all widget motion, and an
// application shell ([App]) that owns the window, translates raw mouse input
// into semantic events, and runs the game loop.
//
// # Quick start
//
// Describe the application, create buttons, and dispatch events to them from
// the OnEvent hook:
//
//	type menu struct{ clicks int }
//
//	app, err := rwui.NewApp(rwui.AppDescriptor[menu]{
//		Title: "Menu", Width: 640, Height: 480,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	button := rwui.NewButton(rwui.ButtonDescriptor[menu]{
//		Position:   rwui.Vec2{X: 270, Y: 215},
//		Size:       rwui.Vec2{X: 100, Y: 50},
//		BackColour: rwui.Color{R: 0.3, G: 0.7, B: 0.9, A: 1},
//		Label:      "Click me",
//	})
//
//	app.OnEvent = func(a *rwui.App[menu], e rwui.Event) {
//		button.ConsumeEvent(a.Data(), e)
//	}
//	app.OnFrame = func(a *rwui.App[menu], elapsed time.Duration) {
//		button.Update(elapsed)
//	}
//	app.OnDraw = func(a *rwui.App[menu], screen *ebiten.Image) {
//		button.Draw(screen)
//	}
//
//	if err := app.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Animation
//
// Every moving quantity on a widget is an [Animated] value: it holds a current
// value and a target value and advances the current value toward the target
// over a fixed duration as frame time elapses. Retargeting mid-flight never
// teleports the current value; the animation restarts from wherever it is.
// [Animated] is generic and can drive positions, sizes, colours, or plain
// scalars via the stock lerp helpers ([LerpVec2], [LerpFloat], [LerpColor]).
//
// Interpolation timing is driven by [gween]; easing curves from gween/ease can
// be selected with [NewAnimatedEase].
//
// # Events
//
// Widgets consume a small sealed event vocabulary: [CursorMoved],
// [MouseInput], and [WheelScrolled]. The [App] shell polls Ebitengine input
// once per frame and diffs it into this vocabulary; synthetic events can be
// injected for demos and automated tests via [App.InjectClick] and friends, or
// replayed from a JSON script with [LoadScript].
//
// Widget-tree composition, focus handling, and layout are intentionally left
// to the caller: each [Button] handles one pointer stream and its own
// geometry, nothing more.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package rwui
