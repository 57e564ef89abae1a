package rwui

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	defaultWindowWidth  = 800
	defaultWindowHeight = 600
)

// AppDescriptor is the data required for creating a window application.
type AppDescriptor[T any] struct {
	// Window title.
	Title string
	// Initial window size. Zero selects the library defaults.
	Width  int
	Height int
	// Data needed for the user to customise the application's behaviour.
	Data T
	// Display an FPS/TPS overlay in the top-left corner.
	ShowFPS bool
	// Persist window size and fullscreen state between runs.
	PersistWindow bool
	// Storage name for persisted preferences. Defaults to the window title.
	AppName string

	// Function called before new events are processed.
	OnBeforeEvents func(*App[T])
	// Function called after new events are processed.
	OnAfterEvents func(*App[T])
	// Function called once per semantic input event.
	OnEvent func(*App[T], Event)
	// Function called once per frame tick with the elapsed frame time.
	OnFrame func(*App[T], time.Duration)
	// Function called before drawing each frame.
	OnBeforeDraw func(*App[T])
	// Function called to draw the frame's content.
	OnDraw func(*App[T], *ebiten.Image)
	// Function called after drawing each frame.
	OnAfterDraw func(*App[T])
}

// App is an application with a graphical window. It implements [ebiten.Game]:
// every tick it translates raw mouse input into semantic events, hands them to
// the OnEvent hook, and reports frame time to OnFrame. Drawing is delegated to
// the OnDraw hook between the before/after draw hooks.
type App[T any] struct {
	// Hook slots, assignable after construction as well as via the descriptor.
	OnBeforeEvents func(*App[T])
	OnAfterEvents  func(*App[T])
	OnEvent        func(*App[T], Event)
	OnFrame        func(*App[T], time.Duration)
	OnBeforeDraw   func(*App[T])
	OnDraw         func(*App[T], *ebiten.Image)
	OnAfterDraw    func(*App[T])

	data        T
	width       int
	height      int
	showFPS     bool
	fps         fpsOverlay
	input       inputState
	injectQueue []Event
	eventBuf    []Event
	script      *Script
	prefs       *PrefsManager
	persist     bool
	started     bool
}

// NewApp creates a new window application from the descriptor. When window
// persistence is enabled, previously saved window preferences override the
// descriptor's size; a preference store failure is not fatal and degrades to
// in-memory preferences with a warning on stderr.
func NewApp[T any](descriptor AppDescriptor[T]) (*App[T], error) {
	width := descriptor.Width
	if width <= 0 {
		width = defaultWindowWidth
	}
	height := descriptor.Height
	if height <= 0 {
		height = defaultWindowHeight
	}

	app := &App[T]{
		OnBeforeEvents: descriptor.OnBeforeEvents,
		OnAfterEvents:  descriptor.OnAfterEvents,
		OnEvent:        descriptor.OnEvent,
		OnFrame:        descriptor.OnFrame,
		OnBeforeDraw:   descriptor.OnBeforeDraw,
		OnDraw:         descriptor.OnDraw,
		OnAfterDraw:    descriptor.OnAfterDraw,
		data:           descriptor.Data,
		width:          width,
		height:         height,
		showFPS:        descriptor.ShowFPS,
		persist:        descriptor.PersistWindow,
	}

	if descriptor.PersistWindow {
		appName := descriptor.AppName
		if appName == "" {
			appName = descriptor.Title
		}
		pm, err := OpenPrefs(appName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[rwui] window persistence unavailable: %v\n", err)
			pm = NewPrefsManager(nil)
		}
		app.prefs = pm
		if pm.Loaded() {
			app.width = pm.Prefs().Width
			app.height = pm.Prefs().Height
			ebiten.SetFullscreen(pm.Prefs().Fullscreen)
		}
	}

	ebiten.SetWindowTitle(descriptor.Title)
	ebiten.SetWindowSize(app.width, app.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return app, nil
}

// Data returns a pointer to the user data.
func (a *App[T]) Data() *T {
	return &a.data
}

// SetScript attaches a scripted input driver. Its steps are replayed through
// the injection queue, one per frame once the queue drains.
func (a *App[T]) SetScript(script *Script) {
	a.script = script
}

// Run starts the event loop and blocks until the window closes or an error
// occurs. A failure before the first frame tick is reported as renderer
// creation; a later failure as an event loop error. On a clean exit, window
// preferences are saved when persistence is enabled.
func (a *App[T]) Run() error {
	if err := ebiten.RunGame(a); err != nil {
		if !a.started {
			return fmt.Errorf("%w: %v", ErrRendererCreation, err)
		}
		return fmt.Errorf("%w: %v", ErrEventLoopCreation, err)
	}

	if a.persist && a.prefs != nil {
		w, h := ebiten.WindowSize()
		if w > 0 && h > 0 {
			a.prefs.Prefs().Width = w
			a.prefs.Prefs().Height = h
		}
		a.prefs.Prefs().Fullscreen = ebiten.IsFullscreen()
		if err := a.prefs.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "[rwui] %v\n", err)
		}
	}
	return nil
}

// Update implements ebiten.Game. It runs the per-tick event phase: the
// before-events hook, one injected or all freshly polled events through
// OnEvent, the after-events hook, and finally OnFrame with the tick's elapsed
// time.
func (a *App[T]) Update() error {
	a.started = true
	elapsed := time.Second / time.Duration(ebiten.TPS())

	if a.OnBeforeEvents != nil {
		a.OnBeforeEvents(a)
	}

	if a.script != nil {
		runScriptStep(a.script, a)
	}

	// Injected events are delivered one per frame so multi-step gestures are
	// observed on distinct ticks, and they suppress real input for the frame.
	if evt := a.popInjected(); evt != nil {
		a.deliver(evt)
	} else {
		a.eventBuf = a.input.poll(a.eventBuf[:0])
		for _, evt := range a.eventBuf {
			a.deliver(evt)
		}
	}

	if a.OnAfterEvents != nil {
		a.OnAfterEvents(a)
	}

	if a.OnFrame != nil {
		a.OnFrame(a, elapsed)
	}

	if a.showFPS {
		a.fps.tick(elapsed)
	}
	return nil
}

func (a *App[T]) deliver(evt Event) {
	if a.OnEvent != nil {
		a.OnEvent(a, evt)
	}
}

// Draw implements ebiten.Game.
func (a *App[T]) Draw(screen *ebiten.Image) {
	if a.OnBeforeDraw != nil {
		a.OnBeforeDraw(a)
	}

	if a.OnDraw != nil {
		a.OnDraw(a, screen)
	}
	if a.showFPS {
		a.fps.draw(screen)
	}

	if a.OnAfterDraw != nil {
		a.OnAfterDraw(a)
	}
}

// Layout implements ebiten.Game. The logical resolution is fixed at the
// configured size.
func (a *App[T]) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}
