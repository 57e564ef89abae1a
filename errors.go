package rwui

import "errors"

// The app shell surfaces construction and run failures as one of these
// sentinel errors, wrapped with the underlying cause. Match with errors.Is.
var (
	// ErrEventLoopCreation indicates the window event loop could not start.
	ErrEventLoopCreation = errors.New("rwui: failed to create the event loop")
	// ErrRendererCreation indicates the renderer could not be created.
	ErrRendererCreation = errors.New("rwui: failed to create the renderer")
)
