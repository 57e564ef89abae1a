package rwui

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for an input script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected input events across frames for automated
// interaction demos and tests. Attach to an App via [App.SetScript].
//
// Supported actions: "move" (x, y), "press", "release", "click" (x, y),
// and "wait" (frames).
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for _, st := range file.Steps {
		switch st.Action {
		case "move", "press", "release", "click", "wait":
		default:
			return nil, fmt.Errorf("parse input script: unknown action %q", st.Action)
		}
	}
	return &Script{steps: file.Steps}, nil
}

// Done reports whether all steps in the script have been executed.
func (sc *Script) Done() bool {
	return sc.done
}

// runScriptStep advances the script by one frame. Called from App.Update.
func runScriptStep[T any](sc *Script, app *App[T]) {
	sc.advance(len(app.injectQueue), func(st scriptStep) {
		switch st.Action {
		case "move":
			app.InjectCursorMoved(st.X, st.Y)
		case "press":
			app.InjectMousePress()
		case "release":
			app.InjectMouseRelease()
		case "click":
			app.InjectClick(st.X, st.Y)
		}
	})
}

// advance runs at most one step per frame: it waits for pending injections to
// drain and for wait frames to count down before executing the next step.
func (sc *Script) advance(pending int, exec func(scriptStep)) {
	if sc.done {
		return
	}
	if pending > 0 {
		return
	}
	if sc.waitCount > 0 {
		sc.waitCount--
		return
	}
	if sc.cursor >= len(sc.steps) {
		sc.done = true
		return
	}

	st := sc.steps[sc.cursor]
	sc.cursor++

	if st.Action == "wait" {
		if st.Frames > 0 {
			sc.waitCount = st.Frames - 1 // this frame counts as one
		}
		return
	}
	exec(st)
}
