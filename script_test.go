package rwui

import "testing"

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{steps}`},
		{"no steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "teleport"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestScriptClickSequence(t *testing.T) {
	app := newTestApp(t)
	script, err := LoadScript([]byte(`{"steps": [
		{"action": "click", "x": 50, "y": 25}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	app.SetScript(script)

	runScriptStep(script, app)
	if len(app.injectQueue) != 3 {
		t.Fatalf("queue length = %d, want 3 after click step", len(app.injectQueue))
	}

	// While injections are pending the script does not advance.
	runScriptStep(script, app)
	if len(app.injectQueue) != 3 {
		t.Errorf("queue length = %d, script advanced with pending injections", len(app.injectQueue))
	}

	for app.popInjected() != nil {
	}
	if script.Done() {
		t.Error("script should not be done before the final advance")
	}
	runScriptStep(script, app)
	if !script.Done() {
		t.Error("script should be done after all steps executed and drained")
	}
}

func TestScriptWaitCountsFrames(t *testing.T) {
	app := newTestApp(t)
	script, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "move", "x": 1, "y": 2}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	// Frame 1 executes the wait step, frames 2 and 3 count it down.
	for i := 0; i < 3; i++ {
		runScriptStep(script, app)
		if len(app.injectQueue) != 0 {
			t.Fatalf("frame %d: queue length = %d, want 0 during wait", i+1, len(app.injectQueue))
		}
	}

	runScriptStep(script, app)
	if len(app.injectQueue) != 1 {
		t.Fatalf("queue length = %d, want 1 after wait elapsed", len(app.injectQueue))
	}
	move, ok := app.injectQueue[0].(CursorMoved)
	if !ok || move.Position != (Vec2{X: 1, Y: 2}) {
		t.Errorf("queued event = %#v, want CursorMoved{1 2}", app.injectQueue[0])
	}
}

func TestScriptPressReleaseSteps(t *testing.T) {
	app := newTestApp(t)
	script, err := LoadScript([]byte(`{"steps": [
		{"action": "move", "x": 10, "y": 10},
		{"action": "press"},
		{"action": "release"}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	for i := 0; i < 3; i++ {
		runScriptStep(script, app)
		if evt := app.popInjected(); evt == nil {
			t.Fatalf("step %d queued no event", i+1)
		}
	}
	runScriptStep(script, app)
	if !script.Done() {
		t.Error("script should be done")
	}
}
