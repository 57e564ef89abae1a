package rwui

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// tempStore opens a gdata manager rooted in a temporary directory so tests
// never touch real user data.
func tempStore(t *testing.T) *gdata.Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	store, err := gdata.Open(gdata.Config{AppName: "rwui-test"})
	if err != nil {
		t.Fatalf("gdata.Open: %v", err)
	}
	return store
}

func TestPrefsSaveAndLoad(t *testing.T) {
	store := tempStore(t)

	pm := NewPrefsManager(store)
	pm.Prefs().Width = 1024
	pm.Prefs().Height = 768
	pm.Prefs().Fullscreen = true
	if err := pm.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	other := NewPrefsManager(store)
	if err := other.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !other.Loaded() {
		t.Error("Loaded() = false after reading saved preferences")
	}
	got := other.Prefs()
	if got.Width != 1024 || got.Height != 768 || !got.Fullscreen {
		t.Errorf("loaded prefs = %+v, want 1024x768 fullscreen", got)
	}
}

func TestPrefsLoadWithoutSavedData(t *testing.T) {
	store := tempStore(t)

	pm := NewPrefsManager(store)
	if err := pm.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if pm.Loaded() {
		t.Error("Loaded() = true with no saved data")
	}
	defaults := DefaultWindowPrefs()
	if *pm.Prefs() != *defaults {
		t.Errorf("prefs = %+v, want defaults %+v", pm.Prefs(), defaults)
	}
}

func TestPrefsNilStoreDegrades(t *testing.T) {
	pm := NewPrefsManager(nil)

	pm.Prefs().Width = 640
	if err := pm.Save(); err != nil {
		t.Errorf("Save with nil store should be a no-op, got %v", err)
	}
	if err := pm.Load(); err != nil {
		t.Errorf("Load with nil store should be a no-op, got %v", err)
	}
	if pm.Prefs().Width != 640 {
		t.Errorf("in-memory prefs lost: width = %d, want 640", pm.Prefs().Width)
	}
}
