package rwui

import (
	"fmt"
	"os"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// WindowPrefs are the window settings the app shell persists between runs.
type WindowPrefs struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
}

// DefaultWindowPrefs returns the built-in window preferences.
func DefaultWindowPrefs() *WindowPrefs {
	return &WindowPrefs{
		Width:  800,
		Height: 600,
	}
}

// Storage keys for the preference store.
const (
	prefsObject   = "prefs"
	prefsProperty = "window"
)

// PrefsManager loads and saves window preferences through a cross-platform
// gdata store. A nil manager degrades to in-memory preferences only.
type PrefsManager struct {
	store  *gdata.Manager
	prefs  *WindowPrefs
	loaded bool
}

// OpenPrefs opens the preference store for the given application name and
// loads any saved preferences. A load failure is not fatal: defaults are used
// and a warning goes to stderr.
func OpenPrefs(appName string) (*PrefsManager, error) {
	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open preference store: %w", err)
	}
	pm := NewPrefsManager(store)
	if err := pm.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "[rwui] failed to load window preferences: %v (using defaults)\n", err)
	}
	return pm, nil
}

// NewPrefsManager wraps an existing gdata store. store may be nil for
// in-memory preferences.
func NewPrefsManager(store *gdata.Manager) *PrefsManager {
	return &PrefsManager{
		store: store,
		prefs: DefaultWindowPrefs(),
	}
}

// Prefs returns the current preferences for reading and mutation.
func (pm *PrefsManager) Prefs() *WindowPrefs {
	return pm.prefs
}

// Load reads saved preferences from the store. Missing data or a nil store
// keeps the defaults.
func (pm *PrefsManager) Load() error {
	if pm.store == nil || !pm.store.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}
	data, err := pm.store.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("load window preferences: %w", err)
	}
	prefs := DefaultWindowPrefs()
	if err := yaml.Unmarshal(data, prefs); err != nil {
		return fmt.Errorf("decode window preferences: %w", err)
	}
	pm.prefs = prefs
	pm.loaded = true
	return nil
}

// Loaded reports whether Load actually read saved preferences from the store,
// as opposed to keeping the defaults.
func (pm *PrefsManager) Loaded() bool {
	return pm.loaded
}

// Save writes the current preferences to the store. A nil store is a no-op.
func (pm *PrefsManager) Save() error {
	if pm.store == nil {
		return nil
	}
	data, err := yaml.Marshal(pm.prefs)
	if err != nil {
		return fmt.Errorf("encode window preferences: %w", err)
	}
	if err := pm.store.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("save window preferences: %w", err)
	}
	return nil
}
