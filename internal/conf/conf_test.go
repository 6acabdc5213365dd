package conf

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"

	"statoverlay/internal/apperrors"
)

const primaryJSON = `{
    "window_spec": {"x": 100, "y": 100, "w": 400, "h": 180},
    "qt": {"qlabel_stylesheet": "color: white; font-size: 14px;"},
    "update_interval_s": 1,
    "idle_after_s": 30.5,
    "shortcut": {"toggle_drag": "ctrl+alt+d", "toggle_hide": "ctrl+alt+h"},
    "theme": {"name": "night"}
}`

const defaultJSON = `{
    "window_spec": {"x": 20, "y": 40, "w": 420, "h": 200},
    "qt": {"qlabel_stylesheet": "color: lime;"},
    "update_interval_s": 2,
    "idle_after_s": 60,
    "shortcut": {"toggle_drag": "ctrl+shift+d", "toggle_hide": "ctrl+shift+h"}
}`

// writeTempFile creates a file with the given content in dir and returns its path.
func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp file %s: %v", path, err)
	}
	return path
}

func readJSON(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return doc
}

func TestLoad_Cases(t *testing.T) {
	tests := []struct {
		name       string
		primary    string // empty means absent
		fallback   string // empty means absent
		wantErr    bool
		wantSource string
		validate   func(t *testing.T, c Config)
	}{
		{
			name:       "primary present uses primary",
			primary:    primaryJSON,
			fallback:   defaultJSON,
			wantSource: "config.json",
			validate: func(t *testing.T, c Config) {
				t.Helper()
				want := WindowSpec{X: 100, Y: 100, W: 400, H: 180}
				if c.Window != want {
					t.Errorf("Window = %+v, want %+v", c.Window, want)
				}
				if c.UpdateInterval != time.Second {
					t.Errorf("UpdateInterval = %v, want 1s", c.UpdateInterval)
				}
				if c.IdleAfter != 30500*time.Millisecond {
					t.Errorf("IdleAfter = %v, want 30.5s", c.IdleAfter)
				}
				if c.Shortcuts.ToggleDrag != "ctrl+alt+d" || c.Shortcuts.ToggleHide != "ctrl+alt+h" {
					t.Errorf("Shortcuts = %+v", c.Shortcuts)
				}
				if c.Style != "color: white; font-size: 14px;" {
					t.Errorf("Style = %q", c.Style)
				}
			},
		},
		{
			name:       "primary absent uses fallback",
			fallback:   defaultJSON,
			wantSource: "config_default.json",
			validate: func(t *testing.T, c Config) {
				t.Helper()
				want := WindowSpec{X: 20, Y: 40, W: 420, H: 200}
				if c.Window != want {
					t.Errorf("Window = %+v, want %+v", c.Window, want)
				}
				if c.UpdateInterval != 2*time.Second {
					t.Errorf("UpdateInterval = %v, want 2s", c.UpdateInterval)
				}
			},
		},
		{
			name:    "both absent",
			wantErr: true,
		},
		{
			name:     "malformed primary does not fall back",
			primary:  `{"window_spec": `,
			fallback: defaultJSON,
			wantErr:  true,
		},
		{
			name:    "missing geometry field",
			primary: `{"window_spec": {"x": 1, "y": 2, "w": 3}, "qt": {}, "update_interval_s": 1, "idle_after_s": 1, "shortcut": {"toggle_drag": "a", "toggle_hide": "b"}}`,
			wantErr: true,
		},
		{
			name:    "zero interval",
			primary: `{"window_spec": {"x": 1, "y": 2, "w": 3, "h": 4}, "qt": {}, "update_interval_s": 0, "idle_after_s": 1, "shortcut": {"toggle_drag": "a", "toggle_hide": "b"}}`,
			wantErr: true,
		},
		{
			name:    "numeric strings are coerced",
			primary: `{"window_spec": {"x": "5", "y": "6", "w": "7", "h": "8"}, "qt": {}, "update_interval_s": "0.5", "idle_after_s": "10", "shortcut": {"toggle_drag": "a", "toggle_hide": "b"}}`,
			validate: func(t *testing.T, c Config) {
				t.Helper()
				if c.Window != (WindowSpec{X: 5, Y: 6, W: 7, H: 8}) {
					t.Errorf("Window = %+v", c.Window)
				}
				if c.UpdateInterval != 500*time.Millisecond {
					t.Errorf("UpdateInterval = %v, want 500ms", c.UpdateInterval)
				}
			},
			wantSource: "config.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			primary := filepath.Join(dir, PrimaryPath)
			fallback := filepath.Join(dir, FallbackPath)
			if tt.primary != "" {
				writeTempFile(t, dir, PrimaryPath, tt.primary)
			}
			if tt.fallback != "" {
				writeTempFile(t, dir, FallbackPath, tt.fallback)
			}

			store, err := Load(primary, fallback)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				var cfgErr *apperrors.ConfigError
				if !errors.As(err, &cfgErr) {
					t.Errorf("error %v is not a ConfigError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got := filepath.Base(store.Source()); got != tt.wantSource {
				t.Errorf("Source() = %q, want %q", got, tt.wantSource)
			}
			if tt.validate != nil {
				tt.validate(t, store.Config())
			}
		})
	}
}

func TestSavePosition_PreservesOtherKeys(t *testing.T) {
	dir := t.TempDir()
	primary := writeTempFile(t, dir, PrimaryPath, primaryJSON)

	store, err := Load(primary, filepath.Join(dir, FallbackPath))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := store.SavePosition(250, 180); err != nil {
		t.Fatalf("SavePosition() error = %v", err)
	}

	doc := readJSON(t, primary)
	window := doc["window_spec"].(map[string]any)
	if window["x"] != 250.0 || window["y"] != 180.0 {
		t.Errorf("window_spec x,y = %v,%v, want 250,180", window["x"], window["y"])
	}
	if window["w"] != 400.0 || window["h"] != 180.0 {
		t.Errorf("window_spec w,h changed: %v,%v", window["w"], window["h"])
	}
	if doc["update_interval_s"] != 1.0 {
		t.Errorf("update_interval_s = %v, want 1", doc["update_interval_s"])
	}
	if doc["idle_after_s"] != 30.5 {
		t.Errorf("idle_after_s = %v, want 30.5", doc["idle_after_s"])
	}
	if theme, ok := doc["theme"].(map[string]any); !ok || theme["name"] != "night" {
		t.Errorf("unknown key theme not preserved: %v", doc["theme"])
	}

	if got := store.Config().Window; got.X != 250 || got.Y != 180 {
		t.Errorf("Config().Window = %+v, want x=250 y=180", got)
	}

	raw, _ := os.ReadFile(primary)
	if !strings.Contains(string(raw), "\n    \"") {
		t.Errorf("expected 4-space indented output, got:\n%s", raw)
	}
}

func TestSavePosition_FromFallbackWritesPrimary(t *testing.T) {
	dir := t.TempDir()
	fallback := writeTempFile(t, dir, FallbackPath, defaultJSON)
	primary := filepath.Join(dir, PrimaryPath)

	store, err := Load(primary, fallback)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := store.SavePosition(7, 9); err != nil {
		t.Fatalf("SavePosition() error = %v", err)
	}

	doc := readJSON(t, primary)
	window := doc["window_spec"].(map[string]any)
	if window["x"] != 7.0 || window["y"] != 9.0 {
		t.Errorf("primary window_spec = %v", window)
	}
	if doc["update_interval_s"] != 2.0 {
		t.Errorf("update_interval_s = %v, want 2", doc["update_interval_s"])
	}

	// The bundled default must stay untouched.
	def := readJSON(t, fallback)
	if def["window_spec"].(map[string]any)["x"] != 20.0 {
		t.Errorf("fallback file was modified: %v", def["window_spec"])
	}
}

func TestLoad_TOML(t *testing.T) {
	dir := t.TempDir()
	primary := writeTempFile(t, dir, "config.toml", `
update_interval_s = 1.5
idle_after_s = 45
extra = "kept"

[window_spec]
x = 10
y = 20
w = 300
h = 150

[qt]
qlabel_stylesheet = "color: #ff0;"

[shortcut]
toggle_drag = "alt+d"
toggle_hide = "alt+h"
`)

	store, err := Load(primary, filepath.Join(dir, "config_default.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	c := store.Config()
	if c.Window != (WindowSpec{X: 10, Y: 20, W: 300, H: 150}) {
		t.Errorf("Window = %+v", c.Window)
	}
	if c.UpdateInterval != 1500*time.Millisecond {
		t.Errorf("UpdateInterval = %v", c.UpdateInterval)
	}

	if err := store.SavePosition(11, 22); err != nil {
		t.Fatalf("SavePosition() error = %v", err)
	}
	var doc map[string]any
	if _, err := toml.DecodeFile(primary, &doc); err != nil {
		t.Fatalf("decode saved toml: %v", err)
	}
	window := doc["window_spec"].(map[string]any)
	if window["x"] != int64(11) || window["y"] != int64(22) || window["w"] != int64(300) {
		t.Errorf("saved window_spec = %v", window)
	}
	if doc["extra"] != "kept" {
		t.Errorf("extra = %v, want kept", doc["extra"])
	}
}
