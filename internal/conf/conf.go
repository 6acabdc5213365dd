package conf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cast"

	"statoverlay/internal/apperrors"
)

// Default file names, resolved against the working directory.
const (
	PrimaryPath  = "config.json"
	FallbackPath = "config_default.json"
)

// Store owns the configuration document. The whole document is kept so
// that saving a position rewrites every other key untouched.
type Store struct {
	mu     sync.RWMutex // Protects doc and conf
	path   string       // Write target
	source string       // File the document was read from
	doc    map[string]any
	conf   Config
}

// Load reads the primary config file, or the fallback file when the
// primary does not exist. Any other failure is returned as a
// *apperrors.ConfigError.
func Load(primary, fallback string) (*Store, error) {
	source := primary
	doc, err := readDocument(primary)
	if errors.Is(err, fs.ErrNotExist) {
		source = fallback
		doc, err = readDocument(fallback)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewConfigError(source, err, "config file does not exist")
		}
		return nil, apperrors.NewConfigError(source, err, "failed to read config")
	}

	c, err := parseConfig(doc)
	if err != nil {
		return nil, apperrors.NewConfigError(source, err, "invalid config")
	}

	return &Store{
		path:   primary,
		source: source,
		doc:    doc,
		conf:   c,
	}, nil
}

// Config returns a copy of the typed configuration.
func (s *Store) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conf
}

// Source returns the path the configuration was loaded from.
func (s *Store) Source() string {
	return s.source
}

// Path returns the path positions are saved to.
func (s *Store) Path() string {
	return s.path
}

// SavePosition stores x and y into window_spec and rewrites the primary
// config file in full.
func (s *Store) SavePosition(x, y int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	window, err := cast.ToStringMapE(s.doc[keyWindow])
	if err != nil {
		return fmt.Errorf("window_spec is not a table: %w", err)
	}
	window["x"] = x
	window["y"] = y
	s.doc[keyWindow] = window

	if err := writeDocument(s.path, s.doc); err != nil {
		return err
	}
	s.conf.Window.X = x
	s.conf.Window.Y = y
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func readDocument(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc := make(map[string]any)
	if isTOML(path) {
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, fmt.Errorf("failed to decode toml: %w", err)
		}
		return doc, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode json: %w", err)
	}
	return doc, nil
}

func writeDocument(path string, doc map[string]any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close config file %w", cerr)
		}
	}()

	if isTOML(path) {
		enc := toml.NewEncoder(f)
		enc.Indent = "    "
		err = enc.Encode(doc)
	} else {
		enc := json.NewEncoder(f)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "    ")
		err = enc.Encode(doc)
	}
	if err != nil {
		return fmt.Errorf("failed to write config file %w", err)
	}
	return nil
}

func parseConfig(doc map[string]any) (Config, error) {
	var c Config

	window, err := table(doc, keyWindow)
	if err != nil {
		return c, err
	}
	for _, field := range []struct {
		key string
		dst *int
	}{
		{"x", &c.Window.X},
		{"y", &c.Window.Y},
		{"w", &c.Window.W},
		{"h", &c.Window.H},
	} {
		v, ok := window[field.key]
		if !ok {
			return c, fmt.Errorf("%s.%s is required", keyWindow, field.key)
		}
		n, err := cast.ToIntE(v)
		if err != nil {
			return c, fmt.Errorf("%s.%s: %w", keyWindow, field.key, err)
		}
		*field.dst = n
	}
	if c.Window.W <= 0 || c.Window.H <= 0 {
		return c, fmt.Errorf("%s size must be positive, got %dx%d", keyWindow, c.Window.W, c.Window.H)
	}

	qt, err := table(doc, keyQt)
	if err != nil {
		return c, err
	}
	if c.Style, err = cast.ToStringE(qt[keyStylesheet]); err != nil {
		return c, fmt.Errorf("%s.%s: %w", keyQt, keyStylesheet, err)
	}

	if c.UpdateInterval, err = seconds(doc, keyInterval); err != nil {
		return c, err
	}
	if c.UpdateInterval <= 0 {
		return c, fmt.Errorf("%s must be positive", keyInterval)
	}
	if c.IdleAfter, err = seconds(doc, keyIdleAfter); err != nil {
		return c, err
	}
	if c.IdleAfter < 0 {
		return c, fmt.Errorf("%s must not be negative", keyIdleAfter)
	}

	shortcut, err := table(doc, keyShortcut)
	if err != nil {
		return c, err
	}
	if c.Shortcuts.ToggleDrag, err = requiredString(shortcut, keyShortcut, keyToggleDrag); err != nil {
		return c, err
	}
	if c.Shortcuts.ToggleHide, err = requiredString(shortcut, keyShortcut, keyToggleHide); err != nil {
		return c, err
	}
	return c, nil
}

func table(doc map[string]any, key string) (map[string]any, error) {
	v, ok := doc[key]
	if !ok {
		return nil, fmt.Errorf("%s is required", key)
	}
	m, err := cast.ToStringMapE(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return m, nil
}

func seconds(doc map[string]any, key string) (time.Duration, error) {
	v, ok := doc[key]
	if !ok {
		return 0, fmt.Errorf("%s is required", key)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return time.Duration(f * float64(time.Second)), nil
}

func requiredString(m map[string]any, section, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", fmt.Errorf("%s.%s is required", section, key)
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("%s.%s: %w", section, key, err)
	}
	return s, nil
}
