// Package screengrid models a resizable terminal screen: a cell grid, the
// writers that place content into it, a movable viewport, a styled cursor,
// and the Window surface that ties them together.
package screengrid

import (
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// tabStop and scrollback are the package's two global tunables. They are
// read far more often than written — every Tab movement and every
// Window construction consults them — so they're held as atomics rather
// than behind a mutex, favoring lock-free reads on hot paths.
var (
	tabStop    uint32 = 8
	scrollback int32  = 1000
)

// defaultTextStyles is the style newly constructed Windows seed their
// cursor's text style with. Unlike tabStop/scrollback it's read only once
// per Window construction rather than on every movement/write, so a mutex
// is plenty — no need for atomic.Value's extra indirection on a cold path.
var (
	defaultTextStylesMu sync.RWMutex
	defaultTextStyles   Styles
)

// DefaultTextStyles returns the style newly constructed Windows apply to
// their cursor's text style.
func DefaultTextStyles() Styles {
	defaultTextStylesMu.RLock()
	defer defaultTextStylesMu.RUnlock()
	return defaultTextStyles
}

// SetDefaultTextStyles changes the style Windows constructed afterward seed
// their cursor with; it does not restyle any Window already constructed.
func SetDefaultTextStyles(s Styles) {
	defaultTextStylesMu.Lock()
	defer defaultTextStylesMu.Unlock()
	defaultTextStyles = s
}

// TabStop returns the current tab width in columns.
func TabStop() uint32 {
	return atomic.LoadUint32(&tabStop)
}

// SetTabStop changes the tab width used by subsequent Tab movements.
func SetTabStop(n uint32) {
	if n == 0 {
		n = 1
	}
	atomic.StoreUint32(&tabStop, n)
}

// Scrollback returns the retained off-screen row budget for a Window's
// backing grid: negative means unlimited, zero means no retention at all,
// positive is a bounded row cap.
func Scrollback() int32 {
	return atomic.LoadInt32(&scrollback)
}

// SetScrollback changes the retained off-screen row count for Windows
// created afterward; it does not resize any Window already constructed.
func SetScrollback(n int32) {
	atomic.StoreInt32(&scrollback, n)
}

// Settings is the user-facing configuration: the two global tunables above,
// read from YAML, plus the default style new Windows start with, which has
// no YAML key and is set only in code.
// It is the one part of this package that can fail, since it touches the
// filesystem: the grid core itself never returns an error, config loading
// is the sole exception.
type Settings struct {
	TabStop       uint32 `yaml:"tab_stop"`
	Scrollback    int32  `yaml:"scrollback"`
	DefaultStyles Styles `yaml:"-"`
}

// DefaultSettings returns the built-in tunables.
func DefaultSettings() Settings {
	return Settings{TabStop: 8, Scrollback: 1000}
}

// LoadSettings reads YAML configuration from path, falling back to built-in
// defaults for any field the file doesn't set. A missing file is not an
// error: it simply yields the defaults. A malformed file is.
func LoadSettings(path string) (Settings, error) {
	cfg := DefaultSettings()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Printf("screengrid: no settings file at %s, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("screengrid: reading settings %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("screengrid: parsing settings %q: %w", path, err)
	}

	if cfg.TabStop == 0 {
		cfg.TabStop = 1
	}

	log.Printf("screengrid: loaded settings from %s", path)
	return cfg, nil
}

// Apply installs cfg's tunables as the package-wide defaults used by
// subsequently constructed Windows.
func (cfg Settings) Apply() {
	SetTabStop(cfg.TabStop)
	SetScrollback(cfg.Scrollback)
	SetDefaultTextStyles(cfg.DefaultStyles)
}
