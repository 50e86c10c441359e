// Package config loads the TOML settings file and applies environment overrides
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/cellui/terminal"
	"github.com/lixenwraith/cellui/widget"
)

// Environment overrides, applied after the file
const (
	EnvRows   = "CELLUI_ROWS"
	EnvCols   = "CELLUI_COLS"
	EnvAudio  = "CELLUI_AUDIO"
	EnvVolume = "CELLUI_VOLUME"
	EnvDebug  = "CELLUI_DEBUG"
)

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("config: invalid")

// Config is the top-level TOML structure
type Config struct {
	Rows   int    `toml:"rows"`
	Cols   int    `toml:"cols"`
	Border string `toml:"border"`
	Map    string `toml:"map"`
	Debug  bool   `toml:"debug"`

	Audio  Audio  `toml:"audio"`
	Player Player `toml:"player"`
	Keys   Keys   `toml:"keys"`
}

type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // Linear, 0..1
}

type Player struct {
	Fields []string `toml:"fields"` // Character form labels, top to bottom
}

// Keys binds game actions to key names as printed by terminal.Key.String
type Keys struct {
	Quit   string `toml:"quit"`
	Border string `toml:"border"` // Toggles the map frame
}

// Default returns the built-in settings: a 24x80 grid with single-line borders
func Default() Config {
	return Config{
		Rows:   24,
		Cols:   80,
		Border: "single",
		Audio:  Audio{Enabled: true, Volume: 0.5},
		Player: Player{Fields: []string{"Name", "Class", "Race"}},
		Keys:   Keys{Quit: "ctrl_q", Border: "f2"},
	}
}

// Load reads path over the defaults; a missing file yields the defaults
// Keys absent from the file keep their default values
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("config: %s not found, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := Parse(data, &cfg); err != nil {
		return Default(), err
	}
	log.Printf("config: loaded %s", path)
	return cfg, nil
}

// Parse decodes TOML data into cfg and rejects keys it does not know
func Parse(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("parse config: unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnv overrides fields from CELLUI_* variables; malformed values are errors
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvRows); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRows, err)
		}
		c.Rows = n
	}
	if v, ok := os.LookupEnv(EnvCols); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCols, err)
		}
		c.Cols = n
	}
	if v, ok := os.LookupEnv(EnvAudio); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudio, err)
		}
		c.Audio.Enabled = b
	}
	if v, ok := os.LookupEnv(EnvVolume); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVolume, err)
		}
		c.Audio.Volume = f
	}
	if v, ok := os.LookupEnv(EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Debug = b
	}
	return nil
}

// Validate checks geometry, volume, the border name and key bindings
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalid, c.Rows, c.Cols)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: volume %v outside [0, 1]", ErrInvalid, c.Audio.Volume)
	}
	if _, ok := widget.BorderNamed(c.Border); !ok {
		return fmt.Errorf("%w: unknown border %q", ErrInvalid, c.Border)
	}
	if len(c.Player.Fields) == 0 {
		return fmt.Errorf("%w: player.fields is empty", ErrInvalid)
	}
	for i, f := range c.Player.Fields {
		if slices.Contains(c.Player.Fields[:i], f) {
			return fmt.Errorf("%w: player.fields repeats %q", ErrInvalid, f)
		}
	}
	for _, name := range []string{c.Keys.Quit, c.Keys.Border} {
		if _, ok := terminal.KeyByName(name); !ok {
			return fmt.Errorf("%w: unknown key %q", ErrInvalid, name)
		}
	}
	return nil
}

// BorderStyle resolves the border name, falling back to single lines
func (c Config) BorderStyle() widget.Border {
	if b, ok := widget.BorderNamed(c.Border); ok {
		return b
	}
	return widget.BorderSingle
}

// QuitKey resolves Keys.Quit, KeyNone when unbound
func (c Config) QuitKey() terminal.Key {
	k, _ := terminal.KeyByName(c.Keys.Quit)
	return k
}

// BorderKey resolves Keys.Border, KeyNone when unbound
func (c Config) BorderKey() terminal.Key {
	k, _ := terminal.KeyByName(c.Keys.Border)
	return k
}
