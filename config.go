package slides

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Elements names the nodes a widget looks up under its root.
type Elements struct {
	// Preserve is the name of image nodes that keep their own size and
	// position instead of being scaled to the viewport.
	Preserve string
	// Nav is the node whose children named "next" and "prev" navigate.
	Nav string
	// Container is the node whose children are the slides.
	Container string
	// Pagination names the pagination node. Pagination is not rendered.
	Pagination string
}

// Config controls a Widget.
type Config struct {
	// Play is the autoplay interval. Zero disables autoplay.
	Play time.Duration
	// AnimationSpeed is the duration of one transition.
	AnimationSpeed time.Duration
	// AnimationEasing names the easing; see EasingByName.
	AnimationEasing string
	// Animation selects the slide or fade transition.
	Animation Animation

	// InheritWidthFrom and InheritHeightFrom size the viewport. Nil means
	// the window, as reported to Widget.Layout.
	InheritWidthFrom  SizingSource
	InheritHeightFrom SizingSource

	// ResizeDebounce coalesces window size changes before relayout.
	ResizeDebounce time.Duration

	// Recognized for compatibility; the widget does not act on them.
	Pagination bool
	HashChange bool
	Scrollable bool

	Elements Elements

	// Events, if set, receives every lifecycle event, including those
	// emitted while New runs.
	Events EventSink
}

// DefaultConfig returns the default options: manual playback, a 600ms
// swing slide, window sizing and the standard element names.
func DefaultConfig() Config {
	return Config{
		AnimationSpeed:  600 * time.Millisecond,
		AnimationEasing: DefaultEasing,
		Animation:       AnimationSlide,
		ResizeDebounce:  200 * time.Millisecond,
		Pagination:      true,
		Scrollable:      true,
		Elements: Elements{
			Preserve:   "preserve",
			Nav:        "slides-navigation",
			Container:  "slides-container",
			Pagination: "slides-pagination",
		},
	}
}

// withDefaults fills empty element names, an empty easing and a
// non-positive resize debounce from DefaultConfig. A zero AnimationSpeed is
// kept, since it means instant transitions.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.ResizeDebounce <= 0 {
		c.ResizeDebounce = def.ResizeDebounce
	}
	overrideString(&def.AnimationEasing, c.AnimationEasing)
	c.AnimationEasing = def.AnimationEasing

	el := def.Elements
	overrideString(&el.Preserve, c.Elements.Preserve)
	overrideString(&el.Nav, c.Elements.Nav)
	overrideString(&el.Container, c.Elements.Container)
	overrideString(&el.Pagination, c.Elements.Pagination)
	c.Elements = el
	return c
}

// Validate reports options a widget cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Play < 0 {
		errs = append(errs, fmt.Errorf("play interval %v is negative", c.Play))
	}
	if c.AnimationSpeed < 0 {
		errs = append(errs, fmt.Errorf("animation speed %v is negative", c.AnimationSpeed))
	}
	if c.ResizeDebounce < 0 {
		errs = append(errs, fmt.Errorf("resize debounce %v is negative", c.ResizeDebounce))
	}
	if c.Animation != AnimationSlide && c.Animation != AnimationFade {
		errs = append(errs, fmt.Errorf("unknown animation %d", c.Animation))
	}
	if _, ok := EasingByName(c.AnimationEasing); !ok {
		errs = append(errs, fmt.Errorf("unknown easing %q", c.AnimationEasing))
	}
	return errors.Join(errs...)
}

// fileConfig is the on-disk shape shared by YAML and TOML. Absent keys keep
// their defaults.
type fileConfig struct {
	Play            any           `yaml:"play" toml:"play"`
	AnimationSpeed  *int64        `yaml:"animation_speed" toml:"animation_speed"`
	AnimationEasing *string       `yaml:"animation_easing" toml:"animation_easing"`
	Animation       *string       `yaml:"animation" toml:"animation"`
	ResizeDebounce  *int64        `yaml:"resize_debounce" toml:"resize_debounce"`
	Pagination      *bool         `yaml:"pagination" toml:"pagination"`
	HashChange      *bool         `yaml:"hashchange" toml:"hashchange"`
	Scrollable      *bool         `yaml:"scrollable" toml:"scrollable"`
	Elements        *fileElements `yaml:"elements" toml:"elements"`
}

type fileElements struct {
	Preserve   string `yaml:"preserve" toml:"preserve"`
	Nav        string `yaml:"nav" toml:"nav"`
	Container  string `yaml:"container" toml:"container"`
	Pagination string `yaml:"pagination" toml:"pagination"`
}

// LoadConfig parses YAML options over DefaultConfig. Durations are given in
// milliseconds; play is false or an interval.
//
//	play: 5000
//	animation: fade
//	animation_speed: 800
//	animation_easing: easeInOutCubic
//	elements:
//	  container: gallery
func LoadConfig(data []byte) (Config, error) {
	var f fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return f.config()
}

// LoadConfigTOML parses TOML options over DefaultConfig, with the same keys
// as LoadConfig.
func LoadConfigTOML(data []byte) (Config, error) {
	var f fileConfig
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return f.config()
}

// LoadConfigFile reads a config file, choosing TOML for a .toml extension
// and YAML otherwise.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		cfg, err = LoadConfigTOML(data)
	} else {
		cfg, err = LoadConfig(data)
	}
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (f fileConfig) config() (Config, error) {
	cfg := DefaultConfig()

	play, err := parsePlay(f.Play)
	if err != nil {
		return Config{}, err
	}
	cfg.Play = play

	if f.AnimationSpeed != nil {
		cfg.AnimationSpeed = time.Duration(*f.AnimationSpeed) * time.Millisecond
	}
	if f.AnimationEasing != nil {
		cfg.AnimationEasing = *f.AnimationEasing
	}
	if f.Animation != nil {
		a, err := ParseAnimation(*f.Animation)
		if err != nil {
			return Config{}, err
		}
		cfg.Animation = a
	}
	if f.ResizeDebounce != nil {
		cfg.ResizeDebounce = time.Duration(*f.ResizeDebounce) * time.Millisecond
	}
	if f.Pagination != nil {
		cfg.Pagination = *f.Pagination
	}
	if f.HashChange != nil {
		cfg.HashChange = *f.HashChange
	}
	if f.Scrollable != nil {
		cfg.Scrollable = *f.Scrollable
	}
	if e := f.Elements; e != nil {
		overrideString(&cfg.Elements.Preserve, e.Preserve)
		overrideString(&cfg.Elements.Nav, e.Nav)
		overrideString(&cfg.Elements.Container, e.Container)
		overrideString(&cfg.Elements.Pagination, e.Pagination)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func overrideString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// parsePlay accepts false (or an absent key) for manual playback and a
// non-negative number of milliseconds for autoplay.
func parsePlay(v any) (time.Duration, error) {
	var ms float64
	switch p := v.(type) {
	case nil:
		return 0, nil
	case bool:
		if p {
			return 0, errors.New("play must be false or an interval in milliseconds")
		}
		return 0, nil
	case int:
		ms = float64(p)
	case int64:
		ms = float64(p)
	case uint64:
		ms = float64(p)
	case float64:
		ms = p
	default:
		return 0, fmt.Errorf("play: unsupported value %v", v)
	}
	if ms < 0 || math.IsNaN(ms) || math.IsInf(ms, 0) {
		return 0, fmt.Errorf("play interval %v is not a non-negative number", v)
	}
	return time.Duration(ms * float64(time.Millisecond)), nil
}
