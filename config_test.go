package slides

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, time.Duration(0), cfg.Play)
	assert.Equal(t, 600*time.Millisecond, cfg.AnimationSpeed)
	assert.Equal(t, "swing", cfg.AnimationEasing)
	assert.Equal(t, AnimationSlide, cfg.Animation)
	assert.Equal(t, 200*time.Millisecond, cfg.ResizeDebounce)
	assert.Equal(t, "slides-container", cfg.Elements.Container)
	assert.Equal(t, "slides-navigation", cfg.Elements.Nav)
	assert.Equal(t, "preserve", cfg.Elements.Preserve)
	assert.NoError(t, cfg.Validate())
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{Elements: Elements{Container: "gallery"}}.withDefaults()
	assert.Equal(t, "gallery", cfg.Elements.Container)
	assert.Equal(t, "slides-navigation", cfg.Elements.Nav)
	assert.Equal(t, "preserve", cfg.Elements.Preserve)
	assert.Equal(t, "slides-pagination", cfg.Elements.Pagination)
	assert.Equal(t, "swing", cfg.AnimationEasing)
	assert.Equal(t, 200*time.Millisecond, cfg.ResizeDebounce)
	assert.Equal(t, time.Duration(0), cfg.AnimationSpeed)

	cfg = Config{AnimationEasing: "linear", ResizeDebounce: 50 * time.Millisecond}.withDefaults()
	assert.Equal(t, "linear", cfg.AnimationEasing)
	assert.Equal(t, 50*time.Millisecond, cfg.ResizeDebounce)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Play = -time.Second
	cfg.AnimationEasing = "wobble"
	cfg.Animation = Animation(7)

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "play interval")
	assert.Contains(t, err.Error(), "wobble")
	assert.Contains(t, err.Error(), "unknown animation")
}

func TestLoadConfigYAML(t *testing.T) {
	cfg, err := LoadConfig([]byte(`
play: 5000
animation: fade
animation_speed: 800
animation_easing: easeInOutCubic
hashchange: true
elements:
  container: gallery
`))
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Play)
	assert.Equal(t, AnimationFade, cfg.Animation)
	assert.Equal(t, 800*time.Millisecond, cfg.AnimationSpeed)
	assert.Equal(t, "easeInOutCubic", cfg.AnimationEasing)
	assert.True(t, cfg.HashChange)
	assert.Equal(t, "gallery", cfg.Elements.Container)
	assert.Equal(t, "slides-navigation", cfg.Elements.Nav, "unset elements keep defaults")
}

func TestLoadConfigYAMLEmpty(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().AnimationSpeed, cfg.AnimationSpeed)
}

func TestLoadConfigPlay(t *testing.T) {
	cfg, err := LoadConfig([]byte("play: false\n"))
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.Play)

	cfg, err = LoadConfig([]byte("play: 1500.5\n"))
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond+500*time.Microsecond, cfg.Play)

	_, err = LoadConfig([]byte("play: true\n"))
	assert.Error(t, err)

	_, err = LoadConfig([]byte("play: -1\n"))
	assert.Error(t, err)

	_, err = LoadConfig([]byte("play: soon\n"))
	assert.Error(t, err)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig([]byte("animation: zoom\n"))
	assert.Error(t, err)

	_, err = LoadConfig([]byte("animation_easing: wobble\n"))
	assert.Error(t, err)

	_, err = LoadConfig([]byte("speed: 3\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = LoadConfig([]byte("play: [\n"))
	assert.Error(t, err)
}

func TestLoadConfigTOML(t *testing.T) {
	cfg, err := LoadConfigTOML([]byte(`
play = 3000
animation = "slide"
resize_debounce = 50
scrollable = false

[elements]
nav = "arrows"
`))
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.Play)
	assert.Equal(t, AnimationSlide, cfg.Animation)
	assert.Equal(t, 50*time.Millisecond, cfg.ResizeDebounce)
	assert.False(t, cfg.Scrollable)
	assert.Equal(t, "arrows", cfg.Elements.Nav)

	_, err = LoadConfigTOML([]byte("bogus = 1\n"))
	assert.Error(t, err)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "slides.yaml")
	tomlPath := filepath.Join(dir, "slides.toml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("animation: fade\n"), 0o644))
	require.NoError(t, os.WriteFile(tomlPath, []byte("animation = \"fade\"\n"), 0o644))

	for _, path := range []string{yamlPath, tomlPath} {
		cfg, err := LoadConfigFile(path)
		require.NoError(t, err, path)
		assert.Equal(t, AnimationFade, cfg.Animation, path)
	}

	_, err := LoadConfigFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
