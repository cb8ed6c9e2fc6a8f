package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filegrid/internal/eventbus"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cs := NewConfigService(WithPath(filepath.Join(t.TempDir(), "config.toml")))

	cfg, err := cs.Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultColumns(), cfg.Columns)
	assert.Equal(t, "status", cfg.Selection.DisableWhen.Field)
	assert.Equal(t, "available", cfg.Selection.DisableWhen.NotEquals)
	assert.True(t, cfg.Selection.SelectAllIncludesDisabled)
	assert.Equal(t, BoundSelected, cfg.Navigation.Bound)
	assert.False(t, cfg.Keyboard.EnterTogglesActive)
	assert.True(t, cfg.UISettings.Mouse)
	assert.Equal(t, "filegrid.log", cfg.Log.File)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_file = "files.toml"

[[columns]]
display = "File"
field = "name"

[[columns]]
display = "State"
field = "status"
renderer = "status"

[selection]
select_all_includes_disabled = false

[selection.disable_when]
field = "status"
not_equals = "ready"

[navigation]
bound = "rows"

[keyboard]
enter_toggles_active = true
`), 0644))

	cfg, err := NewConfigService(WithPath(path)).Load()
	require.NoError(t, err)

	assert.Equal(t, "files.toml", cfg.DataFile)
	require.Len(t, cfg.Columns, 2)
	assert.Equal(t, ColumnConfig{Display: "State", Field: "status", Renderer: RendererStatus}, cfg.Columns[1])
	assert.Equal(t, "ready", cfg.Selection.DisableWhen.NotEquals)
	assert.False(t, cfg.Selection.SelectAllIncludesDisabled)
	assert.Equal(t, BoundRows, cfg.Navigation.Bound)
	assert.True(t, cfg.Keyboard.EnterTogglesActive)
	assert.True(t, cfg.UISettings.Mouse, "unset keys keep defaults")
}

func TestLoadRejectsInvalidBound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[navigation]\nbound = \"sideways\"\n"), 0644))

	_, err := NewConfigService(WithPath(path)).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "navigation.bound")
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("data_file = [unterminated"), 0644))

	_, err := NewConfigService(WithPath(path)).Load()
	require.Error(t, err)
}

func TestLoadFromPathRequiresFile(t *testing.T) {
	cs := NewConfigService()
	_, err := cs.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("data_file = \"from-file.toml\"\n"), 0644))
	t.Setenv("FILEGRID_DATA_FILE", "from-env.toml")
	t.Setenv("FILEGRID_NAVIGATION_BOUND", "rows")

	cfg, err := NewConfigService(WithPath(path)).Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env.toml", cfg.DataFile)
	assert.Equal(t, BoundRows, cfg.Navigation.Bound)
}

func TestChangedFlagsOverrideEverything(t *testing.T) {
	t.Setenv("FILEGRID_DATA_FILE", "from-env.toml")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("data", "", "")
	flags.String("download-dir", "", "")
	flags.String("log", "", "")
	require.NoError(t, flags.Parse([]string{"--data", "from-flag.toml"}))

	cfg, err := NewConfigService(
		WithPath(filepath.Join(t.TempDir(), "config.toml")),
		WithFlags(flags),
	).Load()
	require.NoError(t, err)

	assert.Equal(t, "from-flag.toml", cfg.DataFile)
	assert.Equal(t, ".", cfg.Download.Dir, "unchanged flags do not override")
	assert.Equal(t, "filegrid.log", cfg.Log.File)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cs := NewConfigService(WithPath(path))

	cfg := DefaultConfig()
	cfg.DataFile = "rows.toml"
	cfg.Navigation.Bound = BoundRows
	require.NoError(t, cs.Save(cfg))

	loaded, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPublishesConfigLoaded(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan eventbus.ConfigLoadedEvent, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		got <- e.(eventbus.ConfigLoadedEvent)
	})

	path := filepath.Join(t.TempDir(), "config.toml")
	_, err := NewConfigService(WithPath(path), WithBus(bus)).Load()
	require.NoError(t, err)

	select {
	case ev := <-got:
		assert.Equal(t, path, ev.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("ConfigLoadedEvent not published")
	}
}
