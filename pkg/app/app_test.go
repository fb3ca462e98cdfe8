package app

import (
	"testing"

	"github.com/decker502/reportdeck/pkg/game"
	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolveLanguage 测试启动语言的优先级
func TestResolveLanguage(t *testing.T) {
	saved := game.NewSettingsManager(nil)
	saved.SetLanguage(game.LanguageEN)

	tests := []struct {
		name     string
		flag     string
		settings *game.SettingsManager
		fallback string
		want     game.Language
	}{
		{"flag wins", "tr", saved, "EN", game.LanguageTR},
		{"saved beats default", "", saved, "TR", game.LanguageEN},
		{"default when nothing saved", "", game.NewSettingsManager(nil), "en", game.LanguageEN},
		{"nil settings", "", nil, "EN", game.LanguageEN},
		{"invalid default falls back to TR", "", nil, "de", game.LanguageTR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveLanguage(tt.flag, tt.settings, tt.fallback)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ResolveLanguage("de", saved, "TR")
	assert.Error(t, err, "an explicit but unsupported language is an error")
}

// TestFullscreenFlagIsPersisted --fullscreen 写入偏好，下次启动不带参数也全屏
func TestFullscreenFlagIsPersisted(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	store, err := gdata.Open(gdata.Config{AppName: "reportdeck_test_app"})
	require.NoError(t, err)

	first := game.NewSettingsManager(store)
	assert.False(t, applyFullscreenFlag(first, false), "no flag, nothing saved")
	assert.True(t, applyFullscreenFlag(first, true))

	reloaded := game.NewSettingsManager(store)
	assert.True(t, reloaded.GetSettings().Fullscreen)
	assert.True(t, applyFullscreenFlag(reloaded, false), "saved preference applies without the flag")

	// 降级模式下只在内存中生效
	assert.True(t, applyFullscreenFlag(game.NewSettingsManager(nil), true))
}
