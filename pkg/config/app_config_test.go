package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseAppConfigShippedFile 测试随应用发布的配置文件
func TestParseAppConfigShippedFile(t *testing.T) {
	data, err := os.ReadFile("../../data/app.yaml")
	require.NoError(t, err)

	cfg, err := ParseAppConfig(data)
	require.NoError(t, err)

	assert.Equal(t, "TR", cfg.DefaultLanguage)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "905336746421", cfg.Claim.Phone)
	assert.True(t, cfg.Audio.IsRemote())
	assert.Equal(t, time.Second, cfg.Navigation.TransitionDuration())
	assert.Equal(t, 100*time.Millisecond, cfg.Audio.FadeInterval())
	assert.InDelta(t, 0.5, cfg.Audio.FadeTarget, 1e-9)
	assert.InDelta(t, 0.05, cfg.Audio.FadeStep, 1e-9)
	assert.InDelta(t, 15, cfg.Navigation.WheelThreshold, 1e-9)
	assert.InDelta(t, 30, cfg.Navigation.SwipeThreshold, 1e-9)
}

// TestParseAppConfigDefaults 测试缺省字段保留默认值
func TestParseAppConfigDefaults(t *testing.T) {
	cfg, err := ParseAppConfig([]byte("defaultLanguage: en\nclaim:\n  phone: \"123\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "EN", cfg.DefaultLanguage, "language should be normalised to upper case")
	assert.Equal(t, GameWindowWidth, cfg.Window.Width)
	assert.Equal(t, 1000, cfg.Navigation.TransitionMs)
	assert.InDelta(t, 40, cfg.Navigation.WheelLineHeight, 1e-9)
	assert.False(t, cfg.Audio.IsRemote())
}

// TestParseAppConfigInvalid 测试非法配置
func TestParseAppConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"YAML 语法错误", "window: [1, 2"},
		{"未知语言", "defaultLanguage: DE\nclaim: {phone: \"1\"}"},
		{"缺少电话", "defaultLanguage: TR"},
		{"电话含非数字", "claim: {phone: \"+90 533\"}"},
		{"窗口尺寸为零", "window: {width: 0}\nclaim: {phone: \"1\"}"},
		{"淡入目标越界", "audio: {fadeTarget: 1.5}\nclaim: {phone: \"1\"}"},
		{"淡入步长大于目标", "audio: {fadeTarget: 0.1, fadeStep: 0.2}\nclaim: {phone: \"1\"}"},
		{"防抖时长为零", "navigation: {transitionMs: 0}\nclaim: {phone: \"1\"}"},
		{"负阈值", "navigation: {swipeThreshold: -1}\nclaim: {phone: \"1\"}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAppConfig([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
