package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestShippedMiniGameConfigMatchesDefaults 发布的调参文件应与默认值一致
func TestShippedMiniGameConfigMatchesDefaults(t *testing.T) {
	data, err := os.ReadFile("../../data/minigame.yaml")
	require.NoError(t, err)

	cfg, err := ParseMiniGameConfig(data)
	require.NoError(t, err)

	if diff := cmp.Diff(DefaultMiniGameConfig(), cfg); diff != "" {
		t.Errorf("shipped minigame config mismatch (-default +file):\n%s", diff)
	}
}

// TestMiniGameDerivedValues 测试派生值
func TestMiniGameDerivedValues(t *testing.T) {
	cfg := DefaultMiniGameConfig()

	assert.InDelta(t, 0.4, cfg.ItemStep(), 1e-9)
	assert.Equal(t, 1500*time.Millisecond, cfg.SpawnInterval())
}

// TestParseMiniGameConfigOverride 测试部分覆盖
func TestParseMiniGameConfigOverride(t *testing.T) {
	cfg, err := ParseMiniGameConfig([]byte("winScore: 50\nitem:\n  kinds: 5\n"))
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.WinScore)
	assert.Equal(t, 5, cfg.Item.Kinds)
	// 同一嵌套结构内未覆盖的字段保持默认
	assert.InDelta(t, 100, cfg.Item.SpawnX, 1e-9)
	assert.InDelta(t, 0.6, cfg.Gravity, 1e-9)
}

// TestMiniGameConfigValidate 测试校验规则
func TestMiniGameConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *MiniGameConfig)
	}{
		{"重力为零", func(c *MiniGameConfig) { c.Gravity = 0 }},
		{"跳跃向下", func(c *MiniGameConfig) { c.Jump = 5 }},
		{"速度为零", func(c *MiniGameConfig) { c.Speed = 0 }},
		{"生成间隔为零", func(c *MiniGameConfig) { c.SpawnIntervalMs = 0 }},
		{"起始高度低于地面", func(c *MiniGameConfig) { c.Player.StartY = 96 }},
		{"玩家碰撞盒为空", func(c *MiniGameConfig) { c.Player.Right = c.Player.Left }},
		{"生成区间颠倒", func(c *MiniGameConfig) { c.Item.MinY = 90 }},
		{"移除线在生成点右侧", func(c *MiniGameConfig) { c.Item.DespawnX = 120 }},
		{"没有道具种类", func(c *MiniGameConfig) { c.Item.Kinds = 0 }},
		{"得分为零", func(c *MiniGameConfig) { c.PointsPerItem = 0 }},
		{"获胜分数为零", func(c *MiniGameConfig) { c.WinScore = 0 }},
	}

	require.NoError(t, DefaultMiniGameConfig().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMiniGameConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
