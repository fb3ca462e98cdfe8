package config

import (
	"fmt"
	"time"

	"github.com/decker502/reportdeck/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// MiniGameConfigPath 小游戏调参文件的嵌入路径
const MiniGameConfigPath = "data/minigame.yaml"

// MiniGameConfig 小游戏调参配置
//
// 所有位置均为游戏区域的百分比坐标（0~100）。
// 物理按"每 tick"积分，不乘以经过的时间。
//
// 配置文件位置: data/minigame.yaml
type MiniGameConfig struct {
	// Gravity 每 tick 增加的速度
	Gravity float64 `yaml:"gravity"`

	// Jump 跳跃时直接设置的速度（负值向上）
	Jump float64 `yaml:"jump"`

	// Speed 道具横向速度，每 tick 实际移动 Speed*SpeedScale
	Speed float64 `yaml:"speed"`

	// SpeedScale 道具速度缩放
	SpeedScale float64 `yaml:"speedScale"`

	// PositionScale 速度到位置的缩放，每 tick playerY += velocity*PositionScale
	PositionScale float64 `yaml:"positionScale"`

	// SpawnIntervalMs 道具生成间隔（毫秒）
	SpawnIntervalMs int `yaml:"spawnIntervalMs"`

	Player PlayerTuning `yaml:"player"`
	Item   ItemTuning   `yaml:"item"`

	// PointsPerItem 每收集一个道具的得分
	PointsPerItem int `yaml:"pointsPerItem"`

	// WinScore 获胜分数
	WinScore int `yaml:"winScore"`
}

// PlayerTuning 玩家参数
type PlayerTuning struct {
	StartY float64 `yaml:"startY"` // 开局高度
	FloorY float64 `yaml:"floorY"` // 落地判定高度
	Left   float64 `yaml:"left"`   // 碰撞盒左边
	Right  float64 `yaml:"right"`  // 碰撞盒右边
	Height float64 `yaml:"height"` // 碰撞盒高度
}

// ItemTuning 道具参数
type ItemTuning struct {
	SpawnX   float64 `yaml:"spawnX"`   // 生成 X
	MinY     float64 `yaml:"minY"`     // 生成高度下限
	MaxY     float64 `yaml:"maxY"`     // 生成高度上限
	Size     float64 `yaml:"size"`     // 碰撞盒边长
	DespawnX float64 `yaml:"despawnX"` // 低于此 X 时移除
	Kinds    int     `yaml:"kinds"`    // 道具种类数
}

// DefaultMiniGameConfig 返回默认调参
func DefaultMiniGameConfig() *MiniGameConfig {
	return &MiniGameConfig{
		Gravity:         0.6,
		Jump:            -10,
		Speed:           4,
		SpeedScale:      0.1,
		PositionScale:   0.15,
		SpawnIntervalMs: 1500,
		Player: PlayerTuning{
			StartY: 50,
			FloorY: 95,
			Left:   10,
			Right:  20,
			Height: 8,
		},
		Item: ItemTuning{
			SpawnX:   100,
			MinY:     10,
			MaxY:     80,
			Size:     6,
			DespawnX: -10,
			Kinds:    3,
		},
		PointsPerItem: 10,
		WinScore:      100,
	}
}

// LoadMiniGameConfig 加载小游戏调参
// 文件中缺省的字段保留默认值
func LoadMiniGameConfig(path string) (*MiniGameConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read minigame config: %w", err)
	}
	return ParseMiniGameConfig(data)
}

// ParseMiniGameConfig 解析并校验小游戏调参
func ParseMiniGameConfig(data []byte) (*MiniGameConfig, error) {
	cfg := DefaultMiniGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse minigame config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid minigame config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置的有效性
func (c *MiniGameConfig) Validate() error {
	if c.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %v", c.Gravity)
	}
	if c.Jump >= 0 {
		return fmt.Errorf("jump must be negative, got %v", c.Jump)
	}
	if c.Speed <= 0 || c.SpeedScale <= 0 {
		return fmt.Errorf("speed and speedScale must be positive")
	}
	if c.PositionScale <= 0 {
		return fmt.Errorf("positionScale must be positive, got %v", c.PositionScale)
	}
	if c.SpawnIntervalMs <= 0 {
		return fmt.Errorf("spawnIntervalMs must be positive, got %d", c.SpawnIntervalMs)
	}

	p := c.Player
	if p.FloorY <= 0 || p.FloorY > 100 {
		return fmt.Errorf("player.floorY must be in (0, 100], got %v", p.FloorY)
	}
	if p.StartY < 0 || p.StartY >= p.FloorY {
		return fmt.Errorf("player.startY must be in [0, floorY), got %v", p.StartY)
	}
	if p.Right <= p.Left || p.Height <= 0 {
		return fmt.Errorf("player hitbox must have positive size")
	}

	it := c.Item
	if it.MinY < 0 || it.MaxY > 100 || it.MinY > it.MaxY {
		return fmt.Errorf("item spawn band [%v, %v] is invalid", it.MinY, it.MaxY)
	}
	if it.Size <= 0 {
		return fmt.Errorf("item.size must be positive, got %v", it.Size)
	}
	if it.DespawnX >= it.SpawnX {
		return fmt.Errorf("item.despawnX must be left of spawnX")
	}
	if it.Kinds <= 0 {
		return fmt.Errorf("item.kinds must be positive, got %d", it.Kinds)
	}

	if c.PointsPerItem <= 0 {
		return fmt.Errorf("pointsPerItem must be positive, got %d", c.PointsPerItem)
	}
	if c.WinScore <= 0 {
		return fmt.Errorf("winScore must be positive, got %d", c.WinScore)
	}
	return nil
}

// SpawnInterval 返回道具生成间隔
func (c *MiniGameConfig) SpawnInterval() time.Duration {
	return time.Duration(c.SpawnIntervalMs) * time.Millisecond
}

// ItemStep 返回道具每 tick 的横向位移
func (c *MiniGameConfig) ItemStep() float64 {
	return c.Speed * c.SpeedScale
}
