package entities

import (
	"github.com/decker502/reportdeck/pkg/components"
	"github.com/decker502/reportdeck/pkg/config"
	"github.com/decker502/reportdeck/pkg/ecs"
)

// NewPlayerEntity 创建小游戏玩家实体
// 参数:
//   - em: EntityManager 实例
//   - cfg: 小游戏调参，提供起始高度与碰撞盒
//
// 返回: 创建的实体ID
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.MiniGameConfig) ecs.EntityID {
	id := em.CreateEntity()

	// 玩家固定在水平位置 Left，只在垂直方向运动
	ecs.AddComponent(em, id, &components.PositionComponent{
		X: cfg.Player.Left,
		Y: cfg.Player.StartY,
	})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.Player.Right - cfg.Player.Left,
		Height: cfg.Player.Height,
	})
	ecs.AddComponent(em, id, &components.PlayerComponent{})

	return id
}
