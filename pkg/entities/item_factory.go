package entities

import (
	"github.com/decker502/reportdeck/pkg/components"
	"github.com/decker502/reportdeck/pkg/config"
	"github.com/decker502/reportdeck/pkg/ecs"
)

// NewItemEntity 创建一个设计道具实体
// 参数:
//   - em: EntityManager 实例
//   - cfg: 小游戏调参，提供生成 X 与碰撞盒尺寸
//   - y: 生成高度（百分比）
//   - kind: 道具种类
//
// 返回: 创建的实体ID（单调递增，可直接作为道具 ID）
func NewItemEntity(em *ecs.EntityManager, cfg *config.MiniGameConfig, y float64, kind components.ItemKind) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{
		X: cfg.Item.SpawnX,
		Y: y,
	})
	ecs.AddComponent(em, id, &components.VelocityComponent{
		VX: -cfg.ItemStep(),
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.Item.Size,
		Height: cfg.Item.Size,
	})
	ecs.AddComponent(em, id, &components.ItemComponent{
		Kind: kind,
	})

	return id
}
