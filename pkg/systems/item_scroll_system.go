package systems

import (
	"github.com/decker502/reportdeck/pkg/components"
	"github.com/decker502/reportdeck/pkg/config"
	"github.com/decker502/reportdeck/pkg/ecs"
)

// ItemScrollSystem 道具向左滚动并移除离开屏幕的道具
type ItemScrollSystem struct {
	entityManager *ecs.EntityManager
	config        *config.MiniGameConfig
}

// NewItemScrollSystem 创建道具滚动系统
func NewItemScrollSystem(em *ecs.EntityManager, cfg *config.MiniGameConfig) *ItemScrollSystem {
	return &ItemScrollSystem{
		entityManager: em,
		config:        cfg,
	}
}

// Update 推进一个 tick
// 只保留 x > DespawnX 的道具，无论是否已收集
func (s *ItemScrollSystem) Update() {
	items := ecs.GetEntitiesWith3[
		*components.ItemComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.entityManager)

	for _, id := range items {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		pos.X += vel.VX
		if pos.X <= s.config.Item.DespawnX {
			s.entityManager.DestroyEntity(id)
		}
	}

	s.entityManager.RemoveMarkedEntities()
}
