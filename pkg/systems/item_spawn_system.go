package systems

import (
	"math/rand"

	"github.com/decker502/reportdeck/pkg/components"
	"github.com/decker502/reportdeck/pkg/config"
	"github.com/decker502/reportdeck/pkg/ecs"
	"github.com/decker502/reportdeck/pkg/entities"
)

// ItemSpawnSystem 生成设计道具
// 生成时机由调用方（小游戏会话）根据经过的时钟时间决定
type ItemSpawnSystem struct {
	entityManager *ecs.EntityManager
	config        *config.MiniGameConfig
	rng           *rand.Rand
}

// NewItemSpawnSystem 创建道具生成系统
// 参数:
//   - em: EntityManager 实例
//   - cfg: 小游戏调参
//   - rng: 随机源，测试中可传入固定种子
func NewItemSpawnSystem(em *ecs.EntityManager, cfg *config.MiniGameConfig, rng *rand.Rand) *ItemSpawnSystem {
	return &ItemSpawnSystem{
		entityManager: em,
		config:        cfg,
		rng:           rng,
	}
}

// Spawn 在右侧边缘生成一个道具，高度在 [MinY, MaxY) 均匀分布
func (s *ItemSpawnSystem) Spawn() ecs.EntityID {
	band := s.config.Item.MaxY - s.config.Item.MinY
	y := s.config.Item.MinY + s.rng.Float64()*band
	kind := components.ItemKind(s.rng.Intn(s.config.Item.Kinds))

	return entities.NewItemEntity(s.entityManager, s.config, y, kind)
}
