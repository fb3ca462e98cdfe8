package systems

import (
	"github.com/decker502/reportdeck/pkg/components"
	"github.com/decker502/reportdeck/pkg/ecs"
)

// CollectFunc 收集回调，返回 false 时停止本次检测（例如已经获胜）
type CollectFunc func(id ecs.EntityID, item *components.ItemComponent) bool

// ItemCollectionSystem 玩家与道具的碰撞检测
type ItemCollectionSystem struct {
	entityManager *ecs.EntityManager
}

// NewItemCollectionSystem 创建收集系统
func NewItemCollectionSystem(em *ecs.EntityManager) *ItemCollectionSystem {
	return &ItemCollectionSystem{entityManager: em}
}

// overlaps 严格的 AABB 重叠判定（仅接触边缘不算碰撞）
func overlaps(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {

	left1, top1, right1, bottom1 := col1.Bounds(pos1)
	left2, top2, right2, bottom2 := col2.Bounds(pos2)

	return right1 > left2 &&
		left1 < right2 &&
		bottom1 > top2 &&
		top1 < bottom2
}

// Update 检测所有未收集道具与玩家的重叠
// 每个重叠的道具被标记为已收集，并按生成顺序调用 onCollect
// 返回: 本次新收集的道具数量
func (s *ItemCollectionSystem) Update(onCollect CollectFunc) int {
	players := ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](s.entityManager)
	items := ecs.GetEntitiesWith3[
		*components.ItemComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](s.entityManager)

	collected := 0
	for _, playerID := range players {
		playerPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
		playerCol, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, playerID)

		for _, itemID := range items {
			item, _ := ecs.GetComponent[*components.ItemComponent](s.entityManager, itemID)
			if item.Collected {
				continue
			}
			itemPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, itemID)
			itemCol, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, itemID)

			if !overlaps(playerPos, playerCol, itemPos, itemCol) {
				continue
			}

			item.Collected = true
			collected++
			if onCollect != nil && !onCollect(itemID, item) {
				return collected
			}
		}
	}

	return collected
}
