package systems

import (
	"github.com/decker502/reportdeck/pkg/components"
	"github.com/decker502/reportdeck/pkg/config"
	"github.com/decker502/reportdeck/pkg/ecs"
)

// PlayerPhysicsSystem 小游戏玩家的重力与跳跃
//
// 每 tick 执行一次（不按经过时间缩放）：
//  1. velocity += Gravity
//  2. y += velocity * PositionScale（使用本 tick 更新后的速度）
//  3. y 夹在 [0, FloorY]，到达 FloorY 视为落地
type PlayerPhysicsSystem struct {
	entityManager *ecs.EntityManager
	config        *config.MiniGameConfig
}

// NewPlayerPhysicsSystem 创建玩家物理系统
func NewPlayerPhysicsSystem(em *ecs.EntityManager, cfg *config.MiniGameConfig) *PlayerPhysicsSystem {
	return &PlayerPhysicsSystem{
		entityManager: em,
		config:        cfg,
	}
}

// Jump 跳跃冲量：直接把速度设为 Jump 常量，与当前速度无关
func (s *PlayerPhysicsSystem) Jump() {
	for _, id := range s.players() {
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); ok {
			vel.VY = s.config.Jump
		}
	}
}

// Update 推进一个 tick
// 返回: 本 tick 是否有玩家落地
func (s *PlayerPhysicsSystem) Update() bool {
	hitFloor := false

	for _, id := range s.players() {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		if player.HitFloor {
			continue
		}

		vel.VY += s.config.Gravity
		pos.Y += vel.VY * s.config.PositionScale

		if pos.Y >= s.config.Player.FloorY {
			pos.Y = s.config.Player.FloorY
			player.HitFloor = true
			hitFloor = true
			continue
		}
		if pos.Y < 0 {
			pos.Y = 0
		}
	}

	return hitFloor
}

func (s *PlayerPhysicsSystem) players() []ecs.EntityID {
	return ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.entityManager)
}
