// Package minigame 实现 "Design Hunter" 小游戏的会话状态机与逐帧模拟
//
// 阶段流转：start → playing → {gameover, won}；gameover → playing（重试）；
// won 在本次会话中是终态。模拟由 schedule.Scheduler 的帧回调驱动，
// 离开 playing 或关闭会话时取消未执行的帧回调。
package minigame

import (
	"log"
	"math/rand"
	"time"

	"github.com/decker502/reportdeck/pkg/components"
	"github.com/decker502/reportdeck/pkg/config"
	"github.com/decker502/reportdeck/pkg/ecs"
	"github.com/decker502/reportdeck/pkg/entities"
	"github.com/decker502/reportdeck/pkg/schedule"
	"github.com/decker502/reportdeck/pkg/systems"
)

// Item 道具快照（供渲染与测试读取）
type Item struct {
	ID        ecs.EntityID
	X         float64
	Y         float64
	Kind      components.ItemKind
	Collected bool
}

// Session 一次小游戏会话（从打开覆盖层到关闭）
type Session struct {
	config    *config.MiniGameConfig
	scheduler *schedule.Scheduler

	entityManager *ecs.EntityManager
	player        ecs.EntityID

	physics    *systems.PlayerPhysicsSystem
	spawner    *systems.ItemSpawnSystem
	scroll     *systems.ItemScrollSystem
	collection *systems.ItemCollectionSystem

	phase     Phase
	score     int
	frame     schedule.Handle
	lastSpawn time.Duration
	ticks     int
	closed    bool

	onPhaseChange func(Phase)
}

// NewSession 创建处于 start 阶段的会话
//
// 参数:
//   - cfg: 小游戏调参
//   - scheduler: 帧回调来源
//   - rng: 道具生成随机源
func NewSession(cfg *config.MiniGameConfig, scheduler *schedule.Scheduler, rng *rand.Rand) *Session {
	em := ecs.NewEntityManager()
	s := &Session{
		config:        cfg,
		scheduler:     scheduler,
		entityManager: em,
		physics:       systems.NewPlayerPhysicsSystem(em, cfg),
		spawner:       systems.NewItemSpawnSystem(em, cfg, rng),
		scroll:        systems.NewItemScrollSystem(em, cfg),
		collection:    systems.NewItemCollectionSystem(em),
		phase:         PhaseStart,
	}
	s.player = entities.NewPlayerEntity(em, cfg)
	return s
}

// OnPhaseChange 注册阶段变化回调
func (s *Session) OnPhaseChange(fn func(Phase)) {
	s.onPhaseChange = fn
}

// Activate 跳跃 / 开始 / 重试
//   - playing: 施加跳跃冲量
//   - start、gameover: 重置并开始新的一局
//   - won 或已关闭: 忽略
func (s *Session) Activate() {
	if s.closed {
		return
	}
	switch s.phase {
	case PhasePlaying:
		s.physics.Jump()
	case PhaseStart, PhaseGameOver:
		s.start()
	}
}

// Close 关闭会话并取消未执行的帧回调
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.cancelLoop()
	log.Printf("[MiniGame] Session closed in phase %s with score %d", s.phase, s.score)
}

// start 重置分数、玩家、道具与生成计时器，进入 playing
func (s *Session) start() {
	s.entityManager.Clear()
	s.player = entities.NewPlayerEntity(s.entityManager, s.config)

	s.score = 0
	s.ticks = 0
	s.lastSpawn = s.scheduler.Now()
	s.setPhase(PhasePlaying)
}

func (s *Session) setPhase(p Phase) {
	if s.phase == p {
		return
	}
	prev := s.phase
	s.phase = p
	log.Printf("[MiniGame] Phase %s -> %s (score=%d)", prev, p, s.score)

	if p == PhasePlaying {
		s.requestLoop()
	} else {
		s.cancelLoop()
	}

	if s.onPhaseChange != nil {
		s.onPhaseChange(p)
	}
}

func (s *Session) requestLoop() {
	if s.frame != 0 && s.scheduler.Pending(s.frame) {
		return
	}
	s.frame = s.scheduler.RequestFrame(s.tick)
}

func (s *Session) cancelLoop() {
	if s.frame != 0 {
		s.scheduler.Cancel(s.frame)
		s.frame = 0
	}
}

// tick 每帧一次的模拟步进
func (s *Session) tick(now time.Duration) {
	s.frame = 0
	if s.closed || s.phase != PhasePlaying {
		return
	}
	s.ticks++

	// 1-2. 重力与位置积分，落地即结束
	if s.physics.Update() {
		s.setPhase(PhaseGameOver)
		return
	}

	// 3. 按经过的时钟时间生成道具
	if now-s.lastSpawn > s.config.SpawnInterval() {
		s.spawner.Spawn()
		s.lastSpawn = now
	}

	// 4. 道具左移并移除离开屏幕的道具
	s.scroll.Update()

	// 5. 位置变化后重新检测碰撞
	s.collection.Update(s.award)

	if s.phase == PhasePlaying {
		s.requestLoop()
	}
}

// award 收集一个道具得分，达到获胜分数时进入 won
func (s *Session) award(ecs.EntityID, *components.ItemComponent) bool {
	s.score += s.config.PointsPerItem
	if s.score >= s.config.WinScore {
		s.setPhase(PhaseWon)
		return false
	}
	return true
}

// Phase 当前阶段
func (s *Session) Phase() Phase {
	return s.phase
}

// Score 当前分数
func (s *Session) Score() int {
	return s.score
}

// Ticks 本局已推进的帧数
func (s *Session) Ticks() int {
	return s.ticks
}

// Closed 会话是否已关闭
func (s *Session) Closed() bool {
	return s.closed
}

// Running 是否有等待执行的帧回调
func (s *Session) Running() bool {
	return s.frame != 0 && s.scheduler.Pending(s.frame)
}

// CanClaim 是否显示领取折扣入口（仅 won 阶段）
func (s *Session) CanClaim() bool {
	return s.phase == PhaseWon && !s.closed
}

// PlayerY 玩家高度（百分比）
func (s *Session) PlayerY() float64 {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.player)
	return pos.Y
}

// Velocity 玩家当前速度
func (s *Session) Velocity() float64 {
	vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, s.player)
	return vel.VY
}

// Tilt 玩家倾斜角度（度），与速度成正比
func (s *Session) Tilt() float64 {
	return s.Velocity() * 3
}

// Items 返回当前道具列表，按生成顺序
func (s *Session) Items() []Item {
	ids := ecs.GetEntitiesWith2[*components.ItemComponent, *components.PositionComponent](s.entityManager)
	items := make([]Item, 0, len(ids))
	for _, id := range ids {
		item, _ := ecs.GetComponent[*components.ItemComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		items = append(items, Item{
			ID:        id,
			X:         pos.X,
			Y:         pos.Y,
			Kind:      item.Kind,
			Collected: item.Collected,
		})
	}
	return items
}

// Config 返回会话使用的调参
func (s *Session) Config() *config.MiniGameConfig {
	return s.config
}
