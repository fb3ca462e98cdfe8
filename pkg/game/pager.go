package game

import (
	"log"
	"time"

	"github.com/decker502/reportdeck/pkg/schedule"
)

// Pager 幻灯片分页器
//
// 保存当前页索引与最近一次切换方向；切换后进入 busy 状态，
// 防抖时长结束前的所有切换请求都被忽略。
type Pager struct {
	scheduler  *schedule.Scheduler
	count      int
	transition time.Duration

	index     int
	previous  int
	direction int // -1、0、+1，仅用于过渡动画
	changedAt time.Duration

	busy      bool
	busyTimer schedule.Handle

	// blocked 返回 true 时表示有覆盖层（开场弹窗 / 小游戏）阻止翻页
	blocked func() bool
}

// NewPager 创建分页器
//
// 参数：
//   - scheduler: 用于防抖计时
//   - count: 幻灯片数量
//   - transition: 防抖时长
func NewPager(scheduler *schedule.Scheduler, count int, transition time.Duration) *Pager {
	return &Pager{
		scheduler:  scheduler,
		count:      count,
		transition: transition,
	}
}

// SetBlocker 设置覆盖层检测函数
func (p *Pager) SetBlocker(blocked func() bool) {
	p.blocked = blocked
}

// Advance 向前 (+1) 或向后 (-1) 翻一页
// 返回：是否真正发生了切换
func (p *Pager) Advance(direction int) bool {
	if direction != 1 && direction != -1 {
		return false
	}
	return p.moveTo(p.index+direction, direction)
}

// JumpTo 直接跳到第 k 页，方向为 sign(k - index)
// 返回：是否真正发生了切换
func (p *Pager) JumpTo(k int) bool {
	if k == p.index {
		return false
	}
	direction := 1
	if k < p.index {
		direction = -1
	}
	return p.moveTo(k, direction)
}

func (p *Pager) moveTo(target, direction int) bool {
	if p.busy {
		return false
	}
	if p.blocked != nil && p.blocked() {
		return false
	}
	if target < 0 || target >= p.count {
		return false
	}

	p.previous = p.index
	p.index = target
	p.direction = direction
	p.changedAt = p.scheduler.Now()

	p.busy = true
	p.busyTimer = p.scheduler.After(p.transition, func() {
		p.busy = false
		p.busyTimer = 0
	})

	log.Printf("[Pager] Slide %d -> %d (direction %+d)", p.previous, p.index, direction)
	return true
}

// Index 当前页索引
func (p *Pager) Index() int {
	return p.index
}

// PreviousIndex 上一次切换前的页索引
func (p *Pager) PreviousIndex() int {
	return p.previous
}

// Direction 最近一次切换方向
func (p *Pager) Direction() int {
	return p.direction
}

// Busy 是否处于防抖窗口内
func (p *Pager) Busy() bool {
	return p.busy
}

// Count 幻灯片数量
func (p *Pager) Count() int {
	return p.count
}

// Progress 进度 (index+1)/count
func (p *Pager) Progress() float64 {
	if p.count == 0 {
		return 0
	}
	return float64(p.index+1) / float64(p.count)
}

// TransitionProgress 当前切换动画的进度 [0, 1]
func (p *Pager) TransitionProgress() float64 {
	if p.direction == 0 || p.transition <= 0 {
		return 1
	}
	elapsed := p.scheduler.Now() - p.changedAt
	if elapsed >= p.transition {
		return 1
	}
	return float64(elapsed) / float64(p.transition)
}
