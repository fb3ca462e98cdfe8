// Package schedule 提供确定性的帧回调与定时器调度
//
// Scheduler 不持有真实时钟：由调用方（ebiten 的 Update）每个 tick 调用 Advance 推进时间。
// 测试中可以直接 Advance 任意时长，从而在没有显示器的情况下确定性地驱动游戏循环与防抖。
//
// 非并发安全：所有方法都应在同一个 goroutine（游戏主循环）中调用。
package schedule

import (
	"slices"
	"time"
)

// Handle 已登记回调的取消令牌，0 表示无效句柄
type Handle uint64

// FrameFunc 帧回调，参数为调度器当前时间
type FrameFunc func(now time.Duration)

type entry struct {
	id        Handle
	due       time.Duration
	interval  time.Duration // 0 表示一次性定时器
	timerFn   func()
	frameFn   FrameFunc
	cancelled bool
}

// Scheduler 帧回调与定时器调度器
type Scheduler struct {
	now    time.Duration
	nextID Handle

	frames []*entry // 等待下一次 Advance 的帧回调
	timers []*entry // 按 (due, id) 执行

	live map[Handle]*entry
}

// NewScheduler 创建调度器，时间从 0 开始
func NewScheduler() *Scheduler {
	return &Scheduler{
		nextID: 1,
		live:   make(map[Handle]*entry),
	}
}

// Now 返回调度器当前时间
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// RequestFrame 登记一个在下一次 Advance 时执行的帧回调
//
// 与浏览器的 requestAnimationFrame 语义一致：回调只执行一次，
// 回调内再次 RequestFrame 的回调会在下一次 Advance 中执行，而不是本次。
func (s *Scheduler) RequestFrame(fn FrameFunc) Handle {
	e := &entry{id: s.allocID(), frameFn: fn}
	s.frames = append(s.frames, e)
	s.live[e.id] = e
	return e.id
}

// After 登记一个 d 之后执行一次的定时器
func (s *Scheduler) After(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	e := &entry{id: s.allocID(), due: s.now + d, timerFn: fn}
	s.timers = append(s.timers, e)
	s.live[e.id] = e
	return e.id
}

// Every 登记一个每隔 d 执行一次的定时器，首次在 d 之后执行
// d 必须为正，否则不登记并返回 0
func (s *Scheduler) Every(d time.Duration, fn func()) Handle {
	if d <= 0 {
		return 0
	}
	e := &entry{id: s.allocID(), due: s.now + d, interval: d, timerFn: fn}
	s.timers = append(s.timers, e)
	s.live[e.id] = e
	return e.id
}

// Cancel 取消回调
// 返回 true 表示回调原本处于等待状态并已被取消
func (s *Scheduler) Cancel(h Handle) bool {
	e, ok := s.live[h]
	if !ok {
		return false
	}
	e.cancelled = true
	delete(s.live, h)
	return true
}

// Pending 句柄是否仍在等待执行
func (s *Scheduler) Pending(h Handle) bool {
	_, ok := s.live[h]
	return ok
}

// Len 返回等待中的回调数量
func (s *Scheduler) Len() int {
	return len(s.live)
}

// Advance 推进时间 dt 并执行到期回调
//
// 执行顺序：
//  1. 所有到期定时器，按到期时间先后（同一时间按登记顺序）；周期定时器可能在一次推进中多次触发
//  2. 本次推进开始前已登记的帧回调，按登记顺序
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	s.now += dt

	s.runTimers()

	frames := s.frames
	s.frames = nil
	for _, e := range frames {
		if e.cancelled {
			continue
		}
		delete(s.live, e.id)
		e.frameFn(s.now)
	}
}

func (s *Scheduler) runTimers() {
	for {
		next := s.nextDue()
		if next == nil {
			break
		}
		if next.interval > 0 {
			next.due += next.interval
		} else {
			next.cancelled = true
			delete(s.live, next.id)
		}
		next.timerFn()
	}

	s.timers = slices.DeleteFunc(s.timers, func(e *entry) bool { return e.cancelled })
}

// nextDue 返回最早到期且未取消的定时器
func (s *Scheduler) nextDue() *entry {
	var best *entry
	for _, e := range s.timers {
		if e.cancelled || e.due > s.now {
			continue
		}
		if best == nil || e.due < best.due || (e.due == best.due && e.id < best.id) {
			best = e
		}
	}
	return best
}

func (s *Scheduler) allocID() Handle {
	id := s.nextID
	s.nextID++
	return id
}
