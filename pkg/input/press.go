package input

import (
	"image"

	"github.com/decker502/reportdeck/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// PressRouter 把指针按下与触摸抬起翻译为事件
//
// 不读取 ebiten 输入，坐标由 Poller 传入。
// 幻灯片模式下的触摸按下总是开始跟踪滑动：抬起时移动超过阈值为翻页，
// 否则视为轻触，才触发按下位置的热区（作品集链接、圆点等）。
// 鼠标按下、开场弹窗与小游戏中的触摸仍在按下时立即命中热区。
type PressRouter struct {
	Swipe SwipeTracker

	touch  ebiten.TouchID
	tap    Event
	hasTap bool
}

// Press 处理一次按下，返回需要立即分发的事件
func (r *PressRouter) Press(mode Mode, press utils.PointerPress, hotspots []Hotspot, playArea image.Rectangle) (Event, bool) {
	hit, onHotspot := HitTest(hotspots, press.X, press.Y)

	if mode == ModeDeck && press.Touch {
		r.touch = press.TouchID
		r.tap, r.hasTap = hit, onHotspot && hit.Kind != KindNone
		r.Swipe.Begin(float64(press.Y))
		return Event{}, false
	}

	if onHotspot {
		// 遮挡区域吞掉点击，也不落到下层的小游戏区域
		return hit, hit.Kind != KindNone
	}
	if mode == ModeGame && image.Pt(press.X, press.Y).In(playArea) {
		return Activate(), true
	}
	return Event{}, false
}

// Tracking 返回正在跟踪的触摸
func (r *PressRouter) Tracking() (ebiten.TouchID, bool) {
	return r.touch, r.Swipe.Active()
}

// Move 更新跟踪中触摸的竖直位置
func (r *PressRouter) Move(y float64) {
	r.Swipe.Move(y)
}

// Release 触摸抬起：滑动超过阈值为翻页，否则为按下位置热区的轻触
// 手势进行中离开了幻灯片模式（例如打开了小游戏）时不产生事件
func (r *PressRouter) Release(mode Mode) (Event, bool) {
	dir := r.Swipe.End()
	tap, hasTap := r.tap, r.hasTap
	r.tap, r.hasTap = Event{}, false

	if mode != ModeDeck {
		return Event{}, false
	}
	if dir != 0 {
		return Navigate(dir), true
	}
	return tap, hasTap
}
