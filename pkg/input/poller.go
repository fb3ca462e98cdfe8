package input

import (
	"image"

	"github.com/decker502/reportdeck/pkg/config"
	"github.com/decker502/reportdeck/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Poller 每帧读取 ebiten 输入并翻译为事件
//
// 翻译顺序：按键、滚轮、指针按下、触摸抬起（见 PressRouter）。
// 同一帧可能产生多个事件，由 Shell 逐个分发并自行过滤。
type Poller struct {
	wheel WheelClassifier
	press PressRouter

	keys   []ebiten.Key
	events []Event
}

// NewPoller 根据导航配置创建输入轮询器
func NewPoller(nav config.NavigationConfig) *Poller {
	return &Poller{
		wheel: WheelClassifier{LineHeight: nav.WheelLineHeight, Threshold: nav.WheelThreshold},
		press: PressRouter{Swipe: SwipeTracker{Threshold: nav.SwipeThreshold}},
	}
}

// Poll 读取本帧输入
//
// 参数：
//   - mode: 当前接收输入的层
//   - hotspots: 本帧可点击区域（按绘制顺序，后者在上层）
//   - playArea: 小游戏可点击跳跃的区域
//
// 返回：本帧事件（切片在下一次 Poll 时复用）
func (p *Poller) Poll(mode Mode, hotspots []Hotspot, playArea image.Rectangle) []Event {
	p.events = p.events[:0]

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, key := range p.keys {
		if e, ok := KeyEvent(mode, key); ok {
			p.events = append(p.events, e)
		}
	}

	if mode == ModeDeck {
		_, yoff := ebiten.Wheel()
		if dir := p.wheel.Classify(yoff); dir != 0 {
			p.events = append(p.events, Navigate(dir))
		}
	}

	utils.UpdateLastTouchPosition()
	if press, ok := utils.JustPressedPointer(); ok {
		if e, ok := p.press.Press(mode, press, hotspots, playArea); ok {
			p.events = append(p.events, e)
		}
	}

	if id, ok := p.press.Tracking(); ok {
		_, y, released := utils.TouchPosition(id)
		p.press.Move(float64(y))
		if released {
			if e, ok := p.press.Release(mode); ok {
				p.events = append(p.events, e)
			}
		}
	}

	return p.events
}
