package views

import (
	"image"

	"github.com/decker502/reportdeck/pkg/config"
	"github.com/decker502/reportdeck/pkg/game"
	"github.com/decker502/reportdeck/pkg/input"
	"github.com/decker502/reportdeck/pkg/minigame"
)

// AudioStatus 音频控制条需要的状态
type AudioStatus struct {
	Available bool // 音频未被禁用
	Playing   bool
	Muted     bool
}

// Model 一帧绘制所需的只读快照
type Model struct {
	State    game.AppState
	Content  *config.ContentData
	Language game.Language

	Page       int
	Previous   int
	Direction  int
	Count      int
	Transition float64 // 当前切换进度 [0, 1]

	Audio   AudioStatus
	Session *minigame.Session // 小游戏未打开时为 nil
}

// Snapshot 从 Shell 读取当前帧的绘制状态
func Snapshot(s *game.Shell) Model {
	pager := s.Pager()
	m := Model{
		State:      s.State(),
		Content:    s.Content(),
		Language:   s.Language(),
		Page:       pager.Index(),
		Previous:   pager.PreviousIndex(),
		Direction:  pager.Direction(),
		Count:      pager.Count(),
		Transition: pager.TransitionProgress(),
		Session:    s.Session(),
	}
	if ac := s.Audio(); ac != nil {
		m.Audio = AudioStatus{
			Available: true,
			Playing:   ac.IsPlaying(),
			Muted:     ac.IsMuted(),
		}
	}
	return m
}

// Frame 单帧绘制上下文，收集本帧的热区
type Frame struct {
	Model
	Fonts   *Fonts
	Seconds float64 // 动画时钟（秒）
	Touch   bool    // 触屏布局（跳跃按钮、翻页箭头）

	hotspots    []input.Hotspot
	linksActive bool
}

// Add 登记一个热区，后登记的在上层
func (f *Frame) Add(r image.Rectangle, e input.Event) {
	f.hotspots = append(f.hotspots, input.Hotspot{Rect: r, Event: e})
}

// Block 登记一个不产生事件的遮挡区域，阻止下层热区与小游戏区域的点击
func (f *Frame) Block(r image.Rectangle) {
	f.Add(r, input.Event{})
}

// Modal 丢弃已登记的热区（模态层覆盖其下的一切）
func (f *Frame) Modal() {
	f.hotspots = f.hotspots[:0]
}

// Link 登记作品集链接热区；幻灯片切换动画进行中不登记
func (f *Frame) Link(r image.Rectangle, index int) {
	if f.linksActive {
		f.Add(r, input.OpenLink(index))
	}
}

// Hotspots 本帧登记的热区
func (f *Frame) Hotspots() []input.Hotspot {
	return f.hotspots
}

// Upper 按当前语言转换为大写
func (f *Frame) Upper(s string) string {
	return f.Language.Upper(s)
}
