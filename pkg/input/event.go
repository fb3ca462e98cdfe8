// Package input 把键盘、滚轮、触摸滑动和指针点击统一翻译成 Event
//
// 输入适配器只产生事件，不修改任何状态；状态流转由 game.Shell.Dispatch 负责。
package input

import "fmt"

// Kind 事件类型
type Kind int

const (
	KindNone Kind = iota
	// KindActivate 小游戏的跳跃 / 开始 / 重试
	KindActivate
	// KindNavigate 翻页，Value 为 -1 或 +1
	KindNavigate
	// KindJumpTo 直接跳到第 Value 页（侧边圆点）
	KindJumpTo
	// KindStartExperience 开场弹窗按钮
	KindStartExperience
	KindToggleLanguage
	KindOpenGame
	KindCloseGame
	KindTogglePlay
	KindToggleMute
	// KindClaim 胜利后领取优惠
	KindClaim
	// KindOpenLink 打开作品集链接，Value 为 PortfolioContent.Links() 的下标
	KindOpenLink
)

var kindNames = map[Kind]string{
	KindNone:            "None",
	KindActivate:        "Activate",
	KindNavigate:        "Navigate",
	KindJumpTo:          "JumpTo",
	KindStartExperience: "StartExperience",
	KindToggleLanguage:  "ToggleLanguage",
	KindOpenGame:        "OpenGame",
	KindCloseGame:       "CloseGame",
	KindTogglePlay:      "TogglePlay",
	KindToggleMute:      "ToggleMute",
	KindClaim:           "Claim",
	KindOpenLink:        "OpenLink",
}

// String 返回事件类型名称
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event 内部输入事件
type Event struct {
	Kind  Kind
	Value int
}

// String 用于日志
func (e Event) String() string {
	switch e.Kind {
	case KindNavigate:
		return fmt.Sprintf("Navigate(%+d)", e.Value)
	case KindJumpTo:
		return fmt.Sprintf("JumpTo(%d)", e.Value)
	case KindOpenLink:
		return fmt.Sprintf("OpenLink(%d)", e.Value)
	default:
		return e.Kind.String()
	}
}

// Activate 跳跃 / 开始 / 重试
func Activate() Event { return Event{Kind: KindActivate} }

// Navigate 翻页；dir 只取符号
func Navigate(dir int) Event {
	switch {
	case dir > 0:
		dir = 1
	case dir < 0:
		dir = -1
	}
	return Event{Kind: KindNavigate, Value: dir}
}

// JumpTo 直接跳到第 k 页
func JumpTo(k int) Event { return Event{Kind: KindJumpTo, Value: k} }

// OpenLink 打开第 i 个作品集链接
func OpenLink(i int) Event { return Event{Kind: KindOpenLink, Value: i} }

// Of 创建不带参数的事件
func Of(kind Kind) Event { return Event{Kind: kind} }

// Mode 当前哪一层在接收输入
type Mode int

const (
	// ModeIntro 开场弹窗显示中
	ModeIntro Mode = iota
	// ModeDeck 幻灯片
	ModeDeck
	// ModeGame 小游戏覆盖层
	ModeGame
)
