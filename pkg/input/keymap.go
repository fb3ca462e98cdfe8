package input

import "github.com/hajimehoshi/ebiten/v2"

// deckKeys 幻灯片模式下的按键
var deckKeys = map[ebiten.Key]Event{
	ebiten.KeyArrowDown:  Navigate(1),
	ebiten.KeyArrowRight: Navigate(1),
	ebiten.KeyPageDown:   Navigate(1),
	ebiten.KeyArrowUp:    Navigate(-1),
	ebiten.KeyArrowLeft:  Navigate(-1),
	ebiten.KeyPageUp:     Navigate(-1),
}

// gameKeys 小游戏模式下的按键
var gameKeys = map[ebiten.Key]Event{
	ebiten.KeySpace:   Activate(),
	ebiten.KeyArrowUp: Activate(),
	ebiten.KeyEscape:  Of(KindCloseGame),
}

// introKeys 开场弹窗模式下的按键
var introKeys = map[ebiten.Key]Event{
	ebiten.KeyEnter: Of(KindStartExperience),
}

// KeyEvent 返回按键在当前模式下对应的事件
func KeyEvent(mode Mode, key ebiten.Key) (Event, bool) {
	var table map[ebiten.Key]Event
	switch mode {
	case ModeIntro:
		table = introKeys
	case ModeGame:
		table = gameKeys
	default:
		table = deckKeys
	}
	e, ok := table[key]
	return e, ok
}
