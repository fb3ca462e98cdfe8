// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerPress 本帧刚发生的一次按下（鼠标左键或触摸）
type PointerPress struct {
	X, Y int
	// Touch 是否来自触摸
	Touch bool
	// TouchID 触摸 ID，鼠标按下时为 -1
	TouchID ebiten.TouchID
}

// 最后一次看到的触摸位置，触摸抬起后 ebiten.TouchPosition 返回 (0, 0)
var lastTouchX, lastTouchY int

// JustPressedPointer 返回本帧的新按下，触摸优先于鼠标
func JustPressedPointer() (PointerPress, bool) {
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		id := ids[0]
		x, y := ebiten.TouchPosition(id)
		lastTouchX, lastTouchY = x, y
		return PointerPress{X: x, Y: y, Touch: true, TouchID: id}, true
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return PointerPress{}, false
	}
	x, y := ebiten.CursorPosition()
	return PointerPress{X: x, Y: y, TouchID: -1}, true
}

// UpdateLastTouchPosition 每帧调用一次，记录仍按住的触摸位置
func UpdateLastTouchPosition() {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(ids[0])
	}
}

// TouchPosition 返回触摸位置
// released 为 true 时触摸在本帧抬起，坐标取抬起前的最后位置
func TouchPosition(id ebiten.TouchID) (x, y int, released bool) {
	if !inpututil.IsTouchJustReleased(id) {
		x, y = ebiten.TouchPosition(id)
		return x, y, false
	}
	x, y = inpututil.TouchPositionInPreviousTick(id)
	if x == 0 && y == 0 {
		x, y = lastTouchX, lastTouchY
	}
	return x, y, true
}

// IsTouchDevice 移动端构建一律视为触摸设备，桌面端看当前是否有活动触摸
func IsTouchDevice() bool {
	return IsMobile() || len(ebiten.AppendTouchIDs(nil)) > 0
}
