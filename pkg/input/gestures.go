package input

import "math"

// WheelClassifier 把滚轮偏移转换为翻页方向
//
// ebiten 以"行"为单位报告滚轮偏移，且向上滚动为正；
// 这里先乘以行高换算成像素量级并取反（向下滚动为正），再与噪声阈值比较。
type WheelClassifier struct {
	LineHeight float64
	Threshold  float64
}

// Classify 返回 +1（下一页）、-1（上一页）或 0（低于阈值）
func (w WheelClassifier) Classify(yoff float64) int {
	delta := -yoff * w.LineHeight
	if math.Abs(delta) <= w.Threshold {
		return 0
	}
	if delta > 0 {
		return 1
	}
	return -1
}

// SwipeTracker 跟踪一次竖直触摸滑动
// 只看起点和终点的竖直距离，中间轨迹不参与判断
type SwipeTracker struct {
	Threshold float64

	active bool
	startY float64
	lastY  float64
}

// Begin 触摸按下
func (s *SwipeTracker) Begin(y float64) {
	s.active = true
	s.startY = y
	s.lastY = y
}

// Move 触摸移动
func (s *SwipeTracker) Move(y float64) {
	if s.active {
		s.lastY = y
	}
}

// End 触摸抬起，返回翻页方向
// 手指向上滑（起点在下）为下一页 (+1)
func (s *SwipeTracker) End() int {
	if !s.active {
		return 0
	}
	s.active = false

	diff := s.startY - s.lastY
	if math.Abs(diff) <= s.Threshold {
		return 0
	}
	if diff > 0 {
		return 1
	}
	return -1
}

// Active 是否正在跟踪
func (s *SwipeTracker) Active() bool {
	return s.active
}
