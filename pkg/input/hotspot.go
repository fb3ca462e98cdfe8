package input

import "image"

// Hotspot 屏幕上一个可点击区域及其事件
// 由视图在绘制布局时生成，场景用它做指针命中测试
type Hotspot struct {
	Rect  image.Rectangle
	Event Event
}

// HitTest 返回包含点 (x, y) 的热区事件
// 后登记的热区在上层，优先命中
func HitTest(hotspots []Hotspot, x, y int) (Event, bool) {
	p := image.Pt(x, y)
	for i := len(hotspots) - 1; i >= 0; i-- {
		if p.In(hotspots[i].Rect) {
			return hotspots[i].Event, true
		}
	}
	return Event{}, false
}
