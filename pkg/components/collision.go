package components

// CollisionComponent 定义实体的碰撞检测边界框
// 边界框以实体位置为左上角，偏移后向右下延伸 Width x Height
type CollisionComponent struct {
	Width   float64 // 碰撞盒宽度
	Height  float64 // 碰撞盒高度
	OffsetX float64 // 碰撞盒相对于实体位置的X偏移量，正值向右偏移
	OffsetY float64 // 碰撞盒相对于实体位置的Y偏移量，正值向下偏移
}

// Bounds 返回碰撞盒在给定位置下的边界
func (c *CollisionComponent) Bounds(pos *PositionComponent) (left, top, right, bottom float64) {
	left = pos.X + c.OffsetX
	top = pos.Y + c.OffsetY
	return left, top, left + c.Width, top + c.Height
}
