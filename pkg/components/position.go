package components

// PositionComponent 实体位置
// 小游戏中使用百分比坐标（0~100），(0,0) 为游戏区域左上角，Y 轴向下
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 实体速度（每 tick 的位移量，未乘缩放）
type VelocityComponent struct {
	VX float64
	VY float64
}
