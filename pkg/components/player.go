package components

// PlayerComponent 标记小游戏中的玩家实体（飞行的 Logo）
type PlayerComponent struct {
	// HitFloor 本局是否已落地
	HitFloor bool
}
