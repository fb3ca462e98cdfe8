package minigame

// Phase 小游戏阶段
type Phase int

const (
	// PhaseStart 开始面板，等待第一次激活
	PhaseStart Phase = iota
	// PhasePlaying 游戏进行中，每帧推进模拟
	PhasePlaying
	// PhaseGameOver 玩家落地，分数冻结，可以重试
	PhaseGameOver
	// PhaseWon 达到获胜分数，本次会话终止（只能关闭）
	PhaseWon
)

// String 返回阶段名称（用于日志）
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}
