package game

// AppState 顶层界面状态，由 Shell 独占
type AppState struct {
	// Language 当前语言
	Language Language
	// ShowIntro 开场弹窗是否显示
	ShowIntro bool
	// AudioEnabled 用户是否已通过开场弹窗启用音频
	AudioEnabled bool
	// GameActive 小游戏覆盖层是否打开
	GameActive bool
}
