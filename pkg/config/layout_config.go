package config

// 布局配置常量
// 本文件定义了报告画面的逻辑分辨率、各区域位置等布局参数
// 所有坐标使用逻辑屏幕坐标，Ebitengine 负责缩放到实际窗口

const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 1280

	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 720

	// SlideCount 幻灯片总数（封面、摘要、作品集、UX/UI、视觉、多媒体、结论）
	SlideCount = 7

	// HeaderHeight 顶部导航栏高度
	HeaderHeight = 72.0

	// FooterHeight 底部音频控制条高度
	FooterHeight = 72.0

	// ContentMarginX 幻灯片内容左右边距
	ContentMarginX = 120.0

	// DotsX 右侧圆点导航的中心 X 坐标
	DotsX = GameWindowWidth - 40.0

	// DotSpacing 圆点间距
	DotSpacing = 26.0

	// DotRadius 圆点半径（点击区域会在此基础上扩展）
	DotRadius = 5.0

	// ProgressBarHeight 底部进度条高度
	ProgressBarHeight = 3.0
)

// Mini-game Layout (小游戏布局)
// 小游戏逻辑坐标为百分比（0~100），渲染时映射到游戏区域像素
const (
	// GameTopBarHeight 小游戏顶部栏高度（分数、关闭按钮）
	GameTopBarHeight = 72.0

	// GameControlsHeight 小游戏底部操作区高度（跳跃按钮 / 键盘提示）
	GameControlsHeight = 96.0

	// GamePlayerSize 玩家头像直径（像素）
	GamePlayerSize = 56.0

	// GameItemSize 道具直径（像素）
	GameItemSize = 40.0
)

// GetGamePlayArea 返回小游戏可玩区域的屏幕矩形
// 返回值：x, y, width, height
func GetGamePlayArea() (float64, float64, float64, float64) {
	x := 0.0
	y := 0.0
	w := float64(GameWindowWidth)
	h := float64(GameWindowHeight) - GameControlsHeight
	return x, y, w, h
}

// PercentToScreen 将小游戏百分比坐标映射到屏幕坐标
func PercentToScreen(px, py float64) (float64, float64) {
	x, y, w, h := GetGamePlayArea()
	return x + px/100.0*w, y + py/100.0*h
}

// CalculateDotPosition 计算第 index 个导航圆点的中心坐标
// 圆点整体在屏幕垂直方向居中
func CalculateDotPosition(index, count int) (x, y float64) {
	if count <= 0 {
		return 0, 0
	}
	totalHeight := float64(count-1) * DotSpacing
	startY := float64(GameWindowHeight)/2 - totalHeight/2
	return DotsX, startY + float64(index)*DotSpacing
}
