package views

import (
	"fmt"
	"math"

	"github.com/decker502/reportdeck/pkg/components"
	"github.com/decker502/reportdeck/pkg/config"
	"github.com/decker502/reportdeck/pkg/input"
	"github.com/decker502/reportdeck/pkg/minigame"
	"github.com/decker502/reportdeck/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const gameGridSize = 50.0

// itemIcons 按道具种类索引
var itemIcons = map[components.ItemKind]iconFunc{
	components.ItemKindPen:     iconPen,
	components.ItemKindPalette: iconPalette,
	components.ItemKindLayers:  iconLayers,
}

// gameOverlay 小游戏覆盖层
// 只缓存玩家头像贴图，其余内容每帧按会话快照绘制
type gameOverlay struct {
	player *ebiten.Image
	logo   string
}

// playerImage 返回玩家头像贴图，logo 变化时重建
func (g *gameOverlay) playerImage(f *Frame) *ebiten.Image {
	logo := f.Upper(initials(f.Content.Hero.Name))
	if g.player != nil && g.logo == logo {
		return g.player
	}
	if g.player != nil {
		g.player.Deallocate()
	}

	const size = config.GamePlayerSize
	img := ebiten.NewImage(int(size), int(size))
	fillCircle(img, size/2, size/2, size/2-2, colorGray900)
	strokeCircle(img, size/2, size/2, size/2-2, 3, colorAccent)
	drawText(img, logo, f.Fonts.Label, size/2, size/2-lineHeight(f.Fonts.Label)/2, text.AlignCenter, colorWhite)

	g.player, g.logo = img, logo
	return img
}

// Draw 绘制覆盖层并登记其热区
func (g *gameOverlay) Draw(dst *ebiten.Image, f *Frame) {
	s := f.Session
	if s == nil {
		return
	}
	f.Modal()

	w, h := float64(config.GameWindowWidth), float64(config.GameWindowHeight)
	fillRect(dst, 0, 0, w, h, withAlpha(colorBlack, 0.9))

	px, py, pw, ph := config.GetGamePlayArea()
	drawPlayArea(dst, px, py, pw, ph)

	for _, item := range s.Items() {
		if item.Collected {
			continue
		}
		drawItem(dst, item)
	}
	g.drawPlayer(dst, f, s)
	drawFloor(dst, s.Config(), px, py, pw, ph)
	drawGameControls(dst, f, py+ph)

	drawPhaseLayers(dst, f, s.Phase(), s.Score())
}

// drawPhaseLayers 阶段面板与顶栏
// 顶栏（分数与关闭按钮）压在开始、结束面板之上；获胜面板覆盖整个画面，包括顶栏
func drawPhaseLayers(dst *ebiten.Image, f *Frame, phase minigame.Phase, score int) {
	if phase == minigame.PhaseWon {
		drawGameTopBar(dst, f, score)
		drawWonPanel(dst, f)
		return
	}

	switch phase {
	case minigame.PhaseStart:
		drawStartPanel(dst, f)
	case minigame.PhaseGameOver:
		drawGameOverPanel(dst, f, score)
	}
	drawGameTopBar(dst, f, score)
}

func drawPlayArea(dst *ebiten.Image, x, y, w, h float64) {
	fillVerticalGradient(dst, x, y, w, h, colorGray900, colorBlack, 24)
	grid := withAlpha(colorWhite, 0.03)
	for gx := x; gx <= x+w; gx += gameGridSize {
		strokeLine(dst, gx, y, gx, y+h, 1, grid)
	}
	for gy := y; gy <= y+h; gy += gameGridSize {
		strokeLine(dst, x, gy, x+w, gy, 1, grid)
	}
}

// drawItem 道具坐标为左上角百分比
func drawItem(dst *ebiten.Image, item minigame.Item) {
	const size = config.GameItemSize
	x, y := config.PercentToScreen(item.X, item.Y)
	cx, cy := x+size/2, y+size/2

	fillCircle(dst, cx, cy, size/2, withAlpha(colorWhite, 0.1))
	strokeCircle(dst, cx, cy, size/2, 1, withAlpha(colorAccent, 0.4))
	if icon, ok := itemIcons[item.Kind]; ok {
		icon(dst, cx, cy, size*0.5, colorAccent)
	}
}

// drawPlayer 玩家头像按速度倾斜
func (g *gameOverlay) drawPlayer(dst *ebiten.Image, f *Frame, s *minigame.Session) {
	const size = config.GamePlayerSize
	x, y := config.PercentToScreen(s.Config().Player.Left, s.PlayerY())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-size/2, -size/2)
	op.GeoM.Rotate(s.Tilt() * math.Pi / 180)
	op.GeoM.Translate(x+size/2, y+size/2)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(g.playerImage(f), op)
}

// drawFloor 地面从落地判定高度开始
func drawFloor(dst *ebiten.Image, cfg *config.MiniGameConfig, x, y, w, h float64) {
	top := y + h*cfg.Player.FloorY/100
	fillVerticalGradient(dst, x, top, w, y+h-top, withAlpha(colorAccent, 0.2), withAlpha(colorAccent, 0), 8)
	strokeLine(dst, x, top, x+w, top, 1, withAlpha(colorAccent, 0.5))
}

// drawGameControls 底部操作区：触屏显示跳跃按钮，桌面显示按键提示
func drawGameControls(dst *ebiten.Image, f *Frame, top float64) {
	cx := float64(config.GameWindowWidth) / 2
	cy := top + config.GameControlsHeight/2

	if !f.Touch {
		drawText(dst, "[ SPACE TO JUMP ]", f.Fonts.Mono, cx, cy-lineHeight(f.Fonts.Mono)/2, text.AlignCenter, colorGray500)
		return
	}

	const bw, bh = 240.0, 56.0
	fillRoundedRect(dst, cx-bw/2, cy-bh/2, bw, bh, bh/2, colorAccent)
	drawText(dst, "JUMP / FLY", f.Fonts.Label, cx, cy-lineHeight(f.Fonts.Label)/2, text.AlignCenter, colorBlack)
	f.Add(rectOf(cx-bw/2, cy-bh/2, bw, bh), input.Activate())
}

// drawGameTopBar 分数胶囊与关闭按钮，始终在最上层
func drawGameTopBar(dst *ebiten.Image, f *Frame, score int) {
	cy := config.GameTopBarHeight / 2

	label := fmt.Sprintf("%s: %d", f.Content.Game.Score, score)
	sw := measure(label, f.Fonts.Label) + 40
	fillRoundedRect(dst, chromeEdge, cy-pillHeight/2, sw, pillHeight, pillHeight/2, withAlpha(colorWhite, 0.1))
	drawText(dst, label, f.Fonts.Label, chromeEdge+20, cy-lineHeight(f.Fonts.Label)/2, text.AlignStart, colorAccent)

	const size = 40.0
	x := float64(config.GameWindowWidth) - chromeEdge - size
	fillCircle(dst, x+size/2, cy, size/2, withAlpha(colorWhite, 0.1))
	iconClose(dst, x+size/2, cy, 14, colorWhite)
	f.Add(rectOf(x, cy-size/2, size, size), input.Of(input.KindCloseGame))
}

// panelCenter 面板在游戏区域中的中心
func panelCenter() (float64, float64) {
	x, y, w, h := config.GetGamePlayArea()
	return x + w/2, y + h/2
}

func drawStartPanel(dst *ebiten.Image, f *Frame) {
	g := f.Content.Game
	cx, cy := panelCenter()
	y := cy - 130

	iconGamepad(dst, cx, y+28, 56, colorAccent)
	y += 76
	drawText(dst, g.StartTitle, f.Fonts.Title, cx, y, text.AlignCenter, colorWhite)
	y += lineHeight(f.Fonts.Title)
	y += drawParagraph(dst, g.StartDesc, f.Fonts.Body, cx-240, y, 480, text.AlignCenter, colorGray300) + 12

	instruction := g.DesktopInstruction
	if f.Touch {
		instruction = g.MobileInstruction
	}
	drawText(dst, instruction, f.Fonts.Small, cx, y, text.AlignCenter, colorGray500)
	y += lineHeight(f.Fonts.Small) + 20

	k := utils.Pulse(f.Seconds, 1.5)
	drawText(dst, "TAP TO START", f.Fonts.Label, cx, y, text.AlignCenter, withAlpha(colorAccent, 0.4+0.6*k))
}

func drawGameOverPanel(dst *ebiten.Image, f *Frame, score int) {
	g := f.Content.Game
	f.Block(rectOf(0, 0, config.GameWindowWidth, config.GameWindowHeight))

	cx, cy := panelCenter()
	const w, h = 400.0, 260.0
	x, y := cx-w/2, cy-h/2
	fillRoundedRect(dst, x, y, w, h, 24, withAlpha(colorRed900, 0.4))
	strokeRoundedRect(dst, x, y, w, h, 24, 1, withAlpha(colorRed500, 0.3))

	ty := y + 32
	drawText(dst, g.GameOver, f.Fonts.Title, cx, ty, text.AlignCenter, colorWhite)
	ty += lineHeight(f.Fonts.Title)
	drawText(dst, fmt.Sprintf("%s: %d", g.Score, score), f.Fonts.Body, cx, ty, text.AlignCenter, colorGray300)
	ty += lineHeight(f.Fonts.Body) + 24

	label := g.TryAgain
	bw := measure(label, f.Fonts.Label) + 72
	const bh = 48.0
	bx := cx - bw/2
	fillRoundedRect(dst, bx, ty, bw, bh, bh/2, colorWhite)
	iconRetry(dst, bx+28, ty+bh/2, 14, colorBlack)
	drawText(dst, label, f.Fonts.Label, bx+44, ty+(bh-lineHeight(f.Fonts.Label))/2, text.AlignStart, colorBlack)
	f.Add(rectOf(bx, ty, bw, bh), input.Activate())
}

func drawWonPanel(dst *ebiten.Image, f *Frame) {
	g := f.Content.Game
	f.Block(rectOf(0, 0, config.GameWindowWidth, config.GameWindowHeight))

	cx, cy := panelCenter()
	const w = 460.0
	descH := paragraphHeight(g.WinDesc, f.Fonts.Body, w-64)
	titleH := paragraphHeight(g.WinTitle, f.Fonts.Heading, w-64)
	h := 96 + titleH + 12 + descH + 28 + 52 + 16 + lineHeight(f.Fonts.Small) + 28
	x, y := cx-w/2, cy-h/2

	fillRoundedRect(dst, x, y, w, h, 28, colorGray900)
	strokeRoundedRect(dst, x, y, w, h, 28, 1, withAlpha(colorAccent, 0.3))

	ty := y + 28
	fillCircle(dst, cx, ty+24, 28, withAlpha(colorGold, 0.15))
	iconGift(dst, cx, ty+24, 28, colorGold)
	ty += 68
	ty += drawParagraph(dst, g.WinTitle, f.Fonts.Heading, x+32, ty, w-64, text.AlignCenter, colorWhite) + 12
	ty += drawParagraph(dst, g.WinDesc, f.Fonts.Body, x+32, ty, w-64, text.AlignCenter, colorGray400) + 28

	const bh = 52.0
	bx, bw := x+32, w-64
	fillRoundedRect(dst, bx, ty, bw, bh, bh/2, colorWhatsApp)
	label := g.ClaimBtn
	lw := measure(label, f.Fonts.Label)
	iconMessage(dst, cx-lw/2-14, ty+bh/2, 16, colorWhite)
	drawText(dst, label, f.Fonts.Label, cx+10, ty+(bh-lineHeight(f.Fonts.Label))/2, text.AlignCenter, colorWhite)
	f.Add(rectOf(bx, ty, bw, bh), input.Of(input.KindClaim))
	ty += bh + 16

	closeLabel := "Close"
	cw := measure(closeLabel, f.Fonts.Small)
	drawText(dst, closeLabel, f.Fonts.Small, cx, ty, text.AlignCenter, colorGray500)
	f.Add(rectOf(cx-cw/2-12, ty-6, cw+24, lineHeight(f.Fonts.Small)+12), input.Of(input.KindCloseGame))
}
