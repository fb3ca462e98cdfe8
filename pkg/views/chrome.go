package views

import (
	"image/color"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/decker502/reportdeck/pkg/config"
	"github.com/decker502/reportdeck/pkg/input"
	"github.com/decker502/reportdeck/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 顶栏与底栏的固定元素
const (
	chromeEdge   = 40.0 // 左右边距
	pillHeight   = 36.0
	chevronSize  = 44.0
	dotHitRadius = 12.0
)

// drawChrome 绘制幻灯片之上的固定界面：顶栏、圆点导航、翻页箭头、进度条与音频控制条
// progress 为已平滑的进度条比例
func drawChrome(dst *ebiten.Image, f *Frame, progress float64) {
	drawHeader(dst, f)
	if !f.State.GameActive {
		if f.Touch {
			drawChevrons(dst, f)
		} else {
			drawDots(dst, f)
		}
		if f.Page == 0 {
			drawScrollHint(dst, f)
		}
		drawProgress(dst, progress)
	}
	drawAudioBar(dst, f)
}

// initials 取姓名每个词的首字母（最多两个）
func initials(name string) string {
	var runes []rune
	for _, w := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(w)
		runes = append(runes, r)
		if len(runes) == 2 {
			break
		}
	}
	return string(runes)
}

func drawHeader(dst *ebiten.Image, f *Frame) {
	cy := config.HeaderHeight / 2

	// 标志
	lx := chromeEdge + 20
	fillCircle(dst, lx, cy, 20, withAlpha(colorAccent, 0.1))
	strokeCircle(dst, lx, cy, 20, 1, withAlpha(colorAccent, 0.5))
	logo := f.Upper(initials(f.Content.Hero.Name))
	drawText(dst, logo, f.Fonts.Label, lx, cy-lineHeight(f.Fonts.Label)/2, text.AlignCenter, colorAccent)

	// 语言切换
	right := float64(config.GameWindowWidth) - chromeEdge
	lang := string(f.Language)
	w := measure(lang, f.Fonts.Label) + 52
	x := right - w
	drawPill(dst, x, cy-pillHeight/2, w, colorWhite)
	iconGlobe(dst, x+20, cy, 14, colorGray300)
	drawText(dst, lang, f.Fonts.Label, x+34, cy-lineHeight(f.Fonts.Label)/2, text.AlignStart, colorWhite)
	f.Add(rectOf(x, cy-pillHeight/2, w, pillHeight), input.Of(input.KindToggleLanguage))

	if f.State.GameActive {
		return
	}

	// 小游戏入口
	label := "GAME"
	gw := measure(label, f.Fonts.Label) + 56
	gx := x - 12 - gw
	drawPill(dst, gx, cy-pillHeight/2, gw, colorGold)
	iconGamepad(dst, gx+22, cy, 16, colorGold)
	drawText(dst, label, f.Fonts.Label, gx+38, cy-lineHeight(f.Fonts.Label)/2, text.AlignStart, colorGold)
	f.Add(rectOf(gx, cy-pillHeight/2, gw, pillHeight), input.Of(input.KindOpenGame))
}

// drawPill 半透明胶囊底板
func drawPill(dst *ebiten.Image, x, y, w float64, tint color.NRGBA) {
	fillRoundedRect(dst, x, y, w, pillHeight, pillHeight/2, withAlpha(tint, 0.08))
	strokeRoundedRect(dst, x, y, w, pillHeight, pillHeight/2, 1, withAlpha(tint, 0.2))
}

// drawDots 右侧圆点导航（桌面布局）
func drawDots(dst *ebiten.Image, f *Frame) {
	for i := 0; i < f.Count; i++ {
		x, y := config.CalculateDotPosition(i, f.Count)
		if i == f.Page {
			fillRoundedRect(dst, x-config.DotRadius, y-config.DotRadius*2.4, config.DotRadius*2, config.DotRadius*4.8, config.DotRadius, colorAccent)
		} else {
			fillCircle(dst, x, y, config.DotRadius*0.8, colorGray600)
		}
		f.Add(rectOf(x-dotHitRadius, y-dotHitRadius, dotHitRadius*2, dotHitRadius*2), input.JumpTo(i))
	}
}

// drawChevrons 右下角上下翻页按钮（触屏布局），到达边界时置灰
func drawChevrons(dst *ebiten.Image, f *Frame) {
	x := float64(config.GameWindowWidth) - 24 - chevronSize
	bottom := float64(config.GameWindowHeight) - 96

	buttons := []struct {
		dir     int
		y       float64
		enabled bool
	}{
		{-1, bottom - chevronSize*2 - 12, f.Page > 0},
		{+1, bottom - chevronSize, f.Page < f.Count-1},
	}
	for _, b := range buttons {
		alpha := 1.0
		if !b.enabled {
			alpha = 0.3
		}
		r := chevronSize / 2
		fillCircle(dst, x+r, b.y+r, r, withAlpha(colorWhite, 0.1*alpha))
		strokeCircle(dst, x+r, b.y+r, r, 1, withAlpha(colorWhite, 0.2*alpha))
		iconChevron(dst, x+r, b.y+r, 16, b.dir, withAlpha(colorWhite, alpha))
		if b.enabled {
			f.Add(rectOf(x, b.y, chevronSize, chevronSize), input.Navigate(b.dir))
		}
	}
}

// drawScrollHint 封面底部的上下浮动提示
func drawScrollHint(dst *ebiten.Image, f *Frame) {
	cx := float64(config.GameWindowWidth) / 2
	y := float64(config.GameWindowHeight) - config.FooterHeight - 56 + math.Sin(f.Seconds*math.Pi)*4
	drawText(dst, f.Upper(f.Content.UI.Scroll), f.Fonts.Mono, cx, y, text.AlignCenter, colorGray500)
	iconArrow(dst, cx, y+lineHeight(f.Fonts.Mono)+10, 14, false, colorGray500)
}

func drawProgress(dst *ebiten.Image, progress float64) {
	y := float64(config.GameWindowHeight) - config.ProgressBarHeight
	fillRect(dst, 0, y, float64(config.GameWindowWidth), config.ProgressBarHeight, withAlpha(colorWhite, 0.05))
	fillRect(dst, 0, y, float64(config.GameWindowWidth)*utils.Clamp(progress, 0, 1), config.ProgressBarHeight, colorAccent)
}

// drawAudioBar 底部音频控制条：左侧状态，右侧 播放/暂停 + 静音 胶囊
func drawAudioBar(dst *ebiten.Image, f *Frame) {
	if !f.Audio.Available {
		return
	}
	cy := float64(config.GameWindowHeight) - config.FooterHeight/2

	statusColor := colorGray500
	if f.Audio.Playing && !f.Audio.Muted {
		statusColor = colorAccent
	}
	iconActivity(dst, chromeEdge+8, cy, 16, statusColor)
	drawText(dst, "AUDIO EXPERIENCE", f.Fonts.Mono, chromeEdge+26, cy-lineHeight(f.Fonts.Mono)/2, text.AlignStart, colorGray500)

	label := f.Content.UI.Play
	icon := iconPlay
	if f.Audio.Playing {
		label, icon = f.Content.UI.Pause, iconPause
	}
	label = f.Upper(label)

	const muteW = 44.0
	playW := measure(label, f.Fonts.Label) + 52
	right := float64(config.GameWindowWidth) - chromeEdge
	x := right - playW - muteW
	y := cy - pillHeight/2

	fillRoundedRect(dst, x, y, playW+muteW, pillHeight, pillHeight/2, withAlpha(colorWhite, 0.05))
	strokeRoundedRect(dst, x, y, playW+muteW, pillHeight, pillHeight/2, 1, withAlpha(colorWhite, 0.1))

	icon(dst, x+22, cy, 12, colorWhite)
	drawText(dst, label, f.Fonts.Label, x+36, cy-lineHeight(f.Fonts.Label)/2, text.AlignStart, colorWhite)
	strokeLine(dst, x+playW, y+8, x+playW, y+pillHeight-8, 1, withAlpha(colorWhite, 0.2))

	speaker := colorWhite
	if f.Audio.Muted {
		speaker = colorRed500
	}
	iconSpeaker(dst, x+playW+muteW/2-2, cy, 16, f.Audio.Muted, speaker)

	f.Add(rectOf(x, y, playW, pillHeight), input.Of(input.KindTogglePlay))
	f.Add(rectOf(x+playW, y, muteW, pillHeight), input.Of(input.KindToggleMute))
}
