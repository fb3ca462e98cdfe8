package views

import (
	"math"

	"github.com/decker502/reportdeck/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// VisualSlide 视觉设计系统：左侧条目列表，右侧漂浮的手机样机
type VisualSlide struct{}

func (VisualSlide) Name() string { return "visual" }

func (VisualSlide) Draw(dst *ebiten.Image, f *Frame) {
	s := f.Content.Visual
	colW := slideWidth * 0.58

	y := 90.0
	y += drawSectionHeader(dst, f, s, slideLeft, y, colW) + 24

	for _, item := range s.Items {
		strokeLine(dst, slideLeft, y+12, slideLeft+48, y+12, 1, colorGray600)
		tx := slideLeft + 72.0
		y += drawParagraph(dst, item.Title, f.Fonts.Heading, tx, y, colW-72, text.AlignStart, colorWhite)
		y += drawParagraph(dst, item.Desc, f.Fonts.Small, tx, y, colW-72, text.AlignStart, colorGray400) + 16
	}

	bob := math.Sin(f.Seconds*2*math.Pi/6) * 10
	drawPhoneMockup(dst, f, slideRight-150, float64(config.GameWindowHeight)/2+bob)
}

// drawPhoneMockup 以 (cx, cy) 为中心绘制主题展示样机
func drawPhoneMockup(dst *ebiten.Image, f *Frame, cx, cy float64) {
	const w, h = 256.0, 480.0
	x, y := cx-w/2, cy-h/2

	fillRadialGlow(dst, x+w+40, y+40, 90, colorAccent, 0.2)
	fillRadialGlow(dst, x-40, y+h-40, 90, colorGold, 0.2)

	fillRoundedRect(dst, x, y, w, h, 32, colorBlack)
	strokeRoundedRect(dst, x, y, w, h, 32, 4, colorGray800)

	// 顶栏
	fillCircle(dst, x+28, y+26, 6, withAlpha(colorWhite, 0.2))
	fillRoundedRect(dst, x+w-88, y+23, 64, 6, 3, withAlpha(colorWhite, 0.1))
	strokeLine(dst, x+4, y+52, x+w-4, y+52, 1, withAlpha(colorWhite, 0.1))

	// 主体
	bx, by, bw := x+20, y+70, w-40
	fillRoundedRect(dst, bx, by, bw, 104, 16, withAlpha(colorAccent, 0.12))
	strokeRoundedRect(dst, bx, by, bw, 104, 16, 1, withAlpha(colorAccent, 0.2))
	drawText(dst, "TURQUOISE THEME", f.Fonts.Mono, bx+bw/2, by+42, text.AlignCenter, colorAccent)
	by += 120

	half := (bw - 12) / 2
	fillRoundedRect(dst, bx, by, half, 78, 16, withAlpha(colorWhite, 0.05))
	fillRoundedRect(dst, bx+half+12, by, half, 78, 16, withAlpha(colorWhite, 0.05))
	by += 94

	fillRoundedRect(dst, bx, by, bw, 40, 12, withAlpha(colorGold, 0.2))
	strokeRoundedRect(dst, bx, by, bw, 40, 12, 1, withAlpha(colorGold, 0.3))
	fillRoundedRect(dst, bx+14, by+17, 64, 6, 3, withAlpha(colorGold, 0.5))

	// 底部标签栏
	tabY := y + h - 64
	strokeLine(dst, x+4, tabY, x+w-4, tabY, 1, withAlpha(colorWhite, 0.1))
	for i := 0; i < 4; i++ {
		fillCircle(dst, x+w*(float64(i)+0.5)/4, tabY+32, 13, withAlpha(colorWhite, 0.05))
	}
}
