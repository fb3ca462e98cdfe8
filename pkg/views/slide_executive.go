package views

import (
	"github.com/decker502/reportdeck/pkg/config"
	"github.com/decker502/reportdeck/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ExecutiveSlide 执行摘要：左侧用户规模与正文，右侧 2 列指标卡片
type ExecutiveSlide struct{}

func (ExecutiveSlide) Name() string { return "executive" }

func (ExecutiveSlide) Draw(dst *ebiten.Image, f *Frame) {
	s := f.Content.Executive
	colW := slideWidth/2 - 32
	x := slideLeft
	y := 190.0

	// 脉冲圆点 + 章节标题
	k := utils.Pulse(f.Seconds, 1.2)
	fillCircle(dst, x+6, y+8, 6+6*k, withAlpha(colorAccent, 0.75*(1-k)))
	fillCircle(dst, x+6, y+8, 6, colorAccent)
	drawKicker(dst, f, s.Title, x+24, y, text.AlignStart)
	y += 44

	drawText(dst, "10 Million+", f.Fonts.Title, x, y, text.AlignStart, colorWhite)
	y += lineHeight(f.Fonts.Title) * 0.8
	drawText(dst, "Active Users", f.Fonts.Title, x, y, text.AlignStart, colorGray400)
	y += lineHeight(f.Fonts.Title)

	bodyH := paragraphHeight(s.Body.String(), f.Fonts.Body, colW-40)
	fillRoundedRect(dst, x, y, colW, bodyH+32, 12, withAlpha(colorWhite, 0.05))
	fillRect(dst, x, y, 1, bodyH+32, withAlpha(colorAccent, 0.5))
	drawParagraph(dst, s.Body.String(), f.Fonts.Body, x+24, y+16, colW-40, text.AlignStart, colorGray300)

	drawStatGrid(dst, f, s.Stats, slideLeft+slideWidth/2+32, 200, colW)
}

// drawStatGrid 两列指标卡片，第一张带星标
func drawStatGrid(dst *ebiten.Image, f *Frame, stats []config.Stat, x, y, width float64) {
	const gap = 16.0
	const cardH = 128.0
	cardW := (width - gap) / 2

	for i, stat := range stats {
		cx := x + float64(i%2)*(cardW+gap)
		cy := y + float64(i/2)*(cardH+gap)

		fillRoundedRect(dst, cx, cy, cardW, cardH, 16, withAlpha(colorWhite, 0.05))
		strokeRoundedRect(dst, cx, cy, cardW, cardH, 16, 1, withAlpha(colorWhite, 0.1))

		drawText(dst, stat.Value, f.Fonts.Number, cx+24, cy+18, text.AlignStart, colorWhite)
		if i == 0 {
			iconStar(dst, cx+cardW-32, cy+32, 20, colorStar)
		}
		label := utils.TruncateText(f.Upper(stat.Label), f.Fonts.Mono, cardW-48)
		drawText(dst, label, f.Fonts.Mono, cx+24, cy+cardH-36, text.AlignStart, colorGray400)
	}
}
