package views

import (
	"math"

	"github.com/decker502/reportdeck/pkg/config"
	"github.com/decker502/reportdeck/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawIntro 开场弹窗：头像、姓名、欢迎语、耳机提示与开始按钮
// 弹窗是模态的，其下的热区全部失效
func drawIntro(dst *ebiten.Image, f *Frame) {
	f.Modal()

	w, h := float64(config.GameWindowWidth), float64(config.GameWindowHeight)
	fillRect(dst, 0, 0, w, h, withAlpha(colorBlack, 0.92))
	f.Block(rectOf(0, 0, w, h))

	intro := f.Content.Intro
	cx := w / 2
	y := 150.0

	// 头像
	const r = 56.0
	fillRadialGlow(dst, cx, y+r, r*2, colorAccent, 0.15)
	strokeDashedCircle(dst, cx, y+r, r+10, 1, 24, f.Seconds*2*math.Pi/10, withAlpha(colorAccent, 0.5))
	fillCircle(dst, cx, y+r, r, colorGray900)
	strokeCircle(dst, cx, y+r, r, 2, colorAccent)
	drawText(dst, f.Upper(initials(f.Content.Hero.Name)), f.Fonts.Heading, cx, y+r-lineHeight(f.Fonts.Heading)/2, text.AlignCenter, colorWhite)
	y += r*2 + 36

	drawText(dst, f.Content.Hero.Name, f.Fonts.Title, cx, y, text.AlignCenter, colorWhite)
	y += lineHeight(f.Fonts.Title) + 4
	y += drawParagraph(dst, intro.Welcome, f.Fonts.Body, cx-280, y, 560, text.AlignCenter, colorGray400) + 24

	// 耳机提示
	aw := measure(intro.Advisory, f.Fonts.Small) + 56
	ah := 36.0
	fillRoundedRect(dst, cx-aw/2, y, aw, ah, ah/2, withAlpha(colorAccent, 0.1))
	strokeRoundedRect(dst, cx-aw/2, y, aw, ah, ah/2, 1, withAlpha(colorAccent, 0.2))
	iconHeadphones(dst, cx-aw/2+22, y+ah/2, 14, colorAccent)
	drawText(dst, intro.Advisory, f.Fonts.Small, cx-aw/2+38, y+(ah-lineHeight(f.Fonts.Small))/2, text.AlignStart, colorAccent)
	y += ah + 36

	// 开始按钮
	label := f.Upper(intro.Button)
	bw := measure(label, f.Fonts.Label) + 88
	bh := 52.0
	bx := cx - bw/2
	fillRoundedRect(dst, bx, y, bw, bh, bh/2, colorWhite)
	drawText(dst, label, f.Fonts.Label, cx-12, y+(bh-lineHeight(f.Fonts.Label))/2, text.AlignCenter, colorBlack)
	iconArrow(dst, bx+bw-34, y+bh/2, 14, false, colorBlack)
	f.Add(rectOf(bx, y, bw, bh), input.Of(input.KindStartExperience))
}
