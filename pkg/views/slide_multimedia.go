package views

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/reportdeck/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MultimediaSlide 多媒体与营销：标题行 + 三张叠放卡片
type MultimediaSlide struct{}

func (MultimediaSlide) Name() string { return "multimedia" }

// 卡片背后两层倾斜的底卡（弧度）
var multimediaBackTilts = [2]float64{3 * math.Pi / 180, -2 * math.Pi / 180}

type mediaCardStyle struct {
	tint color.NRGBA
	icon iconFunc
}

var mediaCardStyles = []mediaCardStyle{
	{colorPurple900, iconPhone},
	{colorBlue900, iconVideo},
	{colorEmerald900, iconFeather},
}

func (MultimediaSlide) Draw(dst *ebiten.Image, f *Frame) {
	s := f.Content.Multimedia
	y := 96.0

	drawKicker(dst, f, s.Title, slideLeft, y, text.AlignStart)
	drawLiveBadge(dst, f, slideRight, y)
	y += lineHeight(f.Fonts.Mono) + 4
	y += drawParagraph(dst, s.Subtitle, f.Fonts.Title, slideLeft, y, slideWidth-240, text.AlignStart, colorWhite) + 12
	strokeLine(dst, slideLeft, y, slideRight, y, 1, withAlpha(colorWhite, 0.1))
	y += 16
	y += drawParagraph(dst, s.Body.String(), f.Fonts.Body, slideLeft, y, slideWidth*0.7, text.AlignStart, colorGray400) + 28

	n := len(s.Items)
	if n == 0 {
		return
	}
	const gap = 32.0
	cardW := (slideWidth - gap*float64(n-1)) / float64(n)
	cardH := math.Min(300, 640-y)

	for i, item := range s.Items {
		x := slideLeft + float64(i)*(cardW+gap)
		drawMediaCard(dst, f, i, item.Title, item.Desc, x, y, cardW, cardH)
	}
}

// drawLiveBadge 右对齐的 "LIVE PRODUCTION" 闪烁红点
func drawLiveBadge(dst *ebiten.Image, f *Frame, right, y float64) {
	label := "LIVE PRODUCTION"
	w := measure(label, f.Fonts.Mono)
	drawText(dst, label, f.Fonts.Mono, right, y, text.AlignEnd, colorGray500)

	k := utils.Pulse(f.Seconds, 2)
	fillCircle(dst, right-w-14, y+lineHeight(f.Fonts.Mono)/2, 4, withAlpha(colorRed500, 0.4+0.6*k))
}

// drawMediaCard 底卡 + 前卡 + 编号与图标
func drawMediaCard(dst *ebiten.Image, f *Frame, i int, title, desc string, x, y, w, h float64) {
	style := mediaCardStyles[i%len(mediaCardStyles)]

	fillRotatedRect(dst, x, y, w, h, multimediaBackTilts[0], withAlpha(colorGray800, 0.5))
	fillRotatedRect(dst, x, y, w, h, multimediaBackTilts[1], withAlpha(colorGray800, 0.8))

	fillRoundedRect(dst, x, y, w, h, 24, colorBlack)
	fillVerticalGradient(dst, x+12, y+12, w-24, h*0.5, withAlpha(style.tint, 0.35), withAlpha(style.tint, 0), 12)
	strokeRoundedRect(dst, x, y, w, h, 24, 1, withAlpha(colorWhite, 0.1))

	drawText(dst, fmt.Sprintf("%02d", i+1), f.Fonts.Number, x+w-24, y+16, text.AlignEnd, withAlpha(colorWhite, 0.1))

	fillRoundedRect(dst, x+24, y+24, 48, 48, 14, withAlpha(colorWhite, 0.08))
	style.icon(dst, x+48, y+48, 24, colorWhite)

	if i == 1 {
		iconPlayCircle(dst, x+w/2, y+h*0.45, 56, withAlpha(colorWhite, 0.15))
	}

	ty := y + h - 24 - lineHeight(f.Fonts.Heading) - paragraphHeight(desc, f.Fonts.Small, w-48) - 6
	ty += drawParagraph(dst, title, f.Fonts.Heading, x+24, ty, w-48, text.AlignStart, colorWhite) + 6
	drawParagraph(dst, desc, f.Fonts.Small, x+24, ty, w-48, text.AlignStart, colorGray400)
}
