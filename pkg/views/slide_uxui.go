package views

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// UxUiSlide UX/UI 架构：章节标题与三张并排卡片
type UxUiSlide struct{}

func (UxUiSlide) Name() string { return "uxui" }

func (UxUiSlide) Draw(dst *ebiten.Image, f *Frame) {
	s := f.Content.UxUi
	y := 100.0
	y += drawSectionHeader(dst, f, s, slideLeft, y, 960) + 32

	n := len(s.Items)
	if n == 0 {
		return
	}
	const gap = 24.0
	const cardH = 240.0
	cardW := (slideWidth - gap*float64(n-1)) / float64(n)
	icons := []iconFunc{iconGrid, iconFingerprint, iconZap}

	for i, item := range s.Items {
		x := slideLeft + float64(i)*(cardW+gap)
		fillRoundedRect(dst, x, y, cardW, cardH, 32, colorGray900)
		strokeRoundedRect(dst, x, y, cardW, cardH, 32, 1, withAlpha(colorWhite, 0.1))

		fillRoundedRect(dst, x+28, y+28, 48, 48, 14, withAlpha(colorWhite, 0.05))
		strokeRoundedRect(dst, x+28, y+28, 48, 48, 14, 1, withAlpha(colorWhite, 0.1))
		icons[i%len(icons)](dst, x+52, y+52, 24, colorAccent)

		ty := y + 96
		ty += drawParagraph(dst, item.Title, f.Fonts.Heading, x+28, ty, cardW-56, text.AlignStart, colorWhite) + 6
		drawParagraph(dst, item.Desc, f.Fonts.Small, x+28, ty, cardW-56, text.AlignStart, colorGray400)
	}
}
