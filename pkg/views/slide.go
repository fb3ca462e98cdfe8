package views

import (
	"github.com/decker502/reportdeck/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Slide 一张幻灯片
// 幻灯片不持有状态，所有内容来自 Frame 中的 ContentData
type Slide interface {
	Name() string
	Draw(dst *ebiten.Image, f *Frame)
}

// Slides 按展示顺序返回全部幻灯片
func Slides() []Slide {
	return []Slide{
		HeroSlide{},
		ExecutiveSlide{},
		PortfolioSlide{},
		UxUiSlide{},
		VisualSlide{},
		MultimediaSlide{},
		ConclusionSlide{},
	}
}

// 幻灯片内容区域
const (
	slideLeft  = config.ContentMarginX
	slideRight = config.GameWindowWidth - config.ContentMarginX
	slideWidth = slideRight - slideLeft
)

// drawKicker 绘制章节编号标题（青绿等宽小字）
func drawKicker(dst *ebiten.Image, f *Frame, s string, x, y float64, align text.Align) float64 {
	drawText(dst, f.Upper(s), f.Fonts.Mono, x, y, align, colorAccent)
	return lineHeight(f.Fonts.Mono)
}

// drawSectionHeader 绘制 标题 + 副标题 + 正文，返回占用高度
func drawSectionHeader(dst *ebiten.Image, f *Frame, s config.Section, x, y, width float64) float64 {
	top := y
	y += drawKicker(dst, f, s.Title, x, y, text.AlignStart) + 4
	if s.Subtitle != "" {
		y += drawParagraph(dst, s.Subtitle, f.Fonts.Title, x, y, width, text.AlignStart, colorWhite) + 8
	}
	y += drawParagraph(dst, s.Body.String(), f.Fonts.Body, x, y, width, text.AlignStart, colorGray400)
	return y - top
}
