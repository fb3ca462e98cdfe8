package views

import (
	"github.com/decker502/reportdeck/pkg/config"
	"github.com/decker502/reportdeck/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// PortfolioSlide 作品集：网站网格与移动应用卡片，均可点击打开
type PortfolioSlide struct{}

func (PortfolioSlide) Name() string { return "portfolio" }

// 网站网格布局
const (
	siteColumns = 3
	siteCellH   = 40.0
	siteGap     = 8.0
	sitePadding = 24.0
)

// 应用卡片布局
const (
	appCardH      = 64.0
	appCardMaxW   = 220.0
	appCardMinW   = 180.0
	appCardGap    = 16.0
	appCardIconSz = 20.0
)

func (PortfolioSlide) Draw(dst *ebiten.Image, f *Frame) {
	p := f.Content.Portfolio
	y := 96.0

	drawKicker(dst, f, p.Title, slideLeft, y, text.AlignStart)
	y += 24
	drawText(dst, p.WebTitle, f.Fonts.Title, slideLeft, y, text.AlignStart, colorWhite)
	y += lineHeight(f.Fonts.Title) + 12

	y += drawSiteGrid(dst, f, p.Websites, y) + 24

	drawText(dst, p.AppTitle, f.Fonts.Heading, slideLeft, y, text.AlignStart, colorWhite)
	y += lineHeight(f.Fonts.Heading) + 8

	drawAppCards(dst, f, p.Apps, len(p.Websites), y)
}

// drawSiteGrid 绘制网站网格，返回占用高度
// 第 i 个网站对应链接下标 i
func drawSiteGrid(dst *ebiten.Image, f *Frame, sites []string, top float64) float64 {
	rows := (len(sites) + siteColumns - 1) / siteColumns
	boxH := sitePadding*2 + float64(rows)*siteCellH + float64(max(rows-1, 0))*siteGap

	fillRoundedRect(dst, slideLeft, top, slideWidth, boxH, 16, withAlpha(colorWhite, 0.05))
	strokeRoundedRect(dst, slideLeft, top, slideWidth, boxH, 16, 1, withAlpha(colorWhite, 0.1))

	cellW := (slideWidth - sitePadding*2 - siteGap*(siteColumns-1)) / siteColumns
	for i, site := range sites {
		x := slideLeft + sitePadding + float64(i%siteColumns)*(cellW+siteGap)
		y := top + sitePadding + float64(i/siteColumns)*(siteCellH+siteGap)

		fillRoundedRect(dst, x, y, cellW, siteCellH, 10, withAlpha(colorBlack, 0.4))
		strokeRoundedRect(dst, x, y, cellW, siteCellH, 10, 1, withAlpha(colorWhite, 0.05))

		fillRoundedRect(dst, x+10, y+6, 28, 28, 6, withAlpha(colorWhite, 0.1))
		iconMonitor(dst, x+24, y+20, 14, colorGray300)

		domain := utils.TruncateText(config.DisplayDomain(site), f.Fonts.Mono, cellW-80)
		drawText(dst, domain, f.Fonts.Mono, x+50, y+11, text.AlignStart, colorGray300)
		iconExternal(dst, x+cellW-20, y+siteCellH/2, 10, withAlpha(colorGray400, 0.6))

		f.Link(rectOf(x, y, cellW, siteCellH), i)
	}
	return boxH
}

// drawAppCards 按行排布应用卡片，放不下时换行
// 第 i 个应用对应链接下标 offset+i
func drawAppCards(dst *ebiten.Image, f *Frame, apps []config.PortfolioItem, offset int, top float64) {
	n := len(apps)
	if n == 0 {
		return
	}
	cardW := (slideWidth - appCardGap*float64(n-1)) / float64(n)
	cardW = utils.Clamp(cardW, appCardMinW, appCardMaxW)

	x, y := float64(slideLeft), top
	for i, app := range apps {
		if x+cardW > slideRight+0.5 {
			x = slideLeft
			y += appCardH + appCardGap
		}

		fillRoundedRect(dst, x, y, cardW, appCardH, 16, lerpColor(colorGray800, colorBlack, 0.5))
		strokeRoundedRect(dst, x, y, cardW, appCardH, 16, 1, withAlpha(colorWhite, 0.1))

		fillRoundedRect(dst, x+14, y+14, 36, 36, 8, withAlpha(colorAccent, 0.2))
		iconPhone(dst, x+32, y+32, appCardIconSz, colorAccent)

		name := utils.TruncateText(app.Name, f.Fonts.Label, cardW-76)
		drawText(dst, name, f.Fonts.Label, x+62, y+14, text.AlignStart, colorWhite)
		drawText(dst, "GOOGLE PLAY", f.Fonts.Mono, x+62, y+34, text.AlignStart, colorGray400)

		f.Link(rectOf(x, y, cardW, appCardH), offset+i)
		x += cardW + appCardGap
	}
}
