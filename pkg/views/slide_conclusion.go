package views

import (
	"math"

	"github.com/decker502/reportdeck/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ConclusionSlide 结论：旋转光束背景、标题、正文、角色标签与完整作品集链接
type ConclusionSlide struct{}

func (ConclusionSlide) Name() string { return "conclusion" }

const (
	rayCount  = 12
	rayPeriod = 60.0 // 光束旋转一周的秒数
	pillGap   = 12.0
)

func (ConclusionSlide) Draw(dst *ebiten.Image, f *Frame) {
	s := f.Content.Conclusion
	cx := float64(config.GameWindowWidth) / 2
	cy := float64(config.GameWindowHeight) / 2

	drawRays(dst, cx, cy, f.Seconds*2*math.Pi/rayPeriod)

	const width = 820.0
	y := 170.0
	y += drawParagraph(dst, s.Title, f.Fonts.Title, cx-width/2, y, width, text.AlignCenter, colorWhite) + 20
	y += drawParagraph(dst, s.Body.String(), f.Fonts.Body, cx-width/2, y, width, text.AlignCenter, colorGray400) + 36

	y += drawPills(dst, f, s.Items, cx, y) + 40

	p := f.Content.Portfolio
	if p.ProfileURL == "" {
		return
	}
	label := p.ProfileLabel
	w := measure(label, f.Fonts.Label) + 80
	h := 48.0
	x := cx - w/2
	fillRoundedRect(dst, x, y, w, h, h/2, withAlpha(colorAccent, 0.1))
	strokeRoundedRect(dst, x, y, w, h, h/2, 1, withAlpha(colorAccent, 0.4))
	drawText(dst, label, f.Fonts.Label, cx-12, y+(h-lineHeight(f.Fonts.Label))/2, text.AlignCenter, colorAccent)
	iconExternal(dst, x+w-30, y+h/2, 12, colorAccent)

	f.Link(rectOf(x, y, w, h), len(p.Links())-1)
}

// drawRays 以 (cx, cy) 为中心绘制旋转的扇形光束
func drawRays(dst *ebiten.Image, cx, cy, rotation float64) {
	const reach = 900.0
	step := 2 * math.Pi / rayCount
	for i := 0; i < rayCount; i++ {
		a := rotation + float64(i)*step
		var p vector.Path
		p.MoveTo(float32(cx), float32(cy))
		p.LineTo(float32(cx+reach*math.Cos(a)), float32(cy+reach*math.Sin(a)))
		p.LineTo(float32(cx+reach*math.Cos(a+step/3)), float32(cy+reach*math.Sin(a+step/3)))
		p.Close()
		fillPath(dst, &p, withAlpha(colorAccent, 0.025))
	}
	fillRadialGlow(dst, cx, cy, 260, colorBackground, 0.9)
}

// drawPills 居中排布条目标题胶囊，返回占用高度
func drawPills(dst *ebiten.Image, f *Frame, items []config.SectionItem, cx, y float64) float64 {
	if len(items) == 0 {
		return 0
	}
	face := f.Fonts.Mono
	h := lineHeight(face) + 20

	widths := make([]float64, len(items))
	total := pillGap * float64(len(items)-1)
	for i, item := range items {
		widths[i] = measure(f.Upper(item.Title), face) + 40
		total += widths[i]
	}

	x := cx - total/2
	for i, item := range items {
		fillRoundedRect(dst, x, y, widths[i], h, h/2, withAlpha(colorWhite, 0.05))
		strokeRoundedRect(dst, x, y, widths[i], h, h/2, 1, withAlpha(colorWhite, 0.1))
		drawText(dst, f.Upper(item.Title), face, x+widths[i]/2, y+10, text.AlignCenter, colorGray300)
		x += widths[i] + pillGap
	}
	return h
}
