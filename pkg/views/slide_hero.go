package views

import (
	"math"
	"strings"

	"github.com/decker502/reportdeck/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// HeroSlide 封面：旋转圆环、职位、两行姓名与报告标题
type HeroSlide struct{}

func (HeroSlide) Name() string { return "hero" }

func (HeroSlide) Draw(dst *ebiten.Image, f *Frame) {
	cx := float64(config.GameWindowWidth) / 2
	cy := float64(config.GameWindowHeight) / 2
	t := f.Seconds

	// 三个圆环：外圈虚线慢转，中圈反向，内圈带一段青绿高亮弧
	strokeDashedCircle(dst, cx, cy, 325, 1, 48, t*2*math.Pi/100, withAlpha(colorWhite, 0.05))
	strokeCircle(dst, cx, cy, 225, 1, withAlpha(colorAccent, 0.2))
	strokeDashedCircle(dst, cx, cy, 225, 1, 6, -t*2*math.Pi/60, withAlpha(colorAccent, 0.15))
	strokeCircle(dst, cx, cy, 150, 1, withAlpha(colorWhite, 0.1))
	strokeArc(dst, cx, cy, 150, t*0.6, t*0.6+1.2, 2, colorAccent)

	first, rest := splitName(f.Content.Hero.Name)
	display := f.Fonts.Display
	lh := display.Size * 0.9

	y := cy - lh - 70
	drawText(dst, f.Upper(f.Content.Hero.Role), f.Fonts.Mono, cx, y, text.AlignCenter, colorAccent)
	y += 40

	// 第一行：带模糊阴影的渐隐白色
	drawText(dst, first, display, cx+2, y+6, text.AlignCenter, withAlpha(colorWhite, 0.12))
	drawText(dst, first, display, cx, y, text.AlignCenter, withAlpha(colorWhite, 0.75))
	y += lh
	drawText(dst, rest, display, cx, y, text.AlignCenter, colorWhite)
	y += lh + 40

	fillHorizontalGradient(dst, cx-48, y, 48, 2, withAlpha(colorAccent, 0), colorAccent, 12)
	fillHorizontalGradient(dst, cx, y, 48, 2, colorAccent, withAlpha(colorAccent, 0), 12)
	y += 28

	drawParagraph(dst, f.Content.Hero.ReportTitle, f.Fonts.Heading, cx-300, y, 600, text.AlignCenter, colorGray400)
}

// splitName 把姓名拆成两行：第一个词与其余部分
func splitName(name string) (first, rest string) {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}
