// Package views 负责报告画面的绘制
//
// 视图本身不持有业务状态：每帧从 Model 读取 Shell 的快照并绘制，
// 同时登记可点击区域（input.Hotspot），由场景在下一次 Update 中做命中测试。
// 唯一的例外是装饰性动画（背景粒子、进度条缓动），它们只依赖时间。
package views

import (
	"fmt"
	"image/color"

	"github.com/decker502/reportdeck/pkg/game"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 调色板（青绿主题）
var (
	colorBackground = color.NRGBA{0x05, 0x05, 0x05, 0xff}
	colorAccent     = color.NRGBA{0x2d, 0xd4, 0xbf, 0xff}
	colorGold       = color.NRGBA{0xea, 0xb3, 0x08, 0xff}
	colorWhite      = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	colorBlack      = color.NRGBA{0x00, 0x00, 0x00, 0xff}
	colorGray300    = color.NRGBA{0xd1, 0xd5, 0xdb, 0xff}
	colorGray400    = color.NRGBA{0x9c, 0xa3, 0xaf, 0xff}
	colorGray500    = color.NRGBA{0x6b, 0x72, 0x80, 0xff}
	colorGray600    = color.NRGBA{0x4b, 0x55, 0x63, 0xff}
	colorGray700    = color.NRGBA{0x37, 0x41, 0x51, 0xff}
	colorGray800    = color.NRGBA{0x1f, 0x29, 0x37, 0xff}
	colorGray900    = color.NRGBA{0x11, 0x18, 0x27, 0xff}
	colorRed500     = color.NRGBA{0xef, 0x44, 0x44, 0xff}
	colorRed900     = color.NRGBA{0x7f, 0x1d, 0x1d, 0xff}
	colorBlue900    = color.NRGBA{0x1e, 0x3a, 0x8a, 0xff}
	colorPurple900  = color.NRGBA{0x58, 0x1c, 0x87, 0xff}
	colorEmerald900 = color.NRGBA{0x06, 0x4e, 0x3b, 0xff}
	colorWhatsApp   = color.NRGBA{0x25, 0xd3, 0x66, 0xff}
	colorStar       = color.NRGBA{0xea, 0xb3, 0x08, 0xff}
)

// withAlpha 返回透明度为 a (0~1) 的颜色
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(float64(c.A) * a)
	return c
}

// Fonts 视图使用的全部字号
type Fonts struct {
	Display *text.GoTextFace // 封面姓名
	Title   *text.GoTextFace // 章节大标题
	Heading *text.GoTextFace // 卡片标题、统计数值
	Body    *text.GoTextFace // 正文
	Small   *text.GoTextFace // 辅助说明
	Label   *text.GoTextFace // 按钮、标签（粗体小字）
	Mono    *text.GoTextFace // 等宽标签、域名
	Number  *text.GoTextFace // 卡片编号
}

// LoadFonts 通过 ResourceManager 加载并缓存所有字号
func LoadFonts(rm *game.ResourceManager) (*Fonts, error) {
	fonts := &Fonts{}
	specs := []struct {
		dst  **text.GoTextFace
		name game.FontName
		size float64
	}{
		{&fonts.Display, game.FontBold, 112},
		{&fonts.Title, game.FontBold, 52},
		{&fonts.Heading, game.FontBold, 24},
		{&fonts.Body, game.FontRegular, 17},
		{&fonts.Small, game.FontRegular, 14},
		{&fonts.Label, game.FontBold, 13},
		{&fonts.Mono, game.FontMono, 13},
		{&fonts.Number, game.FontBold, 48},
	}

	for _, spec := range specs {
		face, err := rm.LoadFont(spec.name, spec.size)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s font (%.0fpx): %w", spec.name, spec.size, err)
		}
		*spec.dst = face
	}
	return fonts, nil
}
