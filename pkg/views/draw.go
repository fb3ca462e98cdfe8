package views

import (
	"image"
	"image/color"
	"math"

	"github.com/decker502/reportdeck/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// lineSpacing 行高相对字号的倍数
const lineSpacing = 1.45

var whitePixel *ebiten.Image

// solidSource 返回用于 DrawTriangles 的 1x1 白色纹理
func solidSource() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

// lineHeight 返回字体的行高
func lineHeight(face *text.GoTextFace) float64 {
	return face.Size * lineSpacing
}

// measure 返回单行文本的宽度
func measure(s string, face *text.GoTextFace) float64 {
	w, _ := text.Measure(s, face, 0)
	return w
}

// drawText 在 (x, y) 绘制单行文本，y 为行顶部
// align 决定 x 是文本的左边、中心还是右边
func drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = align
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// drawParagraph 在宽度 width 内自动换行绘制文本
// 返回：实际占用的高度
func drawParagraph(dst *ebiten.Image, s string, face *text.GoTextFace, x, y, width float64, align text.Align, clr color.Color) float64 {
	lines := utils.WrapText(s, face, width)
	lh := lineHeight(face)

	ax := x
	switch align {
	case text.AlignCenter:
		ax = x + width/2
	case text.AlignEnd:
		ax = x + width
	}
	for i, line := range lines {
		drawText(dst, line, face, ax, y+float64(i)*lh, align, clr)
	}
	return float64(len(lines)) * lh
}

// paragraphHeight 计算 drawParagraph 会占用的高度（不绘制）
func paragraphHeight(s string, face *text.GoTextFace, width float64) float64 {
	return float64(len(utils.WrapText(s, face, width))) * lineHeight(face)
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, true)
}

func strokeLine(dst *ebiten.Image, x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

func fillCircle(dst *ebiten.Image, cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), clr, true)
}

func strokeCircle(dst *ebiten.Image, cx, cy, r, width float64, clr color.Color) {
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(r), float32(width), clr, true)
}

// roundedRectPath 构造圆角矩形路径，r 会被限制在短边的一半以内
func roundedRectPath(x, y, w, h, r float64) *vector.Path {
	r = math.Min(r, math.Min(w, h)/2)
	fx, fy, fw, fh, fr := float32(x), float32(y), float32(w), float32(h), float32(r)

	var p vector.Path
	p.MoveTo(fx+fr, fy)
	p.LineTo(fx+fw-fr, fy)
	p.Arc(fx+fw-fr, fy+fr, fr, -math.Pi/2, 0, vector.Clockwise)
	p.LineTo(fx+fw, fy+fh-fr)
	p.Arc(fx+fw-fr, fy+fh-fr, fr, 0, math.Pi/2, vector.Clockwise)
	p.LineTo(fx+fr, fy+fh)
	p.Arc(fx+fr, fy+fh-fr, fr, math.Pi/2, math.Pi, vector.Clockwise)
	p.LineTo(fx, fy+fr)
	p.Arc(fx+fr, fy+fr, fr, math.Pi, math.Pi*3/2, vector.Clockwise)
	p.Close()
	return &p
}

// fillPath 用纯色填充路径
func fillPath(dst *ebiten.Image, p *vector.Path, clr color.Color) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	drawSolidTriangles(dst, vs, is, clr)
}

// strokePath 用纯色描边路径
func strokePath(dst *ebiten.Image, p *vector.Path, width float64, clr color.Color) {
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
	})
	drawSolidTriangles(dst, vs, is, clr)
}

func drawSolidTriangles(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.Color) {
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, solidSource(), op)
}

func fillRoundedRect(dst *ebiten.Image, x, y, w, h, r float64, clr color.Color) {
	fillPath(dst, roundedRectPath(x, y, w, h, r), clr)
}

func strokeRoundedRect(dst *ebiten.Image, x, y, w, h, r, width float64, clr color.Color) {
	strokePath(dst, roundedRectPath(x, y, w, h, r), width, clr)
}

// strokeArc 绘制从 start 到 end（弧度）的圆弧
func strokeArc(dst *ebiten.Image, cx, cy, r, start, end, width float64, clr color.Color) {
	var p vector.Path
	p.MoveTo(float32(cx+r*math.Cos(start)), float32(cy+r*math.Sin(start)))
	p.Arc(float32(cx), float32(cy), float32(r), float32(start), float32(end), vector.Clockwise)
	strokePath(dst, &p, width, clr)
}

// strokeDashedCircle 绘制虚线圆，rotation 为整体旋转角度（弧度）
func strokeDashedCircle(dst *ebiten.Image, cx, cy, r, width float64, dashes int, rotation float64, clr color.Color) {
	step := 2 * math.Pi / float64(dashes)
	for i := 0; i < dashes; i++ {
		start := rotation + float64(i)*step
		strokeArc(dst, cx, cy, r, start, start+step*0.5, width, clr)
	}
}

// fillRotatedRect 填充绕中心旋转 angle（弧度）的矩形
func fillRotatedRect(dst *ebiten.Image, x, y, w, h, angle float64, clr color.Color) {
	cx, cy := x+w/2, y+h/2
	sin, cos := math.Sincos(angle)
	corners := [4][2]float64{{-w / 2, -h / 2}, {w / 2, -h / 2}, {w / 2, h / 2}, {-w / 2, h / 2}}

	var p vector.Path
	for i, c := range corners {
		px := float32(cx + c[0]*cos - c[1]*sin)
		py := float32(cy + c[0]*sin + c[1]*cos)
		if i == 0 {
			p.MoveTo(px, py)
		} else {
			p.LineTo(px, py)
		}
	}
	p.Close()
	fillPath(dst, &p, clr)
}

// fillVerticalGradient 用 steps 条水平色带近似纵向渐变
func fillVerticalGradient(dst *ebiten.Image, x, y, w, h float64, from, to color.NRGBA, steps int) {
	band := h / float64(steps)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		fillRect(dst, x, y+float64(i)*band, w, band+1, lerpColor(from, to, t))
	}
}

// fillHorizontalGradient 用 steps 条竖直色带近似横向渐变
func fillHorizontalGradient(dst *ebiten.Image, x, y, w, h float64, from, to color.NRGBA, steps int) {
	band := w / float64(steps)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		fillRect(dst, x+float64(i)*band, y, band+0.5, h, lerpColor(from, to, t))
	}
}

// fillRadialGlow 以同心圆近似中心向外衰减的光晕
func fillRadialGlow(dst *ebiten.Image, cx, cy, r float64, clr color.NRGBA, alpha float64) {
	const rings = 14
	for i := rings; i >= 1; i-- {
		k := float64(i) / rings
		fillCircle(dst, cx, cy, r*k, withAlpha(clr, alpha/rings*1.6))
	}
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(utils.Lerp(float64(a.R), float64(b.R), t)),
		G: uint8(utils.Lerp(float64(a.G), float64(b.G), t)),
		B: uint8(utils.Lerp(float64(a.B), float64(b.B), t)),
		A: uint8(utils.Lerp(float64(a.A), float64(b.A), t)),
	}
}

// rectOf 把浮点矩形转换为热区矩形
func rectOf(x, y, w, h float64) image.Rectangle {
	return image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
}
