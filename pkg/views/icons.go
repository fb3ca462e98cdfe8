package views

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// iconFunc 线条图标，(cx, cy) 为中心，s 为边长
type iconFunc func(dst *ebiten.Image, cx, cy, s float64, clr color.Color)

func iconPlay(dst *ebiten.Image, cx, cy, s float64, clr color.Color) {
	h := s / 2
	var p vector.Path
	p.MoveTo(float32(cx-h*0.6), float32(cy-h))
	p.LineTo(float32(cx+h*0.9), float32(cy))
	p.LineTo(float32(cx-h*0.6), float32(cy+h))
	p.Close()
	fillPath(dst, &p, clr)
}

func iconPause(dst *ebiten.Image, cx, cy, s float64, clr color.Color) {
	w := s * 0.22
	fillRect(dst, cx-s*0.35, cy-s/2, w, s, clr)
	fillRect(dst, cx+s*0.35-w, cy-s/2, w, s, clr)
}

func iconSpeaker(dst *ebiten.Image, cx, cy, s float64, muted bool, clr color.Color) {
	h := s / 2
	var p vector.Path
	p.MoveTo(float32(cx-h), float32(cy-h*0.35))
	p.LineTo(float32(cx-h*0.45), float32(cy-h*0.35))
	p.LineTo(float32(cx+h*0.1), float32(cy-h))
	p.LineTo(float32(cx+h*0.1), float32(cy+h))
	p.LineTo(float32(cx-h*0.45), float32(cy+h*0.35))
	p.LineTo(float32(cx-h), float32(cy+h*0.35))
	p.Close()
	fillPath(dst, &p, clr)

	if muted {
		strokeLine(dst, cx+h*0.4, cy-h*0.4, cx+h, cy+h*0.4, 2, clr)
		strokeLine(dst, cx+h*0.4, cy+h*0.4, cx+h, cy-h*0.4, 2, clr)
		return
	}
	strokeArc(dst, cx+h*0.1, cy, h*0.5, -math.Pi/4, math.Pi/4, 2, clr)
	strokeArc(dst, cx+h*0.1, cy, h*0.9, -math.Pi/4, math.Pi/4, 2, clr)
}

// iconChevron dir<0 向左，dir>0 向右
func iconChevron(dst *ebiten.Image, cx, cy, s float64, dir int, clr color.Color) {
	h := s / 2
	d := float64(dir)
	strokeLine(dst, cx-d*h*0.3, cy-h*0.6, cx+d*h*0.3, cy, 2, clr)
	strokeLine(dst, cx+d*h*0.3, cy, cx-d*h*0.3, cy+h*0.6, 2, clr)
}

// iconArrow up 为 true 时向上
func iconArrow(dst *ebiten.Image, cx, cy, s float64, up bool, clr color.Color) {
	h := s / 2
	d := 1.0
	if up {
		d = -1
	}
	strokeLine(dst, cx, cy-d*h, cx, cy+d*h, 2, clr)
	strokeLine(dst, cx-h*0.6, cy+d*h*0.4, cx, cy+d*h, 2, clr)
	strokeLine(dst, cx+h*0.6, cy+d*h*0.4, cx, cy+d*h, 2, clr)
}

func iconClose(dst *ebiten.Image, cx, cy, s float64, clr color.Color) {
	h := s / 2
	strokeLine(dst, cx-h, cy-h, cx+h, cy+h, 2, clr)
	strokeLine(dst, cx-h, cy+h, cx+h, cy-h, 2, clr)
}

func iconGamepad(dst *ebiten.Image, cx, cy, s float64, clr color.Color) {
	w, h := s, s*0.62
	strokeRoundedRect(dst, cx-w/2, cy-h/2, w, h, h/2, 1.6, clr)
	strokeLine(dst, cx-w*0.3, cy, cx-w*0.1, cy, 1.6, clr)
	strokeLine(dst, cx-w*0.2, cy-h*0.18, cx-w*0.2, cy+h*0.18, 1.6, clr)
	fillCircle(dst, cx+w*0.16, cy-h*0.08, s*0.06, clr)
	fillCircle(dst, cx+w*0.28, cy+h*0.1, s*0.06, clr)
}

func iconGlobe(dst *ebiten.Image, cx, cy, s float64, clr color.Color) {
	r := s / 2
	strokeCircle(dst, cx, cy, r, 1.4, clr)
	strokeLine(dst, cx-r, cy, cx+r, cy, 1.2, clr)
	strokeArc(dst, cx+r*0.9, cy, r*1.3, math.Pi*0.78, math.Pi*1.22, 1.2, clr)
	strokeArc(dst, cx-r*0.9, cy, r*1.3, -math.Pi*0.22, math.Pi*0.22, 1.2, clr)
}

func iconHeadphones(dst *ebiten.Image, cx, cy, s float64, clr color.Color) {
	r := s * 0.42
	strokeArc(dst, cx, cy, r, math.Pi, 2*math.Pi, 2, clr)
	fillRoundedRect(dst, cx-r-1, cy, s*0.22, s*0.38, 2, clr)
	fillRoundedRect(dst, cx+r+1-s*0.22, cy, s*0.22, s*0.38, 2, clr)
}

func iconExternal(dst *ebiten.Image, cx, cy, s float64, clr color.Color) {
	h := s / 2
	strokeRoundedRect(dst, cx-h, cy-h*0.6, h*1.6, h*1.6, 2, 1.4, clr)
	strokeLine(dst, cx, cy, cx+h, cy-h, 1.4, clr)
	strokeLine(dst, cx+h*0.3, cy-h, cx+h, cy-h, 1.4, clr)
	strokeLine(dst, cx+h, cy-h, cx+h, cy-h*0.3, 1.4, clr)
}

func iconStar(dst *ebiten.Image, cx, cy, s float64, clr color.Color) {
	outer, inner := s/2, s/5
	var p vector.Path
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		x, y := float32(cx+r*math.Cos(a)), float32(cy+r*math.Sin(a))
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	fillPath(dst, &p, clr)
}

func iconMonitor(dst *ebiten.Image, cx, cy, s float64, clr color.Color) {
	w, h := s, s*0.66
	strokeRoundedRect(dst, cx-w/2, cy-s/2, w, h, 2, 1.4, clr)
	strokeLine(dst, cx, cy-s/2+h, cx, cy+s*0.4, 1.4, clr)
	strokeLine(dst, cx-w*0.25, cy+s*0.4, cx+w*0.25, cy+s*0.4, 1.4, clr)
}

func iconPhone(dst *ebiten.Image, cx, cy, s float64, clr color.Color) {
	w, h := s*0.6, s
	strokeRoundedRect(dst, cx-w/2, cy-h/2, w, h, 3, 1.5, clr)
	strokeLine(dst, cx-w*0.12, cy+h*0.35, cx+w*0.12, cy+h*0.35, 1.5, clr)
}

func iconVideo(dst *ebiten.Image, cx, cy, s float64, clr color.Color) {
	w, h := s*0.66, s*0.56
	strokeRoundedRect(dst, cx-s/2, cy-h/2, w, h, 2, 1.5, clr)
	var p vector.Path
	p.MoveTo(float32(cx-s/2+w+2), float32(cy))
	p.LineTo(float32(cx+s/2), float32(cy-h/2))
	p.LineTo(float32(cx+s/2), float32(cy+h/2))
	p.Close()
	strokePath(dst, &p, 1.5, clr)
}

func iconFeather(dst *ebiten.Image, cx, cy, s float64, clr color.Color) {
	h := s / 2
	strokeArc(dst, cx-h*0.4, cy+h*0.4, h*1.3, -math.Pi/2, 0, 1.5, clr)
	strokeLine(dst, cx-h, cy+h, cx+h*0.5, cy-h*0.5, 1.5, clr)
}

func iconPlayCircle(dst *ebiten.Image, cx, cy, s float64, clr color.Color) {
	strokeCircle(dst, cx, cy, s/2, 2, clr)
	iconPlay(dst, cx+s*0.04, cy, s*0.4, clr)
}

func iconGrid(dst *ebiten.Image, cx, cy, s float64, clr color.Color) {
	c := s * 0.42
	g := s * 0.16
	for _, o := range [4][2]float64{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		x := cx + o[0]*(g/2+c/2) - c/2
		y := cy + o[1]*(g/2+c/2) - c/2
		strokeRoundedRect(dst, x, y, c, c, 2, 1.5, clr)
	}
}

func iconFingerprint(dst *ebiten.Image, cx, cy, s float64, clr color.Color) {
	for i := 1; i <= 4; i++ {
		r := s / 2 * float64(i) / 4
		strokeArc(dst, cx, cy+s*0.1, r, math.Pi*1.05, math.Pi*1.95+float64(i)*0.1, 1.4, clr)
	}
	strokeLine(dst, cx, cy+s*0.1, cx, cy+s/2, 1.4, clr)
}

func iconZap(dst *ebiten.Image, cx, cy, s float64, clr color.Color) {
	h := s / 2
	var p vector.Path
	p.MoveTo(float32(cx+h*0.2), float32(cy-h))
	p.LineTo(float32(cx-h*0.7), float32(cy+h*0.15))
	p.LineTo(float32(cx), float32(cy+h*0.15))
	p.LineTo(float32(cx-h*0.2), float32(cy+h))
	p.LineTo(float32(cx+h*0.7), float32(cy-h*0.15))
	p.LineTo(float32(cx), float32(cy-h*0.15))
	p.Close()
	strokePath(dst, &p, 1.6, clr)
}

func iconGift(dst *ebiten.Image, cx, cy, s float64, clr color.Color) {
	h := s / 2
	strokeRoundedRect(dst, cx-h, cy-h*0.3, s, h*1.3, 2, 2, clr)
	strokeLine(dst, cx-h*1.1, cy-h*0.3, cx+h*1.1, cy-h*0.3, 2, clr)
	strokeLine(dst, cx, cy-h*0.3, cx, cy+h, 2, clr)
	strokeArc(dst, cx-h*0.3, cy-h*0.5, h*0.3, math.Pi*0.2, math.Pi*1.8, 2, clr)
	strokeArc(dst, cx+h*0.3, cy-h*0.5, h*0.3, -math.Pi*0.8, math.Pi*0.8, 2, clr)
}

func iconRetry(dst *ebiten.Image, cx, cy, s float64, clr color.Color) {
	r := s / 2
	strokeArc(dst, cx, cy, r, -math.Pi*0.9, math.Pi*0.6, 2, clr)
	ax, ay := cx+r*math.Cos(-math.Pi*0.9), cy+r*math.Sin(-math.Pi*0.9)
	strokeLine(dst, ax, ay, ax, ay-r*0.6, 2, clr)
	strokeLine(dst, ax, ay, ax+r*0.6, ay, 2, clr)
}

func iconMessage(dst *ebiten.Image, cx, cy, s float64, clr color.Color) {
	r := s / 2
	strokeCircle(dst, cx, cy, r*0.85, 2, clr)
	strokeLine(dst, cx-r*0.6, cy+r*0.6, cx-r*0.95, cy+r*0.95, 2, clr)
}

func iconActivity(dst *ebiten.Image, cx, cy, s float64, clr color.Color) {
	h := s / 2
	pts := [][2]float64{{-1, 0}, {-0.5, 0}, {-0.25, -0.8}, {0.2, 0.8}, {0.45, 0}, {1, 0}}
	for i := 1; i < len(pts); i++ {
		strokeLine(dst, cx+pts[i-1][0]*h, cy+pts[i-1][1]*h, cx+pts[i][0]*h, cy+pts[i][1]*h, 1.6, clr)
	}
}

// 小游戏道具图标：钢笔、调色板、图层

func iconPen(dst *ebiten.Image, cx, cy, s float64, clr color.Color) {
	h := s / 2
	var p vector.Path
	p.MoveTo(float32(cx), float32(cy-h))
	p.LineTo(float32(cx+h*0.6), float32(cy+h*0.2))
	p.LineTo(float32(cx), float32(cy+h))
	p.LineTo(float32(cx-h*0.6), float32(cy+h*0.2))
	p.Close()
	strokePath(dst, &p, 1.6, clr)
	fillCircle(dst, cx, cy+h*0.15, s*0.08, clr)
}

func iconPalette(dst *ebiten.Image, cx, cy, s float64, clr color.Color) {
	r := s / 2
	strokeArc(dst, cx, cy, r, math.Pi*0.35, math.Pi*2.15, 1.6, clr)
	fillCircle(dst, cx-r*0.4, cy-r*0.3, s*0.07, clr)
	fillCircle(dst, cx+r*0.1, cy-r*0.5, s*0.07, clr)
	fillCircle(dst, cx+r*0.5, cy-r*0.1, s*0.07, clr)
}

func iconLayers(dst *ebiten.Image, cx, cy, s float64, clr color.Color) {
	h := s / 2
	for i := 0; i < 3; i++ {
		y := cy - h*0.5 + float64(i)*h*0.45
		var p vector.Path
		p.MoveTo(float32(cx), float32(y-h*0.35))
		p.LineTo(float32(cx+h), float32(y))
		p.LineTo(float32(cx), float32(y+h*0.35))
		p.LineTo(float32(cx-h), float32(y))
		p.Close()
		strokePath(dst, &p, 1.4, clr)
	}
}
