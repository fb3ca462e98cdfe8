package views

import (
	"math"
	"math/rand"

	"github.com/decker502/reportdeck/pkg/config"
	"github.com/decker502/reportdeck/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// particleCount 背景漂浮粒子数量
const particleCount = 20

// particle 一个向上漂浮并淡入淡出的光点
// 位置只由时间决定，不需要逐帧积分
type particle struct {
	x, y   float64 // 起点
	rise   float64 // 一个周期内上升的距离
	period float64 // 周期（秒）
	phase  float64 // 初始相位（秒）
	peak   float64 // 最大不透明度
}

// position 返回 t 秒时的位置与不透明度
func (p particle) position(t float64) (x, y, alpha float64) {
	k := math.Mod(t+p.phase, p.period) / p.period
	return p.x, p.y - p.rise*k, p.peak * math.Sin(math.Pi*k)
}

// Background 背景：漂浮粒子与两团缓慢脉动的渐变光晕
type Background struct {
	particles []particle
}

// NewBackground 用 rng 生成粒子布局
func NewBackground(rng *rand.Rand) *Background {
	b := &Background{particles: make([]particle, particleCount)}
	for i := range b.particles {
		b.particles[i] = particle{
			x:      rng.Float64() * config.GameWindowWidth,
			y:      rng.Float64() * config.GameWindowHeight,
			rise:   rng.Float64() * 100,
			period: 10 + rng.Float64()*20,
			phase:  rng.Float64() * 30,
			peak:   rng.Float64() * 0.5,
		}
	}
	return b
}

// Draw 绘制背景
func (b *Background) Draw(dst *ebiten.Image, seconds float64) {
	dst.Fill(colorBackground)

	// 右上：蓝色光晕，20 秒一个周期
	k1 := utils.Pulse(seconds, 20)
	fillRadialGlow(dst,
		config.GameWindowWidth*0.9, -config.GameWindowHeight*0.1,
		400*(1+0.2*k1), colorBlue900, 0.1+0.1*k1)

	// 左下：青绿光晕，25 秒一个周期，延迟 2 秒
	k2 := utils.Pulse(math.Max(0, seconds-2), 25)
	fillRadialGlow(dst,
		config.GameWindowWidth*0.1, config.GameWindowHeight*1.1,
		300*(1+0.3*k2), colorAccent, 0.05+0.1*k2)

	for _, p := range b.particles {
		x, y, a := p.position(seconds)
		fillCircle(dst, x, y, 1.5, withAlpha(colorAccent, a))
	}
}
