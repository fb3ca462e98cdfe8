package views

import (
	"image"
	"math/rand"

	"github.com/decker502/reportdeck/pkg/config"
	"github.com/decker502/reportdeck/pkg/input"
	"github.com/decker502/reportdeck/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// progressSmoothing 进度条每秒向目标逼近的速率
const progressSmoothing = 8.0

// Renderer 把 Model 绘制成完整画面
//
// 绘制顺序（后者在上层）：背景、幻灯片（含切换动画）、固定界面、小游戏覆盖层、开场弹窗。
// 幻灯片先画到离屏图层，再整体平移和淡入淡出。
type Renderer struct {
	fonts      *Fonts
	background *Background
	slides     []Slide
	overlay    gameOverlay

	current  *ebiten.Image
	previous *ebiten.Image

	elapsed  float64
	progress float64
	hotspots []input.Hotspot

	touch func() bool
}

// NewRenderer 创建渲染器
func NewRenderer(fonts *Fonts, rng *rand.Rand) *Renderer {
	return &Renderer{
		fonts:      fonts,
		background: NewBackground(rng),
		slides:     Slides(),
		current:    ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight),
		previous:   ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight),
		touch:      utils.IsTouchDevice,
	}
}

// Update 推进装饰动画
func (r *Renderer) Update(dt float64, m Model) {
	r.elapsed += dt
	target := 0.0
	if m.Count > 0 {
		target = float64(m.Page+1) / float64(m.Count)
	}
	r.progress += (target - r.progress) * utils.Clamp(dt*progressSmoothing, 0, 1)
}

// PlayArea 小游戏可点击跳跃的区域
func (r *Renderer) PlayArea() image.Rectangle {
	return rectOf(config.GetGamePlayArea())
}

// Draw 绘制一帧
// 返回：本帧的可点击热区（按绘制顺序，后者在上层）
func (r *Renderer) Draw(screen *ebiten.Image, m Model) []input.Hotspot {
	f := &Frame{
		Model:    m,
		Fonts:    r.fonts,
		Seconds:  r.elapsed,
		Touch:    r.touch(),
		hotspots: r.hotspots[:0],
	}

	r.background.Draw(screen, r.elapsed)
	r.drawSlides(screen, f)
	drawChrome(screen, f, r.progress)

	if m.State.GameActive {
		r.overlay.Draw(screen, f)
	}
	if m.State.ShowIntro {
		drawIntro(screen, f)
	}

	r.hotspots = f.Hotspots()
	return r.hotspots
}

// drawSlides 绘制当前页；切换中同时绘制离开的一页
// 进入页从 direction 一侧整屏滑入并淡入，离开页反向移动半屏并淡出
func (r *Renderer) drawSlides(screen *ebiten.Image, f *Frame) {
	t := utils.Clamp(f.Transition, 0, 1)
	settled := t >= 1 || f.Previous == f.Page
	h := float64(config.GameWindowHeight)

	if !settled && r.valid(f.Previous) {
		r.previous.Clear()
		r.slides[f.Previous].Draw(r.previous, f)

		k := utils.EaseInCubic(t)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, -float64(f.Direction)*h*0.5*k)
		op.ColorScale.ScaleAlpha(float32(1 - t))
		screen.DrawImage(r.previous, op)
	}

	if !r.valid(f.Page) {
		return
	}
	f.linksActive = settled
	r.current.Clear()
	r.slides[f.Page].Draw(r.current, f)
	f.linksActive = false

	op := &ebiten.DrawImageOptions{}
	if !settled {
		k := utils.EaseOutCubic(t)
		op.GeoM.Translate(0, float64(f.Direction)*h*(1-k))
		op.ColorScale.ScaleAlpha(float32(k))
	}
	screen.DrawImage(r.current, op)
}

func (r *Renderer) valid(i int) bool {
	return i >= 0 && i < len(r.slides)
}
