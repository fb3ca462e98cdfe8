package views

import (
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/decker502/reportdeck/pkg/config"
	"github.com/decker502/reportdeck/pkg/embedded"
	"github.com/decker502/reportdeck/pkg/game"
	"github.com/decker502/reportdeck/pkg/input"
	"github.com/decker502/reportdeck/pkg/minigame"
	"github.com/decker502/reportdeck/pkg/schedule"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRenderer 使用仓库内的内容包与内置字体
func newTestRenderer(t *testing.T) (*Renderer, *config.ContentData) {
	t.Helper()
	embedded.InitFS(os.DirFS("../.."))
	t.Cleanup(func() { embedded.InitFS(nil) })

	store, err := game.LoadContentStore()
	require.NoError(t, err)
	fonts, err := LoadFonts(game.NewResourceManager(nil, nil))
	require.NoError(t, err)

	r := NewRenderer(fonts, rand.New(rand.NewSource(1)))
	r.touch = func() bool { return false }
	return r, store.Get(game.LanguageEN)
}

// deckModel 已关闭开场弹窗、停在第 page 页的快照
func deckModel(content *config.ContentData, page int) Model {
	return Model{
		State:      game.AppState{Language: game.LanguageEN, AudioEnabled: true},
		Content:    content,
		Language:   game.LanguageEN,
		Page:       page,
		Previous:   page,
		Count:      config.SlideCount,
		Transition: 1,
		Audio:      AudioStatus{Available: true},
	}
}

func kindsOf(hotspots []input.Hotspot) map[input.Kind]int {
	kinds := make(map[input.Kind]int)
	for _, h := range hotspots {
		kinds[h.Event.Kind]++
	}
	return kinds
}

func linksOf(hotspots []input.Hotspot) []int {
	var links []int
	for _, h := range hotspots {
		if h.Event.Kind == input.KindOpenLink {
			links = append(links, h.Event.Value)
		}
	}
	return links
}

// TestSlidesOrder 幻灯片数量与顺序固定
func TestSlidesOrder(t *testing.T) {
	slides := Slides()
	require.Len(t, slides, config.SlideCount)

	names := make([]string, len(slides))
	for i, s := range slides {
		names[i] = s.Name()
	}
	assert.Equal(t, []string{"hero", "executive", "portfolio", "uxui", "visual", "multimedia", "conclusion"}, names)
}

// TestSplitName 测试封面姓名拆分
func TestSplitName(t *testing.T) {
	tests := []struct {
		name        string
		first, rest string
	}{
		{"Seyid Ahmet Turgut", "Seyid", "Ahmet Turgut"},
		{"Seyid", "Seyid", ""},
		{"  ", "", ""},
	}
	for _, tt := range tests {
		first, rest := splitName(tt.name)
		assert.Equal(t, tt.first, first, tt.name)
		assert.Equal(t, tt.rest, rest, tt.name)
	}
}

// TestInitials 标志取前两个词的首字母
func TestInitials(t *testing.T) {
	assert.Equal(t, "ST", initials("Seyid Turgut"))
	assert.Equal(t, "ŞT", initials("Şeyma Tan Yılmaz"))
	assert.Equal(t, "", initials(""))
}

// TestParticlesStayOnScreen 粒子位置只依赖时间且不越界
func TestParticlesStayOnScreen(t *testing.T) {
	bg := NewBackground(rand.New(rand.NewSource(7)))
	require.Len(t, bg.particles, particleCount)

	for _, p := range bg.particles {
		for sec := 0.0; sec < 60; sec += 0.37 {
			x, y, alpha := p.position(sec)
			assert.True(t, x >= 0 && x <= config.GameWindowWidth, "x=%v", x)
			assert.True(t, y >= -config.GameWindowHeight && y <= config.GameWindowHeight, "y=%v", y)
			assert.True(t, alpha >= 0 && alpha <= 1, "alpha=%v", alpha)

			x2, y2, a2 := p.position(sec)
			assert.Equal(t, [3]float64{x, y, alpha}, [3]float64{x2, y2, a2})
		}
	}
}

// TestIntroIsModal 开场弹窗只留下开始按钮
func TestIntroIsModal(t *testing.T) {
	r, content := newTestRenderer(t)
	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)

	m := deckModel(content, 0)
	m.State.ShowIntro = true
	m.State.AudioEnabled = false

	kinds := kindsOf(r.Draw(screen, m))
	assert.Equal(t, map[input.Kind]int{input.KindNone: 1, input.KindStartExperience: 1}, kinds)
}

// TestDeckHotspots 桌面布局：顶栏、圆点、音频控制条
func TestDeckHotspots(t *testing.T) {
	r, content := newTestRenderer(t)
	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)

	kinds := kindsOf(r.Draw(screen, deckModel(content, 1)))
	assert.Equal(t, 1, kinds[input.KindToggleLanguage])
	assert.Equal(t, 1, kinds[input.KindOpenGame])
	assert.Equal(t, config.SlideCount, kinds[input.KindJumpTo])
	assert.Equal(t, 1, kinds[input.KindTogglePlay])
	assert.Equal(t, 1, kinds[input.KindToggleMute])
	assert.Zero(t, kinds[input.KindNavigate], "chevrons are touch only")

	m := deckModel(content, 1)
	m.Audio = AudioStatus{}
	kinds = kindsOf(r.Draw(screen, m))
	assert.Zero(t, kinds[input.KindTogglePlay], "audio bar hidden when audio is disabled")
}

// TestTouchChevrons 触屏布局：边界页的箭头不可点
func TestTouchChevrons(t *testing.T) {
	r, content := newTestRenderer(t)
	r.touch = func() bool { return true }
	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)

	tests := []struct {
		page int
		want []int
	}{
		{0, []int{1}},
		{3, []int{-1, 1}},
		{config.SlideCount - 1, []int{-1}},
	}
	for _, tt := range tests {
		var dirs []int
		for _, h := range r.Draw(screen, deckModel(content, tt.page)) {
			assert.NotEqual(t, input.KindJumpTo, h.Event.Kind, "dots are desktop only")
			if h.Event.Kind == input.KindNavigate {
				dirs = append(dirs, h.Event.Value)
			}
		}
		assert.Equal(t, tt.want, dirs, "page %d", tt.page)
	}
}

// TestPortfolioLinks 作品集页：网站在前，应用在后
func TestPortfolioLinks(t *testing.T) {
	r, content := newTestRenderer(t)
	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)

	p := content.Portfolio
	links := linksOf(r.Draw(screen, deckModel(content, 2)))
	require.Len(t, links, len(p.Websites)+len(p.Apps))
	for i, link := range links {
		assert.Equal(t, i, link)
	}

	// 切换动画中不可点
	m := deckModel(content, 2)
	m.Previous, m.Direction, m.Transition = 1, 1, 0.5
	assert.Empty(t, linksOf(r.Draw(screen, m)))
}

// TestConclusionProfileLink 结论页链接指向完整作品集
func TestConclusionProfileLink(t *testing.T) {
	r, content := newTestRenderer(t)
	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)

	links := linksOf(r.Draw(screen, deckModel(content, config.SlideCount-1)))
	require.NotEmpty(t, content.Portfolio.ProfileURL)
	assert.Equal(t, []int{len(content.Portfolio.Links()) - 1}, links)

	noProfile := *content
	noProfile.Portfolio.ProfileURL = ""
	assert.Empty(t, linksOf(r.Draw(screen, deckModel(&noProfile, config.SlideCount-1))))
}

// TestGameOverlayHotspots 小游戏覆盖层遮住幻灯片与顶栏
func TestGameOverlayHotspots(t *testing.T) {
	r, content := newTestRenderer(t)
	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)

	sched := schedule.NewScheduler()
	session := minigame.NewSession(config.DefaultMiniGameConfig(), sched, rand.New(rand.NewSource(1)))
	t.Cleanup(session.Close)

	m := deckModel(content, 2)
	m.State.GameActive = true
	m.Session = session

	kinds := kindsOf(r.Draw(screen, m))
	assert.Equal(t, map[input.Kind]int{input.KindCloseGame: 1}, kinds, "start panel: play area click starts the game")
	assert.Equal(t, config.GameWindowHeight-int(config.GameControlsHeight), r.PlayArea().Dy())

	session.Activate()
	for i := 0; i < 600 && session.Phase() == minigame.PhasePlaying; i++ {
		sched.Advance(time.Second / 60)
	}
	require.Equal(t, minigame.PhaseGameOver, session.Phase())

	hotspots := r.Draw(screen, m)
	kinds = kindsOf(hotspots)
	assert.Equal(t, 1, kinds[input.KindNone], "gameover panel blocks stray clicks")
	assert.Equal(t, 1, kinds[input.KindActivate], "try again")
	assert.Equal(t, input.KindCloseGame, hotspots[len(hotspots)-1].Event.Kind, "close button stays on top")
}

// TestWonPanelCoversTopBar 获胜面板盖住顶栏的关闭按钮，结束面板则不盖住
func TestWonPanelCoversTopBar(t *testing.T) {
	r, content := newTestRenderer(t)
	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)
	closeX := int(config.GameWindowWidth - chromeEdge - 20)
	closeY := int(config.GameTopBarHeight / 2)

	tests := []struct {
		phase minigame.Phase
		want  input.Kind
	}{
		{minigame.PhaseStart, input.KindCloseGame},
		{minigame.PhaseGameOver, input.KindCloseGame},
		{minigame.PhaseWon, input.KindNone},
	}
	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			f := &Frame{Model: deckModel(content, 2), Fonts: r.fonts}
			drawPhaseLayers(screen, f, tt.phase, 100)

			e, ok := input.HitTest(f.Hotspots(), closeX, closeY)
			require.True(t, ok)
			assert.Equal(t, tt.want, e.Kind)
		})
	}

	f := &Frame{Model: deckModel(content, 2), Fonts: r.fonts}
	drawPhaseLayers(screen, f, minigame.PhaseWon, 100)
	kinds := kindsOf(f.Hotspots())
	assert.Equal(t, 1, kinds[input.KindClaim])
	assert.Equal(t, 2, kinds[input.KindCloseGame], "top bar X underneath and the panel's Close button")
}

// TestProgressSmoothing 进度条逐帧逼近目标
func TestProgressSmoothing(t *testing.T) {
	r, content := newTestRenderer(t)
	m := deckModel(content, config.SlideCount-1)

	prev := r.progress
	for i := 0; i < 120; i++ {
		r.Update(1.0/60, m)
		assert.GreaterOrEqual(t, r.progress, prev)
		prev = r.progress
	}
	assert.InDelta(t, 1.0, r.progress, 0.01)
}
