package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/decker502/reportdeck/pkg/config"
	"github.com/decker502/reportdeck/pkg/input"
	"github.com/decker502/reportdeck/pkg/minigame"
	"github.com/decker502/reportdeck/pkg/schedule"
)

// ShellConfig Shell 的依赖与启动选项
type ShellConfig struct {
	App      *config.AppConfig
	MiniGame *config.MiniGameConfig
	Content  *ContentStore

	Scheduler *schedule.Scheduler
	Audio     *AudioController // 可为 nil（音频禁用）
	Settings  *SettingsManager // 可为 nil
	Claimer   *Claimer         // 可为 nil，领取与打开链接时只记录日志

	// Language 启动语言
	Language Language
	// SkipIntro 跳过开场弹窗（同时视为已启用音频）
	SkipIntro bool
	// Rand 小游戏随机源，nil 时使用当前时间作为种子
	Rand *rand.Rand
}

// Shell 组合根：持有顶层状态与所有子组件，负责把输入事件分发到正确的组件
//
// 分发规则：
//   - 开场弹窗显示时，幻灯片与小游戏都不接收输入
//   - 小游戏打开时，幻灯片不接收翻页
//   - 语言切换一次性替换整个内容对象
type Shell struct {
	state   AppState
	app     *config.AppConfig
	game    *config.MiniGameConfig
	store   *ContentStore
	content *config.ContentData

	scheduler *schedule.Scheduler
	pager     *Pager
	audio     *AudioController
	settings  *SettingsManager
	claimer   *Claimer
	rng       *rand.Rand

	session *minigame.Session
}

// NewShell 创建 Shell
func NewShell(cfg ShellConfig) *Shell {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Shell{
		state: AppState{
			Language:     cfg.Language,
			ShowIntro:    !cfg.SkipIntro,
			AudioEnabled: cfg.SkipIntro,
		},
		app:       cfg.App,
		game:      cfg.MiniGame,
		store:     cfg.Content,
		content:   cfg.Content.Get(cfg.Language),
		scheduler: cfg.Scheduler,
		audio:     cfg.Audio,
		settings:  cfg.Settings,
		claimer:   cfg.Claimer,
		rng:       rng,
	}

	s.pager = NewPager(cfg.Scheduler, config.SlideCount, cfg.App.Navigation.TransitionDuration())
	s.pager.SetBlocker(func() bool {
		return s.state.ShowIntro || s.state.GameActive
	})

	if cfg.SkipIntro && s.audio != nil {
		s.audio.Activate()
	}
	return s
}

// Dispatch 分发一个输入事件
// 返回：事件是否被某个组件接受
func (s *Shell) Dispatch(e input.Event) bool {
	switch e.Kind {
	case input.KindStartExperience:
		return s.startExperience()
	case input.KindToggleLanguage:
		s.setLanguage(s.state.Language.Toggle())
		return true
	case input.KindOpenGame:
		return s.openGame()
	case input.KindCloseGame:
		return s.closeGame()
	case input.KindActivate:
		if !s.state.GameActive || s.session == nil {
			return false
		}
		s.session.Activate()
		return true
	case input.KindNavigate:
		return s.pager.Advance(e.Value)
	case input.KindJumpTo:
		return s.pager.JumpTo(e.Value)
	case input.KindTogglePlay:
		if s.audio == nil {
			return false
		}
		s.audio.TogglePlay()
		return true
	case input.KindToggleMute:
		if s.audio == nil {
			return false
		}
		s.audio.ToggleMute()
		return true
	case input.KindClaim:
		return s.claim()
	case input.KindOpenLink:
		return s.openLink(e.Value)
	default:
		return false
	}
}

func (s *Shell) startExperience() bool {
	if !s.state.ShowIntro {
		return false
	}
	s.state.ShowIntro = false
	s.state.AudioEnabled = true
	if s.audio != nil {
		s.audio.Activate()
	}
	log.Printf("[Shell] Intro dismissed")
	return true
}

// setLanguage 切换语言，内容对象整体替换
func (s *Shell) setLanguage(lang Language) {
	content := s.store.Get(lang)
	if content == nil {
		log.Printf("[Shell] No content bundle for language %s", lang)
		return
	}
	s.state.Language = lang
	s.content = content

	if s.settings != nil {
		s.settings.SetLanguage(lang)
		s.settings.saveQuietly()
	}
	log.Printf("[Shell] Language switched to %s", lang)
}

func (s *Shell) openGame() bool {
	if s.state.ShowIntro || s.state.GameActive {
		return false
	}
	s.session = minigame.NewSession(s.game, s.scheduler, s.rng)
	s.state.GameActive = true
	log.Printf("[Shell] Mini-game opened")
	return true
}

func (s *Shell) closeGame() bool {
	if !s.state.GameActive {
		return false
	}
	if s.session != nil {
		s.session.Close()
		s.session = nil
	}
	s.state.GameActive = false
	log.Printf("[Shell] Mini-game closed")
	return true
}

func (s *Shell) claim() bool {
	if !s.state.GameActive || s.session == nil || !s.session.CanClaim() {
		return false
	}
	if s.claimer == nil {
		log.Printf("[Shell] Claim requested but no claimer is configured")
		return false
	}
	s.claimer.Claim(s.app.Claim.Phone, s.content.Game.WAMessage)
	return true
}

// openLink 打开作品集链接，只在幻灯片接收输入时有效
func (s *Shell) openLink(i int) bool {
	if s.Mode() != input.ModeDeck || s.claimer == nil {
		return false
	}
	links := s.content.Portfolio.Links()
	if i < 0 || i >= len(links) {
		return false
	}
	s.claimer.Open(links[i])
	return true
}

// Update 推进调度器（帧回调、防抖、淡入）并处理音频加载结果
func (s *Shell) Update(dt time.Duration) {
	s.scheduler.Advance(dt)
	if s.audio != nil {
		s.audio.Update()
	}
}

// Close 释放后台资源
func (s *Shell) Close() {
	s.closeGame()
	if s.audio != nil {
		s.audio.Close()
	}
}

// Mode 当前接收输入的层
func (s *Shell) Mode() input.Mode {
	switch {
	case s.state.ShowIntro:
		return input.ModeIntro
	case s.state.GameActive:
		return input.ModeGame
	default:
		return input.ModeDeck
	}
}

// State 返回顶层状态的副本
func (s *Shell) State() AppState {
	return s.state
}

// Content 当前语言的内容对象
func (s *Shell) Content() *config.ContentData {
	return s.content
}

// Language 当前语言
func (s *Shell) Language() Language {
	return s.state.Language
}

// Pager 幻灯片分页器
func (s *Shell) Pager() *Pager {
	return s.pager
}

// Audio 音频控制器，音频禁用时为 nil
func (s *Shell) Audio() *AudioController {
	return s.audio
}

// Session 当前小游戏会话，未打开时为 nil
func (s *Shell) Session() *minigame.Session {
	return s.session
}

// Scheduler 调度器
func (s *Shell) Scheduler() *schedule.Scheduler {
	return s.scheduler
}
