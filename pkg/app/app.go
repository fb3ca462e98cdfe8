// Package app 提供报告应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/decker502/reportdeck/pkg/config"
	"github.com/decker502/reportdeck/pkg/game"
	"github.com/decker502/reportdeck/pkg/input"
	"github.com/decker502/reportdeck/pkg/scenes"
	"github.com/decker502/reportdeck/pkg/schedule"
	"github.com/decker502/reportdeck/pkg/utils"
	"github.com/decker502/reportdeck/pkg/views"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// sampleRate 音频上下文采样率
const sampleRate = 48000

// storageAppName gdata 存储目录名
const storageAppName = "reportdeck"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Language 启动语言（TR / EN），为空则使用上次保存的语言或配置默认值
	Language string
	// Fullscreen 以全屏启动（同时写入偏好设置）
	Fullscreen bool
	// NoAudio 不创建音频上下文，也不下载背景音乐
	NoAudio bool
	// SkipIntro 跳过开场弹窗
	SkipIntro bool
}

// App 是报告应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	appConfig    *config.AppConfig
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化报告应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	appConfig, err := config.LoadAppConfig(config.AppConfigPath)
	if err != nil {
		return nil, fmt.Errorf("应用配置加载失败: %w", err)
	}
	gameConfig, err := config.LoadMiniGameConfig(config.MiniGameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("小游戏配置加载失败: %w", err)
	}
	store, err := game.LoadContentStore()
	if err != nil {
		return nil, fmt.Errorf("内容包加载失败: %w", err)
	}

	settings := game.NewSettingsManager(openStorage())

	lang, err := ResolveLanguage(cfg.Language, settings, appConfig.DefaultLanguage)
	if err != nil {
		return nil, err
	}
	log.Printf("[App] Language: %s", lang)

	ebiten.SetFullscreen(applyFullscreenFlag(settings, cfg.Fullscreen))

	var audioContext *audio.Context
	if !cfg.NoAudio {
		audioContext = audio.NewContext(sampleRate)
	}
	resourceManager := game.NewResourceManager(audioContext, &http.Client{})

	fonts, err := views.LoadFonts(resourceManager)
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	scheduler := schedule.NewScheduler()

	var audioController *game.AudioController
	if audioContext != nil {
		audioController = game.NewAudioController(appConfig.Audio, scheduler, settings)
		audioController.StartLoading(resourceManager.MusicLoader(appConfig.Audio.Source, appConfig.Audio.FetchTimeout()))
		log.Printf("[App] Loading background track from %s", appConfig.Audio.Source)
	} else {
		log.Printf("[App] Audio disabled")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	shell := game.NewShell(game.ShellConfig{
		App:       appConfig,
		MiniGame:  gameConfig,
		Content:   store,
		Scheduler: scheduler,
		Audio:     audioController,
		Settings:  settings,
		Claimer:   game.NewClaimer(),
		Language:  lang,
		SkipIntro: cfg.SkipIntro,
		Rand:      rng,
	})

	renderer := views.NewRenderer(fonts, rng)
	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewReportScene(shell, renderer, input.NewPoller(appConfig.Navigation)))

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		appConfig:    appConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// openStorage 打开偏好设置存储，失败时返回 nil（降级为仅内存设置）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	manager, err := gdata.Open(gdata.Config{AppName: storageAppName})
	if err != nil {
		log.Printf("[App] Warning: preferences storage unavailable: %v", err)
		return nil
	}
	return manager
}

// ResolveLanguage 决定启动语言
//
// 优先级：命令行参数 > 上次保存的语言 > 配置默认值 > TR
// 命令行参数无效时返回错误，其余来源无效时跳过
func ResolveLanguage(flag string, settings *game.SettingsManager, fallback string) (game.Language, error) {
	if flag != "" {
		lang, err := game.ParseLanguage(flag)
		if err != nil {
			return "", fmt.Errorf("--lang: %w", err)
		}
		return lang, nil
	}
	if settings != nil {
		if lang, ok := settings.SavedLanguage(); ok {
			return lang, nil
		}
	}
	if lang, err := game.ParseLanguage(fallback); err == nil {
		return lang, nil
	}
	return game.LanguageTR, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.appConfig.Window.Width, a.appConfig.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.appConfig.Window.Width, a.appConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// applyFullscreenFlag 处理 --fullscreen：开启时写入偏好设置，返回启动时是否全屏
func applyFullscreenFlag(settings *game.SettingsManager, flag bool) bool {
	if flag && !settings.GetSettings().Fullscreen {
		settings.SetFullscreen(true)
		if err := settings.Save(); err != nil {
			log.Printf("[App] Warning: failed to save fullscreen preference: %v", err)
		}
	}
	return settings.GetSettings().Fullscreen
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}

	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save fullscreen preference: %v", err)
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// WindowConfig 返回窗口标题与初始尺寸
func (a *App) WindowConfig() config.WindowConfig {
	return a.appConfig.Window
}

// Close 停止后台加载并释放音频
func (a *App) Close() {
	a.sceneManager.Close()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
