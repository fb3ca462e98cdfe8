package game

import (
	"context"
	"log"
	"math"
	"sync"

	"github.com/decker502/reportdeck/pkg/config"
	"github.com/decker502/reportdeck/pkg/schedule"
)

// Track 可循环播放的背景音轨
// *audio.Player 满足此接口
type Track interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
	Volume() float64
}

// TrackLoader 异步加载音轨，ctx 取消时应尽快返回
type TrackLoader func(ctx context.Context) (Track, error)

type trackResult struct {
	track Track
	err   error
}

// AudioController 背景音乐控制器
// 职责：
//   - 在后台 goroutine 中加载唯一的背景音轨，结果通过 channel 交回主循环
//   - 首次激活时从 0 淡入到目标音量
//   - 播放/暂停与静音互相独立；静音通过把输出音量设为 0 实现
//
// 除 loader goroutine 外，所有状态只在游戏主循环中修改。
type AudioController struct {
	config    config.AudioConfig
	scheduler *schedule.Scheduler
	settings  *SettingsManager // 可为 nil

	track   Track
	results chan trackResult
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	loading bool

	activated   bool // 已收到首次激活
	pendingPlay bool // 激活时音轨尚未就绪
	playing     bool
	muted       bool
	level       float64 // 未静音时的音量
	fade        schedule.Handle
}

// NewAudioController 创建背景音乐控制器
//
// 参数：
//   - cfg: 音频配置（淡入参数）
//   - scheduler: 淡入计时
//   - settings: 用于恢复与保存静音状态，可为 nil
func NewAudioController(cfg config.AudioConfig, scheduler *schedule.Scheduler, settings *SettingsManager) *AudioController {
	ac := &AudioController{
		config:    cfg,
		scheduler: scheduler,
		settings:  settings,
		results:   make(chan trackResult, 1),
	}
	if settings != nil {
		ac.muted = settings.GetSettings().Muted
	}
	return ac
}

// StartLoading 在后台加载音轨
// 重复调用无效；加载结果在 Update 中处理
func (ac *AudioController) StartLoading(loader TrackLoader) {
	if loader == nil || ac.loading || ac.track != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	ac.cancel = cancel
	ac.loading = true

	ac.wg.Add(1)
	go func() {
		defer ac.wg.Done()
		track, err := loader(ctx)
		ac.results <- trackResult{track: track, err: err}
	}()
}

// Update 处理后台加载结果（每帧调用）
func (ac *AudioController) Update() {
	if !ac.loading {
		return
	}

	select {
	case res := <-ac.results:
		ac.loading = false
		if res.err != nil {
			log.Printf("[AudioController] Failed to load background track: %v (audio stays paused)", res.err)
			ac.pendingPlay = false
			return
		}
		if res.track == nil {
			log.Printf("[AudioController] Loader returned no track (audio stays paused)")
			ac.pendingPlay = false
			return
		}
		ac.track = res.track
		ac.applyVolume()
		log.Printf("[AudioController] Background track ready")

		if ac.pendingPlay {
			ac.pendingPlay = false
			ac.startWithFade()
		}
	default:
	}
}

// Activate 首次激活（开场弹窗按钮）：开始播放并淡入
// 音轨未就绪时，在就绪后立即开始
func (ac *AudioController) Activate() {
	if ac.activated {
		return
	}
	ac.activated = true

	if ac.track == nil {
		if ac.loading {
			ac.pendingPlay = true
		} else {
			log.Printf("[AudioController] No background track available")
		}
		return
	}
	ac.startWithFade()
}

func (ac *AudioController) startWithFade() {
	if ac.playing {
		return
	}
	ac.level = 0
	ac.applyVolume()
	ac.track.Play()
	ac.playing = true

	ac.cancelFade()
	ac.fade = ac.scheduler.Every(ac.config.FadeInterval(), ac.fadeStep)
}

// fadeStep 每个间隔提升一次音量，到达目标后停止
func (ac *AudioController) fadeStep() {
	if ac.level < ac.config.FadeTarget {
		ac.level = math.Min(ac.config.FadeTarget, ac.level+ac.config.FadeStep)
		ac.applyVolume()
		return
	}
	ac.cancelFade()
}

func (ac *AudioController) cancelFade() {
	if ac.fade != 0 {
		ac.scheduler.Cancel(ac.fade)
		ac.fade = 0
	}
}

// TogglePlay 切换播放/暂停，音轨不可用时无效
func (ac *AudioController) TogglePlay() {
	if ac.track == nil {
		return
	}

	if ac.playing {
		ac.track.Pause()
		ac.playing = false
		return
	}

	// 未经淡入直接播放时使用目标音量
	if ac.level == 0 && ac.fade == 0 {
		ac.level = ac.config.FadeTarget
		ac.applyVolume()
	}
	ac.track.Play()
	ac.playing = true
}

// ToggleMute 切换静音，与播放状态无关
func (ac *AudioController) ToggleMute() {
	ac.muted = !ac.muted
	ac.applyVolume()

	if ac.settings != nil {
		ac.settings.SetMuted(ac.muted)
		ac.settings.saveQuietly()
	}
}

func (ac *AudioController) applyVolume() {
	if ac.track == nil {
		return
	}
	if ac.muted {
		ac.track.SetVolume(0)
		return
	}
	ac.track.SetVolume(ac.level)
}

// IsPlaying 用户意图上是否在播放
func (ac *AudioController) IsPlaying() bool {
	return ac.playing
}

// IsMuted 是否静音
func (ac *AudioController) IsMuted() bool {
	return ac.muted
}

// Volume 未静音时的音量
func (ac *AudioController) Volume() float64 {
	return ac.level
}

// Ready 音轨是否已就绪
func (ac *AudioController) Ready() bool {
	return ac.track != nil
}

// Loading 音轨是否仍在加载
func (ac *AudioController) Loading() bool {
	return ac.loading
}

// Close 取消加载、停止播放并等待后台 goroutine 退出
func (ac *AudioController) Close() {
	if ac.cancel != nil {
		ac.cancel()
	}
	ac.wg.Wait()
	ac.cancelFade()

	if ac.track != nil && ac.playing {
		ac.track.Pause()
	}
	ac.playing = false
}
