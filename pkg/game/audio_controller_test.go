package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/decker502/reportdeck/pkg/config"
	"github.com/decker502/reportdeck/pkg/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// fakeTrack 记录播放状态与音量的测试音轨
type fakeTrack struct {
	playing bool
	volume  float64
	plays   int
}

func (f *fakeTrack) Play()               { f.playing = true; f.plays++ }
func (f *fakeTrack) Pause()              { f.playing = false }
func (f *fakeTrack) IsPlaying() bool     { return f.playing }
func (f *fakeTrack) SetVolume(v float64) { f.volume = v }
func (f *fakeTrack) Volume() float64     { return f.volume }

func readyLoader(track Track) TrackLoader {
	return func(context.Context) (Track, error) { return track, nil }
}

func newTestAudio(t *testing.T) (*AudioController, *schedule.Scheduler) {
	t.Helper()
	sched := schedule.NewScheduler()
	ac := NewAudioController(config.DefaultAppConfig().Audio, sched, nil)
	t.Cleanup(ac.Close)
	return ac, sched
}

// waitReady 等待后台加载完成并在主循环中处理结果
func waitReady(t *testing.T, ac *AudioController) {
	t.Helper()
	require.Eventually(t, func() bool {
		ac.Update()
		return !ac.Loading()
	}, time.Second, time.Millisecond)
}

func TestAudioFadeIn(t *testing.T) {
	ac, sched := newTestAudio(t)
	track := &fakeTrack{volume: 1}

	ac.StartLoading(readyLoader(track))
	waitReady(t, ac)
	require.True(t, ac.Ready())

	ac.Activate()
	assert.True(t, track.playing)
	assert.True(t, ac.IsPlaying())
	assert.Equal(t, 0.0, track.volume, "fade starts from silence")

	sched.Advance(100 * time.Millisecond)
	assert.InDelta(t, 0.05, track.volume, 1e-9)

	prev := track.volume
	for i := 0; i < 20; i++ {
		sched.Advance(100 * time.Millisecond)
		assert.GreaterOrEqual(t, track.volume, prev, "volume never decreases during fade")
		assert.LessOrEqual(t, track.volume, 0.5)
		prev = track.volume
	}
	assert.Equal(t, 0.5, track.volume)
	assert.Equal(t, 0, sched.Len(), "fade timer stops at the target")

	// 再次激活不会重新淡入
	ac.Activate()
	assert.Equal(t, 1, track.plays)
}

func TestAudioActivateBeforeReady(t *testing.T) {
	ac, sched := newTestAudio(t)
	track := &fakeTrack{}
	release := make(chan struct{})

	ac.StartLoading(func(ctx context.Context) (Track, error) {
		select {
		case <-release:
			return track, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})

	ac.Activate()
	assert.False(t, ac.IsPlaying(), "cannot play before the track is ready")

	close(release)
	waitReady(t, ac)

	assert.True(t, ac.IsPlaying(), "pending activation starts playback when ready")
	sched.Advance(time.Second)
	assert.Greater(t, track.volume, 0.0)
}

func TestAudioLoadFailureStaysPaused(t *testing.T) {
	ac, _ := newTestAudio(t)

	ac.StartLoading(func(context.Context) (Track, error) {
		return nil, errors.New("autoplay rejected")
	})
	ac.Activate()
	waitReady(t, ac)

	assert.False(t, ac.Ready())
	assert.False(t, ac.IsPlaying())

	// 没有音轨时切换播放无效
	ac.TogglePlay()
	assert.False(t, ac.IsPlaying())
}

func TestAudioTogglePlay(t *testing.T) {
	ac, _ := newTestAudio(t)
	track := &fakeTrack{}
	ac.StartLoading(readyLoader(track))
	waitReady(t, ac)

	ac.TogglePlay()
	assert.True(t, track.playing)
	assert.Equal(t, 0.5, track.volume, "direct play uses the target volume")

	ac.TogglePlay()
	assert.False(t, track.playing)
	assert.False(t, ac.IsPlaying())
}

func TestAudioMuteIndependentOfPlay(t *testing.T) {
	ac, sched := newTestAudio(t)
	track := &fakeTrack{}
	ac.StartLoading(readyLoader(track))
	waitReady(t, ac)

	ac.Activate()
	sched.Advance(2 * time.Second)
	require.Equal(t, 0.5, track.volume)

	ac.ToggleMute()
	assert.True(t, ac.IsMuted())
	assert.Equal(t, 0.0, track.volume)
	assert.True(t, ac.IsPlaying(), "mute does not pause")

	ac.TogglePlay()
	ac.TogglePlay()
	assert.Equal(t, 0.0, track.volume, "still muted after play toggles")

	ac.ToggleMute()
	assert.Equal(t, 0.5, track.volume, "unmute restores the faded level")
}

func TestAudioMuteDuringFade(t *testing.T) {
	ac, sched := newTestAudio(t)
	track := &fakeTrack{}
	ac.StartLoading(readyLoader(track))
	waitReady(t, ac)

	ac.Activate()
	ac.ToggleMute()
	sched.Advance(2 * time.Second)

	assert.Equal(t, 0.0, track.volume)
	assert.Equal(t, 0.5, ac.Volume(), "fade continues while muted")
}

func TestAudioMutePersisted(t *testing.T) {
	settings := NewSettingsManager(nil)
	sched := schedule.NewScheduler()

	ac := NewAudioController(config.DefaultAppConfig().Audio, sched, settings)
	ac.ToggleMute()
	assert.True(t, settings.GetSettings().Muted)

	restored := NewAudioController(config.DefaultAppConfig().Audio, sched, settings)
	assert.True(t, restored.IsMuted())
}

func TestAudioCloseStopsLoader(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	sched := schedule.NewScheduler()
	ac := NewAudioController(config.DefaultAppConfig().Audio, sched, nil)

	ac.StartLoading(func(ctx context.Context) (Track, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	assert.True(t, ac.Loading())

	ac.Close()
}
