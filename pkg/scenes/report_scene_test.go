package scenes

import (
	"image"
	"math/rand"
	"os"
	"testing"

	"github.com/decker502/reportdeck/pkg/config"
	"github.com/decker502/reportdeck/pkg/embedded"
	"github.com/decker502/reportdeck/pkg/game"
	"github.com/decker502/reportdeck/pkg/input"
	"github.com/decker502/reportdeck/pkg/schedule"
	"github.com/decker502/reportdeck/pkg/views"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedEvents replays one batch of events per Poll and records what it was given.
type scriptedEvents struct {
	batches  [][]input.Event
	modes    []input.Mode
	hotspots [][]input.Hotspot
}

func (s *scriptedEvents) Poll(mode input.Mode, hotspots []input.Hotspot, _ image.Rectangle) []input.Event {
	s.modes = append(s.modes, mode)
	s.hotspots = append(s.hotspots, hotspots)
	if len(s.batches) == 0 {
		return nil
	}
	batch := s.batches[0]
	s.batches = s.batches[1:]
	return batch
}

func newTestScene(t *testing.T, events EventSource) (*ReportScene, *game.Shell) {
	t.Helper()
	embedded.InitFS(os.DirFS("../.."))
	t.Cleanup(func() { embedded.InitFS(nil) })

	store, err := game.LoadContentStore()
	require.NoError(t, err)
	fonts, err := views.LoadFonts(game.NewResourceManager(nil, nil))
	require.NoError(t, err)

	shell := game.NewShell(game.ShellConfig{
		App:       config.DefaultAppConfig(),
		MiniGame:  config.DefaultMiniGameConfig(),
		Content:   store,
		Scheduler: schedule.NewScheduler(),
		Language:  game.LanguageEN,
		Rand:      rand.New(rand.NewSource(1)),
	})
	scene := NewReportScene(shell, views.NewRenderer(fonts, rand.New(rand.NewSource(1))), events)
	t.Cleanup(scene.Close)
	return scene, shell
}

// TestReportSceneDispatchesPolledEvents tests that polled events reach the shell in order.
func TestReportSceneDispatchesPolledEvents(t *testing.T) {
	events := &scriptedEvents{batches: [][]input.Event{
		{input.Navigate(1)}, // ignored while the intro is showing
		{input.Of(input.KindStartExperience)},
		{input.Navigate(1)},
	}}
	scene, shell := newTestScene(t, events)

	for i := 0; i < 3; i++ {
		scene.Update(1.0 / 60)
	}

	assert.Equal(t, []input.Mode{input.ModeIntro, input.ModeIntro, input.ModeDeck}, events.modes)
	assert.False(t, shell.State().ShowIntro)
	assert.Equal(t, 1, shell.Pager().Index())
}

// TestReportSceneFeedsHotspotsBack tests that Draw's hotspots are used by the next poll.
func TestReportSceneFeedsHotspotsBack(t *testing.T) {
	events := &scriptedEvents{}
	scene, _ := newTestScene(t, events)
	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)

	scene.Update(1.0 / 60)
	assert.Empty(t, events.hotspots[0], "nothing drawn yet")

	scene.Draw(screen)
	scene.Update(1.0 / 60)

	var start bool
	for _, h := range events.hotspots[1] {
		if h.Event.Kind == input.KindStartExperience {
			start = true
		}
	}
	assert.True(t, start, "intro button hotspot is polled on the next tick")
}
