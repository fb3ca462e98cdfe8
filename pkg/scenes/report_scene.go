package scenes

import (
	"image"
	"log"
	"time"

	"github.com/decker502/reportdeck/pkg/game"
	"github.com/decker502/reportdeck/pkg/input"
	"github.com/decker502/reportdeck/pkg/views"
	"github.com/hajimehoshi/ebiten/v2"
)

// EventSource translates the current frame's raw input into events.
// *input.Poller is the production implementation.
type EventSource interface {
	Poll(mode input.Mode, hotspots []input.Hotspot, playArea image.Rectangle) []input.Event
}

// ReportScene is the only scene of the report: the slide deck, its chrome,
// the mini-game overlay and the intro modal.
//
// Update order per tick:
//  1. poll input against the hotspots registered by the previous Draw
//  2. dispatch events to the shell
//  3. advance the shell clock (pager transitions, audio fades, mini-game frames)
//  4. advance decorative animation
type ReportScene struct {
	shell    *game.Shell
	renderer *views.Renderer
	events   EventSource

	hotspots []input.Hotspot
}

var (
	_ Scene       = (*ReportScene)(nil)
	_ game.Closer = (*ReportScene)(nil)
)

// NewReportScene creates the report scene.
func NewReportScene(shell *game.Shell, renderer *views.Renderer, events EventSource) *ReportScene {
	return &ReportScene{
		shell:    shell,
		renderer: renderer,
		events:   events,
	}
}

// Update implements game.Scene.
func (s *ReportScene) Update(deltaTime float64) {
	for _, e := range s.events.Poll(s.shell.Mode(), s.hotspots, s.renderer.PlayArea()) {
		if s.shell.Dispatch(e) {
			log.Printf("[ReportScene] %s accepted", e)
		}
	}

	s.shell.Update(time.Duration(deltaTime * float64(time.Second)))
	s.renderer.Update(deltaTime, views.Snapshot(s.shell))
}

// Draw implements game.Scene.
func (s *ReportScene) Draw(screen *ebiten.Image) {
	s.hotspots = s.renderer.Draw(screen, views.Snapshot(s.shell))
}

// Close implements game.Closer.
func (s *ReportScene) Close() {
	s.shell.Close()
}
