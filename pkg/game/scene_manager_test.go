package game

import (
	"testing"

	"github.com/decker502/reportdeck/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

// recordingScene 记录调用情况的场景
type recordingScene struct {
	updates []float64
	draws   int
	closed  int
}

func (s *recordingScene) Update(deltaTime float64) { s.updates = append(s.updates, deltaTime) }
func (s *recordingScene) Draw(*ebiten.Image)       { s.draws++ }
func (s *recordingScene) Close()                   { s.closed++ }

// plainScene 不实现 Closer 的场景
type plainScene struct{ updates int }

func (s *plainScene) Update(float64)     { s.updates++ }
func (s *plainScene) Draw(*ebiten.Image) {}

// TestSceneManagerWithoutScene 没有场景时 Update / Draw / Close 都是空操作
func TestSceneManagerWithoutScene(t *testing.T) {
	sm := NewSceneManager()
	assert.Nil(t, sm.GetCurrentScene())

	sm.Update(1.0 / 60)
	sm.Draw(ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight))
	sm.Close()
}

// TestSceneManagerForwardsTicks 只有当前场景收到 Update 与 Draw
func TestSceneManagerForwardsTicks(t *testing.T) {
	sm := NewSceneManager()
	first, second := &recordingScene{}, &recordingScene{}
	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)

	sm.SwitchTo(first)
	sm.Update(1.0 / 60)
	sm.Draw(screen)

	sm.SwitchTo(second)
	sm.Update(1.0 / 60)
	sm.Update(1.0 / 60)

	assert.Equal(t, []float64{1.0 / 60}, first.updates)
	assert.Equal(t, 1, first.draws)
	assert.Len(t, second.updates, 2)
	assert.Zero(t, second.draws)
	assert.Same(t, second, sm.GetCurrentScene())
}

// TestSceneManagerClosesReplacedScene 切换与退出时关闭旧场景，重复选择同一场景不关闭
func TestSceneManagerClosesReplacedScene(t *testing.T) {
	sm := NewSceneManager()
	first, second := &recordingScene{}, &recordingScene{}

	sm.SwitchTo(first)
	sm.SwitchTo(first)
	assert.Zero(t, first.closed)

	sm.SwitchTo(second)
	assert.Equal(t, 1, first.closed)

	sm.Close()
	assert.Equal(t, 1, second.closed)
	assert.Nil(t, sm.GetCurrentScene())

	// 不实现 Closer 的场景也可以被替换
	plain := &plainScene{}
	sm.SwitchTo(plain)
	sm.SwitchTo(first)
	sm.Update(1.0 / 60)
	assert.Zero(t, plain.updates)
}
