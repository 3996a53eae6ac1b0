package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager controls which scene is active.
//
// SwitchTo 不会立即替换当前场景：新场景在下一次 Update 开始时生效，
// 保证一帧之内 Update 和 Draw 面对的是同一个场景。
type SceneManager struct {
	currentScene Scene
	pendingScene Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 请求切换场景，在下一次 Update 时生效
// 当前没有活动场景时立即生效
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene == nil {
		sm.currentScene = scene
		return
	}
	sm.pendingScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// applyPending 执行挂起的场景切换
func (sm *SceneManager) applyPending() {
	if sm.pendingScene == nil {
		return
	}
	if exiter, ok := sm.currentScene.(Exiter); ok {
		exiter.OnExit()
	}
	log.Printf("[SceneManager] 切换场景: %T -> %T", sm.currentScene, sm.pendingScene)
	sm.currentScene = sm.pendingScene
	sm.pendingScene = nil
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	sm.applyPending()
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
