package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the application (currently only the grid view).
// The host loop drives it: Update once per tick, Draw once per frame.
type Scene interface {
	// Update advances the scene by deltaTime seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Exiter 是一个可选接口，场景被替换时调用 OnExit
//
// 用于在场景退出时输出统计日志或释放资源。
type Exiter interface {
	OnExit()
}
