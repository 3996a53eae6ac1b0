// Package scenes 包含应用的场景实现
//
// 目前只有一个场景：GridScene，显示可悬停高亮的网格。
package scenes

import (
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/hovergrid/pkg/components"
	"github.com/decker502/hovergrid/pkg/config"
	"github.com/decker502/hovergrid/pkg/render"
	"github.com/decker502/hovergrid/pkg/systems"
	"github.com/decker502/hovergrid/pkg/types"
	"github.com/decker502/hovergrid/pkg/utils"
)

// ConfigLoader 重新读取配置（R 键）
type ConfigLoader func() (*config.AppConfig, error)

// editKeys 按键到编辑动作的映射
var editKeys = map[ebiten.Key]config.EditAction{
	ebiten.KeyBracketLeft:  config.EditInsetDecrease,
	ebiten.KeyBracketRight: config.EditInsetIncrease,
	ebiten.KeyArrowLeft:    config.EditWidthDecrease,
	ebiten.KeyArrowRight:   config.EditWidthIncrease,
	ebiten.KeyArrowDown:    config.EditHeightDecrease,
	ebiten.KeyArrowUp:      config.EditHeightIncrease,
}

// GridScene 网格场景
//
// Update 收集输入（指针位置、按键），Draw 执行一帧 FrameRenderer.Tick。
// 高亮计算放在 Draw 中，保证绘制使用的是同一帧的指针位置。
type GridScene struct {
	frame        *systems.FrameRenderer
	camera       *components.CameraComponent
	cameraSystem *systems.CameraSystem
	renderer     *render.EbitenRenderer
	view         config.ViewConfig
	load         ConfigLoader

	interactive bool
	pointerX    float64
	pointerY    float64
	pointerOK   bool
	deltaTime   float64

	lastStats systems.FrameStats
	lastErr   error
	reloadErr error
	ticks     int
}

// NewGridScene 创建网格场景
//
// 参数:
//   - cfg: 初始配置
//   - load: R 键重新加载配置时调用，可以为 nil
func NewGridScene(cfg *config.AppConfig, load ConfigLoader) *GridScene {
	camera := components.NewCameraComponent(cfg.View.WindowWidth, cfg.View.WindowHeight, cfg.View.PixelsPerUnit)
	s := &GridScene{
		frame:        systems.NewFrameRenderer(cfg.Grid),
		camera:       camera,
		cameraSystem: systems.NewCameraSystem(camera),
		renderer:     render.NewEbitenRenderer(camera),
		view:         cfg.View,
		load:         load,
		interactive:  true,
		lastStats:    systems.FrameStats{Highlighted: types.NoCell},
	}
	s.fitCamera(0)
	return s
}

// Camera 返回场景的摄像机
func (s *GridScene) Camera() *components.CameraComponent {
	return s.camera
}

// fitCamera 开启 AutoFit 时把摄像机缩放到能完整显示网格
func (s *GridScene) fitCamera(duration float64) {
	if !s.view.AutoFit {
		return
	}
	cfg := s.frame.Config()
	s.cameraSystem.ZoomTo(systems.FitScale(s.camera, cfg.Width, cfg.Height), duration)
}

// Frame 返回场景持有的 FrameRenderer
func (s *GridScene) Frame() *systems.FrameRenderer {
	return s.frame
}

// Interactive 返回是否处于交互状态
func (s *GridScene) Interactive() bool {
	return s.interactive
}

// SetInteractive 设置交互状态，关闭时不高亮任何格子
func (s *GridScene) SetInteractive(interactive bool) {
	s.interactive = interactive
}

// Update 处理键盘和指针输入
func (s *GridScene) Update(deltaTime float64) {
	s.deltaTime = deltaTime
	s.cameraSystem.Update(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.SetInteractive(!s.interactive)
		log.Printf("[GridScene] 交互模式: %v", s.interactive)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Reload()
	}
	for key, action := range editKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.Edit(action)
		}
	}

	sx, sy, source := utils.GetPointerPosition()
	if utils.IsMobile() && source != utils.PointerTouch {
		// 移动端手指离开屏幕后不保留高亮
		s.pointerOK = false
		return
	}
	s.SetPointerScreen(float64(sx), float64(sy))
}

// SetPointerScreen 把屏幕坐标投影到网格坐标系
// 摄像机退化时指针视为无效，本帧不高亮
func (s *GridScene) SetPointerScreen(screenX, screenY float64) {
	wx, wy, err := utils.ScreenToWorld(s.camera, screenX, screenY)
	if err != nil {
		s.pointerOK = false
		return
	}
	s.pointerX, s.pointerY = wx, wy
	s.pointerOK = true
}

// Edit 应用一次编辑动作
func (s *GridScene) Edit(action config.EditAction) {
	cfg := s.frame.Config().Apply(action)
	s.frame.SetConfig(cfg)
	s.fitCamera(systems.DefaultZoomDuration)
	log.Printf("[GridScene] 网格配置修改: %dx%d, inset=%.2f", cfg.Width, cfg.Height, cfg.BorderInset)
}

// Reload 重新加载配置并应用
// 加载失败时保留当前配置
func (s *GridScene) Reload() {
	if s.load == nil {
		return
	}
	cfg, err := s.load()
	if err != nil {
		s.reloadErr = err
		log.Printf("[GridScene] 重新加载配置失败: %v", err)
		return
	}
	s.reloadErr = nil
	s.view.Background = cfg.View.Background
	s.view.AutoFit = cfg.View.AutoFit
	s.view.PixelsPerUnit = cfg.View.PixelsPerUnit
	s.frame.SetConfig(cfg.Grid)
	s.cameraSystem.ZoomTo(cfg.View.PixelsPerUnit, 0)
	s.fitCamera(0)
	log.Printf("[GridScene] 配置已重新加载: %dx%d", cfg.Grid.Width, cfg.Grid.Height)
}

// Step 执行一帧网格流程，返回本帧统计
func (s *GridScene) Step(drawer systems.CellDrawer) systems.FrameStats {
	stats := s.frame.Tick(systems.FrameInput{
		DeltaTime:   s.deltaTime,
		PointerX:    s.pointerX,
		PointerY:    s.pointerY,
		Interactive: s.interactive && s.pointerOK,
	}, drawer)

	if stats.RebuildErr != nil {
		s.lastErr = stats.RebuildErr
	} else if stats.Rebuilt {
		s.lastErr = nil
	}
	s.lastStats = stats
	s.ticks++
	return stats
}

// Draw 绘制背景、网格和 HUD
func (s *GridScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.view.Background.Color())

	s.renderer.SetTarget(screen)
	s.Step(s.renderer)

	ebitenutil.DebugPrintAt(screen, s.HUDText(), 8, 8)
}

// HUDText 返回调试信息文本
func (s *GridScene) HUDText() string {
	cfg := s.frame.Config()

	var b strings.Builder
	fmt.Fprintf(&b, "grid %dx%d  inset %.2f\n", cfg.Width, cfg.Height, cfg.BorderInset)
	if s.interactive {
		fmt.Fprintf(&b, "cell %s  draws %d\n", s.lastStats.Highlighted, s.lastStats.DrawCalls)
	} else {
		fmt.Fprintf(&b, "paused  draws %d\n", s.lastStats.DrawCalls)
	}
	if s.lastErr != nil {
		fmt.Fprintf(&b, "geometry: %v\n", s.lastErr)
	}
	if s.reloadErr != nil {
		fmt.Fprintf(&b, "reload: %v\n", s.reloadErr)
	}
	if !utils.IsMobile() {
		b.WriteString("[P] play  [ / ] inset  arrows size  [R] reload")
	}
	return b.String()
}

// OnExit 实现 game.Exiter
func (s *GridScene) OnExit() {
	log.Printf("[GridScene] 退出，共 %d 帧", s.ticks)
}
