package systems

import (
	"math"

	"github.com/decker502/hovergrid/pkg/components"
	"github.com/decker502/hovergrid/pkg/utils"
)

const (
	// FitMargin 自动缩放时网格四周保留的边距（格子数，两侧合计）
	FitMargin = 1.0

	// DefaultZoomDuration 缩放动画时长（秒）
	DefaultZoomDuration = 0.25
)

// CameraSystem 管理摄像机缩放和平滑动画
// 网格尺寸变化时把摄像机缩放到能完整显示网格的比例
type CameraSystem struct {
	camera *components.CameraComponent

	startScale  float64
	targetScale float64
	elapsed     float64
	duration    float64
	animating   bool
}

// NewCameraSystem 创建摄像机控制系统
func NewCameraSystem(camera *components.CameraComponent) *CameraSystem {
	return &CameraSystem{
		camera:      camera,
		targetScale: camera.UnitsToPixelsX,
	}
}

// FitScale 计算能在视口内完整显示 width x height 网格的缩放比例
// 宽高不为正时返回摄像机当前缩放
func FitScale(cam *components.CameraComponent, width, height int) float64 {
	if width <= 0 || height <= 0 {
		return cam.UnitsToPixelsX
	}
	sx := cam.ViewportWidth / (float64(width) + FitMargin)
	sy := cam.ViewportHeight / (float64(height) + FitMargin)
	return math.Min(sx, sy)
}

// ZoomTo 开始缩放动画
//
// 参数:
//   - scale: 目标缩放（每个世界单位的像素数），必须为正
//   - duration: 动画时长（秒），不为正时立即生效
func (cs *CameraSystem) ZoomTo(scale, duration float64) {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return
	}
	cs.targetScale = scale
	if duration <= 0 {
		cs.setScale(scale)
		cs.animating = false
		return
	}
	cs.startScale = cs.camera.UnitsToPixelsX
	cs.elapsed = 0
	cs.duration = duration
	cs.animating = true
}

// Update 推进缩放动画
func (cs *CameraSystem) Update(dt float64) {
	if !cs.animating {
		return
	}
	cs.elapsed += dt
	progress := utils.Clamp01(cs.elapsed / cs.duration)
	cs.setScale(utils.Lerp(cs.startScale, cs.targetScale, utils.EaseOutCubic(progress)))
	if progress >= 1 {
		cs.animating = false
	}
}

// StopAnimation 停止动画，立即设置到目标缩放
func (cs *CameraSystem) StopAnimation() {
	cs.animating = false
	cs.setScale(cs.targetScale)
}

// IsAnimating 返回摄像机是否正在动画中
func (cs *CameraSystem) IsAnimating() bool {
	return cs.animating
}

// TargetScale 返回目标缩放
func (cs *CameraSystem) TargetScale() float64 {
	return cs.targetScale
}

func (cs *CameraSystem) setScale(scale float64) {
	cs.camera.UnitsToPixelsX = scale
	cs.camera.UnitsToPixelsY = scale
}
