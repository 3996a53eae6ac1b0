// Package utils 提供网格几何计算和坐标转换工具函数
//
// coordinates.go 提供世界坐标与屏幕坐标之间的转换。
//
// # 坐标系统概述
//
//   - **世界坐标**：以格子为单位，网格中心位于原点，Y 轴向上
//   - **屏幕坐标**：相对于窗口（或终端）左上角，Y 轴向下
//
// # 核心转换公式
//
//	screenX = (worldX - CenterX) * UnitsToPixelsX + ViewportWidth/2
//	screenY = ViewportHeight/2 - (worldY - CenterY) * UnitsToPixelsY
//
// ScreenToWorld 是它的逆运算，输入层用它把鼠标位置投影到网格坐标系，
// 然后交给 ResolveCell 计算高亮格子。
package utils

import (
	"errors"

	"github.com/decker502/hovergrid/pkg/components"
)

// ErrDegenerateCamera 表示摄像机缩放为零，无法从屏幕坐标反推世界坐标
var ErrDegenerateCamera = errors.New("camera scale must be non-zero")

// WorldToScreen 将世界坐标转换为屏幕坐标
func WorldToScreen(cam *components.CameraComponent, worldX, worldY float64) (screenX, screenY float64) {
	screenX = (worldX-cam.CenterX)*cam.UnitsToPixelsX + cam.ViewportWidth/2
	screenY = cam.ViewportHeight/2 - (worldY-cam.CenterY)*cam.UnitsToPixelsY
	return screenX, screenY
}

// ScreenToWorld 将屏幕坐标转换为世界坐标
//
// 返回:
//   - worldX, worldY: 世界坐标
//   - err: 摄像机缩放为零时返回 ErrDegenerateCamera
func ScreenToWorld(cam *components.CameraComponent, screenX, screenY float64) (worldX, worldY float64, err error) {
	if cam.UnitsToPixelsX == 0 || cam.UnitsToPixelsY == 0 {
		return 0, 0, ErrDegenerateCamera
	}
	worldX = (screenX-cam.ViewportWidth/2)/cam.UnitsToPixelsX + cam.CenterX
	worldY = (cam.ViewportHeight/2-screenY)/cam.UnitsToPixelsY + cam.CenterY
	return worldX, worldY, nil
}

// CellCenterToScreen 计算格子中心的屏幕坐标
// 用于测试工具把指针放到指定格子上
func CellCenterToScreen(cam *components.CameraComponent, x, y, width, height int) (screenX, screenY float64) {
	wx, wy := CellPlacement(x, y, width, height)
	return WorldToScreen(cam, wx, wy)
}
