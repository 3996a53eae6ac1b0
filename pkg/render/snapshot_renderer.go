package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/decker502/hovergrid/pkg/components"
	"github.com/decker502/hovergrid/pkg/types"
	"github.com/decker502/hovergrid/pkg/utils"
)

// SnapshotRenderer 使用 gogpu/gg 软件渲染器把网格绘制到离屏图片
// 用于命令行截图工具和渲染测试，不需要窗口
type SnapshotRenderer struct {
	dc     *gg.Context
	camera *components.CameraComponent
	err    error
}

// NewSnapshotRenderer 创建离屏渲染后端
// 摄像机视口应与图片尺寸一致
func NewSnapshotRenderer(camera *components.CameraComponent) *SnapshotRenderer {
	return &SnapshotRenderer{
		dc:     gg.NewContext(int(camera.ViewportWidth), int(camera.ViewportHeight)),
		camera: camera,
	}
}

// Clear 用背景色填充整张图片
func (r *SnapshotRenderer) Clear(background color.RGBA) {
	r.dc.ClearWithColor(gg.FromColor(background))
}

// DrawCell 实现 systems.CellDrawer
// 两个三角形作为同一路径的两个子路径一次填充，避免对角线处出现抗锯齿缝隙
func (r *SnapshotRenderer) DrawCell(quad *types.CellQuad, offsetX, offsetY float64, style *components.CellStyle) {
	r.dc.SetColor(style.Color)

	for i := 0; i < quad.Triangles(); i++ {
		a, b, c := quad.Triangle(i)
		for j, v := range [3]types.Vec2{a, b, c} {
			sx, sy := utils.WorldToScreen(r.camera, v.X+offsetX, v.Y+offsetY)
			if j == 0 {
				r.dc.MoveTo(sx, sy)
			} else {
				r.dc.LineTo(sx, sy)
			}
		}
		r.dc.ClosePath()
	}

	if err := r.dc.Fill(); err != nil && r.err == nil {
		r.err = fmt.Errorf("fill cell at (%.2f, %.2f): %w", offsetX, offsetY, err)
	}
}

// Err 返回绘制过程中遇到的第一个错误
func (r *SnapshotRenderer) Err() error {
	return r.err
}

// Image 返回当前绘制结果
func (r *SnapshotRenderer) Image() image.Image {
	return r.dc.Image()
}

// SavePNG 保存为 PNG 文件
func (r *SnapshotRenderer) SavePNG(path string) error {
	if r.err != nil {
		return r.err
	}
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Close 释放 gg 上下文
func (r *SnapshotRenderer) Close() error {
	return r.dc.Close()
}
