// Package render 提供网格的渲染后端
//
// 每个后端都实现 systems.CellDrawer：接收格子四边形（顶点 + 索引）、
// 格子中心的世界坐标和样式，通过 CameraComponent 投影到各自的画布上。
//
//   - EbitenRenderer:   游戏窗口（ebiten DrawTriangles）
//   - SnapshotRenderer: 离屏 PNG（gogpu/gg 软件光栅化）
//   - TerminalRenderer: 终端字符格（tcell）
package render

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/hovergrid/pkg/components"
	"github.com/decker502/hovergrid/pkg/types"
	"github.com/decker502/hovergrid/pkg/utils"
)

var (
	whiteImage     *ebiten.Image
	whiteSubImage  *ebiten.Image
	whiteImageOnce sync.Once
)

// solidSource 返回 1x1 白色贴图，顶点颜色决定最终颜色
// 取 3x3 图片的中心像素，避免边缘采样
func solidSource() *ebiten.Image {
	whiteImageOnce.Do(func() {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// EbitenRenderer 使用 ebiten DrawTriangles 绘制格子
type EbitenRenderer struct {
	camera *components.CameraComponent
	target *ebiten.Image

	// 每次绘制复用的缓冲区
	vertices []ebiten.Vertex
	indices  []uint16
	op       ebiten.DrawTrianglesOptions
}

// NewEbitenRenderer 创建 ebiten 渲染后端
func NewEbitenRenderer(camera *components.CameraComponent) *EbitenRenderer {
	r := &EbitenRenderer{
		camera:   camera,
		vertices: make([]ebiten.Vertex, 0, 4),
		indices:  make([]uint16, 0, 6),
	}
	r.op.AntiAlias = true
	return r
}

// SetTarget 设置本帧的绘制目标
func (r *EbitenRenderer) SetTarget(target *ebiten.Image) {
	r.target = target
}

// DrawCell 实现 systems.CellDrawer
func (r *EbitenRenderer) DrawCell(quad *types.CellQuad, offsetX, offsetY float64, style *components.CellStyle) {
	if r.target == nil {
		return
	}

	r.vertices = appendCellVertices(r.vertices[:0], r.camera, quad, offsetX, offsetY, style.Color)
	r.indices = append(r.indices[:0], quad.Indices[:]...)
	r.target.DrawTriangles(r.vertices, r.indices, solidSource(), &r.op)
}

// appendCellVertices 把格子四边形的顶点投影到屏幕坐标并附加顶点颜色
func appendCellVertices(dst []ebiten.Vertex, cam *components.CameraComponent, quad *types.CellQuad, offsetX, offsetY float64, c color.RGBA) []ebiten.Vertex {
	colorR := float32(c.R) / 0xff
	colorG := float32(c.G) / 0xff
	colorB := float32(c.B) / 0xff
	colorA := float32(c.A) / 0xff

	for _, v := range quad.Vertices {
		sx, sy := utils.WorldToScreen(cam, v.X+offsetX, v.Y+offsetY)
		dst = append(dst, ebiten.Vertex{
			DstX:   float32(sx),
			DstY:   float32(sy),
			SrcX:   1,
			SrcY:   1,
			ColorR: colorR,
			ColorG: colorG,
			ColorB: colorB,
			ColorA: colorA,
		})
	}
	return dst
}
