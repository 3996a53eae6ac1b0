package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/hovergrid/pkg/components"
	"github.com/decker502/hovergrid/pkg/types"
	"github.com/decker502/hovergrid/pkg/utils"
)

// TerminalRenderer 把格子光栅化到终端字符格上
//
// 字符格中心落在三角形内（含边界）即填充背景色。
// 摄像机的 UnitsToPixelsX/Y 以字符为单位，通常 X 方向是 Y 方向的两倍。
type TerminalRenderer struct {
	screen tcell.Screen
	camera *components.CameraComponent
}

// NewTerminalRenderer 创建终端渲染后端
func NewTerminalRenderer(screen tcell.Screen, camera *components.CameraComponent) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		camera: camera,
	}
}

// DrawCell 实现 systems.CellDrawer
func (r *TerminalRenderer) DrawCell(quad *types.CellQuad, offsetX, offsetY float64, style *components.CellStyle) {
	c := style.Color
	st := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))

	cols, rows := r.screen.Size()
	for i := 0; i < quad.Triangles(); i++ {
		a, b, cc := quad.Triangle(i)
		var pts [3]types.Vec2
		for j, v := range [3]types.Vec2{a, b, cc} {
			pts[j].X, pts[j].Y = utils.WorldToScreen(r.camera, v.X+offsetX, v.Y+offsetY)
		}
		r.fillTriangle(pts, cols, rows, st)
	}
}

// fillTriangle 填充中心落在三角形内的字符格
func (r *TerminalRenderer) fillTriangle(pts [3]types.Vec2, cols, rows int, st tcell.Style) {
	minX := math.Min(pts[0].X, math.Min(pts[1].X, pts[2].X))
	maxX := math.Max(pts[0].X, math.Max(pts[1].X, pts[2].X))
	minY := math.Min(pts[0].Y, math.Min(pts[1].Y, pts[2].Y))
	maxY := math.Max(pts[0].Y, math.Max(pts[1].Y, pts[2].Y))

	x0 := max(0, int(math.Floor(minX)))
	x1 := min(cols-1, int(math.Ceil(maxX)))
	y0 := max(0, int(math.Floor(minY)))
	y1 := min(rows-1, int(math.Ceil(maxY)))

	for row := y0; row <= y1; row++ {
		for col := x0; col <= x1; col++ {
			p := types.Vec2{X: float64(col) + 0.5, Y: float64(row) + 0.5}
			if pointInTriangle(p, pts[0], pts[1], pts[2]) {
				r.screen.SetContent(col, row, ' ', nil, st)
			}
		}
	}
}

// edge 边函数：p 在 a→b 左侧为正
func edge(a, b, p types.Vec2) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// pointInTriangle 判断点是否在三角形内（含边界），与绕序无关
func pointInTriangle(p, a, b, c types.Vec2) bool {
	e0 := edge(a, b, p)
	e1 := edge(b, c, p)
	e2 := edge(c, a, p)
	hasNeg := e0 < 0 || e1 < 0 || e2 < 0
	hasPos := e0 > 0 || e1 > 0 || e2 > 0
	return !(hasNeg && hasPos)
}
