package systems

import (
	"github.com/decker502/hovergrid/pkg/components"
	"github.com/decker502/hovergrid/pkg/ecs"
	"github.com/decker502/hovergrid/pkg/types"
	"github.com/decker502/hovergrid/pkg/utils"
)

// CellDrawer 渲染后端接口
//
// 每个格子调用一次 DrawCell；quad 为格子局部坐标下的四边形，
// (offsetX, offsetY) 为格子中心的世界坐标。后端不需要返回任何结果。
type CellDrawer interface {
	DrawCell(quad *types.CellQuad, offsetX, offsetY float64, style *components.CellStyle)
}

// GridRenderSystem 逐个格子提交绘制
//
// 不做合批、实例化或裁剪：按行优先（y 外层、x 内层）为每个格子调用一次 DrawCell。
type GridRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewGridRenderSystem 创建网格渲染系统
func NewGridRenderSystem(em *ecs.EntityManager) *GridRenderSystem {
	return &GridRenderSystem{
		entityManager: em,
	}
}

// Draw 绘制所有网格实体
//
// 返回:
//   - int: 本帧提交的绘制调用次数
func (s *GridRenderSystem) Draw(drawer CellDrawer) int {
	drawCalls := 0
	entities := ecs.GetEntitiesWith2[*components.GridComponent, *components.CellMeshComponent](s.entityManager)

	for _, id := range entities {
		grid, _ := ecs.GetComponent[*components.GridComponent](s.entityManager, id)
		mesh, _ := ecs.GetComponent[*components.CellMeshComponent](s.entityManager, id)

		// 从未成功构建过网格，没有可绘制的几何数据
		if !mesh.Built {
			continue
		}

		highlighted := types.NoCell
		if hl, ok := ecs.GetComponent[*components.HoverHighlightComponent](s.entityManager, id); ok {
			highlighted = hl.Cell
		}

		width, height := grid.Config.Width, grid.Config.Height
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				style := &mesh.DefaultStyle
				if x == highlighted.X && y == highlighted.Y {
					style = &mesh.HighlightStyle
				}

				offsetX, offsetY := utils.CellPlacement(x, y, width, height)
				drawer.DrawCell(&mesh.Quad, offsetX, offsetY, style)
				drawCalls++
			}
		}
	}

	return drawCalls
}
