package systems

import (
	"log"

	"github.com/decker502/hovergrid/pkg/components"
	"github.com/decker502/hovergrid/pkg/config"
	"github.com/decker502/hovergrid/pkg/ecs"
	"github.com/decker502/hovergrid/pkg/utils"
)

// GridGeometrySystem 维护网格实体的几何与样式缓存
//
// 配置版本号变化时（SetConfig / Invalidate）才重建，否则什么也不做。
// borderInset 无效时重建失败，保留上一次成功构建的四边形；
// 从未成功构建过的网格不会被绘制。
type GridGeometrySystem struct {
	entityManager *ecs.EntityManager
}

// NewGridGeometrySystem 创建网格几何系统
func NewGridGeometrySystem(em *ecs.EntityManager) *GridGeometrySystem {
	return &GridGeometrySystem{
		entityManager: em,
	}
}

// Update 检查所有网格实体并按需重建
//
// 返回:
//   - rebuilt: 本次是否尝试了重建
//   - err: 最后一次重建失败的原因（不影响其他网格，也不需要调用方处理）
func (s *GridGeometrySystem) Update() (rebuilt bool, err error) {
	entities := ecs.GetEntitiesWith2[*components.GridComponent, *components.CellMeshComponent](s.entityManager)

	for _, id := range entities {
		grid, _ := ecs.GetComponent[*components.GridComponent](s.entityManager, id)
		mesh, _ := ecs.GetComponent[*components.CellMeshComponent](s.entityManager, id)

		// 当前版本已构建过（成功或失败）时跳过，失败不会每帧重试
		attempted := mesh.Built || mesh.LastError != nil
		if attempted && mesh.BuiltVersion == grid.Version {
			continue
		}

		rebuilt = true
		if rebuildErr := s.rebuild(grid, mesh); rebuildErr != nil {
			err = rebuildErr
		}
	}

	return rebuilt, err
}

// rebuild 根据当前配置重建四边形和样式
func (s *GridGeometrySystem) rebuild(grid *components.GridComponent, mesh *components.CellMeshComponent) error {
	mesh.BuiltVersion = grid.Version
	mesh.DefaultStyle, mesh.HighlightStyle = BuildCellStyles(grid.Config)

	quad, err := utils.BuildCellQuad(grid.Config.BorderInset)
	if err != nil {
		mesh.LastError = err
		if mesh.Built {
			log.Printf("[GridGeometry] 重建失败 (version %d)，保留上一次的网格: %v", grid.Version, err)
		} else {
			log.Printf("[GridGeometry] 重建失败 (version %d)，没有可用网格: %v", grid.Version, err)
		}
		return err
	}

	mesh.Quad = quad
	mesh.Built = true
	mesh.LastError = nil
	log.Printf("[GridGeometry] 网格已重建 (version %d): %dx%d, halfSize=%.3f",
		grid.Version, grid.Config.Width, grid.Config.Height, quad.HalfSize)
	return nil
}

// BuildCellStyles 根据配置颜色构建普通/高亮两种样式
func BuildCellStyles(cfg config.GridConfig) (defaultStyle, highlightStyle components.CellStyle) {
	defaultStyle = components.CellStyle{Color: cfg.DefaultColor.Color()}
	highlightStyle = components.CellStyle{Color: cfg.HighlightColor.Color()}
	return defaultStyle, highlightStyle
}
