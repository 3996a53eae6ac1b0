package systems

import (
	"github.com/decker502/hovergrid/pkg/components"
	"github.com/decker502/hovergrid/pkg/ecs"
	"github.com/decker502/hovergrid/pkg/types"
	"github.com/decker502/hovergrid/pkg/utils"
)

// HighlightSystem 每帧根据指针位置计算高亮格子
//
// 没有 PointerComponent 的网格视为高亮禁用。
type HighlightSystem struct {
	entityManager *ecs.EntityManager
}

// NewHighlightSystem 创建高亮系统
func NewHighlightSystem(em *ecs.EntityManager) *HighlightSystem {
	return &HighlightSystem{
		entityManager: em,
	}
}

// Update 为所有网格实体重新计算高亮格子
func (s *HighlightSystem) Update() {
	entities := ecs.GetEntitiesWith2[*components.GridComponent, *components.HoverHighlightComponent](s.entityManager)

	for _, id := range entities {
		grid, _ := ecs.GetComponent[*components.GridComponent](s.entityManager, id)
		highlight, _ := ecs.GetComponent[*components.HoverHighlightComponent](s.entityManager, id)

		pointer, ok := ecs.GetComponent[*components.PointerComponent](s.entityManager, id)
		if !ok {
			highlight.Cell = types.NoCell
			continue
		}

		highlight.Cell = utils.ResolveCell(
			pointer.WorldX, pointer.WorldY,
			grid.Config.Width, grid.Config.Height,
			pointer.Active,
		)
	}
}
