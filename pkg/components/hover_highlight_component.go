package components

import "github.com/decker502/hovergrid/pkg/types"

// HoverHighlightComponent 悬停高亮组件
// 记录本帧指针所在的格子，每帧由高亮系统重新计算
type HoverHighlightComponent struct {
	// Cell 高亮格子，没有高亮时为 types.NoCell
	Cell types.CellIndex
}
