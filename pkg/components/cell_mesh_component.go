package components

import (
	"image/color"

	"github.com/decker502/hovergrid/pkg/types"
)

// CellStyle 格子绘制参数
// 渲染后端只读取其中的颜色
type CellStyle struct {
	Color color.RGBA
}

// CellMeshComponent 缓存由网格配置派生的几何与样式数据
//
// 只有几何系统会写入此组件；渲染阶段只读。
type CellMeshComponent struct {
	// Quad 所有格子共享的四边形
	Quad types.CellQuad

	// DefaultStyle 普通格子样式
	DefaultStyle CellStyle

	// HighlightStyle 高亮格子样式
	HighlightStyle CellStyle

	// Built 是否成功构建过（首次构建失败时为 false，此时不绘制）
	Built bool

	// BuiltVersion 最近一次尝试重建时的配置版本号
	BuiltVersion uint64

	// LastError 最近一次重建失败的原因，成功后清空
	LastError error
}
