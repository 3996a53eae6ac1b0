package utils

import (
	"fmt"
	"math"

	"github.com/decker502/hovergrid/pkg/config"
	"github.com/decker502/hovergrid/pkg/types"
)

// cellQuadIndices 两个三角形 (TL,TR,BL)、(TR,BR,BL)
// 与渲染系统中四边形贴图使用的索引一致
var cellQuadIndices = [6]uint16{
	types.QuadTopLeft, types.QuadTopRight, types.QuadBottomLeft,
	types.QuadTopRight, types.QuadBottomRight, types.QuadBottomLeft,
}

// BuildCellQuad 根据边框内缩比例构建格子四边形
//
// 参数:
//   - borderInset: 每个格子预留为间隙的比例，范围 [0, 0.5)
//
// 返回:
//   - types.CellQuad: 以原点为中心、半边长 0.5-borderInset 的正方形
//   - error: borderInset 越界时返回包装了 config.ErrInvalidConfig 的错误
func BuildCellQuad(borderInset float64) (types.CellQuad, error) {
	if err := config.ValidateBorderInset(borderInset); err != nil {
		return types.CellQuad{}, fmt.Errorf("build cell quad: %w", err)
	}

	h := 0.5 - borderInset
	return types.CellQuad{
		Vertices: [4]types.Vec2{
			types.QuadTopLeft:     {X: -h, Y: h},
			types.QuadTopRight:    {X: h, Y: h},
			types.QuadBottomLeft:  {X: -h, Y: -h},
			types.QuadBottomRight: {X: h, Y: -h},
		},
		Indices:  cellQuadIndices,
		HalfSize: h,
	}, nil
}

// gridHalfExtent 网格中心到首个格子中心的距离
func gridHalfExtent(n int) float64 {
	return float64(n-1) / 2
}

// CellPlacement 计算格子在世界坐标中的偏移量
//
// 公式 (x-(width-1)/2, y-(height-1)/2) 使整个网格以原点为中心，
// 与宽高的奇偶无关。不做越界检查，调用方保证 0 ≤ x < width、0 ≤ y < height。
// 与 ResolveCell 互为逆运算。
func CellPlacement(x, y, width, height int) (offsetX, offsetY float64) {
	offsetX = float64(x) - gridHalfExtent(width)
	offsetY = float64(y) - gridHalfExtent(height)
	return offsetX, offsetY
}

// ResolveCell 将指针的世界坐标转换为高亮格子索引
//
// 取整规则: cell = floor(p + (n-1)/2 + 0.5)，即就近取整且 .5 向正方向进位。
// 使用 floor 而不是向零截断，网格左/下边界外半个格子以内的指针不会被误判为第 0 格。
//
// 参数:
//   - pointerX, pointerY: 指针世界坐标（与网格同一坐标系）
//   - width, height: 网格列数和行数
//   - active: 高亮是否启用（仅在交互状态下为 true）
//
// 返回:
//   - types.CellIndex: 指针所在格子；禁用、越界或输入无效时返回 types.NoCell（不会夹取到边缘格子）
func ResolveCell(pointerX, pointerY float64, width, height int, active bool) types.CellIndex {
	if !active || width <= 0 || height <= 0 {
		return types.NoCell
	}

	fx := math.Floor(pointerX + gridHalfExtent(width) + 0.5)
	fy := math.Floor(pointerY + gridHalfExtent(height) + 0.5)

	// NaN 和无穷大在比较中均落在范围外
	if !(fx >= 0 && fx < float64(width) && fy >= 0 && fy < float64(height)) {
		return types.NoCell
	}

	return types.CellIndex{X: int(fx), Y: int(fy)}
}
