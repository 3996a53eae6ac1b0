// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// CellIndex 网格格子索引
// X 为列（0 ≤ X < width），Y 为行（0 ≤ Y < height），行 0 位于网格底部
type CellIndex struct {
	X int
	Y int
}

// NoCell 表示"没有格子"的哨兵值
// 指针在网格外或高亮被禁用时返回此值
var NoCell = CellIndex{X: -1, Y: -1}

// IsNone 检查是否为哨兵值
func (c CellIndex) IsNone() bool {
	return c == NoCell
}

// String 返回格子索引的字符串表示
func (c CellIndex) String() string {
	if c.IsNone() {
		return "none"
	}
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Vec2 二维向量（世界坐标，Y 轴向上）
type Vec2 struct {
	X float64
	Y float64
}

// 格子四边形的顶点顺序
const (
	QuadTopLeft = iota
	QuadTopRight
	QuadBottomLeft
	QuadBottomRight
)

// CellQuad 单个格子的网格数据
//
// 四个顶点围绕原点构成边长为 2*HalfSize 的正方形，
// Indices 是两个三角形 (TL,TR,BL)、(TR,BR,BL)，共享 BL–TR 对角线，绕序一致。
type CellQuad struct {
	// Vertices 顶点（左上、右上、左下、右下）
	Vertices [4]Vec2

	// Indices 三角形索引
	Indices [6]uint16

	// HalfSize 半边长 = 0.5 - BorderInset
	HalfSize float64
}

// Triangles 返回三角形数量
func (q *CellQuad) Triangles() int {
	return len(q.Indices) / 3
}

// Triangle 返回第 i 个三角形的三个顶点
func (q *CellQuad) Triangle(i int) (a, b, c Vec2) {
	base := i * 3
	return q.Vertices[q.Indices[base]], q.Vertices[q.Indices[base+1]], q.Vertices[q.Indices[base+2]]
}
