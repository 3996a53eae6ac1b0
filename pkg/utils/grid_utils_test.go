package utils

import (
	"errors"
	"math"
	"testing"

	"github.com/decker502/hovergrid/pkg/config"
	"github.com/decker502/hovergrid/pkg/types"
)

const epsilon = 1e-9

// TestBuildCellQuad 测试格子四边形的顶点和半边长
func TestBuildCellQuad(t *testing.T) {
	insets := []float64{0, 0.05, 0.1, 0.2, 0.25, 0.4, 0.499}

	for _, inset := range insets {
		quad, err := BuildCellQuad(inset)
		if err != nil {
			t.Fatalf("BuildCellQuad(%v) error = %v", inset, err)
		}

		wantHalf := 0.5 - inset
		if math.Abs(quad.HalfSize-wantHalf) > epsilon {
			t.Errorf("inset %v: HalfSize = %v, want %v", inset, quad.HalfSize, wantHalf)
		}
		if quad.HalfSize <= 0 {
			t.Errorf("inset %v: HalfSize = %v, want > 0", inset, quad.HalfSize)
		}

		// 顶点顺序：左上、右上、左下、右下
		want := [4]types.Vec2{
			{X: -wantHalf, Y: wantHalf},
			{X: wantHalf, Y: wantHalf},
			{X: -wantHalf, Y: -wantHalf},
			{X: wantHalf, Y: -wantHalf},
		}
		for i, v := range quad.Vertices {
			if math.Abs(v.X-want[i].X) > epsilon || math.Abs(v.Y-want[i].Y) > epsilon {
				t.Errorf("inset %v: vertex %d = %+v, want %+v", inset, i, v, want[i])
			}
		}

		// 顶点关于原点对称
		var sumX, sumY float64
		for _, v := range quad.Vertices {
			sumX += v.X
			sumY += v.Y
		}
		if math.Abs(sumX) > epsilon || math.Abs(sumY) > epsilon {
			t.Errorf("inset %v: vertices not symmetric, sum = (%v, %v)", inset, sumX, sumY)
		}
	}
}

// TestBuildCellQuad_Triangulation 两个三角形绕序一致且完整覆盖正方形
func TestBuildCellQuad_Triangulation(t *testing.T) {
	quad, err := BuildCellQuad(0.1)
	if err != nil {
		t.Fatalf("BuildCellQuad error = %v", err)
	}

	if quad.Indices != [6]uint16{0, 1, 2, 1, 3, 2} {
		t.Errorf("Indices = %v, want [0 1 2 1 3 2]", quad.Indices)
	}
	if quad.Triangles() != 2 {
		t.Fatalf("Triangles() = %d, want 2", quad.Triangles())
	}

	signedArea := func(a, b, c types.Vec2) float64 {
		return ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)) / 2
	}

	a0 := signedArea(quad.Triangle(0))
	a1 := signedArea(quad.Triangle(1))

	if a0 == 0 || a1 == 0 {
		t.Fatalf("degenerate triangle: areas %v, %v", a0, a1)
	}
	if (a0 > 0) != (a1 > 0) {
		t.Errorf("inconsistent winding: areas %v, %v", a0, a1)
	}

	side := 2 * quad.HalfSize
	if total := math.Abs(a0) + math.Abs(a1); math.Abs(total-side*side) > epsilon {
		t.Errorf("triangles cover %v, want square area %v", total, side*side)
	}
}

// TestBuildCellQuad_InvalidInset 越界内缩返回 ErrInvalidConfig
func TestBuildCellQuad_InvalidInset(t *testing.T) {
	for _, inset := range []float64{-0.1, 0.5, 0.75, math.NaN(), math.Inf(1)} {
		_, err := BuildCellQuad(inset)
		if !errors.Is(err, config.ErrInvalidConfig) {
			t.Errorf("BuildCellQuad(%v) error = %v, want ErrInvalidConfig", inset, err)
		}
	}
}

// TestCellPlacement 测试网格居中偏移
func TestCellPlacement(t *testing.T) {
	tests := []struct {
		name          string
		x, y          int
		width, height int
		wantX, wantY  float64
	}{
		{"1x1唯一格子", 0, 0, 1, 1, 0, 0},
		{"16x9左下角", 0, 0, 16, 9, -7.5, -4},
		{"16x9右上角", 15, 8, 16, 9, 7.5, 4},
		{"16x9中心附近", 8, 4, 16, 9, 0.5, 0},
		{"2x2", 1, 0, 2, 2, 0.5, -0.5},
		{"3x3中心", 1, 1, 3, 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := CellPlacement(tt.x, tt.y, tt.width, tt.height)
			if gotX != tt.wantX || gotY != tt.wantY {
				t.Errorf("CellPlacement(%d,%d,%d,%d) = (%v,%v), want (%v,%v)",
					tt.x, tt.y, tt.width, tt.height, gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestResolveCell_RoundTrip 放置偏移与指针解析互为逆运算
func TestResolveCell_RoundTrip(t *testing.T) {
	for width := 1; width <= 20; width++ {
		for height := 1; height <= 12; height++ {
			for y := 0; y < height; y++ {
				for x := 0; x < width; x++ {
					px, py := CellPlacement(x, y, width, height)
					got := ResolveCell(px, py, width, height, true)
					if got != (types.CellIndex{X: x, Y: y}) {
						t.Fatalf("%dx%d: ResolveCell(CellPlacement(%d,%d)) = %v", width, height, x, y, got)
					}
				}
			}
		}
	}
}

// TestResolveCell 测试指针到格子的映射
func TestResolveCell(t *testing.T) {
	tests := []struct {
		name          string
		px, py        float64
		width, height int
		active        bool
		want          types.CellIndex
	}{
		{"16x9原点", 0, 0, 16, 9, true, types.CellIndex{X: 8, Y: 4}},
		{"16x9最后一格", 7.5, 4, 16, 9, true, types.CellIndex{X: 15, Y: 8}},
		{"16x9最后一格右侧一整格", 8.5, 4, 16, 9, true, types.NoCell},
		{"16x9最后一格上方一整格", 7.5, 5, 16, 9, true, types.NoCell},
		{"16x9第一格", -7.5, -4, 16, 9, true, types.CellIndex{X: 0, Y: 0}},
		{"16x9第一格左侧一整格", -8.5, -4, 16, 9, true, types.NoCell},
		{"第一格左边缘外侧", -8.01, -4, 16, 9, true, types.NoCell},
		{"第一格左边缘内侧", -7.99, -4, 16, 9, true, types.CellIndex{X: 0, Y: 0}},
		{"1x1原点", 0, 0, 1, 1, true, types.CellIndex{X: 0, Y: 0}},
		{"1x1半格以内", 0.49, -0.49, 1, 1, true, types.CellIndex{X: 0, Y: 0}},
		{"1x1右边界进位", 0.5, 0, 1, 1, true, types.NoCell},
		{"1x1左边界", -0.5, 0, 1, 1, true, types.CellIndex{X: 0, Y: 0}},
		{"1x1左边界外", -0.51, 0, 1, 1, true, types.NoCell},
		{"高亮禁用", 0, 0, 16, 9, false, types.NoCell},
		{"宽度为0", 0, 0, 0, 9, true, types.NoCell},
		{"高度为负", 0, 0, 3, -1, true, types.NoCell},
		{"NaN指针", math.NaN(), 0, 16, 9, true, types.NoCell},
		{"无穷大指针", math.Inf(-1), 0, 16, 9, true, types.NoCell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveCell(tt.px, tt.py, tt.width, tt.height, tt.active)
			if got != tt.want {
				t.Errorf("ResolveCell(%v,%v,%d,%d,%v) = %v, want %v",
					tt.px, tt.py, tt.width, tt.height, tt.active, got, tt.want)
			}
		})
	}
}

// TestResolveCell_InactiveAlwaysNone 禁用时任何位置都返回哨兵值
func TestResolveCell_InactiveAlwaysNone(t *testing.T) {
	for width := 1; width <= 5; width++ {
		for x := 0; x < width; x++ {
			px, py := CellPlacement(x, 0, width, 1)
			if got := ResolveCell(px, py, width, 1, false); !got.IsNone() {
				t.Errorf("inactive ResolveCell = %v, want none", got)
			}
		}
	}
}
