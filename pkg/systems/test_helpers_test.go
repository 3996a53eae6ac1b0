package systems

import (
	"github.com/decker502/hovergrid/pkg/components"
	"github.com/decker502/hovergrid/pkg/types"
)

// drawCall 记录一次 DrawCell 调用
type drawCall struct {
	quad             *types.CellQuad
	offsetX, offsetY float64
	style            components.CellStyle
}

// recordingDrawer 记录所有绘制调用的测试渲染后端
type recordingDrawer struct {
	calls []drawCall
}

func (d *recordingDrawer) DrawCell(quad *types.CellQuad, offsetX, offsetY float64, style *components.CellStyle) {
	d.calls = append(d.calls, drawCall{quad: quad, offsetX: offsetX, offsetY: offsetY, style: *style})
}

// reset 清空记录，复用同一个后端跑多帧
func (d *recordingDrawer) reset() {
	d.calls = d.calls[:0]
}
