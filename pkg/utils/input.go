package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerSource 指针位置的来源
type PointerSource int

const (
	PointerMouse PointerSource = iota
	PointerTouch
)

// GetPointerPosition 获取当前指针位置（屏幕坐标）
// 有触摸时取第一个触摸点，否则取鼠标位置
func GetPointerPosition() (x, y int, source PointerSource) {
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return x, y, PointerTouch
	}
	x, y = ebiten.CursorPosition()
	return x, y, PointerMouse
}
