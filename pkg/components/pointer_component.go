package components

// PointerComponent 本帧的指针输入（已投影到网格世界坐标）
type PointerComponent struct {
	// WorldX, WorldY 指针世界坐标
	WorldX float64
	WorldY float64

	// Active 高亮是否启用（仅在交互状态下为 true，编辑/静态渲染时为 false）
	Active bool
}
