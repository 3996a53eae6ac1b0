package components

// CameraComponent 描述世界坐标到屏幕坐标的投影
//
// 世界坐标以格子为单位、Y 轴向上；屏幕坐标以像素（或终端字符）为单位、Y 轴向下。
// X/Y 方向的缩放分开设置，终端字符不是正方形。
type CameraComponent struct {
	// CenterX, CenterY 视口中心对应的世界坐标
	CenterX float64
	CenterY float64

	// UnitsToPixelsX 一个世界单位在屏幕X方向上的长度
	UnitsToPixelsX float64

	// UnitsToPixelsY 一个世界单位在屏幕Y方向上的长度
	UnitsToPixelsY float64

	// ViewportWidth, ViewportHeight 视口尺寸（屏幕坐标）
	ViewportWidth  float64
	ViewportHeight float64
}

// NewCameraComponent 创建以原点为中心、X/Y 等比缩放的摄像机
func NewCameraComponent(viewportWidth, viewportHeight int, pixelsPerUnit float64) *CameraComponent {
	return &CameraComponent{
		UnitsToPixelsX: pixelsPerUnit,
		UnitsToPixelsY: pixelsPerUnit,
		ViewportWidth:  float64(viewportWidth),
		ViewportHeight: float64(viewportHeight),
	}
}
