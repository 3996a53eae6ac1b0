package utils

import "math"

// 缓动函数
//
// 接受进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 摄像机缩放动画使用 EaseOutCubic。

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutQuad 二次方缓入缓出
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 把进度值限制在 [0, 1]
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}
