//go:build !mobile

package utils

import "os"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false
// 可以通过设置环境变量 HOVERGRID_MOBILE_EMULATE=1 模拟移动端（隐藏键盘提示）
func IsMobile() bool {
	return os.Getenv("HOVERGRID_MOBILE_EMULATE") == "1"
}
