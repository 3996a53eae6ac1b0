//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.decker.hovergrid -o build/android/hovergrid.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/HoverGrid.xcframework ./mobile
//
// 移动端不嵌入配置文件，使用内置默认配置；触摸点作为指针。
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/hovergrid/pkg/app"
)

func init() {
	gridApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(gridApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
