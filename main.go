package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/hovergrid/pkg/app"
	"github.com/decker502/hovergrid/pkg/embedded"
)

func main() {
	configPath := flag.String("config", "", "网格配置文件路径（默认使用嵌入的 data/grid.yaml）")
	verbose := flag.Bool("verbose", false, "输出详细日志")
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gridApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	view := gridApp.AppConfig().View
	ebiten.SetWindowSize(view.WindowWidth, view.WindowHeight)
	ebiten.SetWindowTitle(view.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gridApp); err != nil {
		log.Fatal(err)
	}
}
