// grid_snapshot 把网格离屏渲染为 PNG，不需要窗口
//
// 用法:
//
//	go run ./cmd/grid_snapshot -config data/grid.yaml -px 0.5 -py 0 -out grid.png
//	go run ./cmd/grid_snapshot -config data/grid.yaml -sweep out/
//
// -px/-py 为指针的世界坐标（以格子为单位，网格中心为原点）。
// -sweep 为每个格子各渲染一张高亮快照。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/schollz/progressbar/v3"

	"github.com/decker502/hovergrid/pkg/components"
	"github.com/decker502/hovergrid/pkg/config"
	"github.com/decker502/hovergrid/pkg/render"
	"github.com/decker502/hovergrid/pkg/systems"
	"github.com/decker502/hovergrid/pkg/utils"
)

var (
	configPath  = flag.String("config", "", "网格配置文件路径（默认使用内置默认值）")
	outPath     = flag.String("out", "grid.png", "输出 PNG 路径")
	pointerX    = flag.Float64("px", 0, "指针世界坐标 X")
	pointerY    = flag.Float64("py", 0, "指针世界坐标 Y")
	interactive = flag.Bool("interactive", true, "是否启用高亮")
	scale       = flag.Float64("scale", 0, "每个格子的像素数（0 表示使用配置值）")
	sweepDir    = flag.String("sweep", "", "为每个格子渲染一张高亮快照到该目录")
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
	printConfig = flag.Bool("print-config", false, "输出生效的配置（YAML）后退出")
)

func main() {
	flag.Parse()

	if *verbose {
		gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	} else {
		log.SetOutput(io.Discard)
	}

	appConfig := config.DefaultAppConfig()
	if *configPath != "" {
		cfg, err := config.LoadAppConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
			os.Exit(1)
		}
		appConfig = cfg
	}

	if *printConfig {
		data, err := appConfig.Marshal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	if *sweepDir != "" {
		n, err := sweep(appConfig, *sweepDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved %d snapshots to %s\n", n, *sweepDir)
		return
	}

	frame := systems.FrameInput{PointerX: *pointerX, PointerY: *pointerY, Interactive: *interactive}
	stats, err := renderSnapshot(appConfig, frame, *outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Grid: %dx%d, inset %.2f\n", appConfig.Grid.Width, appConfig.Grid.Height, appConfig.Grid.BorderInset)
	fmt.Printf("Highlighted: %s\n", stats.Highlighted)
	fmt.Printf("Draw calls: %d\n", stats.DrawCalls)
	fmt.Printf("Saved: %s\n", *outPath)
}

// newCamera 根据配置和 -scale 创建摄像机
func newCamera(appConfig *config.AppConfig) *components.CameraComponent {
	ppu := appConfig.View.PixelsPerUnit
	if *scale > 0 {
		ppu = *scale
	}
	return components.NewCameraComponent(appConfig.View.WindowWidth, appConfig.View.WindowHeight, ppu)
}

// renderSnapshot 渲染一帧并保存为 PNG
func renderSnapshot(appConfig *config.AppConfig, input systems.FrameInput, path string) (systems.FrameStats, error) {
	snapshot := render.NewSnapshotRenderer(newCamera(appConfig))
	defer snapshot.Close()
	snapshot.Clear(appConfig.View.Background.Color())

	frame := systems.NewFrameRenderer(appConfig.Grid)
	stats := frame.Tick(input, snapshot)

	if stats.RebuildErr != nil {
		return stats, stats.RebuildErr
	}
	if err := snapshot.SavePNG(path); err != nil {
		return stats, err
	}
	return stats, nil
}

// sweep 指针依次放在每个格子中心，各保存一张快照
// 返回保存的图片数量
func sweep(appConfig *config.AppConfig, dir string) (int, error) {
	if err := appConfig.Grid.Validate(); err != nil {
		return 0, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create sweep dir: %w", err)
	}

	width, height := appConfig.Grid.Width, appConfig.Grid.Height
	pb := progressbar.Default(int64(width*height), "rendering")
	defer pb.Close()

	saved := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px, py := utils.CellPlacement(x, y, width, height)
			path := filepath.Join(dir, fmt.Sprintf("cell_%02d_%02d.png", x, y))

			stats, err := renderSnapshot(appConfig, systems.FrameInput{PointerX: px, PointerY: py, Interactive: true}, path)
			if err != nil {
				return saved, fmt.Errorf("cell (%d, %d): %w", x, y, err)
			}
			if stats.Highlighted.X != x || stats.Highlighted.Y != y {
				return saved, fmt.Errorf("cell (%d, %d): highlighted %s", x, y, stats.Highlighted)
			}
			saved++
			pb.Add(1)
		}
	}
	return saved, nil
}
