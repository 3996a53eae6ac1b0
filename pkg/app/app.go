// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/hovergrid/pkg/config"
	"github.com/decker502/hovergrid/pkg/embedded"
	"github.com/decker502/hovergrid/pkg/game"
	"github.com/decker502/hovergrid/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 网格配置文件路径，为空则使用嵌入的默认配置
	ConfigPath string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	appConfig                *config.AppConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// LoadConfig 按优先级加载配置：配置文件 → 嵌入的默认配置 → 内置默认值
//
// 指定的配置文件读取或解析失败时返回错误，不会静默回退。
func LoadConfig(path string) (*config.AppConfig, error) {
	if path != "" {
		cfg, err := config.LoadAppConfig(path)
		if err != nil {
			return nil, err
		}
		log.Printf("[Config] 加载配置文件: %s", path)
		return cfg, nil
	}

	data, err := embedded.ReadFile(embedded.DefaultConfigPath)
	if err != nil {
		if errors.Is(err, embedded.ErrNotInitialized) {
			log.Printf("[Config] 未嵌入配置，使用内置默认值")
			return config.DefaultAppConfig(), nil
		}
		return nil, fmt.Errorf("failed to read embedded config: %w", err)
	}
	cfg, err := config.ParseAppConfig(data)
	if err != nil {
		return nil, fmt.Errorf("embedded config: %w", err)
	}
	log.Printf("[Config] 使用嵌入配置: %s", embedded.DefaultConfigPath)
	return cfg, nil
}

// NewApp 创建并初始化应用
//
// 使用嵌入配置前，必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	appConfig, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	if err := appConfig.Grid.Validate(); err != nil {
		// 网格配置无效不阻止启动：几何系统会拒绝它，HUD 显示错误
		log.Printf("[App] 网格配置无效: %v", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewGridScene(appConfig, func() (*config.AppConfig, error) {
		return LoadConfig(cfg.ConfigPath)
	}))

	log.Printf("[App] 网格 %dx%d, 窗口 %dx%d", appConfig.Grid.Width, appConfig.Grid.Height,
		appConfig.View.WindowWidth, appConfig.View.WindowHeight)

	return &App{
		sceneManager: sceneManager,
		appConfig:    appConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.appConfig.View.WindowWidth, a.appConfig.View.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.appConfig.View.WindowWidth, a.appConfig.View.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !ebiten.IsFullscreen() {
		if exiter, ok := a.sceneManager.GetCurrentScene().(game.Exiter); ok {
			exiter.OnExit()
		}
		return ebiten.Termination
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时 letterbox 区域填充黑色，缩放使用线性滤波
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.appConfig.View.WindowWidth, a.appConfig.View.WindowHeight
}

// AppConfig 返回启动时加载的配置
func (a *App) AppConfig() *config.AppConfig {
	return a.appConfig
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
