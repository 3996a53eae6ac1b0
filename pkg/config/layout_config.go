package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 窗口与视图布局默认值
// 世界坐标以"格子"为单位，原点位于网格中心，Y 轴向上
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 960

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 540

	// DefaultPixelsPerUnit 每个世界单位（一个格子）对应的像素数
	// 16x9 网格在 960x540 窗口中留出一圈边距
	DefaultPixelsPerUnit = 56.0

	// DefaultWindowTitle 窗口标题
	DefaultWindowTitle = "Hover Grid"
)

// ViewConfig 视图配置（窗口大小和摄像机缩放）
type ViewConfig struct {
	// WindowWidth 逻辑屏幕宽度（像素）
	WindowWidth int `yaml:"windowWidth"`

	// WindowHeight 逻辑屏幕高度（像素）
	WindowHeight int `yaml:"windowHeight"`

	// PixelsPerUnit 每个世界单位对应的像素数
	PixelsPerUnit float64 `yaml:"pixelsPerUnit"`

	// Background 背景颜色
	Background HexColor `yaml:"background"`

	// Title 窗口标题
	Title string `yaml:"title"`

	// AutoFit 网格尺寸变化时自动缩放摄像机，使整个网格留在视口内
	AutoFit bool `yaml:"autoFit"`
}

// AppConfig 应用配置文件的顶层结构
//
// 配置文件位置: data/grid.yaml
type AppConfig struct {
	Grid GridConfig `yaml:"grid"`
	View ViewConfig `yaml:"view"`
}

// DefaultViewConfig 返回默认视图配置
func DefaultViewConfig() ViewConfig {
	return ViewConfig{
		WindowWidth:   GameWindowWidth,
		WindowHeight:  GameWindowHeight,
		PixelsPerUnit: DefaultPixelsPerUnit,
		Background:    HexColor{A: 0xff},
		Title:         DefaultWindowTitle,
	}
}

// DefaultAppConfig 返回默认应用配置
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Grid: DefaultGridConfig(),
		View: DefaultViewConfig(),
	}
}

// ParseAppConfig 解析 YAML 格式的应用配置
//
// 配置文件中缺省的字段保留默认值。
// 网格配置无效（如 borderInset 越界）不视为解析错误：
// 运行时会保留上一次有效的几何数据，由调用方决定是否调用 Validate。
//
// 参数:
//   - data: YAML 内容
//
// 返回:
//   - *AppConfig: 解析后的配置
//   - error: YAML 语法错误或视图参数无效时返回错误
func ParseAppConfig(data []byte) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse grid config: %w", err)
	}

	if err := cfg.View.Validate(); err != nil {
		return nil, fmt.Errorf("invalid view config: %w", err)
	}

	return cfg, nil
}

// LoadAppConfig 从文件加载应用配置
//
// 参数:
//   - path: 配置文件路径（如 "data/grid.yaml"）
func LoadAppConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid config: %w", err)
	}
	return ParseAppConfig(data)
}

// Validate 验证视图参数
func (v ViewConfig) Validate() error {
	if v.WindowWidth <= 0 || v.WindowHeight <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", v.WindowWidth, v.WindowHeight)
	}
	if v.PixelsPerUnit <= 0 {
		return fmt.Errorf("pixelsPerUnit %.2f must be positive", v.PixelsPerUnit)
	}
	return nil
}

// Marshal 序列化为 YAML（用于导出当前配置）
func (c *AppConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal grid config: %w", err)
	}
	return data, nil
}
