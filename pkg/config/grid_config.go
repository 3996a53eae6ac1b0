package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 表示网格配置无效
// borderInset 超出 [0, 0.5) 或宽高不为正数时返回（使用 errors.Is 判断）
var ErrInvalidConfig = errors.New("invalid grid config")

// MaxBorderInset 边框内缩比例的上界（不含）
// 达到 0.5 时格子半边长为 0，四边形退化
const MaxBorderInset = 0.5

// 网格默认值
const (
	DefaultGridWidth   = 16
	DefaultGridHeight  = 9
	DefaultBorderInset = 0.05
)

// GridConfig 网格配置
//
// 由宿主程序持有；一帧内不可变，两帧之间可以修改（修改后会触发几何重建）。
type GridConfig struct {
	// Width 列数
	Width int `yaml:"width"`

	// Height 行数
	Height int `yaml:"height"`

	// BorderInset 每个格子预留为间隙的比例（0 ≤ BorderInset < 0.5）
	BorderInset float64 `yaml:"borderInset"`

	// DefaultColor 普通格子颜色
	DefaultColor HexColor `yaml:"defaultColor"`

	// HighlightColor 高亮格子颜色
	HighlightColor HexColor `yaml:"highlightColor"`
}

// DefaultGridConfig 返回默认网格配置
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Width:          DefaultGridWidth,
		Height:         DefaultGridHeight,
		BorderInset:    DefaultBorderInset,
		DefaultColor:   HexColor{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
		HighlightColor: HexColor{R: 0xff, G: 0x66, B: 0x66, A: 0xff},
	}
}

// Validate 验证网格配置
//
// 返回:
//   - error: 包装了 ErrInvalidConfig 的错误，配置有效时返回 nil
func (c GridConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	return ValidateBorderInset(c.BorderInset)
}

// ValidateBorderInset 检查边框内缩比例是否在 [0, MaxBorderInset) 内
func ValidateBorderInset(inset float64) error {
	if math.IsNaN(inset) || inset < 0 || inset >= MaxBorderInset {
		return fmt.Errorf("%w: borderInset %v out of range [0, %v)", ErrInvalidConfig, inset, MaxBorderInset)
	}
	return nil
}

// HexColor 可从 YAML 十六进制字符串读取的颜色
// 支持 "#rgb"、"#rrggbb" 和 "#rrggbbaa"
type HexColor color.RGBA

// ParseHexColor 解析十六进制颜色字符串
func ParseHexColor(s string) (HexColor, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	alpha := uint8(0xff)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:9], 16, 8)
		if err != nil {
			return HexColor{}, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return HexColor{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return HexColor{R: r, G: g, B: b, A: alpha}, nil
}

// Color 返回标准库颜色值
func (c HexColor) Color() color.RGBA {
	return color.RGBA(c)
}

// String 返回 "#rrggbb" 或 "#rrggbbaa"
func (c HexColor) String() string {
	hex := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
	if c.A != 0xff {
		hex += fmt.Sprintf("%02x", c.A)
	}
	return hex
}

// UnmarshalYAML 实现 yaml.Unmarshaler
func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: color must be a string like \"#rrggbb\"", value.Line)
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML 实现 yaml.Marshaler
func (c HexColor) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}
