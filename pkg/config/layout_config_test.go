package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestParseAppConfig 测试完整配置文件解析
func TestParseAppConfig(t *testing.T) {
	data := []byte(`
grid:
  width: 4
  height: 3
  borderInset: 0.1
  defaultColor: "#102030"
  highlightColor: "#ff000080"
view:
  windowWidth: 640
  windowHeight: 480
  pixelsPerUnit: 32
  background: "#fff"
  title: "test"
  autoFit: true
`)

	cfg, err := ParseAppConfig(data)
	if err != nil {
		t.Fatalf("ParseAppConfig() error = %v", err)
	}

	if cfg.Grid.Width != 4 || cfg.Grid.Height != 3 {
		t.Errorf("grid size = %dx%d, want 4x3", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Grid.BorderInset != 0.1 {
		t.Errorf("BorderInset = %v, want 0.1", cfg.Grid.BorderInset)
	}
	if got := cfg.Grid.DefaultColor; got != (HexColor{R: 0x10, G: 0x20, B: 0x30, A: 0xff}) {
		t.Errorf("DefaultColor = %v, want #102030", got)
	}
	if got := cfg.Grid.HighlightColor; got != (HexColor{R: 0xff, A: 0x80}) {
		t.Errorf("HighlightColor = %v, want #ff000080", got)
	}
	if got := cfg.View.Background; got != (HexColor{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("Background = %v, want #ffffff", got)
	}
	if cfg.View.PixelsPerUnit != 32 || cfg.View.Title != "test" || !cfg.View.AutoFit {
		t.Errorf("View = %+v", cfg.View)
	}
}

// TestParseAppConfig_Defaults 测试缺省字段保留默认值
func TestParseAppConfig_Defaults(t *testing.T) {
	cfg, err := ParseAppConfig([]byte("grid:\n  width: 5\n"))
	if err != nil {
		t.Fatalf("ParseAppConfig() error = %v", err)
	}

	if cfg.Grid.Width != 5 {
		t.Errorf("Width = %d, want 5", cfg.Grid.Width)
	}
	if cfg.Grid.Height != DefaultGridHeight {
		t.Errorf("Height = %d, want default %d", cfg.Grid.Height, DefaultGridHeight)
	}
	if cfg.Grid.BorderInset != DefaultBorderInset {
		t.Errorf("BorderInset = %v, want default %v", cfg.Grid.BorderInset, DefaultBorderInset)
	}
	if cfg.View != DefaultViewConfig() {
		t.Errorf("View = %+v, want defaults", cfg.View)
	}
}

// TestParseAppConfig_InvalidGridIsNotParseError 网格参数无效不影响解析
func TestParseAppConfig_InvalidGridIsNotParseError(t *testing.T) {
	cfg, err := ParseAppConfig([]byte("grid:\n  borderInset: 0.7\n"))
	if err != nil {
		t.Fatalf("ParseAppConfig() error = %v", err)
	}
	if err := cfg.Grid.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
	}
}

// TestParseAppConfig_Errors 测试错误输入
func TestParseAppConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantMsg string
	}{
		{"YAML语法错误", "grid: [", "failed to parse"},
		{"颜色格式错误", "grid:\n  defaultColor: \"#zzzzzz\"\n", "invalid color"},
		{"颜色不是字符串", "grid:\n  defaultColor: [1, 2]\n", "color must be a string"},
		{"窗口尺寸为零", "view:\n  windowWidth: 0\n", "invalid view config"},
		{"缩放为负", "view:\n  pixelsPerUnit: -1\n", "invalid view config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAppConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want containing %q", err, tt.wantMsg)
			}
		})
	}
}

// TestLoadAppConfig 测试从文件加载
func TestLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  width: 2\n  height: 2\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig() error = %v", err)
	}
	if cfg.Grid.Width != 2 || cfg.Grid.Height != 2 {
		t.Errorf("grid size = %dx%d, want 2x2", cfg.Grid.Width, cfg.Grid.Height)
	}

	if _, err := LoadAppConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestAppConfigMarshalRoundTrip 导出的配置可以重新加载
func TestAppConfigMarshalRoundTrip(t *testing.T) {
	original := DefaultAppConfig()
	original.Grid.HighlightColor = HexColor{R: 1, G: 2, B: 3, A: 4}

	data, err := original.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "\"#01020304\"") && !strings.Contains(string(data), "'#01020304'") {
		t.Errorf("marshalled YAML missing highlight color:\n%s", data)
	}

	parsed, err := ParseAppConfig(data)
	if err != nil {
		t.Fatalf("ParseAppConfig() error = %v", err)
	}
	if *parsed != *original {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *parsed, *original)
	}
}
