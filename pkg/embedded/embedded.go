// Package embedded 提供嵌入配置文件的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）或 mobile 包中。
// 本包保存该文件系统，让 app 等包在没有外部配置文件时读取默认配置。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// DefaultConfigPath 默认网格配置在嵌入文件系统中的路径
const DefaultConfigPath = "data/grid.yaml"

// ErrNotInitialized 表示在 Init 之前访问了嵌入资源
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	dataFS      fs.FS
	initialized bool
)

// Init 设置嵌入的数据文件系统
// 必须在 main() 开始时、读取配置之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径：正斜杠、去掉 "./" 前缀
func normalize(path string) (string, error) {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	if !strings.HasPrefix(path, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return path, nil
}

// ReadFile 读取嵌入文件的内容
// 路径必须以 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, path)
}

// Exists 检查文件是否存在于嵌入文件系统中
func Exists(path string) bool {
	if !initialized {
		return false
	}
	path, err := normalize(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(dataFS, path)
	return err == nil
}
