package components

import "github.com/decker502/hovergrid/pkg/config"

// GridComponent 标识网格实体并持有当前网格配置
//
// Version 是配置版本号，每次修改配置时递增。
// 几何系统比较 Version 与 CellMeshComponent.BuiltVersion 决定是否重建网格数据。
type GridComponent struct {
	// Config 当前网格配置（一帧内只读）
	Config config.GridConfig

	// Version 配置版本号
	Version uint64
}
