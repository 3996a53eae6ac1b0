package systems

import (
	"github.com/decker502/hovergrid/pkg/components"
	"github.com/decker502/hovergrid/pkg/config"
	"github.com/decker502/hovergrid/pkg/ecs"
	"github.com/decker502/hovergrid/pkg/types"
)

// FrameInput 输入层每帧提供的数据
type FrameInput struct {
	// DeltaTime 距上一帧的时间（秒）
	DeltaTime float64

	// PointerX, PointerY 指针位置，已投影到网格世界坐标
	PointerX float64
	PointerY float64

	// Interactive 是否处于交互状态；为 false 时不高亮任何格子
	Interactive bool
}

// FrameStats 一帧的执行结果
type FrameStats struct {
	// DrawCalls 本帧提交的 DrawCell 次数
	DrawCalls int

	// Highlighted 本帧高亮的格子
	Highlighted types.CellIndex

	// Rebuilt 本帧是否重建了几何数据
	Rebuilt bool

	// RebuildErr 本帧重建失败的原因
	RebuildErr error
}

// FrameRenderer 网格每帧流程的编排者
//
// 持有一个网格实体（GridComponent + CellMeshComponent + PointerComponent + HoverHighlightComponent），
// Tick 依次执行：按需重建几何 → 计算高亮格子 → 逐格绘制。
//
// 单线程使用：配置只能在两次 Tick 之间修改。
type FrameRenderer struct {
	entityManager *ecs.EntityManager
	gridEntity    ecs.EntityID

	geometrySystem  *GridGeometrySystem
	highlightSystem *HighlightSystem
	renderSystem    *GridRenderSystem
}

// NewFrameRenderer 创建网格实体和相关系统
// 几何数据在第一次 Tick 时才构建
func NewFrameRenderer(cfg config.GridConfig) *FrameRenderer {
	em := ecs.NewEntityManager()
	gridEntity := em.CreateEntity()

	ecs.AddComponent(em, gridEntity, &components.GridComponent{Config: cfg, Version: 1})
	ecs.AddComponent(em, gridEntity, &components.CellMeshComponent{})
	ecs.AddComponent(em, gridEntity, &components.PointerComponent{})
	ecs.AddComponent(em, gridEntity, &components.HoverHighlightComponent{Cell: types.NoCell})

	return &FrameRenderer{
		entityManager:   em,
		gridEntity:      gridEntity,
		geometrySystem:  NewGridGeometrySystem(em),
		highlightSystem: NewHighlightSystem(em),
		renderSystem:    NewGridRenderSystem(em),
	}
}

// Config 返回当前网格配置
func (r *FrameRenderer) Config() config.GridConfig {
	return r.grid().Config
}

// SetConfig 替换网格配置，下一次 Tick 时重建几何数据
func (r *FrameRenderer) SetConfig(cfg config.GridConfig) {
	grid := r.grid()
	grid.Config = cfg
	grid.Version++
}

// Invalidate 不修改配置，强制下一次 Tick 重建几何数据
func (r *FrameRenderer) Invalidate() {
	r.grid().Version++
}

// Version 返回当前配置版本号
func (r *FrameRenderer) Version() uint64 {
	return r.grid().Version
}

// Mesh 返回缓存的几何与样式数据（只读）
func (r *FrameRenderer) Mesh() *components.CellMeshComponent {
	mesh, _ := ecs.GetComponent[*components.CellMeshComponent](r.entityManager, r.gridEntity)
	return mesh
}

// Highlighted 返回最近一次 Tick 计算出的高亮格子
func (r *FrameRenderer) Highlighted() types.CellIndex {
	hl, _ := ecs.GetComponent[*components.HoverHighlightComponent](r.entityManager, r.gridEntity)
	return hl.Cell
}

// Tick 执行一帧
//
// 参数:
//   - frame: 本帧输入
//   - drawer: 渲染后端
//
// 配置无效不会导致 Tick 失败：重建错误记录在 FrameStats.RebuildErr 中，
// 宽高不为正时绘制循环零次迭代。
func (r *FrameRenderer) Tick(frame FrameInput, drawer CellDrawer) FrameStats {
	var stats FrameStats

	stats.Rebuilt, stats.RebuildErr = r.geometrySystem.Update()

	pointer, _ := ecs.GetComponent[*components.PointerComponent](r.entityManager, r.gridEntity)
	pointer.WorldX = frame.PointerX
	pointer.WorldY = frame.PointerY
	pointer.Active = frame.Interactive

	r.highlightSystem.Update()
	stats.Highlighted = r.Highlighted()

	stats.DrawCalls = r.renderSystem.Draw(drawer)
	return stats
}

func (r *FrameRenderer) grid() *components.GridComponent {
	grid, _ := ecs.GetComponent[*components.GridComponent](r.entityManager, r.gridEntity)
	return grid
}
