package ecs

import (
	"reflect"
	"slices"
)

// EntityID 是实体的唯一标识符
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 组件通过泛型函数访问（AddComponent / GetComponent / GetEntitiesWith1 ...），
// 组件类型即其 Go 类型，同一实体上每种类型最多一个组件。
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]any
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]any),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
}

// EntityCount 返回存活实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}

// Exists 检查实体是否存在
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// AddComponent 为实体添加组件，已存在同类型组件时覆盖
// 实体不存在时返回 false
func AddComponent[T any](em *EntityManager, id EntityID, component T) bool {
	compMap, exists := em.components[id]
	if !exists {
		return false
	}
	compMap[reflect.TypeFor[T]()] = component
	return true
}

// GetComponent 获取实体的 T 类型组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	compMap, exists := em.components[id]
	if !exists {
		return zero, false
	}
	comp, found := compMap[reflect.TypeFor[T]()]
	if !found {
		return zero, false
	}
	return comp.(T), true
}

// HasComponent 检查实体是否拥有 T 类型组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	_, ok := GetComponent[T](em, id)
	return ok
}

// RemoveComponent 从实体移除 T 类型组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, reflect.TypeFor[T]())
	}
}

// GetEntitiesWith1 查询拥有 T 类型组件的所有实体（按ID升序）
func GetEntitiesWith1[T any](em *EntityManager) []EntityID {
	return em.entitiesWith(reflect.TypeFor[T]())
}

// GetEntitiesWith2 查询同时拥有 T1、T2 类型组件的所有实体（按ID升序）
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.entitiesWith(reflect.TypeFor[T1](), reflect.TypeFor[T2]())
}

// entitiesWith 查询拥有指定组件类型组合的所有实体
// 结果按ID排序，保证系统每帧的处理顺序稳定
func (em *EntityManager) entitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	slices.Sort(result)
	return result
}
