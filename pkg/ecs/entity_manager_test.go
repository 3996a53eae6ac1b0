package ecs

import (
	"testing"
)

// 测试组件类型定义
type testSizeComponent struct {
	Width, Height int
}

type testPointerComponent struct {
	X, Y float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}

	if em.EntityCount() != 2 {
		t.Errorf("EntityCount = %d, want 2", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 添加组件
	size := &testSizeComponent{Width: 16, Height: 9}
	if !AddComponent(em, id, size) {
		t.Fatal("AddComponent should succeed for existing entity")
	}

	// 获取组件
	retrieved, found := GetComponent[*testSizeComponent](em, id)
	if !found {
		t.Fatal("Component should be found")
	}
	if retrieved != size {
		t.Error("GetComponent should return the same pointer")
	}

	// 值类型和指针类型是不同的组件类型
	if _, found := GetComponent[testSizeComponent](em, id); found {
		t.Error("Value type should not match pointer component")
	}
}

func TestAddComponent_MissingEntity(t *testing.T) {
	em := NewEntityManager()
	if AddComponent(em, EntityID(42), &testSizeComponent{}) {
		t.Error("AddComponent should fail for unknown entity")
	}
	if _, found := GetComponent[*testSizeComponent](em, EntityID(42)); found {
		t.Error("Unknown entity should have no components")
	}
}

func TestHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 未添加组件前应该返回false
	if HasComponent[*testSizeComponent](em, id) {
		t.Error("Should not have component before adding")
	}

	AddComponent(em, id, &testSizeComponent{})

	// 添加后应该返回true
	if !HasComponent[*testSizeComponent](em, id) {
		t.Error("Should have component after adding")
	}

	RemoveComponent[*testSizeComponent](em, id)
	if HasComponent[*testSizeComponent](em, id) {
		t.Error("Should not have component after removal")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testSizeComponent{})

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.Exists(id) || !HasComponent[*testSizeComponent](em, id) {
		t.Error("Entity should still exist before cleanup")
	}

	// 清理后实体消失
	em.RemoveMarkedEntities()
	if em.Exists(id) || HasComponent[*testSizeComponent](em, id) {
		t.Error("Entity should be removed after cleanup")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	// 创建不同组件组合的实体
	id1 := em.CreateEntity()
	AddComponent(em, id1, &testSizeComponent{})
	AddComponent(em, id1, &testPointerComponent{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &testSizeComponent{})

	id3 := em.CreateEntity()
	AddComponent(em, id3, &testPointerComponent{})

	// 查询同时拥有两种组件的实体
	entities := GetEntitiesWith2[*testSizeComponent, *testPointerComponent](em)
	if len(entities) != 1 || entities[0] != id1 {
		t.Errorf("Expected [%d], got %v", id1, entities)
	}

	// 查询只拥有 Size 的实体（按ID升序）
	sizeEntities := GetEntitiesWith1[*testSizeComponent](em)
	if len(sizeEntities) != 2 || sizeEntities[0] != id1 || sizeEntities[1] != id2 {
		t.Errorf("Expected [%d %d], got %v", id1, id2, sizeEntities)
	}
}

func TestDestroyMultipleEntities(t *testing.T) {
	em := NewEntityManager()

	// 创建多个实体
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	id3 := em.CreateEntity()

	AddComponent(em, id1, &testSizeComponent{})
	AddComponent(em, id2, &testSizeComponent{})
	AddComponent(em, id3, &testSizeComponent{})

	// 标记两个实体删除
	em.DestroyEntity(id1)
	em.DestroyEntity(id3)

	// 清理
	em.RemoveMarkedEntities()

	// 验证只有id2存在
	remaining := GetEntitiesWith1[*testSizeComponent](em)
	if len(remaining) != 1 || remaining[0] != id2 {
		t.Errorf("Expected only id2 to remain, got %v", remaining)
	}
}
