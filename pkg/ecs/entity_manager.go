// Package ecs 是小游戏世界使用的最小实体-组件存储
package ecs

import (
	"reflect"
	"slices"
)

// EntityID 实体标识，0 保留为无效 ID
type EntityID uint64

// componentSet 单个实体的组件，按具体类型索引
type componentSet map[reflect.Type]any

// EntityManager 管理实体与组件
//
// 非并发安全：只应在游戏主循环（Update）中访问。
type EntityManager struct {
	lastID   EntityID
	entities map[EntityID]componentSet
	// doomed 已标记、等待 RemoveMarkedEntities 清理的实体
	doomed []EntityID
}

// NewEntityManager 创建空的实体管理器
func NewEntityManager() *EntityManager {
	return &EntityManager{entities: make(map[EntityID]componentSet)}
}

// CreateEntity 创建实体；ID 单调递增，因此 ID 顺序即创建顺序
func (em *EntityManager) CreateEntity() EntityID {
	em.lastID++
	em.entities[em.lastID] = componentSet{}
	return em.lastID
}

// DestroyEntity 标记实体待删除，重复标记无效果
func (em *EntityManager) DestroyEntity(id EntityID) {
	if !em.IsMarkedForDestroy(id) {
		em.doomed = append(em.doomed, id)
	}
}

// IsMarkedForDestroy 实体是否已被标记删除
func (em *EntityManager) IsMarkedForDestroy(id EntityID) bool {
	return slices.Contains(em.doomed, id)
}

// Exists 实体是否存在（包括已标记但尚未清理的实体）
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.entities[id]
	return ok
}

// RemoveMarkedEntities 清理所有标记删除的实体，每帧系统更新之后调用
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.doomed {
		delete(em.entities, id)
	}
	em.doomed = em.doomed[:0]
}

// Clear 删除所有实体，ID 计数器不回退
func (em *EntityManager) Clear() {
	clear(em.entities)
	em.doomed = em.doomed[:0]
}

// Count 当前实体数量
func (em *EntityManager) Count() int {
	return len(em.entities)
}

// AddComponent 以组件的动态类型为键添加组件；实体不存在时忽略
func (em *EntityManager) AddComponent(id EntityID, component any) {
	em.put(id, reflect.TypeOf(component), component)
}

// RemoveComponent 移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, t reflect.Type) {
	delete(em.entities[id], t)
}

// GetComponent 获取指定类型的组件
func (em *EntityManager) GetComponent(id EntityID, t reflect.Type) (any, bool) {
	c, ok := em.entities[id][t]
	return c, ok
}

// HasComponent 实体是否拥有指定类型的组件
func (em *EntityManager) HasComponent(id EntityID, t reflect.Type) bool {
	_, ok := em.entities[id][t]
	return ok
}

// GetEntitiesWith 返回拥有全部指定组件类型的实体，按 ID 升序
// 不传类型时返回空结果
func (em *EntityManager) GetEntitiesWith(types ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)
	if len(types) == 0 {
		return result
	}
	for id, set := range em.entities {
		if hasAll(set, types) {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}

func hasAll(set componentSet, types []reflect.Type) bool {
	for _, t := range types {
		if _, ok := set[t]; !ok {
			return false
		}
	}
	return true
}

func (em *EntityManager) put(id EntityID, t reflect.Type, component any) {
	if set, ok := em.entities[id]; ok {
		set[t] = component
	}
}

// ===== 泛型 API =====

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// AddComponent 泛型版本的添加组件
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.put(id, typeOf[T](), component)
}

// GetComponent 泛型版本的获取组件，省去类型断言
//
//	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	c, ok := em.GetComponent(id, typeOf[T]())
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := c.(T)
	return typed, ok
}

// HasComponent 泛型版本的组件检查
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, typeOf[T]())
}

// RemoveComponent 泛型版本的移除组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.RemoveComponent(id, typeOf[T]())
}

// GetEntitiesWith1 查询拥有组件 A 的实体
func GetEntitiesWith1[A any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[A]())
}

// GetEntitiesWith2 查询同时拥有组件 A、B 的实体
func GetEntitiesWith2[A, B any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[A](), typeOf[B]())
}

// GetEntitiesWith3 查询同时拥有组件 A、B、C 的实体
func GetEntitiesWith3[A, B, C any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[A](), typeOf[B](), typeOf[C]())
}
