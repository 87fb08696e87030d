package ecs

import "reflect"

// EntityID 实体的全局唯一句柄
// 0 保留为无效值，有效 ID 从 1 开始单调递增
type EntityID uint64

// EntityManager 集中存储所有实体及其组件
//
// 设计要点:
//   - 组件按 reflect.Type 索引，同一实体同类型组件只保留一份
//   - DestroyEntity 只做销毁标记，由帧末的 RemoveMarkedEntities 统一清除，
//     保证一帧内各系统遍历时实体不会中途消失
//   - 重复销毁同一实体是无害的空操作（标记集合天然去重）
type EntityManager struct {
	nextID uint64

	// 实体-组件映射: EntityID -> 组件类型 -> 组件实例
	components map[EntityID]map[reflect.Type]interface{}

	// 本帧待销毁的实体集合
	pendingDestroy map[EntityID]struct{}
}

// NewEntityManager 创建空的实体管理器
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:         1,
		components:     make(map[EntityID]map[reflect.Type]interface{}),
		pendingDestroy: make(map[EntityID]struct{}),
	}
}

// CreateEntity 分配一个新实体并返回其句柄
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity 标记实体待销毁
// 实体在 RemoveMarkedEntities 执行前仍然可见；重复标记无副作用
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.pendingDestroy[id] = struct{}{}
}

// RemoveMarkedEntities 清除所有已标记销毁的实体
// 必须在帧末、所有系统更新完毕之后调用一次
func (em *EntityManager) RemoveMarkedEntities() {
	for id := range em.pendingDestroy {
		delete(em.components, id)
	}
	clear(em.pendingDestroy)
}

// AddComponent 为实体挂载组件
// 同类型组件重复添加时覆盖旧值；实体不存在时静默忽略
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	if compMap, exists := em.components[id]; exists {
		compMap[reflect.TypeOf(component)] = component
	}
}

// RemoveComponent 摘除实体上指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent 读取实体上指定类型的组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否挂载了指定类型的组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// GetEntitiesWith 查询同时拥有全部给定组件类型的实体
// 返回顺序不作任何保证，调用方不得依赖遍历顺序
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
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

	return result
}
