package ecs

import "reflect"

// typeKey 返回类型参数 T 对应的组件索引键
// 约定组件一律以指针形式存储（如 *PositionComponent），
// 此处通过 (*T)(nil) 取类型信息，避免每次构造组件字面量的分配开销
func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// AddComponent 泛型版组件挂载，免去调用方的 interface{} 样板
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.AddComponent(id, component)
}

// GetComponent 泛型版组件读取，返回已断言为具体类型的组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, typeKey[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// HasComponent 泛型版组件存在性检查
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, typeKey[T]())
}

// GetEntitiesWith1 查询拥有组件 T1 的全部实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	t1 := typeKey[T1]()
	result := make([]EntityID, 0)
	for id, compMap := range em.components {
		if _, ok := compMap[t1]; ok {
			result = append(result, id)
		}
	}
	return result
}

// GetEntitiesWith2 查询同时拥有组件 T1、T2 的全部实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	t1, t2 := typeKey[T1](), typeKey[T2]()
	result := make([]EntityID, 0)
	for id, compMap := range em.components {
		if _, ok := compMap[t1]; !ok {
			continue
		}
		if _, ok := compMap[t2]; !ok {
			continue
		}
		result = append(result, id)
	}
	return result
}

// GetEntitiesWith3 查询同时拥有组件 T1、T2、T3 的全部实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	t1, t2, t3 := typeKey[T1](), typeKey[T2](), typeKey[T3]()
	result := make([]EntityID, 0)
	for id, compMap := range em.components {
		if _, ok := compMap[t1]; !ok {
			continue
		}
		if _, ok := compMap[t2]; !ok {
			continue
		}
		if _, ok := compMap[t3]; !ok {
			continue
		}
		result = append(result, id)
	}
	return result
}

// GetEntitiesWith4 查询同时拥有组件 T1..T4 的全部实体
func GetEntitiesWith4[T1, T2, T3, T4 any](em *EntityManager) []EntityID {
	t1, t2, t3, t4 := typeKey[T1](), typeKey[T2](), typeKey[T3](), typeKey[T4]()
	result := make([]EntityID, 0)
	for id, compMap := range em.components {
		if _, ok := compMap[t1]; !ok {
			continue
		}
		if _, ok := compMap[t2]; !ok {
			continue
		}
		if _, ok := compMap[t3]; !ok {
			continue
		}
		if _, ok := compMap[t4]; !ok {
			continue
		}
		result = append(result, id)
	}
	return result
}

// GetEntitiesWith5 查询同时拥有组件 T1..T5 的全部实体
func GetEntitiesWith5[T1, T2, T3, T4, T5 any](em *EntityManager) []EntityID {
	t1, t2, t3 := typeKey[T1](), typeKey[T2](), typeKey[T3]()
	t4, t5 := typeKey[T4](), typeKey[T5]()
	result := make([]EntityID, 0)
	for id, compMap := range em.components {
		if _, ok := compMap[t1]; !ok {
			continue
		}
		if _, ok := compMap[t2]; !ok {
			continue
		}
		if _, ok := compMap[t3]; !ok {
			continue
		}
		if _, ok := compMap[t4]; !ok {
			continue
		}
		if _, ok := compMap[t5]; !ok {
			continue
		}
		result = append(result, id)
	}
	return result
}
