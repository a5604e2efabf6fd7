// Package ecs 提供特效所用的轻量实体组件存储
//
// 每个渲染表面（Surface）拥有一个独立的 EntityManager，
// 表面上的节点、连线、粒子都以实体形式存放在其中。
package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符
// ID 从 1 开始单调递增，永不复用，0 保留为无效ID
type EntityID uint64

// EntityManager 管理所有实体和组件
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]map[reflect.Type]interface{}),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyAll 立即删除全部实体
// 用于整体重建（population rebuild），已分配的ID不会被复用
func (em *EntityManager) DestroyAll() {
	em.components = make(map[EntityID]map[reflect.Type]interface{})
}

// EntityCount 返回当前存活的实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}

// AddComponent 为实体添加组件
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 返回的ID按创建顺序（升序）排列，保证每帧遍历顺序稳定
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

	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
