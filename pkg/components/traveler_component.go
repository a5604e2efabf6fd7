package components

import "github.com/decker502/neuralfx/pkg/types"

// TravelerComponent 沿节点路径流动的数据粒子
//
// 不变量：Progress ∈ [0, 1)，单次遍历内单调不减；
// 到达 1 的同一个 tick 内重新抽取 (Source, Destination) 并归零。
// Source 与 Destination 可以是同一个节点，此时该段不移动。
// 当前插值位置保存在同一实体的 PositionComponent 中。
type TravelerComponent struct {
	Source      types.Point
	Destination types.Point
	Progress    float64
}
