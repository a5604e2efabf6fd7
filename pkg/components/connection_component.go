package components

import "github.com/decker502/neuralfx/pkg/types"

// ConnectionComponent 两个节点之间的连线
//
// 端点在创建时按值复制，不引用节点实体；整体重建时一并重新生成，
// 从不原地修改。Length/AngleDeg 仅用于渲染线段的长度和朝向。
type ConnectionComponent struct {
	From           types.Point
	To             types.Point
	Length         float64 // 欧几里得长度
	AngleDeg       float64 // atan2(Δy, Δx)，单位：度
	AnimationDelay float64 // 闪烁动画延迟（秒）
}
