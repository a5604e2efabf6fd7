package components

import "github.com/decker502/neuralfx/pkg/types"

// PositionComponent 实体在表面坐标系中的当前位置
// 节点：创建后固定不变；流动粒子：每个 tick 由插值结果覆盖
type PositionComponent struct {
	X float64
	Y float64
}

// Point 返回位置对应的 types.Point
func (p *PositionComponent) Point() types.Point {
	return types.Point{X: p.X, Y: p.Y}
}
