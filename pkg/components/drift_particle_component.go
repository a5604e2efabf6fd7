package components

// DriftParticleComponent 英雄区漂浮粒子
//
// 创建后只有视差偏移 OffsetX/OffsetY 会被修改，
// 其余参数不可变，上升动画由渲染层根据这些参数声明式计算。
type DriftParticleComponent struct {
	Index int // 生成序号，决定视差速度档位（Index % 3）

	StartXPercent float64 // 水平起点（表面宽度的百分比，0..100）
	StartYPercent float64 // 垂直起点（表面高度的百分比，100..200，位于可视区域下方）

	Delay    float64 // 动画延迟（秒）
	Duration float64 // 单次上升时长（秒）
	Size     float64 // 粒子直径（像素）

	OffsetX float64 // 指针视差偏移（像素）
	OffsetY float64
}
