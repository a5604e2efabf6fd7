package components

// NodeComponent 神经网络节点的视觉状态
//
// 位置保存在同一实体的 PositionComponent 中，直到整体重建前都不会改变。
// 其余字段由指针接近效果与激活脉冲修改。
type NodeComponent struct {
	Index          int     // 节点在本次重建中的序号
	AnimationDelay float64 // 呼吸动画延迟（秒），创建时随机

	// 指针接近高亮
	Highlighted bool    // 指针是否在阈值范围内
	Intensity   float64 // 接近强度 0..1
	Scale       float64 // 视觉缩放（1.0 = 原始大小）
	Opacity     float64 // 视觉透明度

	// 激活脉冲
	Active bool
}
