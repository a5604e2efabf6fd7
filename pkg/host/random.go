package host

// Random [0,1) 均匀随机数源
// *math/rand.Rand 直接满足该接口
type Random interface {
	Float64() float64
}

// SequenceRandom 按给定序列循环返回随机数
// 用于测试与可复现的演示，序列为空时恒返回 0
type SequenceRandom struct {
	values []float64
	next   int
}

// NewSequenceRandom 创建序列随机源
func NewSequenceRandom(values ...float64) *SequenceRandom {
	return &SequenceRandom{values: values}
}

// Float64 返回序列中的下一个值
func (r *SequenceRandom) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

// Draws 返回已经消费的随机数个数
func (r *SequenceRandom) Draws() int {
	return r.next
}
