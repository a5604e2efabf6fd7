package utils

import (
	"math"

	"github.com/decker502/neuralfx/pkg/types"
)

// Distance 两点间欧几里得距离
func Distance(a, b types.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// AngleDegrees 从 a 指向 b 的方向角（度）
// 公式：atan2(Δy, Δx) * 180 / π，范围 (-180, 180]
func AngleDegrees(a, b types.Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi
}

// LerpPoint 在两点之间按 t 线性插值，两个轴独立计算
// t=0 精确返回 a
func LerpPoint(a, b types.Point, t float64) types.Point {
	return types.Point{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
	}
}

// ProximityIntensity 计算指针接近强度（线性衰减）
//
// 参数：
//   - distance: 指针到目标的距离
//   - threshold: 生效阈值
//
// 返回：
//   - intensity: 距离 0 时为 1，越接近阈值越趋近 0
//   - ok: distance < threshold 时为 true，否则目标不应高亮
func ProximityIntensity(distance, threshold float64) (intensity float64, ok bool) {
	if threshold <= 0 || distance >= threshold {
		return 0, false
	}
	return 1 - distance/threshold, true
}

// RandomIndex 将 [0,1) 的随机数映射为 [0,n) 的下标
// 对 r 恰好为 1 的异常随机源做防护，n<=0 时返回 -1
func RandomIndex(r float64, n int) int {
	if n <= 0 {
		return -1
	}
	i := int(math.Floor(r * float64(n)))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// RandomRange 将 [0,1) 的随机数映射到 [min, max)
func RandomRange(r, min, max float64) float64 {
	return min + r*(max-min)
}
