package systems

import (
	"math"

	"github.com/decker502/neuralfx/pkg/components"
	"github.com/decker502/neuralfx/pkg/utils"
)

// driftFadePortion 每次上升开头和结尾用于淡入淡出的比例
const driftFadePortion = 0.1

// DriftFrameState 某一时刻漂浮粒子的声明式动画结果
type DriftFrameState struct {
	XPercent float64 // 相对表面的水平位置（百分比，未含视差偏移）
	YPercent float64 // 相对表面的垂直位置（百分比）
	Alpha    float64 // 0..1
}

// DriftFrame 计算粒子在 elapsed 秒时的上升动画状态
//
// 规则：
//   - elapsed < Delay：停留在起点，完全透明
//   - 之后每 Duration 秒循环一次，从起点向上移动 riseDistance 个百分点
//   - 每次循环开头和结尾各 10% 的时间内淡入、淡出
func DriftFrame(p components.DriftParticleComponent, elapsed, riseDistance float64) DriftFrameState {
	state := DriftFrameState{
		XPercent: p.StartXPercent,
		YPercent: p.StartYPercent,
	}

	local := elapsed - p.Delay
	if local < 0 || p.Duration <= 0 {
		return state
	}

	t := math.Mod(local, p.Duration) / p.Duration
	state.YPercent = p.StartYPercent - utils.EaseInOutSine(t)*riseDistance
	state.Alpha = utils.Clamp01(math.Min(t, 1-t) / driftFadePortion)
	return state
}
