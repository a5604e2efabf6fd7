package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// NetworkStyle 神经网络的绘制参数
type NetworkStyle struct {
	LineColor      color.RGBA
	NodeColor      color.RGBA
	ActiveColor    color.RGBA
	ParticleColor  color.RGBA
	LineWidth      float32
	NodeRadius     float32
	ParticleRadius float32
	// BreathPeriod 连线与节点呼吸动画周期（秒）
	BreathPeriod float64
}

// DefaultNetworkStyle 返回默认配色（深色背景上的青色网络）
func DefaultNetworkStyle() NetworkStyle {
	return NetworkStyle{
		LineColor:      color.RGBA{R: 100, G: 200, B: 255, A: 255},
		NodeColor:      color.RGBA{R: 120, G: 220, B: 255, A: 255},
		ActiveColor:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		ParticleColor:  color.RGBA{R: 180, G: 240, B: 255, A: 255},
		LineWidth:      1,
		NodeRadius:     3,
		ParticleRadius: 1.5,
		BreathPeriod:   3,
	}
}

// NetworkRenderSystem 使用 ebiten vector 绘制神经网络
// 绘制顺序：连线 -> 节点 -> 流动粒子
type NetworkRenderSystem struct {
	animator *NetworkGraphAnimator
	style    NetworkStyle
}

// NewNetworkRenderSystem 创建网络渲染系统
func NewNetworkRenderSystem(animator *NetworkGraphAnimator, style NetworkStyle) *NetworkRenderSystem {
	return &NetworkRenderSystem{animator: animator, style: style}
}

// Draw 绘制当前帧
// elapsed 为动画开始以来的秒数，用于呼吸效果
func (s *NetworkRenderSystem) Draw(screen *ebiten.Image, elapsed float64) {
	if s.animator == nil || !s.animator.Enabled() {
		return
	}

	for _, c := range s.animator.Connections() {
		alpha := 0.4 * BreathingAlpha(elapsed, c.AnimationDelay, s.style.BreathPeriod)
		vector.StrokeLine(screen,
			float32(c.From.X), float32(c.From.Y), float32(c.To.X), float32(c.To.Y),
			s.style.LineWidth, ScaleAlpha(s.style.LineColor, alpha), true)
	}

	for _, n := range s.animator.Nodes() {
		clr := s.style.NodeColor
		if n.Active {
			clr = s.style.ActiveColor
		}
		alpha := n.Opacity * BreathingAlpha(elapsed, n.AnimationDelay, s.style.BreathPeriod)
		if n.Active {
			alpha = 1
		}
		vector.DrawFilledCircle(screen, float32(n.Position.X), float32(n.Position.Y),
			NodeRadius(s.style.NodeRadius, n), ScaleAlpha(clr, alpha), true)
	}

	for _, p := range s.animator.Particles() {
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y),
			s.style.ParticleRadius, s.style.ParticleColor, true)
	}
}

// BreathingAlpha 呼吸动画的透明度系数，范围 [0.5, 1]
// delay 错开不同实体的相位；period <= 0 时恒为 1
func BreathingAlpha(elapsed, delay, period float64) float64 {
	if period <= 0 {
		return 1
	}
	phase := 2 * math.Pi * (elapsed - delay) / period
	return 0.75 + 0.25*math.Cos(phase)
}

// NodeRadius 节点半径：按接近缩放放大，激活时再放大 1.5 倍
func NodeRadius(base float32, n NodeView) float32 {
	r := base * float32(n.Scale)
	if n.Active {
		r *= 1.5
	}
	return r
}

// ScaleAlpha 按系数缩放预乘颜色
func ScaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha >= 1 {
		return c
	}
	scale := func(v uint8) uint8 {
		return uint8(math.Round(float64(v) * alpha))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
