package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/neuralfx/pkg/components"
	"github.com/decker502/neuralfx/pkg/types"
)

// DriftRenderSystem 绘制英雄区漂浮粒子
type DriftRenderSystem struct {
	field        *DriftParticleField
	riseDistance float64
	color        color.RGBA
}

// NewDriftRenderSystem 创建漂浮粒子渲染系统
func NewDriftRenderSystem(field *DriftParticleField, riseDistance float64) *DriftRenderSystem {
	return &DriftRenderSystem{
		field:        field,
		riseDistance: riseDistance,
		color:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// SetField 替换粒子场（启动重试成功后由宿主调用）
func (s *DriftRenderSystem) SetField(field *DriftParticleField) {
	s.field = field
}

// Draw 绘制当前帧，超出英雄区的粒子不绘制
func (s *DriftRenderSystem) Draw(screen *ebiten.Image, elapsed float64) {
	if s.field == nil || s.field.State() != DriftReady {
		return
	}

	bounds := s.field.Bounds()
	for _, p := range s.field.Particles() {
		frame := DriftFrame(p, elapsed, s.riseDistance)
		if frame.Alpha <= 0 {
			continue
		}
		pos := DriftScreenPosition(bounds, p, frame)
		if !bounds.Contains(pos.X, pos.Y) {
			continue
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y),
			float32(p.Size/2), ScaleAlpha(s.color, 0.6*frame.Alpha), true)
	}
}

// DriftScreenPosition 将百分比坐标换算为视口坐标，再叠加视差偏移（像素）
func DriftScreenPosition(bounds types.Rect, p components.DriftParticleComponent, frame DriftFrameState) types.Point {
	return types.Point{
		X: bounds.X + frame.XPercent/100*bounds.W + p.OffsetX,
		Y: bounds.Y + frame.YPercent/100*bounds.H + p.OffsetY,
	}
}
