package systems

import (
	"log"

	"github.com/decker502/neuralfx/pkg/components"
	"github.com/decker502/neuralfx/pkg/config"
	"github.com/decker502/neuralfx/pkg/ecs"
	"github.com/decker502/neuralfx/pkg/entities"
	"github.com/decker502/neuralfx/pkg/host"
	"github.com/decker502/neuralfx/pkg/types"
)

// DriftFieldState 漂浮粒子场的构造状态
type DriftFieldState int

const (
	// DriftPending 已调度创建，尚未执行
	DriftPending DriftFieldState = iota
	// DriftReady 粒子已创建，开始响应指针
	DriftReady
	// DriftSurfaceMissing 创建时表面不存在，由调用方决定是否重试
	DriftSurfaceMissing
)

// String 返回状态名称
func (s DriftFieldState) String() string {
	switch s {
	case DriftPending:
		return "pending"
	case DriftReady:
		return "ready"
	case DriftSurfaceMissing:
		return "surface-missing"
	default:
		return "unknown"
	}
}

// DriftParticleField 英雄区漂浮粒子场
//
// 只负责为每个粒子挑选参数并维护指针视差偏移，
// 上升动画由渲染层根据参数声明式计算（见 DriftFrame）。
type DriftParticleField struct {
	env       host.Environment
	cfg       config.DriftConfig
	surfaceID string
	surface   *host.Surface
	state     DriftFieldState
	onMissing func()
}

// NewDriftParticleField 创建粒子场并在 StartupDelay 后生成粒子
// 延迟创建用于容忍表面延迟挂载
func NewDriftParticleField(env host.Environment, surfaceID string, cfg config.DriftConfig) *DriftParticleField {
	f := &DriftParticleField{
		env:       env,
		cfg:       cfg,
		surfaceID: surfaceID,
		state:     DriftPending,
	}
	env.Scheduler.After(cfg.StartupDelay, f.create)
	return f
}

// OnSurfaceMissing 注册创建时表面缺失的回调
// 回调在 create 中同步执行，调用方可在其中丢弃本粒子场并安排重试
func (f *DriftParticleField) OnSurfaceMissing(fn func()) {
	f.onMissing = fn
}

// State 返回当前构造状态
func (f *DriftParticleField) State() DriftFieldState {
	return f.state
}

// Bounds 返回所在表面的当前区域，未就绪时为空
func (f *DriftParticleField) Bounds() types.Rect {
	if f.surface == nil {
		return types.Rect{}
	}
	return f.surface.Bounds()
}

// create 在表面上一次性生成全部粒子
func (f *DriftParticleField) create() {
	surface, ok := f.env.Document.Lookup(f.surfaceID)
	if !ok {
		f.state = DriftSurfaceMissing
		log.Printf("[DriftParticleField] Surface %q not found at creation time", f.surfaceID)
		if f.onMissing != nil {
			f.onMissing()
		}
		return
	}

	em := surface.Entities()
	for i := 0; i < f.cfg.Count; i++ {
		entities.NewDriftParticleEntity(em, f.env.Random, i, f.cfg)
	}

	f.surface = surface
	f.state = DriftReady
	log.Printf("[DriftParticleField] Created %d particles", f.cfg.Count)
}

// OnPointerMove 指针在表面内移动时更新视差偏移
// 参数 x, y 为视口坐标；表面面积为零时忽略
func (f *DriftParticleField) OnPointerMove(x, y float64) {
	if f.state != DriftReady {
		return
	}

	bounds := f.surface.Bounds()
	if bounds.Empty() {
		return
	}
	px, py := bounds.PercentOf(x, y)

	f.forEach(func(p *components.DriftParticleComponent) {
		speed := float64(p.Index%3+1) * f.cfg.SpeedStep
		p.OffsetX = (px - 50) * speed * f.cfg.ParallaxFactor
		p.OffsetY = (py - 50) * speed * f.cfg.ParallaxFactor
	})
}

// OnPointerLeave 指针离开表面时清除所有偏移
func (f *DriftParticleField) OnPointerLeave() {
	if f.state != DriftReady {
		return
	}
	f.forEach(func(p *components.DriftParticleComponent) {
		p.OffsetX = 0
		p.OffsetY = 0
	})
}

// Particles 返回粒子快照，按生成顺序排列
func (f *DriftParticleField) Particles() []components.DriftParticleComponent {
	if f.state != DriftReady {
		return nil
	}
	result := make([]components.DriftParticleComponent, 0, f.cfg.Count)
	f.forEach(func(p *components.DriftParticleComponent) {
		result = append(result, *p)
	})
	return result
}

func (f *DriftParticleField) forEach(fn func(p *components.DriftParticleComponent)) {
	em := f.surface.Entities()
	for _, id := range ecs.GetEntitiesWith1[*components.DriftParticleComponent](em) {
		if p, ok := ecs.GetComponent[*components.DriftParticleComponent](em, id); ok {
			fn(p)
		}
	}
}

// CountDriftParticles 统计表面上已有的漂浮粒子数量
// 启动兜底逻辑用它避免重复创建
func CountDriftParticles(surface *host.Surface) int {
	if surface == nil {
		return 0
	}
	return len(ecs.GetEntitiesWith1[*components.DriftParticleComponent](surface.Entities()))
}
