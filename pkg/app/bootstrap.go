package app

import (
	"log"

	"github.com/decker502/neuralfx/pkg/config"
	"github.com/decker502/neuralfx/pkg/host"
	"github.com/decker502/neuralfx/pkg/systems"
	"github.com/decker502/neuralfx/pkg/types"
)

// 宿主文档中的表面名称
const (
	NetworkSurfaceID = "neuralNetwork"
	HeroSurfaceID    = "particles"
)

// MountSurfaces 按当前视口挂载网络表面（全视口）和英雄区表面
func MountSurfaces(doc *host.Document, cfg *config.Config) {
	w, h := doc.Viewport()
	doc.Mount(NetworkSurfaceID, types.RectFromSize(w, h))
	doc.Mount(HeroSurfaceID, cfg.Hero.Rect(w, h))
}

// Effects 启动后的特效集合，负责把宿主事件分发给各特效
//
// 生命周期：
//   - Bootstrap 读取一次减少动效偏好，开启时不创建任何特效
//   - 网络动画只构造一次
//   - 漂浮粒子场在英雄区表面缺失时按 RetryBackoff 重试，直至找到；
//     延迟创建时表面被移除同样进入重试
//   - OnPageLoaded 是兜底入口：仅当没有可用粒子场且表面上没有粒子时才创建
type Effects struct {
	env     host.Environment
	cfg     *config.Config
	reduced bool

	network *systems.NetworkGraphAnimator
	drift   *systems.DriftParticleField

	retryTask     host.TaskID
	driftAttempts int
	pointerInHero bool
}

// Bootstrap 根据偏好启动特效
func Bootstrap(env host.Environment, prefs host.Preferences, cfg *config.Config) *Effects {
	e := &Effects{env: env, cfg: cfg}

	if prefs != nil && prefs.PrefersReducedMotion() {
		e.reduced = true
		log.Printf("[Bootstrap] Reduced motion preferred, skipping effects")
		return e
	}

	e.network = systems.NewNetworkGraphAnimator(env, NetworkSurfaceID, cfg.Network)
	e.startDrift()
	return e
}

// startDrift 尝试创建漂浮粒子场，表面缺失时延迟重试
func (e *Effects) startDrift() {
	e.retryTask = 0
	e.driftAttempts++

	if _, ok := e.env.Document.Lookup(HeroSurfaceID); !ok {
		log.Printf("[Bootstrap] Hero surface not found (attempt %d), retrying in %v", e.driftAttempts, e.cfg.Drift.RetryBackoff)
		e.retryTask = e.env.Scheduler.After(e.cfg.Drift.RetryBackoff, e.startDrift)
		return
	}

	log.Printf("[Bootstrap] Hero surface found, creating drift field")
	e.newDrift()
}

// newDrift 构造粒子场，创建时表面缺失则丢弃并回到重试
func (e *Effects) newDrift() {
	field := systems.NewDriftParticleField(e.env, HeroSurfaceID, e.cfg.Drift)
	field.OnSurfaceMissing(func() {
		if e.drift != field {
			return
		}
		e.drift = nil
		e.pointerInHero = false
		log.Printf("[Bootstrap] Hero surface gone before creation, retrying in %v", e.cfg.Drift.RetryBackoff)
		e.retryTask = e.env.Scheduler.After(e.cfg.Drift.RetryBackoff, e.startDrift)
	})
	e.drift = field
}

// OnPageLoaded 宿主完成加载后调用一次
func (e *Effects) OnPageLoaded() {
	if e.reduced {
		return
	}
	if e.drift != nil && e.drift.State() != systems.DriftSurfaceMissing {
		return
	}

	surface, ok := e.env.Document.Lookup(HeroSurfaceID)
	if !ok || systems.CountDriftParticles(surface) != 0 {
		return
	}

	log.Printf("[Bootstrap] Fallback: creating drift field after page load")
	if e.retryTask != 0 {
		e.env.Scheduler.Cancel(e.retryTask)
		e.retryTask = 0
	}
	e.newDrift()
}

// PointerMoved 分发指针移动（视口坐标）
// 网络动画始终接收；粒子场只在指针位于英雄区内时接收，移出时收到一次离开事件
func (e *Effects) PointerMoved(x, y float64) {
	if e.network != nil {
		e.network.OnPointerMove(x, y)
	}
	if e.drift == nil {
		return
	}

	surface, ok := e.env.Document.Lookup(HeroSurfaceID)
	inside := ok && surface.Bounds().Contains(x, y)
	switch {
	case inside:
		e.pointerInHero = true
		e.drift.OnPointerMove(x, y)
	case e.pointerInHero:
		e.pointerInHero = false
		e.drift.OnPointerLeave()
	}
}

// PointerLeft 指针离开整个窗口
func (e *Effects) PointerLeft() {
	if e.drift != nil && e.pointerInHero {
		e.pointerInHero = false
		e.drift.OnPointerLeave()
	}
}

// Resized 更新视口与表面矩形后通知网络动画重建
func (e *Effects) Resized(width, height float64) {
	doc := e.env.Document
	doc.SetViewport(width, height)
	if s, ok := doc.Lookup(NetworkSurfaceID); ok {
		s.SetBounds(types.RectFromSize(width, height))
	}
	if s, ok := doc.Lookup(HeroSurfaceID); ok {
		s.SetBounds(e.cfg.Hero.Rect(width, height))
	}

	if e.network != nil {
		e.network.OnResize()
	}
}

// ReducedMotion 启动时是否因减少动效偏好而跳过
func (e *Effects) ReducedMotion() bool {
	return e.reduced
}

// Network 返回网络动画（减少动效时为 nil）
func (e *Effects) Network() *systems.NetworkGraphAnimator {
	return e.network
}

// Drift 返回漂浮粒子场（尚未创建时为 nil）
func (e *Effects) Drift() *systems.DriftParticleField {
	return e.drift
}

// DriftAttempts 返回查找英雄区表面的次数
func (e *Effects) DriftAttempts() int {
	return e.driftAttempts
}
