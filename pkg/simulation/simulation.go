// Package simulation 在虚拟时钟上无界面运行特效并汇总统计
package simulation

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/decker502/neuralfx/pkg/app"
	"github.com/decker502/neuralfx/pkg/config"
	"github.com/decker502/neuralfx/pkg/host"
	"github.com/decker502/neuralfx/pkg/systems"
)

// Options 模拟参数
type Options struct {
	Duration time.Duration // 虚拟总时长
	Step     time.Duration // 每步推进量
	Sample   time.Duration // 采样间隔
	Seed     int64
	// Sweep 为 true 时指针沿视口对角线匀速扫过
	Sweep bool
	// ResizeAt > 0 时在该时刻把视口缩小一半
	ResizeAt time.Duration
	// HeroGap > 0 时启动后立即移除英雄区，到该时刻再重新挂载
	HeroGap time.Duration
}

// DefaultOptions 10 秒、60 步每秒、每秒采样一次
func DefaultOptions() Options {
	return Options{
		Duration: 10 * time.Second,
		Step:     time.Second / 60,
		Sample:   time.Second,
		Seed:     1,
		Sweep:    true,
	}
}

// Sample 某一时刻的特效状态
type Sample struct {
	Time           time.Duration
	Network        systems.NetworkStats
	DriftState     systems.DriftFieldState
	DriftParticles int
	// MaxOffset 漂浮粒子视差偏移的最大绝对值（像素）
	MaxOffset float64
}

// Report 模拟结果
type Report struct {
	Seed          int64
	ReducedMotion bool
	Callbacks     int
	DriftAttempts int
	Samples       []Sample
}

// Final 最后一次采样
func (r Report) Final() Sample {
	if len(r.Samples) == 0 {
		return Sample{}
	}
	return r.Samples[len(r.Samples)-1]
}

// Run 按 opts 运行一次模拟
func Run(cfg *config.Config, prefs host.Preferences, opts Options) Report {
	if opts.Step <= 0 {
		opts.Step = DefaultOptions().Step
	}
	if opts.Sample <= 0 {
		opts.Sample = time.Second
	}

	width, height := float64(cfg.Window.Width), float64(cfg.Window.Height)
	doc := host.NewDocument(width, height)
	app.MountSurfaces(doc, cfg)

	scheduler := host.NewLoopScheduler()
	env := host.Environment{
		Random:    rand.New(rand.NewSource(opts.Seed)),
		Scheduler: scheduler,
		Document:  doc,
	}

	effects := app.Bootstrap(env, prefs, cfg)
	heroDetached := false
	if opts.HeroGap > 0 {
		heroDetached = true
		doc.Unmount(app.HeroSurfaceID)
		log.Printf("[Simulation] Hero surface detached until %v", opts.HeroGap)
	}
	effects.OnPageLoaded()

	report := Report{Seed: opts.Seed, ReducedMotion: effects.ReducedMotion()}
	resized := false
	nextSample := opts.Sample

	for scheduler.Now() < opts.Duration {
		report.Callbacks += scheduler.Advance(opts.Step)
		now := scheduler.Now()

		if heroDetached && now >= opts.HeroGap {
			heroDetached = false
			doc.Mount(app.HeroSurfaceID, cfg.Hero.Rect(width, height))
			log.Printf("[Simulation] Hero surface reattached at %v", now)
		}

		if opts.ResizeAt > 0 && !resized && now >= opts.ResizeAt {
			resized = true
			width, height = width/2, height/2
			log.Printf("[Simulation] Resize to %.0fx%.0f at %v", width, height, now)
			effects.Resized(width, height)
		}

		if opts.Sweep && opts.Duration > 0 {
			frac := math.Min(float64(now)/float64(opts.Duration), 1)
			effects.PointerMoved(frac*width, frac*height)
		}

		if now >= nextSample {
			report.Samples = append(report.Samples, sample(now, effects))
			nextSample += opts.Sample
		}
	}

	report.DriftAttempts = effects.DriftAttempts()
	return report
}

func sample(now time.Duration, effects *app.Effects) Sample {
	s := Sample{Time: now, DriftState: systems.DriftPending}
	if network := effects.Network(); network != nil {
		s.Network = network.Stats()
	}
	if field := effects.Drift(); field != nil {
		s.DriftState = field.State()
		for _, p := range field.Particles() {
			s.DriftParticles++
			s.MaxOffset = math.Max(s.MaxOffset, math.Max(math.Abs(p.OffsetX), math.Abs(p.OffsetY)))
		}
	}
	return s
}
