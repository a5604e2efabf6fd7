// Package app 提供特效宿主的核心包装器
//
// Bootstrap/Effects 与具体宿主无关，负责特效的创建和事件分发；
// App 是桌面窗口宿主，实现 ebiten.Game 接口。终端宿主见 pkg/terminal。
package app

import (
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/neuralfx/pkg/config"
	"github.com/decker502/neuralfx/pkg/host"
	"github.com/decker502/neuralfx/pkg/systems"
	"github.com/decker502/neuralfx/pkg/utils"
)

// backgroundColor 深色背景
var backgroundColor = color.RGBA{R: 10, G: 14, B: 28, A: 255}

// ConfigureLogging 配置日志输出，非 verbose 模式下丢弃所有日志
func ConfigureLogging(verbose bool) {
	if !verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
}

// Options 定义应用启动配置
type Options struct {
	Config *config.Config
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// Preferences 为空时读取环境变量与配置文件
	Preferences host.Preferences
}

// pointerFunc 返回当前指针位置，ok=false 表示没有可用指针
type pointerFunc func() (x, y int, ok bool)

func ebitenPointer() (int, int, bool) {
	x, y := utils.GetPointerPosition()
	return x, y, true
}

// App 桌面窗口宿主，实现 ebiten.Game 接口
type App struct {
	cfg       *config.Config
	scheduler *host.LoopScheduler
	document  *host.Document
	effects   *Effects

	networkRender *systems.NetworkRenderSystem
	driftRender   *systems.DriftRenderSystem

	step    time.Duration
	width   int
	height  int
	loaded  bool
	pointer pointerFunc

	lastX, lastY int
	hasPointer   bool
}

// NewApp 创建并启动特效
func NewApp(opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	prefs := opts.Preferences
	if prefs == nil {
		prefs = host.ReadPreferences(cfg.Motion.ReducedMotion)
	}

	doc := host.NewDocument(float64(cfg.Window.Width), float64(cfg.Window.Height))
	MountSurfaces(doc, cfg)

	scheduler := host.NewLoopScheduler()
	env := host.Environment{
		Random:    rand.New(rand.NewSource(seed)),
		Scheduler: scheduler,
		Document:  doc,
	}

	effects := Bootstrap(env, prefs, cfg)
	log.Printf("[App] Effects started (seed=%d, reducedMotion=%v)", seed, effects.ReducedMotion())

	return &App{
		cfg:           cfg,
		scheduler:     scheduler,
		document:      doc,
		effects:       effects,
		networkRender: systems.NewNetworkRenderSystem(effects.Network(), systems.DefaultNetworkStyle()),
		driftRender:   systems.NewDriftRenderSystem(effects.Drift(), cfg.Drift.RiseDistance),
		step:          time.Second / time.Duration(cfg.Window.TPS),
		width:         cfg.Window.Width,
		height:        cfg.Window.Height,
		pointer:       ebitenPointer,
	}
}

// Effects 返回特效集合
func (a *App) Effects() *Effects {
	return a.effects
}

// Scheduler 返回驱动特效的调度器
func (a *App) Scheduler() *host.LoopScheduler {
	return a.scheduler
}

// Update 推进一帧
// 首帧通知页面加载完成；之后每帧推进调度器 1/TPS 并分发指针移动
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	a.tick()
	return nil
}

func (a *App) tick() {
	if !a.loaded {
		a.loaded = true
		a.effects.OnPageLoaded()
	}

	a.scheduler.Advance(a.step)
	a.pollPointer()
}

// pollPointer 指针位置变化时分发移动，移出窗口时分发离开
func (a *App) pollPointer() {
	x, y, ok := a.pointer()
	inside := ok && x >= 0 && y >= 0 && x < a.width && y < a.height
	if !inside {
		if a.hasPointer {
			a.hasPointer = false
			a.effects.PointerLeft()
		}
		return
	}

	if a.hasPointer && x == a.lastX && y == a.lastY {
		return
	}
	a.hasPointer = true
	a.lastX, a.lastY = x, y
	a.effects.PointerMoved(float64(x), float64(y))
}

// Draw 绘制当前帧
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	elapsed := a.scheduler.Now().Seconds()
	// 粒子场可能在重试成功后才出现
	a.driftRender.SetField(a.effects.Drift())
	a.driftRender.Draw(screen, elapsed)
	a.networkRender.Draw(screen, elapsed)
}

// Layout 逻辑屏幕尺寸跟随窗口，尺寸变化即视为一次 resize
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != a.width || outsideHeight != a.height) {
		log.Printf("[App] Resize %dx%d -> %dx%d", a.width, a.height, outsideWidth, outsideHeight)
		a.width, a.height = outsideWidth, outsideHeight
		a.effects.Resized(float64(outsideWidth), float64(outsideHeight))
	}
	return a.width, a.height
}

// Run 打开窗口并运行直到关闭
func Run(opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
		opts.Config = cfg
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	return ebiten.RunGame(NewApp(opts))
}
