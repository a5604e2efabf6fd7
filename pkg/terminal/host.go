package terminal

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/neuralfx/pkg/app"
	"github.com/decker502/neuralfx/pkg/config"
	"github.com/decker502/neuralfx/pkg/host"
)

// Host 终端宿主
type Host struct {
	screen    tcell.Screen
	cfg       *config.Config
	scheduler *host.LoopScheduler
	document  *host.Document
	effects   *app.Effects
	proj      projector
	loaded    bool
}

// NewHost 在已初始化的屏幕上启动特效
func NewHost(screen tcell.Screen, cfg *config.Config, seed int64, prefs host.Preferences) *Host {
	cols, rows := screen.Size()
	proj := projector{
		cellW: cfg.Terminal.CellWidth,
		cellH: cfg.Terminal.CellHeight,
		cols:  cols,
		rows:  rows,
	}

	doc := host.NewDocument(float64(cols)*proj.cellW, float64(rows)*proj.cellH)
	app.MountSurfaces(doc, cfg)

	scheduler := host.NewLoopScheduler()
	env := host.Environment{
		Random:    rand.New(rand.NewSource(seed)),
		Scheduler: scheduler,
		Document:  doc,
	}

	return &Host{
		screen:    screen,
		cfg:       cfg,
		scheduler: scheduler,
		document:  doc,
		effects:   app.Bootstrap(env, prefs, cfg),
		proj:      proj,
	}
}

// Effects 返回特效集合
func (h *Host) Effects() *app.Effects {
	return h.effects
}

// HandleEvent 处理一个 tcell 事件，返回 false 表示退出
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		if col < 0 || row < 0 || col >= h.proj.cols || row >= h.proj.rows {
			h.effects.PointerLeft()
			return true
		}
		x, y := h.proj.toSurface(col, row)
		h.effects.PointerMoved(x, y)

	case *tcell.EventResize:
		cols, rows := ev.Size()
		if cols == h.proj.cols && rows == h.proj.rows {
			return true
		}
		log.Printf("[Terminal] Resize %dx%d -> %dx%d", h.proj.cols, h.proj.rows, cols, rows)
		h.proj.cols, h.proj.rows = cols, rows
		h.effects.Resized(float64(cols)*h.proj.cellW, float64(rows)*h.proj.cellH)
	}
	return true
}

// Step 推进 dt 并重绘
func (h *Host) Step(dt time.Duration) {
	if !h.loaded {
		h.loaded = true
		h.effects.OnPageLoaded()
	}
	h.scheduler.Advance(dt)
	h.draw()
}

func (h *Host) draw() {
	h.screen.Clear()
	drawEffects(h.screen, h.proj, h.effects, h.scheduler.Now().Seconds(), h.cfg.Drift.RiseDistance)
	h.screen.Show()
}

// Loop 事件与帧循环，直到收到退出键或 ctx 取消
func (h *Host) Loop(ctx context.Context) {
	ticker := time.NewTicker(h.cfg.Terminal.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				// 屏幕已关闭
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-eventChan:
			if !h.HandleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			h.Step(now.Sub(last))
			last = now
		}
	}
}

// Run 初始化终端并运行，直到退出
func Run(ctx context.Context, cfg *config.Config, seed int64, prefs host.Preferences) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	NewHost(screen, cfg, seed, prefs).Loop(ctx)
	return nil
}
