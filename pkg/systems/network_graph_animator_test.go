package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/neuralfx/pkg/host"
	"github.com/decker502/neuralfx/pkg/utils"
)

func TestNetworkGraphAnimator_MissingSurface(t *testing.T) {
	doc := host.NewDocument(800, 600)
	sched := host.NewLoopScheduler()
	env := host.Environment{Random: rand.New(rand.NewSource(1)), Scheduler: sched, Document: doc}

	a := NewNetworkGraphAnimator(env, "missing", testNetworkConfig())

	if a.Enabled() {
		t.Fatal("animator should be disabled without a surface")
	}
	if sched.Pending() != 0 {
		t.Errorf("disabled animator scheduled %d tasks", sched.Pending())
	}

	// 所有方法都应是空操作
	a.OnPointerMove(10, 10)
	a.OnResize()
	sched.Advance(ms(5000))
	if a.Nodes() != nil || a.Connections() != nil || a.Particles() != nil {
		t.Error("disabled animator should expose no entities")
	}
	if s := a.Stats(); s.Nodes != 0 || s.Rebuilds != 0 {
		t.Errorf("unexpected stats: %+v", s)
	}
}

func TestNetworkGraphAnimator_Construction(t *testing.T) {
	cfg := testNetworkConfig()
	env, sched := newTestEnv(t, rand.New(rand.NewSource(42)), 1280, 720)

	a := NewNetworkGraphAnimator(env, testNetworkSurface, cfg)
	if !a.Enabled() {
		t.Fatal("animator should be enabled")
	}
	if sched.Pending() != 2 {
		t.Errorf("expected tick and pulse tasks, got %d pending", sched.Pending())
	}

	nodes := a.Nodes()
	if len(nodes) != cfg.NodeCount {
		t.Fatalf("node count = %d, want %d", len(nodes), cfg.NodeCount)
	}
	for _, n := range nodes {
		if n.Position.X < 0 || n.Position.X >= 1280 || n.Position.Y < 0 || n.Position.Y >= 720 {
			t.Errorf("node %d outside viewport: %+v", n.Index, n.Position)
		}
		if n.AnimationDelay < 0 || n.AnimationDelay >= cfg.NodeDelayMax {
			t.Errorf("node %d delay %v outside [0, %v)", n.Index, n.AnimationDelay, cfg.NodeDelayMax)
		}
	}

	conns := a.Connections()
	if len(conns) > cfg.ConnectionCount {
		t.Errorf("connections = %d, must not exceed %d draws", len(conns), cfg.ConnectionCount)
	}
	for _, c := range conns {
		if math.Abs(c.Length-utils.Distance(c.From, c.To)) > 1e-9 {
			t.Errorf("connection length %v mismatch", c.Length)
		}
		if math.Abs(c.AngleDeg-utils.AngleDegrees(c.From, c.To)) > 1e-9 {
			t.Errorf("connection angle %v mismatch", c.AngleDeg)
		}
	}

	particles := a.Particles()
	if len(particles) != cfg.ParticleCount {
		t.Fatalf("particle count = %d, want %d", len(particles), cfg.ParticleCount)
	}
	for _, p := range particles {
		if p.Progress != 0 {
			t.Errorf("initial progress = %v, want 0", p.Progress)
		}
		if p.Position != p.Source {
			t.Errorf("initial position %+v should equal source %+v", p.Position, p.Source)
		}
	}
}

func TestNetworkGraphAnimator_SingleNodeHasNoConnections(t *testing.T) {
	cfg := testNetworkConfig()
	cfg.NodeCount = 1
	cfg.ConnectionCount = 100

	for seed := int64(0); seed < 20; seed++ {
		env, _ := newTestEnv(t, rand.New(rand.NewSource(seed)), 800, 600)
		a := NewNetworkGraphAnimator(env, testNetworkSurface, cfg)
		if n := len(a.Connections()); n != 0 {
			t.Fatalf("seed %d: %d connections with a single node", seed, n)
		}
		// 粒子的起点与终点只能是同一个节点
		for _, p := range a.Particles() {
			if p.Source != p.Destination {
				t.Fatalf("seed %d: particle path %+v -> %+v with a single node", seed, p.Source, p.Destination)
			}
		}
	}
}

func TestNetworkGraphAnimator_SelfPairDiscarded(t *testing.T) {
	cfg := testNetworkConfig()
	cfg.NodeCount = 2
	cfg.ConnectionCount = 2
	cfg.ParticleCount = 0

	rng := host.NewSequenceRandom(
		0.1, 0.1, 0.0, // node 0
		0.2, 0.2, 0.0, // node 1
		0.1, 0.2, // 连线 1：同一节点，丢弃
		0.1, 0.9, 0.5, // 连线 2：node0 -> node1，随后抽取动画延迟
	)
	env, _ := newTestEnv(t, rng, 1000, 1000)
	a := NewNetworkGraphAnimator(env, testNetworkSurface, cfg)

	conns := a.Connections()
	if len(conns) != 1 {
		t.Fatalf("connections = %d, want 1 (self pair discarded without retry)", len(conns))
	}
	if conns[0].From.X != 100 || conns[0].To.X != 200 {
		t.Errorf("connection endpoints %+v -> %+v", conns[0].From, conns[0].To)
	}
	if rng.Draws() != 11 {
		t.Errorf("construction consumed %d draws, want 11", rng.Draws())
	}
}

func TestNetworkGraphAnimator_CoincidentNodesStillConnect(t *testing.T) {
	cfg := testNetworkConfig()
	cfg.NodeCount = 2
	cfg.ConnectionCount = 1
	cfg.ParticleCount = 0

	// 两个不同节点落在同一位置，零长度连线允许存在
	rng := host.NewSequenceRandom(
		0.5, 0.5, 0.0,
		0.5, 0.5, 0.0,
		0.0, 0.9, 0.0,
	)
	env, _ := newTestEnv(t, rng, 100, 100)
	a := NewNetworkGraphAnimator(env, testNetworkSurface, cfg)

	conns := a.Connections()
	if len(conns) != 1 {
		t.Fatalf("connections = %d, want 1", len(conns))
	}
	if conns[0].Length != 0 {
		t.Errorf("Length = %v, want 0", conns[0].Length)
	}
}

func TestNetworkGraphAnimator_TickAdvancesProgress(t *testing.T) {
	cfg := testNetworkConfig()
	env, sched := newTestEnv(t, rand.New(rand.NewSource(7)), 1000, 800)
	a := NewNetworkGraphAnimator(env, testNetworkSurface, cfg)

	prev := a.Particles()
	resets := 0
	for tick := 0; tick < 200; tick++ {
		sched.Advance(cfg.TickInterval)
		cur := a.Particles()
		if len(cur) != len(prev) {
			t.Fatalf("particle count changed: %d -> %d", len(prev), len(cur))
		}

		for i := range cur {
			p, before := cur[i], prev[i]
			if p.Progress < 0 || p.Progress >= 1 {
				t.Fatalf("tick %d: progress %v outside [0,1)", tick, p.Progress)
			}

			advanced := before.Progress + cfg.ProgressStep
			if advanced >= 1 {
				if p.Progress != 0 {
					t.Fatalf("tick %d: progress should reset to exactly 0, got %v", tick, p.Progress)
				}
				if p.Position != p.Source {
					t.Fatalf("tick %d: reset particle should sit at its new source", tick)
				}
				resets++
			} else {
				if p.Progress != advanced {
					t.Fatalf("tick %d: progress %v, want %v", tick, p.Progress, advanced)
				}
				if p.Source != before.Source || p.Destination != before.Destination {
					t.Fatalf("tick %d: path changed mid traversal", tick)
				}
			}

			want := utils.LerpPoint(p.Source, p.Destination, p.Progress)
			if p.Position != want {
				t.Fatalf("tick %d: position %+v, want %+v", tick, p.Position, want)
			}
		}
		prev = cur
	}

	// 200 tick 内每个粒子应至少完成两次遍历
	if resets < 2*cfg.ParticleCount {
		t.Errorf("resets = %d, want >= %d", resets, 2*cfg.ParticleCount)
	}
}

func TestNetworkGraphAnimator_TickCadence(t *testing.T) {
	cfg := testNetworkConfig()
	env, sched := newTestEnv(t, rand.New(rand.NewSource(3)), 500, 500)
	a := NewNetworkGraphAnimator(env, testNetworkSurface, cfg)

	sched.Advance(cfg.TickInterval - 1)
	for _, p := range a.Particles() {
		if p.Progress != 0 {
			t.Fatalf("progress advanced before first tick: %v", p.Progress)
		}
	}

	sched.Advance(1)
	for _, p := range a.Particles() {
		if p.Progress != cfg.ProgressStep {
			t.Fatalf("progress after first tick = %v, want %v", p.Progress, cfg.ProgressStep)
		}
	}
}

func activeNodes(a *NetworkGraphAnimator) map[int]bool {
	result := make(map[int]bool)
	for _, n := range a.Nodes() {
		if n.Active {
			result[n.Index] = true
		}
	}
	return result
}

func TestNetworkGraphAnimator_PulseClearsAfterDuration(t *testing.T) {
	cfg := testNetworkConfig()
	env, sched := newTestEnv(t, rand.New(rand.NewSource(11)), 800, 600)
	a := NewNetworkGraphAnimator(env, testNetworkSurface, cfg)

	sched.Advance(cfg.PulseInterval - 1)
	if len(activeNodes(a)) != 0 {
		t.Fatal("no node should be active before the first pulse")
	}

	sched.Advance(1)
	if len(activeNodes(a)) != 1 {
		t.Fatalf("active nodes = %d after first pulse, want 1", len(activeNodes(a)))
	}

	sched.Advance(cfg.PulseDuration - 1)
	if len(activeNodes(a)) != 1 {
		t.Fatal("node cleared before pulse duration elapsed")
	}

	sched.Advance(1)
	if len(activeNodes(a)) != 0 {
		t.Fatal("node should be cleared exactly after pulse duration")
	}
}

func TestNetworkGraphAnimator_OverlappingPulses(t *testing.T) {
	cfg := testNetworkConfig()
	cfg.NodeCount = 4
	cfg.PulseInterval = ms(400)
	cfg.PulseDuration = ms(1000)
	cfg.ParticleCount = 0 // tick 不再消耗随机数

	rng := newQueueRandom(5)
	env, sched := newTestEnv(t, rng, 800, 600)
	a := NewNetworkGraphAnimator(env, testNetworkSurface, cfg)

	// 0.4s node0, 0.8s node1, 1.2s node0 再次激活，之后全部 node3
	rng.Push(0.0)
	sched.Advance(ms(400))
	rng.Push(0.3)
	sched.Advance(ms(400))
	rng.Push(0.0)
	sched.Advance(ms(400))

	active := activeNodes(a)
	if !active[0] || !active[1] {
		t.Fatalf("at 1.2s node0 and node1 should be active, got %v", active)
	}

	// 每次激活在固定时长后无条件清除：node0 在 0.4s 的激活于 1.4s 清除，
	// 即使 1.2s 再次被选中
	rng.Push(0.99)         // 1.6s 选中 node3
	sched.Advance(ms(199)) // 1.399s
	if !activeNodes(a)[0] {
		t.Fatal("node0 should still be active at 1.399s")
	}
	sched.Advance(ms(1)) // 1.4s
	active = activeNodes(a)
	if active[0] {
		t.Fatal("node0 should be cleared exactly 1s after its first activation (1.4s)")
	}
	if !active[1] {
		t.Fatal("clearing node0 must not affect node1")
	}

	sched.Advance(ms(200)) // 1.6s
	rng.Push(0.99)         // 2.0s 选中 node3
	sched.Advance(ms(199)) // 1.799s
	if !activeNodes(a)[1] {
		t.Fatal("node1 should still be active at 1.799s")
	}
	sched.Advance(ms(1)) // 1.8s
	active = activeNodes(a)
	if active[1] {
		t.Fatal("node1 should be cleared exactly 1s after its activation (1.8s)")
	}
	if !active[3] {
		t.Fatal("node3 activated at 1.6s should be active at 1.8s")
	}

	// 1.2s 那次激活的清除（2.2s）落在已清除的节点上，不应出错
	sched.Advance(ms(400)) // 2.2s
	if activeNodes(a)[0] {
		t.Fatal("node0 should remain inactive")
	}
}

func TestNetworkGraphAnimator_PointerProximity(t *testing.T) {
	cfg := testNetworkConfig()
	cfg.NodeCount = 3
	cfg.ConnectionCount = 0
	cfg.ParticleCount = 0

	rng := host.NewSequenceRandom(
		0.1, 0.1, 0.0, // (100, 100)
		0.5, 0.5, 0.0, // (500, 500)
		0.9, 0.9, 0.0, // (900, 900)
	)
	env, _ := newTestEnv(t, rng, 1000, 1000)
	a := NewNetworkGraphAnimator(env, testNetworkSurface, cfg)

	tests := []struct {
		name          string
		x, y          float64
		wantHighlight bool
		wantScale     float64
		wantOpacity   float64
	}{
		{"指针在节点上", 100, 100, true, 1 + cfg.ScaleRange, cfg.OpacityBaseline + cfg.OpacityRange},
		{"半个阈值", 175, 100, true, 1 + 0.5*cfg.ScaleRange, cfg.OpacityBaseline + 0.5*cfg.OpacityRange},
		{"恰好在阈值", 250, 100, false, 1, cfg.DefaultOpacity},
		{"远离", 700, 100, false, 1, cfg.DefaultOpacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a.OnPointerMove(tt.x, tt.y)
			node := a.Nodes()[0]

			if node.Highlighted != tt.wantHighlight {
				t.Errorf("Highlighted = %v, want %v", node.Highlighted, tt.wantHighlight)
			}
			if math.Abs(node.Scale-tt.wantScale) > 1e-9 {
				t.Errorf("Scale = %v, want %v", node.Scale, tt.wantScale)
			}
			if math.Abs(node.Opacity-tt.wantOpacity) > 1e-9 {
				t.Errorf("Opacity = %v, want %v", node.Opacity, tt.wantOpacity)
			}

			// 其他两个节点始终在阈值之外
			for _, other := range a.Nodes()[1:] {
				if other.Highlighted || other.Scale != 1 {
					t.Errorf("node %d should not be highlighted", other.Index)
				}
			}
		})
	}
}

func TestNetworkGraphAnimator_ResizeRebuilds(t *testing.T) {
	cfg := testNetworkConfig()
	env, sched := newTestEnv(t, rand.New(rand.NewSource(99)), 1920, 1080)
	a := NewNetworkGraphAnimator(env, testNetworkSurface, cfg)

	before := a.Nodes()
	sched.Advance(ms(1600)) // 让一个节点处于激活状态

	env.Document.SetViewport(300, 200)
	a.OnResize()

	after := a.Nodes()
	if len(after) != cfg.NodeCount {
		t.Fatalf("node count after resize = %d, want %d", len(after), cfg.NodeCount)
	}
	if len(a.Particles()) != cfg.ParticleCount {
		t.Errorf("particle count after resize = %d, want %d", len(a.Particles()), cfg.ParticleCount)
	}
	if len(a.Connections()) > cfg.ConnectionCount {
		t.Errorf("connections after resize exceed draws: %d", len(a.Connections()))
	}
	for _, n := range after {
		if n.Position.X < 0 || n.Position.X >= 300 || n.Position.Y < 0 || n.Position.Y >= 200 {
			t.Errorf("node %d outside new bounds: %+v", n.Index, n.Position)
		}
		if n.Active {
			t.Errorf("rebuilt node %d should start inactive", n.Index)
		}
		for _, old := range before {
			if old.ID == n.ID {
				t.Fatalf("entity %d survived the rebuild", n.ID)
			}
		}
	}
	for _, c := range a.Connections() {
		if c.From.X >= 300 || c.To.X >= 300 || c.From.Y >= 200 || c.To.Y >= 200 {
			t.Errorf("connection endpoints outside new bounds: %+v", c)
		}
	}

	// 重建复用已有定时任务
	if sched.Pending() < 2 || a.Stats().Rebuilds != 2 {
		t.Errorf("pending=%d rebuilds=%d", sched.Pending(), a.Stats().Rebuilds)
	}

	// 旧节点的清除回调在重建后执行不应出错
	sched.Advance(ms(3000))
	s := a.Stats()
	if s.Entities != s.Nodes+s.Connections+s.Particles {
		t.Errorf("surface holds %d entities, stale entities left behind (%+v)", s.Entities, s)
	}
}

func TestNetworkGraphAnimator_ResizeEveryEventByDefault(t *testing.T) {
	env, _ := newTestEnv(t, rand.New(rand.NewSource(1)), 800, 600)
	a := NewNetworkGraphAnimator(env, testNetworkSurface, testNetworkConfig())

	for i := 0; i < 5; i++ {
		env.Document.SetViewport(float64(800+i*10), 600)
		a.OnResize()
	}
	if got := a.Stats().Rebuilds; got != 6 {
		t.Errorf("rebuilds = %d, want 6 (initial + one per event)", got)
	}
}

func TestNetworkGraphAnimator_ResizeDebounce(t *testing.T) {
	cfg := testNetworkConfig()
	cfg.ResizeDebounce = ms(100)
	env, sched := newTestEnv(t, rand.New(rand.NewSource(1)), 800, 600)
	a := NewNetworkGraphAnimator(env, testNetworkSurface, cfg)

	for i := 0; i < 3; i++ {
		env.Document.SetViewport(float64(400+i*100), 300)
		a.OnResize()
		sched.Advance(ms(30))
	}
	if got := a.Stats().Rebuilds; got != 1 {
		t.Fatalf("rebuilds during burst = %d, want 1", got)
	}

	sched.Advance(ms(70))
	if got := a.Stats().Rebuilds; got != 2 {
		t.Fatalf("rebuilds after debounce = %d, want 2", got)
	}
	for _, n := range a.Nodes() {
		if n.Position.X >= 600 || n.Position.Y >= 300 {
			t.Fatalf("debounced rebuild should use the latest viewport, node at %+v", n.Position)
		}
	}
}

func TestNetworkGraphAnimator_NoNodes(t *testing.T) {
	cfg := testNetworkConfig()
	cfg.NodeCount = 0
	env, sched := newTestEnv(t, rand.New(rand.NewSource(1)), 800, 600)
	a := NewNetworkGraphAnimator(env, testNetworkSurface, cfg)

	sched.Advance(ms(5000))
	a.OnPointerMove(1, 1)

	s := a.Stats()
	if s.Nodes != 0 || s.Connections != 0 || s.Particles != 0 || s.ActiveNodes != 0 || s.Entities != 0 {
		t.Errorf("empty network stats = %+v", s)
	}
}
