package systems

import (
	"log"

	"github.com/decker502/neuralfx/pkg/components"
	"github.com/decker502/neuralfx/pkg/config"
	"github.com/decker502/neuralfx/pkg/ecs"
	"github.com/decker502/neuralfx/pkg/entities"
	"github.com/decker502/neuralfx/pkg/host"
	"github.com/decker502/neuralfx/pkg/types"
	"github.com/decker502/neuralfx/pkg/utils"
)

// NetworkGraphAnimator 神经网络背景动画
//
// 职责：
//   - 在全视口表面上随机生成节点、连线和流动粒子
//   - 周期推进流动粒子（tick 任务），周期激活随机节点（pulse 任务）
//   - 响应指针移动（节点接近高亮）和视口变化（整体重建）
//
// 架构说明：
//   - 所有实体保存在表面的 EntityManager 中，重建时一次性销毁再生成
//   - tick 与 pulse 是两个独立的周期任务，重建不会重启它们
//   - 表面不存在时构造为空操作，之后的所有方法都直接返回
type NetworkGraphAnimator struct {
	env     host.Environment
	cfg     config.NetworkConfig
	surface *host.Surface
	em      *ecs.EntityManager
	enabled bool

	// 本次重建的节点，按生成顺序排列，用于均匀随机抽取
	nodeIDs    []ecs.EntityID
	nodePoints []types.Point

	tickTask   host.TaskID
	pulseTask  host.TaskID
	resizeTask host.TaskID
	rebuilds   int
}

// NewNetworkGraphAnimator 创建并启动神经网络动画
// 参数：
//   - env: 宿主环境（随机源、调度器、文档）
//   - surfaceID: 目标表面名称
//   - cfg: 网络配置
func NewNetworkGraphAnimator(env host.Environment, surfaceID string, cfg config.NetworkConfig) *NetworkGraphAnimator {
	a := &NetworkGraphAnimator{
		env: env,
		cfg: cfg,
	}

	surface, ok := env.Document.Lookup(surfaceID)
	if !ok {
		log.Printf("[NetworkGraphAnimator] Surface %q not found, animation disabled", surfaceID)
		return a
	}

	a.surface = surface
	a.em = surface.Entities()
	a.enabled = true

	a.rebuild()

	a.tickTask = env.Scheduler.Every(cfg.TickInterval, a.tick)
	a.pulseTask = env.Scheduler.Every(cfg.PulseInterval, a.pulse)

	log.Printf("[NetworkGraphAnimator] Started: %d nodes, %d connections, %d particles (tick=%v, pulse=%v)",
		len(a.nodeIDs), a.countConnections(), a.countTravelers(), cfg.TickInterval, cfg.PulseInterval)
	return a
}

// Enabled 表面存在且动画已启动时返回 true
func (a *NetworkGraphAnimator) Enabled() bool {
	return a.enabled
}

// Surface 返回动画所在的表面（未启用时为 nil）
func (a *NetworkGraphAnimator) Surface() *host.Surface {
	return a.surface
}

// rebuild 按当前视口整体重建节点、连线和粒子
func (a *NetworkGraphAnimator) rebuild() {
	width, height := a.env.Document.Viewport()
	rng := a.env.Random

	a.em.DestroyAll()
	a.nodeIDs = a.nodeIDs[:0]
	a.nodePoints = a.nodePoints[:0]

	for i := 0; i < a.cfg.NodeCount; i++ {
		id := entities.NewNodeEntity(a.em, rng, i, width, height, a.cfg)
		pos, _ := ecs.GetComponent[*components.PositionComponent](a.em, id)
		a.nodeIDs = append(a.nodeIDs, id)
		a.nodePoints = append(a.nodePoints, pos.Point())
	}

	n := len(a.nodeIDs)
	if n > 0 {
		// 有放回抽取；两次抽中同一个节点的那一次直接丢弃，不重抽
		for i := 0; i < a.cfg.ConnectionCount; i++ {
			first := utils.RandomIndex(rng.Float64(), n)
			second := utils.RandomIndex(rng.Float64(), n)
			if first == second {
				continue
			}
			entities.NewConnectionEntity(a.em, rng, a.nodePoints[first], a.nodePoints[second], a.cfg.ConnectionDelayMax)
		}

		for i := 0; i < a.cfg.ParticleCount; i++ {
			source, destination := a.pickPath()
			entities.NewTravelerEntity(a.em, source, destination)
		}
	}

	a.rebuilds++
}

// pickPath 随机抽取一条 (起点, 终点) 路径，两端可以是同一个节点
func (a *NetworkGraphAnimator) pickPath() (types.Point, types.Point) {
	n := len(a.nodePoints)
	source := a.nodePoints[utils.RandomIndex(a.env.Random.Float64(), n)]
	destination := a.nodePoints[utils.RandomIndex(a.env.Random.Float64(), n)]
	return source, destination
}

// tick 推进所有流动粒子一步
// 进度到达或超过 1 时在同一 tick 内换路径并归零，不会越过终点插值
func (a *NetworkGraphAnimator) tick() {
	travelers := ecs.GetEntitiesWith2[*components.TravelerComponent, *components.PositionComponent](a.em)

	for _, id := range travelers {
		tr, _ := ecs.GetComponent[*components.TravelerComponent](a.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](a.em, id)
		if tr == nil || pos == nil {
			continue
		}

		progress := tr.Progress + a.cfg.ProgressStep
		if progress >= 1 {
			tr.Source, tr.Destination = a.pickPath()
			progress = 0
		}
		tr.Progress = progress

		current := utils.LerpPoint(tr.Source, tr.Destination, progress)
		pos.X, pos.Y = current.X, current.Y
	}
}

// pulse 随机激活一个节点，PulseDuration 后由独立的一次性任务清除
func (a *NetworkGraphAnimator) pulse() {
	n := len(a.nodeIDs)
	if n == 0 {
		return
	}

	id := a.nodeIDs[utils.RandomIndex(a.env.Random.Float64(), n)]
	node, ok := ecs.GetComponent[*components.NodeComponent](a.em, id)
	if !ok {
		return
	}

	node.Active = true

	// 每次激活各自清除一次，同一节点被再次选中时以较早的清除为准
	em := a.em
	a.env.Scheduler.After(a.cfg.PulseDuration, func() {
		// 重建后旧节点已不存在，ID 不复用，这里自然失效
		if current, ok := ecs.GetComponent[*components.NodeComponent](em, id); ok {
			current.Active = false
		}
	})
}

// OnPointerMove 处理指针移动，逐个节点重新计算接近高亮
// 参数 x, y 为视口坐标
func (a *NetworkGraphAnimator) OnPointerMove(x, y float64) {
	if !a.enabled {
		return
	}

	pointer := types.Point{X: x, Y: y}
	for i, id := range a.nodeIDs {
		node, ok := ecs.GetComponent[*components.NodeComponent](a.em, id)
		if !ok {
			continue
		}

		intensity, near := utils.ProximityIntensity(utils.Distance(pointer, a.nodePoints[i]), a.cfg.ProximityThreshold)
		if near {
			node.Highlighted = true
			node.Intensity = intensity
			node.Scale = 1 + intensity*a.cfg.ScaleRange
			node.Opacity = a.cfg.OpacityBaseline + intensity*a.cfg.OpacityRange
		} else {
			node.Highlighted = false
			node.Intensity = 0
			node.Scale = 1
			node.Opacity = a.cfg.DefaultOpacity
		}
	}
}

// OnResize 视口尺寸变化后调用（文档视口应已更新）
// ResizeDebounce 为 0 时立即整体重建；否则只有一串事件中的最后一次会触发重建
func (a *NetworkGraphAnimator) OnResize() {
	if !a.enabled {
		return
	}

	if a.cfg.ResizeDebounce <= 0 {
		a.rebuild()
		return
	}

	if a.resizeTask != 0 {
		a.env.Scheduler.Cancel(a.resizeTask)
	}
	a.resizeTask = a.env.Scheduler.After(a.cfg.ResizeDebounce, func() {
		a.resizeTask = 0
		a.rebuild()
	})
}

func (a *NetworkGraphAnimator) countConnections() int {
	if a.em == nil {
		return 0
	}
	return len(ecs.GetEntitiesWith1[*components.ConnectionComponent](a.em))
}

func (a *NetworkGraphAnimator) countTravelers() int {
	if a.em == nil {
		return 0
	}
	return len(ecs.GetEntitiesWith1[*components.TravelerComponent](a.em))
}
