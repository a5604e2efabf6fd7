package entities

import (
	"github.com/decker502/neuralfx/pkg/components"
	"github.com/decker502/neuralfx/pkg/config"
	"github.com/decker502/neuralfx/pkg/ecs"
	"github.com/decker502/neuralfx/pkg/host"
	"github.com/decker502/neuralfx/pkg/types"
	"github.com/decker502/neuralfx/pkg/utils"
)

// NewNodeEntity 创建一个神经网络节点实体
// 参数:
//   - manager: 表面的 EntityManager
//   - rng: 随机源，依次抽取 x、y、动画延迟
//   - index: 节点序号
//   - width, height: 当前视口尺寸，节点均匀分布在 [0,width) x [0,height)
//   - cfg: 网络配置（动画延迟上限、默认透明度）
//
// 返回: 创建的实体ID
func NewNodeEntity(manager *ecs.EntityManager, rng host.Random, index int, width, height float64, cfg config.NetworkConfig) ecs.EntityID {
	id := manager.CreateEntity()

	x := rng.Float64() * width
	y := rng.Float64() * height

	manager.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	manager.AddComponent(id, &components.NodeComponent{
		Index:          index,
		AnimationDelay: rng.Float64() * cfg.NodeDelayMax,
		Scale:          1.0,
		Opacity:        cfg.DefaultOpacity,
	})

	return id
}

// NewConnectionEntity 创建一条连线实体
// 端点按值复制，长度与角度在创建时一次性计算
// 参数:
//   - rng: 随机源，抽取闪烁动画延迟
//   - from, to: 两个节点的位置
//   - delayMax: 动画延迟上限（秒）
func NewConnectionEntity(manager *ecs.EntityManager, rng host.Random, from, to types.Point, delayMax float64) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.ConnectionComponent{
		From:           from,
		To:             to,
		Length:         utils.Distance(from, to),
		AngleDeg:       utils.AngleDegrees(from, to),
		AnimationDelay: rng.Float64() * delayMax,
	})

	return id
}

// NewTravelerEntity 创建一个流动数据粒子实体
// 进度从 0 开始，初始位置即起点
func NewTravelerEntity(manager *ecs.EntityManager, source, destination types.Point) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.TravelerComponent{
		Source:      source,
		Destination: destination,
		Progress:    0,
	})
	manager.AddComponent(id, &components.PositionComponent{X: source.X, Y: source.Y})

	return id
}
