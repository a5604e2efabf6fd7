package entities

import (
	"github.com/decker502/neuralfx/pkg/components"
	"github.com/decker502/neuralfx/pkg/config"
	"github.com/decker502/neuralfx/pkg/ecs"
	"github.com/decker502/neuralfx/pkg/host"
	"github.com/decker502/neuralfx/pkg/utils"
)

// NewDriftParticleEntity 创建一个英雄区漂浮粒子实体
// 参数:
//   - rng: 随机源，依次抽取 x、y、延迟、时长、尺寸
//   - index: 生成序号（决定视差速度档位）
//   - cfg: 漂浮粒子配置中的各参数区间
//
// 返回: 创建的实体ID
func NewDriftParticleEntity(manager *ecs.EntityManager, rng host.Random, index int, cfg config.DriftConfig) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.DriftParticleComponent{
		Index:         index,
		StartXPercent: utils.RandomRange(rng.Float64(), cfg.StartX.Min, cfg.StartX.Max),
		StartYPercent: utils.RandomRange(rng.Float64(), cfg.StartY.Min, cfg.StartY.Max),
		Delay:         utils.RandomRange(rng.Float64(), cfg.Delay.Min, cfg.Delay.Max),
		Duration:      utils.RandomRange(rng.Float64(), cfg.Duration.Min, cfg.Duration.Max),
		Size:          utils.RandomRange(rng.Float64(), cfg.Size.Min, cfg.Size.Max),
	})

	return id
}
