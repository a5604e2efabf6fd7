package systems

import (
	"github.com/decker502/neuralfx/pkg/components"
	"github.com/decker502/neuralfx/pkg/ecs"
	"github.com/decker502/neuralfx/pkg/types"
)

// NodeView 节点的只读快照
type NodeView struct {
	ID       ecs.EntityID
	Position types.Point
	components.NodeComponent
}

// ParticleView 流动粒子的只读快照
type ParticleView struct {
	ID       ecs.EntityID
	Position types.Point
	components.TravelerComponent
}

// NetworkStats 网络动画的实体统计
type NetworkStats struct {
	Nodes            int
	Connections      int
	Particles        int
	ActiveNodes      int
	HighlightedNodes int
	Rebuilds         int
	// Entities 表面实体总数，应等于节点、连线、粒子之和
	Entities int
}

// Nodes 返回所有节点的快照，按生成顺序排列
func (a *NetworkGraphAnimator) Nodes() []NodeView {
	if !a.enabled {
		return nil
	}
	views := make([]NodeView, 0, len(a.nodeIDs))
	for i, id := range a.nodeIDs {
		node, ok := ecs.GetComponent[*components.NodeComponent](a.em, id)
		if !ok {
			continue
		}
		views = append(views, NodeView{ID: id, Position: a.nodePoints[i], NodeComponent: *node})
	}
	return views
}

// Connections 返回所有连线的快照
func (a *NetworkGraphAnimator) Connections() []components.ConnectionComponent {
	if !a.enabled {
		return nil
	}
	ids := ecs.GetEntitiesWith1[*components.ConnectionComponent](a.em)
	result := make([]components.ConnectionComponent, 0, len(ids))
	for _, id := range ids {
		if conn, ok := ecs.GetComponent[*components.ConnectionComponent](a.em, id); ok {
			result = append(result, *conn)
		}
	}
	return result
}

// Particles 返回所有流动粒子的快照
func (a *NetworkGraphAnimator) Particles() []ParticleView {
	if !a.enabled {
		return nil
	}
	ids := ecs.GetEntitiesWith2[*components.TravelerComponent, *components.PositionComponent](a.em)
	result := make([]ParticleView, 0, len(ids))
	for _, id := range ids {
		tr, _ := ecs.GetComponent[*components.TravelerComponent](a.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](a.em, id)
		if tr == nil || pos == nil {
			continue
		}
		result = append(result, ParticleView{ID: id, Position: pos.Point(), TravelerComponent: *tr})
	}
	return result
}

// Stats 汇总当前实体数量
func (a *NetworkGraphAnimator) Stats() NetworkStats {
	stats := NetworkStats{Rebuilds: a.rebuilds}
	if !a.enabled {
		return stats
	}
	for _, n := range a.Nodes() {
		stats.Nodes++
		if n.Active {
			stats.ActiveNodes++
		}
		if n.Highlighted {
			stats.HighlightedNodes++
		}
	}
	stats.Connections = a.countConnections()
	stats.Particles = a.countTravelers()
	stats.Entities = a.em.EntityCount()
	return stats
}
