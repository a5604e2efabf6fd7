package host

import (
	"github.com/decker502/neuralfx/pkg/ecs"
	"github.com/decker502/neuralfx/pkg/types"
)

// Surface 承载视觉实体的具名容器
//
// 每个表面独占一个 EntityManager，特效在其中创建和销毁实体；
// 不同特效之间从不访问对方的表面。
type Surface struct {
	id       string
	bounds   types.Rect
	entities *ecs.EntityManager
}

// ID 返回表面名称
func (s *Surface) ID() string {
	return s.id
}

// Bounds 返回表面在视口坐标中的矩形
func (s *Surface) Bounds() types.Rect {
	return s.bounds
}

// SetBounds 更新表面矩形（宿主在视口变化时调用）
func (s *Surface) SetBounds(r types.Rect) {
	s.bounds = r
}

// Entities 返回表面持有的实体存储
func (s *Surface) Entities() *ecs.EntityManager {
	return s.entities
}

// Document 宿主文档：视口尺寸 + 已挂载的表面
type Document struct {
	width, height float64
	surfaces      map[string]*Surface
}

// NewDocument 创建指定视口尺寸的文档
func NewDocument(width, height float64) *Document {
	return &Document{
		width:    width,
		height:   height,
		surfaces: make(map[string]*Surface),
	}
}

// Viewport 返回当前视口宽高
func (d *Document) Viewport() (width, height float64) {
	return d.width, d.height
}

// SetViewport 更新视口尺寸
func (d *Document) SetViewport(width, height float64) {
	d.width, d.height = width, height
}

// Mount 挂载一个新表面；同名表面已存在时返回已有表面并更新其矩形
func (d *Document) Mount(id string, bounds types.Rect) *Surface {
	if s, ok := d.surfaces[id]; ok {
		s.bounds = bounds
		return s
	}
	s := &Surface{
		id:       id,
		bounds:   bounds,
		entities: ecs.NewEntityManager(),
	}
	d.surfaces[id] = s
	return s
}

// Unmount 移除表面及其全部实体
func (d *Document) Unmount(id string) {
	delete(d.surfaces, id)
}

// Lookup 按名称查找表面
func (d *Document) Lookup(id string) (*Surface, bool) {
	s, ok := d.surfaces[id]
	return s, ok
}
