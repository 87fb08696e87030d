package systems

import (
	"github.com/gonewx/starstorm/pkg/components"
	"github.com/gonewx/starstorm/pkg/config"
	"github.com/gonewx/starstorm/pkg/ecs"
	"github.com/gonewx/starstorm/pkg/utils"
)

// DespawnSystem 回收飞出视口的实体
// 只处理携带 DespawnOutsideComponent 标记的实体（子弹、敌机）；
// 实体完全出屏并超出容差边距后才销毁，正好压在边距上的实体保留
type DespawnSystem struct {
	em             *ecs.EntityManager
	viewportWidth  float64
	viewportHeight float64
}

// NewDespawnSystem 创建出屏回收系统
//
// 参数:
//   - em: 实体管理器
//   - viewportWidth: 视口宽度（世界单位）
//   - viewportHeight: 视口高度（世界单位）
//
// 返回:
//   - *DespawnSystem: 回收系统实例
func NewDespawnSystem(em *ecs.EntityManager, viewportWidth, viewportHeight float64) *DespawnSystem {
	return &DespawnSystem{
		em:             em,
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
	}
}

// Update 销毁离屏超过容差的标记实体
// 判定阈值 = OuterBound（实体完全出屏的临界中心距）+ DespawnMargin；
// 任何一侧严格越过阈值即回收，销毁走帧末延迟删除
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒），本系统不使用
func (ds *DespawnSystem) Update(deltaTime float64) {
	marked := ecs.GetEntitiesWith2[
		*components.DespawnOutsideComponent,
		*components.PositionComponent,
	](ds.em)

	for _, entityID := range marked {
		pos, ok := ecs.GetComponent[*components.PositionComponent](ds.em, entityID)
		if !ok {
			continue
		}

		width, height, ok := ds.entityExtent(entityID)
		if !ok {
			// 没有任何尺寸来源，无法判定出屏，跳过
			continue
		}

		limitX := utils.OuterBound(ds.viewportWidth, width) + config.DespawnMargin
		limitY := utils.OuterBound(ds.viewportHeight, height) + config.DespawnMargin

		if pos.X > limitX || pos.X < -limitX || pos.Y > limitY || pos.Y < -limitY {
			ds.em.DestroyEntity(entityID)
		}
	}
}

// entityExtent 返回实体的实际渲染尺寸
// 优先使用预缩放的 SpriteSizeComponent；否则取 Sprite 基础尺寸乘
// ScaleComponent（没有缩放组件按 1 算）
//
// 返回:
//   - float64: 渲染宽度
//   - float64: 渲染高度
//   - bool: 实体是否带有可用的尺寸来源
func (ds *DespawnSystem) entityExtent(entityID ecs.EntityID) (float64, float64, bool) {
	if size, ok := ecs.GetComponent[*components.SpriteSizeComponent](ds.em, entityID); ok {
		return size.Width, size.Height, true
	}

	sprite, ok := ecs.GetComponent[*components.SpriteComponent](ds.em, entityID)
	if !ok {
		return 0, 0, false
	}

	scaleX, scaleY := 1.0, 1.0
	if scale, ok := ecs.GetComponent[*components.ScaleComponent](ds.em, entityID); ok {
		scaleX = scale.ScaleX
		scaleY = scale.ScaleY
	}

	return sprite.Width * scaleX, sprite.Height * scaleY, true
}
