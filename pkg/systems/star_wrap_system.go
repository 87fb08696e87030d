package systems

import (
	"github.com/gonewx/starstorm/pkg/components"
	"github.com/gonewx/starstorm/pkg/ecs"
	"github.com/gonewx/starstorm/pkg/utils"
)

// StarWrapSystem 循环使用背景星星
// 星星完全滚出底边后传送到顶边上方等待再次滚入，
// 星星实体因此终生存活，不走出屏回收
type StarWrapSystem struct {
	em             *ecs.EntityManager
	viewportHeight float64
}

// NewStarWrapSystem 创建星空循环系统
//
// 参数:
//   - em: 实体管理器
//   - viewportHeight: 视口高度（世界单位）
//
// 返回:
//   - *StarWrapSystem: 星空循环系统实例
func NewStarWrapSystem(em *ecs.EntityManager, viewportHeight float64) *StarWrapSystem {
	return &StarWrapSystem{
		em:             em,
		viewportHeight: viewportHeight,
	}
}

// Update 回绕滚出底边的星星
// 临界值取 OuterBound（星星完全出屏的中心距）：
// 严格低于 -OuterBound 才回绕到 +OuterBound，正好压线的星星不动；
// X 坐标保持不变，星星沿原来的竖直轨迹继续下落
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒），本系统不使用
func (sw *StarWrapSystem) Update(deltaTime float64) {
	stars := ecs.GetEntitiesWith3[
		*components.StarComponent,
		*components.PositionComponent,
		*components.SpriteComponent,
	](sw.em)

	for _, entityID := range stars {
		pos, ok := ecs.GetComponent[*components.PositionComponent](sw.em, entityID)
		if !ok {
			continue
		}
		sprite, ok := ecs.GetComponent[*components.SpriteComponent](sw.em, entityID)
		if !ok {
			continue
		}

		scaleY := 1.0
		if scale, ok := ecs.GetComponent[*components.ScaleComponent](sw.em, entityID); ok {
			scaleY = scale.ScaleY
		}

		bound := utils.OuterBound(sw.viewportHeight, sprite.Height*scaleY)
		if pos.Y < -bound {
			pos.Y = bound
		}
	}
}
