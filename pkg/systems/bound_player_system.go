package systems

import (
	"github.com/gonewx/starstorm/pkg/components"
	"github.com/gonewx/starstorm/pkg/ecs"
	"github.com/gonewx/starstorm/pkg/utils"
)

// BoundPlayerSystem 把玩家战机限制在视口内
// 在移动系统之后运行，保证玩家任何一帧都不会画到屏幕外
// 只做位置钳制，不清零速度：撞边后松开反方向键即可立刻脱离
type BoundPlayerSystem struct {
	em             *ecs.EntityManager
	viewportWidth  float64
	viewportHeight float64
}

// NewBoundPlayerSystem 创建玩家限位系统
//
// 参数:
//   - em: 实体管理器
//   - viewportWidth: 视口宽度（世界单位）
//   - viewportHeight: 视口高度（世界单位）
//
// 返回:
//   - *BoundPlayerSystem: 限位系统实例
func NewBoundPlayerSystem(em *ecs.EntityManager, viewportWidth, viewportHeight float64) *BoundPlayerSystem {
	return &BoundPlayerSystem{
		em:             em,
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
	}
}

// Update 钳制所有玩家实体的位置
// 限位范围由视口尺寸和实体的预缩放渲染尺寸共同决定：
// 贴图中心最远只能到 ±InnerBound，此时贴图边缘正好压在视口边上
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒），本系统不使用
func (bs *BoundPlayerSystem) Update(deltaTime float64) {
	players := ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.PositionComponent,
		*components.SpriteSizeComponent,
	](bs.em)

	for _, entityID := range players {
		pos, ok := ecs.GetComponent[*components.PositionComponent](bs.em, entityID)
		if !ok {
			continue
		}
		size, ok := ecs.GetComponent[*components.SpriteSizeComponent](bs.em, entityID)
		if !ok {
			continue
		}

		maxX := utils.InnerBound(bs.viewportWidth, size.Width)
		maxY := utils.InnerBound(bs.viewportHeight, size.Height)

		if pos.X > maxX {
			pos.X = maxX
		} else if pos.X < -maxX {
			pos.X = -maxX
		}

		if pos.Y > maxY {
			pos.Y = maxY
		} else if pos.Y < -maxY {
			pos.Y = -maxY
		}
	}
}
