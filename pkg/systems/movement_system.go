package systems

import (
	"github.com/gonewx/starstorm/pkg/components"
	"github.com/gonewx/starstorm/pkg/ecs"
)

// MovementSystem 处理实体的匀速运动
// 对所有同时拥有位置和速度组件的实体做时间积分
type MovementSystem struct {
	em *ecs.EntityManager
}

// NewMovementSystem 创建移动系统
//
// 参数:
//   - em: 实体管理器
//
// 返回:
//   - *MovementSystem: 移动系统实例
func NewMovementSystem(em *ecs.EntityManager) *MovementSystem {
	return &MovementSystem{em: em}
}

// Update 按帧时长积分速度到位置
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (ms *MovementSystem) Update(deltaTime float64) {
	movers := ecs.GetEntitiesWith2[*components.PositionComponent, *components.VelocityComponent](ms.em)
	for _, entityID := range movers {
		pos, ok := ecs.GetComponent[*components.PositionComponent](ms.em, entityID)
		if !ok {
			continue
		}
		vel, ok := ecs.GetComponent[*components.VelocityComponent](ms.em, entityID)
		if !ok {
			continue
		}

		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime
	}
}
