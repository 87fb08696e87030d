package entities

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/starstorm/pkg/components"
	"github.com/gonewx/starstorm/pkg/ecs"
	"github.com/gonewx/starstorm/pkg/game"
)

// 星星贴图基础尺寸，实际大小由 ScaleComponent 决定
const starSpriteSize = 2.0

// NewStar 创建背景星星实体
// 星星匀速向下滚动，滚出底边后由 StarWrapSystem 传送回顶边复用，
// 因此不携带 DespawnOutsideComponent，也没有碰撞判定
//
// 随机化（位置、速度、缩放、亮度）由调用方完成，工厂只负责装配，
// 便于测试用固定参数构造
//
// 参数:
//   - em: 实体管理器
//   - rm: 精灵提供者，nil 时创建无图像实体（无头测试）
//   - x: 世界X坐标
//   - y: 世界Y坐标
//   - fallSpeed: 下落速度（世界单位/秒，正值）
//   - scale: 渲染缩放因子
//   - brightness: 亮度系数（0.0-1.0）
//
// 返回:
//   - ecs.EntityID: 创建的星星实体ID，失败返回 0
//   - error: em 为 nil 时返回错误
func NewStar(em *ecs.EntityManager, rm SpriteProvider,
	x, y, fallSpeed, scale, brightness float64) (ecs.EntityID, error) {

	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	var img *ebiten.Image
	if rm != nil {
		img = rm.GetSprite(game.SpriteStar)
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.VelocityComponent{
		VX: 0,
		VY: -fallSpeed,
	})
	em.AddComponent(entityID, &components.SpriteComponent{
		Image:  img,
		Width:  starSpriteSize,
		Height: starSpriteSize,
	})
	em.AddComponent(entityID, &components.ScaleComponent{
		ScaleX: scale,
		ScaleY: scale,
	})
	em.AddComponent(entityID, &components.StarComponent{
		Brightness: brightness,
	})

	return entityID, nil
}
