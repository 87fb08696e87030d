package entities

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/starstorm/pkg/components"
	"github.com/gonewx/starstorm/pkg/config"
	"github.com/gonewx/starstorm/pkg/ecs"
	"github.com/gonewx/starstorm/pkg/game"
)

const (
	// 子弹贴图基础尺寸（不做渲染缩放，ScaleComponent 取 1）
	playerBulletWidth  = 8.0
	playerBulletHeight = 16.0
	enemyBulletWidth   = 8.0
	enemyBulletHeight  = 8.0
)

// NewPlayerBullet 创建玩家子弹实体
// 从战机机头垂直向上飞行，命中敌机即销毁
// 携带 DespawnOutsideComponent：飞出顶边后由回收系统销毁
//
// 参数:
//   - em: 实体管理器
//   - rm: 精灵提供者，nil 时创建无图像实体（无头测试）
//   - cfg: 玩法调参，nil 时使用内置默认值
//   - startX: 发射点世界X坐标
//   - startY: 发射点世界Y坐标
//
// 返回:
//   - ecs.EntityID: 创建的子弹实体ID，失败返回 0
//   - error: em 为 nil 时返回错误
func NewPlayerBullet(em *ecs.EntityManager, rm SpriteProvider, cfg *config.GameplayConfig,
	startX, startY float64) (ecs.EntityID, error) {

	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		cfg = config.DefaultGameplayConfig()
	}

	var img *ebiten.Image
	if rm != nil {
		img = rm.GetSprite(game.SpritePlayerBullet)
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{
		X: startX,
		Y: startY,
	})
	em.AddComponent(entityID, &components.VelocityComponent{
		VX: 0,
		VY: cfg.Bullet.PlayerBulletSpeed,
	})
	em.AddComponent(entityID, &components.SpriteComponent{
		Image:  img,
		Width:  playerBulletWidth,
		Height: playerBulletHeight,
	})
	em.AddComponent(entityID, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})
	em.AddComponent(entityID, &components.HitboxComponent{
		Radius: cfg.Bullet.HitboxRadius,
	})
	em.AddComponent(entityID, &components.BulletComponent{
		Damage: cfg.Player.BulletDamage,
	})
	em.AddComponent(entityID, &components.FactionComponent{
		Faction: components.FactionPlayer,
	})
	em.AddComponent(entityID, &components.DespawnOutsideComponent{})

	return entityID, nil
}

// NewEnemyBullet 创建敌方子弹实体
// 从敌机位置垂直向下飞行，命中玩家即销毁
// 携带 DespawnOutsideComponent：飞出底边后由回收系统销毁
//
// 参数:
//   - em: 实体管理器
//   - rm: 精灵提供者，nil 时创建无图像实体（无头测试）
//   - cfg: 玩法调参，nil 时使用内置默认值
//   - startX: 发射点世界X坐标
//   - startY: 发射点世界Y坐标
//
// 返回:
//   - ecs.EntityID: 创建的子弹实体ID，失败返回 0
//   - error: em 为 nil 时返回错误
func NewEnemyBullet(em *ecs.EntityManager, rm SpriteProvider, cfg *config.GameplayConfig,
	startX, startY float64) (ecs.EntityID, error) {

	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		cfg = config.DefaultGameplayConfig()
	}

	var img *ebiten.Image
	if rm != nil {
		img = rm.GetSprite(game.SpriteEnemyBullet)
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{
		X: startX,
		Y: startY,
	})
	em.AddComponent(entityID, &components.VelocityComponent{
		VX: 0,
		VY: -cfg.Bullet.EnemyBulletSpeed,
	})
	em.AddComponent(entityID, &components.SpriteComponent{
		Image:  img,
		Width:  enemyBulletWidth,
		Height: enemyBulletHeight,
	})
	em.AddComponent(entityID, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})
	em.AddComponent(entityID, &components.HitboxComponent{
		Radius: cfg.Bullet.HitboxRadius,
	})
	em.AddComponent(entityID, &components.BulletComponent{
		Damage: cfg.Enemy.BulletDamage,
	})
	em.AddComponent(entityID, &components.FactionComponent{
		Faction: components.FactionEnemy,
	})
	em.AddComponent(entityID, &components.DespawnOutsideComponent{})

	return entityID, nil
}
