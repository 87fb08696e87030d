package entities

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/starstorm/pkg/components"
	"github.com/gonewx/starstorm/pkg/config"
	"github.com/gonewx/starstorm/pkg/ecs"
	"github.com/gonewx/starstorm/pkg/game"
	"github.com/gonewx/starstorm/pkg/types"
)

const (
	// 敌机贴图基础尺寸与渲染缩放
	// 256x256 的贴图按 0.5 渲染成 128x128
	enemySpriteSize  = 256.0
	enemyRenderScale = 0.5
)

// enemyStats 单个敌机类型的成型参数
// 以 EnemyTuning 的基础数值为底，按类型做形态修正
type enemyStats struct {
	spriteID     string
	descendSpeed float64
	maxHealth    int
	fireInterval float64
	scoreValue   int
}

// statsForType 返回指定敌机类型的成型参数
func statsForType(cfg *config.GameplayConfig, enemyType types.EnemyType) enemyStats {
	stats := enemyStats{
		spriteID:     game.SpriteEnemyFighter,
		descendSpeed: cfg.Enemy.DescendSpeed,
		maxHealth:    cfg.Enemy.MaxHealth,
		fireInterval: cfg.Enemy.FireInterval,
		scoreValue:   cfg.Enemy.ScoreValue,
	}

	switch enemyType {
	case types.EnemyRaider:
		// 突袭机：下降快、血薄、很少开火
		stats.spriteID = game.SpriteEnemyRaider
		stats.descendSpeed *= 1.6
		stats.maxHealth = 1
		stats.fireInterval *= 1.5
		stats.scoreValue = cfg.Enemy.ScoreValue * 3 / 2
	case types.EnemyGunship:
		// 炮艇：下降慢、血厚、射速高
		stats.spriteID = game.SpriteEnemyGunship
		stats.descendSpeed *= 0.6
		stats.maxHealth = cfg.Enemy.MaxHealth * 2
		stats.fireInterval *= 0.6
		stats.scoreValue = cfg.Enemy.ScoreValue * 2
	}

	return stats
}

// NewEnemy 创建敌机实体
// 敌机从视口顶边上方进场，以类型决定的速度垂直下降
// 携带 DespawnOutsideComponent：滚出底边后由回收系统销毁
//
// 参数:
//   - em: 实体管理器
//   - rm: 精灵提供者，nil 时创建无图像实体（无头测试）
//   - cfg: 玩法调参，nil 时使用内置默认值
//   - enemyType: 敌机类型（Fighter/Raider/Gunship）
//   - startX: 进场点世界X坐标
//   - startY: 进场点世界Y坐标
//
// 返回:
//   - ecs.EntityID: 创建的敌机实体ID，失败返回 0
//   - error: em 为 nil 或敌机类型非法时返回错误
func NewEnemy(em *ecs.EntityManager, rm SpriteProvider, cfg *config.GameplayConfig,
	enemyType types.EnemyType, startX, startY float64) (ecs.EntityID, error) {

	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if !enemyType.IsValid() {
		return 0, fmt.Errorf("invalid enemy type: %v", enemyType)
	}
	if cfg == nil {
		cfg = config.DefaultGameplayConfig()
	}

	stats := statsForType(cfg, enemyType)

	var img *ebiten.Image
	if rm != nil {
		img = rm.GetSprite(stats.spriteID)
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{
		X: startX,
		Y: startY,
	})
	// 垂直下降，Y 轴向上为正
	em.AddComponent(entityID, &components.VelocityComponent{
		VX: 0,
		VY: -stats.descendSpeed,
	})
	em.AddComponent(entityID, &components.SpriteComponent{
		Image:  img,
		Width:  enemySpriteSize,
		Height: enemySpriteSize,
	})
	em.AddComponent(entityID, components.NewSpriteSizeComponent(
		enemySpriteSize, enemySpriteSize, enemyRenderScale))
	em.AddComponent(entityID, &components.HitboxComponent{
		Radius: cfg.Enemy.HitboxRadius,
	})
	em.AddComponent(entityID, &components.HealthComponent{
		CurrentHealth: stats.maxHealth,
		MaxHealth:     stats.maxHealth,
	})
	em.AddComponent(entityID, &components.FactionComponent{
		Faction: components.FactionEnemy,
	})
	em.AddComponent(entityID, &components.EnemyComponent{
		Type: enemyType,
		// 首轮开火等满整个间隔，不在进场瞬间开火
		FireTimer:    stats.fireInterval,
		FireInterval: stats.fireInterval,
		ScoreValue:   stats.scoreValue,
	})
	em.AddComponent(entityID, &components.DespawnOutsideComponent{})

	log.Printf("[EnemyFactory] 生成敌机 %d: 类型=%s 位置=(%.0f, %.0f) 生命=%d",
		entityID, enemyType, startX, startY, stats.maxHealth)

	return entityID, nil
}
