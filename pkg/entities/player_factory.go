package entities

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/starstorm/pkg/components"
	"github.com/gonewx/starstorm/pkg/config"
	"github.com/gonewx/starstorm/pkg/ecs"
	"github.com/gonewx/starstorm/pkg/game"
)

const (
	// 玩家贴图基础尺寸与渲染缩放
	// 128x128 的贴图按 0.5 渲染成 64x64，边界计算用预缩放尺寸
	playerSpriteSize  = 128.0
	playerRenderScale = 0.5

	// 玩家出生点（世界坐标，视口下半区）
	playerSpawnX = 0.0
	playerSpawnY = -200.0
)

// NewPlayer 创建玩家战机实体
// 整局游戏只创建一次；携带 PlayerComponent 的实体必须恰好一个
//
// 出生时带一段满额无敌时间，避免刚入场就被流弹命中
// 玩家不携带 DespawnOutsideComponent：限位系统保证它不会离屏
//
// 参数:
//   - em: 实体管理器
//   - rm: 精灵提供者，nil 时创建无图像实体（无头测试）
//   - cfg: 玩法调参，nil 时使用内置默认值
//
// 返回:
//   - ecs.EntityID: 创建的玩家实体ID，失败返回 0
//   - error: em 为 nil 时返回错误
func NewPlayer(em *ecs.EntityManager, rm SpriteProvider, cfg *config.GameplayConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		cfg = config.DefaultGameplayConfig()
	}

	var img *ebiten.Image
	if rm != nil {
		img = rm.GetSprite(game.SpritePlayer)
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{
		X: playerSpawnX,
		Y: playerSpawnY,
	})
	em.AddComponent(entityID, &components.VelocityComponent{VX: 0, VY: 0})
	em.AddComponent(entityID, &components.SpriteComponent{
		Image:  img,
		Width:  playerSpriteSize,
		Height: playerSpriteSize,
	})
	// 预缩放渲染尺寸：限位和渲染都用 64x64
	em.AddComponent(entityID, components.NewSpriteSizeComponent(
		playerSpriteSize, playerSpriteSize, playerRenderScale))
	em.AddComponent(entityID, &components.HitboxComponent{
		Radius: cfg.Player.HitboxRadius,
	})
	em.AddComponent(entityID, &components.HealthComponent{
		CurrentHealth: cfg.Player.MaxHealth,
		MaxHealth:     cfg.Player.MaxHealth,
	})
	em.AddComponent(entityID, &components.FactionComponent{
		Faction: components.FactionPlayer,
	})
	em.AddComponent(entityID, &components.PlayerComponent{})
	em.AddComponent(entityID, &components.InvulnTimerComponent{
		Remaining: cfg.Player.InvulnDuration,
		Duration:  cfg.Player.InvulnDuration,
	})

	log.Printf("[PlayerFactory] 创建玩家战机 %d: 生命=%d 无敌=%.1fs",
		entityID, cfg.Player.MaxHealth, cfg.Player.InvulnDuration)

	return entityID, nil
}
