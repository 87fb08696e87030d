package systems

import (
	"fmt"

	"github.com/gonewx/starstorm/pkg/components"
	"github.com/gonewx/starstorm/pkg/ecs"
	"github.com/gonewx/starstorm/pkg/game"
)

// CollisionSystem 处理两个阵营之间的伤害结算
// 每帧固定跑两段：先结算敌方子弹对玩家（Pass A），
// 再结算玩家子弹对敌机（Pass B），顺序不可调换
//
// 玩家一帧最多吃一次伤害（无敌帧机制）；敌机伤害在帧内累积。
// 敌机血量归零后的销毁与计分由 EnemySystem 在下一帧处理
type CollisionSystem struct {
	em        *ecs.EntityManager
	audio     *game.AudioManager
	gameState *game.GameState
}

// NewCollisionSystem 创建碰撞结算系统
//
// 参数:
//   - em: 实体管理器
//   - audio: 音频管理器，用于受击音效，nil 时静默
//   - gameState: 游戏状态，用于请求终局，nil 时跳过终局请求
//
// 返回:
//   - *CollisionSystem: 碰撞结算系统实例
func NewCollisionSystem(em *ecs.EntityManager, audio *game.AudioManager, gameState *game.GameState) *CollisionSystem {
	return &CollisionSystem{
		em:        em,
		audio:     audio,
		gameState: gameState,
	}
}

// circlesOverlap 检查两个实体的碰撞圆是否相交
// 用距离平方和半径和平方比较，避免开方；
// 严格小于才算命中：两圆正好相切不触发伤害
//
// 参数:
//   - pos1: 第一个实体的位置组件
//   - hit1: 第一个实体的判定圆组件
//   - pos2: 第二个实体的位置组件
//   - hit2: 第二个实体的判定圆组件
//
// 返回:
//   - bool: 两圆相交返回 true，相切或分离返回 false
func circlesOverlap(
	pos1 *components.PositionComponent, hit1 *components.HitboxComponent,
	pos2 *components.PositionComponent, hit2 *components.HitboxComponent) bool {

	dx := pos1.X - pos2.X
	dy := pos1.Y - pos2.Y
	radiusSum := hit1.Radius + hit2.Radius
	return dx*dx+dy*dy < radiusSum*radiusSum
}

// Update 执行一帧的伤害结算
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒），用于推进无敌倒计时
func (cs *CollisionSystem) Update(deltaTime float64) {
	cs.resolveEnemyFire(deltaTime)
	cs.resolvePlayerFire()
}

// resolveEnemyFire 结算敌方子弹对玩家的命中（Pass A）
//
// 玩家单例是硬约定：携带 PlayerComponent 的实体必须恰好一个，
// 数量不对说明装配代码有 bug，直接 panic 快速暴露。
// 玩家缺位置或判定圆时整段跳过（过滤，不是错误）
func (cs *CollisionSystem) resolveEnemyFire(deltaTime float64) {
	players := ecs.GetEntitiesWith1[*components.PlayerComponent](cs.em)
	if len(players) != 1 {
		panic(fmt.Sprintf(
			"CollisionSystem: expected exactly 1 player entity, found %d", len(players)))
	}
	playerID := players[0]

	// 无敌倒计时每帧只推进一次，与子弹数量无关
	invuln, hasInvuln := ecs.GetComponent[*components.InvulnTimerComponent](cs.em, playerID)
	if hasInvuln && invuln.Remaining > 0 {
		invuln.Remaining -= deltaTime
		if invuln.Remaining < 0 {
			invuln.Remaining = 0
		}
	}

	playerPos, posOK := ecs.GetComponent[*components.PositionComponent](cs.em, playerID)
	playerHitbox, hitOK := ecs.GetComponent[*components.HitboxComponent](cs.em, playerID)
	if !posOK || !hitOK {
		return
	}

	// 易伤状态在遍历子弹前捕获一次：
	// 无论子弹遍历顺序如何，同一帧内最多只有一颗子弹造成伤害
	vulnerable := !hasInvuln || invuln.Remaining <= 0

	bullets := ecs.GetEntitiesWith4[
		*components.BulletComponent,
		*components.FactionComponent,
		*components.HitboxComponent,
		*components.PositionComponent,
	](cs.em)

	for _, bulletID := range bullets {
		faction, ok := ecs.GetComponent[*components.FactionComponent](cs.em, bulletID)
		if !ok || faction.Faction != components.FactionEnemy {
			continue
		}
		bulletPos, ok := ecs.GetComponent[*components.PositionComponent](cs.em, bulletID)
		if !ok {
			continue
		}
		bulletHitbox, ok := ecs.GetComponent[*components.HitboxComponent](cs.em, bulletID)
		if !ok {
			continue
		}
		bullet, ok := ecs.GetComponent[*components.BulletComponent](cs.em, bulletID)
		if !ok {
			continue
		}

		if !circlesOverlap(bulletPos, bulletHitbox, playerPos, playerHitbox) {
			continue
		}

		// 子弹碰到玩家一律消耗，无敌状态也不穿透
		cs.em.DestroyEntity(bulletID)

		if !vulnerable {
			continue
		}
		vulnerable = false

		if cs.audio != nil {
			cs.audio.PlaySound(game.SoundPlayerHit)
		}

		if health, ok := ecs.GetComponent[*components.HealthComponent](cs.em, playerID); ok {
			health.CurrentHealth -= bullet.Damage
			if health.CurrentHealth < 0 {
				health.CurrentHealth = 0
			}
			if health.CurrentHealth == 0 && cs.gameState != nil {
				cs.gameState.RequestGameOver()
			}
		}

		if hasInvuln {
			invuln.Remaining = invuln.Duration
		}
	}
}

// resolvePlayerFire 结算玩家子弹对敌机的命中（Pass B）
//
// 敌机没有无敌帧，伤害在帧内累积：两颗子弹打同一架敌机都生效。
// 子弹销毁走帧末延迟删除，所以一颗子弹可以同时伤到多架重叠的
// 敌机（重复标记销毁是无害的空操作）
func (cs *CollisionSystem) resolvePlayerFire() {
	enemies := ecs.GetEntitiesWith4[
		*components.EnemyComponent,
		*components.HealthComponent,
		*components.HitboxComponent,
		*components.PositionComponent,
	](cs.em)
	if len(enemies) == 0 {
		return
	}

	bullets := ecs.GetEntitiesWith4[
		*components.BulletComponent,
		*components.FactionComponent,
		*components.HitboxComponent,
		*components.PositionComponent,
	](cs.em)

	for _, bulletID := range bullets {
		faction, ok := ecs.GetComponent[*components.FactionComponent](cs.em, bulletID)
		if !ok || faction.Faction != components.FactionPlayer {
			continue
		}
		bulletPos, ok := ecs.GetComponent[*components.PositionComponent](cs.em, bulletID)
		if !ok {
			continue
		}
		bulletHitbox, ok := ecs.GetComponent[*components.HitboxComponent](cs.em, bulletID)
		if !ok {
			continue
		}
		bullet, ok := ecs.GetComponent[*components.BulletComponent](cs.em, bulletID)
		if !ok {
			continue
		}

		for _, enemyID := range enemies {
			enemyPos, ok := ecs.GetComponent[*components.PositionComponent](cs.em, enemyID)
			if !ok {
				continue
			}
			enemyHitbox, ok := ecs.GetComponent[*components.HitboxComponent](cs.em, enemyID)
			if !ok {
				continue
			}

			if !circlesOverlap(bulletPos, bulletHitbox, enemyPos, enemyHitbox) {
				continue
			}

			cs.em.DestroyEntity(bulletID)

			if health, ok := ecs.GetComponent[*components.HealthComponent](cs.em, enemyID); ok {
				health.CurrentHealth -= bullet.Damage
				if health.CurrentHealth < 0 {
					health.CurrentHealth = 0
				}
			}
		}
	}
}
