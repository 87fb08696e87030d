package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/starstorm/pkg/components"
	"github.com/gonewx/starstorm/pkg/config"
	"github.com/gonewx/starstorm/pkg/ecs"
	"github.com/gonewx/starstorm/pkg/entities"
	"github.com/gonewx/starstorm/pkg/game"
	"github.com/gonewx/starstorm/pkg/types"
	"github.com/gonewx/starstorm/pkg/utils"
)

const (
	// 敌机的预缩放渲染尺寸，生成位置按它贴着顶边外侧计算
	enemyRenderSize = 128.0

	// 敌方子弹发射点相对机身中心的偏移：半机身 64 加半弹径 4
	enemyMuzzleOffset = 68.0
)

// EnemySystem 驱动敌机的完整生命周期
// 波次生成、开火节奏、被击毁后的销毁与计分都在这里处理
// （碰撞系统只扣血，不处理敌机死亡）
type EnemySystem struct {
	em        *ecs.EntityManager
	rm        entities.SpriteProvider
	cfg       *config.GameplayConfig
	audio     *game.AudioManager
	gameState *game.GameState

	viewportWidth  float64
	viewportHeight float64

	// spawnTimer 生成计时累加器，到达间隔即出一架
	spawnTimer float64
}

// NewEnemySystem 创建敌机系统
//
// 参数:
//   - em: 实体管理器
//   - rm: 精灵提供者，用于生成敌机和子弹实体，可为 nil（无头测试）
//   - cfg: 玩法调参，nil 时使用内置默认值
//   - audio: 音频管理器，用于开火和爆炸音效，可为 nil
//   - gameState: 游戏状态，用于击毁计分，可为 nil
//   - viewportWidth: 视口宽度（世界单位）
//   - viewportHeight: 视口高度（世界单位）
//
// 返回:
//   - *EnemySystem: 敌机系统实例
func NewEnemySystem(em *ecs.EntityManager, rm entities.SpriteProvider,
	cfg *config.GameplayConfig, audio *game.AudioManager, gameState *game.GameState,
	viewportWidth, viewportHeight float64) *EnemySystem {

	if cfg == nil {
		cfg = config.DefaultGameplayConfig()
	}
	return &EnemySystem{
		em:             em,
		rm:             rm,
		cfg:            cfg,
		audio:          audio,
		gameState:      gameState,
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
	}
}

// Update 推进敌机系统一帧
// 先清点上一帧被打空血量的敌机，再推进存活敌机的开火，最后按间隔生成
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (es *EnemySystem) Update(deltaTime float64) {
	es.resolveDestroyed()
	es.advanceFireTimers(deltaTime)
	es.spawnWave(deltaTime)
}

// resolveDestroyed 处理血量归零的敌机：销毁、计分、爆炸音效
// 碰撞结算在帧序里排在本系统之后，所以击毁总是下一帧生效
func (es *EnemySystem) resolveDestroyed() {
	enemyIDs := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.HealthComponent](es.em)
	for _, entityID := range enemyIDs {
		health, ok := ecs.GetComponent[*components.HealthComponent](es.em, entityID)
		if !ok || health.CurrentHealth > 0 {
			continue
		}

		es.em.DestroyEntity(entityID)

		enemy, ok := ecs.GetComponent[*components.EnemyComponent](es.em, entityID)
		if !ok {
			continue
		}
		if es.gameState != nil {
			es.gameState.AddScore(enemy.ScoreValue)
		}
		if es.audio != nil {
			es.audio.PlaySound(game.SoundExplosion)
		}
		log.Printf("[EnemySystem] 敌机 %d (%s) 被击毁，得分 +%d",
			entityID, enemy.Type, enemy.ScoreValue)
	}
}

// advanceFireTimers 推进每架存活敌机的开火倒计时，归零即朝下开火
func (es *EnemySystem) advanceFireTimers(deltaTime float64) {
	enemyIDs := ecs.GetEntitiesWith3[
		*components.EnemyComponent,
		*components.PositionComponent,
		*components.HealthComponent,
	](es.em)

	for _, entityID := range enemyIDs {
		health, ok := ecs.GetComponent[*components.HealthComponent](es.em, entityID)
		if !ok || health.CurrentHealth <= 0 {
			// 刚被标记销毁的敌机不再开火
			continue
		}
		enemy, ok := ecs.GetComponent[*components.EnemyComponent](es.em, entityID)
		if !ok || enemy.FireInterval <= 0 {
			continue
		}

		enemy.FireTimer -= deltaTime
		if enemy.FireTimer > 0 {
			continue
		}
		enemy.FireTimer = enemy.FireInterval

		pos, ok := ecs.GetComponent[*components.PositionComponent](es.em, entityID)
		if !ok {
			continue
		}

		if _, err := entities.NewEnemyBullet(es.em, es.rm, es.cfg, pos.X, pos.Y-enemyMuzzleOffset); err != nil {
			log.Printf("[EnemySystem] Warning: failed to spawn enemy bullet: %v", err)
			continue
		}
		if es.audio != nil {
			es.audio.PlaySound(game.SoundEnemyShoot)
		}
	}
}

// spawnWave 按生成间隔在顶边上方随机横坐标出一架敌机
// 进场点 Y 取 OuterBound：机身完全在屏外贴着顶边，下一帧开始滚入
func (es *EnemySystem) spawnWave(deltaTime float64) {
	es.spawnTimer += deltaTime
	if es.spawnTimer < es.cfg.Enemy.SpawnInterval {
		return
	}
	es.spawnTimer -= es.cfg.Enemy.SpawnInterval

	halfRange := utils.InnerBound(es.viewportWidth, enemyRenderSize)
	x := (rand.Float64()*2 - 1) * halfRange
	y := utils.OuterBound(es.viewportHeight, enemyRenderSize)

	if _, err := entities.NewEnemy(es.em, es.rm, es.cfg, rollEnemyType(), x, y); err != nil {
		log.Printf("[EnemySystem] Warning: failed to spawn enemy: %v", err)
	}
}

// rollEnemyType 按权重随机敌机类型
// 战斗机为主力（6/10），突袭机次之（3/10），炮艇压轴（1/10）
func rollEnemyType() types.EnemyType {
	roll := rand.Intn(10)
	switch {
	case roll < 6:
		return types.EnemyFighter
	case roll < 9:
		return types.EnemyRaider
	default:
		return types.EnemyGunship
	}
}
