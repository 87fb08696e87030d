package systems

import (
	"sync"

	"github.com/gonewx/starstorm/pkg/components"
	"github.com/gonewx/starstorm/pkg/ecs"
	"github.com/gonewx/starstorm/pkg/game"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// testAudioContext 是测试用的共享音频上下文
// 所有测试文件共享此上下文以避免重复创建
// 使用延迟初始化避免与 main.go 冲突
var (
	testAudioContext     *audio.Context
	testAudioContextOnce sync.Once
)

// getTestAudioContext 获取测试音频上下文（延迟创建）
func getTestAudioContext() *audio.Context {
	testAudioContextOnce.Do(func() {
		testAudioContext = audio.NewContext(game.SampleRate)
	})
	return testAudioContext
}

// spawnTestPlayer 创建碰撞测试用的最小玩家实体
// 只装配 Pass A 需要的组件，位置在原点，判定圆半径 24
func spawnTestPlayer(em *ecs.EntityManager, health int, invulnRemaining float64) ecs.EntityID {
	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PlayerComponent{})
	em.AddComponent(entityID, &components.PositionComponent{X: 0, Y: 0})
	em.AddComponent(entityID, &components.HitboxComponent{Radius: 24})
	em.AddComponent(entityID, &components.HealthComponent{
		CurrentHealth: health,
		MaxHealth:     health,
	})
	em.AddComponent(entityID, &components.InvulnTimerComponent{
		Remaining: invulnRemaining,
		Duration:  1.0,
	})
	return entityID
}

// spawnTestEnemyBullet 创建指定位置的敌方子弹（测试用）
func spawnTestEnemyBullet(em *ecs.EntityManager, x, y float64, damage int) ecs.EntityID {
	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.BulletComponent{Damage: damage})
	em.AddComponent(entityID, &components.FactionComponent{Faction: components.FactionEnemy})
	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.HitboxComponent{Radius: 6})
	return entityID
}

// spawnTestPlayerBullet 创建指定位置的玩家子弹（测试用）
func spawnTestPlayerBullet(em *ecs.EntityManager, x, y float64, damage int) ecs.EntityID {
	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.BulletComponent{Damage: damage})
	em.AddComponent(entityID, &components.FactionComponent{Faction: components.FactionPlayer})
	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.HitboxComponent{Radius: 6})
	return entityID
}

// spawnTestEnemy 创建指定位置的敌机（测试用，不开火）
func spawnTestEnemy(em *ecs.EntityManager, x, y float64, health int) ecs.EntityID {
	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.EnemyComponent{ScoreValue: 100})
	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.HitboxComponent{Radius: 48})
	em.AddComponent(entityID, &components.HealthComponent{
		CurrentHealth: health,
		MaxHealth:     health,
	})
	return entityID
}
