package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/gonewx/starstorm/pkg/components"
	"github.com/gonewx/starstorm/pkg/config"
	"github.com/gonewx/starstorm/pkg/ecs"
	"github.com/gonewx/starstorm/pkg/entities"
	"github.com/gonewx/starstorm/pkg/game"
	"github.com/gonewx/starstorm/pkg/systems"
)

const (
	// HUD 文字布局
	hudMarginX    = 8
	hudLineHeight = 16

	// 星空随机参数范围
	// 亮度下限：即使最慢的星星也要隐约可见
	starMinScale      = 1.0
	starMaxScale      = 2.5
	starMinBrightness = 0.3
)

// 深空底色，接近黑色的暗蓝
var spaceColor = color.RGBA{R: 8, G: 10, B: 26, A: 255}

// GameScene 是主游玩场景
// 持有一局游戏的整个 ECS 世界：星空、玩家战机、敌机波次和双方弹幕。
// 每帧按固定顺序推进各系统，并在帧末统一清除被标记销毁的实体。
type GameScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	gameState       *game.GameState
	gameplayCfg     *config.GameplayConfig

	// ECS 框架与系统
	entityManager       *ecs.EntityManager
	playerControlSystem *systems.PlayerControlSystem
	enemySystem         *systems.EnemySystem
	movementSystem      *systems.MovementSystem
	boundPlayerSystem   *systems.BoundPlayerSystem
	collisionSystem     *systems.CollisionSystem
	despawnSystem       *systems.DespawnSystem
	starWrapSystem      *systems.StarWrapSystem
	renderSystem        *systems.RenderSystem
}

// 窗口关闭时由 app 调用 SaveOnExit 结算存档
var _ game.Saveable = (*GameScene)(nil)

// NewGameScene 创建并初始化主游玩场景
//
// 开始新的一局：重置全局状态，铺设星空，创建玩家战机。
// 音频、设置、存档管理器通过 GameState 获取，任何一个缺失都不影响游玩。
//
// 参数:
//   - rm: 资源管理器，nil 时以无图像模式运行（无头测试）
//   - sm: 场景管理器，用于游戏结束时切换到结算场景
//   - cfg: 玩法调参，nil 时使用内置默认值
//
// 返回:
//   - *GameScene: 新创建的游玩场景
func NewGameScene(rm *game.ResourceManager, sm *game.SceneManager, cfg *config.GameplayConfig) *GameScene {
	if cfg == nil {
		cfg = config.DefaultGameplayConfig()
	}

	gameState := game.GetGameState()
	gameState.ResetRun()

	scene := &GameScene{
		resourceManager: rm,
		sceneManager:    sm,
		gameState:       gameState,
		gameplayCfg:     cfg,
	}

	// 初始化 ECS 框架
	em := ecs.NewEntityManager()
	scene.entityManager = em

	audioManager := gameState.GetAudioManager()
	settingsManager := gameState.GetSettingsManager()
	viewportW := float64(config.GameWindowWidth)
	viewportH := float64(config.GameWindowHeight)

	scene.playerControlSystem = systems.NewPlayerControlSystem(em, rm, cfg, audioManager)
	scene.enemySystem = systems.NewEnemySystem(em, rm, cfg, audioManager, gameState, viewportW, viewportH)
	scene.movementSystem = systems.NewMovementSystem(em)
	scene.boundPlayerSystem = systems.NewBoundPlayerSystem(em, viewportW, viewportH)
	scene.collisionSystem = systems.NewCollisionSystem(em, audioManager, gameState)
	scene.despawnSystem = systems.NewDespawnSystem(em, viewportW, viewportH)
	scene.starWrapSystem = systems.NewStarWrapSystem(em, viewportH)
	scene.renderSystem = systems.NewRenderSystem(em, settingsManager, viewportW, viewportH)

	scene.seedStarfield()

	if _, err := entities.NewPlayer(em, rm, cfg); err != nil {
		log.Printf("[GameScene] 错误: 创建玩家战机失败: %v", err)
	}

	if audioManager != nil {
		audioManager.PlayMusic(game.MusicBattle)
	}

	log.Printf("[GameScene] 场景就绪: 视口=%dx%d 星星=%d",
		config.GameWindowWidth, config.GameWindowHeight, cfg.Starfield.Count)
	return scene
}

// seedStarfield 铺设滚动星空背景
// 星星均匀散布在整个视口内，速度越快的星星越亮，产生近快远慢的纵深感
func (s *GameScene) seedStarfield() {
	starCfg := s.gameplayCfg.Starfield
	halfW := float64(config.GameWindowWidth) / 2
	halfH := float64(config.GameWindowHeight) / 2
	speedSpan := starCfg.MaxSpeed - starCfg.MinSpeed

	for i := 0; i < starCfg.Count; i++ {
		x := (rand.Float64()*2 - 1) * halfW
		y := (rand.Float64()*2 - 1) * halfH
		speed := starCfg.MinSpeed + rand.Float64()*speedSpan
		scale := starMinScale + rand.Float64()*(starMaxScale-starMinScale)

		depth := 0.0
		if speedSpan > 0 {
			depth = (speed - starCfg.MinSpeed) / speedSpan
		}
		brightness := starMinBrightness + (1-starMinBrightness)*depth

		if _, err := entities.NewStar(s.entityManager, s.resourceManager,
			x, y, speed, scale, brightness); err != nil {
			log.Printf("[GameScene] 错误: 创建星星失败: %v", err)
			return
		}
	}
}

// Update 推进一局游戏一帧
// 系统更新顺序承载着帧语义，不可调换
func (s *GameScene) Update(deltaTime float64) {
	// 碰撞系统在上一帧请求了结算，本帧切换到结算场景
	if s.gameState.IsGameOver() {
		s.sceneManager.LoadScene("gameover")
		return
	}

	s.playerControlSystem.Update(deltaTime) // 1. 读输入：设置玩家速度、处理开火
	s.enemySystem.Update(deltaTime)         // 2. 清点击毁敌机、推进开火计时、按间隔生成
	s.movementSystem.Update(deltaTime)      // 3. 位置积分
	s.boundPlayerSystem.Update(deltaTime)   // 4. 玩家限位（积分后立即钳回）
	s.collisionSystem.Update(deltaTime)     // 5. 命中判定：先敌弹对玩家，再玩家弹对敌机
	s.despawnSystem.Update(deltaTime)       // 6. 出界实体回收
	s.starWrapSystem.Update(deltaTime)      // 7. 星空回绕
	s.entityManager.RemoveMarkedEntities()  // 8. 清除被标记销毁的实体（必须最后）
}

// Draw 绘制游玩画面
// 渲染顺序（由底到顶）：深空底色 → 游戏实体 → HUD 文字
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(spaceColor)

	// 实体分层绘制（星空 → 敌机 → 玩家 → 子弹）由渲染系统负责
	s.renderSystem.Draw(screen)

	s.drawHUD(screen)
}

// drawHUD 绘制得分、最高分和舰体状态
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("SCORE %06d", s.gameState.GetScore()), hudMarginX, 8)

	highScore := 0
	if saveManager := s.gameState.GetSaveManager(); saveManager != nil {
		highScore = saveManager.GetHighScore()
	}
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("BEST  %06d", highScore), hudMarginX, 8+hudLineHeight)

	currentHealth, maxHealth := s.playerHealth()
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("HULL  %d/%d", currentHealth, maxHealth), hudMarginX, 8+2*hudLineHeight)

	// DEBUG: FPS 显示，检查性能
	fpsText := fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, fpsText, config.GameWindowWidth-100, 8)
}

// playerHealth 查询玩家当前生命值
// 玩家被击毁后的过渡帧里查不到实体，返回 0/0
func (s *GameScene) playerHealth() (int, int) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.HealthComponent](s.entityManager)
	if len(players) == 0 {
		return 0, 0
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, players[0])
	if !ok {
		return 0, 0
	}
	return health.CurrentHealth, health.MaxHealth
}

// SaveOnExit 在窗口关闭时结算存档
//
// 游玩中途退出时把当前得分记为一局；已进入结算阶段时
// GameOverScene 早已记过账，这里只负责落盘。
//
// 返回:
//   - bool: true 表示保存成功或无需保存
func (s *GameScene) SaveOnExit() bool {
	saveManager := s.gameState.GetSaveManager()
	if saveManager == nil {
		return true
	}

	if !s.gameState.IsGameOver() && s.gameState.GetScore() > 0 {
		saveManager.RecordRun(s.gameState.GetScore())
	}

	if err := saveManager.Save(); err != nil {
		log.Printf("[GameScene] 退出存档失败: %v", err)
		return false
	}
	log.Printf("[GameScene] 退出存档完成")
	return true
}
