package systems

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/starstorm/pkg/components"
	"github.com/gonewx/starstorm/pkg/config"
	"github.com/gonewx/starstorm/pkg/ecs"
	"github.com/gonewx/starstorm/pkg/entities"
	"github.com/gonewx/starstorm/pkg/game"
)

// 子弹发射点相对机身中心的偏移：半船高 32 加半弹长 8
const playerNoseOffset = 40.0

// PlayerControlSystem 把键盘输入翻译成玩家战机的动作
// 方向键或 WASD 控制移动方向，空格按住连射（带冷却）
type PlayerControlSystem struct {
	em    *ecs.EntityManager
	rm    entities.SpriteProvider
	cfg   *config.GameplayConfig
	audio *game.AudioManager

	// fireTimer 开火冷却倒计时，归零后按住空格即发射
	fireTimer float64
}

// NewPlayerControlSystem 创建玩家控制系统
//
// 参数:
//   - em: 实体管理器
//   - rm: 精灵提供者，用于生成子弹实体，可为 nil（无头测试）
//   - cfg: 玩法调参，nil 时使用内置默认值
//   - audio: 音频管理器，用于开火音效，可为 nil
//
// 返回:
//   - *PlayerControlSystem: 玩家控制系统实例
func NewPlayerControlSystem(em *ecs.EntityManager, rm entities.SpriteProvider,
	cfg *config.GameplayConfig, audio *game.AudioManager) *PlayerControlSystem {

	if cfg == nil {
		cfg = config.DefaultGameplayConfig()
	}
	return &PlayerControlSystem{
		em:    em,
		rm:    rm,
		cfg:   cfg,
		audio: audio,
	}
}

// Update 读取输入并更新玩家速度和开火状态
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (pc *PlayerControlSystem) Update(deltaTime float64) {
	if pc.fireTimer > 0 {
		pc.fireTimer -= deltaTime
		if pc.fireTimer < 0 {
			pc.fireTimer = 0
		}
	}

	players := ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](pc.em)

	for _, entityID := range players {
		vel, ok := ecs.GetComponent[*components.VelocityComponent](pc.em, entityID)
		if !ok {
			continue
		}

		dirX, dirY := readMoveInput()
		// 斜向移动归一化，保持速度模长恒定
		if dirX != 0 && dirY != 0 {
			inv := 1 / math.Sqrt2
			dirX *= inv
			dirY *= inv
		}
		vel.VX = dirX * pc.cfg.Player.MoveSpeed
		vel.VY = dirY * pc.cfg.Player.MoveSpeed

		if ebiten.IsKeyPressed(ebiten.KeySpace) && pc.fireTimer <= 0 {
			if pos, ok := ecs.GetComponent[*components.PositionComponent](pc.em, entityID); ok {
				pc.fire(pos)
			}
		}
	}
}

// readMoveInput 读取方向输入
// 世界坐标 Y 轴向上：按"上"得到正的 Y 分量
//
// 返回:
//   - float64: X 方向分量（-1/0/+1）
//   - float64: Y 方向分量（-1/0/+1）
func readMoveInput() (float64, float64) {
	var dirX, dirY float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dirX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dirX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dirY += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dirY -= 1
	}
	return dirX, dirY
}

// fire 从机头发射一颗玩家子弹并进入冷却
func (pc *PlayerControlSystem) fire(pos *components.PositionComponent) {
	if _, err := entities.NewPlayerBullet(pc.em, pc.rm, pc.cfg, pos.X, pos.Y+playerNoseOffset); err != nil {
		log.Printf("[PlayerControlSystem] Warning: failed to spawn player bullet: %v", err)
		return
	}

	if pc.audio != nil {
		pc.audio.PlaySound(game.SoundPlayerShoot)
	}
	pc.fireTimer = pc.cfg.Player.FireCooldown
}
