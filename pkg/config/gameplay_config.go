package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameplayConfig 玩法调参配置
// 所有数值可通过 YAML 文件覆盖，未设置的字段保留默认值
type GameplayConfig struct {
	Player    PlayerTuning    `yaml:"player"`    // 玩家战机参数
	Enemy     EnemyTuning     `yaml:"enemy"`     // 敌机参数
	Bullet    BulletTuning    `yaml:"bullet"`    // 子弹参数
	Starfield StarfieldTuning `yaml:"starfield"` // 背景星空参数
}

// PlayerTuning 玩家战机调参
type PlayerTuning struct {
	MoveSpeed      float64 `yaml:"moveSpeed"`      // 移动速度（世界单位/秒）
	MaxHealth      int     `yaml:"maxHealth"`      // 最大生命值
	InvulnDuration float64 `yaml:"invulnDuration"` // 受击后的无敌时长（秒）
	FireCooldown   float64 `yaml:"fireCooldown"`   // 开火冷却（秒）
	BulletDamage   int     `yaml:"bulletDamage"`   // 玩家子弹单发伤害
	HitboxRadius   float64 `yaml:"hitboxRadius"`   // 碰撞判定圆半径
}

// EnemyTuning 敌机调参
type EnemyTuning struct {
	SpawnInterval float64 `yaml:"spawnInterval"` // 生成间隔（秒）
	DescendSpeed  float64 `yaml:"descendSpeed"`  // 下降速度（世界单位/秒）
	FireInterval  float64 `yaml:"fireInterval"`  // 开火间隔（秒）
	MaxHealth     int     `yaml:"maxHealth"`     // 最大生命值
	BulletDamage  int     `yaml:"bulletDamage"`  // 敌方子弹单发伤害
	ScoreValue    int     `yaml:"scoreValue"`    // 击毁得分
	HitboxRadius  float64 `yaml:"hitboxRadius"`  // 碰撞判定圆半径
}

// BulletTuning 子弹调参
type BulletTuning struct {
	PlayerBulletSpeed float64 `yaml:"playerBulletSpeed"` // 玩家子弹速度（向上）
	EnemyBulletSpeed  float64 `yaml:"enemyBulletSpeed"`  // 敌方子弹速度（向下）
	HitboxRadius      float64 `yaml:"hitboxRadius"`      // 子弹判定圆半径
}

// StarfieldTuning 背景星空调参
type StarfieldTuning struct {
	Count    int     `yaml:"count"`    // 星星数量
	MinSpeed float64 `yaml:"minSpeed"` // 最慢下落速度
	MaxSpeed float64 `yaml:"maxSpeed"` // 最快下落速度
}

// DefaultGameplayConfig 返回内置默认值
// 数值取自手感调试结果，YAML 覆盖只在需要微调时使用
func DefaultGameplayConfig() *GameplayConfig {
	return &GameplayConfig{
		Player: PlayerTuning{
			MoveSpeed:      320,
			MaxHealth:      3,
			InvulnDuration: 1.0,
			FireCooldown:   0.25,
			BulletDamage:   1,
			HitboxRadius:   24,
		},
		Enemy: EnemyTuning{
			SpawnInterval: 1.6,
			DescendSpeed:  120,
			FireInterval:  2.4,
			MaxHealth:     2,
			BulletDamage:  1,
			ScoreValue:    100,
			HitboxRadius:  48,
		},
		Bullet: BulletTuning{
			PlayerBulletSpeed: 480,
			EnemyBulletSpeed:  260,
			HitboxRadius:      6,
		},
		Starfield: StarfieldTuning{
			Count:    64,
			MinSpeed: 30,
			MaxSpeed: 90,
		},
	}
}

// LoadGameplayConfig 从YAML文件加载玩法配置
// 参数：
//
//	filepath - 配置文件的路径（相对或绝对路径）
//
// 返回：
//
//	*GameplayConfig - 默认值被文件内容覆盖后的配置对象
//	error - 文件读取、解析或校验失败时返回
func LoadGameplayConfig(filepath string) (*GameplayConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config file %s: %w", filepath, err)
	}

	// 先取默认值，再用文件内容覆盖，缺失字段自动回落
	cfg := DefaultGameplayConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay config YAML from %s: %w", filepath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gameplay config in %s: %w", filepath, err)
	}

	return cfg, nil
}

// Validate 校验配置数值的合法性
func (c *GameplayConfig) Validate() error {
	if c.Player.MoveSpeed <= 0 {
		return fmt.Errorf("player.moveSpeed must be positive, got %v", c.Player.MoveSpeed)
	}
	if c.Player.MaxHealth < 1 {
		return fmt.Errorf("player.maxHealth must be at least 1, got %d", c.Player.MaxHealth)
	}
	if c.Player.InvulnDuration < 0 {
		return fmt.Errorf("player.invulnDuration cannot be negative, got %v", c.Player.InvulnDuration)
	}
	if c.Player.FireCooldown <= 0 {
		return fmt.Errorf("player.fireCooldown must be positive, got %v", c.Player.FireCooldown)
	}
	if c.Player.HitboxRadius <= 0 {
		return fmt.Errorf("player.hitboxRadius must be positive, got %v", c.Player.HitboxRadius)
	}

	if c.Enemy.SpawnInterval <= 0 {
		return fmt.Errorf("enemy.spawnInterval must be positive, got %v", c.Enemy.SpawnInterval)
	}
	if c.Enemy.DescendSpeed <= 0 {
		return fmt.Errorf("enemy.descendSpeed must be positive, got %v", c.Enemy.DescendSpeed)
	}
	if c.Enemy.MaxHealth < 1 {
		return fmt.Errorf("enemy.maxHealth must be at least 1, got %d", c.Enemy.MaxHealth)
	}
	if c.Enemy.HitboxRadius <= 0 {
		return fmt.Errorf("enemy.hitboxRadius must be positive, got %v", c.Enemy.HitboxRadius)
	}

	if c.Bullet.PlayerBulletSpeed <= 0 {
		return fmt.Errorf("bullet.playerBulletSpeed must be positive, got %v", c.Bullet.PlayerBulletSpeed)
	}
	if c.Bullet.EnemyBulletSpeed <= 0 {
		return fmt.Errorf("bullet.enemyBulletSpeed must be positive, got %v", c.Bullet.EnemyBulletSpeed)
	}
	if c.Bullet.HitboxRadius <= 0 {
		return fmt.Errorf("bullet.hitboxRadius must be positive, got %v", c.Bullet.HitboxRadius)
	}

	if c.Starfield.Count < 0 {
		return fmt.Errorf("starfield.count cannot be negative, got %d", c.Starfield.Count)
	}
	if c.Starfield.MinSpeed <= 0 || c.Starfield.MaxSpeed < c.Starfield.MinSpeed {
		return fmt.Errorf("starfield speeds must satisfy 0 < minSpeed <= maxSpeed, got [%v, %v]",
			c.Starfield.MinSpeed, c.Starfield.MaxSpeed)
	}

	return nil
}
