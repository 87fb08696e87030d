// checkconfig 校验玩法配置文件
//
// 配置调参后（尤其是开着 --watch 的热重载调参）用它确认文件合法：
//
//	go run ./cmd/checkconfig -config configs/gameplay.yaml
//
// 校验通过打印生效数值并以 0 退出，失败以 1 退出。
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gonewx/starstorm/pkg/config"
)

var (
	configPath = flag.String("config", "", "玩法配置文件路径（YAML）")
	showAll    = flag.Bool("all", false, "同时打印未被文件覆盖的默认值对照")
)

func main() {
	flag.Parse()

	if *configPath == "" {
		log.Printf("❌ 用法: checkconfig -config <gameplay.yaml>")
		os.Exit(1)
	}

	log.Printf("=== Checking Gameplay Config: %s ===", *configPath)

	cfg, err := config.LoadGameplayConfig(*configPath)
	if err != nil {
		log.Printf("❌ FAILURE: %v", err)
		os.Exit(1)
	}

	log.Printf("✅ 配置有效")
	printConfig("生效值", cfg)

	if *showAll {
		printConfig("内置默认值", config.DefaultGameplayConfig())
	}

	os.Exit(0)
}

func printConfig(title string, cfg *config.GameplayConfig) {
	log.Printf("=== %s ===", title)
	log.Printf("   玩家: 速度=%.0f 生命=%d 无敌=%.1fs 射速=%.2fs 弹伤=%d 判定=%.0f",
		cfg.Player.MoveSpeed, cfg.Player.MaxHealth, cfg.Player.InvulnDuration,
		cfg.Player.FireCooldown, cfg.Player.BulletDamage, cfg.Player.HitboxRadius)
	log.Printf("   敌机: 刷新=%.1fs 下降=%.0f 开火=%.1fs 生命=%d 弹伤=%d 得分=%d 判定=%.0f",
		cfg.Enemy.SpawnInterval, cfg.Enemy.DescendSpeed, cfg.Enemy.FireInterval,
		cfg.Enemy.MaxHealth, cfg.Enemy.BulletDamage, cfg.Enemy.ScoreValue, cfg.Enemy.HitboxRadius)
	log.Printf("   子弹: 我方=%.0f 敌方=%.0f 判定=%.0f",
		cfg.Bullet.PlayerBulletSpeed, cfg.Bullet.EnemyBulletSpeed, cfg.Bullet.HitboxRadius)
	log.Printf("   星空: 数量=%d 速度=[%.0f, %.0f]",
		cfg.Starfield.Count, cfg.Starfield.MinSpeed, cfg.Starfield.MaxSpeed)
}
