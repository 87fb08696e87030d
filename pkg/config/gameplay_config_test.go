package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadGameplayConfig 测试玩法配置文件加载
func TestLoadGameplayConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		tempDir := t.TempDir()
		testFile := filepath.Join(tempDir, "gameplay.yaml")

		validYAML := `player:
  moveSpeed: 400
  maxHealth: 5
  invulnDuration: 1.5
enemy:
  spawnInterval: 2.0
  scoreValue: 250
starfield:
  count: 32
`
		if err := os.WriteFile(testFile, []byte(validYAML), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}

		cfg, err := LoadGameplayConfig(testFile)
		if err != nil {
			t.Fatalf("LoadGameplayConfig() failed: %v", err)
		}

		// 文件中出现的字段被覆盖
		if cfg.Player.MoveSpeed != 400 {
			t.Errorf("Expected player.moveSpeed 400, got %v", cfg.Player.MoveSpeed)
		}
		if cfg.Player.MaxHealth != 5 {
			t.Errorf("Expected player.maxHealth 5, got %d", cfg.Player.MaxHealth)
		}
		if cfg.Player.InvulnDuration != 1.5 {
			t.Errorf("Expected player.invulnDuration 1.5, got %v", cfg.Player.InvulnDuration)
		}
		if cfg.Enemy.SpawnInterval != 2.0 {
			t.Errorf("Expected enemy.spawnInterval 2.0, got %v", cfg.Enemy.SpawnInterval)
		}
		if cfg.Enemy.ScoreValue != 250 {
			t.Errorf("Expected enemy.scoreValue 250, got %d", cfg.Enemy.ScoreValue)
		}
		if cfg.Starfield.Count != 32 {
			t.Errorf("Expected starfield.count 32, got %d", cfg.Starfield.Count)
		}

		// 文件中缺失的字段保留默认值
		defaults := DefaultGameplayConfig()
		if cfg.Player.FireCooldown != defaults.Player.FireCooldown {
			t.Errorf("Missing field should keep default %v, got %v",
				defaults.Player.FireCooldown, cfg.Player.FireCooldown)
		}
		if cfg.Bullet.PlayerBulletSpeed != defaults.Bullet.PlayerBulletSpeed {
			t.Errorf("Missing section should keep default %v, got %v",
				defaults.Bullet.PlayerBulletSpeed, cfg.Bullet.PlayerBulletSpeed)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadGameplayConfig(filepath.Join(t.TempDir(), "no-such-file.yaml"))
		if err == nil {
			t.Fatal("Expected error for missing file, got nil")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		tempDir := t.TempDir()
		testFile := filepath.Join(tempDir, "broken.yaml")
		if err := os.WriteFile(testFile, []byte("player: [not: a: mapping"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}

		_, err := LoadGameplayConfig(testFile)
		if err == nil {
			t.Fatal("Expected error for malformed YAML, got nil")
		}
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		tempDir := t.TempDir()
		testFile := filepath.Join(tempDir, "invalid.yaml")
		if err := os.WriteFile(testFile, []byte("player:\n  moveSpeed: -10\n"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}

		_, err := LoadGameplayConfig(testFile)
		if err == nil {
			t.Fatal("Expected validation error for negative moveSpeed, got nil")
		}
	})
}

// TestDefaultGameplayConfigIsValid 默认配置必须自洽
func TestDefaultGameplayConfigIsValid(t *testing.T) {
	if err := DefaultGameplayConfig().Validate(); err != nil {
		t.Fatalf("Default gameplay config should be valid: %v", err)
	}
}

// TestGameplayConfigValidate 测试各字段的校验规则
func TestGameplayConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameplayConfig)
	}{
		{"玩家生命值为0", func(c *GameplayConfig) { c.Player.MaxHealth = 0 }},
		{"无敌时长为负", func(c *GameplayConfig) { c.Player.InvulnDuration = -0.5 }},
		{"开火冷却为0", func(c *GameplayConfig) { c.Player.FireCooldown = 0 }},
		{"敌机生成间隔为0", func(c *GameplayConfig) { c.Enemy.SpawnInterval = 0 }},
		{"敌机判定半径为负", func(c *GameplayConfig) { c.Enemy.HitboxRadius = -1 }},
		{"子弹速度为0", func(c *GameplayConfig) { c.Bullet.EnemyBulletSpeed = 0 }},
		{"星星数量为负", func(c *GameplayConfig) { c.Starfield.Count = -1 }},
		{"星速区间颠倒", func(c *GameplayConfig) { c.Starfield.MinSpeed = 90; c.Starfield.MaxSpeed = 30 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGameplayConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}
