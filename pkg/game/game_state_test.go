package game

import (
	"testing"
)

// resetGameState 重置全局单例，供测试隔离使用
func resetGameState() {
	globalGameState = nil
}

// TestGameStateSingleton 测试单例模式是否正确实现
// 验证多次调用 GetGameState() 返回同一个实例
func TestGameStateSingleton(t *testing.T) {
	gs1 := GetGameState()
	gs2 := GetGameState()

	if gs1 != gs2 {
		t.Error("GetGameState() should return the same instance")
	}
}

// TestGameStateInitialValue 测试初始状态
func TestGameStateInitialValue(t *testing.T) {
	resetGameState()
	gs := GetGameState()

	if gs.Phase != PhasePlaying {
		t.Errorf("Expected initial phase to be Playing, got %v", gs.Phase)
	}
	if gs.Score != 0 {
		t.Errorf("Expected initial score to be 0, got %d", gs.Score)
	}
}

// TestAddScore 测试 AddScore 方法是否正确累加得分
func TestAddScore(t *testing.T) {
	resetGameState()
	gs := GetGameState()

	gs.AddScore(100)
	if gs.GetScore() != 100 {
		t.Errorf("Expected 100, got %d", gs.GetScore())
	}

	gs.AddScore(250)
	if gs.GetScore() != 350 {
		t.Errorf("Expected 350, got %d", gs.GetScore())
	}
}

// TestAddScoreCap 测试 AddScore 是否正确限制得分上限为999990
func TestAddScoreCap(t *testing.T) {
	resetGameState()
	gs := GetGameState()
	gs.Score = 999980

	gs.AddScore(100)
	if gs.Score != 999990 {
		t.Errorf("Expected 999990 (capped), got %d", gs.Score)
	}

	// 已到上限后继续加分不再变化
	gs.AddScore(100)
	if gs.Score != 999990 {
		t.Errorf("Expected 999990 (capped), got %d", gs.Score)
	}
}

// TestRequestGameOver 测试结算阶段切换
func TestRequestGameOver(t *testing.T) {
	resetGameState()
	gs := GetGameState()

	if gs.IsGameOver() {
		t.Error("IsGameOver() should be false initially")
	}

	gs.RequestGameOver()
	if !gs.IsGameOver() {
		t.Error("IsGameOver() should be true after RequestGameOver()")
	}
	if gs.Phase != PhaseGameOver {
		t.Errorf("Expected phase GameOver, got %v", gs.Phase)
	}
}

// TestRequestGameOverIdempotent 测试重复请求结算无副作用
func TestRequestGameOverIdempotent(t *testing.T) {
	resetGameState()
	gs := GetGameState()
	gs.AddScore(500)

	gs.RequestGameOver()
	gs.RequestGameOver()
	gs.RequestGameOver()

	if gs.Phase != PhaseGameOver {
		t.Errorf("Expected phase GameOver, got %v", gs.Phase)
	}
	// 得分不受重复请求影响
	if gs.GetScore() != 500 {
		t.Errorf("Expected score 500, got %d", gs.GetScore())
	}
}

// TestResetRun 测试 ResetRun 清空单局状态
func TestResetRun(t *testing.T) {
	resetGameState()
	gs := GetGameState()

	gs.AddScore(1200)
	gs.RequestGameOver()

	gs.ResetRun()

	if gs.Phase != PhasePlaying {
		t.Errorf("Expected phase Playing after reset, got %v", gs.Phase)
	}
	if gs.GetScore() != 0 {
		t.Errorf("Expected score 0 after reset, got %d", gs.GetScore())
	}
}

// TestResetRunKeepsManagers 测试 ResetRun 不清除管理器引用
func TestResetRunKeepsManagers(t *testing.T) {
	resetGameState()
	gs := GetGameState()

	sm, _ := NewSettingsManager(nil)
	gs.SetSettingsManager(sm)

	gs.ResetRun()

	if gs.GetSettingsManager() != sm {
		t.Error("ResetRun() should keep manager references")
	}
}

// TestGamePhaseString 测试阶段名称
func TestGamePhaseString(t *testing.T) {
	tests := []struct {
		phase    GamePhase
		expected string
	}{
		{PhasePlaying, "Playing"},
		{PhaseGameOver, "GameOver"},
		{GamePhase(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.expected {
			t.Errorf("GamePhase(%d).String(): got %q, want %q", int(tt.phase), got, tt.expected)
		}
	}
}

// TestManagerAccessors 测试管理器注入和访问
func TestManagerAccessors(t *testing.T) {
	resetGameState()
	gs := GetGameState()

	if gs.GetAudioManager() != nil {
		t.Error("GetAudioManager() should be nil before injection")
	}
	if gs.GetSettingsManager() != nil {
		t.Error("GetSettingsManager() should be nil before injection")
	}
	if gs.GetSaveManager() != nil {
		t.Error("GetSaveManager() should be nil before injection")
	}

	settingsManager, _ := NewSettingsManager(nil)
	saveManager, _ := NewSaveManager(nil)
	audioManager := NewAudioManager(nil, settingsManager)

	gs.SetSettingsManager(settingsManager)
	gs.SetSaveManager(saveManager)
	gs.SetAudioManager(audioManager)

	if gs.GetSettingsManager() != settingsManager {
		t.Error("GetSettingsManager() returned wrong instance")
	}
	if gs.GetSaveManager() != saveManager {
		t.Error("GetSaveManager() returned wrong instance")
	}
	if gs.GetAudioManager() != audioManager {
		t.Error("GetAudioManager() returned wrong instance")
	}
}
