package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// SaveData 存档数据结构
//
// 保存内容：
//   - 历史最高得分
//   - 累计游玩局数
//   - 最近一局得分
type SaveData struct {
	HighScore int `yaml:"highScore"` // 历史最高得分
	TotalRuns int `yaml:"totalRuns"` // 累计游玩局数
	LastScore int `yaml:"lastScore"` // 最近一局得分
}

// DefaultSaveData 返回全新的空存档
func DefaultSaveData() *SaveData {
	return &SaveData{
		HighScore: 0,
		TotalRuns: 0,
		LastScore: 0,
	}
}

// SaveManager 存档管理器
//
// 职责：
//   - 加载和保存游玩记录（最高分、局数）
//   - 每局结束时结算得分
//
// 架构说明：
//   - 数据通过 gdata 持久化（与 SettingsManager 一致），序列化格式为 YAML
//   - 由 GameState 持有，场景通过 GameState 访问，系统不直接接触
type SaveManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	data         *SaveData      // 当前存档数据
}

// 存储路径常量
const (
	saveObject   = "save"
	saveProperty = "profile"
)

// NewSaveManager 创建存档管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存记录）
//
// 返回：
//   - *SaveManager: 存档管理器实例
//   - error: 如果加载存档失败返回错误（不影响创建）
func NewSaveManager(gdataManager *gdata.Manager) (*SaveManager, error) {
	sm := &SaveManager{
		gdataManager: gdataManager,
		data:         DefaultSaveData(),
	}

	// 尝试加载已保存的记录
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用空存档
		log.Printf("[SaveManager] Warning: Failed to load save data: %v (using empty profile)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载存档
//
// 如果 gdataManager 为 nil 或存档不存在，使用空存档
//
// 返回：
//   - error: 如果反序列化失败返回错误
func (sm *SaveManager) Load() error {
	// 降级模式：无法持久化，使用空存档
	if sm.gdataManager == nil {
		sm.data = DefaultSaveData()
		return nil
	}

	// 检查存档是否存在
	if !sm.gdataManager.ObjectPropExists(saveObject, saveProperty) {
		sm.data = DefaultSaveData()
		return nil
	}

	// 从 gdata 加载数据
	raw, err := sm.gdataManager.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		sm.data = DefaultSaveData()
		return fmt.Errorf("failed to load save data: %w", err)
	}

	// 反序列化 YAML 数据
	var loaded SaveData
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		sm.data = DefaultSaveData()
		return fmt.Errorf("failed to unmarshal save data: %w", err)
	}

	sm.data = &loaded
	log.Printf("[SaveManager] Save data loaded (high score: %d, runs: %d)", loaded.HighScore, loaded.TotalRuns)
	return nil
}

// Save 保存存档到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
//
// 返回：
//   - error: 如果序列化或保存失败返回错误
func (sm *SaveManager) Save() error {
	// 降级模式：无法持久化，但不报错
	if sm.gdataManager == nil {
		return nil
	}

	// 序列化为 YAML
	raw, err := yaml.Marshal(sm.data)
	if err != nil {
		return fmt.Errorf("failed to marshal save data: %w", err)
	}

	// 保存到 gdata
	if err := sm.gdataManager.SaveObjectProp(saveObject, saveProperty, raw); err != nil {
		return fmt.Errorf("failed to save data: %w", err)
	}

	return nil
}

// GetHighScore 获取历史最高得分
func (sm *SaveManager) GetHighScore() int {
	return sm.data.HighScore
}

// GetTotalRuns 获取累计游玩局数
func (sm *SaveManager) GetTotalRuns() int {
	return sm.data.TotalRuns
}

// GetLastScore 获取最近一局得分
func (sm *SaveManager) GetLastScore() int {
	return sm.data.LastScore
}

// RecordRun 结算一局游戏
//
// 累加局数、记录本局得分，得分超过历史最高时刷新记录。
// 注意：仅修改内存中的数据，需调用 Save() 方法持久化
//
// 参数：
//   - score: 本局得分
//
// 返回：
//   - bool: true 表示刷新了最高分记录
func (sm *SaveManager) RecordRun(score int) bool {
	sm.data.TotalRuns++
	sm.data.LastScore = score

	if score > sm.data.HighScore {
		sm.data.HighScore = score
		return true
	}
	return false
}
