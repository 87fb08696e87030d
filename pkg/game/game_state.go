package game

// GamePhase 表示一局游戏所处的阶段
type GamePhase int

const (
	// PhasePlaying 正常游玩中
	PhasePlaying GamePhase = iota
	// PhaseGameOver 玩家已被击毁，等待结算
	PhaseGameOver
)

// String 返回阶段的可读名称
func (p GamePhase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState 存储全局游戏状态
// 这是一个单例，用于管理跨场景和跨系统的全局状态数据
type GameState struct {
	Phase GamePhase // 当前游戏阶段
	Score int       // 本局累计得分

	// 管理器引用，由 app 在启动时注入，场景和系统通过这里访问
	audioManager    *AudioManager
	settingsManager *SettingsManager
	saveManager     *SaveManager
}

// 全局单例实例（这是架构规范允许的唯一全局变量）
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
// 使用延迟初始化模式，确保整个游戏生命周期只有一个实例
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = &GameState{
			Phase: PhasePlaying,
		}
	}
	return globalGameState
}

// AddScore 增加得分，带上限检查
// 得分上限为999990（HUD 六位数显示上限）
func (gs *GameState) AddScore(amount int) {
	gs.Score += amount
	if gs.Score > 999990 {
		gs.Score = 999990
	}
}

// GetScore 返回本局当前得分
func (gs *GameState) GetScore() int {
	return gs.Score
}

// RequestGameOver 请求进入结算阶段
// 幂等：重复调用不会产生额外效果，阶段只会从 Playing 切换到 GameOver 一次
func (gs *GameState) RequestGameOver() {
	gs.Phase = PhaseGameOver
}

// IsGameOver 返回是否已进入结算阶段
func (gs *GameState) IsGameOver() bool {
	return gs.Phase == PhaseGameOver
}

// ResetRun 重置单局状态，开始新的一局
// 管理器引用跨局保留，只清空阶段和得分
func (gs *GameState) ResetRun() {
	gs.Phase = PhasePlaying
	gs.Score = 0
}

// SetAudioManager 注入音频管理器
func (gs *GameState) SetAudioManager(am *AudioManager) {
	gs.audioManager = am
}

// GetAudioManager 返回音频管理器，未注入时返回 nil
func (gs *GameState) GetAudioManager() *AudioManager {
	return gs.audioManager
}

// SetSettingsManager 注入设置管理器
func (gs *GameState) SetSettingsManager(sm *SettingsManager) {
	gs.settingsManager = sm
}

// GetSettingsManager 返回设置管理器，未注入时返回 nil
func (gs *GameState) GetSettingsManager() *SettingsManager {
	return gs.settingsManager
}

// SetSaveManager 注入存档管理器
func (gs *GameState) SetSaveManager(sm *SaveManager) {
	gs.saveManager = sm
}

// GetSaveManager 返回存档管理器，未注入时返回 nil
func (gs *GameState) GetSaveManager() *SaveManager {
	return gs.saveManager
}
