package components

import "github.com/gonewx/starstorm/pkg/types"

// EnemyComponent 标识实体为敌机
// 包含敌机类型和开火节奏状态，由 EnemySystem 驱动
type EnemyComponent struct {
	// Type 敌机类型（战斗机、突袭机、炮艇）
	Type types.EnemyType

	// FireTimer 距离下次开火的剩余时间（秒）
	FireTimer float64

	// FireInterval 开火间隔（秒），<=0 表示该敌机不开火
	FireInterval float64

	// ScoreValue 被击毁时给玩家的分数
	ScoreValue int
}
