package components

// FactionType 阵营枚举
// 碰撞结算按阵营显式分支：敌方子弹只打玩家，玩家子弹只打敌机
type FactionType int

const (
	// FactionUnknown 未知阵营（工厂漏设置时的零值，碰撞结算会跳过）
	FactionUnknown FactionType = iota
	// FactionPlayer 玩家阵营
	FactionPlayer
	// FactionEnemy 敌方阵营
	FactionEnemy
)

// String 返回阵营的字符串表示
func (f FactionType) String() string {
	switch f {
	case FactionPlayer:
		return "Player"
	case FactionEnemy:
		return "Enemy"
	default:
		return "Unknown"
	}
}

// FactionComponent 标记实体的所属阵营
// 战机和它发射的子弹都携带本组件
type FactionComponent struct {
	Faction FactionType
}
