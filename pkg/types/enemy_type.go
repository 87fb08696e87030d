// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// EnemyType 定义敌机的类型
type EnemyType int

const (
	// EnemyUnknown 未知敌机类型
	EnemyUnknown EnemyType = iota
	// EnemyFighter 基础战斗机，匀速直线下降
	EnemyFighter
	// EnemyRaider 突袭机，下降速度快、血量薄
	EnemyRaider
	// EnemyGunship 炮艇，下降慢、血量厚、射速高
	EnemyGunship
)

// String 返回敌机类型的字符串表示
func (e EnemyType) String() string {
	switch e {
	case EnemyFighter:
		return "Fighter"
	case EnemyRaider:
		return "Raider"
	case EnemyGunship:
		return "Gunship"
	default:
		return "Unknown"
	}
}

// IsValid 判断是否为已定义的敌机类型
func (e EnemyType) IsValid() bool {
	return e > EnemyUnknown && e <= EnemyGunship
}
