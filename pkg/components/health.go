package components

// HealthComponent 存储实体的生命值信息
// 用于玩家战机、敌机等可被击伤的实体；扣血下限为0，不出现负数
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值
}
