package components

// BulletComponent 标识实体为子弹
// 子弹命中即销毁（单次命中，不穿透），Damage 为命中时扣除的生命值
type BulletComponent struct {
	Damage int // 单发伤害
}
