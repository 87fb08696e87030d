package components

// HitboxComponent 定义实体的圆形碰撞判定
// 碰撞系统用圆心距离平方与半径和平方比较，严格小于才算命中
type HitboxComponent struct {
	Radius float64 // 判定圆半径（世界单位），圆心取实体位置
}
