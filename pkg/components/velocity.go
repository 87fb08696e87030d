package components

// VelocityComponent 存储实体的线速度
// 由 MovementSystem 每帧积分到 PositionComponent 上
type VelocityComponent struct {
	VX float64 // X方向速度（世界单位/秒）
	VY float64 // Y方向速度（世界单位/秒，向上为正）
}
