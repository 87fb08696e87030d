package components

// InvulnTimerComponent 玩家受击后的无敌倒计时
// 碰撞结算每帧先扣减 Remaining，Remaining <= 0 时玩家可被命中；
// 命中生效后重置 Remaining = Duration
//
// 出生时 Remaining 取 Duration，给刚入场的玩家一段保护期
type InvulnTimerComponent struct {
	Remaining float64 // 剩余无敌时间（秒）
	Duration  float64 // 每次受击后重置到的无敌时长（秒）
}
