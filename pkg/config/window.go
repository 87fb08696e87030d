package config

// 窗口与屏幕边界常量
// 所有游戏逻辑使用"世界坐标系"（原点在视口中心，Y 轴向上），
// 视口尺寸是边界计算（限位/出屏回收/背景循环）的唯一输入

const (
	// GameWindowWidth 游戏视口宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 游戏视口高度（像素）
	GameWindowHeight = 600

	// DespawnMargin 出屏回收的容差边距（世界单位）
	// 实体完全出屏后再超出这个距离才会被回收，
	// 避免贴边实体在边界上反复进出时被过早销毁
	DespawnMargin = 12.0
)
