package components

// PositionComponent 存储实体中心的世界坐标
// 世界坐标系以视口中心为原点，X 轴向右、Y 轴向上
// （与屏幕坐标的换算见 utils 包）
type PositionComponent struct {
	X float64 // 世界X坐标（像素）
	Y float64 // 世界Y坐标（像素）
}
