package components

// SpriteSizeComponent 存储组合精灵（序列帧/多部件）实体的渲染尺寸
// 宽高在构造时已乘入实体缩放，屏幕边界计算直接使用，不再叠加 ScaleComponent
type SpriteSizeComponent struct {
	Width  float64 // 预缩放宽度（像素）
	Height float64 // 预缩放高度（像素）
}

// NewSpriteSizeComponent 按基础尺寸和缩放系数构造预缩放的渲染尺寸
func NewSpriteSizeComponent(width, height, scale float64) *SpriteSizeComponent {
	return &SpriteSizeComponent{
		Width:  width * scale,
		Height: height * scale,
	}
}
