package components

// ScaleComponent 存储实体级别的缩放因子
// 普通贴图实体（如背景星星）的实际尺寸 = Sprite 基础尺寸 × 本缩放
//
// 组合精灵实体不使用本组件：它们的 SpriteSizeComponent 已预乘缩放
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小，0.5 = 50%，2.0 = 200%）
	ScaleX float64

	// ScaleY Y轴缩放因子（1.0 = 原始大小，0.5 = 50%，2.0 = 200%）
	ScaleY float64
}
