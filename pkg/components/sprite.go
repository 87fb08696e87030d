package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储普通贴图实体的视觉表现
// Width/Height 是贴图的基础尺寸（未缩放，世界单位），
// 与 ScaleComponent 相乘得到实际渲染与出屏判定尺寸，
// 因此无头测试不需要真实的 GPU 图像（Image 可为 nil）
type SpriteComponent struct {
	Image  *ebiten.Image // 绘制用图像，nil 时渲染系统跳过
	Width  float64       // 基础宽度（像素）
	Height float64       // 基础高度（像素）
}
