// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供坐标转换工具库。
//
// # 坐标系统概述
//
// 本项目使用以下坐标系统：
//   - **世界坐标**：原点在视口中心，X 轴向右、Y 轴向上（所有游戏逻辑使用）
//   - **屏幕坐标**：原点在窗口左上角，Y 轴向下（Ebiten 默认行为）
//   - **实体锚点**：中心锚点（PositionComponent.X/Y 代表实体的视觉中心）
//   - **图片锚点**：左上角（Ebiten 默认行为）
//
// 视口没有摄像机偏移，两套坐标系只差一次平移和 Y 轴翻转。
//
// # 核心转换公式
//
//	screenX = worldX + viewportWidth/2
//	screenY = viewportHeight/2 - worldY
package utils

// WorldToScreen 将世界坐标转换为屏幕坐标
//
// # 参数
//
//   - worldX, worldY: 世界坐标（原点在视口中心，Y 向上）
//   - viewportWidth, viewportHeight: 视口尺寸（像素）
//
// # 返回值
//
//   - screenX, screenY: 屏幕坐标（原点在左上角，Y 向下）
func WorldToScreen(worldX, worldY, viewportWidth, viewportHeight float64) (screenX, screenY float64) {
	screenX = worldX + viewportWidth/2
	screenY = viewportHeight/2 - worldY
	return screenX, screenY
}

// ScreenToWorld 将屏幕坐标转换为世界坐标（WorldToScreen 的逆变换）
func ScreenToWorld(screenX, screenY, viewportWidth, viewportHeight float64) (worldX, worldY float64) {
	worldX = screenX - viewportWidth/2
	worldY = viewportHeight/2 - screenY
	return worldX, worldY
}

// SpriteTopLeft 计算中心锚点实体的绘制原点（屏幕坐标左上角）
//
// 渲染系统用它把实体中心的世界坐标换算成 DrawImage 需要的左上角坐标：
//
//	topLeftX = screenX - renderWidth/2
//	topLeftY = screenY - renderHeight/2
//
// renderWidth/renderHeight 必须是实际渲染尺寸（已含缩放）。
func SpriteTopLeft(worldX, worldY, renderWidth, renderHeight, viewportWidth, viewportHeight float64) (topLeftX, topLeftY float64) {
	screenX, screenY := WorldToScreen(worldX, worldY, viewportWidth, viewportHeight)
	topLeftX = screenX - renderWidth/2
	topLeftY = screenY - renderHeight/2
	return topLeftX, topLeftY
}
