package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/starstorm/pkg/components"
	"github.com/gonewx/starstorm/pkg/ecs"
	"github.com/gonewx/starstorm/pkg/game"
	"github.com/gonewx/starstorm/pkg/utils"
)

// hitboxColor 调试描边用的判定圆颜色
var hitboxColor = color.RGBA{R: 255, G: 64, B: 64, A: 255}

// RenderSystem 把实体绘制到屏幕
// 按固定层序绘制：星空、敌机、玩家、子弹，保证战机始终压在背景上。
// 没有图像的实体直接跳过，整个模拟可以完全无头运行
type RenderSystem struct {
	em             *ecs.EntityManager
	settings       *game.SettingsManager
	viewportWidth  float64
	viewportHeight float64
}

// NewRenderSystem 创建渲染系统
//
// 参数:
//   - em: 实体管理器
//   - settings: 设置管理器，用于读取调试开关，可为 nil
//   - viewportWidth: 视口宽度（像素）
//   - viewportHeight: 视口高度（像素）
//
// 返回:
//   - *RenderSystem: 渲染系统实例
func NewRenderSystem(em *ecs.EntityManager, settings *game.SettingsManager,
	viewportWidth, viewportHeight float64) *RenderSystem {

	return &RenderSystem{
		em:             em,
		settings:       settings,
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
	}
}

// Draw 绘制一帧
//
// 参数:
//   - screen: 目标屏幕图像
func (rs *RenderSystem) Draw(screen *ebiten.Image) {
	rs.drawStars(screen)
	rs.drawEnemies(screen)
	rs.drawPlayer(screen)
	rs.drawBullets(screen)

	if rs.settings != nil && rs.settings.GetSettings().ShowHitboxes {
		rs.drawHitboxes(screen)
	}
}

// drawStars 绘制背景星星，亮度通过透明度调制
func (rs *RenderSystem) drawStars(screen *ebiten.Image) {
	stars := ecs.GetEntitiesWith2[*components.StarComponent, *components.PositionComponent](rs.em)
	for _, entityID := range stars {
		alpha := 1.0
		if star, ok := ecs.GetComponent[*components.StarComponent](rs.em, entityID); ok {
			alpha = star.Brightness
		}
		rs.drawSprite(screen, entityID, float32(alpha))
	}
}

// drawEnemies 绘制所有敌机
func (rs *RenderSystem) drawEnemies(screen *ebiten.Image) {
	enemies := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](rs.em)
	for _, entityID := range enemies {
		rs.drawSprite(screen, entityID, 1)
	}
}

// drawPlayer 绘制玩家战机
func (rs *RenderSystem) drawPlayer(screen *ebiten.Image) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](rs.em)
	for _, entityID := range players {
		rs.drawSprite(screen, entityID, 1)
	}
}

// drawBullets 绘制双方子弹
func (rs *RenderSystem) drawBullets(screen *ebiten.Image) {
	bullets := ecs.GetEntitiesWith2[*components.BulletComponent, *components.PositionComponent](rs.em)
	for _, entityID := range bullets {
		rs.drawSprite(screen, entityID, 1)
	}
}

// drawSprite 绘制单个实体的贴图
// 渲染尺寸优先取预缩放的 SpriteSizeComponent，
// 否则取 Sprite 基础尺寸乘 ScaleComponent（缺省 1）；
// 图像或位置缺失时跳过
func (rs *RenderSystem) drawSprite(screen *ebiten.Image, entityID ecs.EntityID, alpha float32) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](rs.em, entityID)
	if !ok || sprite.Image == nil {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](rs.em, entityID)
	if !ok {
		return
	}

	renderWidth, renderHeight := sprite.Width, sprite.Height
	if size, ok := ecs.GetComponent[*components.SpriteSizeComponent](rs.em, entityID); ok {
		renderWidth, renderHeight = size.Width, size.Height
	} else if scale, ok := ecs.GetComponent[*components.ScaleComponent](rs.em, entityID); ok {
		renderWidth = sprite.Width * scale.ScaleX
		renderHeight = sprite.Height * scale.ScaleY
	}

	op := &ebiten.DrawImageOptions{}

	// 先把原始图像缩放到渲染尺寸，再平移到屏幕坐标
	imageWidth := float64(sprite.Image.Bounds().Dx())
	imageHeight := float64(sprite.Image.Bounds().Dy())
	if imageWidth > 0 && imageHeight > 0 {
		op.GeoM.Scale(renderWidth/imageWidth, renderHeight/imageHeight)
	}

	topLeftX, topLeftY := utils.SpriteTopLeft(
		pos.X, pos.Y, renderWidth, renderHeight, rs.viewportWidth, rs.viewportHeight)
	op.GeoM.Translate(topLeftX, topLeftY)

	if alpha < 1 {
		op.ColorScale.ScaleAlpha(alpha)
	}

	screen.DrawImage(sprite.Image, op)
}

// drawHitboxes 调试模式下描出所有实体的碰撞圆
func (rs *RenderSystem) drawHitboxes(screen *ebiten.Image) {
	withHitbox := ecs.GetEntitiesWith2[*components.HitboxComponent, *components.PositionComponent](rs.em)
	for _, entityID := range withHitbox {
		hitbox, ok := ecs.GetComponent[*components.HitboxComponent](rs.em, entityID)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](rs.em, entityID)
		if !ok {
			continue
		}

		screenX, screenY := utils.WorldToScreen(pos.X, pos.Y, rs.viewportWidth, rs.viewportHeight)
		vector.StrokeCircle(screen,
			float32(screenX), float32(screenY), float32(hitbox.Radius),
			1, hitboxColor, true)
	}
}
