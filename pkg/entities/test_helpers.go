package entities

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/starstorm/pkg/game"
)

// SpriteProvider 定义工厂需要的最小资源接口
// 生产代码传入 *game.ResourceManager，无头测试传入 mock 或 nil
// （nil 时实体不带图像，渲染系统会跳过，逻辑测试不受影响）
type SpriteProvider interface {
	GetSprite(spriteID string) *ebiten.Image
}

// mockSpriteProvider 实现 SpriteProvider 接口，避免依赖程序化生成
type mockSpriteProvider struct {
	images map[string]*ebiten.Image
}

// newMockSpriteProvider 创建一个返回固定小图的 mock 精灵提供者
func newMockSpriteProvider() *mockSpriteProvider {
	return &mockSpriteProvider{
		images: make(map[string]*ebiten.Image),
	}
}

// GetSprite 返回测试图像，按ID缓存
func (m *mockSpriteProvider) GetSprite(spriteID string) *ebiten.Image {
	if img, ok := m.images[spriteID]; ok {
		return img
	}
	img := ebiten.NewImage(10, 10)
	m.images[spriteID] = img
	return img
}

// Ensure mockSpriteProvider implements SpriteProvider
var _ SpriteProvider = (*mockSpriteProvider)(nil)

// Ensure game.ResourceManager also implements SpriteProvider (at compile time)
var _ SpriteProvider = (*game.ResourceManager)(nil)
