package utils

import (
	"testing"
	"testing/quick"
)

// TestWorldToScreen 测试世界坐标到屏幕坐标的转换
func TestWorldToScreen(t *testing.T) {
	tests := []struct {
		name        string
		worldX      float64
		worldY      float64
		wantScreenX float64
		wantScreenY float64
	}{
		{"世界原点落在屏幕中心", 0, 0, 400, 300},
		{"右上角区域", 368, 268, 768, 32},
		{"左上世界角", -400, 300, 0, 0},
		{"右下世界角", 400, -300, 800, 600},
		{"负X正Y", -100, 50, 300, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screenX, screenY := WorldToScreen(tt.worldX, tt.worldY, 800, 600)
			if screenX != tt.wantScreenX || screenY != tt.wantScreenY {
				t.Errorf("WorldToScreen(%v, %v) = (%v, %v), 期望 (%v, %v)",
					tt.worldX, tt.worldY, screenX, screenY, tt.wantScreenX, tt.wantScreenY)
			}
		})
	}
}

// TestScreenToWorldRoundTrip 属性测试：两次转换必须回到原点
func TestScreenToWorldRoundTrip(t *testing.T) {
	roundTrip := func(x, y int16) bool {
		worldX, worldY := float64(x), float64(y)
		screenX, screenY := WorldToScreen(worldX, worldY, 800, 600)
		backX, backY := ScreenToWorld(screenX, screenY, 800, 600)
		return backX == worldX && backY == worldY
	}
	if err := quick.Check(roundTrip, nil); err != nil {
		t.Errorf("WorldToScreen/ScreenToWorld round trip failed: %v", err)
	}
}

// TestSpriteTopLeft 测试中心锚点实体的绘制原点计算
func TestSpriteTopLeft(t *testing.T) {
	tests := []struct {
		name           string
		worldX, worldY float64
		width, height  float64
		wantX, wantY   float64
	}{
		{"64x64战机在世界原点", 0, 0, 64, 64, 368, 268},
		{"2x2星星在左上区域", -300, 200, 2, 2, 99, 99},
		{"8x16子弹在原点上方", 0, 100, 8, 16, 396, 192},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := SpriteTopLeft(tt.worldX, tt.worldY, tt.width, tt.height, 800, 600)
			if gotX != tt.wantX || gotY != tt.wantY {
				t.Errorf("SpriteTopLeft(%v, %v, %v, %v) = (%v, %v), 期望 (%v, %v)",
					tt.worldX, tt.worldY, tt.width, tt.height, gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}
